package types

import (
	"fmt"
	"math/big"
	"reflect"
	"strconv"
	"strings"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/common/rlog"
	"github.com/pkg/errors"
)

// MaxCallDepth limits nested contract calls
const MaxCallDepth = 64

var errType = reflect.TypeOf((*error)(nil)).Elem()
var amountType = reflect.TypeOf(&amount.Amount{})
var addressType = reflect.TypeOf(common.Address{})

type ExecFunc = func(Cc *ContractContext, Addr common.Address, MethodName string, Args []interface{}) ([]interface{}, error)

type interactor struct {
	ctx   *Context
	depth int
}

// NewInteractor returns the dispatcher of contract calls in the context
func NewInteractor(ctx *Context) *interactor {
	return &interactor{
		ctx: ctx,
	}
}

func (i *interactor) Exec(Cc *ContractContext, ContAddr common.Address, MethodName string, Args []interface{}) ([]interface{}, error) {
	if MethodName == "" {
		return nil, errors.New("method not given")
	}
	cont, err := i.ctx.Contract(ContAddr)
	if err != nil {
		return nil, err
	}
	MethodName = strings.ToUpper(MethodName[:1]) + MethodName[1:]

	if err := i.enter(); err != nil {
		return nil, err
	}
	defer i.leave()
	return _exec(i.currentContractContext(Cc, ContAddr), cont, MethodName, Args)
}

// enter counts a nested call or creation, it fails beyond MaxCallDepth
func (i *interactor) enter() error {
	if i.depth >= MaxCallDepth {
		return errors.WithStack(ErrCallDepthExceeded)
	}
	i.depth++
	return nil
}

func (i *interactor) leave() {
	i.depth--
}

func (i *interactor) currentContractContext(Cc *ContractContext, Addr common.Address) *ContractContext {
	if Cc.cont == Addr {
		return Cc
	}
	return &ContractContext{
		cont: Addr,
		from: Cc.cont,
		ctx:  Cc.ctx,
		it:   i,
		Exec: i.Exec,
	}
}

func _exec(ecc *ContractContext, cont Contract, MethodName string, Args []interface{}) (result []interface{}, err error) {
	ContAddr := cont.Address()
	rMethod, err := methodByName(cont, ContAddr, MethodName)
	if err != nil {
		return nil, err
	}

	in, err := ContractInputsConv(Args, rMethod)
	if err != nil {
		return nil, err
	}
	in = append([]reflect.Value{reflect.ValueOf(ecc)}, in...)

	sn := ecc.ctx.Snapshot()
	vs, err := func() (vs []reflect.Value, err error) {
		defer func() {
			if v := recover(); v != nil {
				err = fmt.Errorf("occur error call method(%v) of contract(%v) message: %v", MethodName, ContAddr.String(), v)
			}
		}()
		return rMethod.Call(in), nil
	}()
	if err == nil {
		result, err = getResults(rMethod.Type(), vs)
	}
	if err != nil {
		ecc.ctx.Revert(sn)
		rlog.Debugw("call reverted", "contract", ContAddr.String(), "method", MethodName, "from", ecc.from.String(), "error", err)
		return nil, err
	}
	ecc.ctx.Commit(sn)
	return result, nil
}

func methodByName(cont Contract, Addr common.Address, MethodName string) (reflect.Value, error) {
	vo := reflect.ValueOf(cont.Front())
	if !vo.IsValid() {
		return reflect.Value{}, errors.New("wrong contract")
	}
	if vo.Kind() == reflect.Ptr && vo.IsNil() {
		return reflect.Value{}, errors.New("nil contract")
	}
	method := vo.MethodByName(MethodName)
	if !method.IsValid() {
		return reflect.Value{}, errors.Wrapf(ErrMethodNotFound, "%v of %v", MethodName, Addr.String())
	}
	if method.Type().NumIn() < 1 || method.Type().In(0) != reflect.TypeOf(&ContractContext{}) {
		return reflect.Value{}, errors.Wrapf(ErrMethodNotFound, "%v of %v", MethodName, Addr.String())
	}
	return method, nil
}

func getResults(mType reflect.Type, vs []reflect.Value) (result []interface{}, err error) {
	result = []interface{}{}
	for i, v := range vs {
		if mType.Out(i).Kind() == reflect.Interface && mType.Out(i).Implements(errType) {
			if _err, ok := v.Interface().(error); ok && _err != nil {
				err = _err
			}
			continue
		}
		result = append(result, v.Interface())
	}
	return
}

// ContractInputsConv converts the call arguments to the parameter types of the method.
// Strings are accepted for numbers, amounts and addresses so text front ends can call any method.
func ContractInputsConv(Args []interface{}, rMethod reflect.Value) ([]reflect.Value, error) {
	mt := rMethod.Type()
	if mt.NumIn() != len(Args)+1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "invalid inputs count got %v want %v", len(Args), mt.NumIn()-1)
	}
	in := make([]reflect.Value, len(Args))
	for i, v := range Args {
		mType := mt.In(i + 1)
		param, err := convertParam(v, mType)
		if err != nil {
			return nil, errors.Wrapf(err, "input %v", i)
		}
		in[i] = param
	}
	return in, nil
}

func convertParam(v interface{}, mType reflect.Type) (reflect.Value, error) {
	if v == nil {
		switch mType.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			return reflect.Zero(mType), nil
		}
		return reflect.Value{}, errors.Wrapf(ErrInvalidArgument, "nil for %v", mType)
	}
	param := reflect.ValueOf(v)
	if param.Type() == mType {
		return param, nil
	}
	if isNumberKind(param.Kind()) && isNumberKind(mType.Kind()) {
		if isIntKind(param.Kind()) && isUintKind(mType.Kind()) && param.Int() < 0 {
			return reflect.Value{}, errors.Wrapf(ErrInvalidArgument, "negative %v for %v", v, mType)
		}
		return param.Convert(mType), nil
	}

	switch pv := v.(type) {
	case *big.Int:
		if mType == amountType {
			return reflect.ValueOf(amount.NewAmountFromBigInt(pv)), nil
		}
		if isNumberKind(mType.Kind()) {
			return convertParam(pv.String(), mType)
		}
	case *amount.Amount:
		if mType == reflect.TypeOf(&big.Int{}) {
			return reflect.ValueOf(new(big.Int).Set(pv.Int)), nil
		}
	case int, int64, uint64, uint32, uint16, uint8:
		if mType == amountType {
			bi, ok := new(big.Int).SetString(fmt.Sprint(pv), 10)
			if ok && bi.Sign() >= 0 {
				return reflect.ValueOf(&amount.Amount{Int: bi}), nil
			}
		}
	case string:
		switch {
		case mType == addressType:
			addr, err := common.ParseAddress(pv)
			if err != nil {
				return reflect.Value{}, err
			}
			return reflect.ValueOf(addr), nil
		case mType == amountType:
			bi, ok := new(big.Int).SetString(pv, 0)
			if !ok || bi.Sign() < 0 {
				return reflect.Value{}, errors.Wrapf(ErrInvalidArgument, "amount %v", pv)
			}
			return reflect.ValueOf(&amount.Amount{Int: bi}), nil
		case mType.Kind() == reflect.Bool:
			b, err := strconv.ParseBool(pv)
			if err != nil {
				return reflect.Value{}, errors.WithStack(err)
			}
			return reflect.ValueOf(b).Convert(mType), nil
		case isUintKind(mType.Kind()):
			n, err := strconv.ParseUint(pv, 0, mType.Bits())
			if err != nil {
				return reflect.Value{}, errors.WithStack(err)
			}
			return reflect.ValueOf(n).Convert(mType), nil
		case isIntKind(mType.Kind()):
			n, err := strconv.ParseInt(pv, 0, mType.Bits())
			if err != nil {
				return reflect.Value{}, errors.WithStack(err)
			}
			return reflect.ValueOf(n).Convert(mType), nil
		case mType.Kind() == reflect.Slice && mType.Elem().Kind() == reflect.Uint8:
			return reflect.ValueOf([]byte(pv)).Convert(mType), nil
		}
	}
	return reflect.Value{}, errors.Wrapf(ErrInvalidArgument, "get %v want %v", param.Type(), mType)
}

func isUintKind(k reflect.Kind) bool {
	switch k {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true
	}
	return false
}

func isIntKind(k reflect.Kind) bool {
	switch k {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}

func isNumberKind(k reflect.Kind) bool {
	return isUintKind(k) || isIntKind(k)
}

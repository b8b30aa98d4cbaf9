package types_test

import (
	"errors"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/common/bin"
	"github.com/meverselabs/stakefarm/core/types"
)

var errTooLarge = errors.New("TooLarge")

// counterContract is a minimal contract used to exercise the runtime
type counterContract struct {
	addr   common.Address
	master common.Address
}

func (cont *counterContract) Address() common.Address { return cont.addr }
func (cont *counterContract) Master() common.Address  { return cont.master }
func (cont *counterContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}
func (cont *counterContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	if len(Args) == 8 {
		cc.SetContractData([]byte{0x01}, Args)
	}
	if len(Args) == chainArgsLength && Args[0] == tagChain && Args[1] > 0 {
		impl := common.BytesToAddress(Args[2:])
		_, err := cc.CloneContract(cc.From(), impl, chainArgs(impl, Args[1]-1))
		return err
	}
	return nil
}

const tagChain = byte(0xCC)
const chainArgsLength = 2 + common.AddressLength

// chainArgs makes a clone of the implementation create the next clone until the count runs out
func chainArgs(impl common.Address, count uint8) []byte {
	bs := make([]byte, 0, chainArgsLength)
	bs = append(bs, tagChain, count)
	return append(bs, impl[:]...)
}
func (cont *counterContract) Front() interface{} { return &counterFront{cont: cont} }

func (cont *counterContract) value(cc *types.ContractContext) uint64 {
	bs := cc.ContractData([]byte{0x01})
	if len(bs) == 8 {
		return bin.Uint64(bs)
	}
	return 0
}

type counterFront struct {
	cont *counterContract
}

func (f *counterFront) Value(cc *types.ContractContext) uint64 {
	return f.cont.value(cc)
}

func (f *counterFront) Add(cc *types.ContractContext, n uint64) (uint64, error) {
	v := f.cont.value(cc) + n
	cc.SetContractData([]byte{0x01}, bin.Uint64Bytes(v))
	cc.EmitEvent("Added", cc.From(), n)
	if v > 100 {
		return 0, errTooLarge
	}
	return v, nil
}

func (f *counterFront) AddAmount(cc *types.ContractContext, am *amount.Amount) (*amount.Amount, error) {
	v, err := f.Add(cc, am.Uint64())
	if err != nil {
		return nil, err
	}
	return amount.NewAmountFromUint64(v), nil
}

func (f *counterFront) Panic(cc *types.ContractContext) error {
	cc.SetContractData([]byte{0x01}, bin.Uint64Bytes(999))
	panic("boom")
}

// Forward calls Add on the other counter then fails when fail is set
func (f *counterFront) Forward(cc *types.ContractContext, other common.Address, n uint64, fail bool) (common.Address, error) {
	if _, err := cc.Exec(cc, other, "Add", []interface{}{n}); err != nil {
		return common.ZeroAddr, err
	}
	if fail {
		return common.ZeroAddr, errTooLarge
	}
	return cc.From(), nil
}

// Caller returns the caller seen by the other counter
func (f *counterFront) WhoCalls(cc *types.ContractContext, other common.Address) (common.Address, error) {
	is, err := cc.Exec(cc, other, "Sender", []interface{}{})
	if err != nil {
		return common.ZeroAddr, err
	}
	return is[0].(common.Address), nil
}

func (f *counterFront) Sender(cc *types.ContractContext) common.Address {
	return cc.From()
}

func (f *counterFront) Clone(cc *types.ContractContext, impl common.Address, start uint64) (common.Address, error) {
	return cc.CloneContract(cc.From(), impl, bin.Uint64Bytes(start))
}

func (f *counterFront) CloneChain(cc *types.ContractContext, impl common.Address, count uint8) (common.Address, error) {
	return cc.CloneContract(cc.From(), impl, chainArgs(impl, count))
}

func (f *counterFront) Recurse(cc *types.ContractContext) error {
	_, err := cc.Exec(cc, f.cont.addr, "Recurse", []interface{}{})
	return err
}

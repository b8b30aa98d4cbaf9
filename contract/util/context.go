package util

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/core/types"
)

func ViewAmount(ctx *types.Context, contAddr common.Address, methodName string, args ...interface{}) (*amount.Amount, error) {
	is, err := ctx.View(ZeroAddress, contAddr, methodName, args...)
	if err != nil {
		return nil, err
	}
	return is[0].(*amount.Amount), nil
}

func ViewAmounts(ctx *types.Context, contAddr common.Address, methodName string, args ...interface{}) ([]*amount.Amount, error) {
	is, err := ctx.View(ZeroAddress, contAddr, methodName, args...)
	if err != nil {
		return nil, err
	}
	ams := make([]*amount.Amount, 0, len(is))
	for _, v := range is {
		if am, ok := v.(*amount.Amount); ok {
			ams = append(ams, am)
		}
	}
	return ams, nil
}

func ViewAddress(ctx *types.Context, contAddr common.Address, methodName string, args ...interface{}) (common.Address, error) {
	is, err := ctx.View(ZeroAddress, contAddr, methodName, args...)
	if err != nil {
		return ZeroAddress, err
	}
	return is[0].(common.Address), nil
}

func ViewUint64(ctx *types.Context, contAddr common.Address, methodName string, args ...interface{}) (uint64, error) {
	is, err := ctx.View(ZeroAddress, contAddr, methodName, args...)
	if err != nil {
		return 0, err
	}
	return is[0].(uint64), nil
}

func BalanceOf(ctx *types.Context, tokenAddr, owner common.Address) (*amount.Amount, error) {
	return ViewAmount(ctx, tokenAddr, "BalanceOf", owner)
}

func Approve(ctx *types.Context, tokenAddr, owner, spender common.Address, am *amount.Amount) error {
	_, err := ctx.Call(owner, tokenAddr, "Approve", spender, am)
	return err
}

package util

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
)

var (
	ZeroAmount  = amount.Zero()
	ZeroAddress = common.Address{}
)

// Units returns n whole tokens of the decimals
func Units(n int64, decimals int) *amount.Amount {
	return amount.Pow10(decimals).MulC(n)
}

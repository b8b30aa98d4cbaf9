package token

import (
	"github.com/meverselabs/stakefarm/common"
)

var (
	tagTokenName        = byte(0x01)
	tagTokenSymbol      = byte(0x02)
	tagTokenMinter      = byte(0x03)
	tagTokenTotalSupply = byte(0x04)
	tagTokenDecimals    = byte(0x05)
	tagTokenHook        = byte(0x06)
	tagTokenAmount      = byte(0x10)
	tagTokenApprove     = byte(0x12)
)

func makeTokenKey(addr common.Address, key byte) []byte {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = key
	copy(bs[1:], addr[:])
	return bs
}

func makeAllowanceKey(owner common.Address, spender common.Address) []byte {
	bs := make([]byte, 1+common.AddressLength*2)
	bs[0] = tagTokenApprove
	copy(bs[1:], owner[:])
	copy(bs[1+common.AddressLength:], spender[:])
	return bs
}

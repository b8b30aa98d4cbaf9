package types

import (
	"github.com/meverselabs/stakefarm/common"
)

var (
	tagContractDefine = byte(0x01)
	tagContractData   = byte(0x02)
	tagCreatorNonce   = byte(0x03)
)

func makeDefineKey(addr common.Address) string {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tagContractDefine
	copy(bs[1:], addr[:])
	return string(bs)
}

func makeContractDataKey(cont common.Address, name []byte) string {
	bs := make([]byte, 1+common.AddressLength+len(name))
	bs[0] = tagContractData
	copy(bs[1:], cont[:])
	copy(bs[1+common.AddressLength:], name)
	return string(bs)
}

func makeNonceKey(addr common.Address) string {
	bs := make([]byte, 1+common.AddressLength)
	bs[0] = tagCreatorNonce
	copy(bs[1:], addr[:])
	return string(bs)
}

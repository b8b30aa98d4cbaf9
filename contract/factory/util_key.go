package factory

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/bin"
)

var (
	tagImplementation = byte(0x01)
	tagVersion        = byte(0x02)
	tagDeployCount    = byte(0x03)
	tagDeployment     = byte(0x04)
	tagDeployedIndex  = byte(0x05)
)

func makeKindKey(tag byte, kind Kind) []byte {
	return []byte{tag, byte(kind)}
}

func makeDeploymentKey(index uint64) []byte {
	return append([]byte{tagDeployment}, bin.Uint64Bytes(index)...)
}

func makeDeployedIndexKey(addr common.Address) []byte {
	return append([]byte{tagDeployedIndex}, addr[:]...)
}

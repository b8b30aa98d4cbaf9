package farm

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/bin"
)

// tags below 0x20 belong to the core, the variants use the rest
var (
	tagRewardPerSecond = byte(0x01)
	tagStartTimestamp  = byte(0x02)
	tagEndTimestamp    = byte(0x03)
	tagTotalAllocPoint = byte(0x04)
	tagPoolLength      = byte(0x05)
	tagStreamCount     = byte(0x06)
	tagRewardToken     = byte(0x07)
	tagTotalFunded     = byte(0x08)
	tagPaidOut         = byte(0x09)

	tagPoolInfo   = byte(0x10)
	tagUserInfo   = byte(0x11)
	tagStakeToken = byte(0x12)
)

func makeFarmKey(key byte, body []byte) []byte {
	bs := make([]byte, 1+len(body))
	bs[0] = key
	copy(bs[1:], body[:])
	return bs
}
func makeStreamKey(key byte, stream int) []byte {
	return makeFarmKey(key, []byte{byte(stream)})
}
func makePoolInfoKey(pid uint64) []byte {
	return makeFarmKey(tagPoolInfo, bin.Uint64Bytes(pid))
}
func makeUserInfoKey(pid uint64, user common.Address) []byte {
	bs := append(bin.Uint64Bytes(pid), user[:]...)
	return makeFarmKey(tagUserInfo, bs)
}
func makeStakeTokenKey(stakeToken common.Address) []byte {
	return makeFarmKey(tagStakeToken, stakeToken[:])
}

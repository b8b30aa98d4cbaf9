// Package farm implements the reward accrual shared by the farm variants.
//
// A farm emits RewardPerSecond between StartTimestamp and EndTimestamp and
// splits it over its pools by allocation point. Every pool keeps an
// accumulated reward per staked unit for each reward stream, and every
// position keeps the debt of its last synchronization, so that pending
// rewards are the difference between the two.
package farm

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/common/bin"
	"github.com/meverselabs/stakefarm/contract/ownable"
	"github.com/meverselabs/stakefarm/core/types"
	"github.com/pkg/errors"
)

// PRECISION scales the accumulated reward per share
var PRECISION = amount.Pow10(12)

// MaxTotalAllocPoint bounds the sum of the allocation points of a farm
const MaxTotalAllocPoint = uint64(1) << 32

// Emission is the variant specific conversion between the reward of a period
// and the amounts of every reward stream
type Emission interface {
	// Split returns the normalized amount of every stream for the reward
	Split(cc *types.ContractContext, reward *amount.Amount) []*amount.Amount
	// Unscale converts normalized stream amounts to the smallest units of the stream tokens
	Unscale(cc *types.ContractContext, normalized []*amount.Amount) []*amount.Amount
}

// Core keeps the pools and positions of a farm contract
type Core struct {
	emission Emission
}

// NewCore returns the core that emits through the emission
func NewCore(emission Emission) *Core {
	return &Core{
		emission: emission,
	}
}

// Init stores the immutable parameters. EndTimestamp starts at StartTimestamp and grows by funding.
func (c *Core) Init(cc *types.ContractContext, owner common.Address, tokens []common.Address, rewardPerSecond *amount.Amount, startTimestamp uint64) error {
	if len(tokens) == 0 || len(tokens) > 255 {
		return errors.Wrapf(ErrInvalidValue, "stream count %v", len(tokens))
	}
	for _, t := range tokens {
		if t == common.ZeroAddr {
			return errors.Wrap(ErrInvalidValue, "zero reward token")
		}
	}
	if rewardPerSecond == nil || !rewardPerSecond.IsPlus() {
		return errors.Wrap(ErrInvalidValue, "reward per second")
	}
	if err := ownable.SetOwner(cc, owner); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagStreamCount}, []byte{byte(len(tokens))})
	for i, t := range tokens {
		cc.SetContractData(makeStreamKey(tagRewardToken, i), t[:])
	}
	cc.SetContractData([]byte{tagRewardPerSecond}, rewardPerSecond.Bytes())
	cc.SetContractData([]byte{tagStartTimestamp}, bin.Uint64Bytes(startTimestamp))
	cc.SetContractData([]byte{tagEndTimestamp}, bin.Uint64Bytes(startTimestamp))
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (c *Core) Owner(cc *types.ContractContext) common.Address {
	return ownable.Owner(cc)
}

// Streams returns the number of reward streams
func (c *Core) Streams(cc *types.ContractContext) int {
	bs := cc.ContractData([]byte{tagStreamCount})
	if len(bs) == 1 {
		return int(bs[0])
	}
	return 0
}

// Token returns the reward token of the stream
func (c *Core) Token(cc *types.ContractContext, stream int) common.Address {
	bs := cc.ContractData(makeStreamKey(tagRewardToken, stream))
	if len(bs) != common.AddressLength {
		return common.ZeroAddr
	}
	return common.BytesToAddress(bs)
}

func (c *Core) RewardPerSecond(cc *types.ContractContext) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagRewardPerSecond}))
}

func (c *Core) StartTimestamp(cc *types.ContractContext) uint64 {
	bs := cc.ContractData([]byte{tagStartTimestamp})
	if len(bs) == 8 {
		return bin.Uint64(bs)
	}
	return 0
}

func (c *Core) EndTimestamp(cc *types.ContractContext) uint64 {
	bs := cc.ContractData([]byte{tagEndTimestamp})
	if len(bs) == 8 {
		return bin.Uint64(bs)
	}
	return 0
}

func (c *Core) TotalAllocPoint(cc *types.ContractContext) uint64 {
	bs := cc.ContractData([]byte{tagTotalAllocPoint})
	if len(bs) == 8 {
		return bin.Uint64(bs)
	}
	return 0
}

func (c *Core) PoolLength(cc *types.ContractContext) uint64 {
	bs := cc.ContractData([]byte{tagPoolLength})
	if len(bs) == 8 {
		return bin.Uint64(bs)
	}
	return 0
}

// TotalFunded returns the amount of the stream token funded so far
func (c *Core) TotalFunded(cc *types.ContractContext, stream int) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData(makeStreamKey(tagTotalFunded, stream)))
}

// PaidOut returns the amount of the stream token paid to participants so far
func (c *Core) PaidOut(cc *types.ContractContext, stream int) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData(makeStreamKey(tagPaidOut, stream)))
}

func (c *Core) PoolInfo(cc *types.ContractContext, pid uint64) (*PoolInfo, error) {
	return c._poolInfo(cc, pid)
}

// Pools returns every pool ordered by pool id
func (c *Core) Pools(cc *types.ContractContext) ([]*PoolInfo, error) {
	length := c.PoolLength(cc)
	pools := make([]*PoolInfo, 0, length)
	for pid := uint64(0); pid < length; pid++ {
		pool, err := c._poolInfo(cc, pid)
		if err != nil {
			return nil, err
		}
		pools = append(pools, pool)
	}
	return pools, nil
}

func (c *Core) UserInfo(cc *types.ContractContext, pid uint64, user common.Address) (*UserInfo, error) {
	if _, err := c._poolInfo(cc, pid); err != nil {
		return nil, err
	}
	return c._userInfo(cc, pid, user)
}

// Deposited returns the stake of the user in the pool
func (c *Core) Deposited(cc *types.ContractContext, pid uint64, user common.Address) (*amount.Amount, error) {
	info, err := c.UserInfo(cc, pid, user)
	if err != nil {
		return nil, err
	}
	return info.Amount, nil
}

// Pending returns the rewards of every stream the user would harvest now
func (c *Core) Pending(cc *types.ContractContext, pid uint64, user common.Address) ([]*amount.Amount, error) {
	pool, err := c._poolInfo(cc, pid)
	if err != nil {
		return nil, err
	}
	info, err := c._userInfo(cc, pid, user)
	if err != nil {
		return nil, err
	}
	c.accrue(cc, pool)
	return c.emission.Unscale(cc, c.pendingOf(pool, info)), nil
}

// TotalPending returns the emitted rewards of every stream that are not paid out yet.
// Rewards of empty pools and forfeited rewards stay included.
func (c *Core) TotalPending(cc *types.ContractContext) []*amount.Amount {
	streams := c.Streams(cc)
	start := c.StartTimestamp(cc)
	last := c.lastTimestamp(cc)
	ams := make([]*amount.Amount, streams)
	if last <= start {
		for i := range ams {
			ams[i] = amount.Zero()
		}
		return ams
	}
	emitted := c.RewardPerSecond(cc).Mul(amount.NewAmountFromUint64(last - start))
	total := c.emission.Unscale(cc, c.emission.Split(cc, emitted))
	for i := range ams {
		ams[i] = total[i].Sub(c.PaidOut(cc, i))
		if ams[i].IsMinus() {
			ams[i] = amount.Zero()
		}
	}
	return ams
}

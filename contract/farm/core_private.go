package farm

import (
	"bytes"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/common/bin"
	"github.com/meverselabs/stakefarm/contract/util"
	"github.com/meverselabs/stakefarm/core/types"
	"github.com/pkg/errors"
)

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (c *Core) _poolInfo(cc *types.ContractContext, pid uint64) (*PoolInfo, error) {
	if pid >= c.PoolLength(cc) {
		return nil, errors.Wrapf(ErrInvalidValue, "pool %v", pid)
	}
	bs := cc.ContractData(makePoolInfoKey(pid))
	data := &PoolInfo{}
	if _, err := data.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Core) _userInfo(cc *types.ContractContext, pid uint64, user common.Address) (*UserInfo, error) {
	bs := cc.ContractData(makeUserInfoKey(pid, user))
	if len(bs) == 0 {
		return newUserInfo(c.Streams(cc)), nil
	}
	data := &UserInfo{}
	if _, err := data.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return data, nil
}

func (c *Core) setPoolInfo(cc *types.ContractContext, pid uint64, pool *PoolInfo) error {
	bs, _, err := bin.WriterToBytes(pool)
	if err != nil {
		return err
	}
	cc.SetContractData(makePoolInfoKey(pid), bs)
	return nil
}

func (c *Core) setUserInfo(cc *types.ContractContext, pid uint64, user common.Address, info *UserInfo) error {
	if info.Amount.IsZero() {
		cc.SetContractData(makeUserInfoKey(pid, user), nil)
		return nil
	}
	bs, _, err := bin.WriterToBytes(info)
	if err != nil {
		return err
	}
	cc.SetContractData(makeUserInfoKey(pid, user), bs)
	return nil
}

// addAllocPoint fails when the total allocation point would exceed MaxTotalAllocPoint
func addAllocPoint(total uint64, allocPoint uint64) (uint64, error) {
	if allocPoint > MaxTotalAllocPoint || total > MaxTotalAllocPoint-allocPoint {
		return 0, errors.Wrapf(ErrInvalidValue, "allocation point %v over total %v", allocPoint, total)
	}
	return total + allocPoint, nil
}

func (c *Core) setTotalAllocPoint(cc *types.ContractContext, totalAllocPoint uint64) {
	cc.SetContractData([]byte{tagTotalAllocPoint}, bin.Uint64Bytes(totalAllocPoint))
}

// lastTimestamp returns min(now, end)
func (c *Core) lastTimestamp(cc *types.ContractContext) uint64 {
	now := cc.LastTimestamp()
	if end := c.EndTimestamp(cc); now > end {
		return end
	}
	return now
}

// accrue brings the accumulators of the pool up to min(now, end) without storing them
func (c *Core) accrue(cc *types.ContractContext, pool *PoolInfo) bool {
	last := c.lastTimestamp(cc)
	if last <= pool.LastRewardTime {
		return false
	}
	totalAllocPoint := c.TotalAllocPoint(cc)
	if pool.TotalDeposited.IsZero() || totalAllocPoint == 0 {
		pool.LastRewardTime = last
		return true
	}
	elapsed := amount.NewAmountFromUint64(last - pool.LastRewardTime)
	reward := c.RewardPerSecond(cc).Mul(elapsed).Mul(amount.NewAmountFromUint64(pool.AllocPoint)).Div(amount.NewAmountFromUint64(totalAllocPoint))
	for i, am := range c.emission.Split(cc, reward) {
		pool.AccPerShare[i] = pool.AccPerShare[i].Add(am.MulDiv(PRECISION, pool.TotalDeposited))
	}
	pool.LastRewardTime = last
	return true
}

func (c *Core) pendingOf(pool *PoolInfo, info *UserInfo) []*amount.Amount {
	ams := make([]*amount.Amount, len(pool.AccPerShare))
	for i, acc := range pool.AccPerShare {
		ams[i] = info.Amount.MulDiv(acc, PRECISION).Sub(info.RewardDebt[i])
	}
	return ams
}

func (c *Core) resetDebt(pool *PoolInfo, info *UserInfo) {
	info.RewardDebt = make([]*amount.Amount, len(pool.AccPerShare))
	for i, acc := range pool.AccPerShare {
		info.RewardDebt[i] = info.Amount.MulDiv(acc, PRECISION)
	}
}

// settle converts the normalized pending rewards to token amounts and records them as paid out
func (c *Core) settle(cc *types.ContractContext, pending []*amount.Amount) []*amount.Amount {
	ams := c.emission.Unscale(cc, pending)
	for i, am := range ams {
		if am.IsPlus() {
			cc.SetContractData(makeStreamKey(tagPaidOut, i), c.PaidOut(cc, i).Add(am).Bytes())
		}
	}
	return ams
}

// payout transfers settled rewards, it runs after every state change of the operation
func (c *Core) payout(cc *types.ContractContext, to common.Address, ams []*amount.Amount) error {
	for i, am := range ams {
		if !am.IsPlus() {
			continue
		}
		if err := util.SafeTransfer(cc, c.Token(cc, i), to, am); err != nil {
			return err
		}
	}
	return nil
}

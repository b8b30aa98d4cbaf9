package farm

import (
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/contract/util"
	"github.com/meverselabs/stakefarm/core/types"
	"github.com/pkg/errors"
)

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// MassUpdatePools synchronizes every pool
func (c *Core) MassUpdatePools(cc *types.ContractContext) error {
	length := c.PoolLength(cc)
	for pid := uint64(0); pid < length; pid++ {
		if err := c.UpdatePool(cc, pid); err != nil {
			return err
		}
	}
	return nil
}

// UpdatePool brings the accumulators of the pool up to min(now, end)
func (c *Core) UpdatePool(cc *types.ContractContext, pid uint64) error {
	pool, err := c._poolInfo(cc, pid)
	if err != nil {
		return err
	}
	if !c.accrue(cc, pool) {
		return nil
	}
	return c.setPoolInfo(cc, pid, pool)
}

// Deposit harvests the pending rewards of the caller and stakes the amount.
// A zero amount only harvests.
func (c *Core) Deposit(cc *types.ContractContext, pid uint64, am *amount.Amount) error {
	if am == nil || am.IsMinus() {
		return errors.Wrap(ErrInvalidValue, "deposit amount")
	}
	pool, err := c._poolInfo(cc, pid)
	if err != nil {
		return err
	}
	info, err := c._userInfo(cc, pid, cc.From())
	if err != nil {
		return err
	}
	c.accrue(cc, pool)
	if err := c.setPoolInfo(cc, pid, pool); err != nil {
		return err
	}
	pending := c.pendingOf(pool, info)

	if am.IsPlus() {
		if err := util.SafeTransferFrom(cc, pool.StakeToken, cc.From(), cc.Address(), am); err != nil {
			return err
		}
		info.Amount = info.Amount.Add(am)
		pool.TotalDeposited = pool.TotalDeposited.Add(am)
	}
	c.resetDebt(pool, info)
	if err := c.setPoolInfo(cc, pid, pool); err != nil {
		return err
	}
	if err := c.setUserInfo(cc, pid, cc.From(), info); err != nil {
		return err
	}
	rewards := c.settle(cc, pending)
	cc.EmitEvent("Deposited", cc.From(), pid, am)

	return c.payout(cc, cc.From(), rewards)
}

// Withdraw harvests the pending rewards of the caller and returns the amount of the stake
func (c *Core) Withdraw(cc *types.ContractContext, pid uint64, am *amount.Amount) error {
	if am == nil || am.IsMinus() {
		return errors.Wrap(ErrInvalidValue, "withdraw amount")
	}
	pool, err := c._poolInfo(cc, pid)
	if err != nil {
		return err
	}
	info, err := c._userInfo(cc, pid, cc.From())
	if err != nil {
		return err
	}
	if info.Amount.Less(am) {
		return errors.Wrapf(ErrUnauthorizedWithdrawal, "%v deposited %v want %v", cc.From().String(), info.Amount.String(), am.String())
	}
	c.accrue(cc, pool)
	pending := c.pendingOf(pool, info)

	info.Amount = info.Amount.Sub(am)
	pool.TotalDeposited = pool.TotalDeposited.Sub(am)
	c.resetDebt(pool, info)
	if err := c.setPoolInfo(cc, pid, pool); err != nil {
		return err
	}
	if err := c.setUserInfo(cc, pid, cc.From(), info); err != nil {
		return err
	}
	rewards := c.settle(cc, pending)
	cc.EmitEvent("Withdrawn", cc.From(), pid, am)

	if err := c.payout(cc, cc.From(), rewards); err != nil {
		return err
	}
	if am.IsPlus() {
		return util.SafeTransfer(cc, pool.StakeToken, cc.From(), am)
	}
	return nil
}

// EmergencyWithdraw returns the whole stake of the caller without accruing or paying rewards.
// The unpaid rewards of the position are forfeited.
func (c *Core) EmergencyWithdraw(cc *types.ContractContext, pid uint64) error {
	pool, err := c._poolInfo(cc, pid)
	if err != nil {
		return err
	}
	info, err := c._userInfo(cc, pid, cc.From())
	if err != nil {
		return err
	}
	am := info.Amount
	pool.TotalDeposited = pool.TotalDeposited.Sub(am)
	if err := c.setPoolInfo(cc, pid, pool); err != nil {
		return err
	}
	if err := c.setUserInfo(cc, pid, cc.From(), newUserInfo(len(pool.AccPerShare))); err != nil {
		return err
	}
	cc.EmitEvent("EmergencyWithdrawn", cc.From(), pid, am)

	if am.IsPlus() {
		return util.SafeTransfer(cc, pool.StakeToken, cc.From(), am)
	}
	return nil
}

// Package boosted is the farm that emits a reward token together with a booster token
// in the proportion fixed by its first funding.
package boosted

import (
	"bytes"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/contract/farm"
	"github.com/meverselabs/stakefarm/contract/util"
	"github.com/meverselabs/stakefarm/core/types"
	"github.com/pkg/errors"
)

// RatioPrecision scales the booster to reward ratio
var RatioPrecision = amount.Pow10(18)

type FarmContract struct {
	addr   common.Address
	master common.Address
	core   *farm.Core
}

func (cont *FarmContract) Name() string {
	return "BoostedFarm"
}

func (cont *FarmContract) Address() common.Address {
	return cont.addr
}

func (cont *FarmContract) Master() common.Address {
	return cont.master
}

func (cont *FarmContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
	cont.core = farm.NewCore(cont)
}

func (cont *FarmContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &FarmContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	if data.RewardToken == data.BoosterToken {
		return errors.Wrap(farm.ErrInvalidValue, "booster token is the reward token")
	}
	if err := cont.core.Init(cc, cont.master, []common.Address{data.RewardToken, data.BoosterToken}, data.RewardPerSecond, data.StartTimestamp); err != nil {
		return err
	}

	rewardDecimals, err := util.TokenDecimals(cc, data.RewardToken)
	if err != nil {
		return err
	}
	boosterDecimals, err := util.TokenDecimals(cc, data.BoosterToken)
	if err != nil {
		return err
	}
	decimalEqReward := amount.NewAmountFromUint64(1)
	decimalEqBooster := amount.NewAmountFromUint64(1)
	if boosterDecimals > rewardDecimals {
		decimalEqReward = amount.Pow10(int(boosterDecimals - rewardDecimals))
	} else if rewardDecimals > boosterDecimals {
		decimalEqBooster = amount.Pow10(int(rewardDecimals - boosterDecimals))
	}
	cc.SetContractData([]byte{tagDecimalEqReward}, decimalEqReward.Bytes())
	cc.SetContractData([]byte{tagDecimalEqBooster}, decimalEqBooster.Bytes())
	return nil
}

// Split returns the reward on the normalized scale and the booster in the fixed ratio to it
func (cont *FarmContract) Split(cc *types.ContractContext, reward *amount.Amount) []*amount.Amount {
	normReward := reward.Mul(cont.DecimalEqReward(cc))
	normBooster := normReward.MulDiv(cont.Ratio(cc), RatioPrecision)
	return []*amount.Amount{normReward, normBooster}
}

func (cont *FarmContract) Unscale(cc *types.ContractContext, normalized []*amount.Amount) []*amount.Amount {
	return []*amount.Amount{
		normalized[0].Div(cont.DecimalEqReward(cc)),
		normalized[1].Div(cont.DecimalEqBooster(cc)),
	}
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

// Fund pulls both tokens from the owner and extends the end of the farm.
// The first funding fixes the ratio, the later ones must keep the proportion of the funded totals.
func (cont *FarmContract) Fund(cc *types.ContractContext, reward *amount.Amount, booster *amount.Amount) error {
	if err := cont.core.CheckFundable(cc); err != nil {
		return err
	}
	if reward == nil || !reward.IsPlus() || booster == nil || booster.IsMinus() {
		return errors.Wrap(farm.ErrInvalidValue, "fund amount")
	}
	ratio := cont.Ratio(cc)
	if ratio.IsZero() {
		der := cont.DecimalEqReward(cc)
		deb := cont.DecimalEqBooster(cc)
		ratio = booster.Mul(deb).Mul(RatioPrecision).Div(reward.Mul(der))
		if ratio.IsZero() {
			return errors.Wrap(farm.ErrInvalidValue, "zero ratio")
		}
		cc.SetContractData([]byte{tagRatio}, ratio.Bytes())
	} else {
		// every accepted funding keeps the proportion of the totals, compared without rounding
		totalReward := cont.core.TotalFunded(cc, 0)
		totalBooster := cont.core.TotalFunded(cc, 1)
		if !booster.Mul(totalReward).Equal(reward.Mul(totalBooster)) {
			return errors.Wrapf(farm.ErrInvalidValue, "booster %v for reward %v, funded %v for %v", booster.String(), reward.String(), totalBooster.String(), totalReward.String())
		}
	}
	if err := cont.core.Fund(cc, []*amount.Amount{reward, booster}); err != nil {
		return err
	}
	cc.EmitEvent("Funded", cc.From(), reward, booster)
	return nil
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *FarmContract) RewardToken(cc *types.ContractContext) common.Address {
	return cont.core.Token(cc, 0)
}

func (cont *FarmContract) BoosterToken(cc *types.ContractContext) common.Address {
	return cont.core.Token(cc, 1)
}

func (cont *FarmContract) DecimalEqReward(cc *types.ContractContext) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagDecimalEqReward}))
}

func (cont *FarmContract) DecimalEqBooster(cc *types.ContractContext) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagDecimalEqBooster}))
}

// Ratio returns booster per reward on the normalized scale, times RatioPrecision
func (cont *FarmContract) Ratio(cc *types.ContractContext) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagRatio}))
}

func (cont *FarmContract) Pending(cc *types.ContractContext, pid uint64, user common.Address) (*amount.Amount, *amount.Amount, error) {
	ams, err := cont.core.Pending(cc, pid, user)
	if err != nil {
		return nil, nil, err
	}
	return ams[0], ams[1], nil
}

func (cont *FarmContract) TotalPending(cc *types.ContractContext) (*amount.Amount, *amount.Amount) {
	ams := cont.core.TotalPending(cc)
	return ams[0], ams[1]
}

func (cont *FarmContract) TotalRewards(cc *types.ContractContext) *amount.Amount {
	return cont.core.TotalFunded(cc, 0)
}

func (cont *FarmContract) TotalBooster(cc *types.ContractContext) *amount.Amount {
	return cont.core.TotalFunded(cc, 1)
}

func (cont *FarmContract) PaidOut(cc *types.ContractContext) (*amount.Amount, *amount.Amount) {
	return cont.core.PaidOut(cc, 0), cont.core.PaidOut(cc, 1)
}

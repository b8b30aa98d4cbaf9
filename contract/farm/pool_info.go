package farm

import (
	"io"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/common/bin"
)

// PoolInfo is the accounting of one stake token.
// AccPerShare holds one accumulator per reward stream, scaled by PRECISION.
type PoolInfo struct {
	StakeToken     common.Address
	AllocPoint     uint64
	LastRewardTime uint64
	AccPerShare    []*amount.Amount
	TotalDeposited *amount.Amount
}

func (s *PoolInfo) Clone() *PoolInfo {
	acc := make([]*amount.Amount, len(s.AccPerShare))
	for i, v := range s.AccPerShare {
		acc[i] = v.Clone()
	}
	return &PoolInfo{
		StakeToken:     s.StakeToken,
		AllocPoint:     s.AllocPoint,
		LastRewardTime: s.LastRewardTime,
		AccPerShare:    acc,
		TotalDeposited: s.TotalDeposited.Clone(),
	}
}

func (s *PoolInfo) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.StakeToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.AllocPoint); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.LastRewardTime); err != nil {
		return sum, err
	}
	if sum, err := sw.AmountSlice(w, s.AccPerShare); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.TotalDeposited); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *PoolInfo) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.StakeToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.AllocPoint); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.LastRewardTime); err != nil {
		return sum, err
	}
	if sum, err := sr.AmountSlice(r, &s.AccPerShare); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.TotalDeposited); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

// UserInfo is the position of a participant in a pool
type UserInfo struct {
	Amount     *amount.Amount
	RewardDebt []*amount.Amount
}

func newUserInfo(streams int) *UserInfo {
	debt := make([]*amount.Amount, streams)
	for i := range debt {
		debt[i] = amount.Zero()
	}
	return &UserInfo{
		Amount:     amount.Zero(),
		RewardDebt: debt,
	}
}

func (s *UserInfo) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Amount(w, s.Amount); err != nil {
		return sum, err
	}
	if sum, err := sw.AmountSlice(w, s.RewardDebt); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *UserInfo) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Amount(r, &s.Amount); err != nil {
		return sum, err
	}
	if sum, err := sr.AmountSlice(r, &s.RewardDebt); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

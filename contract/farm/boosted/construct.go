package boosted

import (
	"io"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/common/bin"
)

type FarmContractConstruction struct {
	RewardToken     common.Address
	BoosterToken    common.Address
	RewardPerSecond *amount.Amount
	StartTimestamp  uint64
}

func (s *FarmContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.RewardToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.BoosterToken); err != nil {
		return sum, err
	}
	if sum, err := sw.Amount(w, s.RewardPerSecond); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.StartTimestamp); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *FarmContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.RewardToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.BoosterToken); err != nil {
		return sum, err
	}
	if sum, err := sr.Amount(r, &s.RewardPerSecond); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.StartTimestamp); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

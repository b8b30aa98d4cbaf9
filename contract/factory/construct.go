package factory

import (
	"io"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/bin"
)

type FactoryContractConstruction struct {
	Owner common.Address
}

func (s *FactoryContractConstruction) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Owner); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *FactoryContractConstruction) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Owner); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

// DeploymentRecord is the append-only provenance of a deployed farm
type DeploymentRecord struct {
	Instance       common.Address
	Kind           Kind
	Deployer       common.Address
	Index          uint64
	Implementation common.Address
	Version        uint64
}

func (s *DeploymentRecord) WriteTo(w io.Writer) (int64, error) {
	sw := bin.NewSumWriter()
	if sum, err := sw.Address(w, s.Instance); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint8(w, uint8(s.Kind)); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Deployer); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.Index); err != nil {
		return sum, err
	}
	if sum, err := sw.Address(w, s.Implementation); err != nil {
		return sum, err
	}
	if sum, err := sw.Uint64(w, s.Version); err != nil {
		return sum, err
	}
	return sw.Sum(), nil
}

func (s *DeploymentRecord) ReadFrom(r io.Reader) (int64, error) {
	sr := bin.NewSumReader()
	if sum, err := sr.Address(r, &s.Instance); err != nil {
		return sum, err
	}
	var kind uint8
	if sum, err := sr.Uint8(r, &kind); err != nil {
		return sum, err
	}
	s.Kind = Kind(kind)
	if sum, err := sr.Address(r, &s.Deployer); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.Index); err != nil {
		return sum, err
	}
	if sum, err := sr.Address(r, &s.Implementation); err != nil {
		return sum, err
	}
	if sum, err := sr.Uint64(r, &s.Version); err != nil {
		return sum, err
	}
	return sr.Sum(), nil
}

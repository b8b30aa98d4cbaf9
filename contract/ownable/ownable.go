// Package ownable keeps the single administrator of a contract.
package ownable

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/core/types"
	"github.com/pkg/errors"
)

// ownable errors
var (
	ErrOwnableUnauthorizedAccount = errors.New("OwnableUnauthorizedAccount")
	ErrOwnableInvalidOwner        = errors.New("OwnableInvalidOwner")
)

// tagOwner is reserved in every contract that embeds the ownership
var tagOwner = byte(0xF0)

// Owner returns the current owner, the zero address after renouncing
func Owner(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagOwner})
	if len(bs) != common.AddressLength {
		return common.ZeroAddr
	}
	return common.BytesToAddress(bs)
}

// SetOwner initializes the owner at the creation of the contract
func SetOwner(cc *types.ContractContext, owner common.Address) error {
	if owner == common.ZeroAddr {
		return errors.WithStack(ErrOwnableInvalidOwner)
	}
	setOwner(cc, owner)
	return nil
}

func setOwner(cc *types.ContractContext, owner common.Address) {
	old := Owner(cc)
	if owner == common.ZeroAddr {
		cc.SetContractData([]byte{tagOwner}, nil)
	} else {
		cc.SetContractData([]byte{tagOwner}, owner[:])
	}
	cc.EmitEvent("OwnershipTransferred", old, owner)
}

// OnlyOwner fails when the caller is not the owner
func OnlyOwner(cc *types.ContractContext) error {
	owner := Owner(cc)
	if owner == common.ZeroAddr || cc.From() != owner {
		return errors.Wrap(ErrOwnableUnauthorizedAccount, cc.From().String())
	}
	return nil
}

func TransferOwnership(cc *types.ContractContext, newOwner common.Address) error {
	if err := OnlyOwner(cc); err != nil {
		return err
	}
	if newOwner == common.ZeroAddr {
		return errors.WithStack(ErrOwnableInvalidOwner)
	}
	setOwner(cc, newOwner)
	return nil
}

// RenounceOwnership leaves the contract without an owner, every owner-only method fails afterwards
func RenounceOwnership(cc *types.ContractContext) error {
	if err := OnlyOwner(cc); err != nil {
		return err
	}
	setOwner(cc, common.ZeroAddr)
	return nil
}

package util

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/common/bin"
	"github.com/meverselabs/stakefarm/contract/token"
	"github.com/meverselabs/stakefarm/core/types"
	"github.com/pkg/errors"
)

// DeployToken deploys a token that mints the supply map at creation
func DeployToken(ctx *types.Context, deployer common.Address, data *token.TokenContractConstruction) (common.Address, error) {
	classID, err := types.RegisterContractType(&token.TokenContract{})
	if err != nil {
		return ZeroAddress, err
	}
	bs, _, err := bin.WriterToBytes(data)
	if err != nil {
		return ZeroAddress, err
	}
	return ctx.DeployContract(deployer, classID, bs)
}

// token.Decimals()
func TokenDecimals(cc *types.ContractContext, tokenAddr common.Address) (uint8, error) {
	is, err := cc.Exec(cc, tokenAddr, "Decimals", []interface{}{})
	if err != nil {
		return 0, err
	}
	return is[0].(uint8), nil
}

// token.Transfer(to, am)
func SafeTransfer(cc *types.ContractContext, tokenAddr, to common.Address, am *amount.Amount) error {
	is, err := cc.Exec(cc, tokenAddr, "Transfer", []interface{}{to, am})
	if err != nil {
		return err
	}
	if ok, _ := is[0].(bool); !ok {
		return errors.Errorf("transfer of %v failed", tokenAddr.String())
	}
	return nil
}

// token.TransferFrom(from, to, am)
func SafeTransferFrom(cc *types.ContractContext, tokenAddr, from, to common.Address, am *amount.Amount) error {
	is, err := cc.Exec(cc, tokenAddr, "TransferFrom", []interface{}{from, to, am})
	if err != nil {
		return err
	}
	if ok, _ := is[0].(bool); !ok {
		return errors.Errorf("transferFrom of %v failed", tokenAddr.String())
	}
	return nil
}

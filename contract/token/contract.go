package token

import (
	"bytes"

	"github.com/pkg/errors"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/core/types"
)

// token errors
var (
	ErrInsufficientBalance   = errors.New("Token: TRANSFER_EXCEED_BALANCE")
	ErrInsufficientAllowance = errors.New("Token: INSUFFICIENT_ALLOWANCE")
	ErrNotMinter             = errors.New("Token: NOT_MINTER")
	ErrNotOwner              = errors.New("Token: NOT_OWNER")
	ErrZeroAddress           = errors.New("Token: ZERO_ADDRESS")
	ErrMinusAmount           = errors.New("Token: MINUS_AMOUNT")
)

type TokenContract struct {
	addr   common.Address
	master common.Address
}

func (cont *TokenContract) Address() common.Address {
	return cont.addr
}

func (cont *TokenContract) Master() common.Address {
	return cont.master
}

func (cont *TokenContract) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}

func (cont *TokenContract) OnCreate(cc *types.ContractContext, Args []byte) error {
	data := &TokenContractConstruction{}
	if _, err := data.ReadFrom(bytes.NewReader(Args)); err != nil {
		return err
	}
	cc.SetContractData([]byte{tagTokenName}, []byte(data.Name))
	cc.SetContractData([]byte{tagTokenSymbol}, []byte(data.Symbol))
	cc.SetContractData([]byte{tagTokenDecimals}, []byte{data.Decimals})
	if data.Hook != common.ZeroAddr {
		cc.SetContractData([]byte{tagTokenHook}, data.Hook[:])
	}
	for k, v := range data.InitialSupplyMap {
		if err := cont.addBalance(cc, k, v); err != nil {
			return err
		}
	}
	return nil
}

//////////////////////////////////////////////////
// Private Functions
//////////////////////////////////////////////////

func (cont *TokenContract) addBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("invalid transfer amount %v", am.String())
	}
	bal := cont.BalanceOf(cc, addr)
	cc.SetContractData(makeTokenKey(addr, tagTokenAmount), bal.Add(am).Bytes())

	total := cont.TotalSupply(cc).Add(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
	return nil
}

func (cont *TokenContract) subBalance(cc *types.ContractContext, addr common.Address, am *amount.Amount) error {
	if !am.IsPlus() {
		return errors.Errorf("invalid transfer amount %v", am.String())
	}
	bal := cont.BalanceOf(cc, addr)
	if bal.Less(am) {
		return errors.Wrapf(ErrInsufficientBalance, "%v has %v want %v", addr.String(), bal.String(), am.String())
	}
	bal = bal.Sub(am)
	if bal.IsZero() {
		cc.SetContractData(makeTokenKey(addr, tagTokenAmount), nil)
	} else {
		cc.SetContractData(makeTokenKey(addr, tagTokenAmount), bal.Bytes())
	}

	total := cont.TotalSupply(cc).Sub(am)
	cc.SetContractData([]byte{tagTokenTotalSupply}, total.Bytes())
	return nil
}

func (cont *TokenContract) move(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if To == common.ZeroAddr {
		return errors.Wrap(ErrZeroAddress, "transfer to")
	}
	if Amount.IsMinus() {
		return errors.WithStack(ErrMinusAmount)
	}
	if cont.BalanceOf(cc, From).Less(Amount) {
		return errors.Wrapf(ErrInsufficientBalance, "%v %v %v", From.String(), To.String(), Amount.String())
	}
	if Amount.IsPlus() {
		if err := cont.subBalance(cc, From, Amount); err != nil {
			return err
		}
		if err := cont.addBalance(cc, To, Amount); err != nil {
			return err
		}
	}
	cc.EmitEvent("Transfer", From, To, Amount)
	return cont.callHook(cc, From, To, Amount)
}

func (cont *TokenContract) callHook(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	hook := cont.Hook(cc)
	if hook == common.ZeroAddr {
		return nil
	}
	_, err := cc.Exec(cc, hook, "OnTokenTransfer", []interface{}{From, To, Amount})
	return err
}

//////////////////////////////////////////////////
// Public Writer Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Transfer(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	return cont.move(cc, cc.From(), To, Amount)
}

func (cont *TokenContract) Mint(cc *types.ContractContext, To common.Address, Amount *amount.Amount) error {
	if cc.From() != cont.Master() && !cont.IsMinter(cc, cc.From()) {
		return errors.Wrap(ErrNotMinter, cc.From().String())
	}
	if To == common.ZeroAddr {
		return errors.Wrap(ErrZeroAddress, "mint to")
	}
	if Amount.IsPlus() {
		if err := cont.addBalance(cc, To, Amount); err != nil {
			return err
		}
		cc.EmitEvent("Transfer", common.ZeroAddr, To, Amount)
	}
	return nil
}

func (cont *TokenContract) SetMinter(cc *types.ContractContext, To common.Address, Is bool) error {
	if cc.From() != cont.Master() {
		return errors.Wrap(ErrNotOwner, cc.From().String())
	}
	if Is {
		cc.SetContractData(makeTokenKey(To, tagTokenMinter), []byte{1})
	} else {
		cc.SetContractData(makeTokenKey(To, tagTokenMinter), nil)
	}
	return nil
}

func (cont *TokenContract) Approve(cc *types.ContractContext, spender common.Address, Amount *amount.Amount) error {
	if spender == common.ZeroAddr {
		return errors.Wrap(ErrZeroAddress, "approve to")
	}
	if Amount.IsMinus() {
		return errors.WithStack(ErrMinusAmount)
	}
	cont._approve(cc, cc.From(), spender, Amount)
	cc.EmitEvent("Approval", cc.From(), spender, Amount)
	return nil
}

func (cont *TokenContract) _approve(cc *types.ContractContext, owner common.Address, spender common.Address, Amount *amount.Amount) {
	if Amount.IsZero() {
		cc.SetContractData(makeAllowanceKey(owner, spender), nil)
	} else {
		cc.SetContractData(makeAllowanceKey(owner, spender), Amount.Bytes())
	}
}

func (cont *TokenContract) TransferFrom(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if Amount.IsMinus() {
		return errors.WithStack(ErrMinusAmount)
	}
	if From != cc.From() {
		allowance := cont.Allowance(cc, From, cc.From())
		if allowance.Less(Amount) {
			return errors.Wrapf(ErrInsufficientAllowance, "%v allows %v %v want %v", From.String(), cc.From().String(), allowance.String(), Amount.String())
		}
		cont._approve(cc, From, cc.From(), allowance.Sub(Amount))
	}
	return cont.move(cc, From, To, Amount)
}

//////////////////////////////////////////////////
// Public Reader Functions
//////////////////////////////////////////////////

func (cont *TokenContract) Name(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagTokenName}))
}

func (cont *TokenContract) Symbol(cc *types.ContractContext) string {
	return string(cc.ContractData([]byte{tagTokenSymbol}))
}

func (cont *TokenContract) Decimals(cc *types.ContractContext) uint8 {
	bs := cc.ContractData([]byte{tagTokenDecimals})
	if len(bs) != 1 {
		return amount.FractionalCount
	}
	return bs[0]
}

func (cont *TokenContract) TotalSupply(cc *types.ContractContext) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData([]byte{tagTokenTotalSupply}))
}

func (cont *TokenContract) BalanceOf(cc *types.ContractContext, from common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData(makeTokenKey(from, tagTokenAmount)))
}

func (cont *TokenContract) IsMinter(cc *types.ContractContext, addr common.Address) bool {
	bs := cc.ContractData(makeTokenKey(addr, tagTokenMinter))
	return len(bs) == 1 && bs[0] == 1
}

func (cont *TokenContract) Allowance(cc *types.ContractContext, _owner common.Address, _spender common.Address) *amount.Amount {
	return amount.NewAmountFromBytes(cc.ContractData(makeAllowanceKey(_owner, _spender)))
}

func (cont *TokenContract) Hook(cc *types.ContractContext) common.Address {
	bs := cc.ContractData([]byte{tagTokenHook})
	if len(bs) != common.AddressLength {
		return common.ZeroAddr
	}
	return common.BytesToAddress(bs)
}

package token_test

import (
	"errors"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/contract/token"
	"github.com/meverselabs/stakefarm/contract/util"
	"github.com/meverselabs/stakefarm/core/types"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var errBlocked = errors.New("blocked")

// blockHook rejects every transfer sent by the blocked address
type blockHook struct {
	addr   common.Address
	master common.Address
}

func (cont *blockHook) Address() common.Address { return cont.addr }
func (cont *blockHook) Master() common.Address  { return cont.master }
func (cont *blockHook) Init(addr common.Address, master common.Address) {
	cont.addr = addr
	cont.master = master
}
func (cont *blockHook) OnCreate(cc *types.ContractContext, Args []byte) error {
	cc.SetContractData([]byte{0x01}, Args)
	return nil
}
func (cont *blockHook) Front() interface{} { return &blockHookFront{} }

type blockHookFront struct{}

func (f *blockHookFront) OnTokenTransfer(cc *types.ContractContext, From common.Address, To common.Address, Amount *amount.Amount) error {
	if common.BytesToAddress(cc.ContractData([]byte{0x01})) == From {
		return errBlocked
	}
	cc.EmitEvent("Seen", From, To, Amount)
	return nil
}

var _ = Describe("Token", func() {
	var (
		ctx   *types.Context
		admin common.Address
		alice common.Address
		bob   common.Address
		tk    common.Address
	)

	BeforeEach(func() {
		var users []common.Address
		admin, users = util.Accounts("alice", "bob")
		alice, bob = users[0], users[1]

		ctx = types.NewContext(1000)
		var err error
		tk, err = util.DeployToken(ctx, admin, &token.TokenContractConstruction{
			Name:     "Reward",
			Symbol:   "RWD",
			Decimals: 18,
			InitialSupplyMap: map[common.Address]*amount.Amount{
				alice: util.Units(1000, 18),
			},
		})
		Expect(err).To(Succeed())
	})

	It("reads the metadata and the initial supply", func() {
		is, err := ctx.View(alice, tk, "Name")
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal("Reward"))
		is, err = ctx.View(alice, tk, "Decimals")
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(uint8(18)))

		Expect(util.BalanceOf(ctx, tk, alice)).To(EqualAmount(util.Units(1000, 18)))
		Expect(util.ViewAmount(ctx, tk, "TotalSupply")).To(EqualAmount(util.Units(1000, 18)))
	})

	It("transfers and rejects overdrafts", func() {
		is, err := ctx.Call(alice, tk, "Transfer", bob, util.Units(400, 18))
		Expect(err).To(Succeed())
		Expect(is[0]).To(BeTrue())
		Expect(util.BalanceOf(ctx, tk, bob)).To(EqualAmount(util.Units(400, 18)))

		_, err = ctx.Call(bob, tk, "Transfer", alice, util.Units(401, 18))
		Expect(err).To(MatchError(token.ErrInsufficientBalance))
		Expect(util.BalanceOf(ctx, tk, bob)).To(EqualAmount(util.Units(400, 18)))

		_, err = ctx.Call(alice, tk, "Transfer", util.ZeroAddress, util.Units(1, 18))
		Expect(err).To(MatchError(token.ErrZeroAddress))
	})

	It("spends the allowance on transferFrom", func() {
		Expect(util.Approve(ctx, tk, alice, bob, util.Units(100, 18))).To(Succeed())

		_, err := ctx.Call(bob, tk, "TransferFrom", alice, bob, util.Units(60, 18))
		Expect(err).To(Succeed())
		Expect(util.ViewAmount(ctx, tk, "Allowance", alice, bob)).To(EqualAmount(util.Units(40, 18)))

		_, err = ctx.Call(bob, tk, "TransferFrom", alice, bob, util.Units(41, 18))
		Expect(err).To(MatchError(token.ErrInsufficientAllowance))
		Expect(util.BalanceOf(ctx, tk, bob)).To(EqualAmount(util.Units(60, 18)))
	})

	It("mints only for the master and the minters", func() {
		_, err := ctx.Call(alice, tk, "Mint", alice, util.Units(1, 18))
		Expect(err).To(MatchError(token.ErrNotMinter))

		_, err = ctx.Call(alice, tk, "SetMinter", alice, true)
		Expect(err).To(MatchError(token.ErrNotOwner))

		_, err = ctx.Call(admin, tk, "SetMinter", alice, true)
		Expect(err).To(Succeed())
		_, err = ctx.Call(alice, tk, "Mint", bob, util.Units(5, 18))
		Expect(err).To(Succeed())
		Expect(util.BalanceOf(ctx, tk, bob)).To(EqualAmount(util.Units(5, 18)))
		Expect(util.ViewAmount(ctx, tk, "TotalSupply")).To(EqualAmount(util.Units(1005, 18)))
	})

	Describe("with a transfer hook", func() {
		var hooked common.Address

		BeforeEach(func() {
			classID, err := types.RegisterContractType(&blockHook{})
			Expect(err).To(Succeed())
			hook, err := ctx.DeployContract(admin, classID, bob[:])
			Expect(err).To(Succeed())

			hooked, err = util.DeployToken(ctx, admin, &token.TokenContractConstruction{
				Name:     "Hooked",
				Symbol:   "HKD",
				Decimals: 6,
				Hook:     hook,
				InitialSupplyMap: map[common.Address]*amount.Amount{
					alice: util.Units(10, 6),
					bob:   util.Units(10, 6),
				},
			})
			Expect(err).To(Succeed())
		})

		It("notifies the hook after the balances move", func() {
			_, err := ctx.Call(alice, hooked, "Transfer", bob, util.Units(1, 6))
			Expect(err).To(Succeed())
			hook, err := util.ViewAddress(ctx, hooked, "Hook")
			Expect(err).To(Succeed())
			es := ctx.FilterEvents(hook, "Seen")
			Expect(es).To(HaveLen(1))
			Expect(es[0].Arg(0)).To(Equal(alice))
		})

		It("reverts the transfer the hook rejects", func() {
			before := ctx.StateHash()
			_, err := ctx.Call(bob, hooked, "Transfer", alice, util.Units(1, 6))
			Expect(err).To(MatchError(errBlocked))
			Expect(ctx.StateHash()).To(Equal(before))
			Expect(util.BalanceOf(ctx, hooked, bob)).To(EqualAmount(util.Units(10, 6)))
		})
	})
})

package classic_test

import (
	"math"

	"github.com/meverselabs/stakefarm/contract/farm"
	"github.com/meverselabs/stakefarm/contract/ownable"
	"github.com/meverselabs/stakefarm/contract/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Classic Farm", func() {

	Describe("Scenario", Ordered, func() {
		BeforeAll(func() {
			beforeEach()
		})

		It("is funded before the start", func() {
			Expect(util.ViewUint64(ctx, farmAddr, "EndTimestamp")).To(Equal(start + 100))
			Expect(util.ViewAmount(ctx, farmAddr, "TotalRewards")).To(EqualAmount(u(10000)))
			Expect(balance(reward, farmAddr)).To(EqualAmount(u(10000)))
			Expect(util.ViewAddress(ctx, farmAddr, "Owner")).To(Equal(admin))
		})

		It("accepts deposits before the start without rewards", func() {
			call(alice, "Deposit", uint64(0), u(1500))
			call(bob, "Deposit", uint64(0), u(500))

			Expect(totalPending()).To(EqualAmount(u(0)))
			Expect(pending(0, alice)).To(EqualAmount(u(0)))
			Expect(balance(stake1, farmAddr)).To(EqualAmount(u(2000)))
		})

		It("splits the emission by stake", func() {
			at(10)
			Expect(totalPending()).To(EqualAmount(u(1000)))
			Expect(pending(0, alice)).To(EqualAmount(u(750)))
			Expect(pending(0, bob)).To(EqualAmount(u(250)))
		})

		It("dilutes on a new deposit", func() {
			at(30)
			call(carl, "Deposit", uint64(0), u(2000))
			Expect(totalPending()).To(EqualAmount(u(3000)))
			Expect(pending(0, alice)).To(EqualAmount(u(2250)))
			Expect(pending(0, bob)).To(EqualAmount(u(750)))
			Expect(pending(0, carl)).To(EqualAmount(u(0)))

			at(50)
			Expect(totalPending()).To(EqualAmount(u(5000)))
			Expect(pending(0, alice)).To(EqualAmount(u(3000)))
			Expect(pending(0, bob)).To(EqualAmount(u(1000)))
			Expect(pending(0, carl)).To(EqualAmount(u(1000)))
		})

		It("harvests on withdraw", func() {
			at(70)
			call(alice, "Withdraw", uint64(0), u(1500))
			Expect(balance(stake1, alice)).To(EqualAmount(u(5000)))
			Expect(balance(reward, alice)).To(EqualAmount(u(3750)))
			Expect(totalPending()).To(EqualAmount(u(3250)))
			Expect(pending(0, bob)).To(EqualAmount(u(1250)))
			Expect(pending(0, carl)).To(EqualAmount(u(2000)))

			at(80)
			call(carl, "Withdraw", uint64(0), u(1500))
			Expect(balance(reward, carl)).To(EqualAmount(u(2800)))
			Expect(util.ViewAmount(ctx, farmAddr, "Deposited", uint64(0), carl)).To(EqualAmount(u(500)))
			Expect(totalPending()).To(EqualAmount(u(1450)))
			Expect(pending(0, bob)).To(EqualAmount(u(1450)))
		})

		It("rejects withdrawals above the stake", func() {
			before := ctx.StateHash()
			_, err := ctx.Call(alice, farmAddr, "Withdraw", uint64(0), u(1500))
			Expect(err).To(MatchError(farm.ErrUnauthorizedWithdrawal))
			_, err = ctx.Call(carl, farmAddr, "Withdraw", uint64(0), u(1500))
			Expect(err).To(MatchError(farm.ErrUnauthorizedWithdrawal))
			Expect(ctx.StateHash()).To(Equal(before))
		})

		It("extends the end on a later funding", func() {
			call(admin, "Fund", u(8000))
			Expect(util.ViewUint64(ctx, farmAddr, "EndTimestamp")).To(Equal(start + 180))
			Expect(util.ViewAmount(ctx, farmAddr, "TotalRewards")).To(EqualAmount(u(18000)))
		})

		It("adds a pool with an update of the others", func() {
			at(100)
			call(admin, "Add", uint64(5), stake2, true)
			Expect(util.ViewUint64(ctx, farmAddr, "PoolLength")).To(Equal(uint64(2)))
			Expect(util.ViewUint64(ctx, farmAddr, "TotalAllocPoint")).To(Equal(uint64(20)))
			is, err := ctx.View(admin, farmAddr, "Pools")
			Expect(err).To(Succeed())
			pools := is[0].([]*farm.PoolInfo)
			Expect(pools).To(HaveLen(2))
			Expect(pools[0].StakeToken).To(Equal(stake1))
			Expect(pools[1].StakeToken).To(Equal(stake2))
			Expect(pools[1].AllocPoint).To(Equal(uint64(5)))
			Expect(totalPending()).To(EqualAmount(u(3450)))
			Expect(pending(0, bob)).To(EqualAmount(u(2450)))
			Expect(pending(0, carl)).To(EqualAmount(u(1000)))
		})

		It("keeps the emission of an empty pool unclaimed", func() {
			at(110)
			call(carl, "Deposit", uint64(1), u(500))
			Expect(totalPending()).To(EqualAmount(u(4450)))
			Expect(pending(0, bob)).To(EqualAmount(u(2825)))
			Expect(pending(0, carl)).To(EqualAmount(u(1375)))
			Expect(pending(1, carl)).To(EqualAmount(u(0)))
			Expect(pending(1, alice)).To(EqualAmount(u(0)))

			at(120)
			call(alice, "Deposit", uint64(1), u(1000))
			Expect(totalPending()).To(EqualAmount(u(5450)))
			Expect(pending(0, bob)).To(EqualAmount(u(3200)))
			Expect(pending(0, carl)).To(EqualAmount(u(1750)))
			Expect(pending(1, carl)).To(EqualAmount(u(250)))

			at(140)
			Expect(totalPending()).To(EqualAmount(u(7450)))
			Expect(pending(0, bob)).To(EqualAmount(u(3950)))
			Expect(pending(0, carl)).To(EqualAmount(u(2500)))
		})

		It("harvests only the pool of the withdrawal", func() {
			at(150)
			call(carl, "Withdraw", uint64(1), u(200))
			Expect(balance(reward, carl)).To(EqualAmount(u(3300)))
			Expect(balance(stake2, carl)).To(EqualAmount(u(500)))
			Expect(totalPending()).To(EqualAmount(u(7950)))
			Expect(pending(0, bob)).To(EqualAmount(u(4325)))
			Expect(pending(0, carl)).To(EqualAmount(u(2875)))
			Expect(pending(1, alice)).To(EqualAmount(u(500)))
			Expect(balance(stake2, farmAddr)).To(EqualAmount(u(1300)))
		})

		It("returns the stake without rewards on an emergency withdrawal", func() {
			at(160)
			call(carl, "EmergencyWithdraw", uint64(1))
			Expect(balance(stake2, carl)).To(EqualAmount(u(800)))
			Expect(balance(reward, carl)).To(EqualAmount(u(3300)))
			Expect(util.ViewAmount(ctx, farmAddr, "Deposited", uint64(1), carl)).To(EqualAmount(u(0)))
			Expect(pending(1, alice)).To(EqualAmount(u(750)))
			Expect(balance(stake2, farmAddr)).To(EqualAmount(u(1000)))

			es := ctx.FilterEvents(farmAddr, "EmergencyWithdrawn")
			Expect(es).To(HaveLen(1))
			Expect(es[0].Arg(0)).To(Equal(carl))
		})

		It("stops the emission at the end", func() {
			for _, offset := range []uint64{180, 200} {
				at(offset)
				Expect(totalPending()).To(EqualAmount(u(10950)))
				Expect(pending(0, bob)).To(EqualAmount(u(5450)))
				Expect(pending(0, carl)).To(EqualAmount(u(4000)))
				Expect(pending(1, alice)).To(EqualAmount(u(1250)))
			}
		})

		It("cannot be funded after the end", func() {
			_, err := ctx.Call(admin, farmAddr, "Fund", u(1000))
			Expect(err).To(MatchError(farm.ErrFarmClosed))
		})

		It("pays everything but the unclaimed emission", func() {
			call(alice, "Withdraw", uint64(1), u(1000))
			call(bob, "Withdraw", uint64(0), u(500))
			call(carl, "Withdraw", uint64(0), u(500))

			Expect(balance(reward, alice)).To(EqualAmount(u(5000)))
			Expect(balance(reward, bob)).To(EqualAmount(u(5450)))
			Expect(balance(reward, carl)).To(EqualAmount(u(7300)))
			Expect(balance(stake1, carl)).To(EqualAmount(u(2000)))
			Expect(balance(stake2, alice)).To(EqualAmount(u(1000)))

			Expect(totalPending()).To(EqualAmount(u(250)))
			Expect(balance(reward, farmAddr)).To(EqualAmount(u(250)))
			Expect(util.ViewAmount(ctx, farmAddr, "PaidOut")).To(EqualAmount(u(17750)))
		})
	})

	Describe("Administration", func() {
		BeforeEach(func() {
			beforeEach()
		})

		It("rejects owner calls of others", func() {
			_, err := ctx.Call(alice, farmAddr, "Fund", u(100))
			Expect(err).To(MatchError(ownable.ErrOwnableUnauthorizedAccount))
			_, err = ctx.Call(alice, farmAddr, "Add", uint64(5), stake2, false)
			Expect(err).To(MatchError(ownable.ErrOwnableUnauthorizedAccount))
			_, err = ctx.Call(alice, farmAddr, "Set", uint64(0), uint64(5), false)
			Expect(err).To(MatchError(ownable.ErrOwnableUnauthorizedAccount))
		})

		It("rejects a second pool of the same stake token", func() {
			_, err := ctx.Call(admin, farmAddr, "Add", uint64(5), stake1, false)
			Expect(err).To(MatchError(farm.ErrAlreadyAdded))
			Expect(util.ViewUint64(ctx, farmAddr, "PoolLength")).To(Equal(uint64(1)))
		})

		It("rejects unknown pools", func() {
			_, err := ctx.Call(alice, farmAddr, "Deposit", uint64(1), u(1))
			Expect(err).To(MatchError(farm.ErrInvalidValue))
			_, err = ctx.View(alice, farmAddr, "Pending", uint64(7), alice)
			Expect(err).To(MatchError(farm.ErrInvalidValue))
			_, err = ctx.Call(admin, farmAddr, "Set", uint64(1), uint64(5), false)
			Expect(err).To(MatchError(farm.ErrInvalidValue))
		})

		It("moves the split on a new allocation", func() {
			call(admin, "Add", uint64(5), stake2, false)
			call(bob, "Deposit", uint64(0), u(500))
			call(alice, "Deposit", uint64(1), u(1000))

			at(10)
			Expect(pending(0, bob)).To(EqualAmount(u(750)))
			Expect(pending(1, alice)).To(EqualAmount(u(250)))

			call(admin, "Set", uint64(1), uint64(15), true)
			Expect(util.ViewUint64(ctx, farmAddr, "TotalAllocPoint")).To(Equal(uint64(30)))

			at(20)
			Expect(pending(0, bob)).To(EqualAmount(u(1250)))
			Expect(pending(1, alice)).To(EqualAmount(u(750)))
		})

		It("bounds the total allocation point", func() {
			_, err := ctx.Call(admin, farmAddr, "Set", uint64(0), uint64(math.MaxUint64), false)
			Expect(err).To(MatchError(farm.ErrInvalidValue))
			Expect(util.ViewUint64(ctx, farmAddr, "TotalAllocPoint")).To(Equal(uint64(15)))

			call(admin, "Set", uint64(0), farm.MaxTotalAllocPoint, false)
			_, err = ctx.Call(admin, farmAddr, "Add", uint64(2), stake2, false)
			Expect(err).To(MatchError(farm.ErrInvalidValue))
			Expect(util.ViewUint64(ctx, farmAddr, "PoolLength")).To(Equal(uint64(1)))
			Expect(util.ViewUint64(ctx, farmAddr, "TotalAllocPoint")).To(Equal(farm.MaxTotalAllocPoint))

			call(admin, "Set", uint64(0), uint64(15), false)
			call(admin, "Add", farm.MaxTotalAllocPoint-15, stake2, false)
			Expect(util.ViewUint64(ctx, farmAddr, "TotalAllocPoint")).To(Equal(farm.MaxTotalAllocPoint))
			_, err = ctx.Call(admin, farmAddr, "Set", uint64(0), uint64(16), false)
			Expect(err).To(MatchError(farm.ErrInvalidValue))

			call(bob, "Deposit", uint64(0), u(500))
			call(alice, "Deposit", uint64(1), u(1000))
			at(10)
			Expect(totalPending()).To(EqualAmount(u(1000)))
			Expect(u(1000).Less(pending(0, bob).Add(pending(1, alice)))).To(BeFalse())
		})

		It("harvests on a zero deposit", func() {
			call(bob, "Deposit", uint64(0), u(500))
			at(10)
			call(bob, "Deposit", uint64(0), u(0))
			Expect(balance(reward, bob)).To(EqualAmount(u(1000)))
			Expect(pending(0, bob)).To(EqualAmount(u(0)))
			Expect(util.ViewAmount(ctx, farmAddr, "Deposited", uint64(0), bob)).To(EqualAmount(u(500)))
		})

		It("hands over the ownership", func() {
			call(admin, "TransferOwnership", alice)
			Expect(util.ViewAddress(ctx, farmAddr, "Owner")).To(Equal(alice))
			_, err := ctx.Call(admin, farmAddr, "Add", uint64(5), stake2, false)
			Expect(err).To(MatchError(ownable.ErrOwnableUnauthorizedAccount))
			call(alice, "Add", uint64(5), stake2, false)

			call(alice, "RenounceOwnership")
			Expect(util.ViewAddress(ctx, farmAddr, "Owner")).To(Equal(util.ZeroAddress))
			_, err = ctx.Call(alice, farmAddr, "Set", uint64(1), uint64(1), false)
			Expect(err).To(MatchError(ownable.ErrOwnableUnauthorizedAccount))
		})
	})

	Describe("Reward token hooks", func() {
		It("stores the position before the reward moves", func() {
			beforeEach(util.ZeroAddress)
			call(alice, "Deposit", uint64(0), u(1500))

			at(10)
			call(alice, "Withdraw", uint64(0), u(500))
			Expect(balance(reward, alice)).To(EqualAmount(u(1000)))

			es := ctx.FilterEvents(hook, "Probe")
			Expect(es).To(HaveLen(1))
			Expect(es[0].Arg(0)).To(Equal(alice))
			Expect(es[0].Arg(1)).To(EqualAmount(u(1000)))
		})

		It("lets the stake out when the reward cannot be paid", func() {
			beforeEach(bob)
			call(bob, "Deposit", uint64(0), u(500))

			at(10)
			before := ctx.StateHash()
			_, err := ctx.Call(bob, farmAddr, "Withdraw", uint64(0), u(500))
			Expect(err).To(MatchError(errRewardBlocked))
			Expect(ctx.StateHash()).To(Equal(before))

			call(bob, "EmergencyWithdraw", uint64(0))
			Expect(balance(stake1, bob)).To(EqualAmount(u(1000)))
			Expect(balance(reward, bob)).To(EqualAmount(u(0)))
			Expect(util.ViewAmount(ctx, farmAddr, "Deposited", uint64(0), bob)).To(EqualAmount(u(0)))
		})
	})
})

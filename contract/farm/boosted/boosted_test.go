package boosted_test

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/contract/farm"
	"github.com/meverselabs/stakefarm/contract/ownable"
	"github.com/meverselabs/stakefarm/contract/util"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Boosted Farm", func() {

	Describe("Scenario", Ordered, func() {
		BeforeAll(func() {
			beforeEach()
		})

		It("fixes the ratio on the first funding", func() {
			Expect(util.ViewAmount(ctx, farmAddr, "DecimalEqReward")).To(EqualAmount(amount.NewAmountFromUint64(1)))
			Expect(util.ViewAmount(ctx, farmAddr, "DecimalEqBooster")).To(EqualAmount(amount.Pow10(12)))
			Expect(util.ViewAmount(ctx, farmAddr, "Ratio")).To(EqualAmount(amount.Pow10(18).MulC(2)))
			Expect(util.ViewUint64(ctx, farmAddr, "EndTimestamp")).To(Equal(start + 100))
			Expect(util.ViewAmount(ctx, farmAddr, "TotalRewards")).To(EqualAmount(u(10000)))
			Expect(util.ViewAmount(ctx, farmAddr, "TotalBooster")).To(EqualAmount(b(20000)))
			Expect(balance(booster, farmAddr)).To(EqualAmount(b(20000)))
		})

		It("emits both tokens by stake", func() {
			call(alice, "Deposit", uint64(0), u(1500))
			call(bob, "Deposit", uint64(0), u(500))
			expectTotalPending(u(0), b(0))

			at(10)
			expectTotalPending(u(1000), b(2000))
			expectPending(0, alice, u(750), b(1500))
			expectPending(0, bob, u(250), b(500))

			at(30)
			call(carl, "Deposit", uint64(0), u(2000))
			expectTotalPending(u(3000), b(6000))
			expectPending(0, carl, u(0), b(0))

			at(50)
			expectPending(0, alice, u(3000), b(6000))
			expectPending(0, carl, u(1000), b(2000))
		})

		It("pays both tokens on withdraw", func() {
			at(70)
			call(alice, "Withdraw", uint64(0), u(1500))
			Expect(balance(reward, alice)).To(EqualAmount(u(3750)))
			Expect(balance(booster, alice)).To(EqualAmount(b(7500)))
			expectTotalPending(u(3250), b(6500))

			at(80)
			call(carl, "Withdraw", uint64(0), u(1500))
			Expect(balance(reward, carl)).To(EqualAmount(u(2800)))
			Expect(balance(booster, carl)).To(EqualAmount(b(5600)))
			expectPending(0, bob, u(1450), b(2900))

			_, err := ctx.Call(carl, farmAddr, "Withdraw", uint64(0), u(1500))
			Expect(err).To(MatchError(farm.ErrUnauthorizedWithdrawal))
		})

		It("keeps the ratio on later fundings", func() {
			_, err := ctx.Call(admin, farmAddr, "Fund", u(8000), b(15999))
			Expect(err).To(MatchError(farm.ErrInvalidValue))

			call(admin, "Fund", u(8000), b(16000))
			Expect(util.ViewUint64(ctx, farmAddr, "EndTimestamp")).To(Equal(start + 180))
			Expect(util.ViewAmount(ctx, farmAddr, "TotalBooster")).To(EqualAmount(b(36000)))
		})

		It("splits by allocation and forfeits on emergency", func() {
			at(100)
			call(admin, "Add", uint64(5), stake2, true)
			expectPending(0, bob, u(2450), b(4900))

			at(110)
			call(carl, "Deposit", uint64(1), u(500))
			at(120)
			call(alice, "Deposit", uint64(1), u(1000))
			expectPending(1, carl, u(250), b(500))

			at(150)
			call(carl, "Withdraw", uint64(1), u(200))
			Expect(balance(reward, carl)).To(EqualAmount(u(3300)))
			Expect(balance(booster, carl)).To(EqualAmount(b(6600)))
			expectTotalPending(u(7950), b(15900))

			at(160)
			call(carl, "EmergencyWithdraw", uint64(1))
			Expect(balance(stake2, carl)).To(EqualAmount(u(800)))
			Expect(balance(booster, carl)).To(EqualAmount(b(6600)))
			expectPending(1, alice, u(750), b(1500))
		})

		It("closes at the end", func() {
			at(200)
			expectTotalPending(u(10950), b(21900))
			expectPending(0, bob, u(5450), b(10900))
			expectPending(0, carl, u(4000), b(8000))
			expectPending(1, alice, u(1250), b(2500))

			_, err := ctx.Call(admin, farmAddr, "Fund", u(1000), b(2000))
			Expect(err).To(MatchError(farm.ErrFarmClosed))

			call(alice, "Withdraw", uint64(1), u(1000))
			call(bob, "Withdraw", uint64(0), u(500))
			call(carl, "Withdraw", uint64(0), u(500))
			Expect(balance(reward, alice)).To(EqualAmount(u(5000)))
			Expect(balance(booster, alice)).To(EqualAmount(b(10000)))
			Expect(balance(reward, carl)).To(EqualAmount(u(7300)))
			Expect(balance(booster, carl)).To(EqualAmount(b(14600)))
			expectTotalPending(u(250), b(500))
			Expect(balance(booster, farmAddr)).To(EqualAmount(b(500)))

			ams, err := util.ViewAmounts(ctx, farmAddr, "PaidOut")
			Expect(err).To(Succeed())
			Expect(ams[0]).To(EqualAmount(u(17750)))
			Expect(ams[1]).To(EqualAmount(b(35500)))
		})
	})

	Describe("Proportions", func() {
		BeforeEach(func() {
			beforeEach()
		})

		It("accepts later fundings in a proportion the ratio rounds", func() {
			reward18 := deployToken("R18", 18, map[common.Address]*amount.Amount{admin: u(1000)})
			booster18 := deployToken("B18", 18, map[common.Address]*amount.Amount{admin: u(1000)})
			var err error
			farmAddr, err = deployFarm(admin, reward18, booster18, u(1), start)
			Expect(err).To(Succeed())
			call(admin, "Add", uint64(10), stake1, false)
			Expect(util.Approve(ctx, stake1, alice, farmAddr, u(5000))).To(Succeed())
			Expect(util.Approve(ctx, reward18, admin, farmAddr, u(1000))).To(Succeed())
			Expect(util.Approve(ctx, booster18, admin, farmAddr, u(1000))).To(Succeed())

			call(admin, "Fund", u(300), u(100))
			Expect(util.ViewAmount(ctx, farmAddr, "Ratio")).To(EqualAmount(amount.MustParseAmount("0.333333333333333333")))

			call(admin, "Fund", u(300), u(100))
			call(admin, "Fund", u(3), u(1))
			_, err = ctx.Call(admin, farmAddr, "Fund", u(300), u(101))
			Expect(err).To(MatchError(farm.ErrInvalidValue))
			Expect(util.ViewAmount(ctx, farmAddr, "TotalRewards")).To(EqualAmount(u(603)))
			Expect(util.ViewAmount(ctx, farmAddr, "TotalBooster")).To(EqualAmount(u(201)))
			Expect(util.ViewUint64(ctx, farmAddr, "EndTimestamp")).To(Equal(start + 603))

			call(alice, "Deposit", uint64(0), u(1))
			at(10)
			expectPending(0, alice, u(10), amount.MustParseAmount("3.333333333333333"))
		})

		It("pays both streams when the booster has more decimals", func() {
			reward6 := deployToken("R6", 6, map[common.Address]*amount.Amount{admin: b(1000)})
			booster18 := deployToken("B18", 18, map[common.Address]*amount.Amount{admin: u(1000)})
			var err error
			farmAddr, err = deployFarm(admin, reward6, booster18, b(1), start)
			Expect(err).To(Succeed())
			call(admin, "Add", uint64(10), stake1, false)
			Expect(util.Approve(ctx, stake1, alice, farmAddr, u(5000))).To(Succeed())
			Expect(util.Approve(ctx, reward6, admin, farmAddr, b(1000))).To(Succeed())
			Expect(util.Approve(ctx, booster18, admin, farmAddr, u(1000))).To(Succeed())

			call(admin, "Fund", b(100), u(200))
			Expect(util.ViewAmount(ctx, farmAddr, "Ratio")).To(EqualAmount(amount.Pow10(18).MulC(2)))
			Expect(util.ViewUint64(ctx, farmAddr, "EndTimestamp")).To(Equal(start + 100))

			_, err = ctx.Call(admin, farmAddr, "Fund", b(50), u(99))
			Expect(err).To(MatchError(farm.ErrInvalidValue))
			call(admin, "Fund", b(50), u(100))
			Expect(util.ViewUint64(ctx, farmAddr, "EndTimestamp")).To(Equal(start + 150))

			call(alice, "Deposit", uint64(0), u(1000))
			at(10)
			expectPending(0, alice, b(10), u(20))
			expectTotalPending(b(10), u(20))

			call(alice, "Withdraw", uint64(0), u(1000))
			Expect(balance(reward6, alice)).To(EqualAmount(b(10)))
			Expect(balance(booster18, alice)).To(EqualAmount(u(20)))

			at(200)
			expectTotalPending(b(140), u(280))
		})
	})

	Describe("Creation", func() {
		BeforeEach(func() {
			beforeEach()
		})

		It("rejects the reward token as the booster", func() {
			_, err := deployFarm(admin, reward, reward, u(100), start)
			Expect(err).To(MatchError(farm.ErrInvalidValue))
		})

		It("scales the reward when the booster has more decimals", func() {
			reward6 := deployToken("R6", 6, map[common.Address]*amount.Amount{admin: b(1000)})
			booster18 := deployToken("B18", 18, map[common.Address]*amount.Amount{admin: u(1000)})
			addr, err := deployFarm(admin, reward6, booster18, b(1), start)
			Expect(err).To(Succeed())
			Expect(util.ViewAmount(ctx, addr, "DecimalEqReward")).To(EqualAmount(amount.Pow10(12)))
			Expect(util.ViewAmount(ctx, addr, "DecimalEqBooster")).To(EqualAmount(amount.NewAmountFromUint64(1)))
		})

		It("funds only by the owner", func() {
			_, err := ctx.Call(alice, farmAddr, "Fund", u(10), b(20))
			Expect(err).To(MatchError(ownable.ErrOwnableUnauthorizedAccount))
		})
	})
})

package types_test

import (
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/common/bin"
	"github.com/meverselabs/stakefarm/core/types"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Context", func() {
	var (
		ctx     *types.Context
		classID uint64
		alice   = common.HexToAddress("0x0000000000000000000000000000000000a11ce")
		counter common.Address
		other   common.Address
	)

	BeforeEach(func() {
		var err error
		classID, err = types.RegisterContractType(&counterContract{})
		Expect(err).To(Succeed())

		ctx = types.NewContext(1000)
		counter, err = ctx.DeployContract(alice, classID, nil)
		Expect(err).To(Succeed())
		other, err = ctx.DeployContract(alice, classID, bin.Uint64Bytes(10))
		Expect(err).To(Succeed())
	})

	It("registers the same type once", func() {
		id, err := types.RegisterContractType(&counterContract{})
		Expect(err).To(Succeed())
		Expect(id).To(Equal(classID))
		Expect(types.IsValidClassID(classID)).To(BeTrue())
		Expect(types.ContractName(classID)).To(HaveSuffix("counterContract"))
	})

	It("derives distinct addresses for every deployment", func() {
		Expect(counter).NotTo(Equal(other))
		Expect(ctx.IsContract(counter)).To(BeTrue())
		cd, err := ctx.ContractDefine(other)
		Expect(err).To(Succeed())
		Expect(cd.Owner).To(Equal(alice))
		Expect(cd.ClassID).To(Equal(classID))
	})

	It("commits a successful call with its events", func() {
		is, err := ctx.Call(alice, counter, "Add", uint64(5))
		Expect(err).To(Succeed())
		Expect(is).To(Equal([]interface{}{uint64(5)}))

		is, err = ctx.View(alice, counter, "value")
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(uint64(5)))

		es := ctx.FilterEvents(counter, "Added")
		Expect(es).To(HaveLen(1))
		Expect(es[0].Arg(0)).To(Equal(alice))
		Expect(ctx.StackSize()).To(Equal(1))
	})

	It("reverts state and events of a failed call", func() {
		before := ctx.StateHash()
		_, err := ctx.Call(alice, counter, "Add", uint64(101))
		Expect(err).To(MatchError(errTooLarge))
		Expect(ctx.StateHash()).To(Equal(before))
		Expect(ctx.FilterEvents(counter, "Added")).To(BeEmpty())
	})

	It("turns a panic into an error and reverts", func() {
		before := ctx.StateHash()
		_, err := ctx.Call(alice, counter, "Panic")
		Expect(err).To(HaveOccurred())
		Expect(err.Error()).To(ContainSubstring("boom"))
		Expect(ctx.StateHash()).To(Equal(before))
	})

	It("reverts nested calls when the outer call fails", func() {
		_, err := ctx.Call(alice, counter, "Forward", other, uint64(1), true)
		Expect(err).To(MatchError(errTooLarge))
		is, err := ctx.View(alice, other, "Value")
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(uint64(10)))

		is, err = ctx.Call(alice, counter, "Forward", other, uint64(1), false)
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(alice))
		is, err = ctx.View(alice, other, "Value")
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(uint64(11)))
	})

	It("sees the calling contract as the sender of nested calls", func() {
		is, err := ctx.Call(alice, counter, "WhoCalls", other)
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(counter))
	})

	It("discards the effects of a view", func() {
		before := ctx.StateHash()
		is, err := ctx.View(alice, counter, "Add", uint64(3))
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(uint64(3)))
		Expect(ctx.StateHash()).To(Equal(before))
	})

	It("converts text and numeric arguments", func() {
		is, err := ctx.Call(alice, counter, "Add", "7")
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(uint64(7)))

		is, err = ctx.Call(alice, counter, "AddAmount", 3)
		Expect(err).To(Succeed())
		Expect(is[0].(*amount.Amount).Uint64()).To(Equal(uint64(10)))

		_, err = ctx.Call(alice, counter, "Add", -1)
		Expect(err).To(MatchError(types.ErrInvalidArgument))
		_, err = ctx.Call(alice, counter, "Add")
		Expect(err).To(MatchError(types.ErrInvalidArgument))
		_, err = ctx.Call(alice, counter, "Missing")
		Expect(err).To(MatchError(types.ErrMethodNotFound))
	})

	It("stops unbounded recursion", func() {
		_, err := ctx.Call(alice, counter, "Recurse")
		Expect(err).To(MatchError(types.ErrCallDepthExceeded))
	})

	It("clones an uninitialized implementation", func() {
		impl, err := ctx.DeployImplementation(alice, classID)
		Expect(err).To(Succeed())

		is, err := ctx.Call(alice, counter, "Clone", impl, uint64(42))
		Expect(err).To(Succeed())
		clone := is[0].(common.Address)
		Expect(clone).NotTo(Equal(impl))

		is, err = ctx.View(alice, clone, "Value")
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(uint64(42)))
		is, err = ctx.View(alice, impl, "Value")
		Expect(err).To(Succeed())
		Expect(is[0]).To(Equal(uint64(0)))

		cd, err := ctx.ContractDefine(clone)
		Expect(err).To(Succeed())
		Expect(cd.Owner).To(Equal(alice))

		_, err = ctx.Call(alice, counter, "Clone", alice, uint64(1))
		Expect(err).To(MatchError(types.ErrNotExistContract))
	})

	It("counts nested creations against the call depth", func() {
		impl, err := ctx.DeployImplementation(alice, classID)
		Expect(err).To(Succeed())

		is, err := ctx.Call(alice, counter, "CloneChain", impl, uint8(3))
		Expect(err).To(Succeed())
		Expect(ctx.IsContract(is[0].(common.Address))).To(BeTrue())

		before := ctx.StateHash()
		_, err = ctx.Call(alice, counter, "CloneChain", impl, uint8(types.MaxCallDepth))
		Expect(err).To(MatchError(types.ErrCallDepthExceeded))
		Expect(ctx.StateHash()).To(Equal(before))
	})

	It("moves the clock only forward", func() {
		ctx.Sleep(10)
		Expect(ctx.LastTimestamp()).To(Equal(uint64(1010)))
		Expect(ctx.SetTimestamp(1005)).To(MatchError(types.ErrInvalidTimestamp))
		Expect(ctx.SetTimestamp(2000)).To(Succeed())
		Expect(ctx.LastTimestamp()).To(Equal(uint64(2000)))
	})

	It("restores the parent layer on revert and merges on commit", func() {
		sn := ctx.Snapshot()
		ctx.SetData(counter, []byte("k"), []byte("v1"))
		inner := ctx.Snapshot()
		ctx.SetData(counter, []byte("k"), []byte("v2"))
		ctx.Revert(inner)
		Expect(ctx.Data(counter, []byte("k"))).To(Equal([]byte("v1")))
		ctx.Commit(sn)
		Expect(ctx.StackSize()).To(Equal(1))
		Expect(ctx.Data(counter, []byte("k"))).To(Equal([]byte("v1")))
	})
})

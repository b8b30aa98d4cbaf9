package types

import (
	"bytes"

	"github.com/bluele/gcache"
	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/bin"
	"github.com/meverselabs/stakefarm/common/hash"
	"github.com/pkg/errors"
)

// Context is the state of a sequential ledger: the committed data, the
// snapshot stack above it, the clock and the committed events
type Context struct {
	store     *stateStore
	stack     []*ContextData
	timestamp uint64
	events    []*Event
	cache     gcache.Cache
}

type cachedContract struct {
	classID uint64
	cont    Contract
}

// NewContext returns a Context whose clock starts at the timestamp (in seconds)
func NewContext(timestamp uint64) *Context {
	store := newStateStore()
	ctx := &Context{
		store:     store,
		timestamp: timestamp,
		events:    []*Event{},
		cache:     gcache.New(500).LRU().Build(),
	}
	ctx.stack = []*ContextData{NewContextData(store, nil)}
	return ctx
}

// LastTimestamp returns the current time of the ledger in seconds
func (ctx *Context) LastTimestamp() uint64 {
	return ctx.timestamp
}

// SetTimestamp moves the clock forward to the timestamp
func (ctx *Context) SetTimestamp(timestamp uint64) error {
	if timestamp < ctx.timestamp {
		return errors.Wrapf(ErrInvalidTimestamp, "%v is before %v", timestamp, ctx.timestamp)
	}
	ctx.timestamp = timestamp
	return nil
}

// Sleep moves the clock forward by the seconds
func (ctx *Context) Sleep(seconds uint64) {
	ctx.timestamp += seconds
}

// Top returns the top snapshot
func (ctx *Context) Top() *ContextData {
	return ctx.stack[len(ctx.stack)-1]
}

// StackSize returns the size of the context data stack
func (ctx *Context) StackSize() int {
	return len(ctx.stack)
}

// Snapshot push a snapshot and returns the snapshot number of it
func (ctx *Context) Snapshot() int {
	ctd := NewContextData(ctx.store, ctx.Top())
	ctx.stack = append(ctx.stack, ctd)
	return len(ctx.stack)
}

// Revert removes snapshots after the snapshot number
func (ctx *Context) Revert(sn int) {
	if sn > 1 && len(ctx.stack) >= sn {
		ctx.stack = ctx.stack[:sn-1]
	}
}

// Commit apply snapshots to the top after the snapshot number
func (ctx *Context) Commit(sn int) {
	for sn > 1 && len(ctx.stack) >= sn {
		ctd := ctx.Top()
		ctx.stack = ctx.stack[:len(ctx.stack)-1]
		ctd.mergeTo(ctx.Top())
	}
}

// flush writes the bottom layer to the committed state
func (ctx *Context) flush() {
	if len(ctx.stack) != 1 {
		return
	}
	base := ctx.stack[0]
	for k, v := range base.DataMap {
		ctx.store.set(k, v)
	}
	for k := range base.DeletedDataMap {
		ctx.store.delete(k)
	}
	for _, e := range base.Events {
		e.Index = uint64(len(ctx.events))
		ctx.events = append(ctx.events, e)
	}
	ctx.stack[0] = NewContextData(ctx.store, nil)
}

// Data returns the raw value of the contract data
func (ctx *Context) Data(cont common.Address, name []byte) []byte {
	return ctx.Top().Data(makeContractDataKey(cont, name))
}

// SetData updates the raw value of the contract data
func (ctx *Context) SetData(cont common.Address, name []byte, value []byte) {
	ctx.Top().SetData(makeContractDataKey(cont, name), value)
}

// EmitEvent appends the event to the top snapshot
func (ctx *Context) EmitEvent(e *Event) {
	ctx.Top().EmitEvent(e)
}

// Events returns the committed events
func (ctx *Context) Events() []*Event {
	es := make([]*Event, len(ctx.events))
	copy(es, ctx.events)
	return es
}

// FilterEvents returns the committed events of the contract with the name
func (ctx *Context) FilterEvents(cont common.Address, name string) []*Event {
	es := []*Event{}
	for _, e := range ctx.events {
		if e.Contract == cont && e.Name == name {
			es = append(es, e)
		}
	}
	return es
}

// IsContract returns the address has a contract or not
func (ctx *Context) IsContract(addr common.Address) bool {
	return len(ctx.Top().Data(makeDefineKey(addr))) > 0
}

// ContractDefine returns the define of the contract
func (ctx *Context) ContractDefine(addr common.Address) (*ContractDefine, error) {
	bs := ctx.Top().Data(makeDefineKey(addr))
	if len(bs) == 0 {
		return nil, errors.Wrapf(ErrNotExistContract, "%v", addr.String())
	}
	cd := &ContractDefine{}
	if _, err := cd.ReadFrom(bytes.NewReader(bs)); err != nil {
		return nil, err
	}
	return cd, nil
}

// Contract returns the contract instance of the address
func (ctx *Context) Contract(addr common.Address) (Contract, error) {
	cd, err := ctx.ContractDefine(addr)
	if err != nil {
		return nil, err
	}
	if v, err := ctx.cache.Get(addr); err == nil {
		if cached := v.(*cachedContract); cached.classID == cd.ClassID {
			return cached.cont, nil
		}
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	if err := ctx.cache.Set(addr, &cachedContract{classID: cd.ClassID, cont: cont}); err != nil {
		return nil, errors.WithStack(err)
	}
	return cont, nil
}

// ContractContext returns the call context of the contract for the sender
func (ctx *Context) ContractContext(cont Contract, from common.Address) *ContractContext {
	return ctx.contractContext(cont, from, NewInteractor(ctx))
}

func (ctx *Context) contractContext(cont Contract, from common.Address, it *interactor) *ContractContext {
	return &ContractContext{
		cont: cont.Address(),
		from: from,
		ctx:  ctx,
		it:   it,
		Exec: it.Exec,
	}
}

func (ctx *Context) nextNonce(creator common.Address) uint64 {
	key := makeNonceKey(creator)
	var nonce uint64
	if bs := ctx.Top().Data(key); len(bs) == 8 {
		nonce = bin.Uint64(bs)
	}
	ctx.Top().SetData(key, bin.Uint64Bytes(nonce+1))
	return nonce
}

// deploy stores the define of a new contract of the creator. A non nil interactor runs
// OnCreate within its call depth, a nil one skips OnCreate.
func (ctx *Context) deploy(creator common.Address, owner common.Address, ClassID uint64, Args []byte, it *interactor) (Contract, error) {
	addr := common.DeriveAddress(creator, ctx.nextNonce(creator))
	if ctx.IsContract(addr) {
		return nil, errors.Wrapf(ErrExistAddress, "%v", addr.String())
	}
	cd := &ContractDefine{
		Address: addr,
		Owner:   owner,
		ClassID: ClassID,
	}
	cont, err := CreateContract(cd)
	if err != nil {
		return nil, err
	}
	bs, _, err := bin.WriterToBytes(cd)
	if err != nil {
		return nil, err
	}
	ctx.Top().SetData(makeDefineKey(addr), bs)
	if it != nil {
		cc := ctx.contractContext(cont, owner, it)
		if err := cont.OnCreate(cc, Args); err != nil {
			return nil, err
		}
	}
	return cont, nil
}

func (ctx *Context) atomic(fn func() error) error {
	if len(ctx.stack) != 1 {
		return errors.WithStack(ErrDirtyContext)
	}
	sn := ctx.Snapshot()
	if err := fn(); err != nil {
		ctx.Revert(sn)
		return err
	}
	ctx.Commit(sn)
	ctx.flush()
	return nil
}

// DeployContract creates the contract of the class and runs its OnCreate with the args
func (ctx *Context) DeployContract(owner common.Address, ClassID uint64, Args []byte) (common.Address, error) {
	var addr common.Address
	err := ctx.atomic(func() error {
		cont, err := ctx.deploy(owner, owner, ClassID, Args, NewInteractor(ctx))
		if err != nil {
			return err
		}
		addr = cont.Address()
		return nil
	})
	return addr, err
}

// DeployImplementation stores an uninitialized contract of the class, used as a blueprint for clones
func (ctx *Context) DeployImplementation(owner common.Address, ClassID uint64) (common.Address, error) {
	var addr common.Address
	err := ctx.atomic(func() error {
		cont, err := ctx.deploy(owner, owner, ClassID, nil, nil)
		if err != nil {
			return err
		}
		addr = cont.Address()
		return nil
	})
	return addr, err
}

// Call executes the method of the contract as a transaction of the sender.
// Every effect of a failed call is reverted.
func (ctx *Context) Call(from common.Address, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	var result []interface{}
	err := ctx.atomic(func() error {
		cont, err := ctx.Contract(to)
		if err != nil {
			return err
		}
		cc := ctx.ContractContext(cont, from)
		rs, err := cc.Exec(cc, to, method, args)
		if err != nil {
			return err
		}
		result = rs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// View executes the method and discards every effect of it
func (ctx *Context) View(from common.Address, to common.Address, method string, args ...interface{}) ([]interface{}, error) {
	if len(ctx.stack) != 1 {
		return nil, errors.WithStack(ErrDirtyContext)
	}
	sn := ctx.Snapshot()
	defer ctx.Revert(sn)

	cont, err := ctx.Contract(to)
	if err != nil {
		return nil, err
	}
	cc := ctx.ContractContext(cont, from)
	return cc.Exec(cc, to, method, args)
}

// StateHash returns the digest of the committed state
func (ctx *Context) StateHash() hash.Hash256 {
	var buf bytes.Buffer
	ctx.store.ascend("", func(key string, value []byte) bool {
		bin.WriteBytes(&buf, []byte(key))
		bin.WriteBytes(&buf, value)
		return true
	})
	return hash.Hash(buf.Bytes())
}

// Dump returns the changed keys of the top snapshot
func (ctx *Context) Dump() string {
	return ctx.Top().Dump()
}

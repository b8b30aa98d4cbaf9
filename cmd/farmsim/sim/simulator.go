// Package sim runs farm scenarios on an in-memory ledger.
package sim

import (
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/common/amount"
	"github.com/meverselabs/stakefarm/common/bin"
	"github.com/meverselabs/stakefarm/common/rlog"
	"github.com/meverselabs/stakefarm/contract/factory"
	"github.com/meverselabs/stakefarm/contract/farm"
	"github.com/meverselabs/stakefarm/contract/farm/boosted"
	"github.com/meverselabs/stakefarm/contract/farm/classic"
	"github.com/meverselabs/stakefarm/contract/token"
	"github.com/meverselabs/stakefarm/contract/util"
	"github.com/meverselabs/stakefarm/core/types"
)

// DefaultTimestamp is the genesis time of scenarios without one
const DefaultTimestamp = 1000

type tokenInfo struct {
	Symbol   string
	Address  common.Address
	Decimals int
}

type farmInfo struct {
	Name    string
	Address common.Address
	Kind    factory.Kind
	Streams []*tokenInfo
}

// Simulator keeps the ledger of a scenario and the names of its accounts and contracts
type Simulator struct {
	sync.Mutex
	ctx         *types.Context
	genesis     uint64
	admin       common.Address
	registry    common.Address
	tokens      map[string]*tokenInfo
	tokenByAddr map[common.Address]*tokenInfo
	users       map[string]common.Address
	farms       []*farmInfo
	farmMap     map[string]*farmInfo
	steps       []*StepConfig
}

// New deploys the tokens, the registry and the farms of the scenario
func New(sc *Scenario) (*Simulator, error) {
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	genesis := sc.Timestamp
	if genesis == 0 {
		genesis = DefaultTimestamp
	}
	s := &Simulator{
		ctx:         types.NewContext(genesis),
		genesis:     genesis,
		admin:       util.Account("admin"),
		tokens:      map[string]*tokenInfo{},
		tokenByAddr: map[common.Address]*tokenInfo{},
		users:       map[string]common.Address{},
		farmMap:     map[string]*farmInfo{},
		steps:       sc.Steps,
	}
	s.users["admin"] = s.admin

	for _, t := range sc.Tokens {
		if err := s.deployToken(t); err != nil {
			return nil, err
		}
	}
	if err := s.deployRegistry(); err != nil {
		return nil, err
	}
	for _, f := range sc.Farms {
		if err := s.deployFarm(f); err != nil {
			return nil, errors.Wrapf(err, "farm %v", f.Name)
		}
	}
	return s, nil
}

func (s *Simulator) userAddr(name string) common.Address {
	if addr, has := s.users[name]; has {
		return addr
	}
	if addr, err := common.ParseAddress(name); err == nil {
		return addr
	}
	addr := util.Account(name)
	s.users[name] = addr
	return addr
}

func (s *Simulator) deployToken(t *TokenConfig) error {
	supply := map[common.Address]*amount.Amount{}
	for name, v := range t.Balances {
		am, err := amount.ParseUnits(v, int(t.Decimals))
		if err != nil {
			return errors.Wrapf(err, "balance of %v in %v", name, t.Symbol)
		}
		supply[s.userAddr(name)] = am
	}
	addr, err := util.DeployToken(s.ctx, s.admin, &token.TokenContractConstruction{
		Name:             t.Symbol,
		Symbol:           t.Symbol,
		Decimals:         t.Decimals,
		InitialSupplyMap: supply,
	})
	if err != nil {
		return err
	}
	info := &tokenInfo{
		Symbol:   t.Symbol,
		Address:  addr,
		Decimals: int(t.Decimals),
	}
	s.tokens[t.Symbol] = info
	s.tokenByAddr[addr] = info
	return nil
}

func (s *Simulator) deployRegistry() error {
	classicClass, err := types.RegisterContractType(&classic.FarmContract{})
	if err != nil {
		return err
	}
	boostedClass, err := types.RegisterContractType(&boosted.FarmContract{})
	if err != nil {
		return err
	}
	factoryClass, err := types.RegisterContractType(&factory.FactoryContract{})
	if err != nil {
		return err
	}
	bs, _, err := bin.WriterToBytes(&factory.FactoryContractConstruction{Owner: s.admin})
	if err != nil {
		return err
	}
	if s.registry, err = s.ctx.DeployContract(s.admin, factoryClass, bs); err != nil {
		return err
	}
	classicImpl, err := s.ctx.DeployImplementation(s.admin, classicClass)
	if err != nil {
		return err
	}
	boostedImpl, err := s.ctx.DeployImplementation(s.admin, boostedClass)
	if err != nil {
		return err
	}
	if _, err := s.ctx.Call(s.admin, s.registry, "SetImplementationClassic", classicImpl); err != nil {
		return err
	}
	if _, err := s.ctx.Call(s.admin, s.registry, "SetImplementationBoosted", boostedImpl); err != nil {
		return err
	}
	return nil
}

func (s *Simulator) deployFarm(f *FarmConfig) error {
	kind := factory.ParseKind(f.Kind)
	if !kind.IsValid() {
		return errors.Wrapf(ErrInvalidScenario, "kind %q", f.Kind)
	}
	reward := s.tokens[f.Reward]
	rps, err := amount.ParseUnits(f.RewardPerSecond, reward.Decimals)
	if err != nil {
		return errors.Wrap(err, "reward per second")
	}
	start := s.genesis + f.StartDelay

	info := &farmInfo{
		Name:    f.Name,
		Kind:    kind,
		Streams: []*tokenInfo{reward},
	}
	var is []interface{}
	switch kind {
	case factory.KindClassic:
		is, err = s.ctx.Call(s.admin, s.registry, "DeployClassic", reward.Address, rps, start)
	case factory.KindBoosted:
		booster, has := s.tokens[f.Booster]
		if !has {
			return errors.Wrap(ErrUnknownName, "booster token")
		}
		info.Streams = append(info.Streams, booster)
		is, err = s.ctx.Call(s.admin, s.registry, "DeployBoosted", reward.Address, booster.Address, rps, start)
	}
	if err != nil {
		return err
	}
	info.Address = is[0].(common.Address)
	s.farms = append(s.farms, info)
	s.farmMap[info.Name] = info
	s.farmMap[strings.ToLower(info.Address.String())] = info

	for _, p := range f.Pools {
		if _, err := s.ctx.Call(s.admin, info.Address, "Add", p.Alloc, s.tokens[p.Stake].Address, false); err != nil {
			return err
		}
	}
	if len(f.Fund) > 0 {
		if err := s.fund(info, f.Fund); err != nil {
			return err
		}
	}
	rlog.Infow("farm deployed", "name", info.Name, "kind", kind.String(), "address", info.Address.String())
	return nil
}

func (s *Simulator) fund(f *farmInfo, values []string) error {
	if len(values) != len(f.Streams) {
		return errors.Wrapf(ErrInvalidScenario, "%v fund amounts for %v streams", len(values), len(f.Streams))
	}
	args := make([]interface{}, 0, len(values))
	for i, v := range values {
		am, err := amount.ParseUnits(v, f.Streams[i].Decimals)
		if err != nil {
			return errors.Wrapf(err, "fund amount %v", i)
		}
		if err := util.Approve(s.ctx, f.Streams[i].Address, s.admin, f.Address, am); err != nil {
			return err
		}
		args = append(args, am)
	}
	_, err := s.ctx.Call(s.admin, f.Address, "Fund", args...)
	return err
}

func (s *Simulator) farm(ref string) (*farmInfo, error) {
	if f, has := s.farmMap[ref]; has {
		return f, nil
	}
	if f, has := s.farmMap[strings.ToLower(ref)]; has {
		return f, nil
	}
	return nil, errors.Wrapf(ErrUnknownName, "farm %v", ref)
}

func (s *Simulator) stakeToken(f *farmInfo, pid uint64) (*tokenInfo, error) {
	is, err := s.ctx.View(s.admin, f.Address, "PoolInfo", pid)
	if err != nil {
		return nil, err
	}
	addr := is[0].(*farm.PoolInfo).StakeToken
	t, has := s.tokenByAddr[addr]
	if !has {
		return nil, errors.Wrapf(ErrUnknownName, "stake token %v", addr.String())
	}
	return t, nil
}

//////////////////////////////////////////////////
// Timeline
//////////////////////////////////////////////////

// Now returns the seconds passed since the genesis
func (s *Simulator) Now() uint64 {
	s.Lock()
	defer s.Unlock()
	return s.ctx.LastTimestamp() - s.genesis
}

// Run executes every step of the scenario and writes the positions after each one
func (s *Simulator) Run(out io.Writer) error {
	s.Lock()
	defer s.Unlock()

	for i, st := range s.steps {
		if err := s.step(st); err != nil {
			return errors.Wrapf(err, "step %v (%v)", i, st.Action)
		}
		rlog.Debugw("step", "index", i, "action", st.Action, "farm", st.Farm, "user", st.User)
		fmt.Fprintf(out, "t+%d %v\n", s.ctx.LastTimestamp()-s.genesis, describe(st))
		for _, f := range s.farms {
			if err := s.writeReport(out, f); err != nil {
				return err
			}
		}
	}
	return nil
}

// Step executes a single step
func (s *Simulator) Step(st *StepConfig) error {
	s.Lock()
	defer s.Unlock()
	return s.step(st)
}

func (s *Simulator) step(st *StepConfig) error {
	err := s.exec(st)
	if st.ExpectError == "" {
		return err
	}
	if err == nil || !strings.Contains(err.Error(), st.ExpectError) {
		return errors.Wrapf(ErrUnexpectedError, "want %q got %v", st.ExpectError, err)
	}
	return nil
}

func (s *Simulator) exec(st *StepConfig) error {
	if st.Action == ActionSleep {
		s.ctx.Sleep(st.Seconds)
		return nil
	}
	f, err := s.farm(st.Farm)
	if err != nil {
		return err
	}
	user := s.admin
	if st.User != "" {
		user = s.userAddr(st.User)
	}

	switch st.Action {
	case ActionDeposit, ActionWithdraw:
		stake, err := s.stakeToken(f, st.Pool)
		if err != nil {
			return err
		}
		am, err := amount.ParseUnits(st.Amount, stake.Decimals)
		if err != nil {
			return err
		}
		if st.Action == ActionDeposit {
			if err := util.Approve(s.ctx, stake.Address, user, f.Address, am); err != nil {
				return err
			}
			_, err = s.ctx.Call(user, f.Address, "Deposit", st.Pool, am)
			return err
		}
		_, err = s.ctx.Call(user, f.Address, "Withdraw", st.Pool, am)
		return err
	case ActionEmergency:
		_, err := s.ctx.Call(user, f.Address, "EmergencyWithdraw", st.Pool)
		return err
	case ActionFund:
		values := st.Amounts
		if len(values) == 0 {
			values = []string{st.Amount}
		}
		return s.fund(f, values)
	case ActionAdd:
		_, err := s.ctx.Call(user, f.Address, "Add", st.Alloc, s.tokens[st.Stake].Address, st.WithUpdate)
		return err
	case ActionSet:
		_, err := s.ctx.Call(user, f.Address, "Set", st.Pool, st.Alloc, st.WithUpdate)
		return err
	}
	return errors.Wrapf(ErrInvalidScenario, "action %q", st.Action)
}

func describe(st *StepConfig) string {
	var b strings.Builder
	b.WriteString(st.Action)
	switch st.Action {
	case ActionSleep:
		fmt.Fprintf(&b, " %vs", st.Seconds)
		return b.String()
	case ActionAdd:
		fmt.Fprintf(&b, " %v %v", st.Stake, st.Alloc)
	case ActionSet:
		fmt.Fprintf(&b, " pool %v %v", st.Pool, st.Alloc)
	case ActionFund:
		values := st.Amounts
		if len(values) == 0 {
			values = []string{st.Amount}
		}
		fmt.Fprintf(&b, " %v", strings.Join(values, " "))
	default:
		fmt.Fprintf(&b, " %v pool %v %v", st.User, st.Pool, st.Amount)
	}
	fmt.Fprintf(&b, " on %v", st.Farm)
	if st.ExpectError != "" {
		fmt.Fprintf(&b, " (fails with %v)", st.ExpectError)
	}
	return b.String()
}

func (s *Simulator) writeReport(out io.Writer, f *farmInfo) error {
	view, err := s.farmView(f)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "  %v total pending %v\n", f.Name, strings.Join(view.TotalPending, " "))
	for pid := uint64(0); pid < view.PoolLength; pid++ {
		for _, name := range s.userNames() {
			pos, err := s.position(f, pid, s.users[name])
			if err != nil {
				return err
			}
			if pos.idle {
				continue
			}
			fmt.Fprintf(out, "  %v pool %v %v deposited %v pending %v\n", f.Name, pid, name, pos.Deposited, strings.Join(pos.Pending, " "))
		}
	}
	return nil
}

func (s *Simulator) userNames() []string {
	names := make([]string, 0, len(s.users))
	for name := range s.users {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatAmounts(ams []*amount.Amount, streams []*tokenInfo) []string {
	strs := make([]string, 0, len(ams))
	for i, am := range ams {
		if i < len(streams) {
			strs = append(strs, am.FormatUnits(streams[i].Decimals)+" "+streams[i].Symbol)
		} else {
			strs = append(strs, am.Int.String())
		}
	}
	return strs
}

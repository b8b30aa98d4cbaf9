package sim

import (
	"strings"

	"github.com/pkg/errors"

	"github.com/meverselabs/stakefarm/common"
	"github.com/meverselabs/stakefarm/contract/farm"
	"github.com/meverselabs/stakefarm/contract/util"
)

// FarmView is the state of a farm with the amounts formatted in their tokens
type FarmView struct {
	Name            string   `json:"name"`
	Address         string   `json:"address"`
	Kind            string   `json:"kind"`
	Tokens          []string `json:"tokens"`
	RewardPerSecond string   `json:"reward_per_second"`
	StartTimestamp  uint64   `json:"start_timestamp"`
	EndTimestamp    uint64   `json:"end_timestamp"`
	PoolLength      uint64   `json:"pool_length"`
	TotalAllocPoint uint64   `json:"total_alloc_point"`
	TotalPending    []string `json:"total_pending"`
	PaidOut         []string `json:"paid_out"`
}

type PoolView struct {
	Pid            uint64   `json:"pid"`
	StakeToken     string   `json:"stake_token"`
	AllocPoint     uint64   `json:"alloc_point"`
	LastRewardTime uint64   `json:"last_reward_time"`
	TotalDeposited string   `json:"total_deposited"`
	AccPerShare    []string `json:"acc_per_share"`
}

type PositionView struct {
	User      string   `json:"user"`
	Pid       uint64   `json:"pid"`
	Deposited string   `json:"deposited"`
	Pending   []string `json:"pending"`
	idle      bool
}

type EventView struct {
	Index    uint64        `json:"index"`
	Contract string        `json:"contract"`
	Name     string        `json:"name"`
	Args     []interface{} `json:"args"`
}

// Farms returns every farm in the order of the scenario
func (s *Simulator) Farms() ([]*FarmView, error) {
	s.Lock()
	defer s.Unlock()

	views := make([]*FarmView, 0, len(s.farms))
	for _, f := range s.farms {
		view, err := s.farmView(f)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

// Farm returns the farm of the name or the address
func (s *Simulator) Farm(ref string) (*FarmView, error) {
	s.Lock()
	defer s.Unlock()

	f, err := s.farm(ref)
	if err != nil {
		return nil, err
	}
	return s.farmView(f)
}

func (s *Simulator) Pool(ref string, pid uint64) (*PoolView, error) {
	s.Lock()
	defer s.Unlock()

	f, err := s.farm(ref)
	if err != nil {
		return nil, err
	}
	is, err := s.ctx.View(s.admin, f.Address, "PoolInfo", pid)
	if err != nil {
		return nil, err
	}
	pool := is[0].(*farm.PoolInfo)
	stake := s.tokenByAddr[pool.StakeToken]
	acc := make([]string, 0, len(pool.AccPerShare))
	for _, v := range pool.AccPerShare {
		acc = append(acc, v.Int.String())
	}
	return &PoolView{
		Pid:            pid,
		StakeToken:     stake.Symbol,
		AllocPoint:     pool.AllocPoint,
		LastRewardTime: pool.LastRewardTime,
		TotalDeposited: pool.TotalDeposited.FormatUnits(stake.Decimals),
		AccPerShare:    acc,
	}, nil
}

// Position returns the stake and the pending rewards of the user, a name or an address
func (s *Simulator) Position(ref string, pid uint64, user string) (*PositionView, error) {
	s.Lock()
	defer s.Unlock()

	f, err := s.farm(ref)
	if err != nil {
		return nil, err
	}
	addr, has := s.users[user]
	if !has {
		if addr, err = common.ParseAddress(user); err != nil {
			return nil, errors.Wrapf(ErrUnknownName, "user %v", user)
		}
	}
	pos, err := s.position(f, pid, addr)
	if err != nil {
		return nil, err
	}
	pos.User = user
	return pos, nil
}

// Events returns the committed events labelled with the names of the contracts
func (s *Simulator) Events() []*EventView {
	s.Lock()
	defer s.Unlock()

	labels := map[common.Address]string{s.registry: "registry"}
	for _, t := range s.tokens {
		labels[t.Address] = t.Symbol
	}
	for _, f := range s.farms {
		labels[f.Address] = f.Name
	}
	es := s.ctx.Events()
	views := make([]*EventView, 0, len(es))
	for _, e := range es {
		label, has := labels[e.Contract]
		if !has {
			label = e.Contract.String()
		}
		views = append(views, &EventView{
			Index:    e.Index,
			Contract: label,
			Name:     e.Name,
			Args:     e.Args,
		})
	}
	return views
}

func (s *Simulator) farmView(f *farmInfo) (*FarmView, error) {
	view := &FarmView{
		Name:    f.Name,
		Address: f.Address.String(),
		Kind:    f.Kind.String(),
	}
	for _, t := range f.Streams {
		view.Tokens = append(view.Tokens, t.Symbol)
	}
	rps, err := util.ViewAmount(s.ctx, f.Address, "RewardPerSecond")
	if err != nil {
		return nil, err
	}
	view.RewardPerSecond = rps.FormatUnits(f.Streams[0].Decimals)
	for _, v := range []struct {
		method string
		p      *uint64
	}{
		{"StartTimestamp", &view.StartTimestamp},
		{"EndTimestamp", &view.EndTimestamp},
		{"PoolLength", &view.PoolLength},
		{"TotalAllocPoint", &view.TotalAllocPoint},
	} {
		if *v.p, err = util.ViewUint64(s.ctx, f.Address, v.method); err != nil {
			return nil, err
		}
	}
	total, err := util.ViewAmounts(s.ctx, f.Address, "TotalPending")
	if err != nil {
		return nil, err
	}
	view.TotalPending = formatAmounts(total, f.Streams)
	paid, err := util.ViewAmounts(s.ctx, f.Address, "PaidOut")
	if err != nil {
		return nil, err
	}
	view.PaidOut = formatAmounts(paid, f.Streams)
	return view, nil
}

func (s *Simulator) position(f *farmInfo, pid uint64, user common.Address) (*PositionView, error) {
	stake, err := s.stakeToken(f, pid)
	if err != nil {
		return nil, err
	}
	deposited, err := util.ViewAmount(s.ctx, f.Address, "Deposited", pid, user)
	if err != nil {
		return nil, err
	}
	pending, err := util.ViewAmounts(s.ctx, f.Address, "Pending", pid, user)
	if err != nil {
		return nil, err
	}
	idle := deposited.IsZero()
	for _, am := range pending {
		if !am.IsZero() {
			idle = false
		}
	}
	return &PositionView{
		User:      strings.ToLower(user.String()),
		Pid:       pid,
		Deposited: deposited.FormatUnits(stake.Decimals),
		Pending:   formatAmounts(pending, f.Streams),
		idle:      idle,
	}, nil
}

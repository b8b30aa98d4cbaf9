package sim

import (
	"github.com/pkg/errors"
)

// scenario errors
var (
	ErrInvalidScenario = errors.New("invalid scenario")
	ErrUnknownName     = errors.New("unknown name")
	ErrUnexpectedError = errors.New("unexpected step result")
)

// step actions
const (
	ActionSleep     = "sleep"
	ActionDeposit   = "deposit"
	ActionWithdraw  = "withdraw"
	ActionEmergency = "emergency"
	ActionFund      = "fund"
	ActionAdd       = "add"
	ActionSet       = "set"
)

// Scenario describes the tokens, the farms and the timeline of a simulation.
// Amounts are decimal strings in whole tokens of the token they refer to.
type Scenario struct {
	Timestamp uint64         `toml:"timestamp" yaml:"timestamp"`
	Tokens    []*TokenConfig `toml:"tokens" yaml:"tokens"`
	Farms     []*FarmConfig  `toml:"farms" yaml:"farms"`
	Steps     []*StepConfig  `toml:"steps" yaml:"steps"`
}

type TokenConfig struct {
	Symbol   string            `toml:"symbol" yaml:"symbol"`
	Decimals uint8             `toml:"decimals" yaml:"decimals"`
	Balances map[string]string `toml:"balances" yaml:"balances"`
}

type FarmConfig struct {
	Name            string        `toml:"name" yaml:"name"`
	Kind            string        `toml:"kind" yaml:"kind"`
	Reward          string        `toml:"reward" yaml:"reward"`
	Booster         string        `toml:"booster" yaml:"booster"`
	RewardPerSecond string        `toml:"reward_per_second" yaml:"reward_per_second"`
	StartDelay      uint64        `toml:"start_delay" yaml:"start_delay"`
	Fund            []string      `toml:"fund" yaml:"fund"`
	Pools           []*PoolConfig `toml:"pools" yaml:"pools"`
}

type PoolConfig struct {
	Stake string `toml:"stake" yaml:"stake"`
	Alloc uint64 `toml:"alloc" yaml:"alloc"`
}

// StepConfig is one action of the timeline. ExpectError makes the step pass
// only when it fails with an error containing the text.
type StepConfig struct {
	Action      string   `toml:"action" yaml:"action" json:"action"`
	Farm        string   `toml:"farm" yaml:"farm" json:"farm"`
	User        string   `toml:"user" yaml:"user" json:"user"`
	Pool        uint64   `toml:"pool" yaml:"pool" json:"pool"`
	Amount      string   `toml:"amount" yaml:"amount" json:"amount"`
	Amounts     []string `toml:"amounts" yaml:"amounts" json:"amounts"`
	Stake       string   `toml:"stake" yaml:"stake" json:"stake"`
	Alloc       uint64   `toml:"alloc" yaml:"alloc" json:"alloc"`
	WithUpdate  bool     `toml:"with_update" yaml:"with_update" json:"with_update"`
	Seconds     uint64   `toml:"seconds" yaml:"seconds" json:"seconds"`
	ExpectError string   `toml:"expect_error" yaml:"expect_error" json:"expect_error"`
}

// Validate checks the references between the sections
func (sc *Scenario) Validate() error {
	tokens := map[string]bool{}
	for _, t := range sc.Tokens {
		if t.Symbol == "" {
			return errors.Wrap(ErrInvalidScenario, "token without symbol")
		}
		if tokens[t.Symbol] {
			return errors.Wrapf(ErrInvalidScenario, "duplicated token %v", t.Symbol)
		}
		tokens[t.Symbol] = true
	}
	farms := map[string]bool{}
	for _, f := range sc.Farms {
		if f.Name == "" || farms[f.Name] {
			return errors.Wrapf(ErrInvalidScenario, "farm name %q", f.Name)
		}
		farms[f.Name] = true
		if !tokens[f.Reward] {
			return errors.Wrapf(ErrUnknownName, "reward token %v of farm %v", f.Reward, f.Name)
		}
		if f.Booster != "" && !tokens[f.Booster] {
			return errors.Wrapf(ErrUnknownName, "booster token %v of farm %v", f.Booster, f.Name)
		}
		for _, p := range f.Pools {
			if !tokens[p.Stake] {
				return errors.Wrapf(ErrUnknownName, "stake token %v of farm %v", p.Stake, f.Name)
			}
		}
	}
	for i, st := range sc.Steps {
		switch st.Action {
		case ActionSleep:
			continue
		case ActionDeposit, ActionWithdraw, ActionEmergency, ActionFund, ActionSet:
		case ActionAdd:
			if !tokens[st.Stake] {
				return errors.Wrapf(ErrUnknownName, "stake token %v of step %v", st.Stake, i)
			}
		default:
			return errors.Wrapf(ErrInvalidScenario, "action %q of step %v", st.Action, i)
		}
		if !farms[st.Farm] {
			return errors.Wrapf(ErrUnknownName, "farm %v of step %v", st.Farm, i)
		}
	}
	return nil
}

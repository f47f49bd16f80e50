package batch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/sumsolve/config"
	"github.com/katalvlaran/sumsolve/ssp"
)

// ErrUnknownStrategy indicates a strategy name outside the supported set.
var ErrUnknownStrategy = errors.New("batch: unknown strategy")

// Strategy is a named solver configuration. Name labels progress lines,
// report files and metrics.
type Strategy struct {
	Name         string
	Algorithm    ssp.Algorithm
	Construction ssp.Construction
}

// TimeBounded reports whether the strategy honours the time limit.
func (s Strategy) TimeBounded() bool { return s.Algorithm.TimeBounded() }

// ParseStrategy resolves a strategy name. tabuStart names the construction
// used by "tabu" and must be "greedy" or "random".
func ParseStrategy(name, tabuStart string) (Strategy, error) {
	s := Strategy{Name: name, Construction: ssp.ConstructGreedy}
	switch name {
	case config.StrategyExhaustive:
		s.Algorithm = ssp.Exhaustive
	case config.StrategyGreedy:
		s.Algorithm = ssp.Greedy
	case config.StrategyRandom:
		s.Algorithm = ssp.Random
	case config.StrategyGreedy1Opt:
		s.Algorithm = ssp.LocalSearch
	case config.StrategyRandom1Opt:
		s.Algorithm = ssp.LocalSearch
		s.Construction = ssp.ConstructRandom
	case config.StrategyTabu:
		s.Algorithm = ssp.TabuLocalSearch
		switch tabuStart {
		case "", config.StrategyGreedy:
		case config.StrategyRandom:
			s.Construction = ssp.ConstructRandom
		default:
			return Strategy{}, fmt.Errorf("%w: tabu construction %q", ErrUnknownStrategy, tabuStart)
		}
	default:
		return Strategy{}, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
	}

	return s, nil
}

// ParseStrategies resolves names in order.
func ParseStrategies(names []string, tabuStart string) ([]Strategy, error) {
	out := make([]Strategy, 0, len(names))
	for _, name := range names {
		s, err := ParseStrategy(name, tabuStart)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}

	return out, nil
}

// AnyTimeBounded reports whether at least one strategy honours the time limit.
func AnyTimeBounded(strategies []Strategy) bool {
	for _, s := range strategies {
		if s.TimeBounded() {
			return true
		}
	}

	return false
}

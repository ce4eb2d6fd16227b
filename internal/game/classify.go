package game

import "github.com/pixil98/go-quest/internal/catalog"

// balancedSpread is the largest max-min gap still considered a balanced
// playthrough.
const balancedSpread = 4

// Classify maps final stats to a personality trait. A narrow spread wins
// regardless of which resource is highest; otherwise ties on the maximum
// resolve happiness first, then status, with income as the fallback. The
// check order is part of the contract, not an implementation detail.
func Classify(s Stats) catalog.Trait {
	if s.Spread() <= balancedSpread {
		return catalog.TraitBalanced
	}

	max := s.Max()
	switch {
	case s.Happiness == max:
		return catalog.TraitHappiness
	case s.Status == max:
		return catalog.TraitStatus
	default:
		return catalog.TraitIncome
	}
}

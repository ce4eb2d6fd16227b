package game

import "github.com/pixil98/go-quest/internal/catalog"

// Stats tracks the three resources a playthrough accumulates. Values only
// ever grow; answers carry non-negative rewards.
type Stats struct {
	Happiness int `json:"happiness"`
	Income    int `json:"income"`
	Status    int `json:"status"`
}

// Add folds an answer reward into the stats. Addition is field-wise, so
// the final totals are independent of the order answers were picked in.
func (s Stats) Add(r catalog.Reward) Stats {
	return Stats{
		Happiness: s.Happiness + r.Happiness,
		Income:    s.Income + r.Income,
		Status:    s.Status + r.Status,
	}
}

// Merge sums two stat vectors field-wise.
func (s Stats) Merge(o Stats) Stats {
	return Stats{
		Happiness: s.Happiness + o.Happiness,
		Income:    s.Income + o.Income,
		Status:    s.Status + o.Status,
	}
}

// Max returns the largest of the three resources.
func (s Stats) Max() int {
	m := s.Happiness
	if s.Income > m {
		m = s.Income
	}
	if s.Status > m {
		m = s.Status
	}
	return m
}

// Min returns the smallest of the three resources.
func (s Stats) Min() int {
	m := s.Happiness
	if s.Income < m {
		m = s.Income
	}
	if s.Status < m {
		m = s.Status
	}
	return m
}

// Spread is the gap between the strongest and weakest resource.
func (s Stats) Spread() int {
	return s.Max() - s.Min()
}

// File: candidates.go
// Role: Candidate and CandidateSet, the per-node shrink-only option list.
// Determinism:
//   - Order is insertion order; RemoveAt keeps the relative order of survivors.
// Concurrency:
//   - Not synchronized. A set is owned by exactly one node and mutated only
//     by that node's collapse step.

package core

import "fmt"

// Candidate is a still-possible tile with its selection weight (≥ 0).
type Candidate struct {
	Tile   Tile    `yaml:"tile" json:"tile"`
	Weight float64 `yaml:"weight" json:"weight"`
}

// CandidateSet is the ordered candidate list of one node.
//
// Once populated, a set may only shrink: a removed tile is never re-added in
// the same run. Reset is the explicit recovery path that starts a new run.
type CandidateSet struct {
	items  []Candidate
	sealed bool
}

// NewCandidateSet returns empty candidate storage with room for capacity items.
func NewCandidateSet(capacity int) *CandidateSet {
	return &CandidateSet{items: make([]Candidate, 0, capacity)}
}

// Populate fills an empty set. It fails with ErrCandidatesSealed if the set
// was populated earlier in this run and with ErrNegativeWeight on bad input.
// Complexity: O(len(cs)).
func (s *CandidateSet) Populate(cs ...Candidate) error {
	if s.sealed {
		return ErrCandidatesSealed
	}
	for _, c := range cs {
		if c.Weight < 0 {
			return fmt.Errorf("Populate: tile %s weight=%g: %w", c.Tile, c.Weight, ErrNegativeWeight)
		}
	}
	s.items = append(s.items[:0], cs...)
	s.sealed = true

	return nil
}

// Len returns the number of remaining candidates.
func (s *CandidateSet) Len() int { return len(s.items) }

// At returns the i-th candidate.
func (s *CandidateSet) At(i int) Candidate { return s.items[i] }

// SetWeight overwrites the weight of the i-th candidate. Negative values are
// clamped to zero to keep the Weight ≥ 0 invariant.
func (s *CandidateSet) SetWeight(i int, w float64) {
	if w < 0 {
		w = 0
	}
	s.items[i].Weight = w
}

// RemoveAt drops the i-th candidate, keeping survivor order stable.
// Complexity: O(n).
func (s *CandidateSet) RemoveAt(i int) {
	copy(s.items[i:], s.items[i+1:])
	s.items = s.items[:len(s.items)-1]
}

// TotalWeight returns the sum of all candidate weights.
func (s *CandidateSet) TotalWeight() float64 {
	var sum float64
	for _, c := range s.items {
		sum += c.Weight
	}
	return sum
}

// Contains reports whether t is still a candidate.
func (s *CandidateSet) Contains(t Tile) bool {
	for _, c := range s.items {
		if c.Tile == t {
			return true
		}
	}
	return false
}

// Items returns a copy of the remaining candidates.
func (s *CandidateSet) Items() []Candidate {
	out := make([]Candidate, len(s.items))
	copy(out, s.items)
	return out
}

// Reset empties the set and unseals it for a new run.
func (s *CandidateSet) Reset() {
	s.items = s.items[:0]
	s.sealed = false
}

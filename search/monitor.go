package search

import (
	"github.com/kartolab/marshrutka/core"
)

// SearchMonitor provides hooks to observe the search process.
// Implement this interface to track intermediate steps and results during search.
type SearchMonitor interface {
	Start(query string)
	AfterExpansion(tokens, expanded []string)
	OutsideRadius(poi *core.POI, distanceKm float64)
	CandidateRejected(poi *core.POI, distanceKm float64)
	CandidateScored(candidate *core.Candidate)
	Finish(results []*core.Candidate)
}

// noopMonitor is a no-op implementation of SearchMonitor
type noopMonitor struct{}

var _ SearchMonitor = (*noopMonitor)(nil)

func (n *noopMonitor) Start(_ string)                            {}
func (n *noopMonitor) AfterExpansion(_, _ []string)              {}
func (n *noopMonitor) OutsideRadius(_ *core.POI, _ float64)      {}
func (n *noopMonitor) CandidateRejected(_ *core.POI, _ float64)  {}
func (n *noopMonitor) CandidateScored(_ *core.Candidate)         {}
func (n *noopMonitor) Finish(_ []*core.Candidate)                {}

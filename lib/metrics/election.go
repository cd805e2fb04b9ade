package metrics

import (
	"github.com/go-kit/kit/metrics"
	"github.com/go-kit/kit/metrics/discard"
	prometheus "github.com/go-kit/kit/metrics/prometheus"
	stdprometheus "github.com/prometheus/client_golang/prometheus"
)

type ElectionMetrics struct {
	CouncilSize metrics.Gauge
	Candidates  metrics.Gauge
	Voters      metrics.Gauge
	VoteIndex   metrics.Gauge
	WindowOpen  metrics.Gauge

	Presentations metrics.Counter
	Tallies       metrics.Counter
}

func (e *ElectionMetrics) SetCouncilSize(n int) {
	e.CouncilSize.Set(float64(n))
}
func (e *ElectionMetrics) SetCandidates(n uint32) {
	e.Candidates.Set(float64(n))
}
func (e *ElectionMetrics) SetVoters(n int) {
	e.Voters.Set(float64(n))
}
func (e *ElectionMetrics) SetVoteIndex(index uint32) {
	e.VoteIndex.Set(float64(index))
}
func (e *ElectionMetrics) SetWindowOpen(open bool) {
	var v float64
	if open {
		v = 1
	}
	e.WindowOpen.Set(v)
}
func (e *ElectionMetrics) AddPresentation(accepted bool) {
	result := PresentationSlashed
	if accepted {
		result = PresentationAccepted
	}
	e.Presentations.With(PresentationResult, result).Add(1)
}
func (e *ElectionMetrics) AddTally() {
	e.Tallies.Add(1)
}

func PromElectionMetrics() *ElectionMetrics {
	return &ElectionMetrics{
		CouncilSize: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: ElectionSubsystem,
			Name:      "council_size",
			Help:      "Number of active council members.",
		}, []string{}),
		Candidates: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: ElectionSubsystem,
			Name:      "candidates",
			Help:      "Number of registered candidates.",
		}, []string{}),
		Voters: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: ElectionSubsystem,
			Name:      "voters",
			Help:      "Number of voters.",
		}, []string{}),
		VoteIndex: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: ElectionSubsystem,
			Name:      "vote_index",
			Help:      "Number of finalised tallies.",
		}, []string{}),
		WindowOpen: prometheus.NewGaugeFrom(stdprometheus.GaugeOpts{
			Namespace: Namespace,
			Subsystem: ElectionSubsystem,
			Name:      "window_open",
			Help:      "1 while a presentation window is open.",
		}, []string{}),
		Presentations: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: ElectionSubsystem,
			Name:      "presentations_total",
			Help:      "Total number of admitted presentations.",
		}, []string{PresentationResult}),
		Tallies: prometheus.NewCounterFrom(stdprometheus.CounterOpts{
			Namespace: Namespace,
			Subsystem: ElectionSubsystem,
			Name:      "tallies_total",
			Help:      "Total number of finalised tallies.",
		}, []string{}),
	}
}

func NopElectionMetrics() *ElectionMetrics {
	return &ElectionMetrics{
		CouncilSize: discard.NewGauge(),
		Candidates:  discard.NewGauge(),
		Voters:      discard.NewGauge(),
		VoteIndex:   discard.NewGauge(),
		WindowOpen:  discard.NewGauge(),

		Presentations: discard.NewCounter(),
		Tallies:       discard.NewCounter(),
	}
}

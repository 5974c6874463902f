package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// QuoteMetrics records counters for the proposal/PDF pipeline.
type QuoteMetrics struct {
	renderDuration *prometheus.HistogramVec
	renderSuccess  *prometheus.CounterVec
	renderFailure  *prometheus.CounterVec
	proposals      prometheus.Counter
}

// NewQuoteMetrics registers the quote pipeline metrics on the provided registerer.
func NewQuoteMetrics(reg prometheus.Registerer) *QuoteMetrics {
	if reg == nil {
		return &QuoteMetrics{}
	}
	renderDuration := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pdf_render_duration_seconds",
		Help:    "Duration of quote PDF rendering in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"outcome"})
	renderSuccess := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pdf_render_success",
		Help: "Successful quote PDF renders.",
	}, []string{"source"})
	renderFailure := prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pdf_render_failure",
		Help: "Failed quote PDF renders.",
	}, []string{"source"})
	proposals := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "proposals_created_total",
		Help: "Proposals persisted by the pricing endpoint.",
	})
	reg.MustRegister(renderDuration, renderSuccess, renderFailure, proposals)
	return &QuoteMetrics{
		renderDuration: renderDuration,
		renderSuccess:  renderSuccess,
		renderFailure:  renderFailure,
		proposals:      proposals,
	}
}

// ObserveRender records a render attempt with its duration and outcome.
func (q *QuoteMetrics) ObserveRender(source string, duration time.Duration, err error) {
	if q == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	if q.renderDuration != nil {
		q.renderDuration.WithLabelValues(outcome).Observe(duration.Seconds())
	}
	if err != nil {
		if q.renderFailure != nil {
			q.renderFailure.WithLabelValues(normalizeLabel(source)).Inc()
		}
		return
	}
	if q.renderSuccess != nil {
		q.renderSuccess.WithLabelValues(normalizeLabel(source)).Inc()
	}
}

// IncProposalCreated counts a persisted proposal.
func (q *QuoteMetrics) IncProposalCreated() {
	if q == nil || q.proposals == nil {
		return
	}
	q.proposals.Inc()
}

func normalizeLabel(source string) string {
	if source == "" {
		return "unknown"
	}
	return source
}

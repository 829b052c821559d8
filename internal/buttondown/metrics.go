package buttondown

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// NewOutcomeCounter registers the drafts counter, labelled by outcome, at reg.
func NewOutcomeCounter(reg prometheus.Registerer) *prometheus.CounterVec {
	return promauto.With(reg).NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "notedraft",
			Name:      "drafts_total",
			Help:      "Number of draft submissions, differentiated by outcome.",
		},
		[]string{"outcome"},
	)
}

package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/notedraft/notedraft/internal/buttondown"
	"github.com/notedraft/notedraft/internal/config"
)

// drafts counts submissions on the default registry.
var drafts = buttondown.NewOutcomeCounter(prometheus.DefaultRegisterer) //nolint:gochecknoglobals

// exportMetrics writes all metrics of g to the configured text file.
func exportMetrics(m config.Metrics, g prometheus.Gatherer) {
	if m.TextfilePath == "" {
		return
	}

	if err := prometheus.WriteToTextfile(m.TextfilePath, g); err != nil {
		log.Error().Err(err).Str("path", m.TextfilePath).Msg("can't write metrics textfile")
	}
}

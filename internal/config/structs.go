package config

import (
	"github.com/notedraft/notedraft/internal/logger"
)

// Config overall data structure.
type Config struct {
	DB      DB
	Log     logger.Log
	Metrics Metrics
}

// Metrics implements metrics export settings.
type Metrics struct {
	// TextfilePath, if set, receives all metrics in the text exposition format
	// after each command, e.g. for the node_exporter textfile collector.
	TextfilePath string
}

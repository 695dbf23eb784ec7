package docgen

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var generateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name: "specimen_generate_duration_seconds",
	Help: "Duration of document generation",
}, []string{"kind", "status"})

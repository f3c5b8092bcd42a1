package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	imagesResolved = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_images_resolved_total",
			Help: "Images resolved by source (pexels/fallback).",
		},
		[]string{"source"},
	)

	searchLatencyMs = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bot_image_search_latency_ms",
			Help:    "Pexels search call latency distribution in milliseconds.",
			Buckets: []float64{10, 25, 50, 100, 200, 400, 800, 1600, 3000, 5000, 10000},
		},
		[]string{"success"},
	)
)

func init() { register(imagesResolved, searchLatencyMs) }

func IncImageResolved(source string) {
	imagesResolved.WithLabelValues(source).Inc()
}

func ObserveSearch(d time.Duration, success bool) {
	searchLatencyMs.WithLabelValues(strconv.FormatBool(success)).
		Observe(float64(d.Milliseconds()))
}

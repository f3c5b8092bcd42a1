package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	updatesTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bot_updates_total",
			Help: "Inbound Telegram updates by kind (command/text/photo/callback).",
		},
		[]string{"kind"},
	)

	handlerErrors = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "bot_handler_errors_total",
			Help: "Update-handler errors swallowed by the top-level handler.",
		},
	)
)

func init() { register(updatesTotal, handlerErrors) }

func IncUpdate(kind string) { updatesTotal.WithLabelValues(kind).Inc() }

func IncHandlerError() { handlerErrors.Inc() }

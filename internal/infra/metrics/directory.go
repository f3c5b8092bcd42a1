package metrics

import "github.com/prometheus/client_golang/prometheus"

var knownChats = prometheus.NewGauge(
	prometheus.GaugeOpts{
		Name: "bot_known_chats",
		Help: "Chats currently present in the user directory.",
	},
)

func init() { register(knownChats) }

func SetKnownChats(n int) { knownChats.Set(float64(n)) }

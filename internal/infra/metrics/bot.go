package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(botUpdatesTotal, botRepliesTotal) }

var botUpdatesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bot_updates_total",
		Help: "Inbound updates by classification kind.",
	},
	[]string{"kind"}, // 'command', 'date', 'text'
)

var botRepliesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "bot_replies_total",
		Help: "Outbound replies by send status.",
	},
	[]string{"status"}, // 'ok', 'error', 'send_failed', 'rate_limited'
)

func IncUpdate(kind string)  { botUpdatesTotal.WithLabelValues(norm(kind)).Inc() }
func IncReply(status string) { botRepliesTotal.WithLabelValues(norm(status)).Inc() }

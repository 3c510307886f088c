package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(broadcastMessagesTotal, broadcastRunsTotal) }

var broadcastMessagesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "broadcast_messages_total",
		Help: "Birthday messages attempted by the daily broadcast, by status.",
	},
	[]string{"status"}, // 'sent', 'failed'
)

var broadcastRunsTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "broadcast_runs_total",
		Help: "Daily broadcast job runs, by outcome.",
	},
	[]string{"status"}, // 'ok', 'failed'
)

func IncBroadcastMessage(status string) {
	broadcastMessagesTotal.WithLabelValues(norm(status)).Inc()
}

func IncBroadcastRun(status string) {
	broadcastRunsTotal.WithLabelValues(norm(status)).Inc()
}

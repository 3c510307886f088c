package metrics

import "github.com/prometheus/client_golang/prometheus"

func init() { register(dbQueriesTotal) }

var dbQueriesTotal = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "db_queries_total",
		Help: "Database statements executed, by operation and status.",
	},
	[]string{"op", "status"}, // op: 'save_user', 'find_user', ...; status: 'ok', 'error'
)

func IncDBQuery(op string, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	dbQueriesTotal.WithLabelValues(norm(op), status).Inc()
}

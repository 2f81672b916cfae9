package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	DBPoolAcquiredConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "authweb_db_pool_acquired_connections",
			Help: "Number of currently acquired database connections",
		},
	)

	DBPoolIdleConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "authweb_db_pool_idle_connections",
			Help: "Number of idle database connections",
		},
	)

	DBPoolTotalConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "authweb_db_pool_total_connections",
			Help: "Total number of database connections in the pool",
		},
	)

	DBPoolMaxConnections = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "authweb_db_pool_max_connections",
			Help: "Maximum number of database connections allowed",
		},
	)
)

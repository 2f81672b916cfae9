package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	LoginAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authweb_login_attempts_total",
			Help: "Total number of login attempts by outcome",
		},
		[]string{"result"},
	)

	RegistrationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "authweb_registrations_total",
			Help: "Total number of registration attempts by outcome",
		},
		[]string{"result"},
	)

	SessionsEstablished = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "authweb_sessions_established_total",
			Help: "Total number of sessions established after successful login",
		},
	)
)

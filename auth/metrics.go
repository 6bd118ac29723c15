package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	accountsRegistered = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_accounts_registered_total",
			Help: "Total number of accounts registered",
		},
		[]string{"user_type"},
	)

	loginAttempts = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "ats_login_attempts_total",
			Help: "Total number of login attempts",
		},
		[]string{"result"},
	)
)

// PrometheusEvents publishes account activity as prometheus counters.
type PrometheusEvents struct{}

func (PrometheusEvents) AccountCreated(_ ID, userType string) {
	accountsRegistered.WithLabelValues(userType).Inc()
}

func (PrometheusEvents) LoginAttempted(ok bool) {
	result := "failure"
	if ok {
		result = "success"
	}
	loginAttempts.WithLabelValues(result).Inc()
}

package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Package-level so multiple Server instances (tests) share one registration.
var (
	gateDecisions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_gate_decisions_total",
		Help: "Gate outcomes per request, labelled by decision",
	}, []string{"outcome"})

	ticketValidations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "portal_cas_ticket_validations_total",
		Help: "CAS ticket validation attempts by outcome",
	}, []string{"outcome"})

	sloRemovals = promauto.NewCounter(prometheus.CounterOpts{
		Name: "portal_cas_slo_removals_total",
		Help: "Sessions removed through CAS single-logout notifications",
	})
)

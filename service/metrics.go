package service

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	stockMovements = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "templo_stock_movements_total",
		Help: "Stock movements applied, by kind.",
	}, []string{"tipo"})

	stockRejections = promauto.NewCounter(prometheus.CounterOpts{
		Name: "templo_stock_rejections_total",
		Help: "Exit movements rejected for insufficient stock.",
	})

	paymentsRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "templo_payments_recorded_total",
		Help: "Monthly dues payments recorded.",
	})

	duesReminders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "templo_dues_reminders_total",
		Help: "Dues reminder e-mails by outcome.",
	}, []string{"resultado"})
)

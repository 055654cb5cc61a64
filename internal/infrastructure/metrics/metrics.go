package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// DealMetrics содержит все метрики бота
type DealMetrics struct {
	// Тикеты
	TicketsCreatedTotal prometheus.CounterVec

	// Опросные флоу
	IntakesFinalizedTotal prometheus.CounterVec
	IntakesAbandonedTotal prometheus.CounterVec

	// Матчинг заказов
	OrdersClaimedTotal prometheus.CounterVec
	OrdersExpiredTotal prometheus.Counter
	ClaimLatency 	   prometheus.Histogram

	// Платежи
	PaymentsApprovedTotal prometheus.Counter
	PaymentsReleasedTotal prometheus.Counter

	// Ошибки
	ChainErrorsTotal prometheus.CounterVec
	FlowErrorsTotal  prometheus.CounterVec
}

func NewDealMetrics() *DealMetrics {
	return &DealMetrics{
		TicketsCreatedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "tickets_created_total",
				Help: "Общее количество созданных тикетов",
			},
			[]string{"kind", "guild_id"},
		),
		IntakesFinalizedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intakes_finalized_total",
				Help: "Завершенные опросы с сохраненной записью",
			},
			[]string{"flow"},
		),
		IntakesAbandonedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "intakes_abandoned_total",
				Help: "Опросы, брошенные по таймауту",
			},
			[]string{"flow"},
		),
		OrdersClaimedTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_claimed_total",
				Help: "Заказы, разобранные фрилансерами из пула",
			},
			[]string{"service"},
		),
		OrdersExpiredTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "orders_expired_total",
				Help: "Посты заказов, истекшие без клейма за 24 часа",
			},
		),
		ClaimLatency: promauto.NewHistogram(
			prometheus.HistogramOpts{
				Name: "order_claim_latency_seconds",
				Help: "Время от публикации заказа до клейма",
				Buckets: prometheus.ExponentialBuckets(1, 4, 10),
			},
		),
		PaymentsApprovedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_approved_total",
				Help: "Одобренные платежи",
			},
		),
		PaymentsReleasedTotal: promauto.NewCounter(
			prometheus.CounterOpts{
				Name: "payments_released_total",
				Help: "Выплаченные платежи",
			},
		),
		ChainErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "chain_errors_total",
				Help: "Ошибки вызовов контрактов",
			},
			[]string{"call"},
		),
		FlowErrorsTotal: *promauto.NewCounterVec(
			prometheus.CounterOpts{
				Name: "flow_errors_total",
				Help: "Ошибки, показанные пользователю в чате",
			},
			[]string{"flow"},
		),
	}
}

// Package metrics exposes Prometheus metrics for the storefront core.
// A wildcard bus subscription feeds the counters, so instrumenting an
// application is one Observe call.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/nickovin/weblarek-go/pkg/events"
	"github.com/nickovin/weblarek-go/pkg/shop"
)

// Metrics bundles the storefront collectors.
type Metrics struct {
	Registry *prometheus.Registry

	EventsTotal  *prometheus.CounterVec
	BasketItems  prometheus.Gauge
	BasketTotal  prometheus.Gauge
	OrdersDone   prometheus.Counter
	OrdersFailed prometheus.Counter
}

// New creates the metric bundle on a fresh registry labelled with the
// service name.
func New() *Metrics {
	registry := prometheus.NewRegistry()
	reg := prometheus.WrapRegistererWith(prometheus.Labels{"service": "weblarek"}, registry)

	return &Metrics{
		Registry: registry,
		EventsTotal: promauto.With(reg).NewCounterVec(prometheus.CounterOpts{
			Name: "larek_events_total",
			Help: "Events emitted on the topic bus, by topic",
		}, []string{"topic"}),
		BasketItems: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "larek_basket_items",
			Help: "Products currently in the basket",
		}),
		BasketTotal: promauto.With(reg).NewGauge(prometheus.GaugeOpts{
			Name: "larek_basket_total",
			Help: "Basket total in synapses",
		}),
		OrdersDone: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "larek_orders_done_total",
			Help: "Orders accepted by the backend",
		}),
		OrdersFailed: promauto.With(reg).NewCounter(prometheus.CounterOpts{
			Name: "larek_orders_failed_total",
			Help: "Order submissions rejected or errored",
		}),
	}
}

// Observe subscribes the bundle to every event on the bus and returns
// the unsubscribe function.
func (m *Metrics) Observe(bus *events.Bus) (unsubscribe func()) {
	return bus.Subscribe(events.Wildcard, func(topic string, payload any) {
		m.EventsTotal.WithLabelValues(topic).Inc()

		switch topic {
		case shop.TopicBasketChanged:
			if b, ok := payload.(shop.Basket); ok {
				m.BasketItems.Set(float64(len(b.Items)))
				m.BasketTotal.Set(float64(b.Total))
			}
		case shop.TopicOrderDone:
			m.OrdersDone.Inc()
		case shop.TopicOrderFailed:
			m.OrdersFailed.Inc()
		}
	})
}

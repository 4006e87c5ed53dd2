// Command larek runs the storefront frontend: it fetches the catalog
// from the backend, keeps the application state in sync with the views
// over the topic bus, and serves the rendered page, a websocket event
// mirror and Prometheus metrics.
package main

import (
	"flag"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nickovin/weblarek-go/pkg/api"
	"github.com/nickovin/weblarek-go/pkg/app"
	"github.com/nickovin/weblarek-go/pkg/config"
	"github.com/nickovin/weblarek-go/pkg/events"
	"github.com/nickovin/weblarek-go/pkg/logging"
	"github.com/nickovin/weblarek-go/pkg/metrics"
	"github.com/nickovin/weblarek-go/pkg/shop"
	"github.com/nickovin/weblarek-go/pkg/view"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		logging.New(false).Errorf("larek: %v", err)
		os.Exit(1)
	}
	logger := logging.New(cfg.Debug)

	bus := events.NewBus()

	m := metrics.New()
	m.Observe(bus)

	bridge := events.NewWSBridge(bus, events.Wildcard, logger)
	defer bridge.Close()

	state := shop.NewAppData(bus)
	orchestrator := app.New(app.Deps{
		Bus:          bus,
		State:        state,
		Gateway:      api.NewClient(cfg.APIOrigin, cfg.CDNOrigin),
		Page:         view.NewPage(bus),
		Basket:       view.NewBasketView(bus),
		Modal:        view.NewModal(bus),
		OrderForm:    view.NewOrderForm(bus),
		ContactsForm: view.NewContactsForm(bus),
		Logger:       logger,
	})

	if err := orchestrator.Run(); err != nil {
		logger.Errorf("larek: %v", err)
		os.Exit(1)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if page := orchestrator.PageNode(); page != nil {
			w.Write([]byte(page.String()))
		}
	})
	mux.HandleFunc("/events", bridge.HandleWebSocket)
	mux.Handle("/metrics", promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{}))

	logger.Infof("larek: listening on %s", cfg.Listen)
	if err := http.ListenAndServe(cfg.Listen, mux); err != nil {
		logger.Errorf("larek: serve: %v", err)
		os.Exit(1)
	}
}

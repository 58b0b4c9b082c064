package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/inkwell-run/cardtree/pkg/metrics"
	"github.com/inkwell-run/cardtree/pkg/walk"
)

var metricsServeCmd = &cobra.Command{
	Use:   "metrics-serve",
	Short: "Walk the built-in sample tree on each /walk request, exposing /metrics",
	Long: `Starts an HTTP server with a Prometheus /metrics endpoint and a /walk
endpoint. Each request to /walk walks the sample card tree once, adding to
cardtree_walk_visits_total and cardtree_walk_duration_seconds, for
exercising pkg/metrics' WalkMetrics against a real registry.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		reg := prometheus.NewRegistry()
		wm := metrics.NewWalkMetrics(reg)

		store, root := demoTree()
		w := walk.New(store, walk.WithMetrics(wm))

		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		mux.HandleFunc("/walk", func(rw http.ResponseWriter, r *http.Request) {
			w.WalkCard(nopVisitor{}, root)
			rw.WriteHeader(http.StatusNoContent)
		})

		addr := cfg.Metrics.Addr
		if addr == "" {
			addr = ":9090"
		}
		return http.ListenAndServe(addr, mux)
	},
}

type nopVisitor struct{ walk.BaseVisitor }

func init() {
	rootCmd.AddCommand(metricsServeCmd)
}

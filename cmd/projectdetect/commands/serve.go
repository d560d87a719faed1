package commands

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/sumatoshi-tech/projectdetect/pkg/observability"
)

const serveMetricsReadHeaderTimeout = 5 * time.Second

// NewServeMetricsCommand creates the serve-metrics subcommand.
func NewServeMetricsCommand() *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve-metrics",
		Short: "Expose a Prometheus scrape endpoint",
		Long: `Starts an HTTP server exposing a /metrics endpoint backed by the
Prometheus exporter's own meter provider. No detector or MCP instruments
are recorded on that provider, so the endpoint does not report the
request/error/duration metrics that the mcp command records.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cobraCmd *cobra.Command, _ []string) error {
			handler, err := observability.PrometheusHandler()
			if err != nil {
				return fmt.Errorf("build prometheus handler: %w", err)
			}

			mux := http.NewServeMux()
			mux.Handle("/metrics", handler)

			server := &http.Server{
				Addr:              addr,
				Handler:           mux,
				ReadHeaderTimeout: serveMetricsReadHeaderTimeout,
			}

			fmt.Fprintf(os.Stdout, "serving metrics on %s/metrics\n", addr)

			go func() {
				<-cobraCmd.Context().Done()
				_ = server.Close()
			}()

			if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				return fmt.Errorf("serve metrics: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", ":9090", "listen address for the metrics endpoint")

	return cmd
}

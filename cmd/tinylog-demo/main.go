// Command tinylog-demo loads tinylog settings, wires the configured sink and
// emits sample records. With Metrics.Addr set it also serves /metrics and
// keeps logging a heartbeat until interrupted.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/trickstertwo/tinylog"
	"github.com/trickstertwo/tinylog/config"
	"github.com/trickstertwo/tinylog/sink/metrics"
	slogsink "github.com/trickstertwo/tinylog/sink/slog"
	"github.com/trickstertwo/tinylog/sink/stream"
	zapsink "github.com/trickstertwo/tinylog/sink/zap"
	zerologsink "github.com/trickstertwo/tinylog/sink/zerolog"
)

func main() {
	configName := flag.String("config", "tinylog.toml", "config file name")
	flag.Parse()

	conf, err := loadConfig(*configName)
	if err != nil {
		fmt.Fprintf(os.Stderr, "tinylog-demo: %v\n", err)
		os.Exit(1)
	}

	counter, err := metrics.New(prometheus.DefaultRegisterer, newSink(conf, os.Stdout))
	if err != nil {
		fmt.Fprintf(os.Stderr, "tinylog-demo: metrics: %v\n", err)
		os.Exit(1)
	}
	d, err := conf.Builder().WithPrintCallback(counter.Print).Build()
	if err != nil {
		fmt.Fprintf(os.Stderr, "tinylog-demo: %v\n", err)
		os.Exit(1)
	}
	tinylog.SetGlobal(d)

	tinylog.Info("tinylog-demo starting: mode=%s min=%s sink=%s", conf.Mode(), conf.MinLevel(), conf.Sink())
	tinylog.Trace("config provenance %s", conf.Provenances())
	tinylog.Warn("sensor %d not responding, retry in %d ms", 3, 250)
	tinylog.Error("flash write failed at 0x%08x", 0x0800F000)
	tinylog.User("button %q pressed", "OK")

	if conf.MetricsAddr() == "" {
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := serve(ctx, conf.MetricsAddr()); err != nil {
		tinylog.Error("metrics server: %v", err)
		os.Exit(1)
	}
}

func loadConfig(name string) (*config.Config, error) {
	conf, err := config.LoadFiles([]string{name}, []string{".", "/etc/tinylog"})
	if err == nil {
		return conf, nil
	}
	fmt.Fprintf(os.Stderr, "tinylog-demo: %v; using defaults\n", err)
	return config.Load(nil, nil)
}

func newSink(conf *config.Config, w io.Writer) tinylog.PrintFunc {
	switch conf.Sink() {
	case config.SinkZap:
		return zapsink.New(zapsink.NewLogger(zapsink.Config{Writer: w, Console: !conf.JSON()})).Print
	case config.SinkZerolog:
		return zerologsink.New(zerologsink.NewLogger(zerologsink.Config{Writer: w, Console: !conf.JSON()})).Print
	case config.SinkSlog:
		f := slogsink.FormatText
		if conf.JSON() {
			f = slogsink.FormatJSON
		}
		return slogsink.New(slogsink.NewLogger(slogsink.Config{Writer: w, Format: f})).Print
	default:
		f := stream.FormatText
		if conf.JSON() {
			f = stream.FormatJSON
		}
		return stream.New(w, stream.Options{Format: f}).Print
	}
}

func serve(ctx context.Context, addr string) error {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.Handler()).Methods(http.MethodGet)

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() {
		tinylog.Info("serving metrics on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
		close(errCh)
	}()

	tick := time.NewTicker(5 * time.Second)
	defer tick.Stop()
	for n := 1; ; n++ {
		select {
		case <-ctx.Done():
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			tinylog.Info("shutting down")
			return srv.Shutdown(shutdownCtx)
		case err, ok := <-errCh:
			if ok {
				return err
			}
			return nil
		case <-tick.C:
			tinylog.Info("heartbeat %d", n)
		}
	}
}

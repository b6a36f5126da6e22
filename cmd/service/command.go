package service

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/breeew/datas-api/cmd/service/handler"
	"github.com/breeew/datas-api/internal/core"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
)

type Options struct {
	ConfigPath string
	Addr       string
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "config file path, environment variables are used when empty")
	flagSet.StringVarP(&o.Addr, "addr", "a", "", "listen address, overrides the config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "datas http service",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return Run(ctx, opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

// Run serves until ctx is done, then drains in-flight requests and releases the store.
func Run(ctx context.Context, opts *Options) error {
	cfg, err := core.LoadBaseConfig(opts.ConfigPath)
	if err != nil {
		return err
	}
	if opts.Addr != "" {
		cfg.Addr = opts.Addr
	}

	app, err := core.SetupCore(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := app.Close(); err != nil {
			slog.Error("failed to close core", slog.String("error", err.Error()))
		}
	}()

	return serve(ctx, app)
}

func NewHttpSrv(app *core.Core) *handler.HttpSrv {
	httpSrv := &handler.HttpSrv{
		Core:   app,
		Engine: app.HttpEngine(),
	}
	setupHttpRouter(httpSrv)
	return httpSrv
}

func serve(ctx context.Context, app *core.Core) error {
	srv := &http.Server{
		Addr:              app.Cfg().Addr,
		Handler:           NewHttpSrv(app).Engine,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server listening", slog.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	slog.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/breeew/datas-api/internal/store/sqlstore"
)

type Core struct {
	cfg CoreConfig

	stores  *sqlstore.Provider
	metrics *Metrics
	limiter *limiterPool
	engine  *gin.Engine

	logCloser io.Closer
}

// SetupCore configures logging, opens the store pools and runs the schema
// migrations when auto_migrate is set. The caller owns the returned Core and
// must Close it.
func SetupCore(ctx context.Context, cfg CoreConfig) (*Core, error) {
	core := &Core{
		cfg:     cfg,
		metrics: NewMetrics("datas_api", "core"),
		limiter: newLimiterPool(),
	}
	core.logCloser = setupLogger(cfg.Log)

	if err := setupSqlStore(ctx, core); err != nil {
		core.Close()
		return nil, err
	}

	core.engine = gin.New()
	// gin.Context passed to the store carries the request cancellation
	core.engine.ContextWithFallback = true
	core.engine.Use(gin.Recovery())
	return core, nil
}

func setupLogger(cfg Log) io.Closer {
	var (
		writer io.Writer = os.Stdout
		closer io.Closer
	)
	if cfg.Path != "" {
		l := &lumberjack.Logger{
			Filename:   cfg.Path,
			MaxSize:    500, // megabytes
			MaxBackups: 3,
			MaxAge:     28, //days
			Compress:   true,
		}
		writer, closer = l, l
	}
	l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))
	slog.SetDefault(l)
	return closer
}

func setupSqlStore(ctx context.Context, core *Core) error {
	stores, err := sqlstore.Setup(ctx, core.cfg.Database.Master(), core.cfg.Database.Slaves()...)
	if err != nil {
		return fmt.Errorf("setup store: %w", err)
	}
	core.stores = stores
	core.metrics.WatchDB("master", stores.GetMaster().DB)

	if core.cfg.Database.AutoMigrate {
		res, err := stores.Migrate(ctx)
		if err != nil {
			return fmt.Errorf("migrate store: %w", err)
		}
		for _, r := range res {
			slog.Info("migration applied", slog.String("source", r.Source.Path), slog.Duration("duration", r.Duration))
		}
	}
	return nil
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.engine
}

// Close releases the store pools and the log file.
func (s *Core) Close() error {
	var errs []error
	if s.stores != nil {
		errs = append(errs, s.stores.Close())
	}
	if s.logCloser != nil {
		errs = append(errs, s.logCloser.Close())
	}
	return errors.Join(errs...)
}

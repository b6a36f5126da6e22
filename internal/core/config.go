package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/samber/lo"

	"github.com/breeew/datas-api/pkg/sqlstore"
)

const (
	DEFAULT_ADDR         = ":8000"
	DEFAULT_METRICS_PATH = "/metrics"
)

// LoadBaseConfig reads the toml file at path, or the environment when path is empty.
func LoadBaseConfig(path string) (CoreConfig, error) {
	if path == "" {
		return LoadBaseConfigFromENV(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return CoreConfig{}, err
	}

	var conf CoreConfig
	if err = toml.Unmarshal(raw, &conf); err != nil {
		return CoreConfig{}, err
	}
	conf.SetDefaults()
	return conf, nil
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	c.SetDefaults()
	return c
}

type CoreConfig struct {
	Addr      string        `toml:"addr"`
	Log       Log           `toml:"log"`
	Database  DBConfig      `toml:"database"`
	API       API           `toml:"api"`
	RateLimit RateLimit     `toml:"ratelimit"`
	Metrics   MetricsConfig `toml:"metrics"`
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("DATAS_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Database.FromENV()
	c.API.FromENV()
	c.RateLimit.FromENV()
	c.Metrics.FromENV()
}

func (c *CoreConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = DEFAULT_ADDR
	}
	if c.Database.Driver == "" {
		c.Database.Driver = sqlstore.DriverPostgres
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = DEFAULT_METRICS_PATH
	}
}

type DBConfig struct {
	Driver          string        `toml:"driver"`
	DSN             string        `toml:"dsn"`
	Replicas        []string      `toml:"replicas"`
	MaxOpenConns    int           `toml:"max_open_conns"`
	MaxIdleConns    int           `toml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `toml:"conn_max_lifetime"`
	AutoMigrate     bool          `toml:"auto_migrate"`
}

func (m *DBConfig) FromENV() {
	m.Driver = os.Getenv("DATAS_API_DB_DRIVER")
	m.DSN = os.Getenv("DATAS_API_DB_DSN")
	if replicas := os.Getenv("DATAS_API_DB_REPLICAS"); replicas != "" {
		m.Replicas = lo.Compact(lo.Map(strings.Split(replicas, ","), func(s string, _ int) string {
			return strings.TrimSpace(s)
		}))
	}
	m.MaxOpenConns = envInt("DATAS_API_DB_MAX_OPEN_CONNS")
	m.MaxIdleConns = envInt("DATAS_API_DB_MAX_IDLE_CONNS")
	if d, err := time.ParseDuration(os.Getenv("DATAS_API_DB_CONN_MAX_LIFETIME")); err == nil {
		m.ConnMaxLifetime = d
	}
	m.AutoMigrate = envBool("DATAS_API_DB_AUTO_MIGRATE")
}

func (m DBConfig) connectConfig(dsn string) sqlstore.ConnectConfig {
	return sqlstore.ConnectConfig{
		Driver:          m.Driver,
		DSN:             dsn,
		MaxOpenConns:    m.MaxOpenConns,
		MaxIdleConns:    m.MaxIdleConns,
		ConnMaxLifetime: m.ConnMaxLifetime,
	}
}

// Master returns the connect config of the writable database.
func (m DBConfig) Master() sqlstore.ConnectConfig {
	return m.connectConfig(m.DSN)
}

func (m DBConfig) Slaves() []sqlstore.ConnectConfig {
	return lo.Map(m.Replicas, func(dsn string, _ int) sqlstore.ConnectConfig {
		return m.connectConfig(dsn)
	})
}

type API struct {
	// ReturnCreated adds the created row to the create acknowledgment.
	ReturnCreated bool `toml:"return_created"`
}

func (a *API) FromENV() {
	a.ReturnCreated = envBool("DATAS_API_RETURN_CREATED")
}

type RateLimit struct {
	// PerMinute is the number of requests a client ip may issue per minute; 0 disables the limit.
	PerMinute int `toml:"per_minute"`
}

func (r *RateLimit) FromENV() {
	r.PerMinute = envInt("DATAS_API_RATELIMIT_PER_MINUTE")
}

type MetricsConfig struct {
	Enabled bool   `toml:"enabled"`
	Path    string `toml:"path"`
}

func (m *MetricsConfig) FromENV() {
	m.Enabled = envBool("DATAS_API_METRICS_ENABLED")
	m.Path = os.Getenv("DATAS_API_METRICS_PATH")
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("DATAS_API_LOG_LEVEL")
	l.Path = os.Getenv("DATAS_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}

func envInt(key string) int {
	v, _ := strconv.Atoi(os.Getenv(key))
	return v
}

func envBool(key string) bool {
	v, _ := strconv.ParseBool(os.Getenv(key))
	return v
}

package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

type Config struct {
	APIURL         string        `env:"ACORDOS_API_URL"         envDefault:"localhost:8001"`
	SessionFile    string        `env:"ACORDOS_SESSION_FILE"`
	LogLvl         string        `env:"LOG_LVL"                 envDefault:"error"`
	LogFile        string        `env:"ACORDOS_LOG_FILE"`
	ImportMaxMB    int           `env:"ACORDOS_IMPORT_MAX_MB"   envDefault:"10"`
	RequestTimeout time.Duration `env:"ACORDOS_REQUEST_TIMEOUT" envDefault:"0s"`
	PageSize       int           `env:"ACORDOS_PAGE_SIZE"       envDefault:"10"`
}

// New reads an optional .env file and the process environment. Command-line
// flags are bound later with BindFlags and applied by Normalize.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, err
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	cfg.Normalize()

	return cfg, nil
}

func (c *Config) BindFlags(fs *pflag.FlagSet) {
	fs.StringVarP(&c.APIURL, "api", "a", c.APIURL, "backend address")
	fs.StringVarP(&c.LogLvl, "log-level", "l", c.LogLvl, "log level")
	fs.StringVar(&c.SessionFile, "session-file", c.SessionFile, "file holding the session token")
	fs.StringVar(&c.LogFile, "log-file", c.LogFile, "write JSON logs to this file instead of stderr")
}

// Normalize fills derived defaults and makes the API URL absolute with the
// /api prefix the backend mounts its routes under.
func (c *Config) Normalize() {
	if !strings.HasPrefix(c.APIURL, "http://") && !strings.HasPrefix(c.APIURL, "https://") {
		c.APIURL = "http://" + c.APIURL
	}
	c.APIURL = strings.TrimRight(c.APIURL, "/")
	if !strings.HasSuffix(c.APIURL, "/api") {
		c.APIURL += "/api"
	}

	if c.SessionFile == "" {
		c.SessionFile = defaultSessionFile()
	}
	if c.PageSize <= 0 {
		c.PageSize = 10
	}
	if c.ImportMaxMB <= 0 {
		c.ImportMaxMB = 10
	}
}

func (c *Config) ImportMaxBytes() int64 {
	return int64(c.ImportMaxMB) * 1024 * 1024
}

func defaultSessionFile() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "acordos", "token")
}

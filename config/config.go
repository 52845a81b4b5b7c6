package config

import (
	"errors"
	"flag"
	"net"
	"os"
	"regexp"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr        string
	DBUrl       string
	TokenSecret string
	TokenTTL    time.Duration
	CORSOrigin  string
	Debug       bool
}

// ParseFlags builds the process configuration from command line flags, with
// defaults taken from the environment (a .env file is honored when present).
func ParseFlags() (cfg Config, err error) {
	godotenv.Load()

	var host string
	flag.StringVar(&host, "host", envOr("HOST", "0.0.0.0"), "listen host name (default 0.0.0.0)")
	var port uint
	flag.UintVar(&port, "port", envUintOr("PORT", 3000), "listen port number (default 3000)")
	flag.StringVar(&cfg.DBUrl, "db-url", envOr("DB_URL", "survey.sqlite"), "path to SQLite3 DB file (default survey.sqlite)")
	flag.StringVar(&cfg.TokenSecret, "token-secret", os.Getenv("JWT_KEY"), "secret key for signing bearer tokens")
	var ttl uint
	flag.UintVar(&ttl, "token-ttl", envUintOr("TOKEN_TTL", 7*24*60*60), "bearer token TTL in seconds (default 7 days)")
	flag.StringVar(&cfg.CORSOrigin, "cors-origin", envOr("CORS_ORIGIN", "http://localhost:5173"), "allowed CORS origin")
	flag.BoolVar(&cfg.Debug, "debug", false, "log at DEBUG level")
	flag.Parse()

	cfg.Addr = net.JoinHostPort(host, strconv.Itoa(int(port)))
	cfg.TokenTTL = time.Duration(ttl) * time.Second

	if cfg.TokenSecret == "" {
		err = errors.New("missing parameter -token-secret (or JWT_KEY)")
	}

	return
}

func (cfg Config) Url() (url string) {
	url = cfg.Addr
	url = regexp.MustCompile(`^0.0.0.0`).ReplaceAllString(url, "localhost")
	url = "http://" + url
	return
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envUintOr(key string, fallback uint) uint {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseUint(v, 10, 32); err == nil {
			return uint(n)
		}
	}
	return fallback
}

package config

import (
	"os"
	"time"

	"github.com/spf13/viper"
)

// Defaults used when neither the env file nor the environment sets a value
const (
	DefaultAPIBaseURL     = "http://localhost:8080/api"
	DefaultRequestTimeout = 10 * time.Second

	DefaultProxyListenAddr = ":5173"
	DefaultBackendOrigin   = "http://localhost:8080"
)

// Config is the deployment-level configuration. It is loaded once at
// startup and passed by value; there is no package-level singleton.
type Config struct {
	// APIBaseURL is the prefix every API path is resolved against
	APIBaseURL string `mapstructure:"API_BASE_URL"`

	// RequestTimeout bounds every HTTP request issued by the client
	RequestTimeout time.Duration `mapstructure:"REQUEST_TIMEOUT"`

	// ProxyListenAddr is where the dev proxy listens
	ProxyListenAddr string `mapstructure:"PROXY_LISTEN_ADDR"`

	// BackendOrigin is the origin the dev proxy forwards /api/* to
	BackendOrigin string `mapstructure:"BACKEND_ORIGIN"`
}

// Load reads configuration from the given env file (optional) with
// environment variables taking precedence over file values.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("API_BASE_URL", DefaultAPIBaseURL)
	v.SetDefault("REQUEST_TIMEOUT", DefaultRequestTimeout)
	v.SetDefault("PROXY_LISTEN_ADDR", DefaultProxyListenAddr)
	v.SetDefault("BACKEND_ORIGIN", DefaultBackendOrigin)

	// A missing env file is fine; env vars and defaults still apply
	if path != "" {
		if _, statErr := os.Stat(path); statErr == nil {
			v.SetConfigFile(path)
			if err := v.ReadInConfig(); err != nil {
				return Config{}, err
			}
		}
	}
	v.AutomaticEnv()

	var cf Config
	if err := v.Unmarshal(&cf); err != nil {
		return Config{}, err
	}
	return cf, nil
}

package config

import (
	"fmt"
	"log"
	"net"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	Server    ServerConfig
	App       AppConfig
	EmailJS   EmailJSConfig
	Contact   ContactConfig
	Assets    AssetsConfig
	Visits    VisitsConfig
	Telemetry TelemetryConfig
}

type ServerConfig struct {
	Port            string        `env:"PORT" envDefault:"8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	// TrustedProxies lists the IPs or CIDRs whose X-Forwarded-For is
	// believed. Empty means the socket address is the client.
	TrustedProxies []string `env:"TRUSTED_PROXIES" envSeparator:","`
}

type AppConfig struct {
	Environment string `env:"APP_ENV" envDefault:"development"`
	Version     string `env:"APP_VERSION" envDefault:"1.0.0"`
}

// EmailJSConfig holds the account and template used by the contact form.
// PublicKey identifies the sending account and has no default.
type EmailJSConfig struct {
	PublicKey  string        `env:"EMAILJS_PUBLIC_KEY"`
	PrivateKey string        `env:"EMAILJS_PRIVATE_KEY"`
	ServiceID  string        `env:"EMAILJS_SERVICE_ID" envDefault:"service_ckz6p9c"`
	TemplateID string        `env:"EMAILJS_TEMPLATE_ID" envDefault:"template_tku2qfe"`
	APIURL     string        `env:"EMAILJS_API_URL" envDefault:"https://api.emailjs.com"`
	Timeout    time.Duration `env:"EMAILJS_TIMEOUT" envDefault:"15s"`
}

type ContactConfig struct {
	RatePerMinute int `env:"CONTACT_RATE_PER_MINUTE" envDefault:"5"`
	RateBurst     int `env:"CONTACT_RATE_BURST" envDefault:"3"`
}

type AssetsConfig struct {
	ImagesDir string `env:"IMAGES_DIR" envDefault:"./images"`
	StaticDir string `env:"STATIC_DIR" envDefault:"./static"`
}

// VisitsConfig controls privacy-conscious visitor tracking. An empty DBPath
// disables tracking entirely.
type VisitsConfig struct {
	DBPath        string        `env:"VISITS_DB_PATH"`
	Salt          string        `env:"VISITS_SALT"`
	Retention     time.Duration `env:"VISITS_RETENTION" envDefault:"8760h"`
	PurgeSchedule string        `env:"VISITS_PURGE_SCHEDULE" envDefault:"0 0 3 * * *"`
}

type TelemetryConfig struct {
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.EmailJS.PublicKey == "" {
		return fmt.Errorf("EMAILJS_PUBLIC_KEY is required")
	}

	if c.EmailJS.ServiceID == "" || c.EmailJS.TemplateID == "" {
		return fmt.Errorf("EMAILJS_SERVICE_ID and EMAILJS_TEMPLATE_ID are required")
	}

	if c.Contact.RatePerMinute < 0 || c.Contact.RateBurst < 0 {
		return fmt.Errorf("contact rate limits must not be negative")
	}

	for _, proxy := range c.Server.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("TRUSTED_PROXIES entry %q is not an IP or CIDR", proxy)
		}
	}

	if c.Visits.DBPath != "" && c.Visits.Retention <= 0 {
		return fmt.Errorf("VISITS_RETENTION must be positive")
	}

	return nil
}

func validProxy(s string) bool {
	if strings.Contains(s, "/") {
		_, _, err := net.ParseCIDR(s)
		return err == nil
	}
	return net.ParseIP(s) != nil
}

// IsProduction reports whether gin should run in release mode.
func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

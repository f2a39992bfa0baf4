package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort           = "5000"
	defaultReadTimeout    = "15s"
	defaultWriteTimeout   = "30s"
	defaultShutdown       = "10s"
	defaultSMTPHost       = "smtp.gmail.com"
	defaultSMTPPort       = "587"
	defaultEmailFromName  = "Order Desk"
	defaultServiceName    = "storefront-checkout"
	defaultCORSOriginsEnv = "CORS_ALLOWED_ORIGINS"
)

type Config struct {
	AppEnv      string
	ServiceName string
	Server      ServerConfig
	Razorpay    RazorpayConfig
	Email       EmailConfig
	CORSOrigins []string
}

type ServerConfig struct {
	Port            int
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	ShutdownTimeout time.Duration
}

func (s ServerConfig) Addr() string {
	return ":" + strconv.Itoa(s.Port)
}

// RazorpayConfig may be left empty; handlers report the gap per request.
type RazorpayConfig struct {
	KeyID     string
	KeySecret string
}

func (r RazorpayConfig) Configured() bool {
	return r.KeyID != "" && r.KeySecret != ""
}

type EmailConfig struct {
	User     string
	Password string
	FromName string
	SMTPHost string
	SMTPPort int
}

func (e EmailConfig) Configured() bool {
	return e.User != "" && e.Password != ""
}

func Load() (*Config, error) {
	cfg := &Config{ServiceName: defaultServiceName}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	var err error
	cfg.Server.Port, err = parsePortEnv("PORT", defaultPort)
	if err != nil {
		return nil, err
	}
	cfg.Server.ReadTimeout, err = parseDurationEnv("SERVER_READ_TIMEOUT", defaultReadTimeout)
	if err != nil {
		return nil, err
	}
	cfg.Server.WriteTimeout, err = parseDurationEnv("SERVER_WRITE_TIMEOUT", defaultWriteTimeout)
	if err != nil {
		return nil, err
	}
	cfg.Server.ShutdownTimeout, err = parseDurationEnv("SHUTDOWN_TIMEOUT", defaultShutdown)
	if err != nil {
		return nil, err
	}

	cfg.Razorpay = RazorpayConfig{
		KeyID:     strings.TrimSpace(os.Getenv("RAZORPAY_KEY_ID")),
		KeySecret: strings.TrimSpace(os.Getenv("RAZORPAY_KEY_SECRET")),
	}

	cfg.Email = EmailConfig{
		User:     strings.TrimSpace(os.Getenv("EMAIL_USER")),
		Password: os.Getenv("EMAIL_PASS"),
		FromName: strings.TrimSpace(getEnv("EMAIL_FROM_NAME", defaultEmailFromName)),
		SMTPHost: strings.TrimSpace(getEnv("SMTP_HOST", defaultSMTPHost)),
	}
	cfg.Email.SMTPPort, err = parsePortEnv("SMTP_PORT", defaultSMTPPort)
	if err != nil {
		return nil, err
	}

	cfg.CORSOrigins = parseListEnv(defaultCORSOriginsEnv)

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	log.Printf("config loaded: env=%s port=%d razorpay_configured=%t email_configured=%t",
		cfg.AppEnv, cfg.Server.Port, cfg.Razorpay.Configured(), cfg.Email.Configured())

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.Server.ReadTimeout <= 0 {
		return fmt.Errorf("SERVER_READ_TIMEOUT must be > 0")
	}
	if cfg.Server.WriteTimeout <= 0 {
		return fmt.Errorf("SERVER_WRITE_TIMEOUT must be > 0")
	}
	if cfg.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be > 0")
	}
	if cfg.Email.SMTPHost == "" {
		return fmt.Errorf("SMTP_HOST must not be empty")
	}
	return nil
}

func (c *Config) IsProdLike() bool {
	return isProdLike(c.AppEnv)
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parsePortEnv(name, fallback string) (int, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	port, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	if port <= 0 || port > 65535 {
		return 0, fmt.Errorf("%s must be between 1 and 65535, got %d", name, port)
	}
	return port, nil
}

func parseListEnv(name string) []string {
	raw := os.Getenv(name)
	if raw == "" {
		return nil
	}
	var out []string
	for _, v := range strings.Split(raw, ",") {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}

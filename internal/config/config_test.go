package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"APP_ENV", "ENV", "PORT", "SERVER_READ_TIMEOUT", "SERVER_WRITE_TIMEOUT", "SHUTDOWN_TIMEOUT",
		"RAZORPAY_KEY_ID", "RAZORPAY_KEY_SECRET", "EMAIL_USER", "EMAIL_PASS", "EMAIL_FROM_NAME",
		"SMTP_HOST", "SMTP_PORT", "CORS_ALLOWED_ORIGINS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, ":5000", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, "smtp.gmail.com", cfg.Email.SMTPHost)
	assert.Equal(t, 587, cfg.Email.SMTPPort)
	assert.False(t, cfg.Razorpay.Configured())
	assert.False(t, cfg.Email.Configured())
	assert.Nil(t, cfg.CORSOrigins)
}

func TestLoad_MissingCredentialsIsNotFatal(t *testing.T) {
	clearEnv(t)
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.Razorpay.Configured())
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("APP_ENV", "Release")
	t.Setenv("PORT", "8081")
	t.Setenv("RAZORPAY_KEY_ID", "rzp_test_key")
	t.Setenv("RAZORPAY_KEY_SECRET", "s3cr3t")
	t.Setenv("EMAIL_USER", "orders@example.com")
	t.Setenv("EMAIL_PASS", "app-password")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://shop.example.com, ,https://admin.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.True(t, cfg.IsProdLike())
	assert.Equal(t, 8081, cfg.Server.Port)
	assert.True(t, cfg.Razorpay.Configured())
	assert.True(t, cfg.Email.Configured())
	assert.Equal(t, []string{"https://shop.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}

func TestLoad_InvalidValues(t *testing.T) {
	cases := map[string]string{
		"PORT":                "not-a-port",
		"SMTP_PORT":           "70000",
		"SERVER_READ_TIMEOUT": "soon",
		"SHUTDOWN_TIMEOUT":    "-1s",
	}
	for name, value := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			t.Setenv(name, value)
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

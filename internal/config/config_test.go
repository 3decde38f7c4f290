package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "ENV", "LOG_LEVEL", "VIACEP_URL", "BRASILAPI_URL", "LOOKUP_TIMEOUT", "PAYROLL_TABLES_PATH", "PIX_QR_SIZE"} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "https://viacep.com.br", cfg.Lookup.ViaCEPURL)
	assert.Equal(t, "https://brasilapi.com.br", cfg.Lookup.BrasilAPIURL)
	assert.Equal(t, 10*time.Second, cfg.Lookup.Timeout)
	assert.Empty(t, cfg.Payroll.TablesPath)
	assert.Equal(t, 256, cfg.Pix.QRSize)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("LOOKUP_TIMEOUT", "3s")
	t.Setenv("PIX_QR_SIZE", "512")
	t.Setenv("PAYROLL_TABLES_PATH", "/etc/brtools/2025.yaml")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 3*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, 512, cfg.Pix.QRSize)
	assert.Equal(t, "/etc/brtools/2025.yaml", cfg.Payroll.TablesPath)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "non numeric port", key: "PORT", value: "http"},
		{name: "qr too small", key: "PIX_QR_SIZE", value: "32"},
		{name: "qr too large", key: "PIX_QR_SIZE", value: "4096"},
		{name: "negative timeout", key: "LOOKUP_TIMEOUT", value: "-1s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestGetEnvHelpers(t *testing.T) {
	t.Setenv("BRTOOLS_TEST_INT", "abc")
	assert.Equal(t, 7, getEnvInt("BRTOOLS_TEST_INT", 7))

	t.Setenv("BRTOOLS_TEST_DURATION", "forever")
	assert.Equal(t, time.Minute, getEnvDuration("BRTOOLS_TEST_DURATION", time.Minute))
}

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libro-dev/libro/internal/accounts"
	"github.com/libro-dev/libro/internal/apperrors"
	"github.com/libro-dev/libro/internal/ledger"
	"github.com/libro-dev/libro/internal/model"
)

func TestDefaults(t *testing.T) {
	cfg := Default("Papelería Luna")

	assert.Equal(t, "Papelería Luna", cfg.Business.Name)
	assert.Equal(t, "0.16", cfg.Tax.VATRate)
	assert.Equal(t, "Bancos", cfg.Session.DefaultAccount)
	assert.Equal(t, "info", cfg.Session.LogLevel)
	assert.Empty(t, cfg.Session.Date)
	require.Len(t, cfg.Opening.Debits, 9)
	require.Len(t, cfg.Opening.Credits, 1)
	assert.Equal(t, Balance{Account: "Caja", Amount: "30000.00"}, cfg.Opening.Debits[0])
	assert.Equal(t, Balance{Account: "Capital social", Amount: "4980000.00"}, cfg.Opening.Credits[0])
	require.NoError(t, Validate(cfg))

	assert.Equal(t, "Mi Empresa", Default("").Business.Name)
}

func TestRoundTrip(t *testing.T) {
	cfg := Default("Test Biz")
	cfg.Tax.VATRate = "0.08"
	cfg.Session.DefaultAccount = "Caja"
	cfg.Session.Date = "2025-03-31"

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, cfg))

	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("business:\n  name: Ferretería Sol\n"), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Ferretería Sol", cfg.Business.Name)
	assert.Equal(t, "0.16", cfg.Tax.VATRate)
	assert.Len(t, cfg.Opening.Debits, 9)
}

func TestLoad_OpeningReplacesDefaults(t *testing.T) {
	yml := `opening:
  debits:
    - account: Caja
      amount: "500.00"
  credits:
    - account: Capital social
      amount: "500.00"
`
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	require.Len(t, cfg.Opening.Debits, 1)
	require.Len(t, cfg.Opening.Credits, 1)
	require.NoError(t, Validate(cfg))
}

func TestLoadNotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadOrDefault(t *testing.T) {
	cfg, err := LoadOrDefault(filepath.Join(t.TempDir(), "nonexistent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(""), cfg)

	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, os.WriteFile(path, []byte("tax: [not a map"), 0o644))
	_, err = LoadOrDefault(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestYAMLFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	require.NoError(t, Save(path, Default("Test Biz")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "name: Test Biz")
	assert.Contains(t, content, "vat_rate: \"0.16\"")
	assert.Contains(t, content, "default_account: Bancos")
	assert.NotContains(t, content, "date:")
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("LIBRO_BUSINESS_NAME", "Abarrotes Don Pepe")
	t.Setenv("LIBRO_VAT_RATE", "0.08")
	t.Setenv("LIBRO_DEFAULT_ACCOUNT", "Caja")
	t.Setenv("LIBRO_SESSION_DATE", "2025-01-15")
	t.Setenv("LIBRO_LOG_LEVEL", "DEBUG")

	cfg := Default("")
	ApplyEnv(cfg)

	assert.Equal(t, "Abarrotes Don Pepe", cfg.Business.Name)
	assert.Equal(t, "0.08", cfg.Tax.VATRate)
	assert.Equal(t, "Caja", cfg.Session.DefaultAccount)
	assert.Equal(t, "2025-01-15", cfg.Session.Date)
	assert.Equal(t, "debug", cfg.Session.LogLevel)
	require.NoError(t, Validate(cfg))
}

func TestApplyEnv_UnsetKeepsFile(t *testing.T) {
	cfg := Default("Kept")
	ApplyEnv(cfg)
	assert.Equal(t, "Kept", cfg.Business.Name)
	assert.Equal(t, "0.16", cfg.Tax.VATRate)
}

func TestLoadDotEnv(t *testing.T) {
	// Registered with t.Setenv so the variable is restored after the test;
	// unset it so the .env file can supply it.
	t.Setenv("LIBRO_VAT_RATE", "")
	require.NoError(t, os.Unsetenv("LIBRO_VAT_RATE"))
	t.Setenv("LIBRO_DEFAULT_ACCOUNT", "Caja")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("LIBRO_VAT_RATE=0.11\nLIBRO_DEFAULT_ACCOUNT=Bancos\n"), 0o644))

	require.NoError(t, LoadDotEnv(path))
	assert.Equal(t, "0.11", os.Getenv("LIBRO_VAT_RATE"))
	// Variables already set in the process win over the file.
	assert.Equal(t, "Caja", os.Getenv("LIBRO_DEFAULT_ACCOUNT"))
}

func TestLoadDotEnv_MissingFileIgnored(t *testing.T) {
	require.NoError(t, LoadDotEnv(filepath.Join(t.TempDir(), ".env")))
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"empty business name", func(c *Config) { c.Business.Name = "" }, "Name"},
		{"rate not a number", func(c *Config) { c.Tax.VATRate = "dieciséis" }, "VATRate"},
		{"rate above one", func(c *Config) { c.Tax.VATRate = "16" }, "VATRate"},
		{"negative rate", func(c *Config) { c.Tax.VATRate = "-0.16" }, "VATRate"},
		{"non-cash default account", func(c *Config) { c.Session.DefaultAccount = "Clientes" }, "DefaultAccount"},
		{"bad log level", func(c *Config) { c.Session.LogLevel = "verbose" }, "LogLevel"},
		{"bad date", func(c *Config) { c.Session.Date = "31/03/2025" }, "Date"},
		{"no opening debits", func(c *Config) { c.Opening.Debits = nil }, "Debits"},
		{"sub-cent amount", func(c *Config) { c.Opening.Debits[0].Amount = "30000.001" }, "Amount"},
		{"zero amount", func(c *Config) { c.Opening.Debits[0].Amount = "0" }, "Amount"},
		{"unbalanced opening", func(c *Config) { c.Opening.Debits[0].Amount = "30000.01" }, "opening debits"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default("")
			tt.mutate(cfg)
			err := Validate(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestValidate_TrailingZerosAllowed(t *testing.T) {
	cfg := Default("")
	cfg.Opening.Debits[0].Amount = "30000.000"
	require.NoError(t, Validate(cfg))
}

func TestRate(t *testing.T) {
	cfg := Default("")
	rate, err := cfg.Rate()
	require.NoError(t, err)
	assert.True(t, rate.Equal(decimal.RequireFromString("0.16")))

	cfg.Tax.VATRate = "x"
	_, err = cfg.Rate()
	require.Error(t, err)
}

func TestSessionDate(t *testing.T) {
	cfg := Default("")
	now := time.Date(2025, 3, 31, 17, 45, 12, 0, time.UTC)

	got, err := cfg.SessionDate(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), got)

	cfg.Session.Date = "2024-12-01"
	got, err = cfg.SessionDate(now)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC), got)

	cfg.Session.Date = "01-12-2024"
	_, err = cfg.SessionDate(now)
	require.Error(t, err)
}

func TestOpeningLines(t *testing.T) {
	chart := accounts.Default()
	debits, credits, err := Default("").OpeningLines(chart)
	require.NoError(t, err)

	wantDebits, wantCredits := ledger.DefaultOpening()
	require.Len(t, debits, len(wantDebits))
	for i := range wantDebits {
		assert.Equal(t, wantDebits[i].Account, debits[i].Account)
		assert.True(t, wantDebits[i].Amount.Equal(debits[i].Amount), "debit %d", i)
	}
	require.Len(t, credits, 1)
	assert.Equal(t, wantCredits[0].Account, credits[0].Account)
	assert.True(t, wantCredits[0].Amount.Equal(credits[0].Amount))
}

func TestOpeningLines_UnknownAccount(t *testing.T) {
	cfg := Default("")
	cfg.Opening.Credits[0].Account = "Reservas"

	_, _, err := cfg.OpeningLines(accounts.Default())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrUnknownAccount)
	assert.Contains(t, err.Error(), "opening credits")
}

func TestDefaultAccountID(t *testing.T) {
	cfg := Default("")
	id, err := cfg.DefaultAccountID(accounts.Default())
	require.NoError(t, err)
	assert.Equal(t, model.AccountBank, id)

	cfg.Session.DefaultAccount = "caja"
	id, err = cfg.DefaultAccountID(accounts.Default())
	require.NoError(t, err)
	assert.Equal(t, model.AccountCash, id)
}

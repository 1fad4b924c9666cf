package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/libro-dev/libro/internal/accounts"
	"github.com/libro-dev/libro/internal/ledger"
	"github.com/libro-dev/libro/internal/model"
)

// FileName is the config file looked up in the working directory.
const FileName = "libro.yaml"

// EnvPrefix prefixes every environment override, e.g. LIBRO_VAT_RATE.
const EnvPrefix = "LIBRO"

// DateLayout is the layout of Session.Date.
const DateLayout = "2006-01-02"

// Config represents the top-level libro.yaml configuration.
type Config struct {
	Business BusinessConfig `yaml:"business"`
	Tax      TaxConfig      `yaml:"tax"`
	Session  SessionConfig  `yaml:"session"`
	Opening  OpeningConfig  `yaml:"opening"`
}

// BusinessConfig identifies the business whose books are kept.
type BusinessConfig struct {
	Name string `yaml:"name" validate:"required"`
}

// TaxConfig holds the flat VAT rate as a decimal string, e.g. "0.16".
type TaxConfig struct {
	VATRate string `yaml:"vat_rate" validate:"required,rate"`
}

// SessionConfig controls how a bookkeeping session starts.
type SessionConfig struct {
	// DefaultAccount settles operations that name no account.
	DefaultAccount string `yaml:"default_account" validate:"required,oneof=Caja Bancos"`
	// Date fixes the session date; empty means today.
	Date     string `yaml:"date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	LogLevel string `yaml:"log_level" validate:"required,oneof=debug info warn error"`
}

// OpeningConfig lists the opening entry by account display name.
type OpeningConfig struct {
	Debits  []Balance `yaml:"debits" validate:"required,min=1,dive"`
	Credits []Balance `yaml:"credits" validate:"required,min=1,dive"`
}

// Balance is one opening line.
type Balance struct {
	Account string `yaml:"account" validate:"required"`
	Amount  string `yaml:"amount" validate:"required,amount"`
}

// AccountResolver maps display names to accounts and back.
type AccountResolver interface {
	Lookup(name string) (model.AccountID, error)
	Name(id model.AccountID) string
}

// Load reads a libro.yaml file from disk. Keys missing from the file keep
// their Default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default("")
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault loads path, falling back to Default when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(""), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with the standard opening entry and a 16% VAT rate.
func Default(businessName string) *Config {
	if businessName == "" {
		businessName = "Mi Empresa"
	}
	debits, credits := ledger.DefaultOpening()
	return &Config{
		Business: BusinessConfig{Name: businessName},
		Tax:      TaxConfig{VATRate: "0.16"},
		Session: SessionConfig{
			DefaultAccount: "Bancos",
			LogLevel:       "info",
		},
		Opening: OpeningConfig{
			Debits:  defaultBalances(debits),
			Credits: defaultBalances(credits),
		},
	}
}

func defaultBalances(lines []model.Line) []Balance {
	chart := accounts.Default()
	out := make([]Balance, len(lines))
	for i, l := range lines {
		out[i] = Balance{Account: chart.Name(l.Account), Amount: l.Amount.StringFixed(2)}
	}
	return out
}

// LoadDotEnv loads variables from the given .env files (default ".env")
// into the process environment. Missing files are ignored.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return nil
}

// ApplyEnv overrides cfg with LIBRO_* environment variables:
// LIBRO_BUSINESS_NAME, LIBRO_VAT_RATE, LIBRO_DEFAULT_ACCOUNT,
// LIBRO_SESSION_DATE and LIBRO_LOG_LEVEL.
func ApplyEnv(cfg *Config) {
	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if s := v.GetString("business_name"); s != "" {
		cfg.Business.Name = s
	}
	if s := v.GetString("vat_rate"); s != "" {
		cfg.Tax.VATRate = s
	}
	if s := v.GetString("default_account"); s != "" {
		cfg.Session.DefaultAccount = s
	}
	if s := v.GetString("session_date"); s != "" {
		cfg.Session.Date = s
	}
	if s := v.GetString("log_level"); s != "" {
		cfg.Session.LogLevel = strings.ToLower(s)
	}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("rate", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		return err == nil && !d.IsNegative() && d.LessThanOrEqual(decimal.NewFromInt(1))
	})
	_ = v.RegisterValidation("amount", func(fl validator.FieldLevel) bool {
		d, err := decimal.NewFromString(fl.Field().String())
		if err != nil || !d.IsPositive() {
			return false
		}
		cents := d.Shift(2)
		return cents.Equal(cents.Truncate(0))
	})
	return v
}

// Validate checks field rules and that the opening entry balances.
func Validate(cfg *Config) error {
	if err := newValidator().Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	debits, credits := sumBalances(cfg.Opening.Debits), sumBalances(cfg.Opening.Credits)
	if !debits.Equal(credits) {
		return fmt.Errorf("invalid config: opening debits (%s) != credits (%s)", debits.StringFixed(2), credits.StringFixed(2))
	}
	return nil
}

func sumBalances(bs []Balance) decimal.Decimal {
	total := decimal.Zero
	for _, b := range bs {
		d, err := decimal.NewFromString(b.Amount)
		if err == nil {
			total = total.Add(d)
		}
	}
	return total
}

// Rate returns the configured VAT rate.
func (c *Config) Rate() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(c.Tax.VATRate)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing vat_rate %q: %w", c.Tax.VATRate, err)
	}
	return d, nil
}

// SessionDate returns the configured date, or now truncated to the day.
func (c *Config) SessionDate(now time.Time) (time.Time, error) {
	if c.Session.Date == "" {
		y, m, d := now.Date()
		return time.Date(y, m, d, 0, 0, 0, 0, now.Location()), nil
	}
	t, err := time.Parse(DateLayout, c.Session.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("parsing session date %q: %w", c.Session.Date, err)
	}
	return t, nil
}

// DefaultAccountID resolves Session.DefaultAccount.
func (c *Config) DefaultAccountID(chart AccountResolver) (model.AccountID, error) {
	return chart.Lookup(c.Session.DefaultAccount)
}

// OpeningLines resolves the opening entry against chart.
func (c *Config) OpeningLines(chart AccountResolver) (debits, credits []model.Line, err error) {
	if debits, err = resolveBalances(chart, c.Opening.Debits); err != nil {
		return nil, nil, fmt.Errorf("opening debits: %w", err)
	}
	if credits, err = resolveBalances(chart, c.Opening.Credits); err != nil {
		return nil, nil, fmt.Errorf("opening credits: %w", err)
	}
	return debits, credits, nil
}

func resolveBalances(chart AccountResolver, bs []Balance) ([]model.Line, error) {
	lines := make([]model.Line, 0, len(bs))
	for _, b := range bs {
		id, err := chart.Lookup(b.Account)
		if err != nil {
			return nil, err
		}
		amount, err := decimal.NewFromString(b.Amount)
		if err != nil {
			return nil, fmt.Errorf("parsing amount %q for %s: %w", b.Amount, b.Account, err)
		}
		lines = append(lines, model.Line{Account: id, Amount: amount})
	}
	return lines, nil
}

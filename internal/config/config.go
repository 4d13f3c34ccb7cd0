package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"cash-audit/internal/domain"
	"cash-audit/internal/usecase"
)

// DefaultPath is where the CLI looks for a config file when none is given.
const DefaultPath = "auditkas.yaml"

// Config holds the engagement constants and runtime settings of the auditor.
type Config struct {
	// CompanyName is the audited entity shown on sessions and exports.
	CompanyName string `yaml:"company_name"`

	// PriorYearBalance is last year's audited cash balance, in whole Rupiah.
	PriorYearBalance int64 `yaml:"prior_year_balance"`

	// LogLevel is one of debug, info, warn, error, off.
	LogLevel string `yaml:"log_level"`

	PettyCash PettyCashConfig `yaml:"petty_cash"`
	AI        AIConfig        `yaml:"ai"`
	Server    ServerConfig    `yaml:"server"`

	// ICQ is the internal control questionnaire every new session starts with.
	ICQ []domain.ICQQuestion `yaml:"icq"`
}

// PettyCashConfig describes the imprest fund and the count sheet.
type PettyCashConfig struct {
	FundLimit     int64   `yaml:"fund_limit"`
	Denominations []int64 `yaml:"denominations"`
}

// AIConfig controls the Gemini narrative service.
type AIConfig struct {
	Enabled   bool   `yaml:"enabled"`
	Model     string `yaml:"model"`
	APIKeyEnv string `yaml:"api_key_env"`
	Timeout   string `yaml:"timeout"`
}

// ServerConfig controls the HTTP API.
type ServerConfig struct {
	Port int `yaml:"port"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	c := &Config{
		PriorYearBalance: 480_000_000,
		PettyCash:        PettyCashConfig{FundLimit: 5_000_000},
	}
	applyDefaults(c)
	return c
}

// Load reads the YAML config at path over the defaults. Amounts set explicitly to 0 are
// kept. A missing file is not an error. Variables from a .env file in the working directory are loaded
// into the environment first.
func Load(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Warnf("[Config] could not load .env: %v", err)
	}

	c := Default()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		log.Debugf("[Config] %s not found, using defaults", path)
	case err != nil:
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	applyDefaults(c)
	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return c, nil
}

// applyDefaults fills options left empty. Amounts are not touched since 0 is a valid value.
func applyDefaults(c *Config) {
	if c.CompanyName == "" {
		c.CompanyName = "PT Manufaktur Maju Tbk"
	}
	if c.LogLevel == "" {
		c.LogLevel = "info"
	}
	if len(c.PettyCash.Denominations) == 0 {
		c.PettyCash.Denominations = []int64{100_000, 50_000, 20_000, 10_000}
	}
	if c.AI.Model == "" {
		c.AI.Model = "gemini-2.5-flash"
	}
	if c.AI.APIKeyEnv == "" {
		c.AI.APIKeyEnv = "GEMINI_API_KEY"
	}
	if c.AI.Timeout == "" {
		c.AI.Timeout = "60s"
	}
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if len(c.ICQ) == 0 {
		c.ICQ = DefaultQuestionnaire()
	}
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.PriorYearBalance < 0 {
		return domain.NewValidationError("prior_year_balance", "must not be negative")
	}
	if c.PettyCash.FundLimit < 0 {
		return domain.NewValidationError("petty_cash.fund_limit", "must not be negative")
	}
	for _, d := range c.PettyCash.Denominations {
		if d <= 0 {
			return domain.NewValidationError("petty_cash.denominations", "%d is not a positive denomination", d)
		}
	}
	if _, err := c.AITimeout(); err != nil {
		return domain.NewValidationError("ai.timeout", "%v", err)
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return domain.NewValidationError("server.port", "%d is out of range", c.Server.Port)
	}
	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		return domain.NewValidationError("log_level", "%q is not one of debug, info, warn, error, off", c.LogLevel)
	}

	seen := make(map[string]bool, len(c.ICQ))
	for i, q := range c.ICQ {
		field := fmt.Sprintf("icq[%d]", i)
		if q.ID == "" || q.Question == "" {
			return domain.NewValidationError(field, "id and question are required")
		}
		if seen[q.ID] {
			return domain.NewValidationError(field, "duplicate id %q", q.ID)
		}
		if !q.RiskWeight.IsValid() {
			return domain.NewValidationError(field+".risk_weight", "%q is not one of High, Medium, Low", q.RiskWeight)
		}
		seen[q.ID] = true
	}
	return nil
}

// AITimeout is the per-call deadline for the narrative service. Zero disables it.
func (c *Config) AITimeout() (time.Duration, error) {
	return time.ParseDuration(c.AI.Timeout)
}

// APIKey reads the Gemini API key from the configured environment variable.
func (c *Config) APIKey() string {
	return os.Getenv(c.AI.APIKeyEnv)
}

// Settings converts the engagement constants for the audit usecase.
func (c *Config) Settings() usecase.Settings {
	timeout, _ := c.AITimeout()
	return usecase.Settings{
		PriorYearBalance: decimal.NewFromInt(c.PriorYearBalance),
		FundLimit:        decimal.NewFromInt(c.PettyCash.FundLimit),
		Denominations:    c.PettyCash.Denominations,
		AITimeout:        timeout,
	}
}

var logLevels = map[string]log.Lvl{
	"debug": log.DEBUG,
	"info":  log.INFO,
	"warn":  log.WARN,
	"error": log.ERROR,
	"off":   log.OFF,
}

// Level maps LogLevel to the logger's level.
func (c *Config) Level() log.Lvl {
	if lvl, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return log.INFO
}

// DefaultQuestionnaire is the cash cycle ICQ used when the config defines none.
func DefaultQuestionnaire() []domain.ICQQuestion {
	return []domain.ICQQuestion{
		{ID: "Q1", Question: "Is the cash receipts function separated from the accounting records function?", RiskWeight: domain.SeverityHigh},
		{ID: "Q2", Question: "Are all cash receipts deposited intact to the bank daily?", RiskWeight: domain.SeverityHigh},
		{ID: "Q3", Question: "Is the bank reconciliation prepared monthly by an independent employee?", RiskWeight: domain.SeverityMedium},
		{ID: "Q4", Question: "Do checks above a set amount require two signatures?", RiskWeight: domain.SeverityMedium},
		{ID: "Q5", Question: "Is petty cash operated on an imprest fund system?", RiskWeight: domain.SeverityLow},
	}
}

// Package config loads the seller-side configuration: the company profile
// printed on every invoice and the server settings. Values come from a
// yaml file and CRUX_-prefixed environment variables, with the standard
// Crux Management Services profile as the default.
package config

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"

	"github.com/aiclex/crux-invoice/internal/tax"
)

// BankDetails is the vendor electronic remittance block
type BankDetails struct {
	Name    string `mapstructure:"name"`
	Account string `mapstructure:"account"`
	IFSC    string `mapstructure:"ifsc"`
	Swift   string `mapstructure:"swift"`
	MICR    string `mapstructure:"micr"`
	Branch  string `mapstructure:"branch"`
}

// CompanyProfile holds the issuer details printed on every invoice.
// The issuer's jurisdiction code is derived from the GSTIN, never
// entered separately.
type CompanyProfile struct {
	Name        string      `mapstructure:"name" validate:"required"`
	DisplayName string      `mapstructure:"display_name"`
	GSTIN       string      `mapstructure:"gstin" validate:"required,len=15"`
	PAN         string      `mapstructure:"pan"`
	Phone       string      `mapstructure:"phone"`
	Email       string      `mapstructure:"email"`
	Address     string      `mapstructure:"address"`
	Tagline     string      `mapstructure:"tagline"`
	Bank        BankDetails `mapstructure:"bank"`
}

// StateCode returns the issuer jurisdiction code derived from the GSTIN
func (p CompanyProfile) StateCode() string {
	return tax.StateCode(p.GSTIN)
}

// Heading returns the name printed as the document heading
func (p CompanyProfile) Heading() string {
	if p.DisplayName != "" {
		return p.DisplayName
	}
	return p.Name
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Address      string        `mapstructure:"address" validate:"required"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	Debug        bool          `mapstructure:"debug"`
}

// Config is the full application configuration
type Config struct {
	Company CompanyProfile `mapstructure:"company" validate:"required"`
	Server  ServerConfig   `mapstructure:"server" validate:"required"`
}

// Load reads configuration from the given file, or from the default
// search paths when path is empty. A missing config file is fine: the
// defaults describe a complete working profile.
func Load(path string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("crux-invoice")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("./config")
		v.AddConfigPath("/etc/crux-invoice")
	}

	v.SetEnvPrefix("CRUX")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the built-in configuration without touching the
// file system. Useful for tests and one-shot CLI runs.
func Default() *Config {
	v := viper.New()
	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		panic(err)
	}
	return &cfg
}

// Validate checks structural constraints on the configuration
func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("company.name", "CRUX MANAGEMENT SERVICES (P) LTD")
	v.SetDefault("company.display_name", "CRUX MANAGEMENT SERVICES")
	v.SetDefault("company.gstin", "36AABCC4754D1ZX")
	v.SetDefault("company.pan", "AABCC4754D")
	v.SetDefault("company.phone", "040-66345537")
	v.SetDefault("company.email", "mailadmin@cruxmanagement.com")
	v.SetDefault("company.address", "# 403, 4th Floor, Diamond Block, Lumbini Rockdale, Somajiguda, Hyderabad - 500082, Telangana")
	v.SetDefault("company.bank.name", "HDFC BANK")
	v.SetDefault("company.bank.account", "00212320004244")
	v.SetDefault("company.bank.ifsc", "HDFC0000021")
	v.SetDefault("company.bank.swift", "HDFCINBBHYD")
	v.SetDefault("company.bank.micr", "500240002")
	v.SetDefault("company.bank.branch", "LAKDIKAPUL, HYD-004")

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.read_timeout", 30*time.Second)
	v.SetDefault("server.write_timeout", time.Minute)
	v.SetDefault("server.debug", false)
}

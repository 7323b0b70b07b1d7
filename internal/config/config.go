package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hostora/hostora/internal/types"
	"github.com/spf13/viper"
)

type Configuration struct {
	Server   ServerConfig   `validate:"required"`
	Logging  LoggingConfig  `validate:"required"`
	Postgres PostgresConfig `validate:"required"`
	Assets   AssetsConfig   `validate:"required"`
	Company  CompanyConfig  `validate:"required"`
}

type ServerConfig struct {
	Address string `validate:"required"`
}

type LoggingConfig struct {
	Level types.LogLevel `validate:"required"`
}

type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
}

// AssetsConfig points at the static resources embedded into generated documents.
// The fonts are required at generation time; the logo is optional and the
// renderer falls back to a text brand block when it is absent.
type AssetsConfig struct {
	FontRegularPath string `mapstructure:"font_regular_path" validate:"required"`
	FontBoldPath    string `mapstructure:"font_bold_path" validate:"required"`
	LogoPath        string `mapstructure:"logo_path"`
}

// CompanyConfig is the default issuing-company profile. Fields left blank in
// the settings table fall back to these values individually, never
// all-or-nothing.
type CompanyConfig struct {
	Name        string `validate:"required"`
	TaxCode     string `mapstructure:"tax_code"`
	Email       string
	Phone       string
	Address     string
	BankName    string `mapstructure:"bank_name"`
	BankAccount string `mapstructure:"bank_account"`
	BankHolder  string `mapstructure:"bank_holder"`
}

func NewConfig() (*Configuration, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./internal/config")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/hostora")

	// Set up environment variables support
	v.SetEnvPrefix("HOSTORA")
	v.SetEnvKeyReplacer(strings.NewReplacer(
		".", "_",
		"-", "_",
	))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file if exists
	if err := v.ReadInConfig(); err != nil {
		fmt.Printf("Error reading config file: %v\n", err)
		if !errors.As(err, &viper.ConfigFileNotFoundError{}) {
			return nil, err
		}
	} else {
		fmt.Printf("Using config file: %s\n", v.ConfigFileUsed())
	}

	var config Configuration
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", ":8080")
	v.SetDefault("logging.level", "info")
	v.SetDefault("postgres.host", "localhost")
	v.SetDefault("postgres.port", 5432)
	v.SetDefault("postgres.sslmode", "disable")
	v.SetDefault("assets.font_regular_path", "assets/fonts/Roboto-Regular.ttf")
	v.SetDefault("assets.font_bold_path", "assets/fonts/Roboto-Bold.ttf")
	v.SetDefault("assets.logo_path", "assets/images/logo.png")
	v.SetDefault("company.name", "Công ty TNHH Hostora")
}

func (c Configuration) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

// GetDefaultConfig returns a default configuration for local development
// This is useful for running scripts or other non-web applications
func GetDefaultConfig() *Configuration {
	return &Configuration{
		Server:  ServerConfig{Address: ":8080"},
		Logging: LoggingConfig{Level: types.LogLevelDebug},
		Assets: AssetsConfig{
			FontRegularPath: "assets/fonts/Roboto-Regular.ttf",
			FontBoldPath:    "assets/fonts/Roboto-Bold.ttf",
			LogoPath:        "assets/images/logo.png",
		},
		Company: CompanyConfig{
			Name: "Công ty TNHH Hostora",
		},
	}
}

func (c PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.DBName, c.SSLMode,
	)
}

package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type HTTPServer struct {
	Port string `mapstructure:"port"`
}

type DbServer struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Pass     string `mapstructure:"pass"`
	Name     string `mapstructure:"name"`
	MaxConns int32  `mapstructure:"max_conns"`
}

func (config *DbServer) GetConnectionStr() string {
	return fmt.Sprintf(
		"user=%s password=%s host=%s port=%s dbname=%s sslmode=disable pool_max_conns=10",
		config.User, config.Pass, config.Host, config.Port, config.Name,
	)
}

type HTTPClient struct {
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type Logging struct {
	Level string `mapstructure:"level"`
}

type RatesAPI struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
}

// Currencies is the fixed supported set: codes as a comma-separated list
// (configured order is preserved in listings), the baseline every rate is
// expressed against and the display currency for the listing endpoint.
type Currencies struct {
	Codes   string `mapstructure:"codes"`
	Base    string `mapstructure:"base"`
	Display string `mapstructure:"display"`
}

func (c *Currencies) CodesList() []string {
	parts := strings.Split(c.Codes, ",")
	codes := make([]string, 0, len(parts))
	for _, p := range parts {
		if code := strings.TrimSpace(p); code != "" {
			codes = append(codes, code)
		}
	}
	return codes
}

type AppConfig struct {
	HTTPServer HTTPServer `mapstructure:"http_server"`
	DbServer   DbServer   `mapstructure:"db_server"`
	HTTPClient HTTPClient `mapstructure:"http_client"`
	Logging    Logging    `mapstructure:"logging"`
	RatesAPI   RatesAPI   `mapstructure:"rates_api"`
	Currencies Currencies `mapstructure:"currencies"`
}

func Init() (*AppConfig, error) {
	var cfg AppConfig

	if err := godotenv.Load(); err != nil {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	viper.SetConfigFile("config.yaml")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	viper.SetDefault("db_server.max_conns", 10)
	viper.SetDefault("http_client.timeout_seconds", 10)
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("rates_api.endpoint", "http://apilayer.net/api/live")
	viper.SetDefault("currencies.codes", "USD,BRL,EUR,BTC")
	viper.SetDefault("currencies.base", "USD")
	viper.SetDefault("currencies.display", "USD")

	// db server env vars
	_ = viper.BindEnv("db_server.host", "DB_HOST")
	_ = viper.BindEnv("db_server.port", "DB_PORT")
	_ = viper.BindEnv("db_server.user", "DB_USER")
	_ = viper.BindEnv("db_server.pass", "DB_PASS")
	_ = viper.BindEnv("db_server.name", "DB_NAME")
	_ = viper.BindEnv("db_server.max_conns", "DB_MAX_CONNS")

	// http client env vars
	_ = viper.BindEnv("http_client.timeout_seconds", "HTTP_CLIENT_TIMEOUT_SECONDS")

	// rates api env vars
	_ = viper.BindEnv("rates_api.endpoint", "RATES_API_ENDPOINT")
	_ = viper.BindEnv("rates_api.access_key", "RATES_API_ACCESS_KEY")

	// currency set env vars
	_ = viper.BindEnv("currencies.codes", "CURRENCIES_CODES")
	_ = viper.BindEnv("currencies.base", "CURRENCIES_BASE")
	_ = viper.BindEnv("currencies.display", "CURRENCIES_DISPLAY")

	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	return &cfg, nil
}

package config

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/booktime/storefront/internal/log"
)

type Application struct {
	Env       string `mapstructure:"env"        json:"env"`
	Host      string `mapstructure:"host"       json:"host"`
	SecretKey string `mapstructure:"secret_key" json:"-"`
	Port      int    `mapstructure:"port"       json:"port"`
}

type Storefront struct {
	CurrencySymbol    string `mapstructure:"currency_symbol"     json:"currency_symbol"`
	DeliveryFee       int64  `mapstructure:"delivery_fee"        json:"delivery_fee"`
	NotificationTTLMs int64  `mapstructure:"notification_ttl_ms" json:"notification_ttl_ms"`
	LoginDelayMs      int64  `mapstructure:"login_delay_ms"      json:"login_delay_ms"`
}

type Otel struct {
	Host string `mapstructure:"host" json:"host"`
	Port int    `mapstructure:"port" json:"port"`
}

type Config struct {
	Application `mapstructure:"application" json:"application"`
	Storefront  `mapstructure:"storefront"  json:"storefront"`
	Otel        `mapstructure:"otel"        json:"otel"`
}

var (
	once   sync.Once
	config *Config
)

func Get(c context.Context, filename string) *Config {
	once.Do(func() {
		logger := zerolog.Ctx(c).
			With().
			Str(log.KeyTag, "config Get").
			Str(log.KeyProcess, "reading config").
			Str("filename", filename).
			Logger()

		viper.SetConfigName(filename)
		viper.AddConfigPath("./env")
		viper.SetConfigType("yaml")
		viper.AutomaticEnv()
		viper.SetDefault("storefront.currency_symbol", "₨")
		viper.SetDefault("storefront.delivery_fee", 150)
		viper.SetDefault("storefront.notification_ttl_ms", 3000)
		viper.SetDefault("storefront.login_delay_ms", 1500)

		logger.Info().Msg("reading config")
		err := viper.ReadInConfig()
		if err != nil {
			err = fmt.Errorf("error when reading config with error=%w", err)
			logger.Fatal().Err(err).Msg(err.Error())
		}
		logger.Info().Msg("read config")

		logger = logger.With().Str(log.KeyProcess, "unmarshaling config").Logger()
		logger.Info().Msg("unmarshaling config")
		cfg := Config{}
		err = viper.Unmarshal(&cfg)
		if err != nil {
			err = fmt.Errorf("error unmarshaling config with error=%w", err)
			logger.Fatal().Err(err).Msg(err.Error())
		}
		config = &cfg
		logger.Info().Msg("unmarshaled config")
	})
	return config
}

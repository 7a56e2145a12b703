package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API     APIConfig     `mapstructure:"api"`
	Gin     GinConfig     `mapstructure:"gin"`
	Backend BackendConfig `mapstructure:"backend"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Loja    LojaConfig    `mapstructure:"loja"`
}

type APIConfig struct {
	Environment        string `mapstructure:"environment"`
	Port               string `mapstructure:"port"`
	BaseURL            string `mapstructure:"base_url"`
	AllowedCORSDomains string `mapstructure:"allowed_cors_domains"`
	// HandoffSigningKey signs the selection-handoff token the browser
	// carries between the selection and checkout pages.
	HandoffSigningKey string        `mapstructure:"handoff_signing_key"`
	HandoffTTL        time.Duration `mapstructure:"handoff_ttl"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type BackendConfig struct {
	BaseURL string        `mapstructure:"base_url"`
	Timeout time.Duration `mapstructure:"timeout"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LojaConfig tunes the purchase funnel.
type LojaConfig struct {
	// CartelasPorPagina is the selection page size.
	CartelasPorPagina int `mapstructure:"cartelas_por_pagina"`
	// LimiteCartelas caps how many available cards are fetched for the
	// selection view.
	LimiteCartelas int `mapstructure:"limite_cartelas"`
	// MaxCartelasPorCompra is the per-buyer purchase cap; zero means
	// availability is the only limit.
	MaxCartelasPorCompra int           `mapstructure:"max_cartelas_por_compra"`
	PollInterval         time.Duration `mapstructure:"poll_interval"`
	ContatoEmail         string        `mapstructure:"contato_email"`
}

func Load(configFile string) (*AppConfig, error) {
	viper.SetConfigFile(configFile)

	viper.SetEnvPrefix("BINGO")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("Load -> viper.ReadInConfig -> %w", err)
	}

	conf := &AppConfig{}
	if err := viper.Unmarshal(conf); err != nil {
		return nil, fmt.Errorf("Load -> viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		if err := viper.Unmarshal(conf); err != nil {
			zap.L().Error("failed to reload config", zap.String("file", e.Name), zap.Error(err))
			return
		}
		zap.L().Info("config reloaded", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return conf, nil
}

func setDefaults() {
	viper.SetDefault("api.environment", "development")
	viper.SetDefault("api.port", "8080")
	viper.SetDefault("api.handoff_ttl", 30*time.Minute)
	viper.SetDefault("gin.mode", "debug")
	viper.SetDefault("backend.timeout", 10*time.Second)
	viper.SetDefault("redis.addr", "localhost:6379")
	viper.SetDefault("loja.cartelas_por_pagina", 100)
	viper.SetDefault("loja.limite_cartelas", 500)
	viper.SetDefault("loja.poll_interval", 5*time.Second)
}

/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package config loads the application configuration from
// $WORKDIR/appconfig/<environment>.yaml via viper.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type App struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
	LogLevel    string `mapstructure:"logLevel"`
}

type Server struct {
	Port int `mapstructure:"port"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	Database int32  `mapstructure:"database"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
}

type InMemoryConfig struct {
	DefaultExpiration int `mapstructure:"defaultExpiration"`
	CleanupInterval   int `mapstructure:"cleanupInterval"`
}

type CacheConfig struct {
	// Driver selects the persistence backend: "redis" or "memory".
	Driver   string         `mapstructure:"driver"`
	Redis    RedisConfig    `mapstructure:"redis"`
	InMemory InMemoryConfig `mapstructure:"inmemory"`
}

type SuperheroConfig struct {
	URL        string        `mapstructure:"url"`
	Timeout    time.Duration `mapstructure:"timeout"`
	RetryCount int           `mapstructure:"retryCount"`
}

// AppConfig is the root configuration object.
type AppConfig struct {
	App       App             `mapstructure:"app"`
	Server    Server          `mapstructure:"server"`
	Cache     CacheConfig     `mapstructure:"cache"`
	Superhero SuperheroConfig `mapstructure:"superhero"`
}

// LoadConfig reads appconfig/<environment>.yaml under WORKDIR (or the
// current directory when WORKDIR is unset) and unmarshals it.
func LoadConfig(environment string) (*AppConfig, error) {
	workdir := os.Getenv("WORKDIR")
	if workdir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		workdir = wd
	}

	v := viper.New()
	v.SetConfigName(environment)
	v.SetConfigType("yaml")
	v.AddConfigPath(filepath.Join(workdir, "appconfig"))

	v.SetDefault("app.logLevel", "info")
	v.SetDefault("server.port", 8080)
	v.SetDefault("cache.driver", "memory")
	v.SetDefault("superhero.url", "https://akabab.github.io/superhero-api/api/all.json")
	v.SetDefault("superhero.timeout", 10*time.Second)
	v.SetDefault("superhero.retryCount", 3)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %q: %w", environment, err)
	}

	cfg := &AppConfig{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, nil
}

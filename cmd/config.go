// Package cmd — runtime configuration.
// Precedence: documented defaults, then an optional jitadeck.yaml in the
// working directory, then JITADECK_* environment variables, then command
// flags applied by the individual commands.
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"

	"github.com/gaurav-prasanna/jitadeck/core"
)

func loadConfig() (core.Config, error) {
	defaults := core.DefaultConfig()

	v := viper.New()
	v.SetDefault("base_url", defaults.BaseURL)
	v.SetDefault("data_dir", defaults.DataDir)
	v.SetDefault("images_dir", defaults.ImagesDir)
	v.SetDefault("request_delay", defaults.RequestDelay)
	v.SetDefault("image_delay", defaults.ImageDelay)
	v.SetDefault("anki_connect_url", defaults.AnkiConnectURL)
	v.SetDefault("deck_name", defaults.DeckName)
	v.SetDefault("model_name", defaults.ModelName)

	v.SetConfigName("jitadeck")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return core.Config{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	v.SetEnvPrefix("JITADECK")
	v.AutomaticEnv()

	cfg := defaults // keeps the category URL map
	cfg.BaseURL = v.GetString("base_url")
	cfg.DataDir = v.GetString("data_dir")
	cfg.ImagesDir = v.GetString("images_dir")
	cfg.RequestDelay = v.GetDuration("request_delay")
	cfg.ImageDelay = v.GetDuration("image_delay")
	cfg.AnkiConnectURL = v.GetString("anki_connect_url")
	cfg.DeckName = v.GetString("deck_name")
	cfg.ModelName = v.GetString("model_name")
	return cfg, nil
}

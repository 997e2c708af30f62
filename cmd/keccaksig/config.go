package main

import (
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is read from the environment. Flags take precedence over it.
// LogLevel is one of debug, info, warn or error; LogFormat is console or json.
type Config struct {
	LogLevel      string `env:"LOG_LEVEL" env-default:"info"`
	LogFormat     string `env:"LOG_FORMAT" env-default:"console"`
	PrivateKeyHex string `env:"KECCAKSIG_PRIVATE_KEY"`
}

func LoadConfig() (Config, error) {
	var conf Config
	if err := cleanenv.ReadEnv(&conf); err != nil {
		return Config{}, fmt.Errorf("failed to read env: %w", err)
	}
	return conf, nil
}

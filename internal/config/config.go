package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string   `yaml:"log-level" env:"TTT_LOG_LEVEL" env-default:"error" validate:"oneof=debug info warn error"`
	Match    Match    `yaml:"match"`
	Computer Computer `yaml:"computer"`
	Display  Display  `yaml:"display"`
}

type Match struct {
	WinsToMatch int    `yaml:"wins-to-match" env:"TTT_WINS_TO_MATCH" env-default:"5" validate:"min=1"`
	FirstMover  string `yaml:"first-mover" env:"TTT_FIRST_MOVER" env-default:"choose" validate:"oneof=human computer choose alternate"`
}

type Computer struct {
	Names []string `yaml:"names" env:"TTT_COMPUTER_NAMES" env-default:"Blue Chip,Kazaam,Steel" validate:"min=1,dive,required"`
}

// Display - both switches are opt-out, cleanenv would overwrite a false value with a true default.
type Display struct {
	DisableColor bool `yaml:"disable-color" env:"TTT_DISABLE_COLOR"`
	DisableClear bool `yaml:"disable-clear" env:"TTT_DISABLE_CLEAR"`
}

// MustLoad - load all configurations in config.yml file, environment only when the file is missing.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}
	} else if err = cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read config %s: %w", path, err)
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (that *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(that); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

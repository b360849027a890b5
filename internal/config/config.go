package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	EnvPrefix = "MNINT"

	// ParametersFlag is the command line flag bound to parameters.file.
	ParametersFlag = "parameters"
)

type Config struct {
	Parameters ParametersConfig `mapstructure:"parameters"`
	Watch      WatchConfig      `mapstructure:"watch"`
}

type ParametersConfig struct {
	File string `mapstructure:"file" validate:"required"`
}

type WatchConfig struct {
	Debounce time.Duration `mapstructure:"debounce" validate:"gte=0"`
}

type ConfigLoader struct {
	viper      *viper.Viper
	validator  *validator.Validate
	translator ut.Translator
}

func NewConfigLoader(configFile string) (*ConfigLoader, error) {
	validate, trans, err := newValidator()
	if err != nil {
		return nil, fmt.Errorf("failed to create new validator: %w", err)
	}

	v := viper.New()
	v.SetConfigType("yaml")
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("mnint")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/mnint")
	}

	return &ConfigLoader{
		viper:      v,
		validator:  validate,
		translator: trans,
	}, nil
}

// BindFlags lets command line flags override the settings file. Flags that
// are not defined in flags are ignored.
func (loader *ConfigLoader) BindFlags(flags *pflag.FlagSet) error {
	if flag := flags.Lookup(ParametersFlag); flag != nil {
		if err := loader.viper.BindPFlag("parameters.file", flag); err != nil {
			return fmt.Errorf("failed to bind --%s flag: %w", ParametersFlag, err)
		}
	}
	return nil
}

func (loader *ConfigLoader) Load() (*Config, error) {
	v := loader.viper

	v.SetDefault("parameters.file", "parameters.yaml")
	v.SetDefault("watch.debounce", "500ms")

	// MNINT_PARAMETERS_FILE, MNINT_WATCH_DEBOUNCE
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	if err := loader.validator.Struct(cfg); err != nil {
		errorMsgs, err := loader.translate(err)
		if err != nil {
			return nil, fmt.Errorf("loader.validator.Struct() > %w", err)
		}
		return nil, fmt.Errorf("invalid configuration: %s", strings.Join(errorMsgs, ", "))
	}

	return &cfg, nil
}

// RequireReadableFile fails unless path names an existing regular file the
// owner can read.
func (loader *ConfigLoader) RequireReadableFile(path string) error {
	if err := loader.validator.Var(path, "file"); err != nil {
		errorMsgs, err := loader.translate(err)
		if err != nil {
			return fmt.Errorf("loader.validator.Var(%s) > %w", path, err)
		}
		return errors.New(strings.Join(errorMsgs, ", "))
	}
	return nil
}

// translate renders validation failures with the loader's translator. Any
// other error from the validator is returned as is.
func (loader *ConfigLoader) translate(err error) ([]string, error) {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil, err
	}
	errorMsgs := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		errorMsgs = append(errorMsgs, e.Translate(loader.translator))
	}
	return errorMsgs, nil
}

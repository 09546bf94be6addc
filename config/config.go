// Package config registers every setting with viper and resolves the TOML file, environment and defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/geniuskouta/nakano-yt-2000/constant"
	"github.com/geniuskouta/nakano-yt-2000/filesystem"
	"github.com/geniuskouta/nakano-yt-2000/where"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
)

// EnvKeyReplacer normalizes configuration keys into environment variable names.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// fromEnvFile holds the variables exported from the env file.
var fromEnvFile = make(map[string]bool)

// FromEnvFile reports whether the variable name got its value from the env file.
func FromEnvFile(name string) bool {
	return fromEnvFile[name]
}

// Setup initializes defaults, environment bindings and the config file lookup.
// A missing config file is not an error.
func Setup() error {
	if err := loadEnvFile(where.EnvFile()); err != nil {
		return err
	}

	viper.SetConfigName(constant.Nakano)
	viper.SetConfigType("toml")
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.Nakano)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}
		return err
	}

	return nil
}

// loadEnvFile exports the variables of a dotenv file unless the process already has them.
func loadEnvFile(path string) error {
	exists, err := afero.Exists(filesystem.API(), path)
	if err != nil || !exists {
		return err
	}

	file, err := filesystem.API().Open(path)
	if err != nil {
		return err
	}
	defer file.Close()

	vars, err := godotenv.Parse(file)
	if err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}

	for name, value := range vars {
		if _, set := os.LookupEnv(name); !set {
			if err := os.Setenv(name, value); err != nil {
				return err
			}
			fromEnvFile[name] = true
		}
	}
	return nil
}

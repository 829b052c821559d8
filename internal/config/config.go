// Package config handles input from the optional config.toml file and the environment.
package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"github.com/notedraft/notedraft/internal/logger"
)

const (
	// AppName is used for the config directory and the env prefix.
	AppName = "notedraft"

	// EnvPrefix prefixes every environment override, e.g. NOTEDRAFT_LOG_LOGLEVEL.
	EnvPrefix = "NOTEDRAFT"

	// EnvConfigJSON holds a JSON document merged over the final config.
	EnvConfigJSON = "NOTEDRAFT_CONFIG_JSON"

	// FileName is the default config file name inside Dir().
	FileName = "config.toml"
)

// Dir returns the notedraft directory inside the user config dir.
func Dir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		base = "."
	}

	return filepath.Join(base, AppName)
}

// DefaultPath returns the default config file location, or "" if no file exists there.
func DefaultPath() string {
	path := filepath.Join(Dir(), FileName)
	if _, err := os.Stat(path); err != nil {
		return ""
	}

	return path
}

// ReadConfig from the config file at path; an empty path only uses defaults and environment.
func ReadConfig(path string) (Config, error) {
	var (
		c   Config
		err error
	)

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		v.SetConfigType("toml")

		if err = v.ReadInConfig(); err != nil {
			return Config{}, errors.Wrap(err, "failed to read config file")
		}
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, errors.Wrap(err, "failed to decode config")
	}

	// override it from env
	if configAsJSON := os.Getenv(EnvConfigJSON); configAsJSON != "" {
		c, err = decodeAndMergeConfig(c, configAsJSON)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.engine", "sqlite")
	v.SetDefault("db.path", filepath.Join(Dir(), "settings.db"))
	v.SetDefault("db.extras", "")
	v.SetDefault("db.host", "")
	v.SetDefault("db.port", 0)
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", AppName)

	v.SetDefault("log.loglevel", logger.DefaultLevel)
	v.SetDefault("log.reportcaller", false)
	v.SetDefault("log.appname", AppName)
	v.SetDefault("log.servicename", AppName)
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useconsolewriter", true)
	v.SetDefault("log.file.enabled", false)
	v.SetDefault("log.file.path", filepath.Join(Dir(), "log"))
	v.SetDefault("log.file.error", "error.log")
	v.SetDefault("log.file.info", "info.log")
	v.SetDefault("log.file.trace", "trace.log")
	v.SetDefault("log.file.warn", "warn.log")
	v.SetDefault("log.file.maxsize", 10)   //nolint: mnd
	v.SetDefault("log.file.maxbackups", 3) //nolint: mnd
	v.SetDefault("log.file.maxage", 28)    //nolint: mnd

	v.SetDefault("metrics.textfilepath", "")
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, errors.Wrap(err, "failed to read "+EnvConfigJSON)
	}

	return c, nil
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	var buffer bytes.Buffer
	j := json.NewEncoder(&buffer)
	j.SetIndent("", "  ")

	if err := j.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// validate checks the struct tags of the whole config.
func validate(c *Config) error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(ErrInvalidConfig, err.Error())
	}

	return nil
}

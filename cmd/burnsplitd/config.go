package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/iov-one/burnsplit/errors"
)

const (
	confHome     = "home"
	confLogLevel = "log_level"
	confDebug    = "debug"
	confDBName   = "db_name"
)

// loadConfig returns the settings of the daemon. Values are read from the
// config.yaml file in the home directory, environment variables prefixed
// with BURNSPLIT and finally the defaults.
func loadConfig(home string) (*viper.Viper, error) {
	conf := viper.New()
	conf.SetDefault(confHome, home)
	conf.SetDefault(confLogLevel, "info")
	conf.SetDefault(confDebug, false)
	conf.SetDefault(confDBName, "burnsplit.db")

	conf.SetEnvPrefix("BURNSPLIT")
	conf.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	conf.AutomaticEnv()

	conf.SetConfigType("yaml")
	conf.SetConfigFile(filepath.Join(conf.GetString(confHome), "config.yaml"))
	if err := conf.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, errors.Wrapf(errors.ErrInput, "cannot read config: %s", err)
			}
		}
	}
	return conf, nil
}

// dbPath returns the location of the database.
func dbPath(conf *viper.Viper) string {
	return filepath.Join(conf.GetString(confHome), conf.GetString(confDBName))
}

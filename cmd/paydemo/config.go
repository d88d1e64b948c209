package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	envPrefix = "PAYDEMO"

	keyBatch    = "batch"
	keyWorkers  = "workers"
	keyLogLevel = "log_level"
	keyFailRate = "fail_rate"
	keySeed     = "seed"
	keyRetries  = "retries"

	defaultBatch    = "batch.yaml"
	defaultWorkers  = 4
	defaultLogLevel = "info"
	defaultFailRate = 0.3
	defaultSeed     = 42
	defaultRetries  = 4
)

var v *viper.Viper

func initConfiguration(cmd *cobra.Command, configFile string) error {
	v = viper.New()

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	if len(configFile) > 0 {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config file %q: %w", configFile, err)
		}
	}

	bindFlags(cmd, v)

	return nil
}

// Bind each cobra flag to its associated viper configuration (config file
// and environment variable).
func bindFlags(cmd *cobra.Command, v *viper.Viper) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		flagName := f.Name
		if strings.Contains(f.Name, "-") {
			// Environment variables cannot carry dashes, so bind the
			// underscore form instead.
			envVarSuffix := strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
			v.BindEnv(f.Name, fmt.Sprintf("%s_%s", envPrefix, envVarSuffix))
			flagName = strings.ReplaceAll(f.Name, "-", "_")
		}

		// Apply the viper value to an unset flag, and the other way
		// around for a set flag viper has not seen.
		if !f.Changed && v.IsSet(flagName) {
			val := v.Get(flagName)
			cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val))
		} else if f.Changed && !v.IsSet(flagName) {
			v.Set(flagName, f.Value.String())
		}
	})
}

func batchPath() string {
	if !v.IsSet(keyBatch) {
		return defaultBatch
	}
	return v.GetString(keyBatch)
}

func workerCount() int {
	if !v.IsSet(keyWorkers) {
		return defaultWorkers
	}
	return v.GetInt(keyWorkers)
}

func logLevelName() string {
	if !v.IsSet(keyLogLevel) {
		return defaultLogLevel
	}
	return v.GetString(keyLogLevel)
}

func gatewayFailRate() float64 {
	if !v.IsSet(keyFailRate) {
		return defaultFailRate
	}
	return v.GetFloat64(keyFailRate)
}

func gatewaySeed() int64 {
	if !v.IsSet(keySeed) {
		return defaultSeed
	}
	return v.GetInt64(keySeed)
}

func retryCount() int {
	if !v.IsSet(keyRetries) {
		return defaultRetries
	}
	return v.GetInt(keyRetries)
}

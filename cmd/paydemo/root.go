package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configFile string
	batchFile  string
	workers    int
	logLevel   string
	failRate   float64
	seed       int64
	retries    int
)

var rootCmd = &cobra.Command{
	Use:   "paydemo",
	Short: "Validate and authorize a YAML payment batch through a worker pipeline",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initConfiguration(cmd, configFile)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		logger := setupLogger(logLevelName())
		defer logger.Sync()

		undo := zap.ReplaceGlobals(logger)
		defer undo()

		return run(cmd.Context())
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "", "configuration file")
	rootCmd.Flags().StringVar(&batchFile, "batch", "batch.yaml", "payment batch file")
	rootCmd.Flags().IntVar(&workers, "workers", defaultWorkers, "pipeline worker count")
	rootCmd.Flags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level")
	rootCmd.Flags().Float64Var(&failRate, "fail-rate", defaultFailRate, "transient gateway failure rate")
	rootCmd.Flags().Int64Var(&seed, "seed", defaultSeed, "gateway randomness seed")
	rootCmd.Flags().IntVar(&retries, "retries", defaultRetries, "authorization retries per payment")
}

func setupLogger(level string) *zap.Logger {
	loggerCfg := &zap.Config{
		Level:    zap.NewAtomicLevelAt(zapcore.InfoLevel),
		Encoding: "json",
		EncoderConfig: zapcore.EncoderConfig{
			TimeKey:        "time",
			LevelKey:       "severity",
			NameKey:        "logger",
			CallerKey:      "caller",
			MessageKey:     "message",
			StacktraceKey:  "stacktrace",
			LineEnding:     zapcore.DefaultLineEnding,
			EncodeTime:     zapcore.RFC3339TimeEncoder,
			EncodeDuration: zapcore.MillisDurationEncoder,
			EncodeCaller:   zapcore.ShortCallerEncoder,
		},
		OutputPaths:      []string{"stdout"},
		ErrorOutputPaths: []string{"stderr"},
	}

	atomicLogLevel, err := zap.ParseAtomicLevel(level)
	if err == nil {
		loggerCfg.Level = atomicLogLevel
	}

	plain, err := loggerCfg.Build(zap.AddStacktrace(zap.DPanicLevel))
	if err != nil {
		panic(err)
	}

	return plain
}

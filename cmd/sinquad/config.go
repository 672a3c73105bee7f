package main

import (
	"fmt"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	flagVerbose = "verbose"
	flagStats   = "stats"
	flagDigest  = "digest"
)

// config holds the run options. They are only taken from the command line.
type config struct {
	Verbose bool
	Stats   bool
	Digest  bool
}

func addFlags(flags *pflag.FlagSet) {
	flags.BoolP(flagVerbose, "v", false, "log the run steps to stderr")
	flags.Bool(flagStats, false, "print error statistics of each method after the table")
	flags.Bool(flagDigest, false, "print the BLAKE3 digest of the table after the table")
}

func loadConfig(flags *pflag.FlagSet) (cfg config, err error) {
	v := viper.New()
	if err = v.BindPFlags(flags); err != nil {
		return cfg, fmt.Errorf("cannot bind flags: %w", err)
	}
	cfg.Verbose = v.GetBool(flagVerbose)
	cfg.Stats = v.GetBool(flagStats)
	cfg.Digest = v.GetBool(flagDigest)
	return cfg, nil
}

// newLogger returns a debug console logger writing to stderr if verbose is set,
// and a no-op logger otherwise.
func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	config := zap.NewDevelopmentConfig()
	config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	config.OutputPaths = []string{"stderr"}
	config.ErrorOutputPaths = []string{"stderr"}
	return config.Build()
}

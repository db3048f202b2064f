package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	configPath string
	debug      bool

	cfg *Config
	log *zap.SugaredLogger
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to the TOML config (defaults are used when empty)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Debug logging")
}

var rootCmd = &cobra.Command{
	Use:   "txtool",
	Short: "Build, balance, sign and inspect transactions",
	Long: `txtool builds transactions spending UTXO and account inputs.
Drafts are described in TOML files, the result is printed as hex.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if log, err = newLogger(debug); err != nil {
			return err
		}
		cfg, err = LoadConfig(configPath)
		if err != nil {
			return err
		}
		log.Debugf("config: %+v", *cfg)
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Sync()
	},
}

func newLogger(debug bool) (*zap.SugaredLogger, error) {
	zcfg := zap.NewProductionConfig()
	if debug {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zcfg.OutputPaths = []string{"stderr"}
	l, err := zcfg.Build()
	if err != nil {
		return nil, err
	}
	return l.Sugar().Named("txtool"), nil
}

package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/cheapflight/network"
)

var (
	// These variables are set using -ldflags
	version string
	commit  string
	date    string
)

// app carries the state shared by all subcommands of one root command.
type app struct {
	vi  *viper.Viper
	log *zap.SugaredLogger
}

func newRootCmd() *cobra.Command {
	a := &app{vi: newViper(), log: zap.NewNop().Sugar()}

	cobra.EnableCommandSorting = false
	rootCmd := &cobra.Command{
		Use:           "cheapflight",
		Short:         "Cheapest flight routes with a bounded number of stops",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd.ErrOrStderr())
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "optional config file (yaml, json or toml)")
	pf.String("network", "", "path to a YAML flight network; the built-in demo network if empty")
	pf.Bool("log-json", false, "log as JSON instead of console text")
	pf.BoolP("verbose", "v", false, "enable debug logging")

	a.bind("config", pf.Lookup("config"))
	a.bind("network", pf.Lookup("network"))
	a.bind("log_json", pf.Lookup("log-json"))
	a.bind("verbose", pf.Lookup("verbose"))

	rootCmd.AddCommand(a.routeCmd())
	rootCmd.AddCommand(a.demoCmd())
	rootCmd.AddCommand(a.generateCmd())
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// newViper sets up env overrides and defaults. Flags bound later take precedence.
func newViper() *viper.Viper {
	vi := viper.New()

	vi.SetEnvPrefix("CHEAPFLIGHT")
	vi.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	vi.AutomaticEnv()

	vi.SetDefault("network", "")
	vi.SetDefault("max_stops", 1)
	vi.SetDefault("pop_limit", 0)
	vi.SetDefault("log_json", false)
	vi.SetDefault("verbose", false)

	return vi
}

func (a *app) bind(key string, f *pflag.Flag) {
	a.vi.BindPFlag(key, f) //nolint: errcheck
}

// setup reads the optional config file and builds the logger.
func (a *app) setup(logOut io.Writer) error {
	if cf := a.vi.GetString("config"); cf != "" {
		a.vi.SetConfigFile(cf)
		if err := a.vi.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config %s: %w", cf, err)
		}
	}

	a.log = newLogger(logOut, a.vi.GetBool("log_json"), a.vi.GetBool("verbose")).Sugar()
	return nil
}

// loadNetwork returns the configured network, or the demo network when none is set.
func (a *app) loadNetwork() (*network.Network, error) {
	path := a.vi.GetString("network")
	if path == "" {
		a.log.Debug("no network file given, using the demo network")
		return network.Demo(), nil
	}

	n, err := network.LoadFile(path)
	if err != nil {
		return nil, err
	}
	a.log.Debugw("network loaded", "path", path, "cities", n.Len(), "flights", len(n.Flights()))

	return n, nil
}

func newLogger(w io.Writer, json, debug bool) *zap.Logger {
	econf := zapcore.EncoderConfig{
		MessageKey:     "msg",
		LevelKey:       "level",
		NameKey:        "logger",
		TimeKey:        "ts",
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.ISO8601TimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
	}

	level := zap.InfoLevel
	if debug {
		level = zap.DebugLevel
	}

	var core zapcore.Core
	if json {
		core = zapcore.NewCore(zapcore.NewJSONEncoder(econf), zapcore.AddSync(w), level)
	} else {
		econf.EncodeLevel = zapcore.CapitalLevelEncoder
		core = zapcore.NewCore(zapcore.NewConsoleEncoder(econf), zapcore.AddSync(w), level)
	}
	return zap.New(core)
}

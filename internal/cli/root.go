// Package cli wires the lvmaze commands: configuration through viper,
// logging through logrus and the command tree through cobra.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/katalvlaran/lvmaze/config"
	"github.com/katalvlaran/lvmaze/session"
)

// app is the state shared by every command of one invocation.
type app struct {
	v       *viper.Viper
	cfgFile string
	cfg     config.Config
	log     *logrus.Logger
}

// Execute runs the lvmaze command tree and exits non-zero on failure.
func Execute(ctx context.Context, version string) {
	root := NewRootCommand(ctx)
	root.Version = version
	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// NewRootCommand builds the command tree with a private viper instance, so
// several trees can coexist in one process.
func NewRootCommand(ctx context.Context) *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:          "lvmaze",
		Short:        "Generate grid mazes and race depth-first and breadth-first searches through them",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (default .lvmaze.yaml in the working or home directory)")
	pf.Int("width", 0, "maze width in cells")
	pf.Int("height", 0, "maze height in cells")
	pf.Int64("seed", 0, "random seed, 0 picks one from the clock")
	pf.Int("max-weight", 0, "exclusive upper bound of edge weights")
	pf.Int("max-ticks", 0, "stop after this many ticks, 0 means no limit")
	pf.String("log-level", "", "log level (trace, debug, info, warn, error)")
	pf.String("log-format", "", "log format (text or json)")
	pf.Bool("trace-steps", false, "log every search discovery at trace level")
	pf.String("format", "", "report format (json, yaml or toml)")

	bindFlags(a.v, pf)

	root.AddCommand(
		newSolveCommand(ctx, a),
		newPlayCommand(ctx, a),
		newValidateCommand(a),
	)
	return root
}

// flagKeys maps persistent flag names to configuration keys.
var flagKeys = map[string]string{
	"width":       config.KeyWidth,
	"height":      config.KeyHeight,
	"seed":        config.KeySeed,
	"max-weight":  config.KeyMaxWeight,
	"max-ticks":   config.KeyMaxTicks,
	"log-level":   config.KeyLogLevel,
	"log-format":  config.KeyLogFormat,
	"trace-steps": config.KeyTraceSteps,
	"format":      config.KeyReportFmt,
}

// bindFlags lets explicitly set flags override file and environment values.
func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	fs.VisitAll(func(f *pflag.Flag) {
		if key, ok := flagKeys[f.Name]; ok {
			// BindPFlag only fails on a nil flag.
			_ = v.BindPFlag(key, f)
		}
	})
}

// init resolves configuration and the logger before any subcommand runs.
// A missing default config file is fine; a missing --config file is not.
func (a *app) init(cmd *cobra.Command) error {
	if a.cfgFile != "" {
		a.v.SetConfigFile(a.cfgFile)
	} else {
		a.v.SetConfigName(".lvmaze")
		a.v.SetConfigType("yaml")
		a.v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			a.v.AddConfigPath(home)
		}
	}
	config.BindEnv(a.v)

	if err := a.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if a.cfgFile != "" || !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}

	cfg, err := config.Load(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg

	a.log, err = newLogger(cfg.Log, cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.log.WithField("file", used).Debug("config loaded")
	}
	return nil
}

// newSession builds a session from the resolved configuration.
func (a *app) newSession() (*session.Session, error) {
	seed := a.cfg.ResolveSeed()
	opts := []session.Option{
		session.WithLogger(a.log),
		session.WithMaxWeight(a.cfg.MaxWeight),
	}
	if a.cfg.Log.TraceSteps {
		opts = append(opts, session.WithTraceSteps())
	}
	return session.New(a.cfg.Width, a.cfg.Height, seed, opts...)
}

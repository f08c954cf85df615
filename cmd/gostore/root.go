package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/j7mbo/gostore/Logger"
	"github.com/j7mbo/gostore/src/Config"
	"github.com/j7mbo/gostore/src/Manifest"
	"github.com/j7mbo/gostore/src/Store"
)

var errNoManifest = errors.New("no manifest given: use --manifest, GOSTORE_MANIFEST or the config file")

/* State shared by all subcommands of one invocation. */
type app struct {
	v          *viper.Viper
	configPath string
	cfg        *Config.Config
	logger     *Logger.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: Config.NewViper()}

	rootCmd := &cobra.Command{
		Use:           "gostore",
		Short:         "Inspect the symbol store built from a declaration manifest",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := Config.Load(a.v, a.configPath)
			if err != nil {
				return err
			}

			a.cfg = cfg
			a.logger = Logger.NewStdLogger(cfg.Level())

			return nil
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "Config file (yaml)")
	flags.String("manifest", "", "Declaration manifest to load")
	flags.String("log-level", "", "Log level (debug, info, warn, error)")
	flags.String("format", "", "Output format (text, json)")

	_ = a.v.BindPFlag("manifest", flags.Lookup("manifest"))
	_ = a.v.BindPFlag("log_level", flags.Lookup("log-level"))
	_ = a.v.BindPFlag("format", flags.Lookup("format"))

	rootCmd.AddCommand(newListCmd(a), newLookupCmd(a), newCheckCmd(a))

	return rootCmd
}

/* Builds a fresh store from the configured manifest. */
func (a *app) populate() (*Store.Store, error) {
	if a.cfg.Manifest == "" {
		return nil, errNoManifest
	}

	manifest, err := Manifest.Load(a.cfg.Manifest)
	if err != nil {
		return nil, err
	}

	store := Store.New(a.logger)

	if err := manifest.Populate(store); err != nil {
		return nil, fmt.Errorf("populating store from %s: %w", a.cfg.Manifest, err)
	}

	return store, nil
}

/*
 * root.go, part of gouff.
 *
 * Copyright 2024 Raul Mera <rmeraa{at}academicos(dot)uta(dot)cl>
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rmera/gouff/internal/logging"
)

const (
	configName = "uffgen"
	configType = "yaml"
	envPrefix  = "UFFGEN"

	keyLogLevel     = "log.level"
	keyLogFormat    = "log.format"
	keyKeepExisting = "assign.keep_existing"
	keyInline       = "assign.inline"
	keyOutput       = "output.format"
)

//app holds the state shared by the commands of one invocation.
type app struct {
	cfgFile string
	v       *viper.Viper
	log     logging.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), log: logging.NewNopLogger()}
	root := &cobra.Command{
		Use:   "uffgen",
		Short: "UFF atom typing and bonded parameters",
		Long: `uffgen assigns Universal Force Field atom types to the atoms of a molecule
and computes the parameters for its bonds, angles and torsions.

Configuration is read from uffgen.yaml (in the working directory or
$HOME/.config/uffgen), from UFFGEN_* environment variables, and from flags.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.init,
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (default: ./uffgen.yaml or $HOME/.config/uffgen/uffgen.yaml)")
	root.PersistentFlags().String("log-level", "warn", "log level: debug, info, warn or error")
	root.PersistentFlags().String("log-format", "console", "log format: console or json")
	_ = a.v.BindPFlag(keyLogLevel, root.PersistentFlags().Lookup("log-level"))
	_ = a.v.BindPFlag(keyLogFormat, root.PersistentFlags().Lookup("log-format"))

	root.AddCommand(a.assignCmd(), a.typesCmd(), versionCmd())
	return root
}

//init loads the configuration and builds the logger.
func (a *app) init(cmd *cobra.Command, args []string) error {
	if err := a.loadConfig(); err != nil {
		return err
	}
	l, err := logging.NewLogger(logging.LogConfig{
		Level:  a.v.GetString(keyLogLevel),
		Format: a.v.GetString(keyLogFormat),
	})
	if err != nil {
		return err
	}
	a.log = l.Named("uffgen")
	logging.SetDefault(a.log)
	if f := a.v.ConfigFileUsed(); f != "" {
		a.log.Debug("config loaded", logging.String("file", f))
	}
	return nil
}

func (a *app) loadConfig() error {
	v := a.v
	v.SetDefault(keyLogLevel, "warn")
	v.SetDefault(keyLogFormat, "console")
	v.SetDefault(keyKeepExisting, false)
	v.SetDefault(keyInline, false)
	v.SetDefault(keyOutput, "table")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	if a.cfgFile != "" {
		v.SetConfigFile(a.cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", a.cfgFile, err)
		}
		return nil
	}
	v.SetConfigName(configName)
	v.SetConfigType(configType)
	v.AddConfigPath(".")
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(filepath.Join(home, ".config", "uffgen"))
	}
	if err := v.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if errors.As(err, &nf) {
			//no config file is fine
			return nil
		}
		return fmt.Errorf("read config: %w", err)
	}
	return nil
}

//version is set at build time with -ldflags "-X main.version=..."
var version = "0.1.0"

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "uffgen %s\n", version)
		},
	}
}

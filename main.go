/*  D3paint - Terminal pixel painting tool
    Copyright (C) 2019  David Vogel

    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU General Public License as published by
    the Free Software Foundation, either version 3 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU General Public License
	along with this program.  If not, see <https://www.gnu.org/licenses/>.  */

package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Shared state of all commands, filled before any command runs.
type app struct {
	Viper      *viper.Viper
	ConfigFile string

	Settings settings
	Log      *logOutput
}

func (a *app) startup(cmd *cobra.Command, args []string) error {
	set, err := loadSettings(a.Viper, a.ConfigFile)
	if err != nil {
		return err
	}
	a.Settings = set

	lo, err := setupLogging(set.Log.Directory, set.Log.Level)
	if err != nil {
		return err
	}
	a.Log = lo

	log.Debugf("D3paint %v started with %+v", appVersion, set)
	return nil
}

func (a *app) shutdown(cmd *cobra.Command, args []string) error {
	if a.Log == nil {
		return nil
	}
	return a.Log.Close()
}

func buildRootCommand() *cobra.Command {
	a := &app{Viper: viper.New()}
	var load bool

	cmd := &cobra.Command{
		Use:                "d3paint",
		Short:              "Paint pixel art in the terminal",
		SilenceUsage:       true,
		PersistentPreRunE:  a.startup,
		PersistentPostRunE: a.shutdown,
		Args:               cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runInteractive(load)
		},
	}

	cmd.PersistentFlags().StringVar(&a.ConfigFile, "config", "", "Config file (default ./"+defaultConfigFile+")")
	cmd.Flags().String("text", "", "Text file used by the file menu (default painting.txt)")
	cmd.Flags().String("image", "", "Image file used by the file menu (default painting.png)")
	cmd.Flags().Bool("record", false, "Record the session into the recordings directory")
	cmd.Flags().BoolVar(&load, "load", false, "Load the text file at startup")

	a.Viper.BindPFlag("files.text", cmd.Flags().Lookup("text"))
	a.Viper.BindPFlag("files.image", cmd.Flags().Lookup("image"))
	a.Viper.BindPFlag("recorder.enabled", cmd.Flags().Lookup("record"))

	cmd.AddCommand(buildConvertCommand(a))
	cmd.AddCommand(buildReplayCommand(a))
	cmd.AddCommand(buildVersionCommand())

	return cmd
}

// Runs an interactive session on the terminal until the user quits.
// The terminal is restored in any case, even if the session panics.
func (a *app) runInteractive(load bool) (err error) {
	surface, err := openTerminalSurface()
	if err != nil {
		return err
	}
	a.Log.toFileOnly()

	defer func() {
		r := recover()
		surface.close()
		a.Log.toConsole()
		if r != nil {
			err = fmt.Errorf("Session crashed: %v", r)
			log.Errorf("%v\n%s", err, debug.Stack())
		}
	}()

	s, err := newSession(surface, a.Settings)
	if err != nil {
		return err
	}
	log.Infof("Session started on a %vx%v canvas", s.Canvas.width(), s.Canvas.height())

	if a.Settings.Recorder.Enabled {
		recorder, err := s.Store.newSessionRecorder(a.Settings.Recorder.Directory, s.Canvas)
		if err != nil {
			return err
		}
		defer func() {
			if err := recorder.Close(); err != nil {
				log.Errorf("Can't finish recording: %v", err)
			}
		}()
		log.Infof("Recording session into %v", recorder.path())
	}

	if load {
		s.loadText()
	}

	if err := s.run(surface.Screen); err != nil {
		return err
	}

	log.Infof("Session ended with %v placed pixels", s.Store.len())
	return nil
}

func main() {
	if err := buildRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}

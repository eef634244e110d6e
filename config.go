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
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/spf13/viper"
)

const defaultConfigFile = "config.json"

type settings struct {
	Files struct {
		Text  string `mapstructure:"text"`
		Image string `mapstructure:"image"`
	} `mapstructure:"files"`

	Image struct {
		Scale int `mapstructure:"scale"` // Image pixels per cell in each direction
	} `mapstructure:"image"`

	Cursor struct {
		Advance bool `mapstructure:"advance"` // Move the cursor after placing or erasing
	} `mapstructure:"cursor"`

	Recorder struct {
		Enabled   bool   `mapstructure:"enabled"`
		Directory string `mapstructure:"directory"`
	} `mapstructure:"recorder"`

	Log struct {
		Level     string `mapstructure:"level"`
		Directory string `mapstructure:"directory"`
	} `mapstructure:"log"`
}

func setConfigDefaults(v *viper.Viper) {
	v.SetDefault("files.text", "painting.txt")
	v.SetDefault("files.image", "painting.png")
	v.SetDefault("image.scale", 1)
	v.SetDefault("cursor.advance", true)
	v.SetDefault("recorder.enabled", false)
	v.SetDefault("recorder.directory", "recordings")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.directory", "log")
}

// Reads the config file into v, and returns the resulting settings.
// A missing config file is not an error, the defaults and bound flags are used then.
func loadSettings(v *viper.Viper, configFile string) (settings, error) {
	setConfigDefaults(v)

	if configFile == "" {
		configFile = filepath.Join(".", defaultConfigFile)
	}
	v.SetConfigFile(configFile)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
			return settings{}, fmt.Errorf("Can't load config file %v: %w", configFile, err)
		}
		log.Debugf("No config file at %v, using defaults", configFile)
	}

	var set settings
	if err := v.Unmarshal(&set); err != nil {
		return settings{}, fmt.Errorf("Can't decode config: %w", err)
	}

	if set.Image.Scale < 1 {
		return settings{}, fmt.Errorf("image.scale must be at least 1, got %v", set.Image.Scale)
	}
	if set.Files.Text == "" || set.Files.Image == "" {
		return settings{}, fmt.Errorf("files.text and files.image must not be empty")
	}

	return set, nil
}

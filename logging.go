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
	"io"
	"os"
	"path/filepath"
	"runtime"
	"time"

	colorable "github.com/mattn/go-colorable"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

// Log output, the console part can be switched off while the terminal shows the canvas.
type logOutput struct {
	Console io.Writer
	File    *os.File
}

func (lo *logOutput) toFileOnly() {
	log.SetOutput(lo.File)
}

func (lo *logOutput) toConsole() {
	log.SetOutput(io.MultiWriter(lo.Console, lo.File))
}

func (lo *logOutput) Close() error {
	log.SetOutput(lo.Console)
	return lo.File.Close()
}

// Creates a new timestamped log file in directory, and sends the log to it and to stderr.
func setupLogging(directory, level string) (*logOutput, error) {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("Can't parse log level %q: %w", level, err)
	}

	log.SetReportCaller(true)
	log.SetFormatter(&logrus.TextFormatter{
		CallerPrettyfier: func(f *runtime.Frame) (string, string) {
			return fmt.Sprintf("%s()", f.Function), ""
		},
	})
	log.SetLevel(lvl)

	if err := os.MkdirAll(directory, os.ModePerm); err != nil {
		return nil, fmt.Errorf("Can't create log directory %v: %w", directory, err)
	}
	filePath := filepath.Join(directory, time.Now().UTC().Format("2006-01-02T150405")+".log")
	f, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		return nil, fmt.Errorf("Can't open log file %v: %w", filePath, err)
	}

	lo := &logOutput{
		Console: colorable.NewColorableStderr(),
		File:    f,
	}
	lo.toConsole()

	return lo, nil
}

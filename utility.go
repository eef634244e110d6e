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
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Integer division that rounds to the next integer towards negative infinity
func divideFloor(a, b int) int {
	temp := a / b

	if ((a ^ b) < 0) && (a%b != 0) {
		return temp - 1
	}

	return temp
}

// Integer division that rounds to the next integer towards positive infinity
func divideCeil(a, b int) int {
	temp := a / b

	if ((a ^ b) >= 0) && (a%b != 0) {
		return temp + 1
	}

	return temp
}

// Converts any color into an opaque RGBA color.
// Alpha premultiplication is undone, fully transparent colors become black.
func toRGBA(col color.Color) color.RGBA {
	if c, ok := col.(color.RGBA); ok && c.A == 255 {
		return c
	}

	r, g, b, a := col.RGBA()
	if a == 0 {
		return color.RGBA{0, 0, 0, 255}
	}

	return color.RGBA{
		R: uint8((r * 0xFFFF / a) >> 8),
		G: uint8((g * 0xFFFF / a) >> 8),
		B: uint8((b * 0xFFFF / a) >> 8),
		A: 255,
	}
}

// Returns the path of the single backup generation: "painting.txt" becomes "painting2.txt"
func backupPath(path string) string {
	ext := filepath.Ext(path)
	return strings.TrimSuffix(path, ext) + "2" + ext
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// Writes a file all-or-nothing.
// The content is written into a temporary file next to the target first.
// Only if that succeeded, an existing target is moved to its backup path, and the temporary file takes its place.
// The returned bool is true if a backup was made.
func writeFileAtomic(path string, write func(w io.Writer) error) (backedUp bool, err error) {
	dir := filepath.Dir(path)

	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return false, fmt.Errorf("Can't create temporary file in %v: %w", dir, err)
	}
	tempPath := f.Name()
	defer os.Remove(tempPath) // Fails silently once the file got renamed
	f.Chmod(0644)

	if err := write(f); err != nil {
		f.Close()
		return false, fmt.Errorf("Can't write %v: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return false, fmt.Errorf("Can't flush %v: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return false, fmt.Errorf("Can't close %v: %w", path, err)
	}

	if fileExists(path) {
		if err := os.Rename(path, backupPath(path)); err != nil {
			return false, fmt.Errorf("Can't rename %v to %v: %w", path, backupPath(path), err)
		}
		backedUp = true
	}

	if err := os.Rename(tempPath, path); err != nil {
		return backedUp, fmt.Errorf("Can't rename %v to %v: %w", tempPath, path, err)
	}

	return backedUp, nil
}

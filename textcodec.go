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
	"bufio"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"strconv"
)

var (
	errNoPainting        = errors.New("No painting found")
	errMalformedPainting = errors.New("Malformed painting")
)

// Writes one "x y code" line per pixel.
// The pixels should be in coordinate order, so that equal paintings result in equal files.
func encodeText(w io.Writer, pixels []placedPixel) error {
	bw := bufio.NewWriter(w)

	for _, pixel := range pixels {
		if _, err := fmt.Fprintf(bw, "%d %d %d\n", pixel.Pos.X, pixel.Pos.Y, codeForColor(pixel.Color)); err != nil {
			return err
		}
	}

	return bw.Flush()
}

// Parses whitespace separated "x y code" triples.
//
// The whole input is parsed before anything is returned, any malformed value fails the whole painting.
// Input without any value results in errNoPainting.
func decodeText(r io.Reader) ([]placedPixel, error) {
	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)

	var values []int
	for scanner.Scan() {
		token := scanner.Text()
		value, err := strconv.Atoi(token)
		if err != nil || value < 0 {
			return nil, fmt.Errorf("%w: value %v (%q) is not a non-negative integer", errMalformedPainting, len(values)+1, token)
		}
		values = append(values, value)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Can't read painting: %w", err)
	}

	if len(values) == 0 {
		return nil, errNoPainting
	}
	if len(values)%3 != 0 {
		return nil, fmt.Errorf("%w: %v values can't be grouped into x, y, color triples", errMalformedPainting, len(values))
	}

	pixels := make([]placedPixel, 0, len(values)/3)
	for i := 0; i < len(values); i += 3 {
		pixels = append(pixels, placedPixel{
			Pos:   image.Point{values[i], values[i+1]},
			Color: colorForCode(paletteCode(values[i+2])),
		})
	}

	return pixels, nil
}

// Saves the store as text file, an existing file is kept as backup.
func saveTextFile(path string, store *placedStore) (backedUp bool, err error) {
	return writeFileAtomic(path, func(w io.Writer) error {
		return encodeText(w, store.entries())
	})
}

func loadTextFile(path string) ([]placedPixel, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Can't open %v: %w", path, err)
	}
	defer f.Close()

	pixels, err := decodeText(f)
	if err != nil {
		return nil, fmt.Errorf("Can't load %v: %w", path, err)
	}

	return pixels, nil
}

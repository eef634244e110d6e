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
	"image/color"
)

type paletteCode int

type paletteEntry struct {
	Code   paletteCode
	Legacy paletteCode // Code written by older save files
	Name   string
	Color  color.RGBA
}

// Selectable colors, ordered as their keys appear on the keyboard.
var blockPalette = []paletteEntry{
	{Code: 1, Legacy: 10, Name: "Black", Color: color.RGBA{0, 0, 0, 255}},
	{Code: 2, Legacy: 11, Name: "Blue", Color: color.RGBA{0, 0, 170, 255}},
	{Code: 3, Legacy: 12, Name: "Green", Color: color.RGBA{85, 255, 85, 255}},
	{Code: 4, Legacy: 13, Name: "Cyan", Color: color.RGBA{85, 255, 255, 255}},
	{Code: 5, Legacy: 14, Name: "Red", Color: color.RGBA{255, 85, 85, 255}},
	{Code: 6, Legacy: 15, Name: "Magenta", Color: color.RGBA{255, 85, 255, 255}},
	{Code: 7, Legacy: 16, Name: "Brown", Color: color.RGBA{170, 85, 0, 255}},
	{Code: 8, Legacy: 17, Name: "Grey", Color: color.RGBA{170, 170, 170, 255}},
	{Code: 9, Legacy: 18, Name: "Yellow", Color: color.RGBA{255, 255, 85, 255}},
	{Code: 0, Legacy: 19, Name: "White", Color: color.RGBA{255, 255, 255, 255}},
}

var (
	backgroundCode  paletteCode = 0
	backgroundColor             = color.RGBA{255, 255, 255, 255}
	cursorColor                 = color.RGBA{0, 0, 0, 255}
	defaultCode     paletteCode = 3
)

// Returns the color for the given palette code.
// Unknown codes resolve to the background color.
func colorForCode(code paletteCode) color.RGBA {
	for _, entry := range blockPalette {
		if entry.Code == code || entry.Legacy == code {
			return entry.Color
		}
	}

	return backgroundColor
}

// Returns the palette code of the given color.
// Colors that are not part of the palette resolve to the background code, so this is lossy.
func codeForColor(col color.Color) paletteCode {
	c := toRGBA(col)
	for _, entry := range blockPalette {
		if entry.Color.R == c.R && entry.Color.G == c.G && entry.Color.B == c.B {
			return entry.Code
		}
	}

	return backgroundCode
}

// Returns the name of a palette color, or an empty string.
func colorName(col color.Color) string {
	c := toRGBA(col)
	for _, entry := range blockPalette {
		if entry.Color == c {
			return entry.Name
		}
	}

	return ""
}

// Returns true if the code selects a color of the palette. Legacy codes are not selectable.
func (code paletteCode) isValid() bool {
	for _, entry := range blockPalette {
		if entry.Code == code {
			return true
		}
	}
	return false
}

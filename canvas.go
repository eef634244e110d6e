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
	"image"
)

const (
	minCanvasWidth  = 1
	minCanvasHeight = 4 // Hint row, at least one paintable row, wrap row and status row

	wrapStep = 2 // Rows the cursor jumps up when it reaches the wrap row
)

// Fixed drawing area. It is taken from the terminal size at startup and never resized.
type canvas struct {
	Rect image.Rectangle
}

func newCanvas(width, height int) (*canvas, error) {
	if width < minCanvasWidth || height < minCanvasHeight {
		return nil, fmt.Errorf("Canvas of %vx%v cells is too small, need at least %vx%v", width, height, minCanvasWidth, minCanvasHeight)
	}

	return &canvas{
		Rect: image.Rect(0, 0, width, height),
	}, nil
}

func (can *canvas) width() int  { return can.Rect.Dx() }
func (can *canvas) height() int { return can.Rect.Dy() }

// The row above the status row. The cursor never stays on it.
func (can *canvas) wrapRow() int { return can.Rect.Max.Y - 2 }

// The bottom row, reserved for status messages.
func (can *canvas) statusRow() int { return can.Rect.Max.Y - 1 }

func (can *canvas) contains(pos image.Point) bool {
	return pos.In(can.Rect)
}

// Returns the start position of the cursor.
// It is intentionally a bit off center, towards the top left.
func (can *canvas) initialCursor() image.Point {
	return image.Point{
		X: int(float64(can.width()) / 2.2),
		Y: int(float64(can.height()) / 2.2),
	}
}

// Wraps a column around the left and right edges.
func (can *canvas) wrapColumn(x int) int {
	w := can.width()
	x = (x - can.Rect.Min.X) % w
	if x < 0 {
		x += w
	}
	return x + can.Rect.Min.X
}

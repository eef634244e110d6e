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
	"image"
	"sort"
)

type pixelSize image.Point // Size of a cell in image pixels

// Returns the image pixel rectangle covered by the given cell rectangle
func (ps pixelSize) getPixelRect(cells image.Rectangle) image.Rectangle {
	return image.Rectangle{
		Min: image.Point{cells.Min.X * ps.X, cells.Min.Y * ps.Y},
		Max: image.Point{cells.Max.X * ps.X, cells.Max.Y * ps.Y},
	}
}

// Converts a pixel rectangle into the closest possible rectangle in cell coordinates.
// The resulting cell rectangle will always be inside or equal to the given pixel rectangle.
//
// Be aware that the resulting rectangle can have a length of 0 in any axis!
func (ps pixelSize) getInnerCellRect(rect image.Rectangle) image.Rectangle {
	rectTemp := rect.Canon()

	min := image.Point{
		X: divideCeil(rectTemp.Min.X, ps.X),
		Y: divideCeil(rectTemp.Min.Y, ps.Y),
	}
	max := image.Point{
		X: divideFloor(rectTemp.Max.X, ps.X),
		Y: divideFloor(rectTemp.Max.Y, ps.Y),
	}

	if max.X < min.X {
		max.X = min.X
	}
	if max.Y < min.Y {
		max.Y = min.Y
	}

	return image.Rectangle{
		Min: min,
		Max: max,
	}
}

// Orders coordinates by column first, then by row
func pointLess(a, b image.Point) bool {
	if a.X != b.X {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func sortPoints(points []image.Point) {
	sort.Slice(points, func(i, j int) bool { return pointLess(points[i], points[j]) })
}

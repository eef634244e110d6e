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
	"image/color"
	"strings"
)

type overlayState int

const (
	overlayNone overlayState = iota
	overlayHelp
	overlayFileMenu
)

func (o overlayState) String() string {
	switch o {
	case overlayNone:
		return "Normal"
	case overlayHelp:
		return "HelpOpen"
	case overlayFileMenu:
		return "FileMenuOpen"
	}
	return "Unknown"
}

// Returns the state after the toggle key of target was pressed.
// Overlays are mutually exclusive, so closeFirst is true if another overlay has to be closed before target opens.
func (o overlayState) toggle(target overlayState) (next overlayState, closeFirst bool) {
	switch o {
	case target:
		return overlayNone, false
	case overlayNone:
		return target, false
	}
	return target, true
}

var (
	overlayBorderColor = color.RGBA{0, 128, 0, 255}
	overlayTextColor   = color.RGBA{205, 0, 0, 255}
	hintColor          = color.RGBA{205, 0, 0, 255}
	warningColor       = color.RGBA{205, 205, 0, 255}
	statusColor        = color.RGBA{64, 64, 64, 255}
)

const helpHint = "Press 'H' or 'h' for help!"

// An overlay box, all rows are relative to the bottom of the canvas.
type overlayLayout struct {
	Left, Right     int // Columns of the vertical borders
	Top, Bottom     int // Rows of the horizontal borders, as distance from the canvas bottom
	TextLeft        int
	TextTop         int // Row of the first text line, as distance from the canvas bottom
	HorizontalGlyph string
}

var helpLayout = overlayLayout{
	Left: 4, Right: 52,
	Top: 18, Bottom: 3,
	TextLeft: 6, TextTop: 17,
	HorizontalGlyph: "--- ",
}

var fileMenuLayout = overlayLayout{
	Left: 4, Right: 44,
	Top: 16, Bottom: 3,
	TextLeft: 9, TextTop: 9,
	HorizontalGlyph: "--- ",
}

var helpLines = []string{
	"Keyboard shortcuts:",
	"    W - move cursor up",
	"    S - move cursor down",
	"    A - move cursor left",
	"    D - move cursor right",
	"    F - open 'file window'",
	"    H - open 'help window', this one",
	"    P - place block or select a row in menu",
	"    E - erase block",
	"    Q - exit a program or close a window",
	"    1 - 9, 0 - change color",
	"",
	"    Arrow keys move the cursor too",
}

type fileAction int

const (
	actionOpenText fileAction = iota
	actionSaveText
	actionOpenImage
	actionSaveImage
)

type fileMenuItem struct {
	Label  string
	Action fileAction
}

// Items in display order, the first one is on the text top row of fileMenuLayout
var fileMenuItems = []fileMenuItem{
	{Label: "Open text file", Action: actionOpenText},
	{Label: "Save as text file", Action: actionSaveText},
	{Label: "Open image file", Action: actionOpenImage},
	{Label: "Save as image file", Action: actionSaveImage},
}

func (l overlayLayout) row(can *canvas, fromBottom int) int {
	return can.Rect.Max.Y - fromBottom
}

func (l overlayLayout) draw(display displaySurface, can *canvas, lines []string) {
	top, bottom := l.row(can, l.Top), l.row(can, l.Bottom)
	border := strings.Repeat(l.HorizontalGlyph, (l.Right-l.Left)/len(l.HorizontalGlyph))

	display.drawText(image.Point{l.Left + 1, top}, border, overlayBorderColor)
	display.drawText(image.Point{l.Left + 1, bottom}, border, overlayBorderColor)
	for y := top + 1; y < bottom; y++ {
		display.drawText(image.Point{l.Left, y}, "|", overlayBorderColor)
		display.drawText(image.Point{l.Left + 1, y}, strings.Repeat(" ", l.Right-l.Left-1), overlayTextColor)
		display.drawText(image.Point{l.Right, y}, "|", overlayBorderColor)
	}

	for i, line := range lines {
		display.drawText(image.Point{l.TextLeft, l.row(can, l.TextTop) + i}, line, overlayTextColor)
	}
}

func drawHelp(display displaySurface, can *canvas) {
	helpLayout.draw(display, can, helpLines)
}

func drawFileMenu(display displaySurface, can *canvas) {
	labels := make([]string, 0, len(fileMenuItems))
	for _, item := range fileMenuItems {
		labels = append(labels, item.Label)
	}
	fileMenuLayout.draw(display, can, labels)
}

// Returns the file menu item under the given position.
// Any column inside of the menu box selects the item of that row.
func fileMenuItemAt(can *canvas, pos image.Point) (fileMenuItem, bool) {
	l := fileMenuLayout
	if pos.X <= l.Left || pos.X >= l.Right {
		return fileMenuItem{}, false
	}

	index := pos.Y - l.row(can, l.TextTop)
	if index < 0 || index >= len(fileMenuItems) {
		return fileMenuItem{}, false
	}

	return fileMenuItems[index], true
}

// Returns the cursor position that selects the given file menu item.
func fileMenuItemPos(can *canvas, action fileAction) image.Point {
	l := fileMenuLayout
	for i, item := range fileMenuItems {
		if item.Action == action {
			return image.Point{l.TextLeft, l.row(can, l.TextTop) + i}
		}
	}
	return image.Point{}
}

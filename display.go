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
	"image/color"

	"github.com/gdamore/tcell/v2"
)

const blockRune = '█'

// Everything the painting logic needs from a screen.
// Coordinates outside of the screen are ignored.
type displaySurface interface {
	size() (width, height int)
	clear(background color.RGBA)
	drawBlock(pos image.Point, col color.RGBA)
	drawText(pos image.Point, text string, col color.RGBA)
	show()
	beep()
}

// A displaySurface backed by a tcell screen.
type tcellSurface struct {
	Screen     tcell.Screen
	Background color.RGBA // Background behind text
}

// Initializes the terminal, this switches it into raw mode until close() is called.
func openTerminalSurface() (*tcellSurface, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("Can't create screen: %w", err)
	}

	if err := screen.Init(); err != nil {
		return nil, fmt.Errorf("Can't initialize screen: %w", err)
	}

	return newTcellSurface(screen), nil
}

func newTcellSurface(screen tcell.Screen) *tcellSurface {
	screen.HideCursor()

	return &tcellSurface{
		Screen:     screen,
		Background: backgroundColor,
	}
}

func tcellColor(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (ts *tcellSurface) size() (width, height int) {
	return ts.Screen.Size()
}

func (ts *tcellSurface) clear(background color.RGBA) {
	ts.Background = background
	ts.Screen.Fill(' ', tcell.StyleDefault.Background(tcellColor(background)))
}

func (ts *tcellSurface) drawBlock(pos image.Point, col color.RGBA) {
	style := tcell.StyleDefault.Foreground(tcellColor(col)).Background(tcellColor(ts.Background))
	ts.Screen.SetContent(pos.X, pos.Y, blockRune, nil, style)
}

func (ts *tcellSurface) drawText(pos image.Point, text string, col color.RGBA) {
	style := tcell.StyleDefault.Foreground(tcellColor(col)).Background(tcellColor(ts.Background))
	x := pos.X
	for _, r := range text {
		ts.Screen.SetContent(x, pos.Y, r, nil, style)
		x++
	}
}

func (ts *tcellSurface) show() {
	ts.Screen.Show()
}

func (ts *tcellSurface) beep() {
	ts.Screen.Beep()
}

// Clears the screen and gives the terminal back in the state it had before.
func (ts *tcellSurface) close() {
	ts.Screen.Clear()
	ts.Screen.Show()
	ts.Screen.Fini()
}

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
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCell struct {
	Rune  rune
	Color color.RGBA
}

// displaySurface that keeps everything in memory
type memorySurface struct {
	Width, Height int
	Background    color.RGBA
	Cells         map[image.Point]memoryCell
	Shows, Beeps  int
}

func newMemorySurface(width, height int) *memorySurface {
	return &memorySurface{
		Width:  width,
		Height: height,
		Cells:  map[image.Point]memoryCell{},
	}
}

func (ms *memorySurface) size() (width, height int) { return ms.Width, ms.Height }

func (ms *memorySurface) inside(pos image.Point) bool {
	return pos.In(image.Rect(0, 0, ms.Width, ms.Height))
}

func (ms *memorySurface) clear(background color.RGBA) {
	ms.Background = background
	ms.Cells = map[image.Point]memoryCell{}
}

func (ms *memorySurface) drawBlock(pos image.Point, col color.RGBA) {
	if ms.inside(pos) {
		ms.Cells[pos] = memoryCell{blockRune, col}
	}
}

func (ms *memorySurface) drawText(pos image.Point, text string, col color.RGBA) {
	for _, r := range text {
		if ms.inside(pos) {
			ms.Cells[pos] = memoryCell{r, col}
		}
		pos.X++
	}
}

func (ms *memorySurface) show() { ms.Shows++ }
func (ms *memorySurface) beep() { ms.Beeps++ }

// Returns the color of the block at pos, if there is one.
func (ms *memorySurface) blockAt(pos image.Point) (color.RGBA, bool) {
	cell, ok := ms.Cells[pos]
	if !ok || cell.Rune != blockRune {
		return color.RGBA{}, false
	}
	return cell.Color, true
}

// Returns the text of a row, with trailing spaces removed.
func (ms *memorySurface) row(y int) string {
	runes := make([]rune, ms.Width)
	for x := range runes {
		runes[x] = ' '
		if cell, ok := ms.Cells[image.Point{x, y}]; ok {
			runes[x] = cell.Rune
		}
	}
	return strings.TrimRight(string(runes), " ")
}

func (ms *memorySurface) snapshot() map[image.Point]memoryCell {
	result := make(map[image.Point]memoryCell, len(ms.Cells))
	for k, v := range ms.Cells {
		result[k] = v
	}
	return result
}

func newTestTcellSurface(t *testing.T, width, height int) (tcell.SimulationScreen, *tcellSurface) {
	t.Helper()

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(width, height)
	t.Cleanup(screen.Fini)

	return screen, newTcellSurface(screen)
}

func Test_tcellSurface_size(t *testing.T) {
	_, ts := newTestTcellSurface(t, 80, 24)

	width, height := ts.size()
	assert.Equal(t, 80, width)
	assert.Equal(t, 24, height)
}

func Test_tcellSurface_drawBlock(t *testing.T) {
	screen, ts := newTestTcellSurface(t, 80, 24)

	ts.clear(backgroundColor)
	ts.drawBlock(image.Point{3, 4}, colorForCode(5))
	ts.show()

	r, _, style, _ := screen.GetContent(3, 4)
	assert.Equal(t, blockRune, r)
	fg, bg, _ := style.Decompose()
	assert.Equal(t, tcellColor(colorForCode(5)), fg)
	assert.Equal(t, tcellColor(backgroundColor), bg)

	r, _, _, _ = screen.GetContent(4, 4)
	assert.Equal(t, ' ', r)
}

func Test_tcellSurface_drawText(t *testing.T) {
	screen, ts := newTestTcellSurface(t, 80, 24)

	ts.clear(backgroundColor)
	ts.drawText(image.Point{0, 0}, helpHint, hintColor)
	ts.show()

	var got []rune
	for x := 0; x < len(helpHint); x++ {
		r, _, _, _ := screen.GetContent(x, 0)
		got = append(got, r)
	}
	assert.Equal(t, helpHint, string(got))
}

func Test_tcellColor(t *testing.T) {
	assert.Equal(t, tcell.NewRGBColor(255, 85, 85), tcellColor(color.RGBA{255, 85, 85, 255}))
}

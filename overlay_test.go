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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_overlayState_toggle(t *testing.T) {
	tests := []struct {
		from, target   overlayState
		wantNext       overlayState
		wantCloseFirst bool
	}{
		{overlayNone, overlayHelp, overlayHelp, false},
		{overlayHelp, overlayHelp, overlayNone, false},
		{overlayNone, overlayFileMenu, overlayFileMenu, false},
		{overlayFileMenu, overlayFileMenu, overlayNone, false},
		{overlayHelp, overlayFileMenu, overlayFileMenu, true},
		{overlayFileMenu, overlayHelp, overlayHelp, true},
	}

	for _, test := range tests {
		next, closeFirst := test.from.toggle(test.target)
		assert.Equal(t, test.wantNext, next, "%v toggle %v", test.from, test.target)
		assert.Equal(t, test.wantCloseFirst, closeFirst, "%v toggle %v", test.from, test.target)
	}
}

func Test_drawHelp(t *testing.T) {
	can, err := newCanvas(80, 24)
	require.NoError(t, err)
	display := newMemorySurface(80, 24)

	drawHelp(display, can)

	top := can.Rect.Max.Y - helpLayout.TextTop
	assert.True(t, strings.HasPrefix(display.row(top)[helpLayout.TextLeft:], helpLines[0]))
	assert.Equal(t, "    |", display.row(top)[:helpLayout.Left+1])
	assert.True(t, strings.HasPrefix(display.row(can.Rect.Max.Y-helpLayout.Top), "     ---"))
	assert.Contains(t, display.row(top+1), "W - move cursor up")
}

func Test_fileMenuItemAt(t *testing.T) {
	can, err := newCanvas(80, 24)
	require.NoError(t, err)

	for _, item := range fileMenuItems {
		pos := fileMenuItemPos(can, item.Action)

		got, ok := fileMenuItemAt(can, pos)
		assert.True(t, ok, item.Label)
		assert.Equal(t, item, got)

		// Any column inside of the box works
		got, ok = fileMenuItemAt(can, image.Point{fileMenuLayout.Left + 1, pos.Y})
		assert.True(t, ok, item.Label)
		assert.Equal(t, item, got)
	}

	first := fileMenuItemPos(can, actionOpenText)
	_, ok := fileMenuItemAt(can, first.Add(image.Point{0, -1}))
	assert.False(t, ok, "row above the first item")
	_, ok = fileMenuItemAt(can, first.Add(image.Point{0, len(fileMenuItems)}))
	assert.False(t, ok, "row below the last item")
	_, ok = fileMenuItemAt(can, image.Point{fileMenuLayout.Left, first.Y})
	assert.False(t, ok, "on the border")
}

func Test_drawFileMenu(t *testing.T) {
	can, err := newCanvas(80, 24)
	require.NoError(t, err)
	display := newMemorySurface(80, 24)

	drawFileMenu(display, can)

	for _, item := range fileMenuItems {
		pos := fileMenuItemPos(can, item.Action)
		assert.Contains(t, display.row(pos.Y), item.Label)
	}
}

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
)

type direction int

const (
	directionNone direction = iota
	directionUp
	directionDown
	directionLeft
	directionRight
)

// The block cursor, and the color that gets placed next.
type cursorModel struct {
	Pos           image.Point
	PendingColor  color.RGBA
	LastDirection direction

	Canvas  *canvas
	Store   *placedStore
	Display displaySurface
}

func newCursorModel(can *canvas, store *placedStore, display displaySurface) *cursorModel {
	return &cursorModel{
		Pos:          can.initialCursor(),
		PendingColor: colorForCode(defaultCode),
		Canvas:       can,
		Store:        store,
		Display:      display,
	}
}

func (cm *cursorModel) moveUp()    { cm.move(directionUp) }
func (cm *cursorModel) moveDown()  { cm.move(directionDown) }
func (cm *cursorModel) moveLeft()  { cm.move(directionLeft) }
func (cm *cursorModel) moveRight() { cm.move(directionRight) }

func (cm *cursorModel) move(dir direction) {
	cm.redrawCell(cm.Pos)
	cm.step(dir)
	cm.LastDirection = dir
	cm.draw()
}

// Moves one cell further in the last direction, or to the left if there was no movement yet.
// The cell that is left is not redrawn, as this is used right after something was placed there.
func (cm *cursorModel) advance() {
	dir := cm.LastDirection
	if dir == directionNone {
		dir = directionLeft
	}
	cm.step(dir)
	cm.draw()
}

func (cm *cursorModel) step(dir direction) {
	switch dir {
	case directionUp:
		cm.Pos.Y--
		if cm.Pos.Y < cm.Canvas.Rect.Min.Y {
			cm.Pos.Y = cm.Canvas.wrapRow() - 1
		}
	case directionDown:
		cm.Pos.Y++
	case directionLeft:
		cm.Pos.X = cm.Canvas.wrapColumn(cm.Pos.X - 1)
	case directionRight:
		cm.Pos.X = cm.Canvas.wrapColumn(cm.Pos.X + 1)
	}

	cm.wrap()
}

// Keeps the cursor above the wrap row.
// Each time the cursor reaches it, it jumps wrapStep rows up, so holding down makes it saw between the last rows.
func (cm *cursorModel) wrap() {
	for i := 0; cm.Pos.Y >= cm.Canvas.wrapRow() && i < cm.Canvas.height(); i++ {
		cm.redrawCell(cm.Pos)
		cm.Pos.Y -= wrapStep
	}

	if cm.Pos.Y < cm.Canvas.Rect.Min.Y {
		cm.Pos.Y = cm.Canvas.Rect.Min.Y
	}
}

// Redraws a cell with whatever is placed there.
func (cm *cursorModel) redrawCell(pos image.Point) {
	cm.Display.drawBlock(pos, cm.Store.getPixelOrBackground(pos))
}

func (cm *cursorModel) draw() {
	cm.Display.drawBlock(cm.Pos, cursorColor)
}

// Places a block of the given color under the cursor.
func (cm *cursorModel) place(col color.RGBA) {
	cm.Store.setPixel(cm.Pos, col)
	cm.Display.drawBlock(cm.Pos, col)
}

func (cm *cursorModel) placePending() {
	cm.place(cm.PendingColor)
}

// Paints the cell under the cursor with the background color.
// The cell stays in the store.
func (cm *cursorModel) erase() {
	cm.place(backgroundColor)
}

func (cm *cursorModel) selectColor(code paletteCode) {
	cm.PendingColor = colorForCode(code)
}

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
	"errors"
	"fmt"
	"image"
	"image/color"
	"io/fs"
)

// Interactive painting session.
// Everything happens on one goroutine, every command is completely processed before the next one is read.
type session struct {
	Canvas  *canvas
	Store   *placedStore
	Cursor  *cursorModel
	Overlay overlayState
	Display displaySurface

	Settings   settings
	ImageCodec imageCodec

	Status      string
	StatusColor color.RGBA
}

func newSession(display displaySurface, set settings) (*session, error) {
	width, height := display.size()
	can, err := newCanvas(width, height)
	if err != nil {
		return nil, err
	}

	store := newPlacedStore()

	return &session{
		Canvas:     can,
		Store:      store,
		Cursor:     newCursorModel(can, store, display),
		Display:    display,
		Settings:   set,
		ImageCodec: imageCodec{Scale: set.Image.Scale},
	}, nil
}

// Reads and handles commands until the user quits.
func (s *session) run(src eventSource) error {
	s.redrawAll()
	s.Display.show()

	for {
		cmd := readCommand(src)
		if cmd.Kind == commandClosed {
			return fmt.Errorf("Input is unavailable")
		}
		if s.dispatch(cmd) {
			return nil
		}
		s.Display.show()
	}
}

// Handles a single command. Returns true if the program should exit.
func (s *session) dispatch(cmd command) (exit bool) {
	switch cmd.Kind {
	case commandMoveUp:
		s.Cursor.moveUp()
		s.redrawOverlay()
	case commandMoveDown:
		s.Cursor.moveDown()
		s.redrawOverlay()
	case commandMoveLeft:
		s.Cursor.moveLeft()
		s.redrawOverlay()
	case commandMoveRight:
		s.Cursor.moveRight()
		s.redrawOverlay()
	case commandPlace:
		if s.Overlay == overlayFileMenu {
			s.activateFileMenuItem()
			return false
		}
		s.Cursor.placePending()
		s.afterPlacement()
	case commandErase:
		s.Cursor.erase()
		s.afterPlacement()
	case commandSelectColor:
		if !cmd.Code.isValid() {
			return false
		}
		s.Cursor.selectColor(cmd.Code)
		s.drawStatus()
	case commandHelp:
		s.toggleOverlay(overlayHelp)
	case commandFileMenu:
		s.toggleOverlay(overlayFileMenu)
	case commandQuit:
		if s.Overlay != overlayNone {
			s.Overlay = overlayNone
			s.redrawAll()
			return false
		}
		return true
	}

	return false
}

func (s *session) afterPlacement() {
	if s.Settings.Cursor.Advance {
		s.Cursor.advance()
	}
	s.redrawOverlay()
}

func (s *session) toggleOverlay(target overlayState) {
	next, closeFirst := s.Overlay.toggle(target)
	log.Debugf("Overlay %v -> %v", s.Overlay, next)

	if closeFirst || next == overlayNone {
		s.Overlay = overlayNone
		s.redrawAll()
	}

	s.Overlay = next
	s.redrawOverlay()
}

// Clears the screen and draws everything again, including the open overlay.
func (s *session) redrawAll() {
	s.Display.clear(backgroundColor)
	s.Display.drawText(image.Point{0, 0}, helpHint, hintColor)

	for _, pixel := range s.Store.entries() {
		s.Display.drawBlock(pixel.Pos, pixel.Color)
	}

	s.Cursor.draw()
	s.drawStatus()
	s.redrawOverlay()
}

// Draws the open overlay, and the cursor on top of it.
func (s *session) redrawOverlay() {
	switch s.Overlay {
	case overlayHelp:
		drawHelp(s.Display, s.Canvas)
	case overlayFileMenu:
		drawFileMenu(s.Display, s.Canvas)
	default:
		return
	}
	s.Cursor.draw()
}

func (s *session) setStatus(col color.RGBA, format string, args ...interface{}) {
	s.Status = fmt.Sprintf(format, args...)
	s.StatusColor = col
	s.drawStatus()
}

// Draws the status row: The last message on the left, the pending color on the right.
func (s *session) drawStatus() {
	row := s.Canvas.statusRow()
	width := s.Canvas.width()

	blank := make([]rune, width)
	for i := range blank {
		blank[i] = ' '
	}
	s.Display.drawText(image.Point{0, row}, string(blank), statusColor)
	s.Display.drawText(image.Point{0, row}, s.Status, s.StatusColor)

	colorText := fmt.Sprintf("Color: %v ", colorName(s.Cursor.PendingColor))
	x := width - len(colorText) - 1
	if x < 0 {
		return
	}
	s.Display.drawText(image.Point{x, row}, colorText, statusColor)
	s.Display.drawBlock(image.Point{width - 1, row}, s.Cursor.PendingColor)
}

func (s *session) activateFileMenuItem() {
	item, ok := fileMenuItemAt(s.Canvas, s.Cursor.Pos)
	if !ok {
		s.Display.beep()
		return
	}

	switch item.Action {
	case actionOpenText:
		s.loadText()
	case actionSaveText:
		s.saveText()
	case actionOpenImage:
		s.loadImage()
	case actionSaveImage:
		s.saveImage()
	}
}

func (s *session) saveText() {
	path := s.Settings.Files.Text
	backedUp, err := saveTextFile(path, s.Store)
	if err != nil {
		log.Errorf("Saving text painting failed: %v", err)
		s.setStatus(warningColor, "%v", err)
		return
	}

	log.Infof("Saved %v pixels to %v (backup: %v)", s.Store.len(), path, backedUp)
	s.setStatus(statusColor, "Saved %v pixels to %v", s.Store.len(), path)
}

func (s *session) loadText() {
	path := s.Settings.Files.Text
	pixels, err := loadTextFile(path)
	switch {
	case errors.Is(err, errNoPainting):
		s.setStatus(warningColor, "No painting found. Paint something and save it to %v first", path)
		return
	case errors.Is(err, fs.ErrNotExist):
		s.setStatus(warningColor, "Make sure you have %v in the working folder!", path)
		return
	case errors.Is(err, errMalformedPainting):
		log.Warnf("Loading text painting failed: %v", err)
		s.setStatus(warningColor, "Malformed painting in %v, nothing was loaded", path)
		return
	case err != nil:
		log.Errorf("Loading text painting failed: %v", err)
		s.setStatus(warningColor, "%v", err)
		return
	}

	inside := make([]placedPixel, 0, len(pixels))
	for _, pixel := range pixels {
		if s.Canvas.contains(pixel.Pos) {
			inside = append(inside, pixel)
		}
	}
	if skipped := len(pixels) - len(inside); skipped > 0 {
		log.Warnf("Skipped %v pixels of %v that are outside of the %vx%v canvas", skipped, path, s.Canvas.width(), s.Canvas.height())
	}

	s.Store.apply(inside)
	log.Infof("Loaded %v pixels from %v", len(inside), path)
	s.setStatus(statusColor, "Loaded %v pixels from %v", len(inside), path)
	s.redrawAll()
}

func (s *session) saveImage() {
	path := s.Settings.Files.Image
	backedUp, err := s.ImageCodec.save(path, s.Store, s.Canvas.Rect)
	if err != nil {
		log.Errorf("Saving image failed: %v", err)
		s.setStatus(warningColor, "%v", err)
		return
	}

	log.Infof("Saved image %v (backup: %v)", path, backedUp)
	s.setStatus(statusColor, "Saved image %v", path)
}

func (s *session) loadImage() {
	path := s.Settings.Files.Image
	img, err := s.ImageCodec.load(path)
	if err != nil {
		log.Errorf("Loading image failed: %v", err)
		if errors.Is(err, fs.ErrNotExist) {
			s.setStatus(warningColor, "Make sure you have %v in the working folder!", path)
		} else {
			s.setStatus(warningColor, "%v", err)
		}
		return
	}

	if skipped := s.Store.setImage(img, s.Canvas.Rect); skipped > 0 {
		log.Warnf("Skipped %v pixels of %v that are outside of the %vx%v canvas", skipped, path, s.Canvas.width(), s.Canvas.height())
	}

	log.Infof("Loaded image %v", path)
	s.setStatus(statusColor, "Loaded image %v", path)
	s.redrawAll()
}

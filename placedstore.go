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
	"image/draw"
)

type placedPixel struct {
	Pos   image.Point
	Color color.RGBA
}

// Gets informed about every change of a placedStore
type storeListener interface {
	handleSetPixel(pos image.Point, col color.RGBA) error
	handleReset() error
}

// Everything that was painted so far.
// There is at most one color per cell, the last write wins.
// Cells are never removed, erasing writes the background color.
type placedStore struct {
	Pixels    map[image.Point]color.RGBA
	Listeners map[storeListener]struct{}
}

func newPlacedStore() *placedStore {
	return &placedStore{
		Pixels:    map[image.Point]color.RGBA{},
		Listeners: map[storeListener]struct{}{},
	}
}

func (ps *placedStore) subscribeListener(l storeListener) {
	ps.Listeners[l] = struct{}{}
}

func (ps *placedStore) unsubscribeListener(l storeListener) {
	delete(ps.Listeners, l)
}

func (ps *placedStore) setPixel(pos image.Point, col color.Color) {
	c := toRGBA(col)
	ps.Pixels[pos] = c

	for listener := range ps.Listeners {
		if err := listener.handleSetPixel(pos, c); err != nil {
			log.Warnf("Listener %T failed to handle pixel at %v: %v", listener, pos, err)
		}
	}
}

func (ps *placedStore) getPixel(pos image.Point) (color.RGBA, bool) {
	c, ok := ps.Pixels[pos]
	return c, ok
}

// Returns the color of the cell, or the background color if nothing was placed there.
func (ps *placedStore) getPixelOrBackground(pos image.Point) color.RGBA {
	if c, ok := ps.Pixels[pos]; ok {
		return c
	}
	return backgroundColor
}

func (ps *placedStore) len() int {
	return len(ps.Pixels)
}

// Returns all placed pixels, ordered by column and then by row.
func (ps *placedStore) entries() []placedPixel {
	points := make([]image.Point, 0, len(ps.Pixels))
	for pos := range ps.Pixels {
		points = append(points, pos)
	}
	sortPoints(points)

	result := make([]placedPixel, 0, len(points))
	for _, pos := range points {
		result = append(result, placedPixel{Pos: pos, Color: ps.Pixels[pos]})
	}

	return result
}

// Places all given pixels in order.
func (ps *placedStore) apply(pixels []placedPixel) {
	for _, pixel := range pixels {
		ps.setPixel(pixel.Pos, pixel.Color)
	}
}

// Removes everything and informs the listeners.
func (ps *placedStore) reset() {
	ps.Pixels = map[image.Point]color.RGBA{}

	for listener := range ps.Listeners {
		if err := listener.handleReset(); err != nil {
			log.Warnf("Listener %T failed to handle reset: %v", listener, err)
		}
	}
}

// Get an RGBA image of the given rectangle.
// Cells without placed pixel are filled with the given color.
func (ps *placedStore) getImageCopy(rect image.Rectangle, fill color.Color) *image.RGBA {
	img := image.NewRGBA(rect)
	draw.Draw(img, rect, &image.Uniform{fill}, image.Point{}, draw.Src)

	for pos, c := range ps.Pixels {
		if pos.In(rect) {
			img.SetRGBA(pos.X, pos.Y, c)
		}
	}

	return img
}

// Places every pixel of the image that lies inside of clip.
// Pixels with the background color are placed too, the image doesn't know what was painted and what not.
//
// Returns the amount of pixels that were outside of clip.
func (ps *placedStore) setImage(img image.Image, clip image.Rectangle) (skipped int) {
	bounds := img.Bounds()

	for iy := bounds.Min.Y; iy < bounds.Max.Y; iy++ {
		for ix := bounds.Min.X; ix < bounds.Max.X; ix++ {
			pos := image.Point{ix, iy}
			if !pos.In(clip) {
				skipped++
				continue
			}
			ps.setPixel(pos, img.At(ix, iy))
		}
	}

	return skipped
}

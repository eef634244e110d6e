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
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var errUnknownImageFormat = errors.New("Unknown image format")

type imageFormat string

const (
	imageFormatPNG  imageFormat = "png"
	imageFormatBMP  imageFormat = "bmp"
	imageFormatTIFF imageFormat = "tiff"
)

// Cells without placed pixel are exported with this color
var imageDefaultColor = color.RGBA{0, 0, 0, 255}

func imageFormatForPath(path string) (imageFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return imageFormatPNG, nil
	case ".bmp":
		return imageFormatBMP, nil
	case ".tif", ".tiff":
		return imageFormatTIFF, nil
	}

	return "", fmt.Errorf("%w: %q", errUnknownImageFormat, filepath.Ext(path))
}

func encodeImage(w io.Writer, img image.Image, format imageFormat) error {
	switch format {
	case imageFormatPNG:
		return png.Encode(w, img)
	case imageFormatBMP:
		return bmp.Encode(w, img)
	case imageFormatTIFF:
		return tiff.Encode(w, img, &tiff.Options{Compression: tiff.Deflate})
	}

	return fmt.Errorf("%w: %q", errUnknownImageFormat, format)
}

// Converts between placed pixels and raster images.
// Each cell is Scale x Scale image pixels big.
type imageCodec struct {
	Scale int
}

func (ic imageCodec) scale() int {
	if ic.Scale < 1 {
		return 1
	}
	return ic.Scale
}

// Renders the given cell rectangle of the store into an image.
func (ic imageCodec) render(store *placedStore, rect image.Rectangle) image.Image {
	img := store.getImageCopy(rect, imageDefaultColor)

	s := ic.scale()
	if s == 1 {
		return img
	}

	pixelRect := pixelSize{s, s}.getPixelRect(rect)
	return resize.Resize(uint(pixelRect.Dx()), uint(pixelRect.Dy()), img, resize.NearestNeighbor)
}

// Converts a decoded image into one pixel per cell.
func (ic imageCodec) cells(img image.Image) image.Image {
	s := ic.scale()
	if s == 1 {
		return img
	}

	cellRect := pixelSize{s, s}.getInnerCellRect(img.Bounds())
	if cellRect.Empty() {
		return image.NewRGBA(cellRect)
	}

	return resize.Resize(uint(cellRect.Dx()), uint(cellRect.Dy()), img, resize.NearestNeighbor)
}

// Saves the cell rectangle of the store as image, an existing file is kept as backup.
// The format is chosen by the file extension.
func (ic imageCodec) save(path string, store *placedStore, rect image.Rectangle) (backedUp bool, err error) {
	format, err := imageFormatForPath(path)
	if err != nil {
		return false, err
	}

	img := ic.render(store, rect)

	return writeFileAtomic(path, func(w io.Writer) error {
		return encodeImage(w, img, format)
	})
}

// Loads an image and returns it with one pixel per cell.
func (ic imageCodec) load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("Can't open %v: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("Can't decode image %v: %w", path, err)
	}

	return ic.cells(img), nil
}

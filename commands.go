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
	"path/filepath"
	"strings"

	"github.com/coreos/go-semver/semver"
	"github.com/spf13/cobra"
)

const appVersion = "1.0.0"

func isTextPath(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".txt")
}

// Returns the smallest rectangle at the origin that contains every placed pixel.
func paintingBounds(store *placedStore) image.Rectangle {
	var rect image.Rectangle
	for pos := range store.Pixels {
		rect = rect.Union(image.Rect(0, 0, pos.X+1, pos.Y+1))
	}
	return rect
}

// Loads a text or image painting, depending on the file extension.
// The returned rectangle is the area the painting covers.
func loadPainting(path string, codec imageCodec) (*placedStore, image.Rectangle, error) {
	store := newPlacedStore()

	if isTextPath(path) {
		pixels, err := loadTextFile(path)
		if err != nil {
			return nil, image.Rectangle{}, err
		}
		store.apply(pixels)
		return store, paintingBounds(store), nil
	}

	img, err := codec.load(path)
	if err != nil {
		return nil, image.Rectangle{}, err
	}
	store.setImage(img, img.Bounds())

	return store, img.Bounds(), nil
}

// Saves a painting as text or image, depending on the file extension.
// Images cover rect, text files contain every placed pixel.
func savePainting(path string, store *placedStore, rect image.Rectangle, codec imageCodec) error {
	var err error
	if isTextPath(path) {
		_, err = saveTextFile(path, store)
	} else {
		if rect.Empty() {
			return fmt.Errorf("Can't save an empty painting as image %v", path)
		}
		_, err = codec.save(path, store, rect)
	}
	return err
}

func buildConvertCommand(a *app) *cobra.Command {
	var width, height int

	cmd := &cobra.Command{
		Use:   "convert <in> <out>",
		Short: "Convert a painting between text and image files",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec := imageCodec{Scale: a.Settings.Image.Scale}

			store, rect, err := loadPainting(args[0], codec)
			if err != nil {
				return err
			}
			if width > 0 {
				rect.Max.X = rect.Min.X + width
			}
			if height > 0 {
				rect.Max.Y = rect.Min.Y + height
			}

			if err := savePainting(args[1], store, rect, codec); err != nil {
				return err
			}

			log.Infof("Converted %v pixels from %v to %v", store.len(), args[0], args[1])
			return nil
		},
	}

	cmd.Flags().IntVar(&width, "width", 0, "Width of the output image in cells (default: painting bounds)")
	cmd.Flags().IntVar(&height, "height", 0, "Height of the output image in cells (default: painting bounds)")
	return cmd
}

func buildReplayCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "replay <recording" + recordingExtension + "> <out>",
		Short: "Replay a session recording and save the final painting",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec := imageCodec{Scale: a.Settings.Image.Scale}
			store := newPlacedStore()

			header, err := replayRecordingFile(args[0], store)
			if err != nil {
				return err
			}

			if err := savePainting(args[1], store, header.rect(), codec); err != nil {
				return err
			}

			log.Infof("Replayed %v (format %v) into %v, %v pixels", args[0], header.version(), args[1], store.len())
			return nil
		},
	}

	return cmd
}

func buildVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		// No config or log file is needed for this
		PersistentPreRunE:  func(cmd *cobra.Command, args []string) error { return nil },
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error { return nil },
		RunE: func(cmd *cobra.Command, args []string) error {
			version := semver.New(appVersion)
			fmt.Fprintf(cmd.OutOrStdout(), "D3paint %v (recording format %v)\n", version, recordingVersion)
			return nil
		},
	}
}

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
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/coreos/go-semver/semver"
	gzip "github.com/klauspost/pgzip"
)

const (
	recordingMagic     = 1380987716 // ASCII "D3PR" in little endian
	recordingExtension = ".pixrec"

	recordTypeSetPixel = 10
	recordTypeReset    = 21
)

// Format version of the recordings that are written.
// Recordings with a newer major version can't be replayed.
var recordingVersion = semver.New("1.0.0")

type recordingHeader struct {
	MagicNumber                              uint32
	VersionMajor, VersionMinor, VersionPatch uint16
	Time                                     int64
	Width, Height                            uint32 // Size of the canvas the recording was made on
}

func (h recordingHeader) version() semver.Version {
	return semver.Version{Major: int64(h.VersionMajor), Minor: int64(h.VersionMinor), Patch: int64(h.VersionPatch)}
}

func (h recordingHeader) rect() image.Rectangle {
	return image.Rect(0, 0, int(h.Width), int(h.Height))
}

// Writes every change of a placedStore into a compressed journal.
type sessionRecorder struct {
	Closed      bool
	ClosedMutex sync.Mutex

	Store *placedStore

	File      *os.File
	ZipWriter *gzip.Writer
}

// Creates a new recording in the given directory, and subscribes it to the store.
// The file is named after the current time.
func (ps *placedStore) newSessionRecorder(directory string, can *canvas) (*sessionRecorder, error) {
	fileName := time.Now().UTC().Format("2006-01-02T150405") + recordingExtension // Use RFC3339 like encoding, but with : removed
	filePath := filepath.Join(directory, fileName)

	if err := os.MkdirAll(directory, 0777); err != nil {
		return nil, fmt.Errorf("Can't create directory %v: %w", directory, err)
	}
	f, err := os.Create(filePath)
	if err != nil {
		return nil, fmt.Errorf("Can't create file %v: %w", filePath, err)
	}

	zipWriter, err := gzip.NewWriterLevel(f, gzip.DefaultCompression)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("Can't initialize compression %v: %w", filePath, err)
	}
	zipWriter.Name = fileName
	zipWriter.Comment = "D3paint session recording"

	err = binary.Write(zipWriter, binary.LittleEndian, recordingHeader{
		MagicNumber:  recordingMagic,
		VersionMajor: uint16(recordingVersion.Major),
		VersionMinor: uint16(recordingVersion.Minor),
		VersionPatch: uint16(recordingVersion.Patch),
		Time:         time.Now().UnixNano(),
		Width:        uint32(can.width()),
		Height:       uint32(can.height()),
	})
	if err != nil {
		zipWriter.Close()
		f.Close()
		return nil, fmt.Errorf("Can't write to file %v: %w", filePath, err)
	}

	sr := &sessionRecorder{
		Store:     ps,
		File:      f,
		ZipWriter: zipWriter,
	}

	ps.subscribeListener(sr)

	return sr, nil
}

func (sr *sessionRecorder) handleSetPixel(pos image.Point, col color.RGBA) error {
	sr.ClosedMutex.Lock()
	defer sr.ClosedMutex.Unlock()
	if sr.Closed {
		return fmt.Errorf("Listener is closed")
	}

	err := binary.Write(sr.ZipWriter, binary.LittleEndian, struct {
		DataType uint8
		Time     int64
		X, Y     int32
		R, G, B  uint8
	}{
		DataType: recordTypeSetPixel,
		Time:     time.Now().UnixNano(),
		X:        int32(pos.X),
		Y:        int32(pos.Y),
		R:        col.R,
		G:        col.G,
		B:        col.B,
	})
	if err != nil {
		return fmt.Errorf("Can't write to file %v: %w", sr.File.Name(), err)
	}

	return nil
}

func (sr *sessionRecorder) handleReset() error {
	sr.ClosedMutex.Lock()
	defer sr.ClosedMutex.Unlock()
	if sr.Closed {
		return fmt.Errorf("Listener is closed")
	}

	err := binary.Write(sr.ZipWriter, binary.LittleEndian, struct {
		DataType uint8
		Time     int64
	}{
		DataType: recordTypeReset,
		Time:     time.Now().UnixNano(),
	})
	if err != nil {
		return fmt.Errorf("Can't write to file %v: %w", sr.File.Name(), err)
	}

	return nil
}

func (sr *sessionRecorder) path() string {
	return sr.File.Name()
}

// Unsubscribes from the store and finishes the file.
func (sr *sessionRecorder) Close() error {
	sr.Store.unsubscribeListener(sr)

	sr.ClosedMutex.Lock()
	defer sr.ClosedMutex.Unlock()
	if sr.Closed {
		return nil
	}
	sr.Closed = true // Prevent any new events from being written

	if err := sr.ZipWriter.Close(); err != nil {
		sr.File.Close()
		return fmt.Errorf("Can't finish compression of %v: %w", sr.File.Name(), err)
	}
	if err := sr.File.Close(); err != nil {
		return fmt.Errorf("Can't close %v: %w", sr.File.Name(), err)
	}

	return nil
}

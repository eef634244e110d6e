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
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"os"
	"time"

	gzip "github.com/klauspost/pgzip"
)

var errWrongRecordingFormat = errors.New("Wrong file format")

// Reads and checks the header of a decompressed recording.
func readRecordingHeader(r io.Reader) (recordingHeader, error) {
	var header recordingHeader
	if err := binary.Read(r, binary.LittleEndian, &header); err != nil {
		return recordingHeader{}, fmt.Errorf("Error while reading header: %w", err)
	}

	if header.MagicNumber != recordingMagic {
		return recordingHeader{}, errWrongRecordingFormat
	}

	if version := header.version(); version.Major > recordingVersion.Major {
		return recordingHeader{}, fmt.Errorf("Version %v is newer than the supported %v", version, recordingVersion)
	}

	return header, nil
}

// Replays all events of a decompressed recording into the store.
// Returns the header and the time of the last event.
func replayRecording(r io.Reader, store *placedStore) (header recordingHeader, lastEvent time.Time, err error) {
	header, err = readRecordingHeader(r)
	if err != nil {
		return recordingHeader{}, time.Time{}, err
	}
	lastEvent = time.Unix(0, header.Time)

	for {
		var event struct {
			DataType uint8
			Time     int64
		}
		err := binary.Read(r, binary.LittleEndian, &event)
		if err == io.EOF {
			return header, lastEvent, nil
		}
		if err != nil {
			return header, lastEvent, fmt.Errorf("Error while reading event: %w", err)
		}
		lastEvent = time.Unix(0, event.Time)

		switch event.DataType {
		case recordTypeSetPixel:
			var dat struct {
				X, Y    int32
				R, G, B uint8
			}
			if err := binary.Read(r, binary.LittleEndian, &dat); err != nil {
				return header, lastEvent, fmt.Errorf("Error while reading pixel: %w", err)
			}
			store.setPixel(image.Point{int(dat.X), int(dat.Y)}, color.RGBA{dat.R, dat.G, dat.B, 255})

		case recordTypeReset:
			store.reset()

		default:
			return header, lastEvent, fmt.Errorf("Found invalid data type %v", event.DataType)
		}
	}
}

// Replays the recording file at path into the store.
func replayRecordingFile(path string, store *placedStore) (recordingHeader, error) {
	file, err := os.Open(path)
	if err != nil {
		return recordingHeader{}, fmt.Errorf("Can't open recording %v: %w", path, err)
	}
	defer file.Close()

	zipReader, err := gzip.NewReader(file)
	if err != nil {
		return recordingHeader{}, fmt.Errorf("Can't initialize gzip reader for %v: %w", path, err)
	}
	defer zipReader.Close()

	header, lastEvent, err := replayRecording(zipReader, store)
	if err != nil {
		return header, fmt.Errorf("Can't replay %v: %w", path, err)
	}

	log.Debugf("Replayed %v, recorded from %v to %v", path, time.Unix(0, header.Time).UTC(), lastEvent.UTC())

	return header, nil
}

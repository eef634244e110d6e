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
	"bytes"
	"encoding/binary"
	"image"
	"io"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_placedStore_newSessionRecorder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "recordings")
	can, err := newCanvas(80, 24)
	require.NoError(t, err)

	store := newPlacedStore()
	store.setPixel(image.Point{70, 20}, colorForCode(1)) // Before the recording started

	sr, err := store.newSessionRecorder(dir, can)
	require.NoError(t, err)

	for i := 0; i < 64; i++ {
		store.setPixel(image.Point{i, i % 22}, colorForCode(paletteCode(i%10)))
	}
	store.reset()
	for i := 0; i < 16; i++ {
		store.setPixel(image.Point{i, 3}, colorForCode(paletteCode(i%10)))
	}
	require.NoError(t, sr.Close())

	assert.Error(t, sr.handleSetPixel(image.Point{}, colorForCode(1)), "closed recorder")
	assert.Empty(t, store.Listeners)

	matches, err := filepath.Glob(filepath.Join(dir, "*"+recordingExtension))
	require.NoError(t, err)
	require.Len(t, matches, 1)
	assert.Equal(t, sr.path(), matches[0])

	replayed := newPlacedStore()
	header, err := replayRecordingFile(matches[0], replayed)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 80, 24), header.rect())
	assert.Equal(t, *recordingVersion, header.version())
	if diff := cmp.Diff(store.entries(), replayed.entries()); diff != "" {
		t.Errorf("Replayed store differs (-recorded +replayed):\n%s", diff)
	}
}

func writeTestRecording(t *testing.T, header recordingHeader, events ...interface{}) *bytes.Buffer {
	t.Helper()

	buf := &bytes.Buffer{}
	require.NoError(t, binary.Write(buf, binary.LittleEndian, header))
	for _, event := range events {
		require.NoError(t, binary.Write(buf, binary.LittleEndian, event))
	}
	return buf
}

func testRecordingHeader() recordingHeader {
	return recordingHeader{
		MagicNumber:  recordingMagic,
		VersionMajor: uint16(recordingVersion.Major),
		Width:        10,
		Height:       10,
	}
}

type testSetPixelEvent struct {
	DataType uint8
	Time     int64
	X, Y     int32
	R, G, B  uint8
}

func Test_replayRecording(t *testing.T) {
	red := colorForCode(5)
	buf := writeTestRecording(t, testRecordingHeader(),
		testSetPixelEvent{DataType: recordTypeSetPixel, Time: 1, X: 1, Y: 2, R: red.R, G: red.G, B: red.B},
		struct {
			DataType uint8
			Time     int64
		}{recordTypeReset, 2},
		testSetPixelEvent{DataType: recordTypeSetPixel, Time: 3, X: 4, Y: 5, R: red.R, G: red.G, B: red.B},
	)

	store := newPlacedStore()
	_, lastEvent, err := replayRecording(buf, store)
	require.NoError(t, err)

	assert.Equal(t, int64(3), lastEvent.UnixNano())
	assert.Equal(t, []placedPixel{{image.Point{4, 5}, red}}, store.entries())
}

func Test_replayRecording_invalid(t *testing.T) {
	newer := testRecordingHeader()
	newer.VersionMajor++

	wrongMagic := testRecordingHeader()
	wrongMagic.MagicNumber = 1128616528

	truncated := writeTestRecording(t, testRecordingHeader(), testSetPixelEvent{DataType: recordTypeSetPixel})
	truncated.Truncate(truncated.Len() - 2)

	tests := []struct {
		name string
		r    io.Reader
	}{
		{"newer version", writeTestRecording(t, newer)},
		{"wrong magic", writeTestRecording(t, wrongMagic)},
		{"empty", &bytes.Buffer{}},
		{"unknown event", writeTestRecording(t, testRecordingHeader(), struct {
			DataType uint8
			Time     int64
		}{99, 0})},
		{"truncated", truncated},
	}

	for _, test := range tests {
		_, _, err := replayRecording(test.r, newPlacedStore())
		assert.Error(t, err, test.name)
	}

	_, _, err := replayRecording(writeTestRecording(t, wrongMagic), newPlacedStore())
	assert.ErrorIs(t, err, errWrongRecordingFormat)
}

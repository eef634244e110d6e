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
	"errors"
	"image"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_encodeText(t *testing.T) {
	pixels := []placedPixel{
		{image.Point{0, 0}, colorForCode(5)},
		{image.Point{1, 0}, colorForCode(2)},
		{image.Point{3, 7}, backgroundColor},
	}

	var buf bytes.Buffer
	require.NoError(t, encodeText(&buf, pixels))
	assert.Equal(t, "0 0 5\n1 0 2\n3 7 0\n", buf.String())
}

func Test_decodeText(t *testing.T) {
	tests := []struct {
		input   string
		want    []placedPixel
		wantErr error
	}{
		{"0 0 5\n1 0 2\n", []placedPixel{{image.Point{0, 0}, colorForCode(5)}, {image.Point{1, 0}, colorForCode(2)}}, nil},
		{"  0 0\t5 1\n0 2  ", []placedPixel{{image.Point{0, 0}, colorForCode(5)}, {image.Point{1, 0}, colorForCode(2)}}, nil},
		{"4 4 14\n", []placedPixel{{image.Point{4, 4}, colorForCode(5)}}, nil}, // Legacy code
		{"4 4 42\n", []placedPixel{{image.Point{4, 4}, backgroundColor}}, nil},
		{"", nil, errNoPainting},
		{" \n\t\n", nil, errNoPainting},
		{"1 2", nil, errMalformedPainting},
		{"1 2 3 4", nil, errMalformedPainting},
		{"1 x 3", nil, errMalformedPainting},
		{"1 -2 3", nil, errMalformedPainting},
	}

	for _, test := range tests {
		got, err := decodeText(strings.NewReader(test.input))
		if test.wantErr != nil {
			assert.ErrorIs(t, err, test.wantErr, "input %q", test.input)
			assert.Nil(t, got, "input %q", test.input)
			continue
		}
		require.NoError(t, err, "input %q", test.input)
		if diff := cmp.Diff(test.want, got); diff != "" {
			t.Errorf("decodeText(%q) mismatch (-want +got):\n%s", test.input, diff)
		}
	}
}

func Test_decodeText_distinctErrors(t *testing.T) {
	_, err := decodeText(strings.NewReader(""))
	assert.False(t, errors.Is(err, errMalformedPainting))

	_, err = decodeText(strings.NewReader("1 2"))
	assert.False(t, errors.Is(err, errNoPainting))
}

func Test_saveTextFile_roundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "painting.txt")

	store := newPlacedStore()
	store.setPixel(image.Point{0, 0}, colorForCode(5))
	store.setPixel(image.Point{1, 0}, colorForCode(2))

	backedUp, err := saveTextFile(path, store)
	require.NoError(t, err)
	assert.False(t, backedUp)

	pixels, err := loadTextFile(path)
	require.NoError(t, err)
	loaded := newPlacedStore()
	loaded.apply(pixels)

	if diff := cmp.Diff(store.entries(), loaded.entries()); diff != "" {
		t.Errorf("Round trip mismatch (-saved +loaded):\n%s", diff)
	}

	// Saving again keeps the previous file as backup
	store.setPixel(image.Point{2, 2}, colorForCode(1))
	backedUp, err = saveTextFile(path, store)
	require.NoError(t, err)
	assert.True(t, backedUp)

	backup, err := os.ReadFile(filepath.Join(filepath.Dir(path), "painting2.txt"))
	require.NoError(t, err)
	assert.Equal(t, "0 0 5\n1 0 2\n", string(backup))
}

func Test_loadTextFile_incomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "painting.txt")
	require.NoError(t, os.WriteFile(path, []byte("1 2"), 0644))

	store := newPlacedStore()
	pixels, err := loadTextFile(path)
	assert.ErrorIs(t, err, errMalformedPainting)
	store.apply(pixels)
	assert.Equal(t, 0, store.len())
}

func Test_loadTextFile_missing(t *testing.T) {
	_, err := loadTextFile(filepath.Join(t.TempDir(), "painting.txt"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

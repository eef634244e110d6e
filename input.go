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
	"github.com/gdamore/tcell/v2"
)

type commandKind int

const (
	commandNone   commandKind = iota // Nothing usable was read
	commandClosed                    // The input is gone, nothing will ever be read again
	commandMoveUp
	commandMoveDown
	commandMoveLeft
	commandMoveRight
	commandPlace
	commandErase
	commandSelectColor
	commandFileMenu
	commandHelp
	commandQuit
)

// A single user intent. Code is only set for commandSelectColor.
type command struct {
	Kind commandKind
	Code paletteCode
}

// Amount of non key events that are skipped while waiting for one command
const maxReadAttempts = 16

type eventSource interface {
	PollEvent() tcell.Event
}

// Blocks until a key is pressed, and returns the command it stands for.
//
// Other events are skipped, but only maxReadAttempts times in a row.
// After that, commandNone is returned so the caller gets a chance to redraw.
func readCommand(src eventSource) command {
	for attempt := 0; attempt < maxReadAttempts; attempt++ {
		switch ev := src.PollEvent().(type) {
		case nil:
			return command{Kind: commandClosed}
		case *tcell.EventKey:
			return commandForKey(ev)
		default:
			log.Tracef("Skipped event %T", ev)
		}
	}

	return command{Kind: commandNone}
}

func commandForKey(ev *tcell.EventKey) command {
	switch ev.Key() {
	case tcell.KeyUp:
		return command{Kind: commandMoveUp}
	case tcell.KeyDown:
		return command{Kind: commandMoveDown}
	case tcell.KeyLeft:
		return command{Kind: commandMoveLeft}
	case tcell.KeyRight:
		return command{Kind: commandMoveRight}
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return command{Kind: commandQuit}
	case tcell.KeyRune:
	default:
		return command{Kind: commandNone}
	}

	r := ev.Rune()
	switch r {
	case 'w', 'W':
		return command{Kind: commandMoveUp}
	case 's', 'S':
		return command{Kind: commandMoveDown}
	case 'a', 'A':
		return command{Kind: commandMoveLeft}
	case 'd', 'D':
		return command{Kind: commandMoveRight}
	case 'p', 'P':
		return command{Kind: commandPlace}
	case 'e', 'E':
		return command{Kind: commandErase}
	case 'f', 'F':
		return command{Kind: commandFileMenu}
	case 'h', 'H':
		return command{Kind: commandHelp}
	case 'q', 'Q':
		return command{Kind: commandQuit}
	}

	if r >= '0' && r <= '9' {
		return command{Kind: commandSelectColor, Code: paletteCode(r - '0')}
	}

	return command{Kind: commandNone}
}

// Package input reads single-key commands from the terminal in raw mode.
package input

import (
	"log"
	"os"

	"golang.org/x/term"
)

// Command codes returned by ReadCommand
const (
	CmdNorth   = "north"
	CmdSouth   = "south"
	CmdEast    = "east"
	CmdWest    = "west"
	CmdRegen   = "regen"
	CmdSwitch  = "switch"
	CmdQuit    = "quit"
	CmdUnknown = ""
)

// readByte reads a single byte from stdin in raw mode
func readByte() (byte, error) {
	buf := make([]byte, 1)
	_, err := os.Stdin.Read(buf)
	return buf[0], err
}

// tryReadArrowKey attempts to read an arrow key escape sequence after an
// ESC byte. Returns the mapped command if successful, CmdUnknown otherwise.
func tryReadArrowKey() string {
	// Read second byte
	b2, err := readByte()
	if err != nil {
		return CmdUnknown
	}

	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return CmdUnknown
	}

	// Read third byte (the actual key code)
	b3, err := readByte()
	if err != nil {
		return CmdUnknown
	}

	switch b3 {
	case 'A':
		return CmdNorth
	case 'B':
		return CmdSouth
	case 'C':
		return CmdEast
	case 'D':
		return CmdWest
	}
	// Unknown escape sequence - discard it
	return CmdUnknown
}

// ReadCommand blocks for a single keypress and maps it to a command.
// Arrow keys and WASD move, r regenerates the map, m switches map type,
// q and Ctrl+C quit. Unrecognized keys return CmdUnknown.
func ReadCommand() string {
	// Put terminal into raw mode to detect single keys and arrows
	oldState, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		log.Fatalf("Cannot set terminal to raw mode: %v", err)
	}
	defer term.Restore(int(os.Stdin.Fd()), oldState)

	b, err := readByte()
	if err != nil {
		term.Restore(int(os.Stdin.Fd()), oldState)
		log.Fatalf("Cannot read stdin: %v", err)
		return CmdUnknown
	}

	// Arrow keys arrive as escape sequences
	if b == 0x1b {
		return tryReadArrowKey()
	}

	// Ctrl+C
	if b == 3 {
		return CmdQuit
	}

	switch b {
	case 'w', 'W':
		return CmdNorth
	case 's', 'S':
		return CmdSouth
	case 'd', 'D':
		return CmdEast
	case 'a', 'A':
		return CmdWest
	case 'r', 'R':
		return CmdRegen
	case 'm', 'M':
		return CmdSwitch
	case 'q', 'Q':
		return CmdQuit
	}
	return CmdUnknown
}

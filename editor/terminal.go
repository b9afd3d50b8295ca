package editor

import (
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"
)

/*** terminal ***/

// Terminal holds the pre-raw-mode state so it can be put back on exit.
type Terminal struct {
	originalState *term.State
}

// EnableRawMode switches the controlling terminal into raw mode so every
// key arrives immediately and the cursor can be positioned freely.
func (e *Editor) EnableRawMode() error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return errors.New("not running in a terminal")
	}

	state, err := term.MakeRaw(int(os.Stdin.Fd()))
	if err != nil {
		return fmt.Errorf("enabling terminal raw mode: %w", err)
	}
	e.terminal.originalState = state
	return nil
}

// RestoreTerminal puts the original terminal attributes back. Safe to call
// more than once; only the first call does anything.
func (e *Editor) RestoreTerminal() {
	if e.terminal != nil && e.terminal.originalState != nil {
		term.Restore(int(os.Stdin.Fd()), e.terminal.originalState)
		e.terminal.originalState = nil
	}
}

// windowSize reports the terminal dimensions in rows, columns. When the
// size ioctl is unavailable it falls back to the cursor-position probe.
func (e *Editor) windowSize() (int, int, error) {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && cols > 0 {
		return rows, cols, nil
	}
	return e.cursorPositionProbe()
}

// cursorPositionProbe pushes the cursor toward the bottom-right corner and
// asks the terminal where it ended up, which is the screen size.
func (e *Editor) cursorPositionProbe() (int, int, error) {
	if _, err := e.out.Write([]byte(CURSOR_FORWARD_MAX + CURSOR_GET_POSITION)); err != nil {
		return 0, 0, err
	}

	// Response arrives as ESC [ rows ; cols R on the input stream
	resp := make([]byte, 0, 32)
	for len(resp) < 32 {
		b, ok := e.input.ReadByteTimeout()
		if !ok || b == 'R' {
			break
		}
		resp = append(resp, b)
	}

	var rows, cols int
	if _, err := fmt.Sscanf(string(resp), CURSOR_RESPONSE_FORMAT, &rows, &cols); err != nil {
		return 0, 0, errors.New("querying cursor position")
	}
	return rows, cols, nil
}

// Redraw re-queries the window size and repaints, for when the terminal
// was resized mid-session.
func (e *Editor) Redraw() {
	rows, cols, err := e.windowSize()
	if err != nil {
		e.SetStatusMessage("Warn: %v", err)
		return
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	e.RefreshScreen()
}

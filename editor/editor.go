package editor

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"
)

/*** helper ***/

// Config Constants
const (
	TEDI_VERSION = "0.1.0"
	TAB_STOP     = 4
	QUIT_TIMES   = 3
)

// ErrQuit is returned by ProcessKeypress when the user quits. The caller
// owns the terminal guard and the exit, not the dispatcher.
var ErrQuit = errors.New("quit")

// Check if the byte is a control character
func isControl(c byte) bool {
	return c < 32 || c == 127
}

// Convert a character to its control key equivalent
func withControlKey(c int) int {
	return c & 0x1f
}

/*** data ***/

// Editor is the whole session state: document rows, cursor, viewport,
// status line and terminal handles. One instance owns everything; nothing
// here is package-global.
type Editor struct {
	cx, cy            int
	rx                int
	rowOffset         int
	colOffset         int
	screenRows        int
	screenCols        int
	totalRows         int
	row               []editorRow
	dirty             int // captures if and how much edits are made
	filename          string
	statusMessage     string
	statusMessageTime time.Time
	quitTimes         int
	terminal          *Terminal
	input             inputSource
	out               io.Writer
}

// New creates an Editor wired to the process terminal.
func New() *Editor {
	return &Editor{
		terminal:  &Terminal{},
		input:     &stdinSource{f: os.Stdin},
		out:       os.Stdout,
		quitTimes: QUIT_TIMES,
	}
}

// Init resets the session state and sizes the viewport, reserving two lines
// for the status and message bars.
func (e *Editor) Init() error {
	e.cx, e.cy = 0, 0
	e.rx = 0
	e.rowOffset = 0
	e.colOffset = 0
	e.totalRows = 0
	e.row = make([]editorRow, 0)
	e.dirty = 0
	e.filename = ""
	e.statusMessage = ""
	e.statusMessageTime = time.Time{}
	e.quitTimes = QUIT_TIMES

	rows, cols, err := e.windowSize()
	if err != nil {
		return fmt.Errorf("getting window size: %w", err)
	}
	e.screenRows = rows - 2
	e.screenCols = cols
	return nil
}

/*** document operations ***/

// InsertRow inserts a new row at position at, clamped into [0, totalRows].
// The bytes are copied; callers keep ownership of s.
func (e *Editor) InsertRow(at int, s []byte) {
	if at < 0 {
		at = 0
	}
	if at > e.totalRows {
		at = e.totalRows
	}

	newRow := editorRow{chars: append([]byte(nil), s...)}
	newRow.update()

	e.row = append(e.row, editorRow{})
	copy(e.row[at+1:], e.row[at:])
	e.row[at] = newRow

	e.totalRows++
	e.dirty++
}

// DeleteRow removes row at. Out-of-range positions are a no-op.
func (e *Editor) DeleteRow(at int) {
	if at < 0 || at >= e.totalRows {
		return
	}

	copy(e.row[at:], e.row[at+1:])
	e.row = e.row[:e.totalRows-1]

	e.totalRows--
	e.dirty++
}

/*** editor operations ***/

func (e *Editor) InsertChar(c byte) {
	if e.cy == e.totalRows {
		// Typing on the virtual row past the end materializes it first
		e.InsertRow(e.totalRows, nil)
	}
	e.row[e.cy].insertChar(e, e.cx, c)
	e.cx++
}

func (e *Editor) InsertNewline() {
	if e.cx == 0 {
		e.InsertRow(e.cy, nil)
	} else {
		// Copy the tail before InsertRow: appending may reallocate the row
		// slice and invalidate any pointer taken earlier.
		tail := append([]byte(nil), e.row[e.cy].chars[e.cx:]...)
		e.InsertRow(e.cy+1, tail)

		row := &e.row[e.cy]
		row.chars = row.chars[:e.cx]
		row.update()
	}
	e.cy++
	e.cx = 0
}

func (e *Editor) DeleteChar() {
	if e.cy == e.totalRows {
		return
	}
	if e.cx == 0 && e.cy == 0 {
		return
	}

	row := &e.row[e.cy]
	if e.cx > 0 {
		row.deleteChar(e, e.cx-1)
		e.cx--
	} else {
		// Join onto the previous row, then drop the now-empty current one
		e.cx = len(e.row[e.cy-1].chars)
		e.row[e.cy-1].appendBytes(e, row.chars)
		e.DeleteRow(e.cy)
		e.cy--
	}
}

/*** input ***/

// Prompt collects a line of input in the message bar, refreshing the screen
// after every keystroke. Escape cancels and returns "". The callback, if
// set, sees the partial input after each key (used by incremental search).
func (e *Editor) Prompt(prompt string, callback func([]byte, int)) (string, error) {
	buf := make([]byte, 0, 128)

	for {
		e.SetStatusMessage(prompt, string(buf))
		e.RefreshScreen()

		key, err := decodeKey(e.input)
		if err != nil {
			return "", fmt.Errorf("reading keyboard input: %w", err)
		}

		switch key {
		case DELETE_KEY, BACKSPACE, withControlKey('h'):
			if len(buf) != 0 {
				buf = buf[:len(buf)-1]
			}

		case '\x1b':
			e.SetStatusMessage("")
			if callback != nil {
				callback(buf, key)
			}
			return "", nil

		case '\r':
			if len(buf) != 0 {
				e.SetStatusMessage("")
				if callback != nil {
					callback(buf, key)
				}
				return string(buf), nil
			}

		default:
			if key < 128 && !isControl(byte(key)) {
				buf = append(buf, byte(key))
			}
		}

		if callback != nil {
			callback(buf, key)
		}
	}
}

func (e *Editor) MoveCursor(key int) {
	var row *editorRow
	if e.cy < e.totalRows {
		row = &e.row[e.cy]
	}

	switch key {
	case ARROW_LEFT:
		if e.cx != 0 {
			e.cx--
		} else if e.cy > 0 {
			// Wrap to the end of the previous row
			e.cy--
			e.cx = len(e.row[e.cy].chars)
		}
	case ARROW_RIGHT:
		if row != nil && e.cx < len(row.chars) {
			e.cx++
		} else if row != nil && e.cx == len(row.chars) {
			// Wrap to the start of the next row
			e.cy++
			e.cx = 0
		}
	case ARROW_UP:
		if e.cy != 0 {
			e.cy--
		}
	case ARROW_DOWN:
		if e.cy < e.totalRows {
			e.cy++
		}
	}

	// Snap cx back inside the row we landed on
	rowlen := 0
	if e.cy < e.totalRows {
		rowlen = len(e.row[e.cy].chars)
	}
	if e.cx > rowlen {
		e.cx = rowlen
	}
}

// ProcessKeypress reads one key and applies it to the session. It returns
// ErrQuit when the user quits and a plain error when input fails.
func (e *Editor) ProcessKeypress() error {
	key, err := decodeKey(e.input)
	if err != nil {
		return fmt.Errorf("reading keyboard input: %w", err)
	}

	switch key {
	case '\r':
		e.InsertNewline()

	case withControlKey('q'):
		if e.dirty > 0 && e.quitTimes > 0 {
			e.SetStatusMessage("WARNING: File has unsaved changes. Press Ctrl-Q %d more times to quit.", e.quitTimes)
			e.quitTimes--
			return nil
		}
		return ErrQuit

	case withControlKey('s'):
		if err := e.Save(); err != nil {
			return err
		}

	case withControlKey('f'):
		if err := e.Find(); err != nil {
			return err
		}

	case HOME_KEY:
		e.cx = 0

	case END_KEY:
		if e.cy < e.totalRows {
			e.cx = len(e.row[e.cy].chars)
		}

	case BACKSPACE, withControlKey('h'), DELETE_KEY:
		if key == DELETE_KEY {
			// Forward delete is a rightward step followed by backspace
			e.MoveCursor(ARROW_RIGHT)
		}
		e.DeleteChar()

	case PAGE_UP:
		e.cy = e.rowOffset
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(ARROW_UP)
		}

	case PAGE_DOWN:
		e.cy = min(e.rowOffset+e.screenRows-1, e.totalRows)
		for i := 0; i < e.screenRows; i++ {
			e.MoveCursor(ARROW_DOWN)
		}

	case ARROW_LEFT, ARROW_RIGHT, ARROW_UP, ARROW_DOWN:
		e.MoveCursor(key)

	case withControlKey('r'):
		e.Redraw()

	case withControlKey('l'), '\x1b':
		// Ignored

	default:
		e.InsertChar(byte(key))
	}

	e.quitTimes = QUIT_TIMES // Any other key resets the quit countdown
	return nil
}

package editor

import (
	"fmt"
	"time"

	"github.com/mattn/go-runewidth"
)

// How long a status message stays visible.
const MESSAGE_TIMEOUT = 5 * time.Second

/*** append buffer ***/

// appendBuffer collects a whole frame so it can hit the terminal in one
// write, avoiding visible tearing.
type appendBuffer struct {
	b []byte
}

func (ab *appendBuffer) append(s []byte) {
	ab.b = append(ab.b, s...)
}

func (ab *appendBuffer) appendString(s string) {
	ab.b = append(ab.b, s...)
}

/*** output ***/

// Scroll recomputes rx and clamps the viewport offsets so the cursor stays
// on screen. Pure recomputation from the current cursor, called once per
// frame.
func (e *Editor) Scroll() {
	e.rx = 0
	if e.cy < e.totalRows {
		e.rx = e.row[e.cy].cxToRx(e.cx)
	}

	if e.cy < e.rowOffset {
		e.rowOffset = e.cy
	}
	if e.cy >= e.rowOffset+e.screenRows {
		e.rowOffset = e.cy - e.screenRows + 1
	}

	if e.rx < e.colOffset {
		e.colOffset = e.rx
	}
	if e.rx >= e.colOffset+e.screenCols {
		e.colOffset = e.rx - e.screenCols + 1
	}
}

func (e *Editor) DrawRows(abuf *appendBuffer) {
	for y := 0; y < e.screenRows; y++ {
		filerow := y + e.rowOffset
		if filerow >= e.totalRows {
			if e.totalRows == 0 && y == e.screenRows/3 {
				welcome := "TEDI editor -- version " + TEDI_VERSION
				welcomelen := min(len(welcome), e.screenCols)
				padding := (e.screenCols - welcomelen) / 2
				if padding > 0 {
					abuf.appendString("~")
					padding--
				}
				for i := 0; i < padding; i++ {
					abuf.appendString(" ")
				}
				abuf.appendString(welcome[:welcomelen])
			} else {
				abuf.appendString("~")
			}
		} else {
			// Visible slice of the render form, clipped to row bounds
			lineLen := min(max(len(e.row[filerow].render)-e.colOffset, 0), e.screenCols)
			if lineLen > 0 {
				abuf.append(e.row[filerow].render[e.colOffset : e.colOffset+lineLen])
			}
		}

		abuf.appendString(CLEAR_LINE)
		abuf.appendString("\r\n")
	}
}

func (e *Editor) DrawStatusBar(abuf *appendBuffer) {
	abuf.appendString(COLORS_INVERT)

	filename := "[No Name]"
	if e.filename != "" {
		filename = runewidth.Truncate(e.filename, 20, "")
	}
	dirtyFlag := ""
	if e.dirty > 0 {
		dirtyFlag = "(modified)"
	}
	status := runewidth.Truncate(fmt.Sprintf("%s - %d lines %s", filename, e.totalRows, dirtyFlag), e.screenCols, "")
	rstatus := fmt.Sprintf("%d/%d", e.cy+1, e.totalRows)

	statusLen := runewidth.StringWidth(status)
	rstatusLen := runewidth.StringWidth(rstatus)
	abuf.appendString(status)

	for statusLen < e.screenCols {
		if e.screenCols-statusLen == rstatusLen {
			abuf.appendString(rstatus)
			break
		}
		abuf.appendString(" ")
		statusLen++
	}

	abuf.appendString(COLORS_RESET)
	abuf.appendString("\r\n")
}

func (e *Editor) DrawMessageBar(abuf *appendBuffer) {
	abuf.appendString(CLEAR_LINE)
	if e.statusMessage != "" && time.Since(e.statusMessageTime) < MESSAGE_TIMEOUT {
		abuf.appendString(runewidth.Truncate(e.statusMessage, e.screenCols, ""))
	}
}

// RefreshScreen composes one full frame and flushes it in a single write.
func (e *Editor) RefreshScreen() {
	e.Scroll()

	var abuf appendBuffer

	abuf.appendString(CURSOR_HIDE)
	abuf.appendString(CURSOR_HOME)

	e.DrawRows(&abuf)
	e.DrawStatusBar(&abuf)
	e.DrawMessageBar(&abuf)

	// Park the cursor at its screen position, 1-indexed
	abuf.append(fmt.Appendf(nil, CURSOR_POSITION_FORMAT, e.cy-e.rowOffset+1, e.rx-e.colOffset+1))
	abuf.appendString(CURSOR_SHOW)

	e.out.Write(abuf.b)
}

// ClearScreen wipes the display and homes the cursor. Used on the way out.
func (e *Editor) ClearScreen() {
	e.out.Write([]byte(CLEAR_SCREEN + CURSOR_HOME))
}

func (e *Editor) SetStatusMessage(format string, args ...any) {
	e.statusMessage = fmt.Sprintf(format, args...)
	e.statusMessageTime = time.Now()
}

package editor

/*** row operations ***/

// editorRow is one line of the document. chars holds the exact bytes the
// user typed, render the display form with tabs expanded to spaces.
type editorRow struct {
	chars  []byte
	render []byte
}

// cxToRx converts a byte offset into chars to a render column. Mirrors the
// tab expansion done in update so the cursor lands where the text draws.
func (row *editorRow) cxToRx(cx int) int {
	rx := 0
	for j := 0; j < cx; j++ {
		if row.chars[j] == '\t' {
			rx += (TAB_STOP - 1) - (rx % TAB_STOP)
		}
		rx++
	}
	return rx
}

// rxToCx is the reverse mapping, used when a position is found in render
// space (e.g. a search match) and the cursor needs a chars offset.
func (row *editorRow) rxToCx(rx int) int {
	curRx := 0
	var cx int
	for cx = 0; cx < len(row.chars); cx++ {
		if row.chars[cx] == '\t' {
			curRx += (TAB_STOP - 1) - (curRx % TAB_STOP)
		}
		curRx++

		if curRx > rx {
			return cx
		}
	}
	return cx
}

// update recomputes the render form. Every chars mutation calls this before
// returning, so no reader ever observes a stale render.
func (row *editorRow) update() {
	tabs := 0
	for _, c := range row.chars {
		if c == '\t' {
			tabs++
		}
	}

	// Capacity for the worst case tab expansion
	render := make([]byte, 0, len(row.chars)+tabs*(TAB_STOP-1))

	for _, c := range row.chars {
		if c == '\t' {
			// Add spaces until the next TAB_STOP boundary
			render = append(render, ' ')
			for len(render)%TAB_STOP != 0 {
				render = append(render, ' ')
			}
		} else {
			render = append(render, c)
		}
	}

	row.render = render
}

func (row *editorRow) insertChar(e *Editor, at int, c byte) {
	if at < 0 || at > len(row.chars) {
		at = len(row.chars)
	}

	// Grow by one, then shift the tail right to make room
	row.chars = append(row.chars, 0)
	copy(row.chars[at+1:], row.chars[at:])
	row.chars[at] = c

	row.update()
	e.dirty++
}

func (row *editorRow) appendBytes(e *Editor, s []byte) {
	row.chars = append(row.chars, s...)

	row.update()
	e.dirty++
}

func (row *editorRow) deleteChar(e *Editor, at int) {
	if at < 0 || at >= len(row.chars) {
		return
	}

	// Shift the tail left over the deleted byte
	copy(row.chars[at:], row.chars[at+1:])
	row.chars = row.chars[:len(row.chars)-1]

	row.update()
	e.dirty++
}

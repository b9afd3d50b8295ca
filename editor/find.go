package editor

import "bytes"

/*** find ***/

// Find runs an incremental literal search over the render form of every
// row. Arrow keys repeat the search forward or backward with wraparound,
// Enter keeps the match position, Escape restores cursor and scroll.
func (e *Editor) Find() error {
	savedCx := e.cx
	savedCy := e.cy
	savedColOffset := e.colOffset
	savedRowOffset := e.rowOffset

	lastMatch := -1
	direction := 1

	query, err := e.Prompt("Search: %s (Use ESC/Arrows/Enter)", func(query []byte, key int) {
		switch key {
		case '\r', '\x1b':
			return
		case ARROW_RIGHT, ARROW_DOWN:
			direction = 1
		case ARROW_LEFT, ARROW_UP:
			direction = -1
		default:
			// Query changed, restart from the top
			lastMatch = -1
			direction = 1
		}

		if lastMatch == -1 {
			direction = 1
		}
		current := lastMatch

		for i := 0; i < e.totalRows; i++ {
			current += direction
			if current == -1 {
				current = e.totalRows - 1
			} else if current == e.totalRows {
				current = 0
			}

			row := &e.row[current]
			match := bytes.Index(row.render, query)
			if match != -1 {
				lastMatch = current
				e.cy = current
				e.cx = row.rxToCx(match)
				// Force Scroll to bring the match to the top of the screen
				e.rowOffset = e.totalRows
				break
			}
		}
	})
	if err != nil {
		return err
	}

	if query == "" {
		e.cx = savedCx
		e.cy = savedCy
		e.colOffset = savedColOffset
		e.rowOffset = savedRowOffset
	}
	return nil
}

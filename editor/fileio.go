package editor

import (
	"bufio"
	"fmt"
	"os"
)

/*** file i/o ***/

// RowsToString serializes the document: every row's bytes followed by a
// single newline. This is the exact on-disk form.
func (e *Editor) RowsToString() ([]byte, int) {
	totalLength := 0
	for i := range e.row {
		totalLength += len(e.row[i].chars) + 1 // +1 for the newline
	}

	buf := make([]byte, 0, totalLength)
	for i := range e.row {
		buf = append(buf, e.row[i].chars...)
		buf = append(buf, '\n')
	}

	return buf, totalLength
}

// Open loads filename into the document, one row per line. LF and CRLF
// terminators are both stripped; only LF is written back on save.
func (e *Editor) Open(filename string) error {
	e.filename = filename
	file, err := os.Open(filename)
	if err != nil {
		return fmt.Errorf("opening %s: %w", filename, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		for len(line) > 0 && (line[len(line)-1] == '\n' || line[len(line)-1] == '\r') {
			line = line[:len(line)-1]
		}

		e.InsertRow(e.totalRows, line)
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading %s: %w", filename, err)
	}
	e.dirty = 0
	return nil
}

// Save writes the serialized document to the associated file, prompting for
// a name first if there is none. I/O failures are reported in the status
// bar and leave the in-memory document untouched; the returned error is
// only ever a terminal input failure from the prompt.
func (e *Editor) Save() error {
	if e.filename == "" {
		name, err := e.Prompt("Save as: %s (ESC to cancel)", nil)
		if err != nil {
			return err
		}
		if name == "" {
			e.SetStatusMessage("Save aborted")
			return nil
		}
		e.filename = name
	}

	buf, length := e.RowsToString()

	file, err := os.OpenFile(e.filename, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return nil
	}
	defer file.Close()

	if err := file.Truncate(int64(length)); err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return nil
	}

	n, err := file.Write(buf)
	if err != nil {
		e.SetStatusMessage("Can't save! I/O error: %v", err)
		return nil
	}
	if n != length {
		e.SetStatusMessage("Can't save! Partial write: %d/%d bytes", n, length)
		return nil
	}

	e.SetStatusMessage("%d bytes written to disk", length)
	e.dirty = 0
	return nil
}

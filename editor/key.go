package editor

import (
	"os"
	"time"
)

// Key aliase
const (
	BACKSPACE  = 127 // ASCII backspace
	ARROW_LEFT = iota + 1000
	ARROW_RIGHT
	ARROW_UP
	ARROW_DOWN
	DELETE_KEY
	HOME_KEY
	END_KEY
	PAGE_UP
	PAGE_DOWN
)

// How long to wait for the continuation bytes of an escape sequence before
// treating the ESC as a lone keypress.
const ESCAPE_READ_TIMEOUT = 100 * time.Millisecond

// inputSource supplies terminal input one byte at a time.
type inputSource interface {
	// ReadByte blocks until the next input byte arrives.
	ReadByte() (byte, error)
	// ReadByteTimeout waits a bounded time for a byte and reports false
	// when none arrived.
	ReadByteTimeout() (byte, bool)
}

// stdinSource reads from the raw-mode terminal.
type stdinSource struct {
	f *os.File
}

func (s *stdinSource) ReadByte() (byte, error) {
	buf := make([]byte, 1)
	for {
		n, err := s.f.Read(buf)
		if n == 1 {
			return buf[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
}

func (s *stdinSource) ReadByteTimeout() (byte, bool) {
	if err := s.f.SetReadDeadline(time.Now().Add(ESCAPE_READ_TIMEOUT)); err != nil {
		// Deadlines unsupported on this fd, a blocking read is the best
		// we can do.
		b, err := s.ReadByte()
		return b, err == nil
	}
	defer s.f.SetReadDeadline(time.Time{})

	buf := make([]byte, 1)
	n, _ := s.f.Read(buf)
	if n != 1 {
		return 0, false
	}
	return buf[0], true
}

// decodeKey turns the next byte (or escape sequence) from src into a single
// key value: printable and control bytes travel as themselves, special keys
// as the out-of-band constants above. It consumes no bytes belonging to the
// next event.
func decodeKey(src inputSource) (int, error) {
	c, err := src.ReadByte()
	if err != nil {
		return 0, err
	}
	if c != '\x1b' {
		return int(c), nil
	}

	// A lone ESC and the start of a special-key sequence look identical, so
	// give the continuation bytes a bounded window to show up.
	seq0, ok := src.ReadByteTimeout()
	if !ok {
		return '\x1b', nil
	}
	seq1, ok := src.ReadByteTimeout()
	if !ok {
		return '\x1b', nil
	}

	switch seq0 {
	case '[':
		if seq1 >= '0' && seq1 <= '9' {
			seq2, ok := src.ReadByteTimeout()
			if !ok {
				return '\x1b', nil
			}
			if seq2 == '~' {
				switch seq1 {
				case '1', '7':
					return HOME_KEY, nil
				case '3':
					return DELETE_KEY, nil
				case '4', '8':
					return END_KEY, nil
				case '5':
					return PAGE_UP, nil
				case '6':
					return PAGE_DOWN, nil
				}
			}
		} else {
			switch seq1 {
			case 'A':
				return ARROW_UP, nil
			case 'B':
				return ARROW_DOWN, nil
			case 'C':
				return ARROW_RIGHT, nil
			case 'D':
				return ARROW_LEFT, nil
			case 'H':
				return HOME_KEY, nil
			case 'F':
				return END_KEY, nil
			}
		}
	case 'O':
		// Application-mode variants some terminals send for Home/End
		switch seq1 {
		case 'H':
			return HOME_KEY, nil
		case 'F':
			return END_KEY, nil
		}
	}
	return '\x1b', nil // Unknown escape sequence
}

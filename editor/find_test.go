package editor

import "testing"

func TestFindMovesCursorToMatch(t *testing.T) {
	e := newTestEditor("hello", "world", "hold")
	e.input = &scriptSource{data: []byte("wor\r")}

	if err := e.Find(); err != nil {
		t.Fatalf("Find: %v", err)
	}

	if e.cy != 1 || e.cx != 0 {
		t.Errorf("cursor at (%d,%d), want (1,0)", e.cy, e.cx)
	}
}

func TestFindEscapeRestoresPosition(t *testing.T) {
	e := newTestEditor("hello", "world")
	e.cy, e.cx = 0, 2
	e.input = &scriptSource{data: []byte("wor\x1b")}

	if err := e.Find(); err != nil {
		t.Fatalf("Find: %v", err)
	}

	if e.cy != 0 || e.cx != 2 {
		t.Errorf("cursor at (%d,%d), want restored (0,2)", e.cy, e.cx)
	}
	if e.rowOffset != 0 || e.colOffset != 0 {
		t.Errorf("scroll not restored: rowOffset=%d colOffset=%d", e.rowOffset, e.colOffset)
	}
}

func TestFindArrowAdvancesToNextMatch(t *testing.T) {
	e := newTestEditor("cat", "dog", "cattle")
	// Type "cat", then ARROW_DOWN for the next match, then Enter
	e.input = &scriptSource{data: []byte("cat\x1b[B\r")}

	if err := e.Find(); err != nil {
		t.Fatalf("Find: %v", err)
	}

	if e.cy != 2 || e.cx != 0 {
		t.Errorf("cursor at (%d,%d), want (2,0)", e.cy, e.cx)
	}
}

func TestFindWrapsAround(t *testing.T) {
	e := newTestEditor("match", "nothing")
	// Find the match, then ARROW_DOWN wraps past the end back to row 0
	e.input = &scriptSource{data: []byte("match\x1b[B\r")}

	if err := e.Find(); err != nil {
		t.Fatalf("Find: %v", err)
	}

	if e.cy != 0 {
		t.Errorf("cy = %d, want wraparound back to 0", e.cy)
	}
}

func TestFindMatchInRenderSpaceMapsBack(t *testing.T) {
	// The query matches in render space; cx must come back as a chars
	// offset on the far side of the tab.
	e := newTestEditor("\tneedle")
	e.input = &scriptSource{data: []byte("needle\r")}

	if err := e.Find(); err != nil {
		t.Fatalf("Find: %v", err)
	}

	if e.cy != 0 || e.cx != 1 {
		t.Errorf("cursor at (%d,%d), want (0,1)", e.cy, e.cx)
	}
}

package token

import "testing"

func TestPositionString(t *testing.T) {
	tests := []struct {
		pos  Position
		want string
	}{
		{Position{}, "-"},
		{Position{Filename: "a.rs"}, "a.rs"},
		{Position{Line: 3, Column: 5}, "3:5"},
		{Position{Filename: "a.rs", Line: 3, Column: 5}, "a.rs:3:5"},
	}
	for _, tt := range tests {
		if got := tt.pos.String(); got != tt.want {
			t.Errorf("Position%+v.String() = %q, want %q", tt.pos, got, tt.want)
		}
	}
}

func TestPositionIsValid(t *testing.T) {
	if (&Position{}).IsValid() {
		t.Error("zero Position should be invalid")
	}
	if !(&Position{Line: 1}).IsValid() {
		t.Error("Position with Line: 1 should be valid")
	}
}

func TestNoPos(t *testing.T) {
	if NoPos.IsValid() {
		t.Error("NoPos should be invalid")
	}
	if NoPos.File() != nil {
		t.Error("NoPos.File() should be nil")
	}
	if NoPos.Offset() != 0 {
		t.Error("NoPos.Offset() should be 0")
	}
	if got := NoPos.Position(); got != (Position{}) {
		t.Errorf("NoPos.Position() = %+v, want zero value", got)
	}
}

func TestFilePosRoundTrip(t *testing.T) {
	src := "line one\nline two\nline three"
	f := NewFile("test.rs", len(src))
	for i, c := range src {
		if c == '\n' {
			f.AddLine(i + 1)
		}
	}

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{0, 1, 1},
		{5, 1, 6},
		{9, 2, 1},
		{14, 2, 6},
		{18, 3, 1},
	}
	for _, tt := range tests {
		p := f.Pos(tt.offset)
		got := p.Position()
		if got.Line != tt.wantLine || got.Column != tt.wantCol {
			t.Errorf("Pos(%d).Position() = %d:%d, want %d:%d", tt.offset, got.Line, got.Column, tt.wantLine, tt.wantCol)
		}
		if got.Filename != "test.rs" {
			t.Errorf("Pos(%d).Position().Filename = %q, want %q", tt.offset, got.Filename, "test.rs")
		}
	}
}

func TestFilePosClampsOutOfRange(t *testing.T) {
	f := NewFile("t.rs", 10)
	if got := f.Pos(-5); got.Offset() != 0 {
		t.Errorf("Pos(-5).Offset() = %d, want 0", got.Offset())
	}
	if got := f.Pos(100); got.Offset() != 10 {
		t.Errorf("Pos(100).Offset() = %d, want 10", got.Offset())
	}
}

func TestPosCompare(t *testing.T) {
	f := NewFile("t.rs", 20)
	p1 := f.Pos(1)
	p2 := f.Pos(5)
	if p1.Compare(p2) >= 0 {
		t.Error("earlier position should compare before later position")
	}
	if p2.Compare(p1) <= 0 {
		t.Error("later position should compare after earlier position")
	}
	if p1.Compare(p1) != 0 {
		t.Error("a position should compare equal to itself")
	}
	if p1.Compare(NoPos) >= 0 {
		t.Error("a valid position should sort before NoPos")
	}
	if NoPos.Compare(p1) <= 0 {
		t.Error("NoPos should sort after a valid position")
	}
}

func TestPosAdd(t *testing.T) {
	f := NewFile("t.rs", 20)
	p := f.Pos(3)
	if got := p.Add(4).Offset(); got != 7 {
		t.Errorf("Pos(3).Add(4).Offset() = %d, want 7", got)
	}
	if got := NoPos.Add(4); got != NoPos {
		t.Errorf("NoPos.Add(4) = %+v, want NoPos", got)
	}
}

func TestFileOffsetWrongFile(t *testing.T) {
	f1 := NewFile("a.rs", 10)
	f2 := NewFile("b.rs", 10)
	p := f1.Pos(5)
	if got := f2.Offset(p); got != 0 {
		t.Errorf("Offset of a Pos from a different File = %d, want 0", got)
	}
}

// Package engine simulates the subset of Vim normal-mode editing the game drills on.
// Buffers are values: every primitive returns a new Buffer and never writes to the
// Lines slice it was given.
package engine

import "slices"

// Pos is a cursor position. Row and Col are zero-based; Col counts runes, so
// an accented letter is one column.
type Pos struct {
	Row int
	Col int
}

// Buffer is the simulated document shown under the question banner.
type Buffer struct {
	Lines  []string
	Cursor Pos
}

// NewBuffer creates a buffer holding a copy of lines with the cursor at the origin.
// An empty input produces a single empty line.
func NewBuffer(lines []string) Buffer {
	if len(lines) == 0 {
		return Buffer{Lines: []string{""}}
	}
	return Buffer{Lines: slices.Clone(lines)}
}

// Line returns the text at row, or "" when row is outside the buffer.
func (b Buffer) Line(row int) string {
	if row < 0 || row >= len(b.Lines) {
		return ""
	}
	return b.Lines[row]
}

// CurrentLine returns the text under the cursor.
func (b Buffer) CurrentLine() string {
	return b.Line(b.Cursor.Row)
}

// AboveTop reports whether the cursor sits on the transient marker left by gg.
func (b Buffer) AboveTop() bool {
	return b.Cursor.Row < 0
}

// BelowBottom reports whether the cursor sits on the transient marker left by G.
func (b Buffer) BelowBottom() bool {
	return b.Cursor.Row >= len(b.Lines)
}

// Clone returns a deep copy of the buffer.
func (b Buffer) Clone() Buffer {
	return Buffer{Lines: slices.Clone(b.Lines), Cursor: b.Cursor}
}

// Equal reports whether both buffers hold the same lines and cursor.
func (b Buffer) Equal(o Buffer) bool {
	return b.Cursor == o.Cursor && slices.Equal(b.Lines, o.Lines)
}

func clamp(n, lo, hi int) int {
	return max(lo, min(hi, n))
}

// lastCol is the right-most addressable column of a line. Empty lines still
// have column 0.
func lastCol(line string) int {
	return max(0, runeLen(line)-1)
}

// settled resolves the transient gg/G cursor into the buffer so that editing
// primitives always act on a real line.
func (b Buffer) settled() Buffer {
	if len(b.Lines) == 0 {
		b.Lines = []string{""}
	}
	if b.Cursor.Row < 0 || b.Cursor.Row >= len(b.Lines) {
		b.Cursor.Row = clamp(b.Cursor.Row, 0, len(b.Lines)-1)
		b.Cursor.Col = 0
	}
	return b
}

// withLine returns a copy of b with the text at row replaced.
func (b Buffer) withLine(row int, text string) Buffer {
	lines := slices.Clone(b.Lines)
	lines[row] = text
	return Buffer{Lines: lines, Cursor: b.Cursor}
}

// SetCursor places the cursor at (row, col), clamped into the buffer.
func SetCursor(buf Buffer, row, col int) Buffer {
	buf = buf.settled()
	r := clamp(row, 0, len(buf.Lines)-1)
	c := clamp(col, 0, lastCol(buf.Lines[r]))
	return Buffer{Lines: buf.Lines, Cursor: Pos{Row: r, Col: c}}
}

// MoveCursor shifts the cursor by (dRow, dCol). Both axes clamp at the buffer
// edges; the column limit comes from the destination line.
func MoveCursor(buf Buffer, dRow, dCol int) Buffer {
	if len(buf.Lines) == 0 {
		buf = buf.settled()
	}
	r := clamp(buf.Cursor.Row+dRow, 0, len(buf.Lines)-1)
	c := clamp(buf.Cursor.Col+dCol, 0, lastCol(buf.Lines[r]))
	return Buffer{Lines: buf.Lines, Cursor: Pos{Row: r, Col: c}}
}

// LineStart moves to column 0 of the current row.
func LineStart(buf Buffer) Buffer {
	buf = buf.settled()
	buf.Cursor.Col = 0
	return buf
}

// LineEnd moves to the last character of the current row.
func LineEnd(buf Buffer) Buffer {
	buf = buf.settled()
	buf.Cursor.Col = lastCol(buf.CurrentLine())
	return buf
}

// GoTop parks the cursor above the first line.
func GoTop(buf Buffer) Buffer {
	return Buffer{Lines: buf.Lines, Cursor: Pos{Row: -1, Col: 0}}
}

// GoBottom parks the cursor below the last line.
func GoBottom(buf Buffer) Buffer {
	return Buffer{Lines: buf.Lines, Cursor: Pos{Row: len(buf.Lines), Col: 0}}
}

// DeleteChar removes the character under the cursor. The column is left as is
// even when it ends up past the shortened line.
func DeleteChar(buf Buffer) Buffer {
	buf = buf.settled()
	row, col := buf.Cursor.Row, buf.Cursor.Col
	line := []rune(buf.Lines[row])
	if col < 0 || col >= len(line) {
		return buf
	}
	return buf.withLine(row, string(line[:col])+string(line[col+1:]))
}

// DeleteWord removes the next word from the cursor: leading non-word
// characters, the word itself and the non-word run after it. It never crosses
// into the next line.
func DeleteWord(buf Buffer) Buffer {
	buf = buf.settled()
	row, col := buf.Cursor.Row, buf.Cursor.Col
	line := []rune(buf.Lines[row])
	if col < 0 || col >= len(line) {
		return buf
	}
	n := wordSpan(line[col:])
	if n == 0 {
		return buf
	}
	return buf.withLine(row, string(line[:col])+string(line[col+n:]))
}

// ChangeWord behaves exactly like DeleteWord; the game has no insert mode.
func ChangeWord(buf Buffer) Buffer {
	return DeleteWord(buf)
}

// YankLine copies the current line into reg. The buffer is returned unchanged.
func YankLine(buf Buffer, reg *Register) Buffer {
	buf = buf.settled()
	reg.Yank(buf.CurrentLine())
	return buf
}

// PasteBelow opens a new line under the cursor holding the register contents
// (an empty line when nothing was yanked) and moves to its first column.
func PasteBelow(buf Buffer, reg *Register) Buffer {
	buf = buf.settled()
	text, _ := reg.Line()
	at := buf.Cursor.Row + 1
	lines := slices.Insert(slices.Clone(buf.Lines), at, text)
	return Buffer{Lines: lines, Cursor: Pos{Row: at, Col: 0}}
}

// DeleteLine removes count lines starting at the cursor row, or up to the end
// of the buffer when fewer remain. Removing every line leaves one empty line.
func DeleteLine(buf Buffer, count int) Buffer {
	buf = buf.settled()
	count = max(1, count)
	row := buf.Cursor.Row
	n := min(count, len(buf.Lines)-row)

	if n >= len(buf.Lines) {
		return Buffer{Lines: []string{""}, Cursor: Pos{}}
	}

	lines := slices.Delete(slices.Clone(buf.Lines), row, row+n)
	newRow := min(row, len(lines)-1)
	newCol := clamp(buf.Cursor.Col, 0, lastCol(lines[newRow]))
	return Buffer{Lines: lines, Cursor: Pos{Row: newRow, Col: newCol}}
}

// WordForward jumps to the next word character after the cursor on the same
// line. Nothing happens when the rest of the line has none.
func WordForward(buf Buffer) Buffer {
	buf = buf.settled()
	line := []rune(buf.CurrentLine())
	for i := buf.Cursor.Col + 1; i < len(line); i++ {
		if isWordChar(line[i]) {
			buf.Cursor.Col = i
			return buf
		}
	}
	return buf
}

// WordBackward jumps to the closest word character before the cursor on the
// same line, skipping any non-word run that ends at the cursor.
func WordBackward(buf Buffer) Buffer {
	buf = buf.settled()
	line := []rune(buf.CurrentLine())
	for i := min(buf.Cursor.Col, len(line)) - 1; i >= 0; i-- {
		if isWordChar(line[i]) {
			buf.Cursor.Col = i
			return buf
		}
	}
	return buf
}

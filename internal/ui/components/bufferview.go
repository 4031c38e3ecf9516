// Package components provides reusable UI components for the vimarcade TUI.
package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/willibrandon/vimarcade/internal/engine"
	"github.com/willibrandon/vimarcade/internal/ui/styles"
)

const (
	markerAboveTop    = "▲ cursor above first line"
	markerBelowBottom = "▼ cursor below last line"
)

// BufferView renders the simulated text buffer with its cursor.
type BufferView struct {
	width  int
	height int
	buffer engine.Buffer
	// lastCommand is shown in the title, e.g. "3dd".
	lastCommand string
}

// NewBufferView creates a new buffer view.
func NewBufferView() *BufferView {
	return &BufferView{}
}

// SetSize sets the outer dimensions, border included.
func (v *BufferView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// SetBuffer replaces the buffer being shown.
func (v *BufferView) SetBuffer(buf engine.Buffer) {
	v.buffer = buf
}

// SetLastCommand sets the command shown in the title.
func (v *BufferView) SetLastCommand(cmd string) {
	v.lastCommand = cmd
}

// View renders the buffer.
func (v *BufferView) View() string {
	lines := v.renderLines()

	title := styles.MutedStyle.Render("buffer")
	if v.lastCommand != "" {
		title += styles.MutedStyle.Render(" · last ") + styles.AccentStyle.Render(v.lastCommand)
	}

	style := styles.BufferStyle
	if v.width > 0 {
		style = style.Width(v.width - 2)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, style.Render(strings.Join(lines, "\n")))
}

// renderLines renders the gutter and text of each visible line, plus a marker
// line when the cursor sits outside the buffer.
func (v *BufferView) renderLines() []string {
	buf := v.buffer
	if len(buf.Lines) == 0 {
		buf = engine.NewBuffer(nil)
	}

	gutter := len(fmt.Sprint(len(buf.Lines)))
	textWidth := 0
	if v.width > 0 {
		// border, padding and "NN │ "
		textWidth = max(1, v.width-4-gutter-3)
	}

	var out []string
	if buf.AboveTop() {
		out = append(out, styles.MarkerStyle.Render(markerAboveTop))
	}

	first, last := v.visibleRange(buf)
	for row := first; row < last; row++ {
		num := fmt.Sprintf("%*d", gutter, row+1)
		text := buf.Lines[row]
		if row == buf.Cursor.Row {
			num = styles.CurrentLineNumberStyle.Render(num)
			text = renderCursorLine(text, buf.Cursor.Col, textWidth)
		} else {
			num = styles.LineNumberStyle.Render(num)
			if textWidth > 0 {
				text = ansi.Truncate(text, textWidth, "…")
			}
		}
		out = append(out, num+styles.LineNumberStyle.Render(" │ ")+text)
	}

	if buf.BelowBottom() {
		out = append(out, styles.MarkerStyle.Render(markerBelowBottom))
	}
	return out
}

// visibleRange keeps the cursor row on screen when the buffer is taller
// than the view.
func (v *BufferView) visibleRange(buf engine.Buffer) (int, int) {
	n := len(buf.Lines)
	rows := v.height - 2
	if buf.AboveTop() || buf.BelowBottom() {
		rows--
	}
	if v.height <= 0 || rows >= n || rows <= 0 {
		return 0, n
	}

	cursor := min(max(buf.Cursor.Row, 0), n-1)
	first := max(0, cursor-rows/2)
	if first+rows > n {
		first = n - rows
	}
	return first, first + rows
}

// renderCursorLine highlights the cursor column. A cursor past the end of the
// text, or on an empty line, is drawn as a highlighted space. Columns are
// runes, matching the engine.
func renderCursorLine(text string, col, width int) string {
	runes := []rune(text)
	if width > 0 && col >= width {
		// Scroll horizontally so the cursor stays visible.
		shift := min(col-width+1, len(runes))
		runes = runes[shift:]
		col -= shift
	}
	if width > 0 && len(runes) > width {
		runes = runes[:width]
	}

	if col >= len(runes) {
		return string(runes) + styles.CursorStyle.Render(" ")
	}
	return string(runes[:col]) + styles.CursorStyle.Render(string(runes[col])) + string(runes[col+1:])
}

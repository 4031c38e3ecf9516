package engine

// Result is the outcome of running one input token.
type Result struct {
	Buffer Buffer
	// Command is the canonical command string compared against answers.
	Command string
	// Count is the parsed repeat prefix (1 when none was typed).
	Count int
	Kind  Kind
}

// Changed reports whether the command altered the buffer text or cursor.
func (r Result) Changed(before Buffer) bool {
	return !r.Buffer.Equal(before)
}

// ApplyKeys parses raw and runs it against buf. reg receives yanks and feeds
// pastes; pass the session's register so yy and p see each other. ApplyKeys
// never fails: unsupported input leaves the buffer untouched and echoes the
// input as the canonical command.
func ApplyKeys(buf Buffer, raw string, reg *Register) Result {
	cmd := Parse(raw)
	return Result{
		Buffer:  Apply(buf, cmd, reg),
		Command: cmd.Text,
		Count:   cmd.Count,
		Kind:    cmd.Kind,
	}
}

// Apply runs a parsed command. The input buffer is never modified.
func Apply(buf Buffer, cmd Command, reg *Register) Buffer {
	if reg == nil {
		reg = NewRegister()
	}

	switch cmd.Kind {
	case KindLeft:
		return MoveCursor(buf, 0, -1)
	case KindDown:
		return MoveCursor(buf, 1, 0)
	case KindUp:
		return MoveCursor(buf, -1, 0)
	case KindRight:
		return MoveCursor(buf, 0, 1)
	case KindLineStart:
		return LineStart(buf)
	case KindLineEnd:
		return LineEnd(buf)
	case KindTop:
		return GoTop(buf)
	case KindBottom:
		return GoBottom(buf)
	case KindDeleteChar:
		return DeleteChar(buf)
	case KindDeleteWord:
		return DeleteWord(buf)
	case KindChangeWord:
		return ChangeWord(buf)
	case KindYankLine:
		return YankLine(buf, reg)
	case KindPaste:
		return PasteBelow(buf, reg)
	case KindDeleteLine:
		return DeleteLine(buf, cmd.Count)
	case KindWordForward:
		return WordForward(buf)
	case KindWordBackward:
		return WordBackward(buf)
	case KindYankPaste:
		return PasteBelow(YankLine(buf, reg), reg)
	case KindUnknown:
		return buf
	}
	return buf
}

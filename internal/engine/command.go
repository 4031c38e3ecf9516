package engine

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Kind identifies one of the commands the interpreter knows.
type Kind int

const (
	// KindUnknown is any input outside the supported set. It applies as a no-op.
	KindUnknown Kind = iota
	KindLeft
	KindDown
	KindUp
	KindRight
	KindLineStart
	KindLineEnd
	KindTop
	KindBottom
	KindDeleteChar
	KindDeleteWord
	KindChangeWord
	KindYankLine
	KindPaste
	KindDeleteLine
	KindWordForward
	KindWordBackward
	// KindYankPaste is the two-step "yy p" duplicate-line composite.
	KindYankPaste
)

// YankPaste is the canonical spelling of the duplicate-line composite.
const YankPaste = "yy p"

var kindByKeys = map[string]Kind{
	"h":       KindLeft,
	"j":       KindDown,
	"k":       KindUp,
	"l":       KindRight,
	"0":       KindLineStart,
	"$":       KindLineEnd,
	"gg":      KindTop,
	"G":       KindBottom,
	"x":       KindDeleteChar,
	"dw":      KindDeleteWord,
	"cw":      KindChangeWord,
	"yy":      KindYankLine,
	"p":       KindPaste,
	"dd":      KindDeleteLine,
	"w":       KindWordForward,
	"b":       KindWordBackward,
	YankPaste: KindYankPaste,
	"yyp":     KindYankPaste,
}

var kindNames = [...]string{
	KindUnknown:      "unknown",
	KindLeft:         "left",
	KindDown:         "down",
	KindUp:           "up",
	KindRight:        "right",
	KindLineStart:    "line-start",
	KindLineEnd:      "line-end",
	KindTop:          "top",
	KindBottom:       "bottom",
	KindDeleteChar:   "delete-char",
	KindDeleteWord:   "delete-word",
	KindChangeWord:   "change-word",
	KindYankLine:     "yank-line",
	KindPaste:        "paste",
	KindDeleteLine:   "delete-line",
	KindWordForward:  "word-forward",
	KindWordBackward: "word-backward",
	KindYankPaste:    "yank-paste",
}

// String returns a readable name for the kind.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// countPrefix matches a repeat count glued to a lowercase command, e.g. "3dd".
var countPrefix = regexp.MustCompile(`^(\d+)([a-z]+)$`)

// Command is a parsed input token.
type Command struct {
	Kind Kind
	// Count is the repeat prefix, 1 when none was typed. Only KindDeleteLine
	// uses it.
	Count int
	// Text is the canonical spelling: the base command without its count, with
	// the composite normalised to "yy p". For KindUnknown it is the input
	// verbatim (count stripped).
	Text string
}

// Parse splits raw into an optional count and a base command and resolves the
// base against the supported set. It never fails; unsupported input yields
// KindUnknown.
func Parse(raw string) Command {
	base := strings.TrimSpace(raw)
	count := 1

	if m := countPrefix.FindStringSubmatch(base); m != nil {
		count = parseCount(m[1])
		base = m[2]
	}

	kind, ok := kindByKeys[base]
	if !ok {
		return Command{Kind: KindUnknown, Count: count, Text: base}
	}
	if kind == KindYankPaste {
		base = YankPaste
	}
	return Command{Kind: kind, Count: count, Text: base}
}

// parseCount converts a digit run, saturating at MaxInt and never returning
// less than 1.
func parseCount(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		// Only overflow can fail here; the regexp guarantees digits.
		return math.MaxInt
	}
	return max(1, n)
}

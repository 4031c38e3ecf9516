package ui

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"

	"golang.design/x/clipboard"

	"github.com/willibrandon/vimarcade/internal/engine"
	"github.com/willibrandon/vimarcade/internal/logger"
)

// ClipboardWriter provides cross-platform clipboard access with graceful degradation.
// The native clipboard is tried first; command line tools are the fallback.
type ClipboardWriter struct {
	available bool
	errMsg    string
	write     func(text string) error
}

// NewClipboardWriter creates a new ClipboardWriter and checks availability.
func NewClipboardWriter() *ClipboardWriter {
	cw := &ClipboardWriter{}
	if err := clipboard.Init(); err == nil {
		cw.available = true
		cw.write = func(text string) error {
			clipboard.Write(clipboard.FmtText, []byte(text))
			return nil
		}
		return cw
	}
	cw.checkAvailability()
	if cw.available {
		cw.write = cw.runTool
	}
	return cw
}

// checkAvailability looks for a clipboard command line tool.
func (cw *ClipboardWriter) checkAvailability() {
	tools := clipboardTools()
	if len(tools) == 0 {
		cw.errMsg = fmt.Sprintf("unsupported platform: %s", runtime.GOOS)
		return
	}
	for _, tool := range tools {
		if _, err := exec.LookPath(tool[0]); err == nil {
			cw.available = true
			return
		}
	}
	switch runtime.GOOS {
	case "linux":
		cw.errMsg = "clipboard tool not found (install xclip, xsel, or wl-copy)"
	default:
		cw.errMsg = tools[0][0] + " not found"
	}
}

func clipboardTools() [][]string {
	switch runtime.GOOS {
	case "darwin":
		return [][]string{{"pbcopy"}}
	case "linux":
		return [][]string{
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
			{"wl-copy"},
		}
	case "windows":
		return [][]string{{"clip"}}
	default:
		return nil
	}
}

func (cw *ClipboardWriter) runTool(text string) error {
	for _, tool := range clipboardTools() {
		if _, err := exec.LookPath(tool[0]); err != nil {
			continue
		}
		cmd := exec.Command(tool[0], tool[1:]...)
		cmd.Stdin = strings.NewReader(text)
		return cmd.Run()
	}
	return fmt.Errorf("clipboard unavailable: %s", cw.errMsg)
}

// IsAvailable returns whether clipboard operations are supported.
func (cw *ClipboardWriter) IsAvailable() bool {
	return cw.available
}

// Error returns the reason clipboard is unavailable.
func (cw *ClipboardWriter) Error() string {
	return cw.errMsg
}

// Write copies text to the system clipboard.
func (cw *ClipboardWriter) Write(text string) error {
	if !cw.available || cw.write == nil {
		return fmt.Errorf("clipboard unavailable: %s", cw.errMsg)
	}
	return cw.write(text)
}

// Mirror copies every line yanked into reg to the clipboard. Failures are
// logged and otherwise ignored; the game register is unaffected.
func (cw *ClipboardWriter) Mirror(reg *engine.Register) {
	if !cw.available {
		logger.Warn("clipboard mirror disabled", "reason", cw.errMsg)
		return
	}
	reg.OnYank(func(line string) {
		go func() {
			if err := cw.Write(line); err != nil {
				logger.Warn("clipboard write failed", "error", err)
			}
		}()
	})
}

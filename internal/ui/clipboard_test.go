package ui

import (
	"errors"
	"testing"
	"time"

	"github.com/willibrandon/vimarcade/internal/engine"
)

func TestClipboardWriter_Unavailable(t *testing.T) {
	cw := &ClipboardWriter{errMsg: "no display"}

	if cw.IsAvailable() {
		t.Error("expected clipboard to be unavailable")
	}
	err := cw.Write("text")
	if err == nil {
		t.Fatal("expected an error writing to an unavailable clipboard")
	}
	if cw.Error() != "no display" {
		t.Errorf("Error() = %q", cw.Error())
	}
}

func TestClipboardWriter_WriteError(t *testing.T) {
	boom := errors.New("boom")
	cw := &ClipboardWriter{available: true, write: func(string) error { return boom }}

	if err := cw.Write("x"); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
}

func TestClipboardWriter_MirrorCopiesYanks(t *testing.T) {
	got := make(chan string, 1)
	cw := &ClipboardWriter{available: true, write: func(text string) error {
		got <- text
		return nil
	}}

	reg := engine.NewRegister()
	cw.Mirror(reg)

	buf := engine.NewBuffer([]string{"first line", "second line"})
	engine.ApplyKeys(buf, "yy", reg)

	select {
	case line := <-got:
		if line != "first line" {
			t.Errorf("clipboard got %q, want %q", line, "first line")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("yank was not mirrored to the clipboard")
	}
}

func TestClipboardWriter_MirrorUnavailableLeavesRegister(t *testing.T) {
	cw := &ClipboardWriter{errMsg: "headless"}
	reg := engine.NewRegister()
	cw.Mirror(reg)

	reg.Yank("kept")
	if line, ok := reg.Line(); !ok || line != "kept" {
		t.Errorf("register = %q, %v", line, ok)
	}
}

func TestDefaultKeyMap_Help(t *testing.T) {
	k := DefaultKeyMap()
	if len(k.ShortHelp()) == 0 {
		t.Error("ShortHelp should not be empty")
	}
	for i, group := range k.FullHelp() {
		for _, b := range group {
			if len(b.Keys()) == 0 {
				t.Errorf("group %d has a binding with no keys", i)
			}
		}
	}
}

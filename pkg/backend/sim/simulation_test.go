package sim

import (
	"strings"
	"testing"

	"github.com/yuta-ike/headlessui/pkg/backend"
	"github.com/yuta-ike/headlessui/pkg/terminal"
)

func TestBackend_BasicRendering(t *testing.T) {
	b := New(20, 5)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer b.Fini()

	style := backend.DefaultStyle().Foreground(backend.ColorWhite)
	text := "Hello, World!"
	for i, r := range text {
		b.SetContent(i, 0, r, nil, style)
	}
	b.Show()

	capture := b.Capture()
	lines := strings.Split(capture, "\n")
	if len(lines) != 5 {
		t.Errorf("expected 5 lines, got %d", len(lines))
	}
	if !strings.HasPrefix(lines[0], text) {
		t.Errorf("expected first line to start with %q, got %q", text, lines[0])
	}
}

func TestBackend_SizeSurvivesInit(t *testing.T) {
	b := New(60, 16)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer b.Fini()

	w, h := b.Size()
	if w != 60 || h != 16 {
		t.Errorf("expected 60x16, got %dx%d", w, h)
	}
}

func TestBackend_KeyInjectionRoundTrip(t *testing.T) {
	b := New(10, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer b.Fini()

	b.InjectKey(terminal.KeyTab, 0)

	ev := b.PollEvent()
	key, ok := ev.(terminal.KeyEvent)
	if !ok {
		t.Fatalf("expected KeyEvent, got %T", ev)
	}
	if key.Key != terminal.KeyTab {
		t.Errorf("expected KeyTab, got %v", key.Key)
	}
	if key.Shift {
		t.Error("expected no shift modifier")
	}
}

func TestBackend_ShiftTabNormalizesToBacktab(t *testing.T) {
	b := New(10, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer b.Fini()

	// Terminals deliver Shift+Tab as the distinct Backtab key, and
	// tcell normalizes Tab+shift the same way; the injection path
	// must round-trip to the normalized form.
	b.InjectKeyShift(terminal.KeyTab, 0)

	key, ok := b.PollEvent().(terminal.KeyEvent)
	if !ok || key.Key != terminal.KeyBacktab {
		t.Errorf("expected KeyBacktab, got %+v", key)
	}
	if key.Shift {
		t.Error("shift modifier should be consumed by the normalization")
	}
}

func TestBackend_ShiftModifierSurvivesOnOtherKeys(t *testing.T) {
	b := New(10, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer b.Fini()

	b.InjectKeyShift(terminal.KeyUp, 0)

	key, ok := b.PollEvent().(terminal.KeyEvent)
	if !ok || key.Key != terminal.KeyUp || !key.Shift {
		t.Errorf("expected shifted KeyUp, got %+v", key)
	}
}

func TestBackend_ResizeInjection(t *testing.T) {
	b := New(10, 3)
	if err := b.Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	defer b.Fini()

	b.InjectResize(30, 8)

	ev := b.PollEvent()
	resize, ok := ev.(terminal.ResizeEvent)
	if !ok {
		t.Fatalf("expected ResizeEvent, got %T", ev)
	}
	if resize.Width != 30 || resize.Height != 8 {
		t.Errorf("expected 30x8, got %dx%d", resize.Width, resize.Height)
	}

	if w, h := b.Size(); w != 30 || h != 8 {
		t.Errorf("backend size not updated, got %dx%d", w, h)
	}
}

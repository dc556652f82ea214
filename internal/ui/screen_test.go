package ui

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func newSimScreen(t *testing.T) *Screen {
	t.Helper()
	screen, err := NewScreenFrom(tcell.NewSimulationScreen(""))
	if err != nil {
		t.Fatalf("NewScreenFrom() error = %v", err)
	}
	return screen
}

func TestScreenInterrupt(t *testing.T) {
	screen := newSimScreen(t)
	defer screen.Close()

	screen.Interrupt()
	// Skip any resize the simulation queued during init.
	for i := 0; i < 3; i++ {
		ev := screen.PollEvent()
		if _, ok := ev.(*tcell.EventInterrupt); ok {
			return
		}
		if _, ok := ev.(*tcell.EventResize); !ok {
			t.Fatalf("PollEvent() = %T, want *tcell.EventInterrupt", ev)
		}
	}
	t.Error("no interrupt event received")
}

func TestScreenCloseIsIdempotent(t *testing.T) {
	screen := newSimScreen(t)

	screen.Close()
	screen.Close()
	// Interrupting a closed screen does nothing.
	screen.Interrupt()
}

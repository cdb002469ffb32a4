// Package teatest drives bubbletea models synchronously in tests. Instead of
// running a tea.Program, it calls Update directly and drains returned Cmds
// inline, so view-stack navigation can be asserted without goroutines.
package teatest

import (
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDrain bounds recursive command draining.
const maxDrain = 100

// cmdWait separates real Cmds, which return in microseconds, from cursor
// blink Cmds, which block on a timer channel for about half a second.
const cmdWait = 10 * time.Millisecond

// Driver holds the model under test and the quit flag. tea.QuitMsg is
// normally swallowed by the runtime, so the driver records it itself.
type Driver struct {
	t        *testing.T
	model    tea.Model
	Quitting bool
}

func New(t *testing.T, model tea.Model) *Driver {
	t.Helper()
	return &Driver{t: t, model: model}
}

// Resize sends a WindowSizeMsg, as the runtime would on startup.
func (d *Driver) Resize(w, h int) {
	d.t.Helper()
	d.Send(tea.WindowSizeMsg{Width: w, Height: h})
}

// Start runs the model's Init command chain.
func (d *Driver) Start() {
	d.t.Helper()
	d.drain(d.model.Init(), 0)
}

// Send dispatches a message through Update and drains resulting Cmds.
func (d *Driver) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quitting {
		return
	}
	updated, cmd := d.model.Update(msg)
	d.model = updated
	d.drain(cmd, 0)
}

// Key sends one key event. Named keys ("enter", "esc", "up", "down",
// "ctrl+c", "space") are mapped; anything else is sent rune by rune.
func (d *Driver) Key(s string) {
	d.t.Helper()
	switch s {
	case "enter":
		d.Send(tea.KeyMsg{Type: tea.KeyEnter})
	case "esc":
		d.Send(tea.KeyMsg{Type: tea.KeyEsc})
	case "up":
		d.Send(tea.KeyMsg{Type: tea.KeyUp})
	case "down":
		d.Send(tea.KeyMsg{Type: tea.KeyDown})
	case "ctrl+c":
		d.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	case "space":
		d.Send(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	default:
		for _, r := range s {
			d.Send(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
		}
	}
}

// Output returns the rendered view.
func (d *Driver) Output() string {
	return d.model.View()
}

func (d *Driver) drain(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDrain {
		d.t.Logf("teatest: drain depth limit (%d) reached", maxDrain)
		return
	}

	msg := runCmd(cmd)
	if msg == nil || isBlink(msg) {
		return
	}

	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, sub := range batch {
			if sub != nil {
				d.drain(sub, depth+1)
			}
		}
		return
	}

	if _, quit := msg.(tea.QuitMsg); quit {
		d.Quitting = true
		updated, _ := d.model.Update(msg)
		d.model = updated
		return
	}

	updated, next := d.model.Update(msg)
	d.model = updated
	d.drain(next, depth+1)
}

// runCmd executes a Cmd with a timeout so blocking timer Cmds are skipped
// instead of hanging the test.
func runCmd(cmd tea.Cmd) tea.Msg {
	ch := make(chan tea.Msg, 1)
	go func() { ch <- cmd() }()
	select {
	case msg := <-ch:
		return msg
	case <-time.After(cmdWait):
		return nil
	}
}

// isBlink filters the bubbles/cursor blink messages, whose unexported types
// chain into blocking timer Cmds.
func isBlink(msg tea.Msg) bool {
	return strings.Contains(fmt.Sprintf("%T", msg), "link")
}

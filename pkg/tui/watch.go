package tui

import (
	"context"
	"slices"

	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/daybook/pkg/store"
)

// journalKeys are the store keys a reload depends on.
var journalKeys = []string{store.KeyDays, store.KeyTasks, store.KeyWellness}

type watchStartedMsg struct {
	ch     <-chan store.Event
	cancel context.CancelFunc
	err    error
}

// storeChangedMsg carries every journal key written since the last one.
// Keys is empty when only unrelated files changed.
type storeChangedMsg struct {
	keys []string
}

type watchStoppedMsg struct{}

func startWatchCmd(parent context.Context, w store.Watcher) tea.Cmd {
	if w == nil {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithCancel(parent)
		ch, err := w.Watch(ctx)
		if err != nil {
			cancel()
			return watchStartedMsg{err: err}
		}
		return watchStartedMsg{ch: ch, cancel: cancel}
	}
}

// waitForChange blocks for the next event, then takes whatever else is
// already queued so a burst of writes costs one reload.
func (m *Model) waitForChange() tea.Cmd {
	ch := m.watchCh
	if ch == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-ch
		if !ok {
			return watchStoppedMsg{}
		}
		msg := storeChangedMsg{}
		msg.add(ev.Key)
		for {
			select {
			case ev, ok := <-ch:
				if !ok {
					return msg
				}
				msg.add(ev.Key)
			default:
				return msg
			}
		}
	}
}

func (c *storeChangedMsg) add(key string) {
	if slices.Contains(journalKeys, key) && !slices.Contains(c.keys, key) {
		c.keys = append(c.keys, key)
	}
}

func (m *Model) stopWatch() {
	if m.watchCancel != nil {
		m.watchCancel()
	}
	m.watchCancel = nil
	m.watchCh = nil
}

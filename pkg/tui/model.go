// Package tui is the interactive terminal front end: a month of days, the
// selected day's checklists, its score and notes, and an editor for the
// global lists.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"tableflip.dev/daybook/pkg/calendar"
	"tableflip.dev/daybook/pkg/day"
	"tableflip.dev/daybook/pkg/journal"
	"tableflip.dev/daybook/pkg/lists"
	"tableflip.dev/daybook/pkg/store"
	"tableflip.dev/daybook/pkg/tui/theme"
)

type mode int

const (
	modeNormal mode = iota
	modeNotes
	modeList
	modeConfirmReset
)

// Options configures a Model.
type Options struct {
	Journal *journal.Journal
	// Watcher, when set, reloads the journal as other processes write.
	Watcher store.Watcher
	// Now is the clock; time.Now when nil.
	Now func() time.Time
}

// Model is the Bubble Tea model of the UI.
type Model struct {
	ctx     context.Context
	journal *journal.Journal
	watcher store.Watcher
	now     func() time.Time

	month  calendar.Month
	active int
	rec    day.Record

	pane   day.Kind
	cursor map[day.Kind]int

	mode     mode
	editKind day.Kind
	editor   textarea.Model

	keys     keyMap
	help     help.Model
	theme    theme.Theme
	status   string
	errState bool
	width    int
	height   int

	watchCh     <-chan store.Event
	watchCancel context.CancelFunc
}

// New builds a Model showing today.
func New(ctx context.Context, opts Options) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	now := opts.Now
	if now == nil {
		now = time.Now
	}

	ed := textarea.New()
	ed.ShowLineNumbers = false
	ed.SetWidth(60)
	ed.SetHeight(8)

	today := now()
	month := calendar.MonthOf(today)
	m := Model{
		ctx:     ctx,
		journal: opts.Journal,
		watcher: opts.Watcher,
		now:     now,
		month:   month,
		active:  calendar.DefaultActive(month, today),
		pane:    day.Tasks,
		cursor:  map[day.Kind]int{day.Tasks: 0, day.Wellness: 0},
		editor:  ed,
		keys:    defaultKeys(),
		help:    help.New(),
		theme:   theme.Default(),
	}
	m.refresh()
	return m
}

// Date is the key of the selected day.
func (m Model) Date() string {
	return day.Key(m.month.Days()[m.active])
}

// refresh re-reads the selected record, creating it in memory if needed.
func (m *Model) refresh() {
	m.rec = m.journal.GetOrCreate(m.Date())
	for _, kind := range day.Kinds() {
		n := len(m.items(kind))
		m.cursor[kind] = max(0, min(m.cursor[kind], n-1))
	}
}

func (m Model) items(kind day.Kind) []day.Item {
	return m.rec.Ordered(kind, m.journal.List(kind))
}

func (m *Model) setStatus(format string, args ...any) {
	m.status = fmt.Sprintf(format, args...)
	m.errState = false
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(textarea.Blink, startWatchCmd(m.ctx, m.watcher))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.editor.SetWidth(max(20, min(72, msg.Width-4)))
		return m, nil

	case watchStartedMsg:
		if msg.err != nil {
			m.status = "watch: " + msg.err.Error()
			m.errState = true
			return m, nil
		}
		m.stopWatch()
		m.watchCh = msg.ch
		m.watchCancel = msg.cancel
		return m, m.waitForChange()

	case storeChangedMsg:
		if len(msg.keys) > 0 {
			m.journal.Reload()
			m.refresh()
			m.setStatus("reloaded after change to %s", strings.Join(msg.keys, ", "))
		}
		return m, m.waitForChange()

	case watchStoppedMsg:
		m.stopWatch()
		if m.ctx.Err() == nil {
			return m, startWatchCmd(m.ctx, m.watcher)
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeNotes, modeList:
			return m.updateEditor(msg)
		case modeConfirmReset:
			return m.updateConfirm(msg), nil
		}
		return m.updateNormal(msg)
	}

	if m.mode == modeNotes || m.mode == modeList {
		var cmd tea.Cmd
		m.editor, cmd = m.editor.Update(msg)
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m Model) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.stopWatch()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.PrevDay):
		m.moveDay(-1)
	case key.Matches(msg, m.keys.NextDay):
		m.moveDay(1)
	case key.Matches(msg, m.keys.PrevMonth):
		m.showMonth(m.month.Prev())
	case key.Matches(msg, m.keys.NextMonth):
		m.showMonth(m.month.Next())
	case key.Matches(msg, m.keys.Today):
		m.showMonth(calendar.MonthOf(m.now()))

	case key.Matches(msg, m.keys.Pane):
		if m.pane == day.Tasks {
			m.pane = day.Wellness
		} else {
			m.pane = day.Tasks
		}
	case key.Matches(msg, m.keys.Up):
		if m.cursor[m.pane] > 0 {
			m.cursor[m.pane]--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor[m.pane] < len(m.items(m.pane))-1 {
			m.cursor[m.pane]++
		}
	case key.Matches(msg, m.keys.Toggle):
		items := m.items(m.pane)
		if len(items) == 0 {
			m.setStatus("no %s yet, press e to add some", m.pane)
			break
		}
		m.journal.Toggle(m.Date(), m.pane, items[m.cursor[m.pane]].Name)
		m.refresh()

	case key.Matches(msg, m.keys.ScoreUp):
		m.journal.Update(m.Date(), day.ScorePatch(m.rec.Score+1))
		m.refresh()
	case key.Matches(msg, m.keys.ScoreDown):
		m.journal.Update(m.Date(), day.ScorePatch(m.rec.Score-1))
		m.refresh()

	case key.Matches(msg, m.keys.Notes):
		m.mode = modeNotes
		m.editor.Placeholder = "How did today go?"
		m.editor.SetValue(m.rec.Notes)
		return m, m.editor.Focus()
	case key.Matches(msg, m.keys.EditList):
		m.mode = modeList
		m.editKind = m.pane
		m.editor.Placeholder = "One item per line"
		m.editor.SetValue(strings.Join(m.journal.List(m.pane), "\n"))
		return m, m.editor.Focus()
	case key.Matches(msg, m.keys.Reset):
		m.mode = modeConfirmReset
		m.editKind = m.pane
	case key.Matches(msg, m.keys.Reload):
		m.journal.Reload()
		m.refresh()
		m.setStatus("reloaded")

	default:
		if s := msg.String(); len(s) == 1 && s[0] >= '0' && s[0] <= '9' {
			m.journal.Update(m.Date(), day.ScorePatch(int(s[0]-'0')))
			m.refresh()
		}
	}
	return m, nil
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.mode = modeNormal
		m.editor.Blur()
		m.setStatus("discarded")
		return m, nil

	case key.Matches(msg, m.keys.Save):
		text := m.editor.Value()
		if m.mode == modeNotes {
			m.journal.Update(m.Date(), day.NotesPatch(text))
			m.setStatus("notes saved")
		} else {
			items := lists.FromLines(text)
			m.journal.SetList(m.editKind, items)
			m.setStatus("%s saved, %d items", strings.ToLower(m.editKind.Title()), len(items))
		}
		m.mode = modeNormal
		m.editor.Blur()
		m.refresh()
		return m, nil
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) updateConfirm(msg tea.KeyMsg) Model {
	m.mode = modeNormal
	if msg.String() == "y" || msg.String() == "Y" {
		m.journal.ResetToDefault(m.editKind)
		m.refresh()
		m.setStatus("%s reset to defaults", strings.ToLower(m.editKind.Title()))
		return m
	}
	m.setStatus("reset cancelled")
	return m
}

// moveDay moves the selection by delta days, crossing into neighbouring
// months at the edges.
func (m *Model) moveDay(delta int) {
	target := m.month.Days()[m.active].AddDate(0, 0, delta)
	if !m.month.Contains(target) {
		m.month = calendar.MonthOf(target)
	}
	m.active = target.Day() - 1
	m.refresh()
}

// showMonth switches month, selecting today when it is in view and the
// first otherwise.
func (m *Model) showMonth(month calendar.Month) {
	m.month = month
	m.active = calendar.DefaultActive(month, m.now())
	m.refresh()
}

package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	PrevDay   key.Binding
	NextDay   key.Binding
	PrevMonth key.Binding
	NextMonth key.Binding
	Today     key.Binding
	Up        key.Binding
	Down      key.Binding
	Pane      key.Binding
	Toggle    key.Binding
	ScoreUp   key.Binding
	ScoreDown key.Binding
	Notes     key.Binding
	EditList  key.Binding
	Reset     key.Binding
	Reload    key.Binding
	Help      key.Binding
	Quit      key.Binding

	Save   key.Binding
	Cancel key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		PrevDay:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		PrevMonth: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev month")),
		NextMonth: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next month")),
		Today:     key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Pane:      key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "tasks/wellness")),
		Toggle:    key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		ScoreUp:   key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "score up")),
		ScoreDown: key.NewBinding(key.WithKeys("-", "_"), key.WithHelp("-", "score down")),
		Notes:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "notes")),
		EditList:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit list")),
		Reset:     key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "reset list")),
		Reload:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),

		Save:   key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Cancel: key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.PrevDay, k.NextDay, k.Toggle, k.ScoreUp, k.ScoreDown, k.Notes, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevDay, k.NextDay, k.PrevMonth, k.NextMonth, k.Today},
		{k.Up, k.Down, k.Pane, k.Toggle},
		{k.ScoreUp, k.ScoreDown, k.Notes},
		{k.EditList, k.Reset, k.Reload, k.Help, k.Quit},
	}
}

// editorKeys is the help shown while a text editor has focus.
type editorKeys struct {
	Save   key.Binding
	Cancel key.Binding
}

func (k editorKeys) ShortHelp() []key.Binding {
	return []key.Binding{k.Save, k.Cancel}
}

func (k editorKeys) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

package cli

import "github.com/charmbracelet/bubbles/key"

// boardKeyMap lists the bindings of the interactive board.
type boardKeyMap struct {
	Left, Right, Up, Down key.Binding
	PrevDay, NextDay      key.Binding
	Grab, Cancel          key.Binding
	Delete, Priority      key.Binding
	Complete              key.Binding
	CompleteTask          key.Binding
	InProgress            key.Binding
	Duplicate             key.Binding
	EditTime, Detail      key.Binding
	Sync, Help, Quit      key.Binding
}

func newBoardKeyMap() boardKeyMap {
	return boardKeyMap{
		Left:         key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		Right:        key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Up:           key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:         key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PrevDay:      key.NewBinding(key.WithKeys("["), key.WithHelp("[", "window back")),
		NextDay:      key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "window forward")),
		Grab:         key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pick up/drop")),
		Cancel:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Delete:       key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete")),
		Priority:     key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "priority")),
		Complete:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "toggle done")),
		CompleteTask: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "task done")),
		InProgress:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "task in progress")),
		Duplicate:    key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "duplicate here")),
		EditTime:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit time")),
		Detail:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "task detail")),
		Sync:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "sync")),
		Help:         key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:         key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k boardKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Grab, k.Left, k.Right, k.EditTime, k.Help, k.Quit}
}

func (k boardKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Up, k.Down, k.PrevDay, k.NextDay},
		{k.Grab, k.Cancel, k.Duplicate, k.EditTime, k.Detail},
		{k.Delete, k.Priority, k.Complete, k.CompleteTask, k.InProgress},
		{k.Sync, k.Help, k.Quit},
	}
}

package cli

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/alexanderramin/planboard/internal/calendar"
	"github.com/alexanderramin/planboard/internal/cli/formatter"
	"github.com/alexanderramin/planboard/internal/domain"
	"github.com/alexanderramin/planboard/internal/notify"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type boardMode int

const (
	modeBoard boardMode = iota
	modeTime
	modeDetail
)

// toastTickMsg re-renders the board so expired toasts disappear.
type toastTickMsg time.Time

func toastTick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg { return toastTickMsg(t) })
}

// boardModel is the interactive calendar board. Gestures run synchronously
// against the controller; the keyboard stands in for the pointer.
type boardModel struct {
	app  *App
	keys boardKeyMap
	help help.Model

	start time.Time
	board *calendar.Board
	ctrl  *calendar.Controller

	col, row int
	hover    *calendar.Zone

	mode   boardMode
	form   *huh.Form
	fields *timeFields
	detail string

	err           error
	width, height int
	quitting      bool
}

func newBoardModel(app *App, start time.Time) *boardModel {
	m := &boardModel{
		app:   app,
		keys:  newBoardKeyMap(),
		help:  help.New(),
		start: start,
	}
	m.reload()
	return m
}

func (m *boardModel) reload() {
	board, err := m.app.Board.Load(context.Background(), m.start, m.app.days())
	if err != nil {
		m.err = err
		return
	}
	m.err = nil
	m.board = board
	m.ctrl = m.app.Board.Controller(board, m.app.notices())
	m.hover = nil
	m.clampCursor()
}

// ── bubbletea interface ──────────────────────────────────────────────────────

func (m *boardModel) Init() tea.Cmd {
	return toastTick()
}

func (m *boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		return m, nil

	case toastTickMsg:
		return m, toastTick()

	case tea.MouseMsg:
		if m.mode == modeTime && msg.Action == tea.MouseActionPress {
			if m.ctrl.Editor().HandleClick(calendar.ClickElsewhere) {
				m.closeForm()
			}
		}
		return m, nil

	case tea.KeyMsg:
		switch m.mode {
		case modeTime:
			return m.updateTime(msg)
		case modeDetail:
			if key.Matches(msg, m.keys.Cancel, m.keys.Detail, m.keys.Quit) {
				m.mode = modeBoard
				m.detail = ""
			}
			return m, nil
		}
		return m.updateBoard(msg)
	}

	if m.mode == modeTime && m.form != nil {
		return m.forwardToForm(msg)
	}
	return m, nil
}

func (m *boardModel) updateBoard(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.board == nil {
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		if key.Matches(msg, m.keys.Sync) {
			m.sync()
		}
		return m, nil
	}

	ctx := context.Background()
	dragging := m.ctrl.Session().Active()

	switch {
	case key.Matches(msg, m.keys.Quit):
		if dragging {
			m.cancelDrag()
		}
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll

	case key.Matches(msg, m.keys.Left):
		m.focusColumn(m.col - 1)
	case key.Matches(msg, m.keys.Right):
		m.focusColumn(m.col + 1)
	case key.Matches(msg, m.keys.Up):
		if !dragging && m.row > 0 {
			m.row--
		}
	case key.Matches(msg, m.keys.Down):
		if !dragging {
			m.row++
			m.clampCursor()
		}

	case key.Matches(msg, m.keys.PrevDay, m.keys.NextDay):
		if dragging {
			return m, nil
		}
		step := 1
		if key.Matches(msg, m.keys.PrevDay) {
			step = -1
		}
		m.start = m.start.AddDate(0, 0, step)
		m.reload()

	case key.Matches(msg, m.keys.Grab):
		if !dragging {
			m.pickUp()
			return m, nil
		}
		zone := m.hover
		if zone == nil {
			zone = calendar.DayZone(m.focusDate())
		}
		m.hover = nil
		out, err := m.ctrl.Drop(ctx, zone)
		m.settle(out, err)

	case key.Matches(msg, m.keys.Cancel):
		if dragging {
			m.cancelDrag()
		}
		m.err = nil

	case key.Matches(msg, m.keys.Delete):
		m.dropOn(calendar.ActionZone(domain.ActionDelete))
	case key.Matches(msg, m.keys.Priority):
		p, _ := strconv.Atoi(msg.String())
		m.dropOn(calendar.PriorityZone(p))
	case key.Matches(msg, m.keys.Complete):
		m.dropOn(calendar.ActionZone(domain.ActionComplete))
	case key.Matches(msg, m.keys.CompleteTask):
		m.dropOn(calendar.ActionZone(domain.ActionCompleteTask))
	case key.Matches(msg, m.keys.InProgress):
		m.dropOn(calendar.ActionZone(domain.ActionInProgress))
	case key.Matches(msg, m.keys.Duplicate):
		m.dropOn(calendar.DuplicateZone(m.focusDate()))

	case key.Matches(msg, m.keys.EditTime):
		if dragging {
			return m, nil
		}
		return m, m.openTimeEditor()

	case key.Matches(msg, m.keys.Detail):
		if !dragging {
			m.openDetail()
		}

	case key.Matches(msg, m.keys.Sync):
		if !dragging {
			m.sync()
		}
	}
	return m, nil
}

// ── gestures ─────────────────────────────────────────────────────────────────

func (m *boardModel) pickUp() {
	sel := m.selected()
	if sel == nil {
		return
	}
	if err := m.ctrl.DragStart(sel.ID); err != nil {
		m.err = err
		return
	}
	m.enter(calendar.DayZone(m.focusDate()))
}

// dropOn drops the dragged planning, or the selected one when nothing is
// held, onto zone.
func (m *boardModel) dropOn(zone *calendar.Zone) {
	if !m.ctrl.Session().Active() {
		sel := m.selected()
		if sel == nil {
			return
		}
		if err := m.ctrl.DragStart(sel.ID); err != nil {
			m.err = err
			return
		}
	}
	m.enter(zone)
	m.hover = nil
	out, err := m.ctrl.Drop(context.Background(), zone)
	m.settle(out, err)
}

func (m *boardModel) cancelDrag() {
	if m.hover != nil {
		m.ctrl.DragLeave(m.hover)
		m.hover = nil
	}
	m.ctrl.DragEnd()
}

// enter moves the hover highlight to zone.
func (m *boardModel) enter(zone *calendar.Zone) {
	if m.hover != nil {
		m.ctrl.DragLeave(m.hover)
	}
	m.hover = zone
	m.ctrl.DragEnter(zone)
}

// settle persists a confirmed outcome. Failed gestures were already
// surfaced as toasts by the controller.
func (m *boardModel) settle(out *calendar.Outcome, err error) {
	if err == nil && out != nil {
		if aerr := m.app.Board.Apply(context.Background(), out); aerr != nil {
			m.err = aerr
		}
		if len(out.Touched) > 0 {
			m.follow(out.Touched[len(out.Touched)-1].ID)
		}
	}
	m.clampCursor()
}

func (m *boardModel) sync() {
	ctx := context.Background()
	res, err := m.app.Board.Sync(ctx)
	if err != nil {
		m.app.notices().Notify(ctx, notify.LevelDanger, "Error: "+err.Error())
		return
	}
	m.app.notices().Notify(ctx, notify.LevelInfo,
		fmt.Sprintf("Synced %s", formatter.Plural(res.Plannings, "planning")))
	m.reload()
}

// ── time editor ──────────────────────────────────────────────────────────────

func (m *boardModel) openTimeEditor() tea.Cmd {
	sel := m.selected()
	if sel == nil {
		return nil
	}
	x, y := m.col*m.columnWidth(), m.row*2+4
	if err := m.ctrl.Editor().Open(sel.ID, x, y); err != nil {
		m.err = err
		return nil
	}
	start, end := m.ctrl.Editor().Values()
	m.fields = &timeFields{start: start, end: end}
	m.form = timeEditorForm(sel.Title, m.fields)
	m.mode = modeTime
	return m.form.Init()
}

func (m *boardModel) updateTime(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEsc {
		m.ctrl.Editor().Cancel()
		m.closeForm()
		return m, nil
	}
	return m.forwardToForm(msg)
}

func (m *boardModel) forwardToForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}
	switch m.form.State {
	case huh.StateCompleted:
		return m, m.saveTime()
	case huh.StateAborted:
		m.ctrl.Editor().Cancel()
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

// saveTime submits the form values. The form is rebuilt when the editor
// stays open after an invalid value.
func (m *boardModel) saveTime() tea.Cmd {
	out, err := m.ctrl.Editor().Save(context.Background(), m.fields.start, m.fields.end)
	m.settle(out, err)
	if !m.ctrl.Editor().IsOpen() {
		m.closeForm()
		return nil
	}
	title := ""
	if item, ok := m.board.Item(m.ctrl.Editor().PlanningID()); ok {
		title = item.Title
	}
	m.form = timeEditorForm(title, m.fields)
	return m.form.Init()
}

func (m *boardModel) closeForm() {
	m.form = nil
	m.fields = nil
	m.mode = modeBoard
}

// ── task detail ──────────────────────────────────────────────────────────────

func (m *boardModel) openDetail() {
	sel := m.selected()
	if sel == nil || m.app.Tasks == nil {
		return
	}
	d, err := m.app.Tasks.Detail(context.Background(), sel.TaskID)
	if err != nil {
		m.err = err
		return
	}
	m.detail = formatter.FormatTaskDetail(d, max(m.width-8, 40))
	m.mode = modeDetail
}

// ── cursor ───────────────────────────────────────────────────────────────────

func (m *boardModel) focusDate() string {
	w := m.board.Window()
	return w[min(m.col, len(w)-1)]
}

func (m *boardModel) focusList() *calendar.DayList {
	l, _ := m.board.List(m.focusDate())
	return l
}

func (m *boardModel) selected() *domain.PlanningItem {
	l := m.focusList()
	if l == nil || m.row < 0 || m.row >= l.Len() {
		return nil
	}
	return l.Items()[m.row]
}

// focusColumn moves the column cursor, dragging the hover along during a
// gesture.
func (m *boardModel) focusColumn(col int) {
	if col < 0 || col >= m.board.Days() {
		return
	}
	m.col = col
	if m.ctrl.Session().Active() {
		m.enter(calendar.DayZone(m.focusDate()))
		return
	}
	m.clampCursor()
}

// follow puts the cursor on planning id when it is visible.
func (m *boardModel) follow(id string) {
	for c, date := range m.board.Window() {
		l, ok := m.board.List(date)
		if !ok {
			continue
		}
		for r, it := range l.Items() {
			if it.ID == id {
				m.col, m.row = c, r
				return
			}
		}
	}
}

func (m *boardModel) clampCursor() {
	if m.board == nil {
		return
	}
	m.col = max(0, min(m.col, m.board.Days()-1))
	n := 0
	if l := m.focusList(); l != nil {
		n = l.Len()
	}
	m.row = max(0, min(m.row, n-1))
}

func (m *boardModel) columnWidth() int {
	if m.width <= 0 || m.board == nil {
		return formatter.DefaultColumnWidth
	}
	return max(20, min(m.width/m.board.Days(), 40))
}

// ── view ─────────────────────────────────────────────────────────────────────

func (m *boardModel) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(formatter.Header("planboard"))
	b.WriteString("\n")

	if m.board == nil {
		if m.err != nil {
			b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
		}
		b.WriteString(m.help.View(m.keys))
		return b.String()
	}

	if m.mode == modeDetail {
		b.WriteString(formatter.RenderBox("Task", m.detail))
		b.WriteString("\n" + formatter.Dim("esc back") + "\n")
		return b.String()
	}

	window := m.board.Window()
	b.WriteString(formatter.Dim(window[0]+" → "+window[len(window)-1]) + "\n")

	opts := formatter.BoardOptions{
		Today:       m.app.now(),
		ColumnWidth: m.columnWidth(),
		FocusDate:   m.focusDate(),
	}
	if sel := m.selected(); sel != nil && !m.ctrl.Session().Active() {
		opts.Selected = sel.ID
	}
	b.WriteString(formatter.FormatBoard(m.board, opts))
	b.WriteString("\n")

	if s := m.ctrl.Session(); s.Active() {
		title := s.Item.Title
		if title == "" {
			title = "planning " + s.PlanningID
		}
		b.WriteString(formatter.StyleYellow.Render("Dragging "+title) +
			formatter.Dim(" · space drop · x/1-5/c/t/p/d drop on action · esc cancel") + "\n")
	}

	if m.mode == modeTime && m.form != nil {
		x, _ := m.ctrl.Editor().Position()
		menu := formatter.RenderBox("", m.form.View())
		b.WriteString(lipgloss.NewStyle().MarginLeft(x).Render(menu) + "\n")
	}

	if toasts := m.app.notices().Active(m.app.now()); len(toasts) > 0 {
		b.WriteString(formatter.FormatToasts(toasts))
	}
	if m.err != nil {
		b.WriteString(formatter.StyleRed.Render("Error: "+m.err.Error()) + "\n")
	}

	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// runBoardTUI opens the interactive board on the window starting at start.
func runBoardTUI(app *App, start time.Time) error {
	day, _ := time.Parse(domain.DateLayout, start.Format(domain.DateLayout))
	p := tea.NewProgram(newBoardModel(app, day), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

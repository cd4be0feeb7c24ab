package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-note-keeper/internal/app"
	"github.com/MKhiriev/go-note-keeper/internal/service"
	"github.com/MKhiriev/go-note-keeper/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	focusTitle = iota
	focusContent
)

const (
	listPaneWidth  = 28
	defaultWidth   = 100
	contentHeight  = 8
	minInputWidth  = 20
	paneChromeSize = 12
)

type mainLoopModel struct {
	ctx       context.Context
	store     service.NoteStore
	messages  app.Messages
	buildInfo models.AppBuildInfo
	copyText  func(string) error

	snap   models.Snapshot
	cursor int

	titleInput  textinput.Model
	contentArea textarea.Model
	focus       int

	status    string
	statusSeq int
	errMsg    string

	showBuildInfo bool
	width         int
}

func newMainLoopModel(ctx context.Context, store service.NoteStore, messages app.Messages, buildInfo models.AppBuildInfo) mainLoopModel {
	title := textinput.New()
	title.Prompt = ""
	title.Placeholder = messages.MsgTitleRequired

	content := textarea.New()
	content.Placeholder = messages.MsgContentRequired
	content.ShowLineNumbers = false
	content.CharLimit = 0
	content.SetHeight(contentHeight)

	m := mainLoopModel{
		ctx:         ctx,
		store:       store,
		messages:    messages,
		buildInfo:   buildInfo,
		copyText:    clipboard.WriteAll,
		snap:        store.Snapshot(),
		titleInput:  title,
		contentArea: content,
		width:       defaultWidth,
	}
	m.resizeInputs()
	m.syncCursor()
	return m
}

func (m mainLoopModel) Init() tea.Cmd {
	return nil
}

func (m mainLoopModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.resizeInputs()
		return m, nil
	case storeChangedMsg:
		m.snap = m.store.Snapshot()
		return m, nil
	case clearStatusMsg:
		if msg.seq == m.statusSeq {
			m.status = ""
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		if m.snap.Mode.IsComposing() {
			return m.updateInputs(msg)
		}
		return m, nil
	}

	// Global hotkey for every screen.
	if keyMsg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	if m.showBuildInfo {
		if key.Matches(keyMsg, keys.esc, keys.buildInfo) {
			m.showBuildInfo = false
		}
		return m, nil
	}

	if m.snap.Mode.IsComposing() {
		return m.updateComposing(keyMsg)
	}
	return m.updateBrowsing(keyMsg)
}

func (m mainLoopModel) updateBrowsing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.errMsg = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.buildInfo):
		m.showBuildInfo = true
	case key.Matches(msg, keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
		m.selectAtCursor()
	case key.Matches(msg, keys.down):
		if m.cursor < len(m.snap.Notes)-1 {
			m.cursor++
		}
		m.selectAtCursor()
	case key.Matches(msg, keys.enter):
		m.selectAtCursor()
	case key.Matches(msg, keys.newItem):
		m.snap = m.store.BeginCreate()
		return m, m.startCompose()
	case key.Matches(msg, keys.edit):
		m.snap = m.store.BeginEdit()
		if m.snap.Mode.Kind != models.Editing {
			return m, m.setStatus(m.messages.MsgSelectNote)
		}
		return m, m.startCompose()
	case key.Matches(msg, keys.delete):
		if !m.snap.HasSelection() {
			return m, m.setStatus(m.messages.MsgSelectNote)
		}
		m.snap = m.store.DeleteSelected(m.ctx)
		m.syncCursor()
		return m, m.setStatus("Note deleted")
	case key.Matches(msg, keys.copy):
		note, ok := m.snap.Selected()
		if !ok {
			return m, m.setStatus(m.messages.MsgSelectNote)
		}
		if err := m.copyText(note.Content); err != nil {
			m.errMsg = fmt.Sprintf("copy failed: %v", err)
			return m, nil
		}
		return m, m.setStatus("Copied")
	}

	return m, nil
}

func (m mainLoopModel) updateComposing(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.snap = m.store.Cancel()
		m.stopCompose()
		m.syncCursor()
		return m, nil
	case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
		return m, m.toggleFocus()
	case key.Matches(msg, keys.save):
		return m.commit()
	case key.Matches(msg, keys.enter) && m.focus == focusTitle:
		return m, m.toggleFocus()
	}

	return m.updateInputs(msg)
}

func (m mainLoopModel) updateInputs(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	if m.focus == focusTitle {
		m.titleInput, cmd = m.titleInput.Update(msg)
		if v := m.titleInput.Value(); v != m.snap.Draft.Title {
			m.snap = m.store.UpdateDraftTitle(v)
		}
		return m, cmd
	}

	m.contentArea, cmd = m.contentArea.Update(msg)
	if v := m.contentArea.Value(); v != m.snap.Draft.Content {
		m.snap = m.store.UpdateDraftContent(v)
	}
	return m, cmd
}

func (m mainLoopModel) commit() (tea.Model, tea.Cmd) {
	var result models.ValidationResult

	switch m.snap.Mode.Kind {
	case models.Creating:
		m.snap, result = m.store.CommitCreate(m.ctx)
	case models.Editing:
		m.snap, result = m.store.CommitEdit(m.ctx)
	default:
		return m, nil
	}

	if m.snap.Mode.IsComposing() {
		// validation failed; messages are in the snapshot
		return m, nil
	}

	m.stopCompose()
	m.syncCursor()
	if !result.Passed {
		return m, nil
	}
	return m, m.setStatus("Saved")
}

func (m *mainLoopModel) startCompose() tea.Cmd {
	m.titleInput.SetValue(m.snap.Draft.Title)
	m.contentArea.SetValue(m.snap.Draft.Content)
	m.focus = focusTitle
	m.contentArea.Blur()
	return m.titleInput.Focus()
}

func (m *mainLoopModel) stopCompose() {
	m.titleInput.Blur()
	m.contentArea.Blur()
	m.titleInput.Reset()
	m.contentArea.Reset()
	m.focus = focusTitle
}

func (m *mainLoopModel) toggleFocus() tea.Cmd {
	if m.focus == focusTitle {
		m.focus = focusContent
		m.titleInput.Blur()
		return m.contentArea.Focus()
	}
	m.focus = focusTitle
	m.contentArea.Blur()
	return m.titleInput.Focus()
}

func (m *mainLoopModel) selectAtCursor() {
	if len(m.snap.Notes) == 0 {
		return
	}
	m.snap = m.store.SelectNote(m.snap.Notes[m.cursor].ID)
}

// syncCursor moves the cursor onto the selected note and keeps it in range.
func (m *mainLoopModel) syncCursor() {
	if idx := m.snap.Notes.IndexOf(m.snap.Selection); idx >= 0 {
		m.cursor = idx
	}
	if m.cursor >= len(m.snap.Notes) {
		m.cursor = len(m.snap.Notes) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

func (m *mainLoopModel) setStatus(text string) tea.Cmd {
	m.statusSeq++
	m.status = text
	seq := m.statusSeq
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{seq: seq}
	})
}

func (m *mainLoopModel) resizeInputs() {
	w := m.width - listPaneWidth - paneChromeSize
	if w < minInputWidth {
		w = minInputWidth
	}
	m.titleInput.Width = w
	m.contentArea.SetWidth(w)
}

func (m mainLoopModel) View() string {
	if m.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(m.buildInfo))
	}

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		listPaneStyle.Width(listPaneWidth).Render(m.viewList()),
		detailPaneStyle.Render(m.viewDetail()),
	)

	if overlay := (errorOverlayModel{messages: m.snap.ValidationErrors}).View(); overlay != "" {
		body += "\n\n" + overlay
	}
	if m.status != "" {
		body += "\n\n" + helpStyle.Render(m.status)
	}
	if m.errMsg != "" {
		body += "\n\n" + errorStyle.Render("Error: "+m.errMsg)
	}

	return appStyle.Render(renderPage("NOTES", body, m.hotKeys()))
}

func (m mainLoopModel) viewList() string {
	if len(m.snap.Notes) == 0 {
		return "-"
	}

	lines := make([]string, 0, len(m.snap.Notes))
	for i, note := range m.snap.Notes {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		line := cursor + fitText(firstLine(note.Title), listPaneWidth-3)
		if note.ID == m.snap.Selection {
			line = activeItemStyle.Render(line)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m mainLoopModel) viewDetail() string {
	if m.snap.Mode.Kind == models.Creating {
		return m.viewForm(m.messages.MsgNewNote, m.messages.MsgSave)
	}
	if len(m.snap.Notes) == 0 {
		return m.messages.MsgNoNotes
	}

	note, ok := m.snap.Selected()
	if !ok {
		return m.messages.MsgSelectNote
	}
	if m.snap.Mode.Kind == models.Editing {
		return m.viewForm(m.messages.MsgEditNote, m.messages.MsgUpdate)
	}

	var b strings.Builder
	b.WriteString(helpStyle.Render("[e] " + m.messages.MsgEdit + "  [ctrl+d] " + m.messages.MsgDelete))
	b.WriteString("\n\n")
	b.WriteString(titleStyle.Render(note.Title))
	b.WriteString("\n\n")
	b.WriteString(note.Content)
	return b.String()
}

func (m mainLoopModel) viewForm(heading, submit string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(heading))
	b.WriteString("\n\n")
	b.WriteString(m.titleInput.View())
	b.WriteString("\n\n")
	b.WriteString(m.contentArea.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("[ctrl+s] " + submit))
	return b.String()
}

func (m mainLoopModel) hotKeys() string {
	if m.snap.Mode.IsComposing() {
		return "tab: next field │ ctrl+s: save │ esc: cancel"
	}
	return "n: new │ ↑/↓/enter: select │ e: edit │ ctrl+d: delete │ c: copy │ v: about │ q: quit"
}

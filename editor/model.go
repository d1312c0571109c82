package editor

import (
	"sync/atomic"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/asifhabib/mentions/mention"
)

var schedulerIDs atomic.Int64

// Config configures the input component.
type Config struct {
	// Initial text.
	Text string

	// Placeholder is shown while the field is empty.
	Placeholder string

	// Width in cells for rendering. Zero means unbounded.
	Width int

	Style  Style
	KeyMap KeyMap

	// Forwarded to the mention listener.
	Triggers               []string
	SpaceAfterMention      bool
	SearchSpacesInMentions bool
	CooldownInterval       time.Duration

	// Candidates produces the picker entries for a filter string and
	// trigger. Nil disables the popup.
	Candidates func(filter, trigger string) []Candidate

	// OnShow and OnHide observe picker visibility changes.
	OnShow func(filter, trigger string)
	OnHide func()

	// Delegate receives the listener's forwarded events, including the
	// text-changed notification after every applied edit.
	Delegate mention.Delegate
}

// uiState is the picker state shared between the model and the listener
// callbacks.
type uiState struct {
	popup   Popup
	visible bool
}

// Model is a Bubble Tea component for mention-aware text input.
type Model struct {
	cfg      Config
	field    *field
	listener *mention.Listener
	sched    *scheduler
	ui       *uiState

	focused bool
}

// New builds the component. The only error condition is the mention
// listener rejecting its configuration.
func New(cfg Config) (Model, error) {
	if isZeroKeyMap(cfg.KeyMap) {
		cfg.KeyMap = DefaultKeyMap()
	}

	defaultAttrs := mention.Attributes{"mention": false}
	mentionAttrs := func(mention.Entity) mention.Attributes {
		return mention.Attributes{"mention": true}
	}

	m := Model{
		cfg:     cfg,
		field:   newField(cfg.Text, defaultAttrs),
		sched:   &scheduler{id: schedulerIDs.Add(1)},
		ui:      &uiState{popup: NewPopup()},
		focused: true,
	}

	ui := m.ui
	// The listener is wired after construction; callbacks read it through
	// this reference.
	ref := &struct{ l *mention.Listener }{}

	listener, err := mention.New(m.field, mention.Config{
		Triggers:               cfg.Triggers,
		SpaceAfterMention:      cfg.SpaceAfterMention,
		SearchSpacesInMentions: cfg.SearchSpacesInMentions,
		CooldownInterval:       cfg.CooldownInterval,
		Delegate:               cfg.Delegate,
		DefaultAttributes:      defaultAttrs,
		MentionAttributes:      mentionAttrs,
		Scheduler:              m.sched,
		ShowMentions: func(filter, trigger string) {
			var items []Candidate
			if cfg.Candidates != nil {
				items = cfg.Candidates(filter, trigger)
			}
			ui.popup.SetCandidates(items)
			ui.visible = len(items) > 0
			if cfg.OnShow != nil {
				cfg.OnShow(filter, trigger)
			}
		},
		HideMentions: func() {
			ui.visible = false
			ui.popup.Clear()
			if cfg.OnHide != nil {
				cfg.OnHide()
			}
		},
		HandleMentionOnReturn: func() bool {
			if !ui.visible {
				return false
			}
			c, ok := ui.popup.Selected()
			if !ok || c.Entity == nil {
				return false
			}
			return ref.l.AddMention(c.Entity)
		},
	})
	if err != nil {
		return Model{}, err
	}
	ref.l = listener
	m.listener = listener
	return m, nil
}

// Listener exposes the underlying mention listener for host bookkeeping,
// e.g. reading committed mentions or seeding existing ones.
func (m Model) Listener() *mention.Listener { return m.listener }

// Value returns the field contents.
func (m Model) Value() string { return m.field.Text() }

// PopupOpen reports whether the candidate picker is showing.
func (m Model) PopupOpen() bool { return m.ui.visible && m.ui.popup.HasCandidates() }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case cooldownMsg:
		m.sched.deliver(msg)
		return m, m.sched.takeCmd()
	case tea.KeyMsg:
		if !m.focused {
			return m, nil
		}
		return m.updateKey(msg)
	default:
		return m, nil
	}
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	km := m.cfg.KeyMap

	// Paste always inserts literal text.
	if msg.Type == tea.KeyRunes && msg.Paste && len(msg.Runes) > 0 {
		m.replaceSelection(string(msg.Runes))
		return m, m.sched.takeCmd()
	}

	if m.PopupOpen() {
		switch {
		case key.Matches(msg, km.Next):
			m.ui.popup.Next()
			return m, nil
		case key.Matches(msg, km.Prev):
			m.ui.popup.Prev()
			return m, nil
		case key.Matches(msg, km.Dismiss):
			m.ui.visible = false
			m.ui.popup.Clear()
			return m, nil
		}
	}

	switch {
	case key.Matches(msg, km.Left):
		m.moveCaret(-1)
	case key.Matches(msg, km.Right):
		m.moveCaret(1)
	case key.Matches(msg, km.Home):
		m.setCaret(0)
	case key.Matches(msg, km.End):
		m.setCaret(len([]rune(m.field.Text())))
	case key.Matches(msg, km.Backspace):
		m.deleteBackward()
	case key.Matches(msg, km.Delete):
		m.deleteForward()
	case key.Matches(msg, km.Accept):
		m.replaceSelection("\n")
	default:
		if msg.Type == tea.KeySpace {
			m.replaceSelection(" ")
		} else if msg.Type == tea.KeyRunes && len(msg.Runes) > 0 && !msg.Alt {
			m.replaceSelection(string(msg.Runes))
		}
	}
	return m, m.sched.takeCmd()
}

// replaceSelection routes an edit through the listener and applies it only
// when the listener does not handle it itself.
func (m *Model) replaceSelection(s string) {
	edit := m.field.Selection()
	before := m.field.Text()
	if m.listener.ShouldChangeText(edit, s) {
		m.field.Replace(edit, s)
		m.field.SetSelection(mention.Range{Location: edit.Location + len([]rune(s))})
	}
	m.notifyAfterEdit(before)
}

func (m *Model) deleteBackward() {
	sel := m.field.Selection()
	edit := sel
	if edit.IsEmpty() {
		if edit.Location == 0 {
			return
		}
		edit = mention.Range{Location: edit.Location - 1, Length: 1}
	}
	before := m.field.Text()
	if m.listener.ShouldChangeText(edit, "") {
		m.field.Replace(edit, "")
		m.field.SetSelection(mention.Range{Location: edit.Location})
	}
	m.notifyAfterEdit(before)
}

func (m *Model) deleteForward() {
	sel := m.field.Selection()
	edit := sel
	if edit.IsEmpty() {
		if edit.Location >= len([]rune(m.field.Text())) {
			return
		}
		edit = mention.Range{Location: edit.Location, Length: 1}
	}
	before := m.field.Text()
	if m.listener.ShouldChangeText(edit, "") {
		m.field.Replace(edit, "")
		m.field.SetSelection(mention.Range{Location: edit.Location})
	}
	m.notifyAfterEdit(before)
}

// notifyAfterEdit reports the text-changed event when an edit landed —
// either applied here or by the listener itself — then the selection.
func (m *Model) notifyAfterEdit(before string) {
	if m.field.Text() != before {
		m.listener.DidChangeText()
	}
	m.listener.DidChangeSelection(m.field.Selection())
}

func (m *Model) moveCaret(delta int) {
	m.setCaret(m.field.Selection().Location + delta)
}

func (m *Model) setCaret(loc int) {
	m.field.SetSelection(mention.Range{Location: loc})
	m.listener.DidChangeSelection(m.field.Selection())
}

func isZeroKeyMap(km KeyMap) bool {
	return km.Left.Keys() == nil && km.Right.Keys() == nil &&
		km.Backspace.Keys() == nil && km.Accept.Keys() == nil
}

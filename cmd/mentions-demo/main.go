package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	overlay "github.com/rmhubbert/bubbletea-overlay"

	"github.com/asifhabib/mentions/editor"
)

// demoConfig is the optional TOML file passed via -config.
type demoConfig struct {
	Triggers          []string `toml:"triggers"`
	CooldownMS        int      `toml:"cooldown_ms"`
	SpaceAfterMention bool     `toml:"space_after_mention"`
	SearchSpaces      bool     `toml:"search_spaces"`
	People            []person `toml:"people"`
}

type person struct {
	Name  string `toml:"name"`
	Title string `toml:"title"`
}

func (p person) MentionName() string { return p.Name }

func defaultConfig() demoConfig {
	return demoConfig{
		Triggers:          []string{"@"},
		CooldownMS:        300,
		SpaceAfterMention: true,
		People: []person{
			{Name: "Ada Lovelace", Title: "analyst"},
			{Name: "Alan Turing", Title: "logician"},
			{Name: "Grace Hopper", Title: "rear admiral"},
			{Name: "Katherine Johnson", Title: "mathematician"},
			{Name: "Margaret Hamilton", Title: "software lead"},
		},
	}
}

func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return demoConfig{}, fmt.Errorf("load %s: %w", path, err)
	}
	if len(cfg.Triggers) == 0 {
		cfg.Triggers = []string{"@"}
	}
	return cfg, nil
}

type model struct {
	editor editor.Model
	width  int
	height int
	status string
}

func newModel(cfg demoConfig) (model, error) {
	people := cfg.People

	ed, err := editor.New(editor.Config{
		Placeholder:            "Write a message, @ to mention someone…",
		Style:                  demoStyle(),
		Triggers:               cfg.Triggers,
		SpaceAfterMention:      cfg.SpaceAfterMention,
		SearchSpacesInMentions: cfg.SearchSpaces,
		CooldownInterval:       time.Duration(cfg.CooldownMS) * time.Millisecond,
		Candidates: func(filter, trigger string) []editor.Candidate {
			var out []editor.Candidate
			needle := strings.ToLower(filter)
			for _, p := range people {
				if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
					continue
				}
				out = append(out, editor.Candidate{
					Label:  p.Name,
					Detail: p.Title,
					Entity: p,
				})
			}
			return out
		},
	})
	if err != nil {
		return model{}, err
	}
	return model{editor: ed.Focus(), status: "ready"}, nil
}

// demoStyle tweaks the default palette for light terminals, where the
// default placeholder grey is close to unreadable.
func demoStyle() editor.Style {
	st := editor.DefaultStyle()
	if !termenv.NewOutput(os.Stdout).HasDarkBackground() {
		st.Placeholder = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		st.Mention = lipgloss.NewStyle().Foreground(lipgloss.Color("27")).Bold(true)
	}
	return st
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	m.status = statusLine(m.editor)
	return m, cmd
}

func (m model) View() string {
	base := strings.Join([]string{
		"mentions demo — type @ to mention, enter to pick, esc to dismiss, ctrl+c to quit",
		"",
		"> " + m.editor.View(),
		"",
		m.status,
	}, "\n")

	if !m.editor.PopupOpen() {
		return base
	}
	return overlay.Composite(
		m.editor.PopupView(),
		base,
		overlay.Left,
		overlay.Top,
		2,
		3,
	)
}

func statusLine(ed editor.Model) string {
	mentions := ed.Listener().Mentions()
	if len(mentions) == 0 {
		return "no mentions yet"
	}
	names := make([]string, 0, len(mentions))
	for _, mn := range mentions {
		names = append(names, mn.Text)
	}
	return fmt.Sprintf("%d mention(s): %s", len(names), strings.Join(names, ", "))
}

func main() {
	configPath := flag.String("config", "", "path to a TOML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	m, err := newModel(cfg)
	if err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

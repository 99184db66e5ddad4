// Package ui is the interactive editing surface: an icon list, the selected
// icon's color inventory, filter adjustment and variant management. All
// color math and rewriting happens in the editor session; the UI only raises
// events and re-renders whatever the session returns, so calling it many
// times per second during a drag is safe.
package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kastheco/iconforge/color"
	"github.com/kastheco/iconforge/config"
	"github.com/kastheco/iconforge/editor"
	"github.com/kastheco/iconforge/library"
	"github.com/kastheco/iconforge/variants"
)

// focus marks which pane receives navigation keys.
type focus int

const (
	focusIcons focus = iota
	focusColors
)

// Model is the bubbletea model for `iconforge edit`.
type Model struct {
	store   variants.Store
	libName string
	icons   []library.Icon
	steps   config.FilterConfig

	// sessions are opened lazily, one per visited icon, and kept so edits
	// survive switching back and forth.
	sessions map[string]*editor.Session

	iconIdx  int
	colorIdx int
	focused  focus

	pending color.Settings

	naming    bool
	nameInput textinput.Model
	recolor   bool
	hexInput  textinput.Model

	status string
	width  int
	height int
}

// New builds the editor model over a scanned icon list.
func New(store variants.Store, libName string, icons []library.Icon, steps config.FilterConfig) *Model {
	name := textinput.New()
	name.Placeholder = "variant name"
	name.CharLimit = 64

	hex := textinput.New()
	hex.Placeholder = "#rrggbb"
	hex.CharLimit = 32

	return &Model{
		store:     store,
		libName:   libName,
		icons:     icons,
		steps:     steps,
		sessions:  make(map[string]*editor.Session),
		pending:   color.Identity(),
		nameInput: name,
		hexInput:  hex,
	}
}

func (m *Model) Init() tea.Cmd { return nil }

// session returns the editing session for the selected icon, opening one on
// first visit.
func (m *Model) session() (*editor.Session, error) {
	icon := m.icons[m.iconIdx]
	if s, ok := m.sessions[icon.Name]; ok {
		return s, nil
	}
	markup, err := library.Read(icon)
	if err != nil {
		return nil, err
	}
	s, err := editor.NewSession(m.store, m.libName, icon.Name, markup)
	if err != nil {
		return nil, err
	}
	m.sessions[icon.Name] = s
	return s, nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		if m.naming || m.recolor {
			return m.updateInput(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

// updateInput routes keys to whichever text prompt is open.
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.naming, m.recolor = false, false
		return m, nil
	case "enter":
		s, err := m.session()
		if err != nil {
			return m.fail(err)
		}
		if m.naming {
			name := strings.TrimSpace(m.nameInput.Value())
			if name != "" {
				s.SaveVariant(name)
				m.status = fmt.Sprintf("saved variant %q", name)
			}
			m.naming = false
		} else {
			value := strings.TrimSpace(m.hexInput.Value())
			if value != "" {
				entries := s.Entries()
				if m.colorIdx < len(entries) {
					e := entries[m.colorIdx]
					s.CommitColor(e.Color, value, e.Kind)
					m.status = fmt.Sprintf("%s -> %s", e.Color, color.Normalize(value))
				}
			}
			m.recolor = false
		}
		return m, nil
	}
	var cmd tea.Cmd
	if m.naming {
		m.nameInput, cmd = m.nameInput.Update(msg)
	} else {
		m.hexInput, cmd = m.hexInput.Update(msg)
	}
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s, err := m.session()
	if err != nil {
		return m.fail(err)
	}

	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit

	case "tab":
		if m.focused == focusIcons {
			m.focused = focusColors
		} else {
			m.focused = focusIcons
		}

	case "up", "k":
		if m.focused == focusIcons && m.iconIdx > 0 {
			m.iconIdx--
			m.colorIdx = 0
		} else if m.focused == focusColors && m.colorIdx > 0 {
			m.colorIdx--
		}

	case "down", "j":
		if m.focused == focusIcons && m.iconIdx < len(m.icons)-1 {
			m.iconIdx++
			m.colorIdx = 0
		} else if m.focused == focusColors && m.colorIdx < len(s.Entries())-1 {
			m.colorIdx++
		}

	// filter adjustment: every keypress re-enters the pending settings;
	// the session stays correct at any repeat rate.
	case "h":
		m.adjustFilter(s, -m.steps.HueStep, 0, 0)
	case "H":
		m.adjustFilter(s, m.steps.HueStep, 0, 0)
	case "s":
		m.adjustFilter(s, 0, -m.steps.SaturationStep, 0)
	case "S":
		m.adjustFilter(s, 0, m.steps.SaturationStep, 0)
	case "b":
		m.adjustFilter(s, 0, 0, -m.steps.BrightnessStep)
	case "B":
		m.adjustFilter(s, 0, 0, m.steps.BrightnessStep)

	case "enter":
		if s.State() == editor.StateFilterPending {
			s.CommitFilter()
			m.pending = color.Identity()
			m.status = "filter committed"
		}

	case "e":
		est := s.EstimateFilter()
		m.pending = est
		s.PreviewFilter(est)
		m.status = fmt.Sprintf("estimated hue %d° sat %d%% bright %d%%", est.Hue, est.Saturation, est.Brightness)

	case "c":
		if len(s.Entries()) > 0 {
			m.recolor = true
			m.hexInput.SetValue("")
			m.hexInput.Focus()
		}

	case "v":
		m.naming = true
		m.nameInput.SetValue("")
		m.nameInput.Focus()

	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		idx, _ := strconv.Atoi(msg.String())
		s.ApplyVariant(idx - 1)
		if name := s.AppliedVariant(); name != "" {
			m.status = fmt.Sprintf("applied variant %q", name)
		}

	case "g":
		s.SaveSuggestions()
		m.status = "saved suggested variants (darker/lighter/complementary)"

	case "x":
		p := s.Profile()
		if len(p.Variants) > 0 {
			s.DeleteVariant(len(p.Variants) - 1)
			m.status = "deleted last variant"
		}

	case "d":
		if name := s.AppliedVariant(); name != "" {
			s.SetDefaultVariant(name)
			m.status = fmt.Sprintf("default variant: %q", name)
		} else {
			s.SetDefaultVariant("")
			m.status = "default variant: baseline"
		}

	case "r":
		s.ApplyBaseline()
		m.pending = color.Identity()
		m.status = "restored baseline"

	case "o":
		s.ResetToOriginal()
		m.pending = color.Identity()
		m.status = "reset to original; baseline recaptured"

	case "w":
		if err := library.Write(m.icons[m.iconIdx], s.Markup()); err != nil {
			return m.fail(err)
		}
		if err := s.Flush(); err != nil {
			return m.fail(err)
		}
		m.status = "written and flushed"
	}

	return m, nil
}

func (m *Model) adjustFilter(s *editor.Session, dh, ds, db int) {
	m.pending.Hue += dh
	m.pending.Saturation += ds
	m.pending.Brightness += db
	m.pending = m.pending.Clamp()
	s.PreviewFilter(m.pending)
}

func (m *Model) fail(err error) (tea.Model, tea.Cmd) {
	m.status = errorStyle.Render(err.Error())
	return m, nil
}

func (m *Model) View() string {
	s, err := m.session()
	if err != nil {
		return errorStyle.Render(err.Error())
	}

	icons := m.viewIcons()
	detail := m.viewDetail(s)

	body := lipgloss.JoinHorizontal(lipgloss.Top, icons, detail)
	view := titleStyle.Render("iconforge") + "\n" + body + "\n" + m.viewStatus(s)
	return FillBackground(view, m.height)
}

func (m *Model) viewIcons() string {
	var b strings.Builder
	for i, icon := range m.icons {
		line := icon.Name
		if i == m.iconIdx {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteByte('\n')
	}
	style := paneStyle
	if m.focused == focusIcons {
		style = focusedPaneStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) viewDetail(s *editor.Session) string {
	var b strings.Builder

	b.WriteString(mutedStyle.Render("colors") + "\n")
	for i, e := range s.Entries() {
		line := fmt.Sprintf("%s  %s x%d", swatch(e.Color), e.Kind, e.Count)
		if m.focused == focusColors && i == m.colorIdx {
			b.WriteString(selectedItemStyle.Render(line))
		} else {
			b.WriteString(itemStyle.Render(line))
		}
		b.WriteByte('\n')
	}

	p := s.Profile()
	b.WriteString("\n" + mutedStyle.Render("variants") + "\n")
	if len(p.Variants) == 0 {
		b.WriteString(itemStyle.Render(mutedStyle.Render("(none saved)")) + "\n")
	}
	for i, v := range p.Variants {
		marker := " "
		if v.Name == p.DefaultVariant {
			marker = "*"
		}
		b.WriteString(itemStyle.Render(fmt.Sprintf("%d%s %s", i+1, marker, v.Name)) + "\n")
	}

	if s.State() == editor.StateFilterPending {
		f := s.PendingFilter()
		b.WriteString("\n" + pendingStyle.Render(
			fmt.Sprintf("pending filter: hue %+d° sat %d%% bright %d%% (enter to commit)",
				f.Hue, f.Saturation, f.Brightness)) + "\n")
	}

	if m.naming {
		b.WriteString("\nsave variant as: " + m.nameInput.View() + "\n")
	}
	if m.recolor {
		b.WriteString("\nnew color: " + m.hexInput.View() + "\n")
	}

	style := paneStyle
	if m.focused == focusColors {
		style = focusedPaneStyle
	}
	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m *Model) viewStatus(s *editor.Session) string {
	state := string(s.State())
	if name := s.AppliedVariant(); name != "" {
		state += ":" + name
	}
	hints := "tab panes · h/H s/S b/B filter · enter commit · e estimate · c recolor · v variant · g suggest · 1-9 apply · r baseline · o reset · w write · q quit"
	line := fmt.Sprintf("[%s] %s", state, m.status)
	return statusStyle.Render(line) + "\n" + mutedStyle.Render(hints)
}

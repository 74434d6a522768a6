package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/optimalsteep/teagraph/pkg/recommend"
)

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#5FAF5F")).
			MarginLeft(2).
			MarginTop(1)

	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#87D7FF")).
			MarginLeft(2)

	resultStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#5FAF5F")).
			Padding(1, 2).
			MarginLeft(2).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF5F5F")).
			Bold(true)

	noteStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#D7AF5F"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			MarginLeft(2)
)

type view int

const (
	menuView view = iota
	promptView
	resultView
)

type actionID int

const (
	actRecommend actionID = iota
	actFindTeas
	actPaths
	actListTeas
	actExplore
	actCompare
)

type menuItem struct {
	name   string
	detail string
	action actionID
}

func (i menuItem) Title() string       { return i.name }
func (i menuItem) Description() string { return i.detail }
func (i menuItem) FilterValue() string { return i.name }

// prompts per action, asked one at a time. A "(optional)" prompt accepts an
// empty answer.
var actionPrompts = map[actionID][]string{
	actRecommend: {"Enter a health concern"},
	actFindTeas:  {"First health concern", "Second health concern", "Taste preference (optional)"},
	actPaths:     {"Enter a health concern", "First tea or category", "Second tea or category (optional)"},
	actListTeas:  nil,
	actExplore:   {"Enter a characteristic (taste or benefit)"},
	actCompare:   {"First tea", "Second tea", "Attribute (caffeine, origin, taste)"},
}

type keyMap struct {
	Enter key.Binding
	Back  key.Binding
	Quit  key.Binding
}

var keys = keyMap{
	Enter: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "select"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back to menu"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
}

type model struct {
	engine *recommend.Engine
	limit  int

	currentView view
	menu        list.Model
	input       textinput.Model

	action  actionID
	prompts []string
	answers []string

	result string
	width  int
	height int
}

func initialModel(engine *recommend.Engine, limit int) model {
	items := []list.Item{
		menuItem{"Recommend teas", "Find teas for a single health concern", actRecommend},
		menuItem{"Find teas for two concerns", "Teas helping with both, optionally by taste", actFindTeas},
		menuItem{"Shortest paths", "Paths from a concern to teas or categories", actPaths},
		menuItem{"Discover teas", "List every tea in the catalog", actListTeas},
		menuItem{"Explore by characteristic", "Teas matching a taste or benefit", actExplore},
		menuItem{"Compare two teas", "Compare caffeine, origin or taste", actCompare},
	}

	menu := list.New(items, list.NewDefaultDelegate(), 0, 0)
	menu.Title = "The Optimal Steep"
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)

	input := textinput.New()
	input.CharLimit = 100
	input.Width = 50

	return model{
		engine:      engine,
		limit:       limit,
		currentView: menuView,
		menu:        menu,
		input:       input,
	}
}

func (m model) Init() tea.Cmd {
	return textinput.Blink
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.menu.SetSize(msg.Width-4, msg.Height-6)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Quit):
			return m, tea.Quit

		case key.Matches(msg, keys.Back):
			m.currentView = menuView
			m.input.Blur()

		case key.Matches(msg, keys.Enter):
			switch m.currentView {
			case menuView:
				if item, ok := m.menu.SelectedItem().(menuItem); ok {
					return m.startAction(item.action)
				}
			case promptView:
				m.answers = append(m.answers, m.input.Value())
				m.input.SetValue("")
				if len(m.answers) == len(m.prompts) {
					m.result = m.runAction()
					m.currentView = resultView
					m.input.Blur()
				}
			case resultView:
				m.currentView = menuView
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.currentView {
	case menuView:
		m.menu, cmd = m.menu.Update(msg)
	case promptView:
		m.input, cmd = m.input.Update(msg)
	}
	return m, cmd
}

func (m model) startAction(action actionID) (tea.Model, tea.Cmd) {
	m.action = action
	m.prompts = actionPrompts[action]
	m.answers = nil

	if len(m.prompts) == 0 {
		m.result = m.runAction()
		m.currentView = resultView
		return m, nil
	}

	m.currentView = promptView
	m.input.Focus()
	return m, textinput.Blink
}

func (m *model) runAction() string {
	switch m.action {
	case actRecommend:
		return m.renderRecommendations(m.answers[0])
	case actFindTeas:
		return m.renderTeaMatch(m.answers[0], m.answers[1], m.answers[2])
	case actPaths:
		return m.renderPaths(m.answers[0], m.answers[1], m.answers[2])
	case actListTeas:
		return m.renderTeaList()
	case actExplore:
		return m.renderExplore(m.answers[0])
	case actCompare:
		return m.renderComparison(m.answers[0], m.answers[1], m.answers[2])
	default:
		return errorStyle.Render("unknown action")
	}
}

func (m *model) renderRecommendations(concern string) string {
	recs, err := m.engine.RecommendForConcern(concern, m.limit)
	if err != nil {
		return queryError(err, concern)
	}
	if len(recs) == 0 {
		return noteStyle.Render(fmt.Sprintf("No teas connected to %q.", concern))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Recommended teas for %q:\n\n", concern)
	for _, rec := range recs {
		fmt.Fprintf(&b, "  %s  (%d hops: %s)\n",
			titleCase(rec.Tea), rec.Hops(), strings.Join(rec.Path, " -> "))
	}
	return b.String()
}

func (m *model) renderTeaMatch(concern1, concern2, taste string) string {
	match, err := m.engine.FindTeas([]string{concern1, concern2}, taste)
	if err != nil {
		return queryError(err, concern1+", "+concern2)
	}
	if len(match.Teas) == 0 {
		return noteStyle.Render("No teas help with both concerns.")
	}

	var b strings.Builder
	if taste != "" && !match.TasteMatched {
		b.WriteString(noteStyle.Render(
			fmt.Sprintf("No exact taste match for %q; showing all matches.", taste)))
		b.WriteString("\n\n")
	}
	b.WriteString("Teas matching both concerns:\n\n")
	for _, t := range match.Teas {
		fmt.Fprintf(&b, "  %s\n", titleCase(t))
	}
	return b.String()
}

func (m *model) renderPaths(concern, target1, target2 string) string {
	targets := []string{target1}
	if strings.TrimSpace(target2) != "" {
		targets = append(targets, target2)
	}
	reports, err := m.engine.PathsBetween(concern, targets)
	if err != nil {
		return queryError(err, concern)
	}

	var b strings.Builder
	for _, report := range reports {
		if report.Status != recommend.PathFound {
			fmt.Fprintf(&b, "%s: %s\n", titleCase(report.Target), report.Status)
			continue
		}
		for _, path := range report.Paths {
			fmt.Fprintf(&b, "%s: %s\n", titleCase(report.Target), strings.Join(path, " -> "))
		}
	}
	return b.String()
}

func (m *model) renderTeaList() string {
	teas := m.engine.ListTeas()
	var b strings.Builder
	b.WriteString("All available teas:\n\n")
	for _, t := range teas {
		fmt.Fprintf(&b, "  %s\n", titleCase(t))
	}
	return b.String()
}

func (m *model) renderExplore(keyword string) string {
	matches := m.engine.ExploreByCharacteristic(keyword)
	if len(matches) == 0 {
		return noteStyle.Render(fmt.Sprintf("No teas found matching %q.", keyword))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Teas matching %q:\n\n", keyword)
	for _, name := range recommend.FlattenTeas(matches) {
		fmt.Fprintf(&b, "  %s\n", titleCase(name))
	}
	return b.String()
}

func (m *model) renderComparison(tea1, tea2, attribute string) string {
	cmp, err := m.engine.CompareTeas(tea1, tea2, attribute)
	if err != nil {
		return queryError(err, tea1+" vs "+tea2)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Comparison by %s:\n\n", cmp.Attribute)
	fmt.Fprintf(&b, "  %s: %s\n", titleCase(cmp.Tea1), cmp.Value1)
	fmt.Fprintf(&b, "  %s: %s\n", titleCase(cmp.Tea2), cmp.Value2)
	return b.String()
}

func queryError(err error, subject string) string {
	switch {
	case errors.Is(err, recommend.ErrConcernNotFound):
		return errorStyle.Render(fmt.Sprintf("No matching health concern for %q.", subject))
	case errors.Is(err, recommend.ErrTeaNotFound):
		return errorStyle.Render(fmt.Sprintf("Could not find both teas (%s).", subject))
	case errors.Is(err, recommend.ErrNoComparisonData):
		return noteStyle.Render("One or both teas have no data for that attribute.")
	default:
		return errorStyle.Render(err.Error())
	}
}

func (m model) View() string {
	switch m.currentView {
	case promptView:
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("The Optimal Steep"),
			promptStyle.Render(m.prompts[len(m.answers)]),
			"  "+m.input.View(),
			helpStyle.Render("enter: confirm - esc: back - ctrl+c: quit"),
		)
	case resultView:
		return lipgloss.JoinVertical(lipgloss.Left,
			titleStyle.Render("The Optimal Steep"),
			resultStyle.Render(m.result),
			helpStyle.Render("enter/esc: back to menu - ctrl+c: quit"),
		)
	default:
		return "\n" + m.menu.View()
	}
}

// titleCase renders a normalized node key for display.
func titleCase(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}

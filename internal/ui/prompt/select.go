package prompt

import (
	"os"

	"charm.land/bubbles/v2/list"
	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"

	"github.com/raphi011/git-browse/internal/ui/styles"
)

// Option is one selectable entry.
type Option struct {
	// Label is the value returned on selection, e.g. a remote name.
	Label string

	// Detail is shown next to the label, e.g. the remote URL.
	Detail string
}

// SelectResult holds the result of a selection prompt.
type SelectResult struct {
	Value     string
	Index     int
	Cancelled bool
}

type listItem struct {
	opt   Option
	index int
}

func (i listItem) Title() string       { return i.opt.Label }
func (i listItem) Description() string { return i.opt.Detail }
func (i listItem) FilterValue() string { return i.opt.Label + " " + i.opt.Detail }

type selectModel struct {
	list      list.Model
	done      bool
	cancelled bool
	selected  int
}

func newSelectModel(title string, options []Option, initial int) selectModel {
	items := make([]list.Item, len(options))
	for i, opt := range options {
		items[i] = listItem{opt: opt, index: i}
	}

	delegate := list.NewDefaultDelegate()
	delegate.SetSpacing(0)
	delegate.Styles.SelectedTitle = styles.AccentStyle
	delegate.Styles.NormalDesc = styles.MutedStyle
	delegate.Styles.SelectedDesc = styles.MutedStyle

	l := list.New(items, delegate, 72, min(2*len(options)+6, 20))
	l.Title = title
	l.Styles.Title = styles.TitleStyle
	l.SetShowStatusBar(false)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(len(options) > 5)
	l.DisableQuitKeybindings()
	if initial > 0 && initial < len(options) {
		l.Select(initial)
	}

	return selectModel{list: l, selected: -1}
}

func (m selectModel) Init() tea.Cmd {
	return nil
}

func (m selectModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyPressMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch msg.String() {
		case "enter":
			if item, ok := m.list.SelectedItem().(listItem); ok {
				m.selected = item.index
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc", "q":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m selectModel) View() tea.View {
	if m.done {
		return tea.NewView("")
	}
	return tea.NewView(m.list.View())
}

func (m selectModel) result(options []Option) SelectResult {
	if m.cancelled || m.selected < 0 || m.selected >= len(options) {
		return SelectResult{Cancelled: true}
	}
	return SelectResult{Value: options[m.selected].Label, Index: m.selected}
}

// Select shows a list prompt on stderr with the cursor on initial and
// returns the user's choice.
func Select(title string, options []Option, initial int) (SelectResult, error) {
	if len(options) == 0 {
		return SelectResult{Cancelled: true}, nil
	}

	p := tea.NewProgram(newSelectModel(title, options, initial),
		tea.WithOutput(os.Stderr),
		tea.WithColorProfile(colorprofile.Detect(os.Stderr, os.Environ())),
	)
	finalModel, err := p.Run()
	if err != nil {
		return SelectResult{}, err
	}
	return finalModel.(selectModel).result(options), nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/briandowns/spinner"
	"github.com/charmbracelet/lipgloss"

	"termfolio/internal/model"
	"termfolio/internal/report"
)

// spinnerCharset is the briandowns/spinner set shown while the banner types.
const spinnerCharset = 14

type palette struct {
	accent lipgloss.Color
	second lipgloss.Color
	text   lipgloss.Color
	dim    lipgloss.Color
	err    lipgloss.Color
	border lipgloss.Color
	tabBg  lipgloss.Color
}

var (
	darkPalette = palette{
		accent: lipgloss.Color("#A78BFA"), // Purple
		second: lipgloss.Color("#22D3EE"), // Cyan
		text:   lipgloss.Color("#FAFAFA"),
		dim:    lipgloss.Color("240"),
		err:    lipgloss.Color("#FF5F87"),
		border: lipgloss.Color("63"),
		tabBg:  lipgloss.Color("#7D56F4"),
	}
	lightPalette = palette{
		accent: lipgloss.Color("#6D28D9"),
		second: lipgloss.Color("#0E7490"),
		text:   lipgloss.Color("#1F2937"),
		dim:    lipgloss.Color("245"),
		err:    lipgloss.Color("#BE123C"),
		border: lipgloss.Color("#A78BFA"),
		tabBg:  lipgloss.Color("#DDD6FE"),
	}

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)
)

func (m AppModel) palette() palette {
	if m.Light {
		return lightPalette
	}
	return darkPalette
}

func (m AppModel) size() (int, int) {
	w, h := m.WindowSize.Width, m.WindowSize.Height
	if w <= 0 {
		w = 80
	}
	if h <= 0 {
		h = 24
	}
	return w, h
}

// layout sizes the scrollback to whatever the section panel leaves free and
// refreshes its content.
func (m *AppModel) layout() {
	w, h := m.size()

	// Header, nav, input, footer and the gaps between them
	const chrome = 7
	panelHeight := lipgloss.Height(m.renderPanel(w))

	vpHeight := h - panelHeight - chrome
	if vpHeight < 3 {
		vpHeight = 3
	}
	m.Scrollback.Width = w - 2
	m.Scrollback.Height = vpHeight
	m.Scrollback.SetContent(m.renderScrollback(w - 2))
}

func (m AppModel) View() string {
	if m.Quitting {
		return ""
	}
	if m.ShowHelp {
		return m.renderHelpDialog()
	}

	w, _ := m.size()
	p := m.palette()

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n")
	b.WriteString(m.renderNav())
	b.WriteString("\n")
	b.WriteString(m.renderPanel(w))
	b.WriteString("\n")
	b.WriteString(m.Scrollback.View())
	b.WriteString("\n")
	b.WriteString(m.Input.View())
	b.WriteString("\n\n")

	help := "tab/shift+tab: sections • ↑/↓: recall • pgup/pgdn: scroll • ctrl+t: theme • ?: help • ctrl+c: quit"
	b.WriteString(lipgloss.NewStyle().Foreground(p.dim).Render(help))
	return b.String()
}

func (m AppModel) renderHeader() string {
	p := m.palette()
	prompt := lipgloss.NewStyle().Foreground(p.second).Bold(true).Render(model.IconPrompt + " ")
	banner := lipgloss.NewStyle().Foreground(p.text).Render(m.Banner.View())

	status := ""
	if !m.Banner.Done() {
		frames := spinner.CharSets[spinnerCharset]
		if len(frames) > 0 {
			status = " " + lipgloss.NewStyle().Foreground(p.accent).Render(frames[m.Frame%len(frames)])
		}
	}

	version := lipgloss.NewStyle().Foreground(p.dim).Render("v" + model.Version)
	return titleStyle.Render("termfolio") + "  " + prompt + banner + status + "  " + version
}

func (m AppModel) renderNav() string {
	p := m.palette()
	active := lipgloss.NewStyle().Bold(true).Foreground(p.text).Background(p.tabBg).Padding(0, 1)
	inactive := lipgloss.NewStyle().Foreground(p.dim).Padding(0, 1)

	var tabs []string
	for _, s := range model.Sections() {
		label := model.SectionIcon(s) + " " + s.Title()
		if s == m.Session.Section() {
			tabs = append(tabs, active.Render(label))
		} else {
			tabs = append(tabs, inactive.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderPanel draws the active section inside a bordered box sized to w.
func (m AppModel) renderPanel(w int) string {
	p := m.palette()
	_, h := m.size()
	inner := w - 6
	if inner < 20 {
		inner = 20
	}

	accent := lipgloss.NewStyle().Foreground(p.accent).Bold(true)
	second := lipgloss.NewStyle().Foreground(p.second)
	dim := lipgloss.NewStyle().Foreground(p.dim)
	text := lipgloss.NewStyle().Foreground(p.text)

	c := m.Content
	prof := c.Profile
	var b strings.Builder

	switch m.Session.Section() {
	case model.Home:
		b.WriteString(accent.Render(strings.ToUpper(prof.Name)) + "\n")
		b.WriteString(second.Render(prof.Title) + "\n\n")
		b.WriteString(text.Render(report.Wrap(prof.Tagline, inner)) + "\n\n")
		b.WriteString(dim.Render("Try: whoami, ls, about, skills, projects, contact"))

	case model.About:
		b.WriteString(accent.Render("About Me") + "\n\n")
		for _, para := range prof.About {
			b.WriteString(text.Render(report.Wrap(para, inner)) + "\n\n")
		}
		badge := lipgloss.NewStyle().Foreground(p.text).Background(p.tabBg).Padding(0, 1)
		var badges []string
		for _, name := range prof.Badges {
			badges = append(badges, badge.Render(name))
		}
		b.WriteString(strings.Join(badges, " "))

	case model.Skills:
		b.WriteString(accent.Render("Skills & Technologies"))
		nameWidth := 0
		for _, sk := range c.Skills {
			if len(sk.Name) > nameWidth {
				nameWidth = len(sk.Name)
			}
		}
		for _, cat := range c.SkillCategories() {
			b.WriteString("\n\n" + second.Render(cat))
			for _, sk := range c.SkillsIn(cat) {
				b.WriteString(fmt.Sprintf("\n  %-*s ", nameWidth, sk.Name))
				b.WriteString(m.SkillBar.ViewAs(sk.Progress))
				b.WriteString(" " + dim.Render(sk.Level))
			}
		}

	case model.Projects:
		b.WriteString(accent.Render("Featured Projects"))
		for _, pr := range c.Projects {
			icon := dim.Render(model.IconProject)
			if pr.Featured {
				icon = accent.Render(model.IconFeatured)
			}
			b.WriteString(fmt.Sprintf("\n\n%s %s  %s %s", icon, text.Bold(true).Render(pr.Name),
				second.Render(pr.Language), dim.Render("· "+pr.Category)))
			b.WriteString("\n" + dim.Render(indent(report.Wrap(pr.Description, inner-2), "  ")))
		}
		if prof.GitHubURL != "" {
			b.WriteString("\n\n" + dim.Render("All projects "+model.IconLink+" ") + second.Render(prof.GitHubURL))
		}

	case model.Contact:
		b.WriteString(accent.Render("Get In Touch") + "\n\n")
		b.WriteString(text.Render(report.Wrap(prof.Pitch, inner)) + "\n\n")
		b.WriteString(dim.Render("GitHub  ") + second.Render(prof.GitHubURL) + "\n")
		b.WriteString(dim.Render("Email   ") + second.Render(prof.Email))
	}

	// Keep room for the scrollback on short terminals
	maxHeight := h * 55 / 100
	if maxHeight < 5 {
		maxHeight = 5
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(p.border).
		Padding(0, 1).
		Width(w - 2).
		MaxHeight(maxHeight).
		Render(b.String())
}

func (m AppModel) renderScrollback(w int) string {
	p := m.palette()
	prompt := lipgloss.NewStyle().Foreground(p.second).Bold(true)
	out := lipgloss.NewStyle().Foreground(p.text)
	bad := lipgloss.NewStyle().Foreground(p.err)

	history := m.Session.History()
	if len(history) == 0 {
		return lipgloss.NewStyle().Foreground(p.dim).Render("Welcome! Type 'help' to see available commands.")
	}

	var b strings.Builder
	for i, e := range history {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(prompt.Render(model.IconPrompt+" ") + e.Command + "\n")
		if e.Unknown {
			b.WriteString(bad.Render(model.IconError + " " + e.Output))
		} else {
			b.WriteString(out.Render(report.Wrap(e.Output, w)))
		}
	}
	return b.String()
}

func (m AppModel) renderHelpDialog() string {
	w, h := m.size()
	if w < 20 || h < 10 {
		return "Window too small"
	}

	helpWidth := w * 80 / 100
	if helpWidth < 40 {
		helpWidth = 40
	}
	if helpWidth > w-4 {
		helpWidth = w - 4
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("termfolio help") + "\n\n")
	b.WriteString(m.Session.Interpreter().Resolve("help").Text)
	b.WriteString("\n\nKeys:\n")
	b.WriteString("  enter         run the command\n")
	b.WriteString("  tab/shift+tab next/previous section\n")
	b.WriteString("  esc           clear input, or go home\n")
	b.WriteString("  ↑/↓           recall previous commands\n")
	b.WriteString("  pgup/pgdn     scroll the terminal\n")
	b.WriteString("  ctrl+t        toggle light/dark theme\n")
	b.WriteString("  ctrl+c        quit\n\n")
	b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Render("Press ? or Esc to close"))

	dialog := lipgloss.NewStyle().
		Width(helpWidth).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1).
		Render(b.String())

	return lipgloss.Place(w, h,
		lipgloss.Center, lipgloss.Center,
		dialog,
	)
}

func indent(s, prefix string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}

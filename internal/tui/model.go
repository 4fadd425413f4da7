package tui

import (
	"time"

	"termfolio/internal/logging"
	"termfolio/internal/model"
	"termfolio/internal/shell"
	"termfolio/internal/typing"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// Options configures InitialModel.
type Options struct {
	Content       model.Content
	Banner        string
	TypeInterval  time.Duration
	BlinkInterval time.Duration
	HistoryLimit  int
	Schedule      typing.Scheduler // nil means real timers
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Content model.Content
	Session *shell.Session

	// UI State
	WindowSize tea.WindowSizeMsg
	ShowHelp   bool
	Light      bool // Light theme toggled with ctrl+t
	Frame      int  // Spinner frame while the banner is typing
	Quitting   bool

	// Components
	Banner     typing.Model
	Input      textinput.Model
	Scrollback viewport.Model
	SkillBar   progress.Model
	Recall     Recall

	log *logging.Logger
}

// InitialModel returns the initial state.
func InitialModel(opts Options) AppModel {
	ti := textinput.New()
	ti.Prompt = model.IconPrompt + " "
	ti.Placeholder = "type 'help'"
	ti.CharLimit = 256
	ti.Width = 40
	ti.Focus()

	banner := typing.New(opts.Banner)
	if opts.TypeInterval > 0 {
		banner.TypeInterval = opts.TypeInterval
	}
	if opts.BlinkInterval > 0 {
		banner.BlinkInterval = opts.BlinkInterval
	}
	if opts.Schedule != nil {
		banner.Schedule = opts.Schedule
	}

	vp := viewport.New(80, 8)

	bar := progress.New(
		progress.WithDefaultGradient(),
		progress.WithWidth(24),
		progress.WithoutPercentage(),
	)

	return AppModel{
		Content:    opts.Content,
		Session:    shell.NewSession(shell.Default(opts.Content), opts.HistoryLimit),
		Banner:     banner,
		Input:      ti,
		Scrollback: vp,
		SkillBar:   bar,
		Recall:     NewRecall(),
		log:        logging.L().With("component", "tui"),
	}
}

// Init starts the cursor blink and the banner animation.
func (m AppModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.Banner.Init())
}

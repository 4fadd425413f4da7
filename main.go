package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"termfolio/internal/config"
	"termfolio/internal/logging"
	"termfolio/internal/model"
	"termfolio/internal/report"
	"termfolio/internal/store"
	"termfolio/internal/tui"
	"termfolio/internal/web"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"
	"github.com/tcnksm/go-latest"
)

func checkUpdate(currentVer string) {
	githubTag := &latest.GithubTag{
		Owner:      "x0VIER",
		Repository: "termfolio",
	}

	res, err := latest.Check(githubTag, currentVer)
	if err != nil {
		logging.L().Debugw("update check failed", "error", err)
		return
	}

	if res.Outdated {
		fmt.Printf("\n✨ A new version is available: %s (you have %s)\n", res.Current, currentVer)
		fmt.Println("👉 Download it from https://github.com/x0VIER/termfolio/releases")
	} else if pflag.Lookup("update").Changed {
		fmt.Printf("✅ You are using the latest version: %s\n", currentVer)
	}
}

func main() {
	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: termfolio [options]\n\n")
		fmt.Fprintf(os.Stderr, "termfolio is a terminal-themed portfolio. Type commands like\n")
		fmt.Fprintf(os.Stderr, "'whoami', 'ls' or 'skills' to look around.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  termfolio              # Start the terminal UI\n")
		fmt.Fprintf(os.Stderr, "  termfolio --report     # Print the portfolio as plain text\n")
		fmt.Fprintf(os.Stderr, "  termfolio -r -o cv.txt # Save the report to a file\n")
		fmt.Fprintf(os.Stderr, "  termfolio --json       # Dump the content as JSON\n")
		fmt.Fprintf(os.Stderr, "  termfolio --web        # Serve the portfolio over HTTP\n")
	}

	jsonFlag := pflag.BoolP("json", "j", false, "Output portfolio content as JSON")
	reportFlag := pflag.BoolP("report", "r", false, "Print the portfolio as a plain-text report")
	outputFlag := pflag.StringP("output", "o", "", "Save report to the specified file (combined with --report)")
	contentFlag := pflag.StringP("content", "c", "", "JSON file overriding the built-in content")
	webFlag := pflag.BoolP("web", "w", false, "Start Web Mode")
	addrFlag := pflag.StringP("addr", "a", "", "Web Mode listen address (default :8080)")
	dbFlag := pflag.String("db", "", "SQLite file for visitor stats in Web Mode")
	versionFlag := pflag.BoolP("version", "V", false, "Print version information")
	updateFlag := pflag.BoolP("update", "u", false, "Check for the latest release")
	helpFlag := pflag.BoolP("help", "h", false, "Show this help message")
	pflag.Parse()

	if *helpFlag {
		pflag.Usage()
		return
	}

	if *versionFlag {
		fmt.Printf("termfolio version %s\n", model.Version)
		return
	}

	cfg, err := config.Load(".env")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if *contentFlag != "" {
		cfg.ContentPath = *contentFlag
	}
	if *addrFlag != "" {
		cfg.Addr = *addrFlag
	}
	if *dbFlag != "" {
		cfg.DBPath = *dbFlag
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logPath := logging.Init(logging.Options{AppName: "termfolio", Env: cfg.Env, Level: cfg.LogLevel})
	defer logging.Sync()
	logging.L().Infow("starting", "version", model.Version, "log", logPath)

	if *updateFlag {
		checkUpdate(model.Version)
		return
	}

	content, err := model.LoadContent(cfg.ContentPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading content: %v\n", err)
		os.Exit(1)
	}

	switch {
	case *webFlag:
		err = runWebMode(cfg, content)
	case *reportFlag:
		err = runReportMode(content, *outputFlag)
	case *jsonFlag:
		err = runJsonMode(content)
	default:
		err = runTuiMode(cfg, content)
	}
	if err != nil {
		logging.L().Errorw("exited with error", "error", err)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		logging.Sync()
		os.Exit(1)
	}
}

func runReportMode(content model.Content, outputFile string) error {
	text := report.Generate(content, report.DefaultWidth)

	if outputFile != "" {
		if err := os.WriteFile(model.ExpandTilde(outputFile), []byte(text), 0644); err != nil {
			return fmt.Errorf("write report to %s: %w", outputFile, err)
		}
		fmt.Printf("Report saved to %s\n", outputFile)
		return nil
	}
	fmt.Println(text)
	return nil
}

func runJsonMode(content model.Content) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(content)
}

func runWebMode(cfg config.Config, content model.Content) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := web.Options{
		Content:      content,
		HistoryLimit: cfg.HistoryLimit,
		Debug:        cfg.Env == "dev",
	}

	if cfg.DBPath != "" {
		st, err := store.Open(ctx, model.ExpandTilde(cfg.DBPath), "")
		if err != nil {
			return err
		}
		defer st.Close()

		n, err := st.Purge(ctx)
		if err != nil {
			return err
		}
		logging.L().Infow("purged old visits", "rows", n)
		opts.Store = st
	}

	if cfg.SMTP.Configured() {
		opts.Mailer = web.NewSMTPMailer(cfg.SMTP)
	} else {
		logging.L().Warnw("SMTP credentials not set, contact form disabled")
	}

	srv, err := web.New(opts)
	if err != nil {
		return err
	}

	fmt.Printf("Starting termfolio web server at http://localhost%s\n", cfg.Addr)
	return srv.Run(ctx, cfg.Addr)
}

func runTuiMode(cfg config.Config, content model.Content) error {
	m := tui.InitialModel(tui.Options{
		Content:       content,
		Banner:        cfg.Banner,
		TypeInterval:  cfg.TypeInterval,
		BlinkInterval: cfg.BlinkInterval,
		HistoryLimit:  cfg.HistoryLimit,
	})
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

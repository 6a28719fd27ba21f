package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"contrastguard/internal/config"
	"contrastguard/internal/debug"
	apperrors "contrastguard/internal/errors"
	"contrastguard/internal/guard"
	"contrastguard/internal/history"
	"contrastguard/internal/report"
	"contrastguard/internal/theme"
	"contrastguard/internal/ui"
)

const (
	renderWidth  = 100
	historyLimit = 20
)

func main() {
	if err := config.Initialize(); err != nil {
		fmt.Printf("Error initializing config: %v\n", err)
		os.Exit(1)
	}

	themeDefault := config.GetString(config.KeyTheme)
	modeDefault := config.GetString(config.KeyMode)
	outputFormatDefault := config.GetString(config.KeyOutputFormat)
	historyPathDefault := config.GetString(config.KeyHistoryPath)

	versionFlag := flag.Bool("version", false, "Print version information and exit")
	themeFlag := flag.String("theme", themeDefault, "Palette to load ("+strings.Join(theme.Available(), ", ")+")")
	modeFlag := flag.String("mode", modeDefault, "Color mode (light, dark, system)")
	cssFlag := flag.Bool("css", false, "Print the guarded root scope as CSS and exit")
	reportFlag := flag.Bool("report", false, "Print a contrast report for every palette and exit")
	outputFormatFlag := flag.String("output-format", outputFormatDefault, "Markdown style for --report and --history (rich, dark, light, plain)")
	historyPathFlag := flag.String("history-db", historyPathDefault, "Record guard adjustments in this SQLite database")
	historyFlag := flag.Bool("history", false, "Print recently recorded adjustments and exit")
	debugFlag := flag.Bool("debug", false, "Write a debug log to ~/.contrastguard/debug.log")
	flag.Parse()

	if *versionFlag {
		printVersion()
		os.Exit(0)
	}

	visited := map[string]struct{}{}
	flag.CommandLine.Visit(func(f *flag.Flag) {
		visited[f.Name] = struct{}{}
	})

	opts, err := computeRuntimeOptions(runtimeFlags{
		theme:        themeFlag,
		mode:         modeFlag,
		outputFormat: outputFormatFlag,
		historyPath:  historyPathFlag,
		css:          cssFlag,
		report:       reportFlag,
		history:      historyFlag,
		debug:        debugFlag,
	}, visited)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if err := debug.Init(opts.debug); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: debug logging disabled: %v\n", err)
	}
	code := run(context.Background(), opts, os.Stdout, os.Stderr)
	debug.Close()
	os.Exit(code)
}

type runtimeFlags struct {
	theme        *string
	mode         *string
	outputFormat *string
	historyPath  *string
	css          *bool
	report       *bool
	history      *bool
	debug        *bool
}

type runtimeOptions struct {
	theme        string
	mode         theme.Mode
	outputFormat string
	historyPath  string
	css          bool
	report       bool
	history      bool
	debug        bool
}

func computeRuntimeOptions(flags runtimeFlags, visited map[string]struct{}) (runtimeOptions, error) {
	themeName := strings.TrimSpace(config.GetString(config.KeyTheme))
	if flagWasExplicitlySet("theme", visited) {
		themeName = strings.TrimSpace(*flags.theme)
	}
	if themeName == "" {
		themeName = config.DefaultTheme
	}
	if _, ok := theme.Lookup(themeName); !ok {
		return runtimeOptions{}, apperrors.New(apperrors.CodeConfigurationError,
			fmt.Sprintf("unknown theme %q (available: %s)", themeName, strings.Join(theme.Available(), ", ")), nil)
	}

	modeText := config.GetString(config.KeyMode)
	if flagWasExplicitlySet("mode", visited) {
		modeText = *flags.mode
	}
	mode, err := theme.ParseMode(modeText)
	if err != nil {
		return runtimeOptions{}, err
	}

	outputFormat := strings.TrimSpace(config.GetString(config.KeyOutputFormat))
	if flagWasExplicitlySet("output-format", visited) {
		outputFormat = strings.TrimSpace(*flags.outputFormat)
	}

	historyPath := strings.TrimSpace(config.GetString(config.KeyHistoryPath))
	if flagWasExplicitlySet("history-db", visited) {
		historyPath = strings.TrimSpace(*flags.historyPath)
	}
	showHistory := flags.history != nil && *flags.history
	if showHistory && historyPath == "" {
		if historyPath, err = config.DefaultHistoryPath(); err != nil {
			return runtimeOptions{}, apperrors.New(apperrors.CodeConfigurationError, "resolve history path", err)
		}
	}

	return runtimeOptions{
		theme:        themeName,
		mode:         mode,
		outputFormat: outputFormat,
		historyPath:  historyPath,
		css:          flags.css != nil && *flags.css,
		report:       flags.report != nil && *flags.report,
		history:      showHistory,
		debug:        flags.debug != nil && *flags.debug,
	}, nil
}

func flagWasExplicitlySet(name string, visited map[string]struct{}) bool {
	if _, ok := visited[name]; ok {
		return true
	}
	f := flag.CommandLine.Lookup(name)
	if f == nil {
		return false
	}
	return f.Value.String() != f.DefValue
}

// run executes the selected action and returns the process exit code.
func run(ctx context.Context, opts runtimeOptions, stdout, stderr io.Writer) int {
	log := debug.Component("cli")
	log.Info().
		Str("theme", opts.theme).
		Str("mode", string(opts.mode)).
		Bool("history", opts.historyPath != "").
		Msg("starting")

	var store *history.Store
	if opts.historyPath != "" {
		s, err := history.Open(ctx, opts.historyPath)
		if err != nil {
			if opts.history {
				fmt.Fprintf(stderr, "Error: %v\n", err)
				return 1
			}
			// Recording is best effort; the guard runs without it.
			log.Warn().Err(err).Msg("history disabled")
		} else {
			store = s
			defer func() {
				_ = store.Close()
			}()
		}
	}
	record := store.Recorder(ctx, debug.Logf)

	var err error
	switch {
	case opts.history:
		err = writeHistory(ctx, stdout, store, opts.outputFormat)
	case opts.report:
		err = writeReport(stdout, theme.Available(), opts.outputFormat)
	case opts.css:
		err = writeCSS(stdout, opts.theme, opts.mode, theme.DetectTerminalBackground, record)
	default:
		err = runProgram(ui.Config{
			Theme:    opts.theme,
			Mode:     opts.mode,
			Version:  Version,
			Logf:     debug.Logf,
			Observer: record,
		}, ui.NewApp, func(app *ui.App) programRunner {
			return tea.NewProgram(app, tea.WithAltScreen())
		})
	}
	if err != nil {
		log.Error().Err(err).Msg("run failed")
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

type programRunner interface {
	Run() (tea.Model, error)
}

type programFactory func(*ui.App) programRunner

func runProgram(cfg ui.Config, builder func(ui.Config) (*ui.App, error), factory programFactory) error {
	app, err := builder(cfg)
	if err != nil {
		return fmt.Errorf("initialize UI: %w", err)
	}
	if factory == nil {
		return fmt.Errorf("program factory is nil")
	}
	prog := factory(app)
	if prog == nil {
		return fmt.Errorf("program is nil")
	}
	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("run UI: %w", err)
	}
	return nil
}

// writeCSS guards one palette variant and prints its root scope.
func writeCSS(w io.Writer, themeName string, mode theme.Mode, detect theme.BackgroundDetector, record func(guard.Report, string, string)) error {
	t, ok := theme.Lookup(themeName)
	if !ok {
		return apperrors.New(apperrors.CodeConfigurationError, fmt.Sprintf("unknown theme %q", themeName), nil)
	}
	dark := theme.Resolve(mode, detect)
	scope := theme.NewScope(theme.Tokens(t, dark))
	g := guard.New(
		guard.WithLogger(debug.Logf),
		guard.WithObserver(func(r guard.Report) {
			if record != nil {
				record(r, themeName, string(mode))
			}
		}),
	)
	g.ApplyOnce(scope)

	fmt.Fprintf(w, "/* %s (%s) */\n", themeName, theme.VariantName(dark))
	_, err := io.WriteString(w, scope.CSS())
	return err
}

func writeReport(w io.Writer, themes []string, format string) error {
	doc, err := report.Build(themes, []bool{false, true})
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, report.Render(doc.Markdown(), format, renderWidth))
	return err
}

func writeHistory(ctx context.Context, w io.Writer, store *history.Store, format string) error {
	if store == nil {
		return apperrors.New(apperrors.CodeHistoryFailed, "history database unavailable", nil)
	}
	entries, err := store.Recent(ctx, historyLimit)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, report.Render(report.HistoryMarkdown(entries), format, renderWidth))
	return err
}

package cli

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/custodia-labs/newsroom/internal/adapters/driving/tui"
	"github.com/custodia-labs/newsroom/internal/core/domain"
	"github.com/custodia-labs/newsroom/internal/logger"
)

// tuiLogFile receives debug output while the TUI owns the screen.
const tuiLogFile = "newsroom-debug.log"

var (
	tuiPage    string
	tuiPayload string
)

var errNotTerminal = errors.New("the TUI needs an interactive terminal")

// isTerminal reports whether stdin and stdout are terminals. Replaced in tests.
var isTerminal = func() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive news reader",
	Long: `Launch the interactive terminal news reader.

Controls:
  h          - Home
  1-9        - Category shortcuts shown in the header
  ↑/k, ↓/j   - Move between articles
  Enter      - Open article
  Tab        - Select related articles
  c, p       - Contact, Privacy
  Esc        - Back
  g, G       - Top, Bottom
  q          - Quit

Use --page and --payload to start on a specific view:
  newsroom tui --page category --payload Sports
  newsroom tui --page article --payload abc123`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	tuiCmd.Flags().StringVar(&tuiPage, "page", "", "start page: home, category, article, contact or privacy")
	tuiCmd.Flags().StringVar(&tuiPayload, "payload", "", "category name or article id for --page")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) (err error) {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
			err = fmt.Errorf("TUI panic: %v", r)
		}
	}()

	if !isTerminal() {
		return errNotTerminal
	}

	if logger.IsVerbose() {
		restore, logErr := redirectLog(cmd, filepath.Join(os.TempDir(), tuiLogFile))
		if logErr != nil {
			return logErr
		}
		defer restore()
	}

	// Built after the redirect so loader output lands in the debug log.
	app, err := newTUIApp(cmd)
	if err != nil {
		return err
	}
	defer app.Close()

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// redirectLog sends logger output to path until restore is called.
func redirectLog(cmd *cobra.Command, path string) (restore func(), err error) {
	f, err := tea.LogToFile(path, "newsroom")
	if err != nil {
		return nil, fmt.Errorf("opening debug log: %w", err)
	}

	prev := logger.Output()
	logger.SetOutput(f)
	fmt.Fprintf(cmd.ErrOrStderr(), "Debug log: %s\n", path)

	return func() {
		logger.SetOutput(prev)
		f.Close()
	}, nil
}

// newTUIApp wires the services into a TUI app starting on the requested view.
func newTUIApp(cmd *cobra.Command) (*tui.App, error) {
	if articleFactory == nil {
		return nil, errArticlesNotConfigured
	}
	if navigatorFactory == nil {
		return nil, errors.New("navigator not configured")
	}

	articles, err := articleFactory(cmd.Context())
	if err != nil {
		return nil, err
	}

	initial := domain.DefaultView()
	if tuiPage != "" {
		initial = domain.ParseView(tuiPage, tuiPayload)
	}

	ports := tui.NewPorts(articles, navigatorFactory(initial))
	ports.Settings = settingsService

	app, err := tui.NewApp(ports)
	if err != nil {
		return nil, fmt.Errorf("failed to create TUI: %w", err)
	}
	return app, nil
}

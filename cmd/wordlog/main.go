// Package main provides the CLI entrypoint for wordlog.
package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/wordlog/internal/config"
	"github.com/verte-zerg/wordlog/internal/logging"
	"github.com/verte-zerg/wordlog/internal/parse"
	"github.com/verte-zerg/wordlog/internal/puzzle"
	"github.com/verte-zerg/wordlog/internal/stats"
	"github.com/verte-zerg/wordlog/internal/statsui"
	"github.com/verte-zerg/wordlog/internal/table"
	"github.com/verte-zerg/wordlog/internal/tui"
)

const (
	defaultTermWidth = 80
	// Columns taken by the player table before the sparkline.
	playerTableFixedWidth = 60
)

var (
	tablePath string
	verbose   bool

	logDate  string
	logStdin bool

	statsFormat string
	statsChart  string
	statsTUI    bool

	playersTop int

	// now is replaced in tests.
	now = time.Now
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wordlog",
		Short:         "Log Wordle share texts and report player stats",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&tablePath, "table", "", "results table path (overrides config)")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable debug logging")

	rootCmd.AddCommand(newLogCmd())
	rootCmd.AddCommand(newStatsCmd())
	rootCmd.AddCommand(newPlayersCmd())
	rootCmd.AddCommand(newExportCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

// loadConfig resolves file, environment and flag settings and configures logging.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := config.DefaultConfigPath()
	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	if cmd.Flags().Changed("table") {
		cfg.Storage.Path = config.ExpandHome(tablePath)
	}
	if verbose {
		cfg.LogLevel = "debug"
	}
	if err := logging.Setup(cmd.ErrOrStderr(), cfg.LogLevel); err != nil {
		return config.Config{}, err
	}
	log.Debug().
		Str("config", path).
		Str("backend", cfg.Storage.Backend).
		Str("table", cfg.Storage.Path).
		Msg("config resolved")
	return cfg, nil
}

func openSink(cfg config.Config) (table.Sink, error) {
	sink, err := table.Open(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to open table: %w", err)
	}
	return sink, nil
}

func closeSink(sink table.Sink) {
	if cerr := sink.Close(); cerr != nil {
		log.Error().Err(cerr).Msg("failed to close table")
	}
}

func newLogCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "log NAME [TEXT]",
		Short: "Log a Wordle share text for a player",
		Args:  cobra.RangeArgs(1, 2),
		RunE:  runLogCmd,
	}
	cmd.Flags().StringVar(&logDate, "date", "", "date played (YYYY-MM-DD or e.g. \"yesterday\", default today)")
	cmd.Flags().BoolVar(&logStdin, "stdin", false, "read the share text from stdin")
	return cmd
}

func runLogCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	name := parse.NormalizeName(args[0], cfg.Aliases)
	if name == "" {
		return fmt.Errorf("player name must not be empty")
	}

	current := now()
	playedOn, err := puzzle.ParseDate(logDate, current)
	if err != nil {
		return err
	}

	text, err := readShareText(cmd, name, args[1:])
	if err != nil {
		return err
	}
	if strings.TrimSpace(text) == "" {
		return fmt.Errorf("no share text provided")
	}

	rec, err := parse.Parse(text)
	if err != nil {
		return fmt.Errorf("failed to parse share text: %w", err)
	}
	rec.Name = name
	rec.PlayedOn = playedOn

	if expected := puzzle.NumberOn(playedOn); expected != rec.PuzzleNumber {
		log.Warn().
			Int("puzzle", rec.PuzzleNumber).
			Int("expected", expected).
			Str("date", puzzle.FormatDate(playedOn)).
			Msg("puzzle number does not match date")
	}

	sink, err := openSink(cfg)
	if err != nil {
		return err
	}
	defer closeSink(sink)

	if err := sink.Append(cmd.Context(), rec); err != nil {
		return fmt.Errorf("failed to append result: %w", err)
	}
	log.Debug().
		Str("name", rec.Name).
		Int("puzzle", rec.PuzzleNumber).
		Str("score", rec.Attempts.Score()).
		Msg("result appended")
	if _, err := fmt.Fprintln(cmd.OutOrStdout(), "Score logged successfully."); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// readShareText takes the text from the argument, then stdin when piped or
// requested, then the interactive paste screen when stdin is a terminal.
func readShareText(cmd *cobra.Command, name string, rest []string) (string, error) {
	if len(rest) > 0 && !logStdin {
		return rest[0], nil
	}
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok && !logStdin && term.IsTerminal(int(f.Fd())) {
		return runPasteScreen(name)
	}
	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func runPasteScreen(name string) (string, error) {
	m := tui.NewModel(name)
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return "", fmt.Errorf("failed to run TUI: %w", err)
	}
	if !m.Submitted() {
		return "", errors.New("cancelled")
	}
	return m.Text(), nil
}

func newStatsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show player stats",
		Args:  cobra.NoArgs,
		RunE:  runStatsCmd,
	}
	cmd.Flags().StringVar(&statsFormat, "format", "text", "output format (text or yaml)")
	cmd.Flags().StringVar(&statsChart, "chart", "", "write a PNG trend chart to this path")
	cmd.Flags().BoolVar(&statsTUI, "tui", false, "open the interactive stats browser")
	return cmd
}

func runStatsCmd(cmd *cobra.Command, _ []string) error {
	if statsFormat != "text" && statsFormat != "yaml" {
		return fmt.Errorf("--format must be text or yaml")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sink, err := openSink(cfg)
	if err != nil {
		return err
	}
	defer closeSink(sink)

	if statsTUI {
		program := tea.NewProgram(statsui.NewModel(sink), tea.WithAltScreen())
		if _, err := program.Run(); err != nil {
			return fmt.Errorf("failed to run stats TUI: %w", err)
		}
		return nil
	}

	report, err := stats.BuildReport(cmd.Context(), sink)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}

	if statsChart != "" {
		err := writeChart(statsChart, report)
		switch {
		case errors.Is(err, stats.ErrNoTrendData):
			log.Warn().Msg("no player has two results yet; chart skipped")
		case err != nil:
			return err
		default:
			log.Info().Str("path", statsChart).Msg("trend chart written")
		}
	}

	out := cmd.OutOrStdout()
	if statsFormat == "yaml" {
		if err := stats.RenderYAML(out, report); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	if err := stats.RenderReport(out, report); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	if len(report.Players) == 0 {
		return nil
	}
	if _, err := fmt.Fprintln(out); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	sparkWidth := terminalWidth(out) - playerTableFixedWidth
	if sparkWidth < 10 {
		sparkWidth = 10
	}
	if err := stats.RenderPlayerTable(out, report.Players, sparkWidth); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func writeChart(path string, report stats.Report) error {
	var buf bytes.Buffer
	if err := stats.RenderTrendChart(&buf, report.Players); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write chart: %w", err)
	}
	return nil
}

func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(f.Fd())) {
		return defaultTermWidth
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 {
		return defaultTermWidth
	}
	return width
}

func newPlayersCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "players",
		Short: "List players by number of logged results",
		Args:  cobra.NoArgs,
		RunE:  runPlayersCmd,
	}
	cmd.Flags().IntVar(&playersTop, "top", 0, "only show the N most active players")
	return cmd
}

func runPlayersCmd(cmd *cobra.Command, _ []string) error {
	if playersTop < 0 {
		return fmt.Errorf("--top must be >= 0")
	}
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sink, err := openSink(cfg)
	if err != nil {
		return err
	}
	defer closeSink(sink)

	report, err := stats.BuildReport(cmd.Context(), sink)
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}
	players := stats.TopPlayersByRows(report.Players, playersTop)
	if len(players) == 0 {
		logErrln("No results found.")
		return nil
	}
	for _, p := range players {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d\n", p.Name, p.Rows); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newExportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "export OUT.xlsx",
		Short: "Export results and player stats to a spreadsheet",
		Args:  cobra.ExactArgs(1),
		RunE:  runExportCmd,
	}
}

func runExportCmd(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	sink, err := openSink(cfg)
	if err != nil {
		return err
	}
	defer closeSink(sink)

	rows, err := sink.Rows(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load results: %w", err)
	}
	report := stats.Aggregate(rows)

	outPath := args[0]
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create export: %w", err)
	}
	if err := table.ExportXLSX(f, rows, report.Players); err != nil {
		_ = f.Close()
		return fmt.Errorf("failed to export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	logErrf("Wrote %d rows to %s\n", len(rows), outPath)
	return nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := ensureConfigFile(path); err != nil {
		return err
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func ensureConfigFile(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# wordlog configuration
# Uncomment a value to enable it. WORDLOG_* variables and CLI flags override config values.

# log-level = "info"      # debug, info, warn or error

[storage]
# backend = %q         # csv or sqlite
# path = %q

[aliases]
# Map a raw name (case-insensitive) to the name stored in the table.
# "bobby" = "Bob"
`,
		config.BackendCSV,
		config.DefaultTablePath(config.BackendCSV),
	)
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

func logErrln(args ...any) {
	if _, err := fmt.Fprintln(os.Stderr, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

// Package main provides the CLI entrypoint for dictee.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/verte-zerg/dictee/internal/config"
	"github.com/verte-zerg/dictee/internal/dictation"
	"github.com/verte-zerg/dictee/internal/generator"
	"github.com/verte-zerg/dictee/internal/logger"
	"github.com/verte-zerg/dictee/internal/model"
	"github.com/verte-zerg/dictee/internal/sentences"
	"github.com/verte-zerg/dictee/internal/stats"
	"github.com/verte-zerg/dictee/internal/store"
	"github.com/verte-zerg/dictee/internal/tui"
)

const (
	defaultHintStep = 1
	defaultTieBreak = "last"
	defaultLogLevel = "warn"
	defaultColor    = "auto"
)

var errNotAllCorrect = errors.New("attempt is not all correct")

var (
	fileCfg config.FileConfig
	log     = logger.Nop()

	logLevel string

	practiceSet      string
	practiceShuffle  bool
	practiceHintStep int
	practiceTieBreak string

	checkJSON     bool
	checkColor    string
	checkStrict   bool
	checkTieBreak string

	importName string
)

func main() {
	rootCmd := newRootCmd()
	err := rootCmd.Execute()
	log.Sync()
	if err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "dictee",
		Short:             "Dictation trainer",
		SilenceUsage:      true,
		SilenceErrors:     false,
		PersistentPreRunE: setup,
		RunE:              runPracticeCmd,
	}

	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", defaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.Flags().StringVar(&practiceSet, "set", "", "sentence set to practise")
	rootCmd.Flags().BoolVar(&practiceShuffle, "shuffle", false, "practise sentences in random order")
	rootCmd.Flags().IntVar(&practiceHintStep, "hint-step", defaultHintStep, "words revealed after each wrong attempt")
	rootCmd.Flags().StringVar(&practiceTieBreak, "tie-break", defaultTieBreak, "equal-length candidate tie-break (first or last)")

	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSetsCmd())
	rootCmd.AddCommand(newConfigCmd())

	return rootCmd
}

func setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	fileCfg = cfg
	applyStringConfig(cmd, "log-level", &logLevel, fileCfg.Practice.LogLevel)
	l, err := logger.New(logLevel)
	if err != nil {
		return err
	}
	log = l
	return nil
}

func runPracticeCmd(cmd *cobra.Command, _ []string) error {
	applyStringConfig(cmd, "set", &practiceSet, fileCfg.Practice.Set)
	applyBoolConfig(cmd, "shuffle", &practiceShuffle, fileCfg.Practice.Shuffle)
	applyIntConfig(cmd, "hint-step", &practiceHintStep, fileCfg.Practice.HintStep)
	applyStringConfig(cmd, "tie-break", &practiceTieBreak, fileCfg.Practice.TieBreak)

	cfg := model.Config{
		Set:      practiceSet,
		Shuffle:  practiceShuffle,
		HintStep: practiceHintStep,
		TieBreak: practiceTieBreak,
		LogLevel: logLevel,
	}
	if err := validateConfig(cfg); err != nil {
		return err
	}
	tie, err := dictation.ParseTieBreak(cfg.TieBreak)
	if err != nil {
		return err
	}

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	name, err := resolveSetName(cmd, st, cfg.Set)
	if err != nil {
		return err
	}
	set, err := st.GetSet(cmd.Context(), name)
	if err != nil {
		if errors.Is(err, store.ErrSetNotFound) {
			return fmt.Errorf("sentence set %q not found (run: dictee sets list)", name)
		}
		return fmt.Errorf("failed to load sentence set: %w", err)
	}
	log.Info("starting practice", "set", set.Name, "sentences", len(set.Sentences), "shuffle", cfg.Shuffle)

	order := generator.New().Order(len(set.Sentences), cfg.Shuffle)
	m := tui.NewModel(cfg, set, order, log, dictation.WithTieBreak(tie))
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	return nil
}

func resolveSetName(cmd *cobra.Command, st *store.Store, name string) (string, error) {
	if name != "" {
		return name, nil
	}
	sets, err := st.ListSets(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("failed to list sentence sets: %w", err)
	}
	switch len(sets) {
	case 0:
		return "", fmt.Errorf("no sentence sets found (import one with: dictee sets import <file>)")
	case 1:
		return sets[0].Name, nil
	default:
		return "", fmt.Errorf("several sentence sets found; choose one with --set (run: dictee sets list)")
	}
}

type checkOutput struct {
	Result  dictation.AttemptResult `json:"result"`
	Metrics stats.Metrics           `json:"metrics"`
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <transcript|-> <reference>",
		Short: "Score a transcript against a reference sentence",
		Args:  cobra.ExactArgs(2),
		RunE:  runCheckCmd,
	}
	cmd.Flags().BoolVar(&checkJSON, "json", false, "print the result as JSON")
	cmd.Flags().StringVar(&checkColor, "color", defaultColor, "colour output (auto, always, never)")
	cmd.Flags().BoolVar(&checkStrict, "strict", false, "fail unless the attempt is all correct")
	cmd.Flags().StringVar(&checkTieBreak, "tie-break", defaultTieBreak, "equal-length candidate tie-break (first or last)")
	return cmd
}

func runCheckCmd(cmd *cobra.Command, args []string) error {
	applyStringConfig(cmd, "tie-break", &checkTieBreak, fileCfg.Practice.TieBreak)
	applyStringConfig(cmd, "color", &checkColor, fileCfg.Display.Color)
	tie, err := dictation.ParseTieBreak(checkTieBreak)
	if err != nil {
		return err
	}
	if err := validateColor(checkColor); err != nil {
		return err
	}

	transcript := args[0]
	if transcript == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("failed to read transcript: %w", err)
		}
		transcript = strings.TrimSpace(string(data))
	}

	res := dictation.Compare(transcript, args[1], dictation.WithTieBreak(tie))
	metrics := stats.AttemptMetrics(res)
	log.Debug("attempt checked", "words", len(res.Words), "all_correct", res.AllCorrect, "score", metrics.Score)

	out := cmd.OutOrStdout()
	if checkJSON {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(checkOutput{Result: res, Metrics: metrics}); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	} else if err := writeCheckReport(out, res, metrics, checkColor); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if checkStrict && !res.AllCorrect {
		return errNotAllCorrect
	}
	return nil
}

func writeCheckReport(w io.Writer, res dictation.AttemptResult, metrics stats.Metrics, colorMode string) error {
	useColor, width := terminalInfo(w, colorMode)
	var rendered string
	if useColor {
		rendered = tui.RenderAttempt(res, width)
	} else {
		rendered = tui.RenderAttemptPlain(res)
	}
	if _, err := fmt.Fprintln(w, rendered); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	if err := stats.RenderWordTable(w, res); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, ""); err != nil {
		return err
	}
	return stats.RenderSummary(w, res, metrics)
}

// terminalInfo decides whether to colour output and how wide to wrap it.
func terminalInfo(w io.Writer, colorMode string) (bool, int) {
	width := 0
	isTTY := false
	if file, ok := w.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		isTTY = true
		if cols, _, err := term.GetSize(int(file.Fd())); err == nil {
			width = cols
		}
	}
	switch colorMode {
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
		return true, width
	case "never":
		return false, width
	default:
		return isTTY, width
	}
}

func newSetsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sets",
		Short: "Manage sentence sets",
	}

	importCmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import sentences from a text or YAML file",
		Args:  cobra.ExactArgs(1),
		RunE:  runSetsImportCmd,
	}
	importCmd.Flags().StringVar(&importName, "name", "", "set name (default: name in file or file name)")

	cmd.AddCommand(importCmd)
	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List sentence sets",
		Args:  cobra.NoArgs,
		RunE:  runSetsListCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Print the sentences of a set",
		Args:  cobra.ExactArgs(1),
		RunE:  runSetsShowCmd,
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "delete <name>",
		Short: "Delete a sentence set",
		Args:  cobra.ExactArgs(1),
		RunE:  runSetsDeleteCmd,
	})
	return cmd
}

func runSetsImportCmd(cmd *cobra.Command, args []string) error {
	path := args[0]
	fileName, lines, err := sentences.LoadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", path, err)
	}
	name := importSetName(importName, fileName, path)

	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if _, err := st.CreateSet(cmd.Context(), name, lines); err != nil {
		return fmt.Errorf("failed to save sentence set: %w", err)
	}
	log.Info("imported sentence set", "set", name, "sentences", len(lines), "path", path)
	if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Imported %d sentences into %q\n", len(lines), name); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func importSetName(flagName, fileName, path string) string {
	if name := strings.TrimSpace(flagName); name != "" {
		return name
	}
	if fileName != "" {
		return fileName
	}
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func runSetsListCmd(cmd *cobra.Command, _ []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	sets, err := st.ListSets(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list sentence sets: %w", err)
	}
	if len(sets) == 0 {
		logErrf("No sentence sets found. Import with: dictee sets import <file>\n")
		return nil
	}
	for _, s := range sets {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%s\t%d sentences\t%s\n", s.Name, s.Count, s.CreatedAt.Local().Format("2006-01-02")); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runSetsShowCmd(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	set, err := st.GetSet(cmd.Context(), args[0])
	if err != nil {
		return fmt.Errorf("failed to load sentence set: %w", err)
	}
	for i, text := range set.Sentences {
		if _, err := fmt.Fprintf(cmd.OutOrStdout(), "%3d. %s\n", i+1, text); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func runSetsDeleteCmd(cmd *cobra.Command, args []string) error {
	st, err := openStore()
	if err != nil {
		return err
	}
	defer closeStore(st)

	if err := st.DeleteSet(cmd.Context(), args[0]); err != nil {
		return fmt.Errorf("failed to delete sentence set: %w", err)
	}
	log.Info("deleted sentence set", "set", args[0])
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

func openStore() (*store.Store, error) {
	path := config.DefaultDBPath()
	st, err := store.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}
	log.Debug("opened store", "path", path)
	return st, nil
}

func closeStore(st *store.Store) {
	if cerr := st.Close(); cerr != nil {
		log.Warn("failed to close db", "err", cerr)
	}
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyBoolConfig(cmd *cobra.Command, name string, target, value *bool) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# dictee configuration
# Uncomment a value to enable it. CLI flags override config values.

[practice]
# set = "cambridge-15"    # Sentence set to practise
# shuffle = false         # Practise sentences in random order
# hint-step = %d           # Words revealed after each wrong attempt
# tie-break = %q       # Equal-length candidate tie-break (first or last)
# log-level = %q       # debug, info, warn, error

[display]
# color = %q           # auto, always, never
`,
		defaultHintStep,
		defaultTieBreak,
		defaultLogLevel,
		defaultColor,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.HintStep < 0 {
		return fmt.Errorf("--hint-step must be >= 0")
	}
	if _, err := dictation.ParseTieBreak(cfg.TieBreak); err != nil {
		return fmt.Errorf("--tie-break: %w", err)
	}
	return nil
}

func validateColor(mode string) error {
	switch mode {
	case "auto", "always", "never":
		return nil
	default:
		return fmt.Errorf("--color must be auto, always or never")
	}
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

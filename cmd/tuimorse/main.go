// Package main provides the CLI entrypoint for tuimorse.
package main

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/verte-zerg/tuimorse/internal/config"
	"github.com/verte-zerg/tuimorse/internal/generator"
	"github.com/verte-zerg/tuimorse/internal/keyer"
	"github.com/verte-zerg/tuimorse/internal/model"
	"github.com/verte-zerg/tuimorse/internal/sidetone"
	"github.com/verte-zerg/tuimorse/internal/stats"
	"github.com/verte-zerg/tuimorse/internal/tui"
	"github.com/verte-zerg/tuimorse/internal/wordlist"
)

const (
	defaultLang           = "en"
	defaultWords          = 10
	defaultMode           = string(keyer.ModeDuration)
	defaultThresholdMs    = 150
	defaultRefreshMs      = 100
	defaultPollMs         = 5
	defaultToneHz         = sidetone.DefaultFrequency
	defaultToneDitMs      = 60
	defaultToneVolume     = sidetone.DefaultVolume
	defaultRepeatDelayMs  = 660
	defaultRepeatPeriodMs = 100
)

var (
	trainerLang         string
	trainerWords        int
	trainerCorpusDir    string
	trainerMode         string
	trainerThreshold    int
	trainerRefresh      int
	trainerPoll         int
	trainerHint         bool
	trainerSidetone     bool
	trainerTone         float64
	trainerToneDit      int
	trainerToneVolume   float64
	trainerRepeatDelay  int
	trainerRepeatPeriod int
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "tuimorse",
		Short:         "TUI Morse code trainer",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runTrainerCmd,
	}

	flags := rootCmd.Flags()
	flags.StringVar(&trainerLang, "lang", defaultLang, "language code (default: en)")
	flags.IntVar(&trainerWords, "words", defaultWords, "words per session")
	flags.StringVar(&trainerMode, "mode", defaultMode, "input mode: duration or discrete")
	flags.IntVar(&trainerThreshold, "threshold", defaultThresholdMs, "longest dot press in ms (duration mode)")
	flags.IntVar(&trainerRefresh, "refresh", defaultRefreshMs, "stats refresh interval in ms")
	flags.IntVar(&trainerPoll, "poll", defaultPollMs, "key sampling interval in ms (duration mode)")
	flags.BoolVar(&trainerHint, "hint", false, "show the Morse code of the target word")
	flags.BoolVar(&trainerSidetone, "sidetone", false, "play a tone for each dot and dash (discrete mode only)")
	flags.Float64Var(&trainerTone, "tone", defaultToneHz, "sidetone frequency in Hz")
	flags.IntVar(&trainerToneDit, "tone-dit", defaultToneDitMs, "sidetone dot length in ms")
	flags.Float64Var(&trainerToneVolume, "tone-volume", defaultToneVolume, "sidetone volume (0-1)")
	flags.IntVar(&trainerRepeatDelay, "repeat-delay", defaultRepeatDelayMs, "terminal key repeat delay in ms")
	flags.IntVar(&trainerRepeatPeriod, "repeat-interval", defaultRepeatPeriodMs, "terminal key repeat interval in ms")
	rootCmd.PersistentFlags().StringVar(&trainerCorpusDir, "corpus-dir", config.DefaultCorpusDir(), "directory holding <lang>.json or <lang>.txt corpora")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newLangsCmd())
	rootCmd.AddCommand(newTableCmd())

	return rootCmd
}

func runTrainerCmd(cmd *cobra.Command, _ []string) error {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	cfg := resolveConfig(cmd, fileCfg)
	if err := validateConfig(cfg); err != nil {
		return err
	}

	corpus, err := wordlist.Load(cfg.CorpusDir, cfg.Lang)
	if err != nil {
		return corpusLoadError(cfg.Lang, cfg.CorpusDir, err)
	}
	if len(corpus) < cfg.Words {
		logErrf("corpus %q has %d usable words; practicing all of them\n", cfg.Lang, len(corpus))
	}
	words := generator.New().Pick(corpus, cfg.Words)

	tone := openSidetone(cfg)
	defer tone.Close()

	m, err := tui.NewModel(cfg, words, tone, nil)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}
	program := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}
	if err := stats.RenderSummary(cmd.OutOrStdout(), m.Summary()); err != nil {
		return fmt.Errorf("failed to write summary: %w", err)
	}
	return nil
}

func openSidetone(cfg model.Config) sidetone.Player {
	if !cfg.Sidetone {
		return sidetone.Nop{}
	}
	sp, err := sidetone.Open(sidetone.Config{
		Frequency: cfg.ToneHz,
		Dit:       cfg.ToneDit,
		Volume:    cfg.ToneVolume,
	})
	if err != nil {
		logErrf("sidetone disabled: %v\n", err)
		return sidetone.Nop{}
	}
	return sp
}

// resolveConfig merges file values into flags that were not set explicitly.
func resolveConfig(cmd *cobra.Command, fileCfg config.FileConfig) model.Config {
	tr := fileCfg.Trainer
	applyStringConfig(cmd, "lang", &trainerLang, tr.Lang)
	applyIntConfig(cmd, "words", &trainerWords, tr.Words)
	applyStringConfig(cmd, "corpus-dir", &trainerCorpusDir, tr.CorpusDir)
	applyStringConfig(cmd, "mode", &trainerMode, tr.Mode)
	applyIntConfig(cmd, "threshold", &trainerThreshold, tr.Threshold)
	applyIntConfig(cmd, "refresh", &trainerRefresh, tr.Refresh)
	applyIntConfig(cmd, "poll", &trainerPoll, tr.Poll)
	applyBoolConfig(cmd, "hint", &trainerHint, tr.Hint)
	applyBoolConfig(cmd, "sidetone", &trainerSidetone, tr.Sidetone)
	applyFloatConfig(cmd, "tone", &trainerTone, tr.Tone)
	applyIntConfig(cmd, "tone-dit", &trainerToneDit, tr.ToneDit)
	applyFloatConfig(cmd, "tone-volume", &trainerToneVolume, tr.ToneVolume)
	applyIntConfig(cmd, "repeat-delay", &trainerRepeatDelay, tr.RepeatDelay)
	applyIntConfig(cmd, "repeat-interval", &trainerRepeatPeriod, tr.RepeatInterval)

	return model.Config{
		Lang:         strings.ToLower(strings.TrimSpace(trainerLang)),
		Words:        trainerWords,
		CorpusDir:    config.ExpandHome(trainerCorpusDir),
		Mode:         trainerMode,
		Threshold:    millis(trainerThreshold),
		Refresh:      millis(trainerRefresh),
		Poll:         millis(trainerPoll),
		Hint:         trainerHint,
		Sidetone:     trainerSidetone,
		ToneHz:       trainerTone,
		ToneDit:      millis(trainerToneDit),
		ToneVolume:   trainerToneVolume,
		RepeatDelay:  millis(trainerRepeatDelay),
		RepeatPeriod: millis(trainerRepeatPeriod),
		Keys: model.KeyBindings{
			Straight:  fileCfg.Keys.Straight,
			Dot:       fileCfg.Keys.Dot,
			Dash:      fileCfg.Keys.Dash,
			LetterSep: fileCfg.Keys.LetterSep,
			WordSep:   fileCfg.Keys.WordSep,
			Backspace: fileCfg.Keys.Backspace,
			Quit:      fileCfg.Keys.Quit,
		},
	}
}

func millis(ms int) time.Duration {
	return time.Duration(ms) * time.Millisecond
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
	if err := config.WriteTemplate(path); err != nil {
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

func newLangsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "langs",
		Short: "List available corpus languages",
		Args:  cobra.NoArgs,
		RunE:  runLangsCmd,
	}
}

func runLangsCmd(cmd *cobra.Command, _ []string) error {
	dir := config.ExpandHome(trainerCorpusDir)
	langs, err := wordlist.Languages(dir)
	if err != nil {
		if os.IsNotExist(err) {
			logErrf("No corpora found. Place <lang>.json or <lang>.txt files in %s\n", dir)
			return fmt.Errorf("corpus directory does not exist")
		}
		return fmt.Errorf("failed to read corpus directory: %w", err)
	}
	if len(langs) == 0 {
		logErrf("No corpora found. Place <lang>.json or <lang>.txt files in %s\n", dir)
		return fmt.Errorf("no corpora found")
	}
	for _, lang := range langs {
		if _, err := fmt.Fprintln(cmd.OutOrStdout(), lang); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newTableCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "table",
		Short: "Print the Morse reference table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := stats.RenderReference(cmd.OutOrStdout()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			return nil
		},
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

func applyFloatConfig(cmd *cobra.Command, name string, target, value *float64) {
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

func validateConfig(cfg model.Config) error {
	if cfg.Lang == "" {
		return fmt.Errorf("--lang must not be empty")
	}
	if cfg.Words <= 0 {
		return fmt.Errorf("--words must be > 0")
	}
	if _, err := keyer.ParseMode(cfg.Mode); err != nil {
		return fmt.Errorf("--mode must be duration or discrete")
	}
	if cfg.Threshold <= 0 {
		return fmt.Errorf("--threshold must be > 0")
	}
	if cfg.Refresh <= 0 {
		return fmt.Errorf("--refresh must be > 0")
	}
	if cfg.Poll <= 0 {
		return fmt.Errorf("--poll must be > 0")
	}
	if cfg.Sidetone && cfg.Mode != "discrete" {
		return fmt.Errorf("--sidetone requires --mode discrete")
	}
	if cfg.ToneHz <= 0 {
		return fmt.Errorf("--tone must be > 0")
	}
	if cfg.ToneDit <= 0 {
		return fmt.Errorf("--tone-dit must be > 0")
	}
	if cfg.ToneVolume < 0 || cfg.ToneVolume > 1 {
		return fmt.Errorf("--tone-volume must be between 0 and 1")
	}
	if cfg.RepeatDelay <= 0 {
		return fmt.Errorf("--repeat-delay must be > 0")
	}
	if cfg.RepeatPeriod <= 0 {
		return fmt.Errorf("--repeat-interval must be > 0")
	}
	return nil
}

func corpusLoadError(lang, dir string, err error) error {
	lines := []string{fmt.Sprintf("failed to load corpus: %v", err)}
	if errors.Is(err, os.ErrNotExist) {
		lines = append(lines,
			fmt.Sprintf("expected corpus at: %s (or %s.txt)", filepath.Join(dir, lang+".json"), lang),
			fmt.Sprintf("language %q not found", lang),
		)
	}
	lines = append(lines,
		"Run: tuimorse langs",
		"Set another directory with --corpus-dir or corpus-dir in the config file",
	)
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}

func logErrf(format string, args ...any) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		// Best-effort logging to stderr.
		_ = err
	}
}

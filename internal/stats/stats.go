// Package stats contains statistics calculations and reporting.
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/verte-zerg/tuimorse/internal/model"
)

// WordsPerMinute returns words divided by elapsed minutes, or 0 before any
// time has passed.
func WordsPerMinute(words int, elapsed time.Duration) float64 {
	secs := elapsed.Seconds()
	if secs <= 0 {
		return 0
	}
	return float64(words) / secs * 60
}

// Live computes the running stats for completed words.
func Live(completed int, elapsed time.Duration) model.LiveStats {
	return model.LiveStats{
		Elapsed:   elapsed,
		Completed: completed,
		WPM:       WordsPerMinute(completed, elapsed),
	}
}

// FormatElapsed renders the live elapsed field.
func FormatElapsed(elapsed time.Duration) string {
	return fmt.Sprintf("Elapsed: %.1fs", elapsed.Seconds())
}

// FormatWPM renders the live speed field.
func FormatWPM(wpm float64) string {
	return fmt.Sprintf("Current WPM: %.1f", wpm)
}

// RenderSummary prints the end-of-session report.
func RenderSummary(w io.Writer, s model.Summary) error {
	title := "Training completed!"
	if s.Quit {
		title = "Training stopped."
	}
	lines := []string{
		"",
		title,
		fmt.Sprintf("Words practiced: %d", s.Words),
	}
	if s.Quit {
		lines = append(lines, fmt.Sprintf("Words completed: %d", s.Completed))
	}
	lines = append(lines,
		fmt.Sprintf("Total time: %.2f seconds", s.Elapsed.Seconds()),
		fmt.Sprintf("Average speed: %.1f words per minute", s.WPM),
		fmt.Sprintf("Final Morse Code: %s", s.Morse),
		fmt.Sprintf("Decoded Message: %s", s.Decoded),
	)
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

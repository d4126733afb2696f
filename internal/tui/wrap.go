package tui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/tuimorse/internal/morse"
)

type styledRune struct {
	s       string
	width   int
	isBreak bool
}

// styleDecoded colours decoded text against the target word: matching
// positions are correct, anything else (including placeholders) is not.
func styleDecoded(target, decoded string) []styledRune {
	targetRunes := []rune(target)
	out := make([]styledRune, 0, len(decoded))
	for i, r := range []rune(decoded) {
		style := incorrectStyle
		switch {
		case r == ' ':
			style = pendingStyle
		case i < len(targetRunes) && r == targetRunes[i] && r != morse.Placeholder:
			style = correctStyle
		}
		out = append(out, styledRune{
			s:       style.Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isBreak: r == ' ',
		})
	}
	return out
}

// styleMorse renders the buffer with separators dimmed. Lines may break after
// any separator.
func styleMorse(buffer string) []styledRune {
	out := make([]styledRune, 0, len(buffer))
	for _, r := range buffer {
		style := morseStyle
		sep := r == morse.LetterSep || r == morse.WordSep
		if sep {
			style = pendingStyle
		}
		out = append(out, styledRune{
			s:       style.Render(string(r)),
			width:   runewidth.RuneWidth(r),
			isBreak: sep,
		})
	}
	return out
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes wraps at width, keeping the break rune at the end of the
// line it closes. Runs longer than width are split hard.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastBreakIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastBreakIdx >= 0 && lastBreakIdx < len(line)-1 {
				out.WriteString(renderStyledRunes(line[:lastBreakIdx+1]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastBreakIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastBreakIdx = lastBreakIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastBreakIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isBreak {
			lastBreakIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastBreakIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isBreak {
			return i
		}
	}
	return -1
}

package stats

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"golang.org/x/term"

	"github.com/verte-zerg/tuimorse/internal/morse"
)

const (
	defaultPerRow       = 8
	terminalWidthBackup = 80
	// "A: .----" plus gap.
	referenceCellWidth = 10
)

// ReferenceLines lays out the symbol table as a reference card with perRow
// entries per line. A non-positive perRow uses the default of 8.
func ReferenceLines(perRow int) []string {
	if perRow <= 0 {
		perRow = defaultPerRow
	}
	var lines []string
	lines = append(lines, "LETTERS:")
	lines = append(lines, referenceBlock(morse.Letters(), perRow)...)
	lines = append(lines, "")
	lines = append(lines, "NUMBERS:")
	lines = append(lines, referenceBlock(morse.Digits(), perRow)...)
	return lines
}

// RenderReference prints the reference card sized to the terminal behind w.
func RenderReference(w io.Writer) error {
	perRow := PerRowFor(writerWidth(w))
	for _, line := range ReferenceLines(perRow) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// PerRowFor returns how many reference entries fit in totalWidth columns.
func PerRowFor(totalWidth int) int {
	if totalWidth <= 0 {
		return defaultPerRow
	}
	n := totalWidth / referenceCellWidth
	if n < 1 {
		return 1
	}
	if n > defaultPerRow {
		return defaultPerRow
	}
	return n
}

func referenceBlock(entries []morse.Entry, perRow int) []string {
	var rows [][]string
	for start := 0; start < len(entries); start += perRow {
		end := start + perRow
		if end > len(entries) {
			end = len(entries)
		}
		row := make([]string, 0, perRow)
		for _, e := range entries[start:end] {
			row = append(row, fmt.Sprintf("%c: %s", e.Char, e.Code))
		}
		rows = append(rows, row)
	}
	lines := formatTable(nil, rows, nil)
	for i, line := range lines {
		lines[i] = "  " + strings.TrimRight(line, " ")
	}
	return lines
}

func writerWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}

func formatTable(headers []string, rows [][]string, rightAlignCols map[int]bool) []string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}
	if colCount == 0 {
		return nil
	}

	widths := make([]int, colCount)
	for i, header := range headers {
		widths[i] = displayWidth(header)
	}
	for _, row := range rows {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			if w := displayWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	lines := make([]string, 0, len(rows)+1)
	if len(headers) > 0 {
		lines = append(lines, formatRow(headers, widths, rightAlignCols))
	}
	for _, row := range rows {
		lines = append(lines, formatRow(row, widths, rightAlignCols))
	}
	return lines
}

func formatRow(row []string, widths []int, rightAlignCols map[int]bool) string {
	var b strings.Builder
	for i := 0; i < len(widths); i++ {
		cell := ""
		if i < len(row) {
			cell = row[i]
		}
		if i > 0 {
			b.WriteString("  ")
		}
		b.WriteString(padCell(cell, widths[i], rightAlignCols[i]))
	}
	return b.String()
}

func padCell(value string, width int, rightAlign bool) string {
	valueWidth := displayWidth(value)
	if valueWidth >= width {
		return value
	}
	padding := width - valueWidth
	if rightAlign {
		return strings.Repeat(" ", padding) + value
	}
	return value + strings.Repeat(" ", padding)
}

func displayWidth(value string) int {
	return runewidth.StringWidth(value)
}

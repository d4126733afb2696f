// Package wordlist loads training corpora from files.
package wordlist

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/samber/lo"
)

var (
	// ErrEmptyCorpus is returned when a corpus holds no usable words.
	ErrEmptyCorpus = errors.New("corpus has no usable words")
	// ErrUnknownFormat is returned for corpus files that are neither JSON nor text.
	ErrUnknownFormat = errors.New("unknown corpus format")
)

// Extensions lists the corpus file extensions in lookup order.
var Extensions = []string{".json", ".txt"}

type corpusFile struct {
	Words []corpusEntry `json:"words"`
}

type corpusEntry struct {
	EnglishWord string `json:"englishWord"`
	TargetWord  string `json:"targetWord"`
}

// Load resolves the corpus for lang inside dir and returns its normalized words.
func Load(dir, lang string) ([]string, error) {
	path, err := Resolve(dir, lang)
	if err != nil {
		return nil, err
	}
	return LoadFile(path, lang)
}

// Resolve returns the first existing corpus file for lang in dir.
func Resolve(dir, lang string) (string, error) {
	lang = strings.ToLower(strings.TrimSpace(lang))
	if lang == "" {
		return "", fmt.Errorf("language is empty")
	}
	for _, ext := range Extensions {
		path := filepath.Join(dir, lang+ext)
		if _, err := os.Stat(path); err == nil {
			return path, nil
		} else if !os.IsNotExist(err) {
			return "", fmt.Errorf("failed to stat corpus: %w", err)
		}
	}
	return "", fmt.Errorf("no corpus for %q in %s: %w", lang, dir, os.ErrNotExist)
}

// LoadFile reads a corpus file, picking the parser from its extension.
func LoadFile(path, lang string) ([]string, error) {
	var (
		raw []string
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		raw, err = LoadCorpus(path, lang)
	case ".txt":
		raw, err = LoadWords(path)
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrUnknownFormat)
	}
	if err != nil {
		return nil, err
	}
	words := Normalize(raw)
	if len(words) == 0 {
		return nil, fmt.Errorf("%s: %w", path, ErrEmptyCorpus)
	}
	return words, nil
}

// LoadCorpus reads a JSON corpus. English reads the englishWord column and
// every other language reads targetWord.
func LoadCorpus(path, lang string) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var corpus corpusFile
	if err := json.Unmarshal(data, &corpus); err != nil {
		return nil, fmt.Errorf("failed to parse corpus %s: %w", path, err)
	}
	english := strings.EqualFold(lang, "en")
	return lo.Map(corpus.Words, func(entry corpusEntry, _ int) string {
		if english {
			return entry.EnglishWord
		}
		return entry.TargetWord
	}), nil
}

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

// Languages lists the languages with a corpus file in dir, sorted.
func Languages(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	files := lo.Filter(entries, func(e os.DirEntry, _ int) bool {
		return !e.IsDir() && lo.Contains(Extensions, strings.ToLower(filepath.Ext(e.Name())))
	})
	langs := lo.Uniq(lo.Map(files, func(e os.DirEntry, _ int) string {
		name := e.Name()
		return strings.ToLower(strings.TrimSuffix(name, filepath.Ext(name)))
	}))
	sort.Strings(langs)
	return langs, nil
}

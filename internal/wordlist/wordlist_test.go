package wordlist

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

const sampleCorpus = `{
  "words": [
    {"englishWord": "the", "targetWord": "der"},
    {"englishWord": "of", "targetWord": "von"},
    {"englishWord": "café", "targetWord": "über"},
    {"englishWord": "and", "targetWord": "und"}
  ]
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoadJSONEnglishColumn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.json", sampleCorpus)

	words, err := Load(dir, "en")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := []string{"THE", "OF", "AND"}; !reflect.DeepEqual(words, want) {
		t.Fatalf("words = %q, want %q", words, want)
	}
}

func TestLoadJSONTargetColumn(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "de.json", sampleCorpus)

	words, err := Load(dir, "DE")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := []string{"DER", "VON", "UND"}; !reflect.DeepEqual(words, want) {
		t.Fatalf("words = %q, want %q", words, want)
	}
}

func TestLoadTextCorpus(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "fr.txt", "# common words\nle\n\n  de \nété\nle\n")

	words, err := Load(dir, "fr")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if want := []string{"LE", "DE"}; !reflect.DeepEqual(words, want) {
		t.Fatalf("words = %q, want %q", words, want)
	}
}

func TestResolvePrefersJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.txt", "one\n")
	jsonPath := writeFile(t, dir, "en.json", sampleCorpus)

	path, err := Resolve(dir, "en")
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if path != jsonPath {
		t.Fatalf("Resolve = %s, want %s", path, jsonPath)
	}
}

func TestLoadMissingCorpus(t *testing.T) {
	_, err := Load(t.TempDir(), "xx")
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestLoadMalformedJSON(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.json", `{"words": [`)
	if _, err := Load(dir, "en"); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestLoadEmptyCorpus(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "es.txt", "ñandú\n\n")
	if _, err := Load(dir, "es"); !errors.Is(err, ErrEmptyCorpus) {
		t.Fatalf("expected ErrEmptyCorpus, got %v", err)
	}
}

func TestLoadFileUnknownFormat(t *testing.T) {
	path := writeFile(t, t.TempDir(), "en.csv", "a,b")
	if _, err := LoadFile(path, "en"); !errors.Is(err, ErrUnknownFormat) {
		t.Fatalf("expected ErrUnknownFormat, got %v", err)
	}
}

func TestLanguages(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "en.json", sampleCorpus)
	writeFile(t, dir, "en.txt", "one\n")
	writeFile(t, dir, "de.txt", "eins\n")
	writeFile(t, dir, "notes.md", "ignore me")
	if err := os.Mkdir(filepath.Join(dir, "fr.json"), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	langs, err := Languages(dir)
	if err != nil {
		t.Fatalf("Languages failed: %v", err)
	}
	if want := []string{"de", "en"}; !reflect.DeepEqual(langs, want) {
		t.Fatalf("langs = %q, want %q", langs, want)
	}
}

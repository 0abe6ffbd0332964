// Package csvimport reads the loosely formatted CSV exports users feed to
// MAGSAV: either separator, quoted fields, accented and aliased headers.
package csvimport

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strings"
	"time"
	"unicode"

	"github.com/segmentio/ksuid"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var ErrEmptyFile = errors.New("fichier vide")

var (
	nonAlnum     = regexp.MustCompile(`[^a-z0-9]+`)
	numeroPrefix = regexp.MustCompile(`^n_(o_)?`)
	utf8BOM      = []byte{0xEF, 0xBB, 0xBF}
)

// Normalize strips accents, lowercases and replaces every run of non
// alphanumeric characters with a single underscore.
func Normalize(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}

	n := nonAlnum.ReplaceAllString(strings.ToLower(strings.TrimSpace(stripped)), "_")
	return strings.Trim(n, "_")
}

// HeaderKey is Normalize with "N°", "No" and "N_o" prefixes folded to "no_".
func HeaderKey(h string) string {
	return numeroPrefix.ReplaceAllString(Normalize(h), "no_")
}

// DetectSeparator picks ';' unless the line has more ',' separated fields.
func DetectSeparator(line string) rune {
	if strings.Count(line, ";") >= strings.Count(line, ",") {
		return ';'
	}
	return ','
}

// Table is a parsed CSV file. Columns are addressed by normalized header.
type Table struct {
	Headers   []string
	Separator rune
	Rows      []Row

	index map[string]int
}

// Row is one data line. Line counts data lines from 1, blank lines included;
// a record spanning several lines through a quoted cell counts once.
type Row struct {
	Line   int
	values []string
	table  *Table
}

func Parse(r io.Reader) (*Table, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll -> %w", err)
	}
	data = bytes.TrimPrefix(data, utf8BOM)

	firstLine, _, _ := bytes.Cut(data, []byte("\n"))
	if len(bytes.TrimSpace(firstLine)) == 0 {
		return nil, ErrEmptyFile
	}

	reader := csv.NewReader(bytes.NewReader(data))
	reader.Comma = DetectSeparator(string(firstLine))
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("read header -> %w", err)
	}

	t := &Table{
		Headers:   make([]string, len(headers)),
		Separator: reader.Comma,
		index:     make(map[string]int, len(headers)),
	}
	for i, h := range headers {
		key := HeaderKey(h)
		t.Headers[i] = key
		if _, ok := t.index[key]; !ok {
			t.index[key] = i
		}
	}

	folded := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reader.Read -> %w", err)
		}

		line, _ := reader.FieldPos(0)
		t.Rows = append(t.Rows, Row{Line: line - 1 - folded, values: record, table: t})
		for i := range record {
			folded += strings.Count(record[i], "\n")
			record[i] = strings.TrimSpace(record[i])
		}
	}

	return t, nil
}

// Alias makes canonical resolve to the first column named like one of alts,
// unless a canonical column already exists.
func (t *Table) Alias(canonical string, alts ...string) {
	if _, ok := t.index[canonical]; ok {
		return
	}
	for _, alt := range alts {
		if i, ok := t.index[alt]; ok {
			t.index[canonical] = i
			return
		}
	}
}

func (t *Table) Has(key string) bool {
	_, ok := t.index[key]
	return ok
}

// Get returns the trimmed value of the column, empty when absent.
func (r Row) Get(key string) string {
	i, ok := r.table.index[key]
	if !ok || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}

func (r Row) Opt(key, def string) string {
	if v := r.Get(key); v != "" {
		return v
	}
	return def
}

func (r Row) Blank() bool {
	for _, v := range r.values {
		if v != "" {
			return false
		}
	}
	return true
}

// Errorf formats a per-line error as "Ligne N: ...".
func (r Row) Errorf(format string, args ...any) string {
	return fmt.Sprintf("Ligne %d: %s", r.Line, fmt.Sprintf(format, args...))
}

var dateLayouts = []string{"2006-01-02", "2/1/2006", "2-1-2006"}

// ParseDate accepts ISO and French day-first dates and returns YYYY-MM-DD.
// Empty input yields an empty string and no error.
func ParseDate(s string) (string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", nil
	}

	for _, layout := range dateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d.Format("2006-01-02"), nil
		}
	}
	if len(s) > 10 {
		if d, err := time.Parse("2006-01-02", s[:10]); err == nil {
			return d.Format("2006-01-02"), nil
		}
	}

	return "", fmt.Errorf("date invalide %q", s)
}

// ParseBool understands the usual spreadsheet spellings of yes.
func ParseBool(s string) bool {
	switch Normalize(s) {
	case "1", "true", "oui", "yes", "o", "y", "x", "vrai":
		return true
	}
	return false
}

// NewBatchID returns a sortable identifier for one import run.
func NewBatchID() string {
	return ksuid.New().String()
}

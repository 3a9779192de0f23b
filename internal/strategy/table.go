// internal/strategy/table.go
//
// Precomputed strategy tables.
// A table is a versioned, read-only text artifact mapping a candidate-set
// key to a recommended next guess, letting the guess selector skip
// entropy scoring for known-common states. Tables are built offline (see
// build.go) and never grow at runtime, so concurrent lookups need no
// locking.
//
// Text format, one entry per line:
//
//	v1
//	# optional comments
//	<first-word> <candidate-count> <guess>
//
// The key is the alphabetically first remaining candidate plus the
// candidate count. The format is stable across builds sharing a version
// tag; Parse rejects any other version header.

package strategy

import (
	"bufio"
	"bytes"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Version is the table format emitted by Encode and accepted by Parse.
const Version = 1

type key struct {
	first string
	count int
}

// Table is an immutable strategy lookup.
type Table struct {
	version int
	entries map[key]string
}

// Parse reads a strategy table from its text form.
func Parse(data []byte) (*Table, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))

	if !sc.Scan() {
		return nil, fmt.Errorf("strategy: empty table")
	}
	header := strings.TrimSpace(sc.Text())
	version, err := strconv.Atoi(strings.TrimPrefix(header, "v"))
	if err != nil || !strings.HasPrefix(header, "v") {
		return nil, fmt.Errorf("strategy: bad version header %q", header)
	}
	if version != Version {
		return nil, fmt.Errorf("strategy: unsupported table version %d", version)
	}

	t := &Table{version: version, entries: make(map[key]string)}
	line := 1
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, fmt.Errorf("strategy: line %d: want 'first count guess', got %q", line, text)
		}
		count, err := strconv.Atoi(fields[1])
		if err != nil || count < 1 {
			return nil, fmt.Errorf("strategy: line %d: bad count %q", line, fields[1])
		}
		t.entries[key{first: fields[0], count: count}] = fields[2]
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("strategy: read table: %w", err)
	}
	return t, nil
}

// Lookup returns the recommended guess for the given candidate set, if
// the table has an entry for it. Safe on a nil table.
func (t *Table) Lookup(candidates []string) (string, bool) {
	if t == nil || len(candidates) == 0 {
		return "", false
	}
	first := candidates[0]
	for _, w := range candidates[1:] {
		if w < first {
			first = w
		}
	}
	guess, ok := t.entries[key{first: first, count: len(candidates)}]
	return guess, ok
}

// Version reports the table's format version.
func (t *Table) Version() int { return t.version }

// Len reports the number of entries.
func (t *Table) Len() int { return len(t.entries) }

// Encode writes the table back to its stable text form, entries sorted
// for reproducible output.
func (t *Table) Encode() []byte {
	keys := make([]key, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].first != keys[j].first {
			return keys[i].first < keys[j].first
		}
		return keys[i].count < keys[j].count
	})

	var sb strings.Builder
	fmt.Fprintf(&sb, "v%d\n", t.version)
	for _, k := range keys {
		fmt.Fprintf(&sb, "%s %d %s\n", k.first, k.count, t.entries[k])
	}
	return []byte(sb.String())
}

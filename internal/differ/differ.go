// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/apex/log"
	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"
)

// Identical is printed when two snapshots carry the same content.
const Identical = "The catalogs are identical."

// ErrEmptySnapshot is returned when either side of a comparison is empty.
var ErrEmptySnapshot = errors.New("empty snapshot")

// Options tunes the rendered diff.
type Options struct {
	// Top level keys removed from both sides before comparing, e.g. brand.
	Ignore []string
	// Coloring enables ANSI colors in the output.
	Coloring bool
}

// ParseIgnore splits a comma separated --ignore value.
func ParseIgnore(spec string) []string {
	var keys []string
	for key := range strings.SplitSeq(spec, ",") {
		if key = strings.TrimSpace(key); key != "" {
			keys = append(keys, key)
		}
	}
	return keys
}

// Compare returns the ASCII diff from left to right, or "" if they match.
func Compare(left, right []byte, opts Options) (string, error) {
	if len(left) == 0 || len(right) == 0 {
		return "", ErrEmptySnapshot
	}

	log.Debugf("len(snapshots): %d %d", len(left), len(right))

	var ldoc, rdoc map[string]interface{}
	if err := json.Unmarshal(left, &ldoc); err != nil {
		return "", fmt.Errorf("failed to unmarshal left snapshot: %w", err)
	}
	if err := json.Unmarshal(right, &rdoc); err != nil {
		return "", fmt.Errorf("failed to unmarshal right snapshot: %w", err)
	}

	for _, key := range opts.Ignore {
		delete(ldoc, key)
		delete(rdoc, key)
	}

	delta := gojsondiff.New().CompareObjects(ldoc, rdoc)
	if !delta.Modified() {
		return "", nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       opts.Coloring,
	}

	return formatter.NewAsciiFormatter(ldoc, config).Format(delta)
}

// Diff writes the diff between two snapshots to w, or Identical if there is
// none. It reports whether the snapshots differ. If w is nil, os.Stdout is
// used.
func Diff(w io.Writer, left, right []byte, opts Options) (bool, error) {
	if w == nil {
		w = os.Stdout
	}

	out, err := Compare(left, right, opts)
	if err != nil {
		return false, fmt.Errorf("failed to compare snapshots: %w", err)
	}

	if out == "" {
		fmt.Fprintln(w, Identical)
		return false, nil
	}

	fmt.Fprintln(w, strings.TrimRight(out, "\n"))
	return true, nil
}

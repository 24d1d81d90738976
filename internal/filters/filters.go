// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/tidwall/gjson"

	"github.com/cloudscale/cloudscale/internal/attrs"
	"github.com/cloudscale/cloudscale/internal/catalog"
)

// DelimEnv overrides the filter delimiter for values that contain commas.
const DelimEnv = "CLOUDSCALE_FILTER_DELIM"

// exprRe splits an expression into key, operator and target. The regexp
// matches every input; a missing operator leaves Operand empty.
var exprRe = regexp.MustCompile(`^([^!?=^~<>@/]*)(!?[=^~<>@/])?(.*)$`)

// Filter is a single parsed --filter expression.
type Filter struct {
	Key     string `yaml:"key" json:"Key"`
	Negate  bool   `yaml:"negate" json:"Negate"`
	Operand string `yaml:"operand" json:"Operand"`
	Value   string `yaml:"value" json:"Value"`
}

// BuildFilters parses spec into filters. Expressions without a key are
// logged and dropped.
func BuildFilters(spec string) []Filter {
	if spec == "" {
		return nil
	}

	delim := ","
	if d := os.Getenv(DelimEnv); d != "" {
		delim = d
	}

	var out []Filter
	for _, expr := range strings.Split(spec, delim) {
		expr = strings.TrimSpace(expr)
		if expr == "" {
			continue
		}

		m := exprRe.FindStringSubmatch(expr)
		key := strings.TrimSpace(m[1])
		if key == "" {
			log.Errorf("invalid filter %q: empty key", expr)
			continue
		}

		op, negate := strings.CutPrefix(m[2], "!")
		out = append(out, Filter{Key: key, Negate: negate, Operand: op, Value: m[3]})
	}
	return out
}

// Match reports whether a cell value passes the filter. A missing value
// never matches, negated or not.
func (f Filter) Match(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return f.matchString(v)
	case bool:
		return f.matchString(strconv.FormatBool(v))
	case float64:
		return f.matchNumber(v)
	case []interface{}:
		return f.matchList(v)
	case map[string]interface{}:
		_, found := v[f.Value]
		return found != f.Negate
	default:
		log.Errorf("filter %s: unsupported value type %T", f.Key, value)
		return false
	}
}

// matchString applies a string operator. '~' also treats any two labels of
// the same provider as equal, so provider~gcp matches Google Cloud Storage.
func (f Filter) matchString(value string) bool {
	var hit bool
	switch f.Operand {
	case "=":
		hit = value == f.Value
	case "~":
		hit = strings.EqualFold(value, f.Value) || sameProvider(value, f.Value)
	case "^":
		hit = strings.HasPrefix(value, f.Value)
	case ">":
		hit = value > f.Value
	case "<":
		hit = value < f.Value
	case "@":
		hit = strings.Contains(value, f.Value)
	case "/":
		re, err := regexp.Compile(f.Value)
		if err != nil {
			log.Errorf("filter %s: invalid regex %q", f.Key, f.Value)
			return false
		}
		hit = re.MatchString(value)
	default:
		log.Errorf("filter %s: unsupported operand %q", f.Key, f.Operand)
		return false
	}
	return hit != f.Negate
}

// matchNumber compares counts and ranks with =, < and >.
func (f Filter) matchNumber(value float64) bool {
	target, err := strconv.ParseFloat(strings.TrimSpace(f.Value), 64)
	if err != nil {
		log.Errorf("filter %s: %q is not a number", f.Key, f.Value)
		return false
	}

	var hit bool
	switch f.Operand {
	case "=":
		hit = value == target
	case ">":
		hit = value > target
	case "<":
		hit = value < target
	default:
		log.Errorf("filter %s: unsupported numeric operand %q", f.Key, f.Operand)
		return false
	}
	return hit != f.Negate
}

// matchList handles features and tiers. '@' is exact membership; any other
// operator matches when one element does, so tiers!^Glacier keeps providers
// without a Glacier tier.
func (f Filter) matchList(items []interface{}) bool {
	positive := f
	positive.Negate = false
	for _, item := range items {
		s, ok := item.(string)
		if !ok {
			continue
		}
		if (f.Operand == "@" && s == f.Value) || (f.Operand != "@" && positive.matchString(s)) {
			return !f.Negate
		}
	}
	return f.Negate
}

func sameProvider(a, b string) bool {
	x, okx := catalog.ProviderRank(a)
	y, oky := catalog.ProviderRank(b)
	return okx && oky && x == y
}

// bound is a filter resolved to the JSON path of its column.
type bound struct {
	Filter
	path string
}

// bind resolves each filter key against the query's columns. Unknown keys
// are reported once on stderr and dropped.
func bind(filters []Filter, cols attrs.AttrList) []bound {
	out := make([]bound, 0, len(filters))
	for _, f := range filters {
		path := ""
		for _, c := range cols {
			if c.OutputKey == f.Key {
				path = c.Key
				break
			}
		}
		if path == "" {
			log.Errorf("filter key not found: %s", f.Key)
			fmt.Fprintf(os.Stderr, "warning: filter key not found: %s\n", f.Key)
			continue
		}
		out = append(out, bound{Filter: f, path: path})
	}
	return out
}

func matchAll(row gjson.Result, filters []bound) bool {
	for _, f := range filters {
		if !f.Match(attrs.Value(row.Raw, f.path).Value()) {
			return false
		}
	}
	return true
}

// FilterDataset returns the rows of candidates that pass spec, each reduced
// to the cols columns. Transforms are left to the caller.
func FilterDataset(candidates gjson.Result, cols attrs.AttrList, spec string) []map[string]interface{} {
	filters := bind(BuildFilters(spec), cols)

	var out []map[string]interface{}
	for _, row := range candidates.Array() {
		if !matchAll(row, filters) {
			continue
		}
		rec := make(map[string]interface{}, len(cols))
		for _, c := range cols {
			rec[c.OutputKey] = attrs.Value(row.Raw, c.Key).Value()
		}
		out = append(out, rec)
	}
	return out
}

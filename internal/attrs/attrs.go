// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// Package attrs parses the --attrs flag into the list of columns a catalog
// query emits, and applies per-column value transforms.
package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/cloudscale/cloudscale/internal/log"
)

// Attr is one output column. Key addresses the value inside a JSON:API
// resource object.
type Attr struct {
	// The path to extract from the resource object.
	Key string `yaml:"key" json:"Key"`
	// Whether the column is emitted or only used for filtering and sorting.
	Include bool `yaml:"include" json:"Include"`
	// The key used in the output row and as the column title.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// Transformation spec applied to the output value.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

var lengthSpec = regexp.MustCompile(`-?\d+`)

// Transform applies the transform spec to value. List values are reduced to
// a count with n, otherwise joined with ", " before the string transforms
// (case and length) run.
func (a *Attr) Transform(value interface{}) interface{} {
	if list, ok := value.([]interface{}); ok {
		if strings.Contains(a.TransformSpec, "n") {
			return float64(len(list))
		}
		parts := make([]string, 0, len(list))
		for _, v := range list {
			parts = append(parts, fmt.Sprint(v))
		}
		value = strings.Join(parts, ", ")
	}

	result, ok := value.(string)
	if !ok {
		log.Tracef("non-string value: value=%v", value)
		return value
	}

	// The last case letter wins so a per-attr spec overrides a global one,
	// e.g. --attrs '*::U,name::l' is lower case.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")
	if lastL > lastU {
		result = strings.ToLower(result)
	} else if lastU > lastL {
		result = strings.ToUpper(result)
	}

	// Same override rule for lengths. Negative lengths elide the middle.
	match := lengthSpec.FindAllString(a.TransformSpec, -1)
	if len(match) != 0 {
		l, _ := strconv.Atoi(match[len(match)-1])
		abs := int(math.Abs(float64(l)))
		runes := []rune(result)
		if len(runes) > abs {
			if l < 0 {
				keep := max(abs/2-1, 0)
				result = string(runes[:keep]) + ".." + string(runes[len(runes)-keep:])
			} else {
				result = string(runes[:l])
			}
			log.Tracef("length applied: result=%s", result)
		}
	}

	return result
}

// AttrList is the ordered set of columns.
type AttrList []Attr

// Set parses a comma separated list of key:outputKey:transform specs. Keys
// are relative to the resource's attributes unless they start with '.', in
// which case they address the resource object itself (e.g. .id). A leading
// '!' keeps the column for filtering and sorting only.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		return nil
	}

	const (
		jsonIdx = iota
		outputIdx
		transformIdx
	)

	specs := strings.Split(value, ",")
	log.Debugf("attr specs: specs=%v", specs)
specloop:
	for _, spec := range specs {
		attr := Attr{Include: true}
		fields := strings.Split(spec, ":")

		attr.Key = strings.TrimSpace(fields[jsonIdx])
		if attr.Key == "" {
			return fmt.Errorf("empty attr key in %q", spec)
		}
		if strings.HasPrefix(attr.Key, "!") {
			attr.Include = false
			attr.Key = attr.Key[1:]
		}
		if attr.Key == "*" {
			attr.Include = false
		}

		// The output key defaults to the last dotted segment of the key.
		if len(fields) == 1 || strings.TrimSpace(fields[outputIdx]) == "" {
			segments := strings.Split(strings.TrimPrefix(attr.Key, "."), ".")
			attr.OutputKey = segments[len(segments)-1]
		} else {
			attr.OutputKey = strings.TrimSpace(fields[outputIdx])
		}

		if len(fields) > transformIdx {
			attr.TransformSpec = strings.TrimSpace(fields[transformIdx])
		}

		// A spec naming an existing column (a command default, or a repeat)
		// updates it in place.
		for i := range *a {
			if (*a)[i].OutputKey == attr.OutputKey || (*a)[i].Key == resolve(attr.Key) {
				(*a)[i].Include = attr.Include
				(*a)[i].OutputKey = attr.OutputKey
				(*a)[i].TransformSpec = attr.TransformSpec
				continue specloop
			}
		}

		attr.Key = resolve(attr.Key)
		*a = append(*a, attr)
	}

	return nil
}

// resolve maps a user key onto its path in a JSON:API resource object.
func resolve(key string) string {
	switch {
	case key == "*":
		return key
	case strings.HasPrefix(key, "."):
		return key[1:]
	case strings.HasPrefix(key, "attributes."):
		return key
	default:
		return "attributes." + key
	}
}

// SetGlobalTransformSpec prepends the spec of a '*' entry to every attr.
func (a *AttrList) SetGlobalTransformSpec() error {
	spec := ""
	for i := range *a {
		if (*a)[i].Key == "*" {
			spec = (*a)[i].TransformSpec
			break
		}
	}
	if spec == "" {
		return nil
	}

	for i := range *a {
		(*a)[i].TransformSpec = spec + "," + (*a)[i].TransformSpec
	}
	log.Debugf("global spec applied: spec=%s", spec)
	return nil
}

// Included returns the columns that are emitted.
func (a AttrList) Included() []Attr {
	out := make([]Attr, 0, len(a))
	for _, attr := range a {
		if attr.Include {
			out = append(out, attr)
		}
	}
	return out
}

// String renders the list in --attrs form.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}
	return strings.Join(result, ",")
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }

var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Value extracts path from a JSON document. Segments may carry an index,
// e.g. attributes.features[0]. A one element array without an index is
// unwrapped; longer arrays are returned whole.
func Value(raw string, path string) gjson.Result {
	current := gjson.Parse(raw)
	for _, p := range strings.Split(path, ".") {
		m := segmentRe.FindStringSubmatch(p)
		if m == nil {
			return gjson.Result{}
		}

		index := -1
		if m[3] != "" && m[3] != "*" {
			i, err := strconv.Atoi(m[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(m[1])
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 {
					val = arr[0]
				}
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}
		current = val
	}
	return current
}

// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"reflect"
	"strings"

	"github.com/apex/log"
)

// Field is one queryable column of a catalog row type.
type Field struct {
	Name string
	Doc  string
}

// Fields lists the jsonapi columns of a row type in declaration order. The
// primary key comes out as .id, the way --attrs addresses it. Doc is taken
// from the field's doc tag.
func Fields(typ reflect.Type) []Field {
	if typ.Kind() == reflect.Ptr {
		typ = typ.Elem()
	}
	if typ.Kind() != reflect.Struct {
		return nil
	}

	var fields []Field
	for i := 0; i < typ.NumField(); i++ {
		sf := typ.Field(i)
		kind, name, _ := strings.Cut(sf.Tag.Get("jsonapi"), ",")
		name, _, _ = strings.Cut(name, ",")

		switch kind {
		case "primary":
			fields = append(fields, Field{Name: ".id", Doc: sf.Tag.Get("doc")})
		case "attr":
			if name == "" {
				continue
			}
			fields = append(fields, Field{Name: name, Doc: sf.Tag.Get("doc")})
		default:
			log.Debugf("schema: skipping field %s", sf.Name)
		}
	}
	return fields
}

// DumpSchema writes the columns of typ, one per line with its meaning, for
// the --schema flag.
func DumpSchema(typ reflect.Type, w io.Writer) {
	fields := Fields(typ)
	fmt.Fprintln(w, "Attributes available to the --attrs, --filter and --sort flags. For the")
	fmt.Fprintln(w, "full JSON:API document use --output=raw.")
	fmt.Fprintln(w)

	width := 0
	for _, f := range fields {
		width = max(width, len(f.Name))
	}
	for _, f := range fields {
		fmt.Fprintln(w, strings.TrimRight(fmt.Sprintf("%-*s  %s", width, f.Name, f.Doc), " "))
	}
}

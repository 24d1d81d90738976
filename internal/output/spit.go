// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/apex/log"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/tidwall/gjson"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/cloudscale/cloudscale/internal/attrs"
	"github.com/cloudscale/cloudscale/internal/catalog"
	"github.com/cloudscale/cloudscale/internal/filters"
	"github.com/cloudscale/cloudscale/internal/render/text"
)

// InterfaceToString renders a cell value. Lists such as features and tiers
// read as "Hot, Cool, Archive". Zero values render as emptyValue, "" by
// default.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	empty := ""
	if len(emptyValue) > 0 {
		empty = emptyValue[0]
	}
	if value == nil || reflect.ValueOf(value).IsZero() {
		return empty
	}

	switch v := value.(type) {
	case string:
		return v
	case float64:
		// Catalog numbers are counts and ranks.
		return strconv.FormatFloat(v, 'f', 0, 64)
	case int:
		return strconv.Itoa(v)
	case bool:
		return strconv.FormatBool(v)
	case []string:
		return strings.Join(v, ", ")
	case []interface{}:
		parts := make([]string, len(v))
		for i, item := range v {
			parts[i] = InterfaceToString(item)
		}
		return strings.Join(parts, ", ")
	}

	b, err := json.Marshal(value)
	if err != nil {
		return fmt.Sprint(value)
	}
	return string(b)
}

// SliceDiceSpit filters, transforms, sorts and renders the JSON:API document
// in raw according to the query flags. parent selects the resource array,
// normally "data". postProcess, when given, sees the rows before text
// rendering; its error is logged, not returned.
func SliceDiceSpit(raw bytes.Buffer,
	al attrs.AttrList,
	cmd *cli.Command,
	parent string,
	w io.Writer,
	postProcess func([]map[string]interface{}) error) error {

	if w == nil {
		w = os.Stdout
	}

	format := cmd.String("output")
	if format == "raw" {
		_, err := w.Write(raw.Bytes())
		return err
	}

	doc := gjson.Parse(raw.String())
	if parent != "" {
		doc = doc.Get(parent)
	}

	rows := filters.FilterDataset(doc, al, cmd.String("filter"))
	for _, row := range rows {
		for _, attr := range al {
			if attr.TransformSpec != "" {
				row[attr.OutputKey] = attr.Transform(row[attr.OutputKey])
			}
		}
	}
	SortDataset(rows, cmd.String("sort"))
	log.Debugf("rows after filter: count=%d", len(rows))

	switch format {
	case "json":
		b, err := json.Marshal(project(rows, al))
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		b, err := yaml.Marshal(project(rows, al))
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, err = w.Write(b)
		return err
	}

	if postProcess != nil {
		if err := postProcess(rows); err != nil {
			log.Errorf("post process: %v", err)
		}
	}
	TableWriter(rows, al, cmd, w)
	return nil
}

// project drops the columns that are only used for filtering and sorting.
func project(rows []map[string]interface{}, al attrs.AttrList) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(rows))
	for _, row := range rows {
		p := make(map[string]interface{}, len(al))
		for _, attr := range al.Included() {
			p[attr.OutputKey] = row[attr.OutputKey]
		}
		out = append(out, p)
	}
	return out
}

// TableWriter prints rows as a borderless table. --titles adds column
// titles, --padding sets the gap between columns and --color paints each
// provider's rows in that provider's accent. cmd.Metadata may carry a header
// and footer line.
func TableWriter(rows []map[string]interface{}, al attrs.AttrList, cmd *cli.Command, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}
	if len(rows) == 0 {
		return
	}

	cols := al.Included()
	cells := make([][]string, len(rows))
	for i, row := range rows {
		for _, attr := range cols {
			cells[i] = append(cells[i], InterfaceToString(row[attr.OutputKey], "-"))
		}
	}

	plain := lipgloss.NewStyle().Align(lipgloss.Left)
	titleStyle := plain
	rowStyles := make([]lipgloss.Style, len(rows))
	for i := range rowStyles {
		rowStyles[i] = plain
	}
	if cmd.Bool("color") {
		p := loadPalette()
		titleStyle = titleStyle.Bold(true).Foreground(p.title)
		for i, row := range rows {
			rowStyles[i] = plain.Foreground(p.row(row, i))
		}
	}

	if h, ok := cmd.Metadata["header"].(string); ok {
		fmt.Fprintln(w, titleStyle.Render(h))
	}

	pad := cmd.Int("padding")
	t := table.New().
		Border(lipgloss.HiddenBorder()).
		BorderTop(false).
		BorderBottom(false).
		BorderLeft(false).
		BorderRight(false).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := titleStyle
			if row >= 0 && row < len(rowStyles) {
				style = rowStyles[row]
			}
			if col > 0 {
				style = style.PaddingLeft(pad)
			}
			return style
		}).
		Rows(cells...)

	if cmd.Bool("titles") {
		titles := make([]string, len(cols))
		for i, attr := range cols {
			titles[i] = attr.OutputKey
		}
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(titles...).BorderHeader(false)
	}
	fmt.Fprintln(w, t)

	if f, ok := cmd.Metadata["footer"].(string); ok {
		fmt.Fprintln(w, titleStyle.Render(f))
	}
}

// palette is the terminal theme as table colours. accents follow
// catalog.ProviderOrder.
type palette struct {
	title   color.Color
	even    color.Color
	odd     color.Color
	accents []color.Color
}

func loadPalette() palette {
	dark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)
	s := text.LoadTheme().Resolve(dark)

	p := palette{
		title: lipgloss.Color(s.Title),
		even:  lipgloss.Color(s.Body),
		odd:   lipgloss.Color(s.Muted),
	}
	for _, a := range s.Accents {
		p.accents = append(p.accents, lipgloss.Color(a))
	}
	return p
}

// row picks the colour for the i'th row: the accent of the provider it
// belongs to, or alternating body and muted for rows without one.
func (p palette) row(r map[string]interface{}, i int) color.Color {
	for _, key := range []string{"provider", "id"} {
		s, _ := r[key].(string)
		if rank, ok := catalog.ProviderRank(s); ok && rank < len(p.accents) {
			return p.accents[rank]
		}
	}
	if i%2 == 0 {
		return p.even
	}
	return p.odd
}

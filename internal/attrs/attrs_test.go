// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package attrs

import (
	"embed"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

//go:embed testdata/*.yaml
var testDataFS embed.FS

type testSetCase struct {
	Name      string `yaml:"name"`
	Initial   []Attr `yaml:"initial"`
	Value     string `yaml:"value"`
	WantLen   int    `yaml:"wantLen"`
	WantAttrs []Attr `yaml:"wantAttrs"`
	WantErr   bool   `yaml:"wantErr"`
}

type testTransformCase struct {
	Name          string      `yaml:"name"`
	TransformSpec string      `yaml:"transformSpec"`
	Input         interface{} `yaml:"input"`
	Want          interface{} `yaml:"want"`
}

type testGlobalTransformCase struct {
	Name      string   `yaml:"name"`
	Initial   []Attr   `yaml:"initial"`
	WantSpecs []string `yaml:"wantSpecs"`
}

func loadTestData(filename string, v any) error {
	data, err := testDataFS.ReadFile("testdata/" + filename)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, v)
}

func TestAttrList_Set(t *testing.T) {
	var tests []testSetCase
	require.NoError(t, loadTestData("set_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			a := AttrList(tt.Initial)
			err := a.Set(tt.Value)

			if tt.WantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Len(t, a, tt.WantLen)
			for i, want := range tt.WantAttrs {
				assert.Equal(t, want.Key, a[i].Key, "attr[%d].Key", i)
				assert.Equal(t, want.OutputKey, a[i].OutputKey, "attr[%d].OutputKey", i)
				assert.Equal(t, want.Include, a[i].Include, "attr[%d].Include", i)
				assert.Equal(t, want.TransformSpec, a[i].TransformSpec, "attr[%d].TransformSpec", i)
			}
		})
	}
}

func TestAttrList_SetGlobalTransformSpec(t *testing.T) {
	var tests []testGlobalTransformCase
	require.NoError(t, loadTestData("global_transform_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			a := AttrList(tt.Initial)
			require.NoError(t, a.SetGlobalTransformSpec())
			require.Len(t, a, len(tt.WantSpecs))
			for i, want := range tt.WantSpecs {
				assert.Equal(t, want, a[i].TransformSpec, "attr[%d]", i)
			}
		})
	}
}

func TestAttr_Transform(t *testing.T) {
	var tests []testTransformCase
	require.NoError(t, loadTestData("transform_cases.yaml", &tests))

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			a := Attr{TransformSpec: tt.TransformSpec}
			assert.EqualValues(t, tt.Want, a.Transform(tt.Input))
		})
	}
}

func TestAttrList_String(t *testing.T) {
	a := AttrList{
		{Key: "id", OutputKey: "id"},
		{Key: "attributes.name", OutputKey: "name", TransformSpec: "U"},
	}
	assert.Equal(t, "id:id:,attributes.name:name:U", a.String())
	assert.Equal(t, "list", a.Type())
}

func TestAttrList_Included(t *testing.T) {
	a := AttrList{
		{Key: "id", OutputKey: "id", Include: true},
		{Key: "attributes.accent", OutputKey: "accent"},
		{Key: "attributes.name", OutputKey: "name", Include: true},
	}
	var keys []string
	for _, attr := range a.Included() {
		keys = append(keys, attr.OutputKey)
	}
	assert.Equal(t, []string{"id", "name"}, keys)
}

func TestValue(t *testing.T) {
	raw := `{"id":"aws","attributes":{"name":"Amazon Web Services","features":["a","b"],"tiers":["Hot"]}}`

	tests := []struct {
		path string
		want interface{}
	}{
		{"id", "aws"},
		{"attributes.name", "Amazon Web Services"},
		{"attributes.features[1]", "b"},
		{"attributes.features", []interface{}{"a", "b"}},
		{"attributes.tiers", "Hot"},
		{"attributes.features[5]", nil},
		{"attributes.missing", nil},
		{"bad path!", nil},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, Value(raw, tt.path).Value())
		})
	}
}

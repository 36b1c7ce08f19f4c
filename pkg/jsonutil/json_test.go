package jsonutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected any
		wantErr  bool
	}{
		{"empty", "", map[string]any{}, false},
		{"blank", "   ", map[string]any{}, false},
		{"null", "null", map[string]any{}, false},
		{"object", `{"a":1,"b":[true,"x"]}`, map[string]any{"a": float64(1), "b": []any{true, "x"}}, false},
		{"array", `[1,2]`, []any{float64(1), float64(2)}, false},
		{"invalid", `{"a":`, nil, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestParseMap(t *testing.T) {
	m, err := ParseMap(`{"k":"v"}`)
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"k": "v"}, m)

	_, err = ParseMap(`[1]`)
	assert.Error(t, err)
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name     string
		input    any
		expected string
	}{
		{"nil", nil, ""},
		{"string passthrough", `{"a":1}`, `{"a":1}`},
		{"bytes passthrough", []byte("raw"), "raw"},
		{"map", map[string]any{"a": 1}, `{"a":1}`},
		{"number", 42, "42"},
		{"bool", false, "false"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Stringify(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}

	_, err := Stringify(make(chan int))
	assert.Error(t, err)
}

func TestCleanObject(t *testing.T) {
	m := map[string]any{"a": "", "b": "x", "c": 0, "d": nil}
	out := CleanObject(m)
	assert.Equal(t, map[string]any{"b": "x", "c": 0, "d": nil}, out)
	assert.Equal(t, out, m, "cleaned in place")
}

func TestCleanEmptyObjectProperties(t *testing.T) {
	in := map[string]any{
		"a": "",
		"b": map[string]any{"c": "", "d": "keep"},
		"e": []any{map[string]any{"f": ""}, "", 1},
	}

	out := CleanEmptyObjectProperties(in)

	assert.Equal(t, map[string]any{
		"b": map[string]any{"d": "keep"},
		"e": []any{map[string]any{}, "", 1},
	}, out)
	assert.Equal(t, "scalar", CleanEmptyObjectProperties("scalar"))
}

func TestParseChildObjects(t *testing.T) {
	page := map[string]any{
		"title":   "Home",
		"modules": `["hero","footer"]`,
		"css":     "",
		"tags":    []any{"already"},
	}

	out, err := ParseChildObjects(page)
	require.NoError(t, err)

	assert.Equal(t, []any{"hero", "footer"}, out["modules"])
	assert.Equal(t, map[string]any{}, out["css"])
	assert.Equal(t, []any{"already"}, out["tags"])
	assert.Equal(t, map[string]any{}, out["related"])
	assert.Equal(t, "Home", out["title"])

	_, err = ParseChildObjects(map[string]any{"scripts": "{broken"})
	assert.ErrorContains(t, err, `field "scripts"`)

	custom, err := ParseChildObjects(nil, "only")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{"only": map[string]any{}}, custom)
}

func TestQueryString(t *testing.T) {
	qs := JSONToQueryString(map[string]any{
		"name":  "Jane Doe",
		"age":   30,
		"admin": true,
		"none":  nil,
		"list":  []any{"a", "b"},
	})
	assert.Equal(t, "admin=true&age=30&list=a%2Cb&name=Jane+Doe&none=null", qs)
	assert.Equal(t, "", JSONToQueryString(nil))

	assert.Equal(t, map[string]string{
		"name": "Jane Doe",
		"age":  "30",
	}, QueryStringToJSON("?name=Jane+Doe&age=30"))

	assert.Equal(t, map[string]string{"a": "2", "flag": ""}, QueryStringToJSON("a=1&a=2&flag&bad=%zz"))
	assert.Empty(t, QueryStringToJSON(""))
}

func TestPatches(t *testing.T) {
	doc := []byte(`{"a":1,"b":{"c":2,"d":3},"list":[1,2]}`)

	merged, err := MergePatch(doc, []byte(`{"b":{"c":null,"e":4},"list":[9]}`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1,"b":{"d":3,"e":4},"list":[9]}`, string(merged))

	created, err := CreateMergePatch(doc, merged)
	require.NoError(t, err)
	roundTrip, err := MergePatch(doc, created)
	require.NoError(t, err)
	assert.True(t, Equal(merged, roundTrip))

	applied, err := ApplyPatch(doc, []byte(`[{"op":"replace","path":"/a","value":5},{"op":"remove","path":"/list/0"}]`))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":5,"b":{"c":2,"d":3},"list":[2]}`, string(applied))

	_, err = ApplyPatch(doc, []byte(`not json`))
	assert.Error(t, err)

	_, err = MergePatch([]byte(`{`), []byte(`{}`))
	assert.Error(t, err)
}

func TestYAML(t *testing.T) {
	m, err := ParseYAML("name: svc\nreplicas: 3\nlabels:\n  tier: web\n")
	require.NoError(t, err)
	assert.Equal(t, map[string]any{
		"name":     "svc",
		"replicas": 3,
		"labels":   map[string]any{"tier": "web"},
	}, m)

	empty, err := ParseYAML("")
	require.NoError(t, err)
	assert.Empty(t, empty)

	_, err = ParseYAML("a: [unclosed")
	assert.Error(t, err)

	out, err := ToYAML(map[string]any{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, "a: 1\n", out)
}

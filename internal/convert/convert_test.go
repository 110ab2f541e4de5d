// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package convert

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/uxf-mermaid/internal/mermaid"
	"github.com/pdiddy/uxf-mermaid/pkg/types"
)

// fakeConverter implements Converter for testing. It returns a canned
// document or an error.
type fakeConverter struct {
	doc Document
	err error
}

func (f *fakeConverter) Convert(path string) (Document, error) {
	if f.err != nil {
		return Document{}, f.err
	}
	return f.doc, nil
}

// selectiveConverter fails for the listed paths and succeeds otherwise.
type selectiveConverter struct {
	errors map[string]error
	calls  []string
}

func (s *selectiveConverter) Convert(path string) (Document, error) {
	s.calls = append(s.calls, path)
	if err, ok := s.errors[path]; ok {
		return Document{}, err
	}
	return Document{Markdown: "```mermaid\nsequenceDiagram\n```\n", Mode: types.ModeSequence}, nil
}

func testLogger(buf *bytes.Buffer) *log.Logger {
	return log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, filepath.Join("uml", "login.md"), OutputPath(filepath.Join("uml", "login.uxf")))
	assert.Equal(t, "a.b.md", OutputPath("a.b.uxf"))
	assert.Equal(t, "noext.md", OutputPath("noext"))
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "b.uxf", "")
	writeFile(t, dir, "a.uxf", "")
	writeFile(t, dir, "notes.md", "")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "nested.uxf"), 0o755))
	writeFile(t, filepath.Join(dir, "nested.uxf"), "c.uxf", "")

	paths, err := Discover(dir, DefaultPattern)
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(dir, "a.uxf"), filepath.Join(dir, "b.uxf")}, paths)

	_, err = Discover(filepath.Join(dir, "missing"), DefaultPattern)
	assert.Error(t, err)

	_, err = Discover(dir, "[")
	assert.Error(t, err)
}

func TestConvertFile(t *testing.T) {
	tests := []struct {
		name        string
		converter   *fakeConverter
		cfg         types.ConversionConfig
		preCreate   bool
		wantStatus  types.ConversionStatus
		wantErr     bool
		wantLog     string
		wantContent string
	}{
		{
			name:        "successful conversion",
			converter:   &fakeConverter{doc: Document{Markdown: "new", Mode: types.ModeClass}},
			wantStatus:  types.ConversionDone,
			wantLog:     "converted",
			wantContent: "new",
		},
		{
			name:        "existing output is overwritten",
			converter:   &fakeConverter{doc: Document{Markdown: "new"}},
			preCreate:   true,
			wantStatus:  types.ConversionDone,
			wantLog:     "converted",
			wantContent: "new",
		},
		{
			name:        "skip existing output",
			converter:   &fakeConverter{doc: Document{Markdown: "should not be written"}},
			cfg:         types.ConversionConfig{SkipExisting: true},
			preCreate:   true,
			wantStatus:  types.ConversionNone,
			wantLog:     "skipped",
			wantContent: "existing",
		},
		{
			name:       "conversion failure",
			converter:  &fakeConverter{err: errors.New("bad xml")},
			wantStatus: types.ConversionFailed,
			wantErr:    true,
			wantLog:    "failed",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			src := writeFile(t, dir, "flow.uxf", "<diagram/>")
			if tt.preCreate {
				writeFile(t, dir, "flow.md", "existing")
			}

			var logBuf bytes.Buffer
			r := NewRunner(tt.converter, tt.cfg, testLogger(&logBuf), nil)
			res, err := r.ConvertFile(src)

			if tt.wantErr {
				require.Error(t, err)
				assert.NotEmpty(t, res.Error)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, res.Status)
			assert.Contains(t, logBuf.String(), tt.wantLog)

			if tt.wantContent != "" {
				data, err := os.ReadFile(filepath.Join(dir, "flow.md"))
				require.NoError(t, err)
				assert.Equal(t, tt.wantContent, string(data))
			}
		})
	}
}

func TestConvertFile_Frontmatter(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "shapes.uxf", "")
	conv := &fakeConverter{doc: Document{Markdown: "```mermaid\nclassDiagram\n```\n", Mode: types.ModeClass}}

	r := NewRunner(conv, types.ConversionConfig{Frontmatter: true}, nil, nil)
	_, err := r.ConvertFile(src)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "shapes.md"))
	require.NoError(t, err)
	content := string(data)

	assert.True(t, strings.HasPrefix(content, "---\n"))
	assert.Contains(t, content, "source: shapes.uxf")
	assert.Contains(t, content, "diagram: class")
	assert.Contains(t, content, "converted_at:")
	assert.True(t, strings.HasSuffix(content, "---\n\n```mermaid\nclassDiagram\n```\n"))
}

func TestConvertFile_DryRun(t *testing.T) {
	dir := t.TempDir()
	src := writeFile(t, dir, "flow.uxf", "")
	conv := &fakeConverter{doc: Document{Markdown: "```mermaid\nsequenceDiagram\n```\n"}}

	var out bytes.Buffer
	r := NewRunner(conv, types.ConversionConfig{DryRun: true}, nil, &out)
	res, err := r.ConvertFile(src)
	require.NoError(t, err)
	assert.Equal(t, types.ConversionDone, res.Status)
	assert.Contains(t, out.String(), "sequenceDiagram")

	_, err = os.Stat(filepath.Join(dir, "flow.md"))
	assert.True(t, os.IsNotExist(err), "dry run must not write output")
}

func TestConvertPaths(t *testing.T) {
	dir := t.TempDir()
	a := writeFile(t, dir, "a.uxf", "")
	b := writeFile(t, dir, "b.uxf", "")
	c := writeFile(t, dir, "c.uxf", "")

	t.Run("first failure aborts", func(t *testing.T) {
		conv := &selectiveConverter{errors: map[string]error{b: errors.New("bad xml")}}
		r := NewRunner(conv, types.ConversionConfig{}, nil, nil)

		result, err := r.ConvertPaths([]string{a, b, c})
		require.Error(t, err)
		assert.Equal(t, []string{a, b}, conv.calls)
		assert.Equal(t, 1, result.Converted)
		assert.Equal(t, 1, result.Failed)
		assert.Equal(t, 2, result.Total())
	})

	t.Run("keep going counts failures", func(t *testing.T) {
		conv := &selectiveConverter{errors: map[string]error{b: errors.New("bad xml")}}
		var logBuf bytes.Buffer
		r := NewRunner(conv, types.ConversionConfig{KeepGoing: true}, testLogger(&logBuf), nil)

		result, err := r.ConvertPaths([]string{a, b, c})
		require.NoError(t, err)
		assert.Equal(t, 2, result.Converted)
		assert.Equal(t, 1, result.Failed)
		assert.True(t, result.HasFailures())
		require.Len(t, result.Files, 3)
		assert.Equal(t, "bad xml", result.Files[1].Error)
		assert.Contains(t, logBuf.String(), "batch summary")
	})
}

const sequenceDiagram = `<diagram program="umlet" version="15.1">
  <element><id>UMLGeneric</id><coordinates><x>0</x><y>0</y><w>100</w><h>30</h></coordinates>
    <panel_attributes>Client</panel_attributes></element>
  <element><id>UMLGeneric</id><coordinates><x>300</x><y>0</y><w>100</w><h>30</h></coordinates>
    <panel_attributes>Server</panel_attributes></element>
  <element><id>UMLGeneric</id><coordinates><x>150</x><y>200</y><w>60</w><h>30</h></coordinates>
    <panel_attributes>timeout=5s</panel_attributes></element>
  <element><id>Relation</id><coordinates><x>40</x><y>60</y><w>320</w><h>30</h></coordinates>
    <panel_attributes>lt=&lt;-
login\(user)</panel_attributes>
    <additional_attributes>310.0;10.0;10.0;10.0</additional_attributes></element>
</diagram>`

const classDiagram = `<diagram program="umlet" version="15.1">
  <element><id>UMLClass</id><coordinates><x>0</x><y>0</y><w>120</w><h>60</h></coordinates>
    <panel_attributes>&lt;&lt;interface&gt;&gt;
Shape
--
+area(): float</panel_attributes></element>
  <element><id>UMLClass</id><coordinates><x>300</x><y>0</y><w>120</w><h>60</h></coordinates>
    <panel_attributes>3D Model
--
-mesh: Mesh</panel_attributes></element>
  <element><id>Relation</id><coordinates><x>110</x><y>20</y><w>200</w><h>30</h></coordinates>
    <panel_attributes>lt=-
renders</panel_attributes>
    <additional_attributes>200.0;10.0;10.0;10.0</additional_attributes></element>
  <element><id>UMLGeneric</id><coordinates><x>0</x><y>200</y><w>60</w><h>30</h></coordinates>
    <panel_attributes>note</panel_attributes></element>
</diagram>`

func TestConvertDir_EndToEnd(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "login.uxf", sequenceDiagram)
	writeFile(t, dir, "shapes.uxf", classDiagram)
	writeFile(t, dir, "readme.txt", "not a diagram")

	r := NewRunner(NewMermaidConverter(mermaid.DefaultOptions()), types.ConversionConfig{}, nil, nil)
	result, err := r.ConvertDir(dir)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Converted)

	login, err := os.ReadFile(filepath.Join(dir, "login.md"))
	require.NoError(t, err)
	assert.Equal(t, "```mermaid\n"+
		"sequenceDiagram\n"+
		"    participant Client as Client\n"+
		"    participant Server as Server\n"+
		"    Client->>Server: login (user)\n"+
		"```\n", string(login))

	shapes, err := os.ReadFile(filepath.Join(dir, "shapes.md"))
	require.NoError(t, err)
	assert.Equal(t, "```mermaid\n"+
		"classDiagram\n"+
		"    class Shape[\"Shape\"] {\n"+
		"        %% <<interface>>\n"+
		"        +area(): float\n"+
		"    }\n"+
		"    class _3D_Model[\"3D Model\"] {\n"+
		"        -mesh: Mesh\n"+
		"    }\n"+
		"    Shape -- _3D_Model: renders\n"+
		"```\n", string(shapes))

	_, err = os.Stat(filepath.Join(dir, "readme.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestConvertDir_MalformedXMLAborts(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "a.uxf", "<diagram><element>")
	writeFile(t, dir, "b.uxf", sequenceDiagram)

	r := NewRunner(NewMermaidConverter(mermaid.DefaultOptions()), types.ConversionConfig{}, nil, nil)
	result, err := r.ConvertDir(dir)
	require.Error(t, err)
	assert.Equal(t, 1, result.Failed)

	_, err = os.Stat(filepath.Join(dir, "b.md"))
	assert.True(t, os.IsNotExist(err))
}

func TestWriteReport(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.yaml")
	result := BatchResult{
		Converted: 1,
		Failed:    1,
		Files: []FileResult{
			{Source: "a.uxf", Output: "a.md", Status: types.ConversionDone, Mode: types.ModeSequence, Edges: 3},
			{Source: "b.uxf", Output: "b.md", Status: types.ConversionFailed, Error: "bad xml"},
		},
	}
	require.NoError(t, WriteReport(path, []string{"uml"}, result))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var rep Report
	require.NoError(t, yaml.Unmarshal(data, &rep))
	assert.Equal(t, []string{"uml"}, rep.Dirs)
	assert.Equal(t, result, rep.Result)
	assert.False(t, rep.Timestamp.IsZero())
}

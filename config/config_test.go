package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/ruse"
	"github.com/xiam/ruse/parser"
)

func writeFile(t *testing.T, name string, content string) string {
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.False(t, cfg.Reader.StrictDelimiters)
	assert.Equal(t, OutputSexpr, cfg.Output.Format)
	assert.NoError(t, cfg.Validate())
	assert.Len(t, cfg.ReaderOptions(), 1)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "ruse.toml", `
[reader]
strict_delimiters = true
trace = true

[output]
format = "tree"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Reader.StrictDelimiters)
	assert.True(t, cfg.Reader.Trace)
	assert.Equal(t, OutputTree, cfg.Output.Format)
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, "ruse.yml", `
reader:
  strict_delimiters: true
output:
  format: dump
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.Reader.StrictDelimiters)
	assert.False(t, cfg.Reader.Trace)
	assert.Equal(t, OutputDump, cfg.Output.Format)
}

func TestMaxDepth(t *testing.T) {
	path := writeFile(t, "ruse.toml", "[reader]\nmax_depth = 1\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Reader.MaxDepth)
	assert.Len(t, cfg.ReaderOptions(), 2)

	_, err = ruse.Read("((a))", cfg.ReaderOptions()...)
	assert.True(t, errors.Is(err, parser.ErrMaxDepth))

	_, err = ruse.Read("((a))", Default().ReaderOptions()...)
	assert.NoError(t, err)
}

func TestLoadDefaults(t *testing.T) {
	path := writeFile(t, "ruse.toml", "[reader]\nstrict_delimiters = false\n")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, OutputSexpr, cfg.Output.Format)
}

func TestLoadErrors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.toml", "[reader\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "bad.yaml", "reader: [\n"))
	assert.Error(t, err)

	path := writeFile(t, "format.toml", "[output]\nformat = \"xml\"\n")
	_, err = Load(path)
	assert.EqualError(t, err, `loading config "`+path+`": unknown output format "xml"`)

	_, err = Parse([]byte{}, Format(9))
	assert.EqualError(t, err, "unsupported format: unknown")
}

func TestDetectFormat(t *testing.T) {
	assert.Equal(t, FormatYAML, detectFormat("a/b.yaml"))
	assert.Equal(t, FormatYAML, detectFormat("b.YML"))
	assert.Equal(t, FormatTOML, detectFormat("b.toml"))
	assert.Equal(t, FormatTOML, detectFormat("b"))
	assert.Equal(t, "yaml", FormatYAML.String())
}

func TestValidate(t *testing.T) {
	type stackTracer interface {
		StackTrace() errors.StackTrace
	}

	cfg := Default()
	cfg.Output.Format = "xml"

	err := cfg.Validate()
	assert.EqualError(t, err, `unknown output format "xml"`)
	_, ok := err.(stackTracer)
	assert.True(t, ok)

	_, err = Parse([]byte{}, Format(9))
	_, ok = err.(stackTracer)
	assert.True(t, ok)
}

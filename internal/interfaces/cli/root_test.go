package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/turtacn/dockscore/pkg/errors"
	"github.com/turtacn/dockscore/pkg/terms"
)

const quietConfig = "log:\n  level: error\n  format: console\nscoring:\n  workers: 2\n"

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the root command with args and a quiet config unless the
// caller passes its own --config.
func run(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	hasConfig := false
	for _, a := range args {
		if a == "--config" || a == "-c" {
			hasConfig = true
		}
	}
	if !hasConfig {
		args = append(args, "--config", writeFile(t, "dockscore.yaml", quietConfig))
	}

	cmd := NewRootCommand()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return stdout.String(), stderr.String(), err
}

func TestRootCommand_Flags(t *testing.T) {
	cmd := NewRootCommand()
	for _, name := range []string{"config", "log-level", "output", "verbose"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(name), name)
	}
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	assert.ElementsMatch(t, []string{"terms", "eval", "score", "version"}, names)
}

func TestRootCommand_InvalidOutputFormat(t *testing.T) {
	_, _, err := run(t, "", "version", "-o", "yaml")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.CodeInvalidParam))
}

func TestRootCommand_InvalidLogLevel(t *testing.T) {
	_, _, err := run(t, "", "version", "--log-level", "loud")
	require.Error(t, err)
}

func TestRootCommand_BadConfig(t *testing.T) {
	path := writeFile(t, "bad.yaml", "scoring:\n  terms:\n    - kind: morse\n")
	_, _, err := run(t, "", "terms", "--config", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config initialization failed")
}

func TestGetCLIContext_Missing(t *testing.T) {
	_, err := GetCLIContext(&cobra.Command{})
	assert.Error(t, err)
}

func TestVersionCommand(t *testing.T) {
	out, _, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dockscore "+Version)

	out, _, err = run(t, "", "version", "-o", "json")
	require.NoError(t, err)
	var info BuildInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, Version, info.Version)
	assert.NotEmpty(t, info.GoVersion)
}

func TestRenderTable(t *testing.T) {
	var buf bytes.Buffer
	RenderTable(&buf, []string{"NAME", "VALUE"}, [][]string{{"gauss", "1"}, {"repulsion", "0.25"}})
	out := buf.String()
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "repulsion")
	assert.Contains(t, out, "0.25")
}

func TestVerboseEnablesDebugLogging(t *testing.T) {
	_, stderr, err := run(t, "", "terms", "-v")
	require.NoError(t, err)
	assert.Contains(t, stderr, "term registered")
}

func TestPrintResult_TextFallback(t *testing.T) {
	out, _, err := run(t, "", "terms", "-o", "text")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 10)
	assert.True(t, strings.HasPrefix(lines[0], "0\tpairwise\t1\t"))
}

func TestDefaultTermCount(t *testing.T) {
	// Keeps the text-output expectation above honest.
	enabled := 0
	for _, s := range terms.DefaultSpecs() {
		if s.IsEnabled() {
			enabled++
		}
	}
	assert.Equal(t, 10, enabled)
}

//Personal.AI order the ending

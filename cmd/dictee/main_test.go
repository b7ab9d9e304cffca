package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verte-zerg/dictee/internal/config"
	"github.com/verte-zerg/dictee/internal/model"
)

func runDictee(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(strings.NewReader(stdin))
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func isolate(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
}

type checkJSONOutput struct {
	Result struct {
		AllCorrect bool `json:"allCorrect"`
		Words      []struct {
			UserWord    string `json:"userWord"`
			CorrectWord string `json:"correctWord"`
			Status      string `json:"status"`
		} `json:"words"`
	} `json:"result"`
	Metrics struct {
		CorrectWords int `json:"correctWords"`
	} `json:"metrics"`
}

func decodeCheck(t *testing.T, out string) checkJSONOutput {
	t.Helper()
	var decoded checkJSONOutput
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	return decoded
}

func TestCheckJSON(t *testing.T) {
	isolate(t)
	out, err := runDictee(t, "", "check", "--json", "I has a cat", "I have a cat")
	require.NoError(t, err)

	decoded := decodeCheck(t, out)
	assert.False(t, decoded.Result.AllCorrect)
	require.Len(t, decoded.Result.Words, 4)
	assert.Equal(t, "has", decoded.Result.Words[1].UserWord)
	assert.Equal(t, "have", decoded.Result.Words[1].CorrectWord)
	assert.Equal(t, "partial", decoded.Result.Words[1].Status)
	assert.Equal(t, 3, decoded.Metrics.CorrectWords)
}

func TestCheckPlainReport(t *testing.T) {
	isolate(t)
	out, err := runDictee(t, "", "check", "--color", "never", "the cat", "The cat.")
	require.NoError(t, err)
	assert.Contains(t, out, "Words: 2/2 correct")
	assert.Contains(t, out, "All correct: yes")
	assert.NotContains(t, out, "\x1b[")
}

func TestCheckReadsTranscriptFromStdin(t *testing.T) {
	isolate(t)
	out, err := runDictee(t, "I have a cat\n", "check", "--json", "-", "I have a cat")
	require.NoError(t, err)
	assert.Contains(t, out, `"allCorrect": true`)
}

func TestCheckStrictFailsOnMistakes(t *testing.T) {
	isolate(t)
	_, err := runDictee(t, "", "check", "--strict", "--color", "never", "I has a cat", "I have a cat")
	require.ErrorIs(t, err, errNotAllCorrect)

	_, err = runDictee(t, "", "check", "--strict", "--color", "never", "I have a cat", "I have a cat")
	require.NoError(t, err)
}

func TestCheckRejectsUnknownColor(t *testing.T) {
	isolate(t)
	_, err := runDictee(t, "", "check", "--color", "sometimes", "a", "a")
	require.Error(t, err)
}

func TestCheckUsesConfigTieBreak(t *testing.T) {
	isolate(t)
	path := config.DefaultConfigPath()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("[practice]\ntie-break = \"first\"\n"), 0o644))

	out, err := runDictee(t, "", "check", "--json", "The bat sat on the mat", "The cat sat on the mat")
	require.NoError(t, err)
	decoded := decodeCheck(t, out)
	require.Len(t, decoded.Result.Words, 6)
	assert.Equal(t, "cat", decoded.Result.Words[1].CorrectWord)

	out, err = runDictee(t, "", "check", "--json", "--tie-break", "last", "The bat sat on the mat", "The cat sat on the mat")
	require.NoError(t, err)
	decoded = decodeCheck(t, out)
	require.Len(t, decoded.Result.Words, 6)
	assert.Equal(t, "mat", decoded.Result.Words[1].CorrectWord)
}

func TestSetsLifecycle(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "band7.txt")
	require.NoError(t, os.WriteFile(file, []byte("# listening part 1\nThe library opens at nine.\n\nBring your student card.\n"), 0o644))

	out, err := runDictee(t, "", "sets", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, `Imported 2 sentences into "band7"`)

	out, err = runDictee(t, "", "sets", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "band7\t2 sentences")

	out, err = runDictee(t, "", "sets", "show", "band7")
	require.NoError(t, err)
	assert.Equal(t, "  1. The library opens at nine.\n  2. Bring your student card.\n", out)

	_, err = runDictee(t, "", "sets", "delete", "band7")
	require.NoError(t, err)

	_, err = runDictee(t, "", "sets", "show", "band7")
	require.Error(t, err)
}

func TestSetsImportYAMLName(t *testing.T) {
	isolate(t)
	file := filepath.Join(t.TempDir(), "set.yaml")
	require.NoError(t, os.WriteFile(file, []byte("name: cambridge-15\nsentences:\n  - The museum is closed on Mondays.\n"), 0o644))

	out, err := runDictee(t, "", "sets", "import", file)
	require.NoError(t, err)
	assert.Contains(t, out, `"cambridge-15"`)

	out, err = runDictee(t, "", "sets", "import", "--name", "custom", file)
	require.NoError(t, err)
	assert.Contains(t, out, `"custom"`)
}

func TestImportSetName(t *testing.T) {
	assert.Equal(t, "flag", importSetName(" flag ", "file", "/tmp/x.txt"))
	assert.Equal(t, "file", importSetName("", "file", "/tmp/x.txt"))
	assert.Equal(t, "x", importSetName("", "", "/tmp/x.txt"))
}

func TestValidateConfig(t *testing.T) {
	assert.NoError(t, validateConfig(model.Config{HintStep: 1, TieBreak: "last"}))
	assert.Error(t, validateConfig(model.Config{HintStep: -1, TieBreak: "last"}))
	assert.Error(t, validateConfig(model.Config{HintStep: 1, TieBreak: "middle"}))
}

func TestDefaultConfigTemplateDecodes(t *testing.T) {
	var cfg config.FileConfig
	_, err := toml.Decode(defaultConfigTemplate(), &cfg)
	require.NoError(t, err)
	assert.Nil(t, cfg.Practice.Set)
	assert.Nil(t, cfg.Display.Color)
}

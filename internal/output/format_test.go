package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type sample struct {
	AccountID string `json:"account_id" yaml:"account_id"`
	Path      string `json:"path" yaml:"path"`
}

func TestFormatter_YAML(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	f := NewFormatter(FormatYAML, &buf)

	require.NoError(t, f.Print(sample{AccountID: "grav1abc", Path: "m/44'/118'/0'/0/0"}))

	var decoded sample
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "grav1abc", decoded.AccountID)
	assert.Equal(t, "m/44'/118'/0'/0/0", decoded.Path)
}

func TestFormatter_JSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON, &buf)

	require.NoError(t, f.Print(sample{AccountID: "grav1abc"}))

	var decoded sample
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "grav1abc", decoded.AccountID)
	// Compact output is a single line.
	assert.NotContains(t, string(bytes.TrimRight(buf.Bytes(), "\n")), "\n")
}

func TestFormatter_PrettyJSON(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	f := NewFormatter(FormatPrettyJSON, &buf)

	require.NoError(t, f.Print(sample{AccountID: "grav1abc", Path: "m/0"}))
	assert.Contains(t, buf.String(), "  \"account_id\"")
}

func TestFormatter_Text(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	f := NewFormatter(FormatText, &buf)

	require.NoError(t, f.Print("hello"))
	assert.Equal(t, "hello\n", buf.String())
}

func TestParseFormat(t *testing.T) {
	t.Parallel()
	assert.Equal(t, FormatYAML, ParseFormat("yaml"))
	assert.Equal(t, FormatYAML, ParseFormat("YML"))
	assert.Equal(t, FormatJSON, ParseFormat(" json "))
	assert.Equal(t, FormatPrettyJSON, ParseFormat("prettyjson"))
	assert.Equal(t, FormatPrettyJSON, ParseFormat("pretty-json"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatAuto, ParseFormat("bogus"))
	assert.Equal(t, FormatAuto, ParseFormat(""))
}

func TestDetectFormat_Explicit(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.Equal(t, FormatJSON, DetectFormat(&buf, FormatJSON))
	assert.Equal(t, FormatText, DetectFormat(&buf, FormatText))
}

func TestDetectFormat_NonTTY(t *testing.T) {
	t.Parallel()
	// A plain buffer is not a terminal.
	var buf bytes.Buffer
	assert.Equal(t, FormatJSON, DetectFormat(&buf, FormatAuto))
}

func TestFormatter_IsMachine(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	assert.True(t, NewFormatter(FormatYAML, &buf).IsMachine())
	assert.True(t, NewFormatter(FormatJSON, &buf).IsMachine())
	assert.False(t, NewFormatter(FormatText, &buf).IsMachine())
}

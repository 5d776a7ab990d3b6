package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestBuildCmd_FromDefinition(t *testing.T) {
	def := writeTemp(t, "payload.yaml", `
capacity: 128
pairs:
  - key: id
    value: "123"
  - key: temp
    value: "23.5"
    numeric: true
  - key: alarm
    value: ""
  - key: samples
    items: ["10", "20", "30"]
`)
	var out bytes.Buffer
	cmd := BuildCmd{Input: def, Verify: true}
	require.NoError(t, cmd.run(&out))
	assert.Equal(t, `{"id":"123","temp":23.5,"samples":[10,20,30]}`+"\n", out.String())
}

func TestBuildCmd_KeyCaseAndCapacityFlagWins(t *testing.T) {
	def := writeTemp(t, "payload.yaml", `
capacity: 8
pairs:
  - key: PumpSpeed
    value: "900"
`)
	var out bytes.Buffer
	cmd := BuildCmd{Input: def, Capacity: 64, KeyCase: "snake"}
	require.NoError(t, cmd.run(&out))
	assert.Equal(t, `{"pump_speed":"900"}`+"\n", out.String())
}

func TestBuildCmd_RejectsBadYAML(t *testing.T) {
	def := writeTemp(t, "payload.yaml", "pairs: [\n")
	var out bytes.Buffer
	cmd := BuildCmd{Input: def}
	require.Error(t, cmd.run(&out))
}

func TestExtractCmd_FieldsArrayAndBool(t *testing.T) {
	payload := writeTemp(t, "doc.json", `{"id":"7","status":"ON","samples":[10,20,30]}`+"\n")
	var out bytes.Buffer
	cmd := ExtractCmd{
		Input: payload,
		Field: []string{"id", "missing"},
		Bool:  []string{"status"},
		Array: "samples",
	}
	require.NoError(t, cmd.run(&out))
	assert.Equal(t, "id=7\nmissing=\nstatus=true\nsamples=10 20 30\n", out.String())
}

func TestExtractCmd_NestedArrayIsAnError(t *testing.T) {
	payload := writeTemp(t, "doc.json", `{"v":[[1],[2]]}`)
	var out bytes.Buffer
	cmd := ExtractCmd{Input: payload, Array: "v"}
	require.Error(t, cmd.run(&out))
}

func TestStampCmd_EncodeAndDecode(t *testing.T) {
	var out bytes.Buffer
	enc := StampCmd{Year: 2024, Month: 3, Day: 7, Hour: 1, Minute: 2, Second: 3}
	require.NoError(t, enc.run(&out))
	assert.Equal(t, "24030703723\n", out.String())

	out.Reset()
	dec := StampCmd{Decode: "24030703723"}
	require.NoError(t, dec.run(&out))
	assert.Equal(t, "year=24 month=03 day=07 time=01:02:03\n", out.String())
}

func TestStampCmd_RejectsBadStamp(t *testing.T) {
	var out bytes.Buffer
	dec := StampCmd{Decode: "not-a-stamp"}
	require.Error(t, dec.run(&out))
}

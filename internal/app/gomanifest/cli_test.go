package gomanifest

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/stretchr/testify/assert"
)

const testManifest = `{
  "latest": { "release": "1.20.1", "snapshot": "23w10a" },
  "versions": [
    { "id": "23w10a", "type": "snapshot", "url": "https://example.org/23w10a.json", "releaseTime": "2023-03-08T12:00:00+00:00" },
    { "id": "1.20.1", "type": "release", "url": "https://example.org/1.20.1.json", "releaseTime": "2023-06-12T12:00:00+00:00" },
    { "id": "1.20", "type": "release", "url": "https://example.org/1.20.json", "releaseTime": "2023-06-07T12:00:00+00:00" },
    { "id": "1.19.4", "type": "release", "url": "https://example.org/1.19.4.json", "releaseTime": "2023-03-14T12:00:00+00:00" },
    { "id": "b1.7.3", "type": "old_beta", "url": "https://example.org/b1.7.3.json", "releaseTime": "2011-07-08T00:00:00+00:00" }
  ]
}`

// Starts a manifest server, writes a config pointing to it and captures the streams.
func setupCli(t *testing.T, input string) (configPath string, out *bytes.Buffer, errOut *bytes.Buffer) {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(testManifest))
	}))
	t.Cleanup(server.Close)

	configPath = filepath.Join(t.TempDir(), "gomanifest.json")
	configContent := fmt.Sprintf(`{"manifestUrl": "%s/manifest.json", "timeout": 5}`, server.URL)
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatal(err)
	}

	out = &bytes.Buffer{}
	errOut = &bytes.Buffer{}
	oldStdin, oldStdout, oldStderr := stdin, stdout, stderr
	stdin, stdout, stderr = strings.NewReader(input), out, errOut
	t.Cleanup(func() { stdin, stdout, stderr = oldStdin, oldStdout, oldStderr })
	return configPath, out, errOut
}

func TestSelectCmd(t *testing.T) {
	assert := assert.New(t)
	configPath, out, _ := setupCli(t, "1\n0\n")

	err := SelectCmd([]string{"-config", configPath})
	assert.NoError(err)
	assert.Contains(out.String(), "Choose release type:")
	assert.Contains(out.String(), "[0] 23w10a")
	assert.Contains(out.String(), "Snapshot 23w10a\n  Type:     snapshot")
}

func TestSelectCmdInvalidChoice(t *testing.T) {
	assert := assert.New(t)
	configPath, _, _ := setupCli(t, "9\n")

	err := SelectCmd([]string{"-config", configPath})
	assert.ErrorIs(err, common.ErrInvalidChannelChoice)
}

func TestFindCmd(t *testing.T) {
	assert := assert.New(t)
	configPath, out, errOut := setupCli(t, "")

	assert.NoError(FindCmd([]string{"-config", configPath, "-output", "json", "b1.7.3"}))
	assert.Contains(out.String(), `"label": "Beta b1.7.3"`)

	out.Reset()
	assert.NoError(FindCmd([]string{"-config", configPath, "unknown"}))
	assert.Contains(out.String(), "Snapshot 23w10a")
	assert.Contains(errOut.String(), "Entry 'unknown' not found")

	err := FindCmd([]string{"-config", configPath, "-strict", "unknown"})
	assert.ErrorIs(err, common.ErrEntryNotFound)
}

func TestLatestCmd(t *testing.T) {
	assert := assert.New(t)
	configPath, out, _ := setupCli(t, "")

	assert.NoError(LatestCmd([]string{"-config", configPath}))
	assert.True(strings.HasPrefix(out.String(), "Snapshot 23w10a\n"))

	out.Reset()
	assert.NoError(LatestCmd([]string{"-config", configPath, "-channel", "release"}))
	assert.True(strings.HasPrefix(out.String(), "1.20.1\n"))

	out.Reset()
	assert.NoError(LatestCmd([]string{"-config", configPath, "-line", "1.19"}))
	assert.True(strings.HasPrefix(out.String(), "1.19.4\n"))

	err := LatestCmd([]string{"-config", configPath, "-channel", "old_alpha"})
	assert.ErrorIs(err, common.ErrEntryNotFound)

	err = LatestCmd([]string{"-config", configPath, "-channel", "nightly"})
	assert.ErrorIs(err, common.ErrUnknownChannel)
}

func TestListCmd(t *testing.T) {
	assert := assert.New(t)
	configPath, out, _ := setupCli(t, "")

	assert.NoError(ListCmd([]string{"-config", configPath, "-match", "1.20*"}))
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	assert.Len(lines, 2)
	assert.True(strings.HasPrefix(lines[0], "1.20.1 "))
	assert.True(strings.HasPrefix(lines[1], "1.20 "))

	out.Reset()
	assert.NoError(ListCmd([]string{"-config", configPath, "-channel", "old_beta"}))
	assert.Contains(out.String(), "Beta b1.7.3")
}

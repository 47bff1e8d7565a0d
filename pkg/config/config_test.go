package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	assert := assert.New(t)

	cfg, err := Load("")
	assert.NoError(err)
	assert.Equal("https://piston-meta.mojang.com/mc/game/version_manifest_v2.json", cfg.ManifestUrl)
	assert.Equal(30, *cfg.Timeout)
	assert.Equal(common.OUTPUT_FORMAT_TEXT, cfg.Output)
	assert.NoError(cfg.Validate())

	versionRegex, err := cfg.GetVersioningRegex()
	assert.NoError(err)
	assert.True(versionRegex.MatchString("1.20.1"))
	assert.False(versionRegex.MatchString("23w10a"))
}

func TestLoadLocalYamlWithExtends(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "base.yaml"), `
timeout: 5
hostRules:
  - matchHost: mirror.example.org
    token: base-token
`)
	writeFile(t, filepath.Join(dir, "gomanifest.yml"), `
extends:
  - local:base.yaml
manifestUrl: https://mirror.example.org/manifest.json
output: yaml
hostRules:
  - matchHost: mirror.example.org
    token: own-token
`)

	cfg, err := Load(filepath.Join(dir, "gomanifest"))
	assert.NoError(err)
	assert.Equal("https://mirror.example.org/manifest.json", cfg.ManifestUrl)
	assert.Equal(5, *cfg.Timeout)
	assert.Equal(common.OUTPUT_FORMAT_YAML, cfg.Output)
	assert.Len(cfg.HostRules, 1)
	assert.Equal("own-token", cfg.HostRules[0].Token)
	// Defaults are still there
	assert.Equal("preset:release", cfg.Versioning)
}

func TestLoadFromConfigDir(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()
	t.Setenv("GOMANIFEST_CONFIG_DIR", dir)

	writeFile(t, filepath.Join(dir, "from-config-dir.json"), `{"timeout": 7}`)

	cfg, err := Load("from-config-dir")
	assert.NoError(err)
	assert.Equal(7, *cfg.Timeout)
}

func TestLoadJsonc(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	writeFile(t, filepath.Join(dir, "config.jsonc"), `{
  // A mirror for the manifest
  "manifestUrl": "https://mirror.example.org/manifest.json",
  "output": "json"
}`)

	cfg, err := Load(filepath.Join(dir, "config.jsonc"))
	assert.NoError(err)
	assert.Equal("https://mirror.example.org/manifest.json", cfg.ManifestUrl)
	assert.Equal(common.OUTPUT_FORMAT_JSON, cfg.Output)
}

func TestLoadErrors(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	_, err := Load(filepath.Join(dir, "missing.yaml"))
	assert.Error(err)

	_, err = Load("preset:does-not-exist")
	assert.Error(err)

	_, err = Load("ftp:somewhere")
	assert.ErrorContains(err, "unknown config type")
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	assert.Error((&ManifestConfig{Output: "xml"}).Validate())
	assert.Error((&ManifestConfig{Timeout: &[]int{-1}[0]}).Validate())
	assert.Error((&ManifestConfig{Versioning: "preset:missing"}).Validate())
	assert.Error((&ManifestConfig{Versioning: "("}).Validate())
	assert.NoError((&ManifestConfig{}).Validate())
}

func TestToDatasourceSettings(t *testing.T) {
	assert := assert.New(t)

	cfg := &ManifestConfig{ManifestUrl: "https://example.org", Timeout: &[]int{3}[0]}
	settings := cfg.ToDatasourceSettings(nil)
	assert.Equal("https://example.org", settings.ManifestUrl)
	assert.Equal(float64(3), settings.Timeout.Seconds())
}

func TestFileSearch(t *testing.T) {
	assert := assert.New(t)
	dir := t.TempDir()

	for _, ext := range []string{".json", ".jsonc", ".yaml", ".yml"} {
		fileToCreate := filepath.Join(dir, "folder", "gomanifest"+ext)
		writeFile(t, fileToCreate, "")
		foundPath, err := SearchConfigFileFromPath(filepath.Join(dir, "folder", "gomanifest"))
		assert.NoError(err)
		assert.Equal(fileToCreate, foundPath)
		assert.NoError(os.Remove(fileToCreate))
	}

	foundPath, err := SearchConfigFileFromPath(filepath.Join(dir, "folder", "gomanifest"))
	assert.NoError(err)
	assert.Equal("", foundPath)
}

func writeFile(t *testing.T, filePath string, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(filePath), os.ModePerm); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filePath, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

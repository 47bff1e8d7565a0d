package config

import (
	"fmt"
	"log/slog"
	"regexp"
	"slices"
	"time"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/roemer/gomanifest/pkg/presets"
)

// Checks the config for invalid values.
func (c *ManifestConfig) Validate() error {
	if c.Output != "" && !slices.Contains([]common.OutputFormat{common.OUTPUT_FORMAT_TEXT, common.OUTPUT_FORMAT_JSON, common.OUTPUT_FORMAT_YAML}, c.Output) {
		return fmt.Errorf("invalid output format '%s'", c.Output)
	}
	if c.Timeout != nil && *c.Timeout < 0 {
		return fmt.Errorf("invalid timeout '%d'", *c.Timeout)
	}
	if _, err := c.GetVersioningRegex(); err != nil {
		return err
	}
	return nil
}

// Resolves the versioning (with presets) and compiles it. Returns nil if no versioning is set.
func (c *ManifestConfig) GetVersioningRegex() (*regexp.Regexp, error) {
	if c.Versioning == "" {
		return nil, nil
	}
	versioning, err := presets.ResolveVersioning(c.Versioning, c.VersioningPresets)
	if err != nil {
		return nil, err
	}
	versionRegex, err := regexp.Compile(versioning)
	if err != nil {
		return nil, fmt.Errorf("failed parsing the 'versioning' regexp '%s': %w", versioning, err)
	}
	return versionRegex, nil
}

// Creates the settings for a datasource from the config.
func (c *ManifestConfig) ToDatasourceSettings(logger *slog.Logger) *common.DatasourceSettings {
	settings := &common.DatasourceSettings{
		Logger:      logger,
		ManifestUrl: c.ManifestUrl,
		HostRules:   c.HostRules,
	}
	if c.Timeout != nil {
		settings.Timeout = time.Duration(*c.Timeout) * time.Second
	}
	return settings
}

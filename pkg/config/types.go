package config

import (
	"github.com/roemer/gomanifest/pkg/common"
)

// This type represents the gomanifest config object.
type ManifestConfig struct {
	// A list of presets to also load before loading this config. All configs are merged together.
	Extends []string `json:"extends" yaml:"extends"`
	// The url of the version manifest.
	ManifestUrl string `json:"manifestUrl" yaml:"manifestUrl"`
	// The timeout in seconds for downloading the manifest.
	Timeout *int `json:"timeout" yaml:"timeout"`
	// The regexp used to parse release identifiers into versions. Can reference a preset with "preset:<name>".
	Versioning string `json:"versioning" yaml:"versioning"`
	// A map of presets for versionings that can be used and referenced.
	VersioningPresets map[string]string `json:"versioningPresets" yaml:"versioningPresets"`
	// The format used to print results. Can be "text", "json" or "yaml".
	Output common.OutputFormat `json:"output" yaml:"output"`
	// A list of rules that can apply to hosts.
	HostRules []*common.HostRule `json:"hostRules" yaml:"hostRules"`
}

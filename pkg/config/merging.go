package config

import (
	"maps"
	"slices"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/samber/lo"
)

func (configA *ManifestConfig) MergeWithAsCopy(configB *ManifestConfig) *ManifestConfig {
	merged := &ManifestConfig{}
	merged.MergeWith(configA)
	merged.MergeWith(configB)
	return merged
}

func (configA *ManifestConfig) MergeWith(configB *ManifestConfig) {
	if configB == nil {
		return
	}
	// Extends
	configA.Extends = lo.Union(configA.Extends, configB.Extends)
	// Simple values
	if configB.ManifestUrl != "" {
		configA.ManifestUrl = configB.ManifestUrl
	}
	if configB.Timeout != nil {
		configA.Timeout = &[]int{*configB.Timeout}[0]
	}
	if configB.Versioning != "" {
		configA.Versioning = configB.Versioning
	}
	if configB.Output != "" {
		configA.Output = configB.Output
	}
	// VersioningPresets
	if configA.VersioningPresets == nil {
		configA.VersioningPresets = map[string]string{}
	}
	maps.Copy(configA.VersioningPresets, configB.VersioningPresets)
	// HostRules, a rule for the same host replaces the existing one
	for _, hostRuleB := range configB.HostRules {
		copied := *hostRuleB
		idx := slices.IndexFunc(configA.HostRules, func(hr *common.HostRule) bool { return hr.MatchHost == hostRuleB.MatchHost })
		if idx >= 0 {
			configA.HostRules[idx] = &copied
		} else {
			configA.HostRules = append(configA.HostRules, &copied)
		}
	}
}

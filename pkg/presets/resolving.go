package presets

import (
	"fmt"
	"regexp"
)

var versioningPresetRegex = regexp.MustCompile(`^preset:\s*(.*?)\s*$`)

// Resolves a given versioning with a preset (if any).
func ResolveVersioning(versioning string, versioningPresets map[string]string) (string, error) {
	m := versioningPresetRegex.FindStringSubmatch(versioning)
	if m != nil {
		presetName := m[1]
		preset, ok := versioningPresets[presetName]
		if !ok {
			return "", fmt.Errorf("versioning preset '%s' not found", presetName)
		}
		return preset, nil
	}
	return versioning, nil
}

package config

import (
	"context"
	"encoding/json"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/adhocore/jsonc"
	"github.com/goccy/go-yaml"
	"github.com/roemer/goext"
	"github.com/roemer/gomanifest/pkg/common"
	"github.com/roemer/gomanifest/pkg/presets"
)

// The preset that every loaded config is merged on top of.
const DefaultsPreset = "preset:defaults"

// The extensions that are probed when a config path has none, in this order.
var ConfigFileExtensions = []string{".json", ".jsonc", ".yaml", ".yml"}

// Loads the given configuration on top of the defaults. An empty path only loads the defaults.
func Load(configPath string) (*ManifestConfig, error) {
	defaultsInfo, _ := newConfigInfo(DefaultsPreset)
	defaults, err := loadConfig(nil, defaultsInfo)
	if err != nil {
		return nil, err
	}
	if configPath == "" || configPath == DefaultsPreset {
		return defaults, nil
	}
	if !strings.Contains(configPath, ":") {
		configPath = fmt.Sprintf("local:%s", configPath)
	}
	configInfo, err := newConfigInfo(configPath)
	if err != nil {
		return nil, err
	}
	loaded, err := loadConfig(nil, configInfo)
	if err != nil {
		return nil, err
	}
	return defaults.MergeWithAsCopy(loaded), nil
}

// Searches for a config file with one of the known extensions. Returns an empty string if none exists.
func SearchConfigFileFromPath(basePath string) (string, error) {
	for _, ext := range ConfigFileExtensions {
		probePath := basePath + ext
		if exists, err := common.FileExists(probePath); err != nil {
			return "", err
		} else if exists {
			return probePath, nil
		}
	}
	return "", nil
}

// Searches the entries of a directory for a config file with one of the known extensions.
func SearchConfigFileFromDirEntries(baseName string, dirEntries []fs.DirEntry) (string, bool) {
	for _, ext := range ConfigFileExtensions {
		for _, dirEntry := range dirEntries {
			if !dirEntry.IsDir() && dirEntry.Name() == baseName+ext {
				return dirEntry.Name(), true
			}
		}
	}
	return "", false
}

////////////////////////////////////////////////////////////
// Internal
////////////////////////////////////////////////////////////

const (
	infoTypePreset string = "preset"
	infoTypeLocal  string = "local"
	infoTypeWeb    string = "web"
)

var httpSchemeRegex = regexp.MustCompile(`^https?://.+`)

// Holds information about the type and location of a config
type configInfo struct {
	Type     string
	Location string
}

func newConfigInfo(info string) (*configInfo, error) {
	if info == "" {
		return nil, fmt.Errorf("empty config info")
	}

	var configType, configLoc string

	if httpSchemeRegex.MatchString(info) {
		configType = infoTypeWeb
		configLoc = info
	} else {
		parts := strings.SplitN(info, ":", 2)
		if len(parts) == 1 {
			configType = infoTypePreset
			configLoc = parts[0]
		} else {
			configType = parts[0]
			configLoc = parts[1]
		}
	}
	return &configInfo{
		Type:     configType,
		Location: configLoc,
	}, nil
}

func loadConfig(parentInfo, newInfo *configInfo) (*ManifestConfig, error) {
	var newConfig *ManifestConfig
	var err error
	switch newInfo.Type {
	case infoTypePreset:
		newConfig, err = loadConfigFromEmbeddedFile(newInfo.Location)
	case infoTypeLocal:
		newConfig, err = loadConfigFromFile(parentInfo, newInfo)
	case infoTypeWeb:
		newConfig, err = loadConfigFromWeb(newInfo.Location)
	default:
		return nil, fmt.Errorf("unknown config type '%s'", newInfo.Type)
	}
	if err != nil {
		return nil, fmt.Errorf("failed reading config '%s:%s': %w", newInfo.Type, newInfo.Location, err)
	}

	// The extended configs first, then the config itself on top
	mergedConfig := &ManifestConfig{}
	for _, presetLookupInfo := range newConfig.Extends {
		presetInfo, err := newConfigInfo(presetLookupInfo)
		if err != nil {
			return nil, err
		}
		extendsConfig, err := loadConfig(newInfo, presetInfo)
		if err != nil {
			return nil, err
		}
		mergedConfig.MergeWith(extendsConfig)
	}
	mergedConfig.MergeWith(newConfig)
	return mergedConfig, nil
}

func loadConfigFromFile(parentInfo, newInfo *configInfo) (*ManifestConfig, error) {
	searchPaths := []string{}
	if filepath.IsAbs(newInfo.Location) {
		searchPaths = append(searchPaths, newInfo.Location)
	} else {
		// Current folder
		searchPaths = append(searchPaths, newInfo.Location)

		// Folder of the parent config
		if parentInfo != nil && parentInfo.Type == infoTypeLocal && parentInfo.Location != "" {
			searchPaths = append(searchPaths, filepath.Clean(filepath.Join(filepath.Dir(parentInfo.Location), newInfo.Location)))
		}

		// Current executable directory
		if executablePath, err := os.Executable(); err == nil {
			searchPaths = append(searchPaths, filepath.Clean(filepath.Join(filepath.Dir(executablePath), newInfo.Location)))
		}

		// An explicitly configured directory wins over all others
		if configDir := os.Getenv("GOMANIFEST_CONFIG_DIR"); configDir != "" {
			searchPaths = goext.SlicePrepend(searchPaths, filepath.Join(configDir, newInfo.Location))
		}
	}

	hasExt := filepath.Ext(newInfo.Location) != ""
	finalValidConfigPath := ""
	for _, searchPath := range searchPaths {
		if hasExt {
			if exists, err := common.FileExists(searchPath); err != nil {
				return nil, err
			} else if exists {
				finalValidConfigPath = searchPath
				break
			}
		} else {
			if foundPath, err := SearchConfigFileFromPath(searchPath); err != nil {
				return nil, err
			} else if foundPath != "" {
				finalValidConfigPath = foundPath
				break
			}
		}
	}
	if finalValidConfigPath == "" {
		return nil, fmt.Errorf("file not found for '%s'", newInfo.Location)
	}

	content, err := os.ReadFile(finalValidConfigPath)
	if err != nil {
		return nil, fmt.Errorf("failed opening file '%s': %w", finalValidConfigPath, err)
	}
	config, err := decodeConfig(content, filepath.Ext(finalValidConfigPath))
	if err != nil {
		return nil, fmt.Errorf("failed parsing file '%s': %w", finalValidConfigPath, err)
	}
	return config, nil
}

func loadConfigFromEmbeddedFile(configPath string) (*ManifestConfig, error) {
	configPath = path.Join("configs", configPath)

	// If there is no extension, search for a known one
	if path.Ext(configPath) == "" {
		dirEntries, err := presets.Presets.ReadDir(path.Dir(configPath))
		if err != nil {
			return nil, err
		}
		foundPath, found := SearchConfigFileFromDirEntries(path.Base(configPath), dirEntries)
		if !found {
			return nil, fmt.Errorf("could not find a config for file '%s'", configPath)
		}
		configPath = path.Join(path.Dir(configPath), foundPath)
	}

	content, err := presets.Presets.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed opening embedded file '%s': %w", configPath, err)
	}
	config, err := decodeConfig(content, path.Ext(configPath))
	if err != nil {
		return nil, fmt.Errorf("failed parsing embedded file '%s': %w", configPath, err)
	}
	return config, nil
}

func loadConfigFromWeb(urlString string) (*ManifestConfig, error) {
	parsedUrl, err := url.Parse(urlString)
	if err != nil {
		return nil, err
	}
	content, err := common.HttpUtil.DownloadToMemory(context.Background(), urlString, nil)
	if err != nil {
		return nil, fmt.Errorf("failed downloading config from '%s': %w", urlString, err)
	}
	config, err := decodeConfig(content, path.Ext(parsedUrl.Path))
	if err != nil {
		return nil, fmt.Errorf("failed parsing config from '%s': %w", urlString, err)
	}
	return config, nil
}

// Decodes json, jsonc (json with comments) or yaml, depending on the extension.
func decodeConfig(content []byte, ext string) (*ManifestConfig, error) {
	config := &ManifestConfig{}
	switch ext {
	case ".json":
		if err := json.Unmarshal(content, config); err != nil {
			return nil, err
		}
	case ".jsonc":
		stripped := jsonc.New().StripS(string(content))
		if err := json.Unmarshal([]byte(stripped), config); err != nil {
			return nil, err
		}
	default:
		if err := yaml.Unmarshal(content, config); err != nil {
			return nil, err
		}
	}
	return config, nil
}

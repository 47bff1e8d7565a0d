package datasources

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/roemer/gomanifest/pkg/common"
	"github.com/roemer/gomanifest/pkg/manifest"
)

type datasourceBase struct {
	name     string
	logger   *slog.Logger
	impl     common.IDatasource
	settings *common.DatasourceSettings
}

func newDatasourceBase(name string, settings *common.DatasourceSettings) *datasourceBase {
	logger := settings.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &datasourceBase{
		name:     name,
		logger:   logger.With(slog.String("datasource", name)),
		settings: settings,
	}
}

// Downloads the manifest and builds the catalog from it.
func (ds *datasourceBase) GetCatalog(ctx context.Context) (*manifest.Catalog, error) {
	manifestUrl := ds.impl.ManifestUrl()
	ds.logger.Info(fmt.Sprintf("Downloading manifest from '%s'", manifestUrl))
	if ds.settings.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, ds.settings.Timeout)
		defer cancel()
	}
	data, err := ds.impl.GetManifest(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed downloading the manifest: %w", err)
	}
	ds.logger.Debug(fmt.Sprintf("Downloaded %d bytes", len(data)))

	catalog, err := manifest.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed parsing the manifest from '%s': %w", manifestUrl, err)
	}
	for _, key := range catalog.IgnoredLatestKeys() {
		ds.logger.Debug(fmt.Sprintf("Ignoring unusable 'latest' key '%s'", key))
	}
	ds.logger.Info(fmt.Sprintf("Loaded %d entries", catalog.Count()))
	return catalog, nil
}

func (ds *datasourceBase) getManifestUrl(defaultUrl string) string {
	manifestUrl := defaultUrl
	if ds.settings.ManifestUrl != "" {
		manifestUrl = ds.settings.ManifestUrl
		ds.logger.Debug(fmt.Sprintf("Using custom manifest url: %s", manifestUrl))
	}
	return strings.TrimSuffix(manifestUrl, "/")
}

func (ds *datasourceBase) getHostRuleForUrl(rawUrl string) *common.HostRule {
	parsedUrl, err := url.Parse(rawUrl)
	if err != nil {
		return nil
	}
	hostRule := common.FindHostRule(parsedUrl.Host, ds.settings.HostRules)
	if hostRule != nil {
		ds.logger.Debug(fmt.Sprintf("Using host rule for '%s'", hostRule.MatchHost))
	}
	return hostRule
}

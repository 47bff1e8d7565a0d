package datasources

import (
	"context"

	"github.com/roemer/gomanifest/pkg/common"
)

const DefaultPistonManifestUrl = "https://piston-meta.mojang.com/mc/game/version_manifest_v2.json"

// Downloads the version manifest from the piston-meta endpoint (or a mirror of it).
type PistonManifestDatasource struct {
	*datasourceBase
}

func NewPistonManifestDatasource(settings *common.DatasourceSettings) *PistonManifestDatasource {
	newDatasource := &PistonManifestDatasource{
		datasourceBase: newDatasourceBase("piston-manifest", settings),
	}
	newDatasource.impl = newDatasource
	return newDatasource
}

func (ds *PistonManifestDatasource) ManifestUrl() string {
	return ds.getManifestUrl(DefaultPistonManifestUrl)
}

func (ds *PistonManifestDatasource) GetManifest(ctx context.Context) ([]byte, error) {
	manifestUrl := ds.ManifestUrl()
	return common.HttpUtil.DownloadToMemory(ctx, manifestUrl, ds.getHostRuleForUrl(manifestUrl))
}

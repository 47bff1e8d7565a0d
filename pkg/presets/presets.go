package presets

import (
	"embed"
)

//go:embed configs/*.yaml
var Presets embed.FS

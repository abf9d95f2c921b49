package app

import (
	"github.com/specialistvlad/gridquad/internal/config"
	"github.com/specialistvlad/gridquad/internal/hcl"
	"github.com/specialistvlad/gridquad/internal/yamlconfig"
)

// DefaultLoader maps every supported run file extension to its loader.
func DefaultLoader() config.ExtensionLoader {
	hclLoader := hcl.NewLoader()
	yamlLoader := yamlconfig.NewLoader()
	return config.ExtensionLoader{
		".hcl":  hclLoader,
		".json": hclLoader,
		".yaml": yamlLoader,
		".yml":  yamlLoader,
	}
}

package app

import (
	"github.com/specialistvlad/gridquad/internal/registry"
	"github.com/specialistvlad/gridquad/modules/constant"
	"github.com/specialistvlad/gridquad/modules/gaussian"
	"github.com/specialistvlad/gridquad/modules/ramp"
	"github.com/specialistvlad/gridquad/modules/shubert"
	"github.com/specialistvlad/gridquad/modules/sincos"
)

// coreModules is the definitive list of all integrand modules that are
// compiled into the gridquad binary.
var coreModules = []registry.Module{
	&shubert.Module{},
	&constant.Module{},
	&ramp.Module{},
	&gaussian.Module{},
	&sincos.Module{},
}

// AvailableIntegrands describes every integrand compiled into the binary.
func AvailableIntegrands() []string {
	reg := registry.New()
	for _, mod := range coreModules {
		mod.Register(reg)
	}
	return reg.Describe()
}

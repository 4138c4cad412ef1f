package app

import (
	"github.com/vk/appforge/internal/registry"
	"github.com/vk/appforge/modules/debug"
	"github.com/vk/appforge/modules/statics"
)

// coreModules is the definitive list of all plugin modules that are compiled
// into the appforge binary.
var coreModules = []registry.Module{
	&debug.Module{},
	&statics.Module{},
}

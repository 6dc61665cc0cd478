package app

import (
	"github.com/vk/panelgrid/internal/registry"
	"github.com/vk/panelgrid/modules/dashboard"
	"github.com/vk/panelgrid/modules/histogram"
	"github.com/vk/panelgrid/modules/textfilter"
)

// coreModules is the definitive list of all modules compiled into the
// library by default.
var coreModules = []registry.Module{
	&histogram.Module{},
	&textfilter.Module{},
	&dashboard.Module{},
}

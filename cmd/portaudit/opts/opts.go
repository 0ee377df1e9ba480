package opts

import (
	"github.com/neotools/portaudit/pkg/config"
	"github.com/neotools/portaudit/pkg/ui"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Config     *config.Config
	UserLogger *ui.UserLogger
}

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/vividus-framework/vividus-cli/internal/adapters/config"
	_ "github.com/vividus-framework/vividus-cli/internal/adapters/jvm"
	_ "github.com/vividus-framework/vividus-cli/internal/adapters/logger"
	_ "github.com/vividus-framework/vividus-cli/internal/adapters/repo"
	// Register app and engine nodes.
	_ "github.com/vividus-framework/vividus-cli/internal/app"
	_ "github.com/vividus-framework/vividus-cli/internal/engine/launch"
)

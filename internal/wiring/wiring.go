// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/recheck/internal/adapters/cas"
	_ "go.trai.ch/recheck/internal/adapters/config"
	_ "go.trai.ch/recheck/internal/adapters/fs"
	_ "go.trai.ch/recheck/internal/adapters/logger"
	_ "go.trai.ch/recheck/internal/adapters/report"
	_ "go.trai.ch/recheck/internal/adapters/shell"
	_ "go.trai.ch/recheck/internal/adapters/telemetry"
	// Register app nodes.
	_ "go.trai.ch/recheck/internal/app"
)

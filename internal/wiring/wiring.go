// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/fwbom/internal/adapters/config"
	_ "go.trai.ch/fwbom/internal/adapters/cyclonedx"
	_ "go.trai.ch/fwbom/internal/adapters/fs"
	_ "go.trai.ch/fwbom/internal/adapters/logger"
	_ "go.trai.ch/fwbom/internal/adapters/opkg"
	_ "go.trai.ch/fwbom/internal/adapters/output"
	_ "go.trai.ch/fwbom/internal/adapters/telemetry/progrock"
	// Register app and engine nodes.
	_ "go.trai.ch/fwbom/internal/app"
	_ "go.trai.ch/fwbom/internal/engine/pipeline"
)

// Package pkg provides the core libraries for pinboard, a geometry engine for
// free-form boards.
//
// # Overview
//
// A board is a canvas with blocks placed on it. Positions are percentages of
// the canvas so a board keeps its layout at any display size, while sizes are
// pixels. The pkg directory is organized into three areas:
//
//  1. [geom] - Pure geometry: size clamping, resizing, rotation, snapping
//  2. [board] and [gesture] - The board model and pointer gestures on it
//  3. [io], [render], [config], [cache] - Files, previews and settings
//
// # Architecture
//
// The typical data flow for one drag:
//
//	Board file (JSON/TOML)
//	         ↓
//	    [io] package (import + validate)
//	         ↓
//	    [gesture] package (session: start, update per pointer event, commit)
//	         ↓
//	    [geom] package (resize, rotate, snap)
//	         ↓
//	    [render/svg] package (preview with guides) → [render] (PNG/PDF)
//
// # Quick Start
//
// Drag a block and read the snap guides:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/pinboard/pkg/gesture"
//	    pio "github.com/matzehuels/pinboard/pkg/io"
//	)
//
//	b, _ := pio.ImportBoard("board.json")
//	s, _ := gesture.Move(ctx, b, "a", gesture.DefaultOptions())
//	frame, _ := s.Update(ctx, gesture.Input{DX: 120, DY: -40, Snap: true})
//	// frame.Guidelines and frame.Distances describe the guides to draw.
//	b, _ = s.Commit(ctx)
//
// Or call the engine directly:
//
//	r := geom.CalculateResize(geom.HandleBottomRight, 40, 20, rect, canvas, false)
//	res := geom.CalculateSnap(x, y, size, canvas, siblings, geom.DefaultSnapOptions())
//
// # Main Packages
//
// [geom] - Units (Percent, Pixels, Canvas), rectangles with auto
// dimensions, the size clamp, the eight resize handles and their cursors,
// the resize and rotation calculators and the snap engine.
//
// [board] - Boards and blocks with IDs, lookup and validation.
//
// [gesture] - Move, resize and rotate sessions over a board, plus TOML
// gesture scripts that replay a sequence of drags.
//
// [io] - Board import and export in JSON and TOML.
//
// [render] - PNG and PDF conversion via rsvg-convert.
//
// [render/svg] - SVG previews with blocks, guidelines and distance guides.
//
// [config] - TOML configuration for snap thresholds, size limits and logging.
//
// [cache] - Content-addressed cache for converted previews.
//
// [observability] - Hooks for gesture and board I/O events.
//
// [errors] - Coded errors shared by all packages.
//
// [buildinfo] - Version information set at build time.
//
// [geom]: https://pkg.go.dev/github.com/matzehuels/pinboard/pkg/geom
// [board]: https://pkg.go.dev/github.com/matzehuels/pinboard/pkg/board
// [gesture]: https://pkg.go.dev/github.com/matzehuels/pinboard/pkg/gesture
// [io]: https://pkg.go.dev/github.com/matzehuels/pinboard/pkg/io
// [render]: https://pkg.go.dev/github.com/matzehuels/pinboard/pkg/render
// [render/svg]: https://pkg.go.dev/github.com/matzehuels/pinboard/pkg/render/svg
// [config]: https://pkg.go.dev/github.com/matzehuels/pinboard/pkg/config
// [cache]: https://pkg.go.dev/github.com/matzehuels/pinboard/pkg/cache
// [observability]: https://pkg.go.dev/github.com/matzehuels/pinboard/pkg/observability
// [errors]: https://pkg.go.dev/github.com/matzehuels/pinboard/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/matzehuels/pinboard/pkg/buildinfo
package pkg

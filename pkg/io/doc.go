// Package io reads and writes pinboard boards as JSON or TOML.
//
// # Formats
//
// Both formats carry the same document: an optional name, the canvas size in
// pixels and the blocks in paint order. JSON:
//
//	{
//	  "name": "roadmap",
//	  "canvas": {"width": 1200, "height": 800},
//	  "blocks": [
//	    {"id": "a", "x": 10, "y": 12.5, "width": 220, "height": 110},
//	    {"id": "b", "x": 40, "y": 12.5, "width": "auto", "height": 80, "rotation": 15}
//	  ]
//	}
//
// TOML:
//
//	name = "roadmap"
//
//	[canvas]
//	width = 1200
//	height = 800
//
//	[[blocks]]
//	id = "a"
//	x = 10
//	y = 12.5
//	width = 220
//	height = 110
//
// Block x and y are percent of the canvas. Width and height are pixels, or
// the string "auto" for a block that has not been measured.
//
// # Import
//
// [ReadJSON] and [ReadTOML] decode from any io.Reader. [ImportBoard] opens a
// file and picks the codec from its extension (.json or .toml). Every read
// validates the result with [board.Board.Validate], so a successfully
// imported board has a usable canvas and unique block IDs.
//
// # Export
//
// [WriteJSON] and [WriteTOML] encode to any io.Writer; [ExportBoard] writes a
// file, again choosing the codec by extension. Exported boards re-import
// identically.
package io

package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/errors"
)

// WriteJSON encodes b as indented JSON.
func WriteJSON(b *board.Board, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(normalized(b)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode json")
	}
	return nil
}

// WriteTOML encodes b as TOML with one [[blocks]] table per block.
func WriteTOML(b *board.Board, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(normalized(b)); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
	}
	return nil
}

// normalized keeps "blocks" present in the output even for an empty board.
func normalized(b *board.Board) *board.Board {
	if b.Blocks != nil {
		return b
	}
	c := *b
	c.Blocks = []board.Block{}
	return &c
}

// ExportBoard writes b to path, choosing the codec from its extension.
func ExportBoard(b *board.Board, path string) error {
	format, err := FormatFromPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "create %s", path)
	}
	defer f.Close()

	if format == errors.FormatTOML {
		return WriteTOML(b, f)
	}
	return WriteJSON(b, f)
}

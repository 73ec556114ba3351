package io

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/pinboard/pkg/board"
	"github.com/matzehuels/pinboard/pkg/errors"
)

// ReadJSON decodes a JSON board from r and validates it.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*board.Board, error) {
	var b board.Board
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode json")
	}
	return finish(&b)
}

// ReadTOML decodes a TOML board from r and validates it. Unknown keys are
// rejected so typos in hand-written boards surface early.
func ReadTOML(r io.Reader) (*board.Board, error) {
	var b board.Board
	md, err := toml.NewDecoder(r).Decode(&b)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unknown board key %s", undecoded[0].String())
	}
	return finish(&b)
}

func finish(b *board.Board) (*board.Board, error) {
	if b.Blocks == nil {
		b.Blocks = []board.Block{}
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// ImportBoard reads the board file at path, choosing the codec from its
// extension.
func ImportBoard(path string) (*board.Board, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "open %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()

	var b *board.Board
	if format == errors.FormatTOML {
		b, err = ReadTOML(f)
	} else {
		b, err = ReadJSON(f)
	}
	if err != nil {
		return nil, errors.Wrap(errors.GetCode(err), err, "%s", path)
	}
	return b, nil
}

// FormatFromPath returns the board format for a file name: "json" or
// "toml".
func FormatFromPath(path string) (string, error) {
	if err := errors.ValidatePath(path); err != nil {
		return "", err
	}
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if err := errors.ValidateFormat(ext, errors.FormatJSON, errors.FormatTOML); err != nil {
		return "", errors.New(errors.ErrCodeInvalidFormat, "%s: board files must end in .json or .toml", path)
	}
	return ext, nil
}

package io

import (
	"encoding/json"
	"io"
	"os"

	"github.com/m0370/pedigree-drawer/pkg/errors"
	"github.com/m0370/pedigree-drawer/pkg/pedigree"
)

// ReadRecord decodes a raw family-history record from r and normalizes it
// into the canonical model.
//
// The input must be a JSON document as described in the package overview.
// ReadRecord returns an error if:
//   - The JSON is malformed (INVALID_FORMAT)
//   - An individual has a missing or duplicate id
//   - A relationship references an unknown individual
//   - Partner generations conflict, or the record exceeds limits
//
// Dropped-but-tolerated values (unknown status tags, unknown relationship
// types) are reported as warnings, not errors. Use errors.IsValidation to
// distinguish rejected input from internal failures.
//
// The returned record is independent of r and safe to use after ReadRecord
// returns. ReadRecord does not close r.
func ReadRecord(r io.Reader, limits pedigree.Limits) (*pedigree.Record, []errors.Warning, error) {
	var raw pedigree.RawRecord
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode record")
	}
	return pedigree.Normalize(&raw, limits)
}

// ImportRecord reads a JSON record file at path and returns the normalized
// record.
//
// ImportRecord opens the file, decodes it using [ReadRecord], and closes the
// file. If the file cannot be opened, or if decoding or normalization fails,
// ImportRecord returns an error describing the failure. The error wraps the
// underlying cause with the file path for context.
func ImportRecord(path string, limits pedigree.Limits) (*pedigree.Record, []errors.Warning, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "open %s", path)
	}
	defer f.Close()
	return ReadRecord(f, limits)
}

package io

import (
	"io"
	"os"

	"github.com/m0370/pedigree-drawer/pkg/errors"
	"github.com/m0370/pedigree-drawer/pkg/render/chart"
	"github.com/m0370/pedigree-drawer/pkg/render/chart/sink"
)

// EncodeScene serializes a rendered scene in the given format: "svg", "json",
// "png", or "pdf". SVG and JSON are produced natively; PNG and PDF go through
// rsvg-convert and need librsvg installed. An unsupported format name returns
// an INVALID_FORMAT error.
func EncodeScene(s *chart.Scene, format string) ([]byte, error) {
	switch format {
	case "svg":
		return sink.RenderSVG(s), nil
	case "json":
		return sink.RenderJSON(s)
	case "png":
		return sink.RenderPNG(s, 0)
	case "pdf":
		return sink.RenderPDF(s)
	default:
		return nil, errors.New(errors.ErrCodeInvalidFormat, "unsupported format %q", format)
	}
}

// WriteScene encodes the scene in the given format and writes it to w.
func WriteScene(s *chart.Scene, format string, w io.Writer) error {
	data, err := EncodeScene(s, format)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "write %s", format)
	}
	return nil
}

// ExportScene writes the scene to a file at path.
// This is a convenience wrapper around [WriteScene] for file-based output.
func ExportScene(s *chart.Scene, format, path string) error {
	if err := errors.ValidateOutputPath(path); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.ErrCodeWriteFailed, err, "create %s", path)
	}
	defer f.Close()
	return WriteScene(s, format, f)
}

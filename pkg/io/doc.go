// Package io provides JSON import for family-history records and file export
// for rendered scenes.
//
// # Overview
//
// This package is the file boundary of the renderer. It covers:
//
//   - Decoding raw clinical record documents into the canonical model
//   - Serializing a rendered scene in any supported output format
//   - Writing artifacts to files with consistent, path-tagged errors
//
// # Record Format
//
// The input document has a meta block, an individuals array, and a
// relationships array:
//
//	{
//	  "meta": {"date": "2025-08-12"},
//	  "individuals": [
//	    {"id": "I-1", "gender": "M", "current_age": 72},
//	    {"id": "I-2", "gender": "F"}
//	  ],
//	  "relationships": [
//	    {"type": "spouse", "partners": ["I-1", "I-2"], "children": ["II-1"]}
//	  ]
//	}
//
// The full field reference lives on the [pedigree.RawRecord] family of types;
// tolerant decoding rules (numeric or string ages, bare-id or object child
// entries) live there too.
//
// # Import
//
// Use [ImportRecord] to read a record from a file path, or [ReadRecord] to
// read from any io.Reader:
//
//	rec, warnings, err := io.ImportRecord("family.json", pedigree.Limits{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Both functions decode and then normalize, so the returned record is fully
// validated: unique ids, resolved references, consistent generations.
// Tolerated oddities (unknown status tags, unknown relationship types) come
// back as warnings rather than errors.
//
// # Export
//
// Use [ExportScene] to write a rendered scene to a file, or [WriteScene] to
// write to any io.Writer. [EncodeScene] picks the serializer for a format
// name and is what the pipeline uses to produce artifacts:
//
//	err := io.ExportScene(scene, "svg", "family.svg")
//
// SVG and JSON are produced natively; PNG and PDF shell out to rsvg-convert
// and need librsvg installed.
package io

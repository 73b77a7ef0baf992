// Package sink serializes rendered scenes into output formats.
//
// [RenderSVG] is the native format and the source of truth: a flat,
// editor-friendly document with stable element ids. [RenderJSON] dumps the
// scene model for tooling. [RenderPNG] and [RenderPDF] convert the SVG via
// the external rsvg-convert tool.
package sink

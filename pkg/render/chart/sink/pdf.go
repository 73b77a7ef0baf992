package sink

import (
	"github.com/m0370/pedigree-drawer/pkg/render"
	"github.com/m0370/pedigree-drawer/pkg/render/chart"
)

// RenderPDF renders the scene as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(s *chart.Scene) ([]byte, error) {
	return render.ToPDF(RenderSVG(s))
}

package sink

import (
	"github.com/m0370/pedigree-drawer/pkg/render"
	"github.com/m0370/pedigree-drawer/pkg/render/chart"
)

// RenderPNG renders the scene as PNG via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPNG(s *chart.Scene, scale float64) ([]byte, error) {
	if scale <= 0 {
		scale = 2.0
	}
	return render.ToPNG(RenderSVG(s), scale)
}

// Package stroke expands polyline edges into filled quads.
//
// Each edge of width w becomes a rectangle extending w/2 on either side of
// the edge and w/2 beyond both endpoints (square caps), so consecutive
// edges overlap at their shared vertex and leave no gap at corners. All
// quads wind the same way relative to their edge, which keeps non-zero
// fills of overlapping quads additive.
package stroke

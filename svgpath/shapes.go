package svgpath

import (
	"math"
)

// This file implements the transformation from
// high level shapes to their path equivalent

// cubicsPerEllipse is the number of cubic beziers used to approximate
// a full ellipse; each one spans Pi/8 radians.
const cubicsPerEllipse = 16

// AddRect adds a closed rectangle with the given corners.
func (p *Path) AddRect(minX, minY, maxX, maxY float64) {
	p.Start(minX, minY)
	p.Line(maxX, minY)
	p.Line(maxX, maxY)
	p.Line(minX, maxY)
	p.Stop(true)
}

// AddEllipse adds a closed, axis aligned ellipse,
// approximated by cubic bezier curves.
func (p *Path) AddEllipse(cx, cy, rx, ry float64) {
	// Approximate the ellipse using a set of cubic bezier curves by the method of
	// L. Maisonobe, "Drawing an elliptical arc using polylines, quadratic
	// or cubic Bezier curves", 2003
	// https://www.spaceroots.org/documents/elllipse/elliptical-arc.pdf
	segs := cubicsPerEllipse
	dEta := 2 * math.Pi / float64(segs)
	tde := math.Tan(dEta / 2)
	alpha := math.Sin(dEta) * (math.Sqrt(4+3*tde*tde) - 1) / 3 // Math is fun!

	lx, ly := ellipsePointAt(rx, ry, 0, 1, 0, cx, cy)
	ldx, ldy := ellipsePrime(rx, ry, 0, 1, 0, cx, cy)
	p.Start(lx, ly)
	for i := 1; i <= segs; i++ {
		eta := dEta * float64(i)
		var px, py float64
		if i == segs {
			px, py = cx+rx, cy // Just makes the end point exact; no roundoff error
		} else {
			px, py = ellipsePointAt(rx, ry, 0, 1, eta, cx, cy)
		}
		dx, dy := ellipsePrime(rx, ry, 0, 1, eta, cx, cy)
		p.CubeBezier(lx+alpha*ldx, ly+alpha*ldy, px-alpha*dx, py-alpha*dy, px, py)
		lx, ly, ldx, ldy = px, py, dx, dy
	}
	p.Stop(true)
}

// ellipsePrime gives tangent vectors for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePrime(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	bCosEta := b * math.Cos(eta)
	aSinEta := a * math.Sin(eta)
	px = -aSinEta*cosTheta - bCosEta*sinTheta
	py = -aSinEta*sinTheta + bCosEta*cosTheta
	return
}

// ellipsePointAt gives points for parameterized elipse; a, b, radii, eta parameter, center cx, cy
func ellipsePointAt(a, b, sinTheta, cosTheta, eta, cx, cy float64) (px, py float64) {
	aCosEta := a * math.Cos(eta)
	bSinEta := b * math.Sin(eta)
	px = cx + aCosEta*cosTheta - bSinEta*sinTheta
	py = cy + aCosEta*sinTheta + bSinEta*cosTheta
	return
}

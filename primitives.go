package pygmsh

import (
	"fmt"
	"math"

	"github.com/ai3DVision/pygmsh/geobuild"
	"github.com/soypat/geometry/md3"
)

// AddPolygonLoop emits the points of X, the edges connecting them in order
// (closing back to the first point) and the resulting closed loop. lcar is the
// characteristic element size attached to every point.
func (g *Geometry) AddPolygonLoop(X []md3.Vec, lcar float64) (*LineLoop, error) {
	if len(X) < 3 {
		return nil, fmt.Errorf("%w: polygon needs at least 3 points, got %d", ErrNoEntities, len(X))
	}
	if !validLcar(lcar) {
		return nil, fmt.Errorf("%w: lcar=%g", ErrDimension, lcar)
	}
	p := make([]*Point, len(X))
	for i, x := range X {
		p[i] = g.AddPoint(x, lcar)
	}
	lines := make([]geobuild.Entity, len(p))
	for k := 0; k < len(p)-1; k++ {
		lines[k] = g.AddLine(p[k], p[k+1])
	}
	lines[len(p)-1] = g.AddLine(p[len(p)-1], p[0])
	return g.AddLineLoop(lines...)
}

// AddPolygon emits a polygon loop through X and the plane surface it bounds.
// Pre-built loops passed as holes are cut out of the surface.
func (g *Geometry) AddPolygon(X []md3.Vec, lcar float64, holes ...*LineLoop) (*Polygon, error) {
	for _, h := range holes {
		if h == nil {
			nilArg("AddPolygon")
		}
	}
	ll, err := g.AddPolygonLoop(X, lcar)
	if err != nil {
		return nil, err
	}
	s := g.AddPlaneSurface(ll, holes...)
	return &Polygon{loop: ll, surface: s}, nil
}

// AddRectangle emits an axis-aligned rectangle at height z as a 4-point
// polygon with its plane surface.
func (g *Geometry) AddRectangle(xmin, xmax, ymin, ymax, z, lcar float64, holes ...*LineLoop) (*Polygon, error) {
	if xmax <= xmin || ymax <= ymin {
		return nil, fmt.Errorf("%w: rectangle [%g,%g]x[%g,%g]", ErrDimension, xmin, xmax, ymin, ymax)
	}
	return g.AddPolygon([]md3.Vec{
		{X: xmin, Y: ymin, Z: z},
		{X: xmax, Y: ymin, Z: z},
		{X: xmax, Y: ymax, Z: z},
		{X: xmin, Y: ymax, Z: z},
	}, lcar, holes...)
}

// CircleConfig configures [Geometry.AddCircle].
type CircleConfig struct {
	// Center is the circle's midpoint after rotation is applied.
	Center md3.Vec
	Radius float64
	// Lcar is the characteristic element size at the circle's points.
	Lcar float64
	// Rotation reorients the circle out of the x-y plane. The zero value
	// means no rotation.
	Rotation md3.Mat3
	// NumSections selects how many arcs form the rim, 3 or 4. Zero means 3.
	// A single arc may not span half a turn or more, hence the minimum of 3.
	NumSections int
	// Holes are loops cut out of the circle's surface.
	Holes []*LineLoop
	// OmitSurface skips the plane surface statement, emitting the rim loop
	// only. Holes cannot be combined with OmitSurface.
	OmitSurface bool
}

// AddCircle emits a full circle as NumSections arcs joined into a closed loop
// and, unless omitted, the plane surface the loop bounds.
func (g *Geometry) AddCircle(cfg CircleConfig) (*Circle, error) {
	if !validLcar(cfg.Lcar) {
		return nil, fmt.Errorf("%w: lcar=%g", ErrDimension, cfg.Lcar)
	}
	if !validSize(cfg.Radius) {
		return nil, fmt.Errorf("%w: radius=%g", ErrDimension, cfg.Radius)
	}
	if cfg.OmitSurface && len(cfg.Holes) > 0 {
		return nil, ErrHolesWithoutSurface
	}
	for _, h := range cfg.Holes {
		if h == nil {
			nilArg("AddCircle")
		}
	}
	var X []md3.Vec
	r := cfg.Radius
	switch cfg.NumSections {
	case 0, 3:
		X = []md3.Vec{
			{},
			{X: r},
			{X: -0.5 * r, Y: 0.5 * math.Sqrt(3) * r},
			{X: -0.5 * r, Y: -0.5 * math.Sqrt(3) * r},
		}
	case 4:
		X = []md3.Vec{
			{},
			{X: r},
			{Y: r},
			{X: -r},
			{Y: -r},
		}
	default:
		return nil, fmt.Errorf("%w: got %d", ErrSectionCount, cfg.NumSections)
	}
	R := orIdentity(cfg.Rotation)
	p := make([]*Point, len(X))
	for i, x := range X {
		p[i] = g.AddPoint(md3.Add(md3.MulMatVec(R, x), cfg.Center), cfg.Lcar)
	}
	// p[0] is the center; the rest are rim points connected by arcs through
	// the center.
	arcs := make([]geobuild.Entity, len(p)-1)
	for k := 1; k < len(p)-1; k++ {
		arcs[k-1] = g.AddCircleArc(p[k], p[0], p[k+1])
	}
	arcs[len(p)-2] = g.AddCircleArc(p[len(p)-1], p[0], p[1])
	ll, err := g.AddLineLoop(arcs...)
	if err != nil {
		return nil, err
	}
	c := &Circle{loop: ll}
	if !cfg.OmitSurface {
		c.surface = g.AddPlaneSurface(ll, cfg.Holes...)
	}
	return c, nil
}

func validLcar(lcar float64) bool {
	return lcar > 0 && !math.IsInf(lcar, 0) && !math.IsNaN(lcar)
}

func validSize(v float64) bool {
	return v > 0 && !math.IsInf(v, 0) && !math.IsNaN(v)
}

// orIdentity maps the zero matrix to the identity so configs can leave the
// rotation unset.
func orIdentity(R md3.Mat3) md3.Mat3 {
	if R == (md3.Mat3{}) {
		return md3.IdentityMat3()
	}
	return R
}

// yzPlane reorients the x-y plane into the y-z plane. Circles are emitted in
// the x-y plane; tori and pipes revolve them about an axis lying in it, so
// the profile circle must first be tipped out of it.
func yzPlane() md3.Mat3 {
	return md3.NewMat3([]float64{
		0, 0, 1,
		1, 0, 0,
		0, 1, 0,
	})
}

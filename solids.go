package pygmsh

import (
	"fmt"

	"github.com/ai3DVision/pygmsh/geobuild"
	"github.com/soypat/geometry/md3"
)

// BoxConfig configures [Geometry.AddBox].
type BoxConfig struct {
	// Min and Max are opposite corners of the box. Every component of Min
	// must be strictly below the matching component of Max.
	Min, Max md3.Vec
	// Lcar is the characteristic element size at the corner points.
	Lcar float64
	// Holes are shells of cavities carved out of the box's volume.
	Holes []*SurfaceLoop
	// OmitVolume skips the volume statement. The closed shell is still
	// emitted and returned for use as a cavity in another solid.
	OmitVolume bool
	// Label tags the volume as a physical group when non-empty.
	Label string
}

// AddBox emits an axis-aligned box: 8 corner points, 12 edges, 6 face loops,
// 6 ruled surfaces, the closed shell and, unless omitted, the volume. The
// returned shell reference is the surface loop, or the loop-plus-holes array
// when holes are given; it can serve as a cavity in a later solid.
func (g *Geometry) AddBox(cfg BoxConfig) (*Volume, geobuild.Ref, error) {
	if !validLcar(cfg.Lcar) {
		return nil, nil, fmt.Errorf("%w: lcar=%g", ErrDimension, cfg.Lcar)
	}
	d := md3.Sub(cfg.Max, cfg.Min)
	if !validSize(d.X) || !validSize(d.Y) || !validSize(d.Z) {
		return nil, nil, fmt.Errorf("%w: box size %g x %g x %g", ErrDimension, d.X, d.Y, d.Z)
	}
	x0, y0, z0 := cfg.Min.X, cfg.Min.Y, cfg.Min.Z
	x1, y1, z1 := cfg.Max.X, cfg.Max.Y, cfg.Max.Z
	// Corner points.
	p := [8]*Point{
		g.AddPoint(md3.Vec{X: x1, Y: y1, Z: z1}, cfg.Lcar),
		g.AddPoint(md3.Vec{X: x1, Y: y1, Z: z0}, cfg.Lcar),
		g.AddPoint(md3.Vec{X: x1, Y: y0, Z: z1}, cfg.Lcar),
		g.AddPoint(md3.Vec{X: x1, Y: y0, Z: z0}, cfg.Lcar),
		g.AddPoint(md3.Vec{X: x0, Y: y1, Z: z1}, cfg.Lcar),
		g.AddPoint(md3.Vec{X: x0, Y: y1, Z: z0}, cfg.Lcar),
		g.AddPoint(md3.Vec{X: x0, Y: y0, Z: z1}, cfg.Lcar),
		g.AddPoint(md3.Vec{X: x0, Y: y0, Z: z0}, cfg.Lcar),
	}
	// Edges.
	e := [12]*Line{
		g.AddLine(p[0], p[1]),
		g.AddLine(p[0], p[2]),
		g.AddLine(p[0], p[4]),
		g.AddLine(p[1], p[3]),
		g.AddLine(p[1], p[5]),
		g.AddLine(p[2], p[3]),
		g.AddLine(p[2], p[6]),
		g.AddLine(p[3], p[7]),
		g.AddLine(p[4], p[5]),
		g.AddLine(p[4], p[6]),
		g.AddLine(p[5], p[7]),
		g.AddLine(p[6], p[7]),
	}
	rev := geobuild.Reversed
	// The six face loops, edges signed so each traversal closes.
	loops := [6][4]geobuild.Entity{
		{e[0], e[3], rev(e[5]), rev(e[1])},
		{e[0], e[4], rev(e[8]), rev(e[2])},
		{e[1], e[6], rev(e[9]), rev(e[2])},
		{e[3], e[7], rev(e[10]), rev(e[4])},
		{e[5], e[7], rev(e[11]), rev(e[6])},
		{e[8], e[10], rev(e[11]), rev(e[9])},
	}
	surfs := make([]geobuild.Entity, 6)
	for i, l := range loops {
		ll, err := g.AddLineLoop(l[:]...)
		if err != nil {
			return nil, nil, err
		}
		surfs[i] = g.AddRuledSurface(ll)
	}
	sl, err := g.AddSurfaceLoop(surfs...)
	if err != nil {
		return nil, nil, err
	}
	shell, err := g.shellWithHoles(sl, cfg.Holes)
	if err != nil {
		return nil, nil, err
	}
	if cfg.OmitVolume {
		return nil, shell, nil
	}
	vol := g.AddVolume(shell)
	if cfg.Label != "" {
		g.AddPhysicalVolume(vol, cfg.Label)
	}
	return vol, shell, nil
}

// EllipsoidConfig configures [Geometry.AddEllipsoid].
type EllipsoidConfig struct {
	// Center is the ellipsoid's midpoint.
	Center md3.Vec
	// Radii are the semi-axes along x, y and z.
	Radii md3.Vec
	// Lcar is the characteristic element size at the defining points.
	Lcar float64
	// Holes are shells of cavities carved out of the volume.
	Holes []*SurfaceLoop
	// OmitVolume skips the volume statement, returning the shell only.
	OmitVolume bool
	// Label tags the volume as a physical group when non-empty.
	Label string
}

// AddEllipsoid emits an ellipsoid with the given semi-axes around the center.
// The surface is an octahedral subdivision: 6 axis points plus the center, 12
// elliptical arcs between adjacent axis points, one ruled surface per octant.
// The 8 octant surfaces are merged into 2 compound hemispheres so the mesher
// sees no seam between octants. Returns like [Geometry.AddBox].
func (g *Geometry) AddEllipsoid(cfg EllipsoidConfig) (*Volume, geobuild.Ref, error) {
	if !validLcar(cfg.Lcar) {
		return nil, nil, fmt.Errorf("%w: lcar=%g", ErrDimension, cfg.Lcar)
	}
	r := cfg.Radii
	if !validSize(r.X) || !validSize(r.Y) || !validSize(r.Z) {
		return nil, nil, fmt.Errorf("%w: radii %g, %g, %g", ErrDimension, r.X, r.Y, r.Z)
	}
	x0 := cfg.Center
	// Center point and the six points where the axes pierce the surface.
	p := [7]*Point{
		g.AddPoint(x0, cfg.Lcar),
		g.AddPoint(md3.Add(x0, md3.Vec{X: r.X}), cfg.Lcar),
		g.AddPoint(md3.Add(x0, md3.Vec{Y: r.Y}), cfg.Lcar),
		g.AddPoint(md3.Add(x0, md3.Vec{Z: r.Z}), cfg.Lcar),
		g.AddPoint(md3.Add(x0, md3.Vec{X: -r.X}), cfg.Lcar),
		g.AddPoint(md3.Add(x0, md3.Vec{Y: -r.Y}), cfg.Lcar),
		g.AddPoint(md3.Add(x0, md3.Vec{Z: -r.Z}), cfg.Lcar),
	}
	// The skeleton: arcs between adjacent axis points, all centered on p[0].
	// The end point doubles as the major-axis point.
	arc := func(a, b *Point) *EllipseArc { return g.AddEllipseArc(a, p[0], b, b) }
	c := [12]*EllipseArc{
		arc(p[1], p[6]),
		arc(p[6], p[4]),
		arc(p[4], p[3]),
		arc(p[3], p[1]),
		arc(p[1], p[2]),
		arc(p[2], p[4]),
		arc(p[4], p[5]),
		arc(p[5], p[1]),
		arc(p[6], p[2]),
		arc(p[2], p[3]),
		arc(p[3], p[5]),
		arc(p[5], p[6]),
	}
	rev := geobuild.Reversed
	// One loop per octant, one half of the surface then the other.
	loops := [8][3]geobuild.Entity{
		{c[4], c[9], c[3]},
		{c[8], rev(c[4]), c[0]},
		{rev(c[9]), c[5], c[2]},
		{rev(c[5]), rev(c[8]), c[1]},
		{c[7], rev(c[3]), c[10]},
		{c[11], rev(c[7]), rev(c[0])},
		{rev(c[10]), rev(c[2]), c[6]},
		{rev(c[1]), rev(c[6]), rev(c[11])},
	}
	surfs := make([]geobuild.Entity, 8)
	for i, l := range loops {
		ll, err := g.AddLineLoop(l[:]...)
		if err != nil {
			return nil, nil, err
		}
		surfs[i] = g.AddRuledSurface(ll)
	}
	// Merge the octants into two hemispheres to avoid seams.
	upper, err := g.AddCompoundSurface(surfs[:4]...)
	if err != nil {
		return nil, nil, err
	}
	lower, err := g.AddCompoundSurface(surfs[4:]...)
	if err != nil {
		return nil, nil, err
	}
	sl, err := g.AddSurfaceLoop(upper, lower)
	if err != nil {
		return nil, nil, err
	}
	shell, err := g.shellWithHoles(sl, cfg.Holes)
	if err != nil {
		return nil, nil, err
	}
	if cfg.OmitVolume {
		return nil, shell, nil
	}
	vol := g.AddVolume(shell)
	if cfg.Label != "" {
		g.AddPhysicalVolume(vol, cfg.Label)
	}
	return vol, shell, nil
}

// BallConfig configures [Geometry.AddBall].
type BallConfig struct {
	Center md3.Vec
	Radius float64
	// Lcar is the characteristic element size at the defining points.
	Lcar       float64
	Holes      []*SurfaceLoop
	OmitVolume bool
	Label      string
}

// AddBall emits a sphere, the degenerate ellipsoid with three equal radii.
func (g *Geometry) AddBall(cfg BallConfig) (*Volume, geobuild.Ref, error) {
	return g.AddEllipsoid(EllipsoidConfig{
		Center:     cfg.Center,
		Radii:      md3.Vec{X: cfg.Radius, Y: cfg.Radius, Z: cfg.Radius},
		Lcar:       cfg.Lcar,
		Holes:      cfg.Holes,
		OmitVolume: cfg.OmitVolume,
		Label:      cfg.Label,
	})
}

// shellWithHoles returns sl itself, or when holes are present an array whose
// first entry is sl followed by the hole shells, for splicing into a volume
// statement.
func (g *Geometry) shellWithHoles(sl *SurfaceLoop, holes []*SurfaceLoop) (geobuild.Ref, error) {
	if len(holes) == 0 {
		return sl, nil
	}
	refs := make([]geobuild.Ref, 0, len(holes)+1)
	refs = append(refs, sl)
	for _, h := range holes {
		if h == nil {
			nilArg("shell holes")
		}
		refs = append(refs, h)
	}
	arr, err := g.AddArray(refs...)
	if err != nil {
		return nil, err
	}
	return arr, nil
}

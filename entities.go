package pygmsh

import (
	"github.com/ai3DVision/pygmsh/geobuild"
	"github.com/soypat/geometry/md3"
)

// Point is a mesh vertex with a characteristic element size. Points are
// immutable once emitted.
type Point struct {
	id   geobuild.ID
	x    md3.Vec
	lcar float64
}

// ID returns the point's script identifier.
func (p *Point) ID() geobuild.ID { return p.id }

// X returns the point's coordinates.
func (p *Point) X() md3.Vec { return p.x }

// Lcar returns the characteristic element size at the point.
func (p *Point) Lcar() float64 { return p.lcar }

func (p *Point) AppendRef(b []byte) []byte { return p.id.AppendRef(b) }

func (p *Point) Kind() geobuild.DimKind { return geobuild.KindPoint }

// curve is the shared identity of all curve entities.
type curve struct {
	id geobuild.ID
}

func (c *curve) ID() geobuild.ID { return c.id }

func (c *curve) AppendRef(b []byte) []byte { return c.id.AppendRef(b) }

func (c *curve) Kind() geobuild.DimKind { return geobuild.KindCurve }

// Reversed returns the curve with flipped orientation for use in loops.
func (c *curve) Reversed() geobuild.Entity { return geobuild.Reversed(c) }

// Line is a straight curve between two points.
type Line struct {
	curve
	p0, p1 *Point
}

// Points returns the start and end point of the line.
func (l *Line) Points() (start, end *Point) { return l.p0, l.p1 }

// CircleArc is a strictly-minor circular arc defined by its start, center and
// end points.
type CircleArc struct {
	curve
	start, center, end *Point
}

// Points returns the defining points of the arc.
func (c *CircleArc) Points() (start, center, end *Point) {
	return c.start, c.center, c.end
}

// EllipseArc is an elliptical arc defined by its start point, center, any
// point on the major axis and its end point.
type EllipseArc struct {
	curve
	start, center, major, end *Point
}

// Points returns the defining points of the arc.
func (e *EllipseArc) Points() (start, center, major, end *Point) {
	return e.start, e.center, e.major, e.end
}

// LineLoop is a closed chain of curves bounding a surface.
type LineLoop struct {
	id     geobuild.ID
	curves []geobuild.Entity
}

// ID returns the loop's script identifier.
func (ll *LineLoop) ID() geobuild.ID { return ll.id }

func (ll *LineLoop) AppendRef(b []byte) []byte { return ll.id.AppendRef(b) }

// Curves returns the loop's curves in order. The returned slice is a copy.
func (ll *LineLoop) Curves() []geobuild.Entity {
	out := make([]geobuild.Entity, len(ll.curves))
	copy(out, ll.curves)
	return out
}

// PlaneSurface is a flat surface bounded by a line loop, possibly with holes.
type PlaneSurface struct {
	id    geobuild.ID
	loop  *LineLoop
	holes []*LineLoop
}

// ID returns the surface's script identifier.
func (ps *PlaneSurface) ID() geobuild.ID { return ps.id }

func (ps *PlaneSurface) AppendRef(b []byte) []byte { return ps.id.AppendRef(b) }

func (ps *PlaneSurface) Kind() geobuild.DimKind { return geobuild.KindSurface }

// Loop returns the bounding line loop.
func (ps *PlaneSurface) Loop() *LineLoop { return ps.loop }

// Holes returns the loops subtracted from the surface. The returned slice is
// a copy.
func (ps *PlaneSurface) Holes() []*LineLoop {
	out := make([]*LineLoop, len(ps.holes))
	copy(out, ps.holes)
	return out
}

// Surface is a curved (ruled) or compound surface.
type Surface struct {
	id geobuild.ID
}

// ID returns the surface's script identifier.
func (s *Surface) ID() geobuild.ID { return s.id }

func (s *Surface) AppendRef(b []byte) []byte { return s.id.AppendRef(b) }

func (s *Surface) Kind() geobuild.DimKind { return geobuild.KindSurface }

// SurfaceLoop is a closed shell of surfaces bounding a volume.
type SurfaceLoop struct {
	id geobuild.ID
}

// ID returns the loop's script identifier.
func (sl *SurfaceLoop) ID() geobuild.ID { return sl.id }

func (sl *SurfaceLoop) AppendRef(b []byte) []byte { return sl.id.AppendRef(b) }

// Volume is a solid region bounded by one or more shells, or a compound of
// other volumes.
type Volume struct {
	id geobuild.ID
}

// ID returns the volume's script identifier.
func (v *Volume) ID() geobuild.ID { return v.id }

func (v *Volume) AppendRef(b []byte) []byte { return v.id.AppendRef(b) }

func (v *Volume) Kind() geobuild.DimKind { return geobuild.KindVolume }

// Field is a mesh size field.
type Field struct {
	id geobuild.ID
}

// ID returns the field's script identifier.
func (f *Field) ID() geobuild.ID { return f.id }

func (f *Field) AppendRef(b []byte) []byte { return f.id.AppendRef(b) }

// Circle bundles the entities emitted for a full circle: the rim loop and,
// unless omitted, the enclosed plane surface.
type Circle struct {
	loop    *LineLoop
	surface *PlaneSurface
}

// LineLoop returns the circle's rim.
func (c *Circle) LineLoop() *LineLoop { return c.loop }

// PlaneSurface returns the enclosed surface, or nil if the circle was built
// without one.
func (c *Circle) PlaneSurface() *PlaneSurface { return c.surface }

// Polygon bundles the entities emitted for a polygon: the boundary loop and
// the enclosed plane surface.
type Polygon struct {
	loop    *LineLoop
	surface *PlaneSurface
}

// LineLoop returns the polygon's boundary.
func (p *Polygon) LineLoop() *LineLoop { return p.loop }

// PlaneSurface returns the enclosed surface.
func (p *Polygon) PlaneSurface() *PlaneSurface { return p.surface }

// Package pygmsh provides a Go interface to the Gmsh scripting language. It
// works around some of the inconveniences of writing geo files by hand, such
// as having to assign a unique identifier to every entity created, and builds
// composite shapes (boxes, ellipsoids, tori, pipes) out of sequences of
// primitive statements.
//
// A [Geometry] session owns the identifier counters and the statement log.
// Builders validate their inputs fully before emitting anything, so a failed
// call leaves the script unchanged.
package pygmsh

import (
	"fmt"
	"io"

	"github.com/ai3DVision/pygmsh/geobuild"
	"github.com/soypat/geometry/md3"
)

// Version is the generator version stamped into the script header.
const Version = "1.0.0"

// Geometry accumulates geo statements and hands out unique identifiers for
// the entities they define. Create sessions with [NewGeometry] or
// [NewGeometryWithConfig]; sessions are not safe for concurrent use.
type Geometry struct {
	alloc   geobuild.Allocator
	script  geobuild.Script
	scratch []byte
}

// GeometryConfig carries session-wide options emitted ahead of any entity
// statement.
type GeometryConfig struct {
	// Factory selects a geometry kernel for the script, such as
	// "OpenCASCADE" which the boolean operations require.
	Factory string
	// CharacteristicLengthMin and CharacteristicLengthMax bound element
	// sizes mesh-wide. Zero values are omitted from the script.
	CharacteristicLengthMin float64
	CharacteristicLengthMax float64
}

// NewGeometry returns an empty session holding only the header comment.
func NewGeometry() *Geometry {
	return NewGeometryWithConfig(GeometryConfig{})
}

// NewGeometryWithConfig returns an empty session with the config's session
// options already emitted.
func NewGeometryWithConfig(cfg GeometryConfig) *Geometry {
	g := &Geometry{}
	g.script.Append("// This code was created by pygmsh v" + Version + ".")
	if cfg.Factory != "" {
		g.script.Append(`SetFactory("` + cfg.Factory + `");`)
	}
	if cfg.CharacteristicLengthMin != 0 {
		b := append(g.begin(), "Mesh.CharacteristicLengthMin = "...)
		b = geobuild.AppendFloat(b, cfg.CharacteristicLengthMin)
		g.emit(append(b, ';'))
	}
	if cfg.CharacteristicLengthMax != 0 {
		b := append(g.begin(), "Mesh.CharacteristicLengthMax = "...)
		b = geobuild.AppendFloat(b, cfg.CharacteristicLengthMax)
		g.emit(append(b, ';'))
	}
	return g
}

// Bytes returns the serialized script. The output always ends in a newline;
// the mesher reports a syntax error on geo files missing one.
func (g *Geometry) Bytes() []byte { return g.script.AppendTo(nil) }

func (g *Geometry) String() string { return string(g.Bytes()) }

// WriteTo writes the serialized script to w. It implements [io.WriterTo].
func (g *Geometry) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(g.Bytes())
	return int64(n), err
}

// Statements returns a copy of the statement lines emitted so far.
func (g *Geometry) Statements() []string { return g.script.Lines() }

// AddComment emits a comment line.
func (g *Geometry) AddComment(text string) {
	g.script.Append("// " + text)
}

// AddRawCode splices statements into the script verbatim.
func (g *Geometry) AddRawCode(code ...string) {
	g.script.Append(code...)
}

// begin returns the empty scratch statement buffer.
func (g *Geometry) begin() []byte { return g.scratch[:0] }

// emit records b as one statement line and recycles the buffer.
func (g *Geometry) emit(b []byte) {
	g.script.Append(string(b))
	g.scratch = b
}

// declare emits the identifier reservation line for id, like "p1 = newp;".
func (g *Geometry) declare(id geobuild.ID) {
	b := g.begin()
	b = id.AppendRef(b)
	b = append(b, " = "...)
	b = append(b, id.Category().NewIDFunc()...)
	g.emit(append(b, ';'))
}

// AddPoint emits a point at x with characteristic element size lcar.
func (g *Geometry) AddPoint(x md3.Vec, lcar float64) *Point {
	id := g.alloc.Next(geobuild.CategoryPoint)
	g.declare(id)
	b := append(g.begin(), "Point("...)
	b = id.AppendRef(b)
	b = append(b, ") = {"...)
	b = geobuild.AppendVec(b, ", ", x)
	b = append(b, ", "...)
	b = geobuild.AppendFloat(b, lcar)
	g.emit(append(b, "};"...))
	return &Point{id: id, x: x, lcar: lcar}
}

// AddLine emits a straight line from p0 to p1.
func (g *Geometry) AddLine(p0, p1 *Point) *Line {
	if p0 == nil || p1 == nil {
		nilArg("AddLine")
	}
	id := g.alloc.Next(geobuild.CategoryLine)
	g.declare(id)
	b := append(g.begin(), "Line("...)
	b = id.AppendRef(b)
	b = append(b, ") = {"...)
	b = geobuild.AppendRefs(b, ", ", p0, p1)
	g.emit(append(b, "};"...))
	return &Line{curve: curve{id: id}, p0: p0, p1: p1}
}

// AddCircleArc emits a circular arc from start to end around center. The arc
// must span strictly less than Pi.
func (g *Geometry) AddCircleArc(start, center, end *Point) *CircleArc {
	if start == nil || center == nil || end == nil {
		nilArg("AddCircleArc")
	}
	id := g.alloc.Next(geobuild.CategoryCircleArc)
	g.declare(id)
	b := append(g.begin(), "Circle("...)
	b = id.AppendRef(b)
	b = append(b, ") = {"...)
	b = geobuild.AppendRefs(b, ", ", start, center, end)
	g.emit(append(b, "};"...))
	return &CircleArc{curve: curve{id: id}, start: start, center: center, end: end}
}

// AddEllipseArc emits an elliptical arc from start to end around center.
// major is any point on the ellipse's major axis.
func (g *Geometry) AddEllipseArc(start, center, major, end *Point) *EllipseArc {
	if start == nil || center == nil || major == nil || end == nil {
		nilArg("AddEllipseArc")
	}
	id := g.alloc.Next(geobuild.CategoryEllipseArc)
	g.declare(id)
	b := append(g.begin(), "Ellipse("...)
	b = id.AppendRef(b)
	b = append(b, ") = {"...)
	b = geobuild.AppendRefs(b, ", ", start, center, major, end)
	g.emit(append(b, "};"...))
	return &EllipseArc{curve: curve{id: id}, start: start, center: center, major: major, end: end}
}

// AddLineLoop emits a closed chain of curves. Curves traversed backwards must
// be wrapped with [geobuild.Reversed] by the caller.
func (g *Geometry) AddLineLoop(curves ...geobuild.Entity) (*LineLoop, error) {
	if len(curves) == 0 {
		return nil, fmt.Errorf("%w: line loop", ErrNoEntities)
	}
	if err := checkKinds("AddLineLoop", geobuild.KindCurve, curves); err != nil {
		return nil, err
	}
	id := g.alloc.Next(geobuild.CategoryLineLoop)
	g.declare(id)
	b := append(g.begin(), "Line Loop("...)
	b = id.AppendRef(b)
	b = append(b, ") = {"...)
	b = appendEntities(b, ",", curves)
	g.emit(append(b, "};"...))
	cp := make([]geobuild.Entity, len(curves))
	copy(cp, curves)
	return &LineLoop{id: id, curves: cp}, nil
}

// AddPlaneSurface emits a flat surface bounded by loop, with the given loops
// cut out as holes.
func (g *Geometry) AddPlaneSurface(loop *LineLoop, holes ...*LineLoop) *PlaneSurface {
	if loop == nil {
		nilArg("AddPlaneSurface")
	}
	id := g.alloc.Next(geobuild.CategoryPlaneSurface)
	g.declare(id)
	b := append(g.begin(), "Plane Surface("...)
	b = id.AppendRef(b)
	b = append(b, ") = {"...)
	b = loop.AppendRef(b)
	for _, h := range holes {
		if h == nil {
			nilArg("AddPlaneSurface")
		}
		b = append(b, ',')
		b = h.AppendRef(b)
	}
	g.emit(append(b, "};"...))
	cp := make([]*LineLoop, len(holes))
	copy(cp, holes)
	return &PlaneSurface{id: id, loop: loop, holes: cp}
}

// AddRuledSurface emits a curved surface interpolating loop.
func (g *Geometry) AddRuledSurface(loop *LineLoop) *Surface {
	if loop == nil {
		nilArg("AddRuledSurface")
	}
	id := g.alloc.Next(geobuild.CategorySurface)
	g.declare(id)
	b := append(g.begin(), "Ruled Surface("...)
	b = id.AppendRef(b)
	b = append(b, ") = {"...)
	b = loop.AppendRef(b)
	g.emit(append(b, "};"...))
	return &Surface{id: id}
}

// AddCompoundSurface emits a single surface spanning the given surfaces,
// hiding the seams between them from the mesher.
func (g *Geometry) AddCompoundSurface(surfaces ...geobuild.Entity) (*Surface, error) {
	if len(surfaces) == 0 {
		return nil, fmt.Errorf("%w: compound surface", ErrNoEntities)
	}
	if err := checkKinds("AddCompoundSurface", geobuild.KindSurface, surfaces); err != nil {
		return nil, err
	}
	id := g.alloc.Next(geobuild.CategorySurface)
	g.declare(id)
	b := append(g.begin(), "Compound Surface("...)
	b = id.AppendRef(b)
	b = append(b, ") = {"...)
	b = appendEntities(b, ",", surfaces)
	g.emit(append(b, "};"...))
	return &Surface{id: id}, nil
}

// AddSurfaceLoop emits a closed shell made of the given surfaces.
func (g *Geometry) AddSurfaceLoop(surfaces ...geobuild.Entity) (*SurfaceLoop, error) {
	if len(surfaces) == 0 {
		return nil, fmt.Errorf("%w: surface loop", ErrNoEntities)
	}
	if err := checkKinds("AddSurfaceLoop", geobuild.KindSurface, surfaces); err != nil {
		return nil, err
	}
	id := g.alloc.Next(geobuild.CategorySurfaceLoop)
	g.declare(id)
	b := append(g.begin(), "Surface Loop("...)
	b = id.AppendRef(b)
	b = append(b, ") = {"...)
	b = appendEntities(b, ",", surfaces)
	g.emit(append(b, "};"...))
	return &SurfaceLoop{id: id}, nil
}

// AddVolume emits a solid bounded by the given shell. boundary is typically a
// [*SurfaceLoop], or an array of surface loops whose first entry is the outer
// shell and the rest are cavities.
func (g *Geometry) AddVolume(boundary geobuild.Ref) *Volume {
	if boundary == nil {
		nilArg("AddVolume")
	}
	id := g.alloc.Next(geobuild.CategoryVolume)
	g.declare(id)
	b := append(g.begin(), "Volume("...)
	b = id.AppendRef(b)
	b = append(b, ") = "...)
	b = boundary.AppendRef(b)
	g.emit(append(b, ';'))
	return &Volume{id: id}
}

// AddCompoundVolume emits a single volume spanning the given volumes.
func (g *Geometry) AddCompoundVolume(volumes ...geobuild.Entity) (*Volume, error) {
	if len(volumes) == 0 {
		return nil, fmt.Errorf("%w: compound volume", ErrNoEntities)
	}
	if err := checkKinds("AddCompoundVolume", geobuild.KindVolume, volumes); err != nil {
		return nil, err
	}
	id := g.alloc.Next(geobuild.CategoryCompoundVolume)
	g.declare(id)
	b := append(g.begin(), "Compound Volume("...)
	b = id.AppendRef(b)
	b = append(b, ") = {"...)
	b = appendEntities(b, ",", volumes)
	g.emit(append(b, "};"...))
	return &Volume{id: id}, nil
}

// AddArray emits an array variable holding the given references and returns a
// reference to its whole contents.
func (g *Geometry) AddArray(refs ...geobuild.Ref) (geobuild.ArrayRef, error) {
	if len(refs) == 0 {
		return geobuild.ArrayRef{}, fmt.Errorf("%w: array", ErrNoEntities)
	}
	for _, r := range refs {
		if r == nil {
			nilArg("AddArray")
		}
	}
	id := g.alloc.Next(geobuild.CategoryArray)
	b := g.begin()
	b = id.AppendRef(b)
	b = append(b, "[] = {"...)
	b = geobuild.AppendRefs(b, ",", refs...)
	g.emit(append(b, "};"...))
	return geobuild.NewArrayRef(id), nil
}

// checkKinds verifies every entity is non-nil and of the wanted dimension.
func checkKinds(op string, want geobuild.DimKind, ents []geobuild.Entity) error {
	for _, e := range ents {
		if e == nil {
			nilArg(op)
		}
		if e.Kind() != want {
			return fmt.Errorf("%w: %s needs %s, got %s", ErrKindMismatch, op, want, e.Kind())
		}
	}
	return nil
}

func appendEntities(b []byte, sep string, ents []geobuild.Entity) []byte {
	for i, e := range ents {
		b = e.AppendRef(b)
		if i != len(ents)-1 {
			b = append(b, sep...)
		}
	}
	return b
}

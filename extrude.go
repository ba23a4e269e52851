package pygmsh

import (
	"fmt"

	"github.com/ai3DVision/pygmsh/geobuild"
	"github.com/soypat/geometry/md3"
)

// ExtrudeConfig configures [Geometry.Extrude]. At least one of translation
// and rotation must be given.
type ExtrudeConfig struct {
	// Translation sweeps the entity along this vector. The zero vector means
	// no translation.
	Translation md3.Vec
	// RotationAxis, PointOnAxis and Angle revolve the entity about the axis
	// through PointOnAxis. Rotation applies when Angle is non-empty.
	RotationAxis md3.Vec
	PointOnAxis  md3.Vec
	// Angle is spliced into the statement verbatim so symbolic expressions
	// like "2*Pi/3" survive. The mesher cannot sweep half a turn or more in
	// one step; decompose larger sweeps into chained extrusions.
	Angle string
}

func (cfg *ExtrudeConfig) translates() bool { return cfg.Translation != (md3.Vec{}) }

func (cfg *ExtrudeConfig) rotates() bool {
	return cfg.Angle != "" || cfg.RotationAxis != (md3.Vec{})
}

// Extrude sweeps a curve or surface entity by translation and/or rotation.
// The statement assigns a result array: element 0 is the far end of the sweep
// (same dimension as e, chainable into a further Extrude) and element 1 is
// the created higher-dimensional entity, a surface for a curve source or a
// volume for a surface source.
func (g *Geometry) Extrude(e geobuild.Entity, cfg ExtrudeConfig) (top, extruded geobuild.IndexedRef, err error) {
	if e == nil {
		nilArg("Extrude")
	}
	var none geobuild.IndexedRef
	var created geobuild.DimKind
	switch e.Kind() {
	case geobuild.KindCurve:
		created = geobuild.KindSurface
	case geobuild.KindSurface:
		created = geobuild.KindVolume
	default:
		return none, none, fmt.Errorf("%w: cannot extrude %s", ErrKindMismatch, e.Kind())
	}
	if !cfg.translates() && !cfg.rotates() {
		return none, none, ErrExtrudeDirection
	}
	if cfg.rotates() && cfg.Angle == "" {
		return none, none, ErrEmptyAngle
	}
	id := g.alloc.Next(geobuild.CategoryExtrusion)
	b := g.begin()
	b = id.AppendRef(b)
	b = append(b, "[] = Extrude{"...)
	switch {
	case cfg.translates() && cfg.rotates():
		b = append(b, '{')
		b = geobuild.AppendVec(b, ",", cfg.Translation)
		b = append(b, "}, {"...)
		b = geobuild.AppendVec(b, ",", cfg.RotationAxis)
		b = append(b, "}, {"...)
		b = geobuild.AppendVec(b, ",", cfg.PointOnAxis)
		b = append(b, "}, "...)
		b = append(b, cfg.Angle...)
	case cfg.translates():
		b = geobuild.AppendVec(b, ",", cfg.Translation)
	default:
		b = append(b, '{')
		b = geobuild.AppendVec(b, ",", cfg.RotationAxis)
		b = append(b, "}, {"...)
		b = geobuild.AppendVec(b, ",", cfg.PointOnAxis)
		b = append(b, "}, "...)
		b = append(b, cfg.Angle...)
	}
	b = append(b, "}{"...)
	b = append(b, e.Kind().Keyword()...)
	b = append(b, '{')
	b = e.AppendRef(b)
	b = append(b, "};};"...)
	g.emit(b)
	top = geobuild.NewIndexedRef(id, 0, e.Kind())
	extruded = geobuild.NewIndexedRef(id, 1, created)
	return top, extruded, nil
}

package pygmsh

import (
	"fmt"

	"github.com/ai3DVision/pygmsh/geobuild"
)

// BooleanConfig configures the boolean operations. The zero value deletes
// the input entities after combining them, matching the mesher's usual use.
type BooleanConfig struct {
	// KeepInputs leaves the object and tool entities in place instead of
	// deleting them once the result is formed.
	KeepInputs bool
}

// BooleanUnion combines the entities into one. The first entity is the
// object, the rest are tools. Requires the OpenCASCADE factory.
func (g *Geometry) BooleanUnion(cfg BooleanConfig, entities ...geobuild.Entity) (geobuild.ListRef, error) {
	return g.splitBoolean("BooleanUnion", cfg, entities)
}

// BooleanIntersection keeps only the region common to all entities. The
// first entity is the object, the rest are tools.
func (g *Geometry) BooleanIntersection(cfg BooleanConfig, entities ...geobuild.Entity) (geobuild.ListRef, error) {
	return g.splitBoolean("BooleanIntersection", cfg, entities)
}

// BooleanDifference removes the tool entities from the object entities.
func (g *Geometry) BooleanDifference(cfg BooleanConfig, objects, tools []geobuild.Entity) (geobuild.ListRef, error) {
	return g.boolean("BooleanDifference", cfg, objects, tools)
}

// BooleanFragments intersects and splits the object and tool entities into
// non-overlapping pieces covering both.
func (g *Geometry) BooleanFragments(cfg BooleanConfig, objects, tools []geobuild.Entity) (geobuild.ListRef, error) {
	return g.boolean("BooleanFragments", cfg, objects, tools)
}

func (g *Geometry) splitBoolean(op string, cfg BooleanConfig, entities []geobuild.Entity) (geobuild.ListRef, error) {
	if len(entities) < 2 {
		return geobuild.ListRef{}, fmt.Errorf("%w: %s got %d entities", ErrBooleanOperands, op, len(entities))
	}
	return g.boolean(op, cfg, entities[:1], entities[1:])
}

// boolean validates the operand sets and emits one boolean statement. All
// operands must share one dimension; the result references the statement's
// output array, tagged with that dimension since the operation may produce
// several entities.
func (g *Geometry) boolean(op string, cfg BooleanConfig, objects, tools []geobuild.Entity) (geobuild.ListRef, error) {
	var none geobuild.ListRef
	if len(objects) == 0 || len(tools) == 0 {
		return none, fmt.Errorf("%w: %s", ErrBooleanOperands, op)
	}
	for _, e := range append(objects[:len(objects):len(objects)], tools...) {
		if e == nil {
			nilArg(op)
		}
	}
	kind := objects[0].Kind()
	if kind == geobuild.KindPoint {
		return none, fmt.Errorf("%w: %s cannot act on points", ErrKindMismatch, op)
	}
	for _, e := range tools {
		if e.Kind() != kind {
			return none, fmt.Errorf("%w: %s got %s and %s operands", ErrMixedDimensions, op, kind, e.Kind())
		}
	}
	for _, e := range objects[1:] {
		if e.Kind() != kind {
			return none, fmt.Errorf("%w: %s got %s and %s operands", ErrMixedDimensions, op, kind, e.Kind())
		}
	}
	id := g.alloc.Next(geobuild.CategoryBoolean)
	b := g.begin()
	b = id.AppendRef(b)
	b = append(b, "[] = "...)
	b = append(b, op...)
	b = g.appendBooleanOperands(b, kind, objects, cfg.KeepInputs)
	b = append(b, ' ')
	b = g.appendBooleanOperands(b, kind, tools, cfg.KeepInputs)
	b = append(b, ';')
	g.emit(b)
	return geobuild.NewListRef(id, kind), nil
}

// appendBooleanOperands appends one operand group, like
// "{Volume {vol1,vol2}; Delete;}".
func (g *Geometry) appendBooleanOperands(b []byte, kind geobuild.DimKind, ents []geobuild.Entity, keep bool) []byte {
	b = append(b, '{')
	b = append(b, kind.Keyword()...)
	b = append(b, " {"...)
	b = appendEntities(b, ",", ents)
	b = append(b, "}; "...)
	if !keep {
		b = append(b, "Delete;"...)
	}
	return append(b, '}')
}

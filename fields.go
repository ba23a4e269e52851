package pygmsh

import (
	"fmt"

	"github.com/ai3DVision/pygmsh/geobuild"
)

// BoundaryLayerConfig configures [Geometry.AddBoundaryLayer]. Zero-valued
// scalars and empty lists are left out of the field definition so the mesher
// applies its own defaults.
type BoundaryLayerConfig struct {
	// Edges, Faces and Nodes are the entities the layer grows from.
	Edges []geobuild.Entity
	Faces []geobuild.Entity
	Nodes []*Point
	// HFar is the element size far from the wall.
	HFar float64
	// HWallTangent and HWallNormal are the wall element sizes along and
	// normal to the wall.
	HWallTangent float64
	HWallNormal  float64
	// Ratio is the size growth factor between successive layers.
	Ratio float64
	// Thickness is the maximal thickness of the layer.
	Thickness float64
	// AnisoMax caps the element anisotropy away from the wall.
	AnisoMax float64
}

// AddBoundaryLayer emits a boundary layer mesh size field attached to the
// configured edges, faces and nodes. The field only takes effect once listed
// in a background field.
func (g *Geometry) AddBoundaryLayer(cfg BoundaryLayerConfig) (*Field, error) {
	if len(cfg.Edges) == 0 && len(cfg.Faces) == 0 && len(cfg.Nodes) == 0 {
		return nil, fmt.Errorf("%w: boundary layer", ErrNoEntities)
	}
	if err := checkKinds("AddBoundaryLayer", geobuild.KindCurve, cfg.Edges); err != nil {
		return nil, err
	}
	if err := checkKinds("AddBoundaryLayer", geobuild.KindSurface, cfg.Faces); err != nil {
		return nil, err
	}
	for _, n := range cfg.Nodes {
		if n == nil {
			nilArg("AddBoundaryLayer")
		}
	}
	id := g.alloc.Next(geobuild.CategoryField)
	g.declare(id)
	g.emit(append(g.fieldPrefix(id, ""), " = BoundaryLayer;"...))
	if len(cfg.Edges) > 0 {
		g.fieldList(id, "EdgesList", cfg.Edges)
	}
	if len(cfg.Faces) > 0 {
		g.fieldList(id, "FacesList", cfg.Faces)
	}
	if len(cfg.Nodes) > 0 {
		nodes := make([]geobuild.Entity, len(cfg.Nodes))
		for i, n := range cfg.Nodes {
			nodes[i] = n
		}
		g.fieldList(id, "NodesList", nodes)
	}
	g.fieldScalar(id, "hfar", cfg.HFar)
	g.fieldScalar(id, "hwall_t", cfg.HWallTangent)
	g.fieldScalar(id, "hwall_n", cfg.HWallNormal)
	g.fieldScalar(id, "ratio", cfg.Ratio)
	g.fieldScalar(id, "thickness", cfg.Thickness)
	g.fieldScalar(id, "AnisoMax", cfg.AnisoMax)
	return &Field{id: id}, nil
}

// AddBackgroundField emits a field aggregating the given fields and
// designates it as the active mesh size field. aggregation is the combining
// field type, like "Min" or "Max"; empty means "Min".
func (g *Geometry) AddBackgroundField(fields []*Field, aggregation string) (*Field, error) {
	if len(fields) == 0 {
		return nil, fmt.Errorf("%w: background field", ErrNoEntities)
	}
	for _, f := range fields {
		if f == nil {
			nilArg("AddBackgroundField")
		}
	}
	if aggregation == "" {
		aggregation = "Min"
	}
	id := g.alloc.Next(geobuild.CategoryField)
	g.declare(id)
	g.emit(append(g.fieldPrefix(id, ""), " = "+aggregation+";"...))
	b := g.fieldPrefix(id, "FieldsList")
	b = append(b, " = {"...)
	for i, f := range fields {
		b = f.AppendRef(b)
		if i != len(fields)-1 {
			b = append(b, ", "...)
		}
	}
	g.emit(append(b, "};"...))
	b = append(g.begin(), "Background Field = "...)
	b = id.AppendRef(b)
	g.emit(append(b, ';'))
	return &Field{id: id}, nil
}

// fieldPrefix starts a "Field[fieldN].Option" fragment.
func (g *Geometry) fieldPrefix(id geobuild.ID, option string) []byte {
	b := append(g.begin(), "Field["...)
	b = id.AppendRef(b)
	b = append(b, ']')
	if option != "" {
		b = append(b, '.')
		b = append(b, option...)
	}
	return b
}

func (g *Geometry) fieldList(id geobuild.ID, option string, ents []geobuild.Entity) {
	b := g.fieldPrefix(id, option)
	b = append(b, " = {"...)
	b = appendEntities(b, ",", ents)
	g.emit(append(b, "};"...))
}

// fieldScalar emits one scalar field option, skipping zero values.
func (g *Geometry) fieldScalar(id geobuild.ID, option string, v float64) {
	if v == 0 {
		return
	}
	b := g.fieldPrefix(id, option)
	b = append(b, "= "...)
	b = geobuild.AppendFloat(b, v)
	g.emit(append(b, ';'))
}

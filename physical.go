package pygmsh

import (
	"fmt"
	"strconv"

	"github.com/ai3DVision/pygmsh/geobuild"
)

// AddPhysicalPoint tags a point as a physical group. An empty label yields an
// automatic numeric tag; otherwise the label is emitted double-quoted.
func (g *Geometry) AddPhysicalPoint(p *Point, label string) {
	if p == nil {
		nilArg("AddPhysicalPoint")
	}
	g.physicalGroup("Physical Point", p, label)
}

// AddPhysicalLine tags a curve-kind entity as a physical group.
func (g *Geometry) AddPhysicalLine(line geobuild.Entity, label string) error {
	return g.physicalKind("Physical Line", geobuild.KindCurve, line, label)
}

// AddPhysicalSurface tags a surface-kind entity as a physical group.
func (g *Geometry) AddPhysicalSurface(surface geobuild.Entity, label string) error {
	return g.physicalKind("Physical Surface", geobuild.KindSurface, surface, label)
}

// AddPhysicalVolume tags a volume-kind entity as a physical group.
func (g *Geometry) AddPhysicalVolume(volume geobuild.Entity, label string) error {
	return g.physicalKind("Physical Volume", geobuild.KindVolume, volume, label)
}

func (g *Geometry) physicalKind(keyword string, want geobuild.DimKind, e geobuild.Entity, label string) error {
	if e == nil {
		nilArg(keyword)
	}
	if e.Kind() != want {
		return fmt.Errorf("%w: %s got %s", ErrKindMismatch, keyword, e.Kind())
	}
	g.physicalGroup(keyword, e, label)
	return nil
}

// physicalGroup emits one physical group statement. The group counter
// advances for labeled groups too, so automatic numbers stay unique however
// the two styles are mixed.
func (g *Geometry) physicalGroup(keyword string, ref geobuild.Ref, label string) {
	id := g.alloc.Next(geobuild.CategoryPhysicalGroup)
	b := append(g.begin(), keyword...)
	b = append(b, '(')
	if label == "" {
		b = strconv.AppendInt(b, int64(id.Ordinal()), 10)
	} else {
		b = strconv.AppendQuote(b, label)
	}
	b = append(b, ") = "...)
	b = ref.AppendRef(b)
	g.emit(append(b, ';'))
}

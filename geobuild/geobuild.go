// Package geobuild implements the low-level machinery for generating Gmsh geo
// scripts: category-scoped symbol allocation, an append-only statement log and
// dimension tags for the entities referenced by statements.
//
// The package knows nothing about shapes. Builders in the parent package
// allocate identifiers with [Allocator.Next], format statements with the
// Append helpers and record them in a [Script]; geobuild guarantees the
// identifiers are unique per category and the serialized output is newline
// terminated.
package geobuild

import (
	"strconv"

	"github.com/soypat/geometry/md3"
)

// Category partitions the identifier space of a script. Every category has
// its own monotonic counter so that points, lines, surfaces and the rest are
// numbered independently, matching how the generated script names them.
type Category uint8

const (
	CategoryPoint Category = iota
	CategoryLine
	CategoryCircleArc
	CategoryEllipseArc
	CategoryLineLoop
	CategoryPlaneSurface
	CategorySurface
	CategorySurfaceLoop
	CategoryVolume
	CategoryCompoundVolume
	CategoryField
	CategoryExtrusion
	CategoryBoolean
	CategoryArray
	CategoryPhysicalGroup
	maxCategory // Keep last.
)

// Prefix returns the identifier prefix of the category, such as "p" for
// points. Physical groups are referenced by bare numbers and have no prefix.
func (c Category) Prefix() string {
	switch c {
	case CategoryPoint:
		return "p"
	case CategoryLine:
		return "l"
	case CategoryCircleArc:
		return "c"
	case CategoryEllipseArc:
		return "ell"
	case CategoryLineLoop:
		return "ll"
	case CategoryPlaneSurface:
		return "ps"
	case CategorySurface:
		return "surf"
	case CategorySurfaceLoop:
		return "surfloop"
	case CategoryVolume:
		return "vol"
	case CategoryCompoundVolume:
		return "cv"
	case CategoryField:
		return "field"
	case CategoryExtrusion:
		return "ex"
	case CategoryBoolean:
		return "bo"
	case CategoryArray:
		return "array"
	case CategoryPhysicalGroup:
		return ""
	}
	return "invalid"
}

// NewIDFunc returns the script pseudo-function that reserves a fresh tag for
// the category, such as "newp" for points. Categories whose statements assign
// result arrays directly return the empty string.
func (c Category) NewIDFunc() string {
	switch c {
	case CategoryPoint:
		return "newp"
	case CategoryLine, CategoryCircleArc, CategoryEllipseArc:
		return "newl"
	case CategoryLineLoop:
		return "newll"
	case CategoryPlaneSurface, CategorySurface:
		return "news"
	case CategorySurfaceLoop:
		return "newsl"
	case CategoryVolume, CategoryCompoundVolume:
		return "newv"
	case CategoryField:
		return "newf"
	}
	return ""
}

func (c Category) String() string {
	switch c {
	case CategoryPoint:
		return "point"
	case CategoryLine:
		return "line"
	case CategoryCircleArc:
		return "circle arc"
	case CategoryEllipseArc:
		return "ellipse arc"
	case CategoryLineLoop:
		return "line loop"
	case CategoryPlaneSurface:
		return "plane surface"
	case CategorySurface:
		return "surface"
	case CategorySurfaceLoop:
		return "surface loop"
	case CategoryVolume:
		return "volume"
	case CategoryCompoundVolume:
		return "compound volume"
	case CategoryField:
		return "field"
	case CategoryExtrusion:
		return "extrusion"
	case CategoryBoolean:
		return "boolean"
	case CategoryArray:
		return "array"
	case CategoryPhysicalGroup:
		return "physical group"
	}
	return "invalid"
}

// ID is a category-scoped symbol such as "p4" or "surfloop1". The zero value
// is not a valid identifier; obtain IDs from [Allocator.Next].
type ID struct {
	cat Category
	n   int
}

// Category returns the category the ID was allocated in.
func (id ID) Category() Category { return id.cat }

// Ordinal returns the 1-based position of the ID within its category.
func (id ID) Ordinal() int { return id.n }

// AppendRef appends the symbol to b, i.e. "p4".
func (id ID) AppendRef(b []byte) []byte {
	b = append(b, id.cat.Prefix()...)
	return strconv.AppendInt(b, int64(id.n), 10)
}

func (id ID) String() string { return string(id.AppendRef(nil)) }

// Allocator hands out unique identifiers, one counter per category. Counters
// start at zero so the first identifier of each category is numbered 1. The
// zero value is ready to use. Allocators are independent: two sessions never
// share numbering.
type Allocator struct {
	counts [maxCategory]int
}

// Next reserves and returns the next identifier of category c.
func (a *Allocator) Next(c Category) ID {
	a.counts[c]++
	return ID{cat: c, n: a.counts[c]}
}

// Count returns how many identifiers of category c have been handed out.
func (a *Allocator) Count(c Category) int { return a.counts[c] }

// DimKind tags entities with their geometric dimension. Operations that only
// act on entities of a uniform or particular dimension check the tag before
// emitting anything.
type DimKind uint8

const (
	KindPoint DimKind = iota
	KindCurve
	KindSurface
	KindVolume
)

func (k DimKind) String() string {
	switch k {
	case KindPoint:
		return "point"
	case KindCurve:
		return "curve"
	case KindSurface:
		return "surface"
	case KindVolume:
		return "volume"
	}
	return "invalid"
}

// Keyword returns the statement keyword for entities of this dimension, as
// used by extrusion operands and boolean operand lists. Curves are keyed
// "Line" in the script grammar.
func (k DimKind) Keyword() string {
	switch k {
	case KindPoint:
		return "Point"
	case KindCurve:
		return "Line"
	case KindSurface:
		return "Surface"
	case KindVolume:
		return "Volume"
	}
	return "invalid"
}

// Ref is anything that can be spliced into a statement as a reference:
// plain identifiers, array elements, whole arrays or reversed entities.
type Ref interface {
	// AppendRef appends the script form of the reference to b.
	AppendRef(b []byte) []byte
}

// Entity is a reference with a known geometric dimension.
type Entity interface {
	Ref
	Kind() DimKind
}

type reversed struct {
	e Entity
}

// Reversed returns e with flipped orientation, rendered with a leading minus
// sign as loops require for edges traversed backwards. Reversing a reversed
// entity returns the original.
func Reversed(e Entity) Entity {
	if r, ok := e.(reversed); ok {
		return r.e
	}
	return reversed{e: e}
}

func (r reversed) AppendRef(b []byte) []byte {
	b = append(b, '-')
	return r.e.AppendRef(b)
}

func (r reversed) Kind() DimKind { return r.e.Kind() }

// IndexedRef references a single element of a script result array, such as
// "ex3[0]". Extrusions return their far-end and created entities this way.
type IndexedRef struct {
	parent ID
	index  int
	kind   DimKind
}

// NewIndexedRef returns a reference to element index of the array named by
// parent, tagged with the dimension of the referenced entity.
func NewIndexedRef(parent ID, index int, kind DimKind) IndexedRef {
	return IndexedRef{parent: parent, index: index, kind: kind}
}

// AppendRef appends the element reference to b, i.e. "ex3[0]".
func (r IndexedRef) AppendRef(b []byte) []byte {
	b = r.parent.AppendRef(b)
	b = append(b, '[')
	b = strconv.AppendInt(b, int64(r.index), 10)
	return append(b, ']')
}

func (r IndexedRef) Kind() DimKind { return r.kind }

// Index returns the element position within the parent array.
func (r IndexedRef) Index() int { return r.index }

func (r IndexedRef) String() string { return string(r.AppendRef(nil)) }

// ArrayRef references the whole contents of a script array variable, i.e.
// "array2[]".
type ArrayRef struct {
	id ID
}

// NewArrayRef returns a whole-array reference to the variable named by id.
func NewArrayRef(id ID) ArrayRef { return ArrayRef{id: id} }

// AppendRef appends the whole-array reference to b, i.e. "array2[]".
func (r ArrayRef) AppendRef(b []byte) []byte {
	b = r.id.AppendRef(b)
	return append(b, '[', ']')
}

func (r ArrayRef) String() string { return string(r.AppendRef(nil)) }

// ListRef is an [ArrayRef] whose elements all share one dimension. Boolean
// operations return their results this way so the result can feed further
// booleans or physical groups.
type ListRef struct {
	ArrayRef
	kind DimKind
}

// NewListRef returns a whole-array reference tagged with the dimension of the
// array's elements.
func NewListRef(id ID, kind DimKind) ListRef {
	return ListRef{ArrayRef: ArrayRef{id: id}, kind: kind}
}

func (r ListRef) Kind() DimKind { return r.kind }

type rawRef struct {
	kind DimKind
	expr string
}

// Raw wraps an identifier created outside the session, such as one introduced
// by raw statements, so it can be used wherever an [Entity] is expected. The
// expression is spliced into statements verbatim.
func Raw(kind DimKind, expr string) Entity {
	return rawRef{kind: kind, expr: expr}
}

func (r rawRef) AppendRef(b []byte) []byte { return append(b, r.expr...) }

func (r rawRef) Kind() DimKind { return r.kind }

// Script is an append-only log of statement lines. Statements are never
// reordered or rewritten once appended. The zero value is an empty script.
type Script struct {
	lines []string
}

// Append adds statement lines to the end of the log.
func (s *Script) Append(lines ...string) {
	s.lines = append(s.lines, lines...)
}

// Len returns the number of logged lines.
func (s *Script) Len() int { return len(s.lines) }

// Line returns the i-th logged line.
func (s *Script) Line(i int) string { return s.lines[i] }

// Lines returns a copy of the logged lines.
func (s *Script) Lines() []string {
	out := make([]string, len(s.lines))
	copy(out, s.lines)
	return out
}

// AppendTo appends the serialized script to b. Every line is newline
// terminated, including the last: the mesher rejects geo files that do not
// end in a newline.
func (s *Script) AppendTo(b []byte) []byte {
	for _, line := range s.lines {
		b = append(b, line...)
		b = append(b, '\n')
	}
	return b
}

func (s *Script) String() string { return string(s.AppendTo(nil)) }

// AppendFloat appends the shortest decimal representation of v that parses
// back to the same float64.
func AppendFloat(b []byte, v float64) []byte {
	return strconv.AppendFloat(b, v, 'g', -1, 64)
}

// AppendFloats appends the values in s separated by sep.
func AppendFloats(b []byte, sep string, s ...float64) []byte {
	for i, v := range s {
		b = AppendFloat(b, v)
		if i != len(s)-1 {
			b = append(b, sep...)
		}
	}
	return b
}

// AppendVec appends the three components of v separated by sep.
func AppendVec(b []byte, sep string, v md3.Vec) []byte {
	return AppendFloats(b, sep, v.X, v.Y, v.Z)
}

// AppendRefs appends the references in refs separated by sep.
func AppendRefs(b []byte, sep string, refs ...Ref) []byte {
	for i, r := range refs {
		b = r.AppendRef(b)
		if i != len(refs)-1 {
			b = append(b, sep...)
		}
	}
	return b
}

package pygmsh_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"

	"github.com/ai3DVision/pygmsh"
	"github.com/ai3DVision/pygmsh/geobuild"
	"github.com/soypat/geometry/md3"
	"github.com/stretchr/testify/require"
)

const header = "// This code was created by pygmsh v" + pygmsh.Version + "."

var (
	reToken  = regexp.MustCompile(`[a-z]+[0-9]+`)
	reDefine = regexp.MustCompile(`^([a-z]+[0-9]+)(\[\])? = `)
)

// checkDefinitionOrder fails the test if any statement references an
// identifier whose defining statement does not precede it in the script.
func checkDefinitionOrder(t *testing.T, g *pygmsh.Geometry) {
	t.Helper()
	defined := make(map[string]bool)
	for i, line := range g.Statements() {
		if strings.HasPrefix(line, "//") {
			continue
		}
		var introduces string
		if m := reDefine.FindStringSubmatch(line); m != nil {
			introduces = m[1]
		}
		for _, tok := range reToken.FindAllString(line, -1) {
			if tok == introduces || defined[tok] {
				continue
			}
			t.Fatalf("statement %d references %q before its definition:\n%s", i, tok, line)
		}
		if introduces != "" {
			defined[introduces] = true
		}
	}
}

func countPrefix(g *pygmsh.Geometry, prefix string) int {
	n := 0
	for _, line := range g.Statements() {
		if strings.HasPrefix(line, prefix) {
			n++
		}
	}
	return n
}

func TestEmptySession(t *testing.T) {
	g := pygmsh.NewGeometry()
	require.Equal(t, header+"\n", g.String(), "empty session must serialize to the header only")
}

func TestTrailingNewline(t *testing.T) {
	g := pygmsh.NewGeometry()
	g.AddPoint(md3.Vec{}, 0.1)
	out := g.Bytes()
	if !bytes.HasSuffix(out, []byte("\n")) {
		t.Fatal("script must end in a newline")
	}
}

func TestGeometryConfig(t *testing.T) {
	g := pygmsh.NewGeometryWithConfig(pygmsh.GeometryConfig{
		Factory:                 "OpenCASCADE",
		CharacteristicLengthMin: 0.05,
		CharacteristicLengthMax: 0.5,
	})
	require.Equal(t, []string{
		header,
		`SetFactory("OpenCASCADE");`,
		"Mesh.CharacteristicLengthMin = 0.05;",
		"Mesh.CharacteristicLengthMax = 0.5;",
	}, g.Statements())
}

func TestCommentAndRawCode(t *testing.T) {
	g := pygmsh.NewGeometry()
	g.AddComment("inlet region")
	g.AddRawCode("Mesh.Algorithm = 6;", "Coherence;")
	require.Equal(t, []string{
		header,
		"// inlet region",
		"Mesh.Algorithm = 6;",
		"Coherence;",
	}, g.Statements())
}

func TestAddPointAndCurves(t *testing.T) {
	g := pygmsh.NewGeometry()
	p0 := g.AddPoint(md3.Vec{X: 1, Y: 2, Z: 3}, 0.1)
	p1 := g.AddPoint(md3.Vec{X: -1}, 0.1)
	l := g.AddLine(p0, p1)
	require.Equal(t, []string{
		header,
		"p1 = newp;",
		"Point(p1) = {1, 2, 3, 0.1};",
		"p2 = newp;",
		"Point(p2) = {-1, 0, 0, 0.1};",
		"l1 = newl;",
		"Line(l1) = {p1, p2};",
	}, g.Statements())
	require.Equal(t, geobuild.KindCurve, l.Kind())
	require.Equal(t, "l1", l.ID().String())
	checkDefinitionOrder(t, g)
}

func TestLineLoopValidation(t *testing.T) {
	g := pygmsh.NewGeometry()
	before := len(g.Statements())

	_, err := g.AddLineLoop()
	require.ErrorIs(t, err, pygmsh.ErrNoEntities)

	// A surface-kind entity cannot participate in a line loop.
	_, err = g.AddLineLoop(geobuild.Raw(geobuild.KindSurface, "outer"))
	require.ErrorIs(t, err, pygmsh.ErrKindMismatch)
	require.Len(t, g.Statements(), before, "failed call must not emit")
}

func TestPolygonAndRectangle(t *testing.T) {
	g := pygmsh.NewGeometry()
	poly, err := g.AddPolygon([]md3.Vec{
		{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1},
	}, 0.2)
	require.NoError(t, err)
	require.NotNil(t, poly.PlaneSurface())
	require.Len(t, poly.LineLoop().Curves(), 3)
	require.Equal(t, 3, countPrefix(g, "Point("))
	require.Equal(t, 3, countPrefix(g, "Line("))
	require.Equal(t, 1, countPrefix(g, "Line Loop("))
	require.Equal(t, 1, countPrefix(g, "Plane Surface("))
	checkDefinitionOrder(t, g)

	// A rectangle is a 4-point polygon; the hole loop goes into the plane
	// surface statement.
	rect, err := g.AddRectangle(-1, 2, -1, 2, 0, 0.2, poly.LineLoop())
	require.NoError(t, err)
	surf := rect.PlaneSurface()
	require.Len(t, surf.Holes(), 1)
	checkDefinitionOrder(t, g)

	_, err = g.AddRectangle(2, -1, -1, 2, 0, 0.2)
	require.ErrorIs(t, err, pygmsh.ErrDimension)
}

func TestCircle(t *testing.T) {
	g := pygmsh.NewGeometry()
	c, err := g.AddCircle(pygmsh.CircleConfig{Radius: 1, Lcar: 0.1})
	require.NoError(t, err)
	require.NotNil(t, c.PlaneSurface())
	require.Equal(t, 4, countPrefix(g, "Point("), "center plus 3 rim points")
	require.Equal(t, 3, countPrefix(g, "Circle("))
	checkDefinitionOrder(t, g)

	g = pygmsh.NewGeometry()
	c, err = g.AddCircle(pygmsh.CircleConfig{Radius: 1, Lcar: 0.1, NumSections: 4, OmitSurface: true})
	require.NoError(t, err)
	require.Nil(t, c.PlaneSurface())
	require.Equal(t, 5, countPrefix(g, "Point("))
	require.Equal(t, 4, countPrefix(g, "Circle("))
	require.Equal(t, 0, countPrefix(g, "Plane Surface("))

	_, err = g.AddCircle(pygmsh.CircleConfig{Radius: 1, Lcar: 0.1, NumSections: 5})
	require.ErrorIs(t, err, pygmsh.ErrSectionCount)

	_, err = g.AddCircle(pygmsh.CircleConfig{
		Radius: 1, Lcar: 0.1, OmitSurface: true,
		Holes: []*pygmsh.LineLoop{c.LineLoop()},
	})
	require.ErrorIs(t, err, pygmsh.ErrHolesWithoutSurface)
}

func TestAddArray(t *testing.T) {
	g := pygmsh.NewGeometry()
	p0 := g.AddPoint(md3.Vec{}, 0.1)
	p1 := g.AddPoint(md3.Vec{X: 1}, 0.1)
	arr, err := g.AddArray(p0, p1)
	require.NoError(t, err)
	require.Equal(t, "array1[]", arr.String())
	require.Equal(t, "array1[] = {p1,p2};", g.Statements()[len(g.Statements())-1])

	_, err = g.AddArray()
	require.ErrorIs(t, err, pygmsh.ErrNoEntities)
}

func TestSessionIndependence(t *testing.T) {
	a := pygmsh.NewGeometry()
	b := pygmsh.NewGeometry()
	a.AddPoint(md3.Vec{}, 0.1)
	p := b.AddPoint(md3.Vec{}, 0.1)
	require.Equal(t, "p1", p.ID().String(), "sessions must not share counters")
}

func TestWriteTo(t *testing.T) {
	g := pygmsh.NewGeometry()
	g.AddComment("x")
	var buf bytes.Buffer
	n, err := g.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(buf.Len()), n)
	require.Equal(t, g.String(), buf.String())
}

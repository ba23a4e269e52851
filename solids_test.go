package pygmsh_test

import (
	"testing"

	"github.com/ai3DVision/pygmsh"
	"github.com/ai3DVision/pygmsh/geobuild"
	"github.com/soypat/geometry/md3"
	"github.com/stretchr/testify/require"
)

func TestBoxStatementCounts(t *testing.T) {
	g := pygmsh.NewGeometry()
	vol, shell, err := g.AddBox(pygmsh.BoxConfig{
		Min:  md3.Vec{X: -1, Y: -1, Z: -1},
		Max:  md3.Vec{X: 1, Y: 1, Z: 1},
		Lcar: 0.1,
	})
	require.NoError(t, err)
	require.NotNil(t, vol)
	require.NotNil(t, shell)
	require.Equal(t, 8, countPrefix(g, "Point("))
	require.Equal(t, 12, countPrefix(g, "Line("))
	require.Equal(t, 6, countPrefix(g, "Line Loop("))
	require.Equal(t, 6, countPrefix(g, "Ruled Surface("))
	require.Equal(t, 1, countPrefix(g, "Surface Loop("))
	require.Equal(t, 1, countPrefix(g, "Volume("))
	checkDefinitionOrder(t, g)
}

func TestBoxOmitVolume(t *testing.T) {
	g := pygmsh.NewGeometry()
	vol, shell, err := g.AddBox(pygmsh.BoxConfig{
		Min:        md3.Vec{},
		Max:        md3.Vec{X: 1, Y: 1, Z: 1},
		Lcar:       0.1,
		OmitVolume: true,
	})
	require.NoError(t, err)
	require.Nil(t, vol)
	require.Equal(t, 0, countPrefix(g, "Volume("))
	sl, ok := shell.(*pygmsh.SurfaceLoop)
	require.True(t, ok, "shell must be the surface loop when no holes are given")
	require.Equal(t, "surfloop1", sl.ID().String())
}

func TestBoxWithCavity(t *testing.T) {
	g := pygmsh.NewGeometry()
	// Inner box provides the cavity shell.
	_, innerShell, err := g.AddBox(pygmsh.BoxConfig{
		Min:        md3.Vec{X: -1, Y: -1, Z: -1},
		Max:        md3.Vec{X: 1, Y: 1, Z: 1},
		Lcar:       0.1,
		OmitVolume: true,
	})
	require.NoError(t, err)
	inner := innerShell.(*pygmsh.SurfaceLoop)

	vol, shell, err := g.AddBox(pygmsh.BoxConfig{
		Min:   md3.Vec{X: -2, Y: -2, Z: -2},
		Max:   md3.Vec{X: 2, Y: 2, Z: 2},
		Lcar:  0.1,
		Holes: []*pygmsh.SurfaceLoop{inner},
	})
	require.NoError(t, err)
	require.NotNil(t, vol)
	checkDefinitionOrder(t, g)

	// The volume is bounded by the loop-plus-holes array, outer shell first.
	lines := g.Statements()
	require.Contains(t, lines, "array1[] = {surfloop2,surfloop1};")
	require.Contains(t, lines, "Volume(vol1) = array1[];")
	arr, ok := shell.(geobuild.ArrayRef)
	require.True(t, ok, "shell must be the loop-plus-holes array when holes are given")
	require.Equal(t, "array1[]", arr.String())
}

func TestBoxBadDimensions(t *testing.T) {
	g := pygmsh.NewGeometry()
	before := len(g.Statements())
	for _, cfg := range []pygmsh.BoxConfig{
		{Min: md3.Vec{}, Max: md3.Vec{X: 1, Y: 1, Z: 1}, Lcar: 0},
		{Min: md3.Vec{}, Max: md3.Vec{X: 1, Y: 1}, Lcar: 0.1},
		{Min: md3.Vec{X: 2}, Max: md3.Vec{X: 1, Y: 1, Z: 1}, Lcar: 0.1},
	} {
		_, _, err := g.AddBox(cfg)
		require.ErrorIs(t, err, pygmsh.ErrDimension)
	}
	require.Len(t, g.Statements(), before, "failed calls must not emit")
}

func TestEllipsoidStatementCounts(t *testing.T) {
	g := pygmsh.NewGeometry()
	vol, _, err := g.AddEllipsoid(pygmsh.EllipsoidConfig{
		Center: md3.Vec{X: 1},
		Radii:  md3.Vec{X: 1, Y: 2, Z: 3},
		Lcar:   0.2,
	})
	require.NoError(t, err)
	require.NotNil(t, vol)
	require.Equal(t, 7, countPrefix(g, "Point("), "center plus 6 axis points")
	require.Equal(t, 12, countPrefix(g, "Ellipse("))
	require.Equal(t, 8, countPrefix(g, "Line Loop("))
	require.Equal(t, 8, countPrefix(g, "Ruled Surface("))
	require.Equal(t, 2, countPrefix(g, "Compound Surface("))
	require.Equal(t, 1, countPrefix(g, "Surface Loop("))
	require.Equal(t, 1, countPrefix(g, "Volume("))
	checkDefinitionOrder(t, g)
}

func TestBallMatchesEqualRadiiEllipsoid(t *testing.T) {
	ge := pygmsh.NewGeometry()
	_, _, err := ge.AddEllipsoid(pygmsh.EllipsoidConfig{
		Center: md3.Vec{X: 1, Y: -1},
		Radii:  md3.Vec{X: 2.5, Y: 2.5, Z: 2.5},
		Lcar:   0.3,
	})
	require.NoError(t, err)

	gb := pygmsh.NewGeometry()
	_, _, err = gb.AddBall(pygmsh.BallConfig{
		Center: md3.Vec{X: 1, Y: -1},
		Radius: 2.5,
		Lcar:   0.3,
	})
	require.NoError(t, err)
	require.Equal(t, ge.String(), gb.String(), "a ball is the equal-radii ellipsoid")
}

func TestSolidLabels(t *testing.T) {
	g := pygmsh.NewGeometry()
	_, _, err := g.AddBox(pygmsh.BoxConfig{
		Min:   md3.Vec{},
		Max:   md3.Vec{X: 1, Y: 1, Z: 1},
		Lcar:  0.1,
		Label: "casing",
	})
	require.NoError(t, err)
	require.Contains(t, g.Statements(), `Physical Volume("casing") = vol1;`)

	_, _, err = g.AddBall(pygmsh.BallConfig{Radius: 1, Lcar: 0.1, Label: "core"})
	require.NoError(t, err)
	require.Contains(t, g.Statements(), `Physical Volume("core") = vol2;`)
}

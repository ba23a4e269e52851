package pygmsh_test

import (
	"strings"
	"testing"

	"github.com/ai3DVision/pygmsh"
	"github.com/ai3DVision/pygmsh/geobuild"
	"github.com/soypat/geometry/md3"
	"github.com/stretchr/testify/require"
)

func TestTorusExtrudeLines(t *testing.T) {
	g := pygmsh.NewGeometry()
	vol, err := g.AddTorus(pygmsh.TorusConfig{
		InnerRadius: 0.25,
		OuterRadius: 1,
		Lcar:        0.1,
	})
	require.NoError(t, err)
	require.NotNil(t, vol)
	require.Equal(t, geobuild.KindVolume, vol.Kind())
	// Three 120 degree rounds over the three arcs of the profile circle.
	require.Equal(t, 9, countPrefix(g, "ex"))
	require.Equal(t, 1, countPrefix(g, "Volume("))
	require.Equal(t, 1, countPrefix(g, "Surface Loop("))
	require.Contains(t, g.Statements(), "// Round no. 3")
	checkDefinitionOrder(t, g)

	// Full revolutions are decomposed; no single sweep reaches half a turn.
	for _, line := range g.Statements() {
		if strings.Contains(line, "Extrude") {
			require.Contains(t, line, "2*Pi/3", "sweep angle must stay below Pi")
		}
	}
}

func TestTorusExtrudeCircle(t *testing.T) {
	g := pygmsh.NewGeometry()
	vol, err := g.AddTorus(pygmsh.TorusConfig{
		InnerRadius: 0.25,
		OuterRadius: 1,
		Variant:     pygmsh.TorusExtrudeCircle,
		Lcar:        0.1,
	})
	require.NoError(t, err)
	require.NotNil(t, vol)
	// The whole disk is swept three times; the swept volumes merge into one
	// compound volume.
	require.Equal(t, 3, countPrefix(g, "ex"))
	require.Equal(t, 1, countPrefix(g, "Compound Volume("))
	require.Equal(t, 0, countPrefix(g, "Volume("))
	require.Equal(t, "cv1", vol.ID().String())
	checkDefinitionOrder(t, g)
}

func TestTorusPlacement(t *testing.T) {
	// A rotated, shifted torus stays well-formed.
	R := md3.NewMat3([]float64{
		1, 0, 0,
		0, 0, -1,
		0, 1, 0,
	})
	for _, variant := range []pygmsh.TorusVariant{pygmsh.TorusExtrudeLines, pygmsh.TorusExtrudeCircle} {
		g := pygmsh.NewGeometry()
		_, err := g.AddTorus(pygmsh.TorusConfig{
			InnerRadius: 0.1,
			OuterRadius: 0.5,
			Rotation:    R,
			Center:      md3.Vec{X: 3, Y: -2, Z: 1},
			Lcar:        0.1,
			Variant:     variant,
		})
		require.NoError(t, err, "variant %s", variant)
		checkDefinitionOrder(t, g)
	}
}

func TestTorusAnyInnerRadiusBelowOuter(t *testing.T) {
	for _, irad := range []float64{1e-6, 0.1, 0.5, 0.999999} {
		for _, variant := range []pygmsh.TorusVariant{pygmsh.TorusExtrudeLines, pygmsh.TorusExtrudeCircle} {
			g := pygmsh.NewGeometry()
			vol, err := g.AddTorus(pygmsh.TorusConfig{
				InnerRadius: irad,
				OuterRadius: 1,
				Lcar:        0.1,
				Variant:     variant,
			})
			require.NoError(t, err, "irad=%g variant=%s", irad, variant)
			require.NotNil(t, vol)
		}
	}
}

func TestTorusValidation(t *testing.T) {
	g := pygmsh.NewGeometry()
	before := len(g.Statements())

	_, err := g.AddTorus(pygmsh.TorusConfig{InnerRadius: 1, OuterRadius: 1, Lcar: 0.1})
	require.ErrorIs(t, err, pygmsh.ErrRadii)

	_, err = g.AddTorus(pygmsh.TorusConfig{InnerRadius: 2, OuterRadius: 1, Lcar: 0.1})
	require.ErrorIs(t, err, pygmsh.ErrRadii)

	_, err = g.AddTorus(pygmsh.TorusConfig{InnerRadius: 0.5, OuterRadius: 1, Lcar: 0.1, Variant: "spin"})
	require.ErrorIs(t, err, pygmsh.ErrUnknownVariant)

	require.Len(t, g.Statements(), before, "failed torus calls must not emit")
}

func TestTorusLabel(t *testing.T) {
	g := pygmsh.NewGeometry()
	_, err := g.AddTorus(pygmsh.TorusConfig{
		InnerRadius: 0.25,
		OuterRadius: 1,
		Lcar:        0.1,
		Label:       "seal",
	})
	require.NoError(t, err)
	require.Contains(t, g.Statements(), `Physical Volume("seal") = vol1;`)
}

func TestPipeRectangleRotation(t *testing.T) {
	g := pygmsh.NewGeometry()
	vol, err := g.AddPipe(pygmsh.PipeConfig{
		OuterRadius: 1,
		InnerRadius: 0.5,
		Length:      4,
	})
	require.NoError(t, err)
	require.Equal(t, geobuild.KindVolume, vol.Kind())
	// Three steps over the rectangle's four edges.
	require.Equal(t, 12, countPrefix(g, "ex"))
	require.Equal(t, 4, countPrefix(g, "Point("))
	require.Equal(t, 4, countPrefix(g, "Line("))
	require.Equal(t, 1, countPrefix(g, "Surface Loop("))
	require.Equal(t, 1, countPrefix(g, "Volume("))
	require.Contains(t, g.Statements(), "// Extrude in 3 steps.")
	checkDefinitionOrder(t, g)
}

func TestPipeCircleExtrusion(t *testing.T) {
	g := pygmsh.NewGeometry()
	vol, err := g.AddPipe(pygmsh.PipeConfig{
		OuterRadius: 1,
		InnerRadius: 0.5,
		Length:      4,
		Variant:     pygmsh.PipeCircleExtrusion,
	})
	require.NoError(t, err)
	require.Equal(t, geobuild.KindVolume, vol.Kind())
	require.Equal(t, "ex1[1]", string(vol.AppendRef(nil)), "volume comes out of the extrusion result array")
	require.Equal(t, 1, countPrefix(g, "ex"))
	// Inner rim has no surface of its own; it is a hole in the outer disk.
	require.Equal(t, 1, countPrefix(g, "Plane Surface("))
	require.Contains(t, g.Statements(), "Plane Surface(ps1) = {ll2,ll1};")
	checkDefinitionOrder(t, g)
}

func TestPipeValidation(t *testing.T) {
	g := pygmsh.NewGeometry()
	before := len(g.Statements())

	_, err := g.AddPipe(pygmsh.PipeConfig{OuterRadius: 0.5, InnerRadius: 1, Length: 4})
	require.ErrorIs(t, err, pygmsh.ErrRadii)

	_, err = g.AddPipe(pygmsh.PipeConfig{OuterRadius: 1, InnerRadius: 0.5, Length: 0})
	require.ErrorIs(t, err, pygmsh.ErrDimension)

	_, err = g.AddPipe(pygmsh.PipeConfig{OuterRadius: 1, InnerRadius: 0.5, Length: 4, Variant: "helix"})
	require.ErrorIs(t, err, pygmsh.ErrUnknownVariant)

	require.Len(t, g.Statements(), before, "failed pipe calls must not emit")
}

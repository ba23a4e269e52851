package pygmsh

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ai3DVision/pygmsh/geobuild"
	"github.com/soypat/geometry/md3"
)

// revolveAngle is one third of a turn. The mesher cannot sweep half a turn or
// more in a single Extrude, so full revolutions are decomposed into three
// chained steps of this angle.
const revolveAngle = "2*Pi/3"

const bannerWidth = 76

// TorusVariant selects the statement sequence a torus is built from. Both
// variants produce the same solid; the mesher may behave differently on each.
type TorusVariant string

const (
	// TorusExtrudeLines revolves each arc of the tube's cross-section circle
	// individually and closes the collected side surfaces into a shell.
	TorusExtrudeLines TorusVariant = "extrude_lines"
	// TorusExtrudeCircle revolves the cross-section disk as a whole and
	// merges the three swept volumes into a compound volume.
	TorusExtrudeCircle TorusVariant = "extrude_circle"
)

// TorusConfig configures [Geometry.AddTorus].
type TorusConfig struct {
	// InnerRadius is the tube radius. Must be strictly below OuterRadius.
	InnerRadius float64
	// OuterRadius is the distance from the torus center to the tube center.
	OuterRadius float64
	// Lcar is the characteristic element size at the profile points.
	Lcar float64
	// Rotation and Center place the torus in space: every constructed
	// coordinate x becomes Rotation*x + Center. The torus is built in the
	// x-y plane around the z axis. Zero Rotation means no rotation.
	Rotation md3.Mat3
	Center   md3.Vec
	// Label tags the volume as a physical group when non-empty.
	Label string
	// Variant selects the construction. Empty means TorusExtrudeLines.
	Variant TorusVariant
}

// AddTorus emits a torus as a full revolution of its tube cross-section,
// decomposed into three 120 degree extrusion steps chained far-end to input.
// Returns the single volume bounding the torus.
func (g *Geometry) AddTorus(cfg TorusConfig) (*Volume, error) {
	if !validLcar(cfg.Lcar) {
		return nil, fmt.Errorf("%w: lcar=%g", ErrDimension, cfg.Lcar)
	}
	if !validSize(cfg.InnerRadius) || !validSize(cfg.OuterRadius) {
		return nil, fmt.Errorf("%w: torus radii irad=%g orad=%g", ErrDimension, cfg.InnerRadius, cfg.OuterRadius)
	}
	if cfg.InnerRadius >= cfg.OuterRadius {
		return nil, fmt.Errorf("%w: irad=%g orad=%g", ErrRadii, cfg.InnerRadius, cfg.OuterRadius)
	}
	switch cfg.Variant {
	case "", TorusExtrudeLines:
		return g.torusExtrudeLines(cfg)
	case TorusExtrudeCircle:
		return g.torusExtrudeCircle(cfg)
	}
	return nil, fmt.Errorf("%w: torus variant %q", ErrUnknownVariant, cfg.Variant)
}

// torusProfile emits the tube cross-section circle: centered at distance
// OuterRadius from the torus center and tipped into the plane containing the
// revolution axis.
func (g *Geometry) torusProfile(cfg TorusConfig) (*Circle, error) {
	R := orIdentity(cfg.Rotation)
	tubeCenter := md3.Add(cfg.Center, md3.MulMatVec(R, md3.Vec{Y: cfg.OuterRadius}))
	return g.AddCircle(CircleConfig{
		Center:   tubeCenter,
		Radius:   cfg.InnerRadius,
		Lcar:     cfg.Lcar,
		Rotation: md3.MulMat3(R, yzPlane()),
	})
}

func (g *Geometry) torusExtrudeLines(cfg TorusConfig) (*Volume, error) {
	g.AddComment(strings.Repeat("-", bannerWidth))
	g.AddComment("Torus")
	// Only the rim arcs are revolved; the disk surface goes unused.
	circ, err := g.torusProfile(cfg)
	if err != nil {
		return nil, err
	}
	R := orIdentity(cfg.Rotation)
	rotAxis := md3.MulMatVec(R, md3.Vec{Z: 1})
	previous := circ.LineLoop().Curves()
	var sides []geobuild.Entity
	for round := 1; round <= 3; round++ {
		g.AddComment("Round no. " + strconv.Itoa(round))
		for k := range previous {
			top, side, err := g.Extrude(previous[k], ExtrudeConfig{
				RotationAxis: rotAxis,
				PointOnAxis:  cfg.Center,
				Angle:        revolveAngle,
			})
			if err != nil {
				return nil, err
			}
			sides = append(sides, side)
			previous[k] = top
		}
	}
	sl, err := g.AddSurfaceLoop(sides...)
	if err != nil {
		return nil, err
	}
	vol := g.AddVolume(sl)
	if cfg.Label != "" {
		g.AddPhysicalVolume(vol, cfg.Label)
	}
	g.AddComment(strings.Repeat("-", bannerWidth) + "\n")
	return vol, nil
}

func (g *Geometry) torusExtrudeCircle(cfg TorusConfig) (*Volume, error) {
	g.AddComment(strings.Repeat("-", bannerWidth))
	g.AddComment("Torus")
	circ, err := g.torusProfile(cfg)
	if err != nil {
		return nil, err
	}
	R := orIdentity(cfg.Rotation)
	rotAxis := md3.MulMatVec(R, md3.Vec{Z: 1})
	var previous geobuild.Entity = circ.PlaneSurface()
	var swept []geobuild.Entity
	for step := 0; step < 3; step++ {
		top, vol, err := g.Extrude(previous, ExtrudeConfig{
			RotationAxis: rotAxis,
			PointOnAxis:  cfg.Center,
			Angle:        revolveAngle,
		})
		if err != nil {
			return nil, err
		}
		previous = top
		swept = append(swept, vol)
	}
	vol, err := g.AddCompoundVolume(swept...)
	if err != nil {
		return nil, err
	}
	if cfg.Label != "" {
		g.AddPhysicalVolume(vol, cfg.Label)
	}
	g.AddComment(strings.Repeat("-", bannerWidth) + "\n")
	return vol, nil
}

// PipeVariant selects the statement sequence a pipe is built from.
type PipeVariant string

const (
	// PipeRectangleRotation revolves the pipe's rectangular half-section
	// about the pipe axis in three steps.
	PipeRectangleRotation PipeVariant = "rectangle_rotation"
	// PipeCircleExtrusion translates the annular end face along the pipe
	// axis in a single extrusion.
	PipeCircleExtrusion PipeVariant = "circle_extrusion"
)

// PipeConfig configures [Geometry.AddPipe].
type PipeConfig struct {
	// OuterRadius and InnerRadius bound the pipe wall. InnerRadius must be
	// strictly below OuterRadius.
	OuterRadius, InnerRadius float64
	// Length of the pipe along its axis.
	Length float64
	// Lcar is the characteristic element size at the profile points. Zero
	// means 0.1.
	Lcar float64
	// Rotation and Center place the pipe in space, as in [TorusConfig].
	// The pipe is built around the z axis for the rectangle_rotation
	// variant and around the x axis for circle_extrusion.
	Rotation md3.Mat3
	Center   md3.Vec
	// Label tags the volume as a physical group when non-empty.
	Label string
	// Variant selects the construction. Empty means PipeRectangleRotation.
	Variant PipeVariant
}

// AddPipe emits a hollow cylinder and returns its volume-kind handle: a
// [*Volume] for the rectangle_rotation variant, an extrusion result reference
// for circle_extrusion.
func (g *Geometry) AddPipe(cfg PipeConfig) (geobuild.Entity, error) {
	if cfg.Lcar == 0 {
		cfg.Lcar = 0.1
	}
	if !validLcar(cfg.Lcar) {
		return nil, fmt.Errorf("%w: lcar=%g", ErrDimension, cfg.Lcar)
	}
	if !validSize(cfg.InnerRadius) || !validSize(cfg.OuterRadius) || !validSize(cfg.Length) {
		return nil, fmt.Errorf("%w: pipe irad=%g orad=%g length=%g", ErrDimension,
			cfg.InnerRadius, cfg.OuterRadius, cfg.Length)
	}
	if cfg.InnerRadius >= cfg.OuterRadius {
		return nil, fmt.Errorf("%w: irad=%g orad=%g", ErrRadii, cfg.InnerRadius, cfg.OuterRadius)
	}
	switch cfg.Variant {
	case "", PipeRectangleRotation:
		return g.pipeRectangleRotation(cfg)
	case PipeCircleExtrusion:
		return g.pipeCircleExtrusion(cfg)
	}
	return nil, fmt.Errorf("%w: pipe variant %q", ErrUnknownVariant, cfg.Variant)
}

func (g *Geometry) pipeRectangleRotation(cfg PipeConfig) (geobuild.Entity, error) {
	g.AddComment("Define rectangle.")
	R := orIdentity(cfg.Rotation)
	// The wall cross-section: a rectangle in the y-z half-plane spanning
	// outer to inner radius over the pipe length.
	X := [4]md3.Vec{
		{Y: cfg.OuterRadius, Z: -0.5 * cfg.Length},
		{Y: cfg.OuterRadius, Z: 0.5 * cfg.Length},
		{Y: cfg.InnerRadius, Z: 0.5 * cfg.Length},
		{Y: cfg.InnerRadius, Z: -0.5 * cfg.Length},
	}
	var p [4]*Point
	for i, x := range X {
		p[i] = g.AddPoint(md3.Add(md3.MulMatVec(R, x), cfg.Center), cfg.Lcar)
	}
	previous := [4]geobuild.Entity{
		g.AddLine(p[0], p[1]),
		g.AddLine(p[1], p[2]),
		g.AddLine(p[2], p[3]),
		g.AddLine(p[3], p[0]),
	}
	rotAxis := md3.MulMatVec(R, md3.Vec{Z: 1})
	var sides []geobuild.Entity
	g.AddComment("Extrude in 3 steps.")
	for step := 1; step <= 3; step++ {
		g.AddComment("Step " + strconv.Itoa(step))
		for k := range previous {
			top, side, err := g.Extrude(previous[k], ExtrudeConfig{
				RotationAxis: rotAxis,
				PointOnAxis:  cfg.Center,
				Angle:        revolveAngle,
			})
			if err != nil {
				return nil, err
			}
			sides = append(sides, side)
			previous[k] = top
		}
	}
	sl, err := g.AddSurfaceLoop(sides...)
	if err != nil {
		return nil, err
	}
	vol := g.AddVolume(sl)
	if cfg.Label != "" {
		g.AddPhysicalVolume(vol, cfg.Label)
	}
	return vol, nil
}

func (g *Geometry) pipeCircleExtrusion(cfg PipeConfig) (geobuild.Entity, error) {
	R := orIdentity(cfg.Rotation)
	profile := md3.MulMat3(R, yzPlane())
	// The annular end face: outer disk with the inner rim as a hole.
	inner, err := g.AddCircle(CircleConfig{
		Center:      cfg.Center,
		Radius:      cfg.InnerRadius,
		Lcar:        cfg.Lcar,
		Rotation:    profile,
		OmitSurface: true,
	})
	if err != nil {
		return nil, err
	}
	outer, err := g.AddCircle(CircleConfig{
		Center:   cfg.Center,
		Radius:   cfg.OuterRadius,
		Lcar:     cfg.Lcar,
		Rotation: profile,
		Holes:    []*LineLoop{inner.LineLoop()},
	})
	if err != nil {
		return nil, err
	}
	_, vol, err := g.Extrude(outer.PlaneSurface(), ExtrudeConfig{
		Translation: md3.MulMatVec(R, md3.Vec{X: cfg.Length}),
	})
	if err != nil {
		return nil, err
	}
	if cfg.Label != "" {
		g.AddPhysicalVolume(vol, cfg.Label)
	}
	return vol, nil
}

package pygmsh

import "errors"

var (
	// ErrNoEntities indicates an operation received an empty entity list.
	ErrNoEntities = errors.New("pygmsh: no entities given")
	// ErrMixedDimensions indicates boolean operands of differing dimension.
	ErrMixedDimensions = errors.New("pygmsh: operands of mixed dimension")
	// ErrBooleanOperands indicates a boolean operation without both an object
	// and a tool entity.
	ErrBooleanOperands = errors.New("pygmsh: boolean operation requires object and tool entities")
	// ErrKindMismatch indicates an entity of a dimension the operation cannot
	// act on.
	ErrKindMismatch = errors.New("pygmsh: entity dimension not usable by operation")
	// ErrExtrudeDirection indicates an extrusion with neither a translation
	// nor a rotation.
	ErrExtrudeDirection = errors.New("pygmsh: specify at least a translation or rotation")
	// ErrEmptyAngle indicates a revolution without an angle expression.
	ErrEmptyAngle = errors.New("pygmsh: empty revolution angle")
	// ErrUnknownVariant indicates an unrecognized construction variant.
	ErrUnknownVariant = errors.New("pygmsh: unknown construction variant")
	// ErrDimension indicates a zero, negative or non-finite size parameter.
	ErrDimension = errors.New("pygmsh: zero, negative or non-finite dimension")
	// ErrRadii indicates an inner radius at or above the outer radius.
	ErrRadii = errors.New("pygmsh: inner radius must be smaller than outer radius")
	// ErrHolesWithoutSurface indicates holes passed to a builder told to skip
	// its surface; holes only exist as openings in a surface.
	ErrHolesWithoutSurface = errors.New("pygmsh: holes require a surface")
	// ErrSectionCount indicates an unsupported circle section count.
	ErrSectionCount = errors.New("pygmsh: circle supports 3 or 4 sections")
)

func nilArg(op string) {
	panic("pygmsh: nil entity passed to " + op)
}

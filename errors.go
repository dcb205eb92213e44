package rivegg

import (
	"errors"
	"fmt"
)

// Sentinel errors. Callers match them with errors.Is.
var (
	// ErrDegenerateTriangle is returned by the affine solver when the
	// source triangle has zero signed area or the solution is not finite.
	ErrDegenerateTriangle = errors.New("rivegg: degenerate triangle")

	// ErrIndexOutOfRange is wrapped by MeshIndexError.
	ErrIndexOutOfRange = errors.New("rivegg: mesh index out of range")

	// ErrInvalidHandle is returned for null, stale, released or
	// wrong-kind handles.
	ErrInvalidHandle = errors.New("rivegg: invalid handle")

	// ErrInvalidGradient is returned for malformed gradient stops.
	ErrInvalidGradient = errors.New("rivegg: invalid gradient")

	// ErrEmptyData is returned when decoding zero bytes.
	ErrEmptyData = errors.New("rivegg: empty image data")

	// ErrDecode is returned for unsupported or corrupt image data.
	ErrDecode = errors.New("rivegg: image decode failed")

	// ErrUnknownEnum is wrapped by EnumError.
	ErrUnknownEnum = errors.New("rivegg: unknown enumeration value")

	// ErrMalformedPath is returned when a verb list and a point list
	// disagree on the number of coordinates.
	ErrMalformedPath = errors.New("rivegg: malformed path commands")
)

// MeshIndexError reports a mesh index that does not address a vertex
// or UV. Nothing is drawn for a call that fails with it.
type MeshIndexError struct {
	Position int    // offset into the index list
	Index    uint16 // offending index
	Vertices int    // number of vertex positions
	UVs      int    // number of UV coordinates
}

func (e *MeshIndexError) Error() string {
	return fmt.Sprintf("rivegg: mesh index %d at position %d out of range (vertices=%d, uvs=%d)",
		e.Index, e.Position, e.Vertices, e.UVs)
}

func (e *MeshIndexError) Unwrap() error { return ErrIndexOutOfRange }

// EnumError reports a boundary enumeration value with no mapping.
type EnumError struct {
	Kind  string // e.g. "BlendMode"
	Value uint32
}

func (e *EnumError) Error() string {
	return fmt.Sprintf("rivegg: unknown %s value %d", e.Kind, e.Value)
}

func (e *EnumError) Unwrap() error { return ErrUnknownEnum }

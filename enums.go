package rivegg

import "github.com/gogpu/rivegg/scene"

// Boundary enumerations. The numeric values are fixed by the calling side
// and must not be renumbered; each table below must be updated together
// with the matching scene or rivegg type.

// Render paint styles.
const (
	EnumStyleStroke uint32 = 0
	EnumStyleFill   uint32 = 1
)

// Fill rules.
const (
	EnumFillNonZero uint32 = 0
	EnumFillEvenOdd uint32 = 1
)

// Stroke joins.
const (
	EnumJoinMiter uint32 = 0
	EnumJoinRound uint32 = 1
	EnumJoinBevel uint32 = 2
)

// Stroke caps.
const (
	EnumCapButt   uint32 = 0
	EnumCapRound  uint32 = 1
	EnumCapSquare uint32 = 2
)

// Blend modes. Values 0-2 and 4-13 are unassigned.
const (
	EnumBlendSrcOver    uint32 = 3
	EnumBlendScreen     uint32 = 14
	EnumBlendOverlay    uint32 = 15
	EnumBlendDarken     uint32 = 16
	EnumBlendLighten    uint32 = 17
	EnumBlendColorDodge uint32 = 18
	EnumBlendColorBurn  uint32 = 19
	EnumBlendHardLight  uint32 = 20
	EnumBlendSoftLight  uint32 = 21
	EnumBlendDifference uint32 = 22
	EnumBlendExclusion  uint32 = 23
	EnumBlendMultiply   uint32 = 24
	EnumBlendHue        uint32 = 25
	EnumBlendSaturation uint32 = 26
	EnumBlendColor      uint32 = 27
	EnumBlendLuminosity uint32 = 28
)

var blendModes = map[uint32]scene.BlendMode{
	EnumBlendSrcOver:    scene.BlendNormal,
	EnumBlendScreen:     scene.BlendScreen,
	EnumBlendOverlay:    scene.BlendOverlay,
	EnumBlendDarken:     scene.BlendDarken,
	EnumBlendLighten:    scene.BlendLighten,
	EnumBlendColorDodge: scene.BlendColorDodge,
	EnumBlendColorBurn:  scene.BlendColorBurn,
	EnumBlendHardLight:  scene.BlendHardLight,
	EnumBlendSoftLight:  scene.BlendSoftLight,
	EnumBlendDifference: scene.BlendDifference,
	EnumBlendExclusion:  scene.BlendExclusion,
	EnumBlendMultiply:   scene.BlendMultiply,
	EnumBlendHue:        scene.BlendHue,
	EnumBlendSaturation: scene.BlendSaturation,
	EnumBlendColor:      scene.BlendColor,
	EnumBlendLuminosity: scene.BlendLuminosity,
}

// PaintStyleFromEnum converts a boundary paint style.
func PaintStyleFromEnum(v uint32) (PaintStyle, error) {
	switch v {
	case EnumStyleStroke:
		return StyleStroke, nil
	case EnumStyleFill:
		return StyleFill, nil
	default:
		return 0, &EnumError{Kind: "RenderPaintStyle", Value: v}
	}
}

// FillRuleFromEnum converts a boundary fill rule.
func FillRuleFromEnum(v uint32) (FillRule, error) {
	switch v {
	case EnumFillNonZero:
		return FillRuleNonZero, nil
	case EnumFillEvenOdd:
		return FillRuleEvenOdd, nil
	default:
		return 0, &EnumError{Kind: "FillRule", Value: v}
	}
}

// JoinFromEnum converts a boundary stroke join.
func JoinFromEnum(v uint32) (scene.LineJoin, error) {
	switch v {
	case EnumJoinMiter:
		return scene.LineJoinMiter, nil
	case EnumJoinRound:
		return scene.LineJoinRound, nil
	case EnumJoinBevel:
		return scene.LineJoinBevel, nil
	default:
		return 0, &EnumError{Kind: "StrokeJoin", Value: v}
	}
}

// CapFromEnum converts a boundary stroke cap.
func CapFromEnum(v uint32) (scene.LineCap, error) {
	switch v {
	case EnumCapButt:
		return scene.LineCapButt, nil
	case EnumCapRound:
		return scene.LineCapRound, nil
	case EnumCapSquare:
		return scene.LineCapSquare, nil
	default:
		return 0, &EnumError{Kind: "StrokeCap", Value: v}
	}
}

// BlendModeFromEnum converts a boundary blend mode. BlendClip has no
// boundary value.
func BlendModeFromEnum(v uint32) (scene.BlendMode, error) {
	m, ok := blendModes[v]
	if !ok {
		return 0, &EnumError{Kind: "BlendMode", Value: v}
	}
	return m, nil
}

// BlendModeToEnum is the inverse of BlendModeFromEnum.
func BlendModeToEnum(m scene.BlendMode) (uint32, error) {
	for v, mode := range blendModes {
		if mode == m {
			return v, nil
		}
	}
	return 0, &EnumError{Kind: "BlendMode", Value: uint32(m)}
}

// Path verbs as used by CreatePathFromCommands. Quadratic segments (2)
// are not part of the path model.
const (
	EnumVerbMove  uint8 = 0
	EnumVerbLine  uint8 = 1
	EnumVerbCubic uint8 = 4
	EnumVerbClose uint8 = 5
)

// PathVerbFromEnum converts a boundary path verb.
func PathVerbFromEnum(v uint8) (scene.PathVerb, error) {
	switch v {
	case EnumVerbMove:
		return scene.VerbMoveTo, nil
	case EnumVerbLine:
		return scene.VerbLineTo, nil
	case EnumVerbCubic:
		return scene.VerbCubicTo, nil
	case EnumVerbClose:
		return scene.VerbClose, nil
	default:
		return 0, &EnumError{Kind: "PathVerb", Value: uint32(v)}
	}
}

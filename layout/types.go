package layout

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownEnum is returned when parsing an enum name that does not exist.
var ErrUnknownEnum = errors.New("layout: unknown enum value")

// Axis is the stacking direction of a panel.
type Axis int

const (
	// Vertical stacks children top to bottom.
	Vertical Axis = iota
	// Horizontal stacks children left to right.
	Horizontal
)

// CrossAlignment controls how flow children are placed on the cross axis.
type CrossAlignment int

const (
	// AlignStretch fills the full cross-axis extent.
	AlignStretch CrossAlignment = iota
	AlignStart
	AlignCenter
	AlignEnd
)

// SizingPolicy selects how the base size of a flow child is derived before
// leftover space is distributed by weight.
type SizingPolicy int

const (
	// PolicyFixedFirst sizes non-expanding children first and splits the
	// remaining space among expanders, which start from zero.
	PolicyFixedFirst SizingPolicy = iota

	// PolicyCurrentSize uses every child's current primary-axis size as its
	// base and distributes only what is left over.
	PolicyCurrentSize

	// PolicyPreferredSize uses the current size for fixed children and the
	// preferred size (at least the minimum) for expanders.
	PolicyPreferredSize
)

// FloatAlignment picks the connector point on a float's target.
type FloatAlignment int

const (
	FloatTopLeft FloatAlignment = iota
	FloatToLeftOf
	FloatToRightOf
	FloatToTopOf
	FloatToBottomOf
)

// ZOrderPolicy controls the paint order of a float relative to its target.
type ZOrderPolicy int

const (
	ZInFrontOfTarget ZOrderPolicy = iota
	ZBehindTarget
	// ZManual leaves stacking order entirely to the caller.
	ZManual
)

// LayoutReason records what triggered a layout pass.
type LayoutReason int

const (
	ReasonExplicit LayoutReason = iota
	ReasonResize
	ReasonChildAdded
	ReasonChildRemoved
	ReasonPaddingChanged
	ReasonPropertyChanged
)

var (
	axisNames      = []string{"vertical", "horizontal"}
	alignNames     = []string{"stretch", "start", "center", "end"}
	policyNames    = []string{"fixed-first", "current-size", "preferred-size"}
	floatAlignName = []string{"top-left", "left-of", "right-of", "top-of", "bottom-of"}
	zOrderNames    = []string{"in-front", "behind", "manual"}
	reasonNames    = []string{"explicit", "resize", "child-added", "child-removed", "padding-changed", "property-changed"}
)

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return fmt.Sprintf("unknown(%d)", v)
	}
	return names[v]
}

func parseEnum(names []string, kind, s string) (int, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%s %q: %w", kind, s, ErrUnknownEnum)
}

func (a Axis) String() string { return enumName(axisNames, int(a)) }
func (a CrossAlignment) String() string { return enumName(alignNames, int(a)) }
func (p SizingPolicy) String() string { return enumName(policyNames, int(p)) }
func (f FloatAlignment) String() string { return enumName(floatAlignName, int(f)) }
func (z ZOrderPolicy) String() string { return enumName(zOrderNames, int(z)) }
func (r LayoutReason) String() string { return enumName(reasonNames, int(r)) }

// ParseAxis parses "vertical" or "horizontal".
func ParseAxis(s string) (Axis, error) {
	v, err := parseEnum(axisNames, "axis", s)
	return Axis(v), err
}

// ParseCrossAlignment parses an alignment name.
func ParseCrossAlignment(s string) (CrossAlignment, error) {
	v, err := parseEnum(alignNames, "alignment", s)
	return CrossAlignment(v), err
}

// ParseSizingPolicy parses a sizing policy name.
func ParseSizingPolicy(s string) (SizingPolicy, error) {
	v, err := parseEnum(policyNames, "sizing policy", s)
	return SizingPolicy(v), err
}

// ParseFloatAlignment parses a float alignment name.
func ParseFloatAlignment(s string) (FloatAlignment, error) {
	v, err := parseEnum(floatAlignName, "float alignment", s)
	return FloatAlignment(v), err
}

// ParseZOrderPolicy parses a z-order policy name.
func ParseZOrderPolicy(s string) (ZOrderPolicy, error) {
	v, err := parseEnum(zOrderNames, "z-order policy", s)
	return ZOrderPolicy(v), err
}

// Text marshalling lets the enums appear as names in TOML profiles.

func (a Axis) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (a *Axis) UnmarshalText(b []byte) (err error) {
	*a, err = ParseAxis(string(b))
	return err
}

func (a CrossAlignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }
func (a *CrossAlignment) UnmarshalText(b []byte) (err error) {
	*a, err = ParseCrossAlignment(string(b))
	return err
}

func (p SizingPolicy) MarshalText() ([]byte, error) { return []byte(p.String()), nil }
func (p *SizingPolicy) UnmarshalText(b []byte) (err error) {
	*p, err = ParseSizingPolicy(string(b))
	return err
}

func (f FloatAlignment) MarshalText() ([]byte, error) { return []byte(f.String()), nil }
func (f *FloatAlignment) UnmarshalText(b []byte) (err error) {
	*f, err = ParseFloatAlignment(string(b))
	return err
}

func (z ZOrderPolicy) MarshalText() ([]byte, error) { return []byte(z.String()), nil }
func (z *ZOrderPolicy) UnmarshalText(b []byte) (err error) {
	*z, err = ParseZOrderPolicy(string(b))
	return err
}

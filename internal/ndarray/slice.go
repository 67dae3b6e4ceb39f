package ndarray

import (
	"fmt"
	"strconv"
)

// Selector picks part of one axis. It is implemented by Slice, which keeps
// the axis, and Index, which consumes it.
type Selector interface {
	selector()
}

// Index selects a single position of an axis and drops that axis from the
// result. Negative values count from the end.
type Index int

func (Index) selector() {}

// Slice selects positions start, start+step, ... up to but excluding stop.
//
// Start and stop are optional and may be negative (counted from the end of
// the axis). The zero value selects the whole axis unchanged.
type Slice struct {
	start, stop       int
	hasStart, hasStop bool
	step              int
	hasStep           bool
}

func (Slice) selector() {}

// Whole selects a whole axis unchanged.
var Whole = Slice{}

// Range returns the slice [start, stop).
func Range(start, stop int) Slice {
	return Slice{start: start, stop: stop, hasStart: true, hasStop: true}
}

// RangeStep returns the slice [start, stop) advancing by step.
func RangeStep(start, stop, step int) Slice {
	return Range(start, stop).WithStep(step)
}

// From returns the slice starting at start and running to the end of the axis.
func From(start int) Slice {
	return Slice{start: start, hasStart: true}
}

// To returns the slice running from the beginning of the axis to stop.
func To(stop int) Slice {
	return Slice{stop: stop, hasStop: true}
}

// WithStep returns a copy of s advancing by step.
func (s Slice) WithStep(step int) Slice {
	s.step = step
	s.hasStep = true
	return s
}

// Step returns the step of s (1 when unset).
func (s Slice) Step() int {
	if !s.hasStep {
		return 1
	}
	return s.step
}

// Normalize resolves s against an axis of length size. It returns the first
// position, the number of selected positions and the step.
//
// Missing bounds default to the whole axis in the direction of step.
// Out-of-range bounds are clamped the way Python clamps them.
func (s Slice) Normalize(size int) (start, length, step int, err error) {
	step = s.Step()
	if step == 0 {
		return 0, 0, 0, fmt.Errorf("slice %v: %w", s, ErrInvalidStep)
	}

	if step > 0 {
		start = 0
		if s.hasStart {
			start = clampBound(s.start, size, 0, size)
		}
		stop := size
		if s.hasStop {
			stop = clampBound(s.stop, size, 0, size)
		}
		if stop > start {
			length = (stop-start-1)/step + 1
		}
		return start, length, step, nil
	}

	start = size - 1
	if s.hasStart {
		start = clampBound(s.start, size, -1, size-1)
	}
	stop := -1
	if s.hasStop {
		stop = clampBound(s.stop, size, -1, size-1)
	}
	if start > stop {
		length = (start-stop-1)/(-step) + 1
	}
	return start, length, step, nil
}

// clampBound adjusts a negative bound by size and clamps it into [lo, hi].
func clampBound(v, size, lo, hi int) int {
	if v < 0 {
		v += size
	}
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// String renders s in start:stop:step form.
func (s Slice) String() string {
	var out string
	if s.hasStart {
		out = strconv.Itoa(s.start)
	}
	out += ":"
	if s.hasStop {
		out += strconv.Itoa(s.stop)
	}
	if s.hasStep {
		out += ":" + strconv.Itoa(s.step)
	}
	return out
}

// Select applies one selector per leading axis, left to right. Axes without
// a selector are kept whole. Axes selected by an Index are dropped from the
// result once every axis has been processed.
func (l Layout) Select(selectors ...Selector) (Layout, error) {
	if len(selectors) > l.Rank() {
		return Layout{}, fmt.Errorf("too many selectors for array of rank %d: got %d: %w",
			l.Rank(), len(selectors), ErrOutOfRange)
	}
	if l.empty {
		return Layout{}, fmt.Errorf("empty array cannot be selected from: %w", ErrOutOfRange)
	}

	out := l.clone()
	dropped := make([]bool, l.Rank())
	for axis, sel := range selectors {
		switch sel := sel.(type) {
		case Index:
			i, err := normalizeIndex(axis, int(sel), l.shape[axis])
			if err != nil {
				return Layout{}, err
			}
			out = out.SliceAxis(axis, i, 1, 1)
			dropped[axis] = true
		case Slice:
			start, length, step, err := sel.Normalize(l.shape[axis])
			if err != nil {
				return Layout{}, fmt.Errorf("axis %d: %w", axis, err)
			}
			out = out.SliceAxis(axis, start, length, step)
		case nil:
			return Layout{}, fmt.Errorf("axis %d: nil selector: %w", axis, ErrOutOfRange)
		default:
			panic(fmt.Sprintf("unknown selector type %T", sel))
		}
	}

	result := Layout{shape: Shape{}, strides: []int{}, offset: out.offset}
	for k := range out.shape {
		if dropped[k] {
			continue
		}
		result.shape = append(result.shape, out.shape[k])
		result.strides = append(result.strides, out.strides[k])
	}
	return result, nil
}

package main

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"github.com/Jsemko/numcpp/ndarray"
)

// selectorFlags collects repeatable -sel values, one selector per axis.
type selectorFlags []ndarray.Selector

func (s *selectorFlags) String() string {
	parts := make([]string, len(*s))
	for i, sel := range *s {
		parts[i] = fmt.Sprint(sel)
	}
	return strings.Join(parts, ",")
}

func (s *selectorFlags) Set(value string) error {
	sel, err := parseSelector(value)
	if err != nil {
		return err
	}
	*s = append(*s, sel)
	return nil
}

// shapeFlag parses a comma separated shape such as "3,4".
type shapeFlag ndarray.Shape

func (s *shapeFlag) String() string {
	return fmt.Sprint(ndarray.Shape(*s))
}

func (s *shapeFlag) Set(value string) error {
	var shape ndarray.Shape
	for _, part := range strings.Split(value, ",") {
		n, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return fmt.Errorf("invalid shape %q: %w", value, err)
		}
		shape = append(shape, n)
	}
	*s = shapeFlag(shape)
	return nil
}

func runArange(args []string, out io.Writer, logger log.Logger) error {
	var (
		start, stop, step int
		shape             shapeFlag
		selectors         selectorFlags
		nonzero           bool
	)

	fs := flag.NewFlagSet("arange", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.IntVar(&start, "start", 0, "First value of the range")
	fs.IntVar(&stop, "stop", 12, "Exclusive end of the range")
	fs.IntVar(&step, "step", 1, "Step between values (non-zero)")
	fs.Var(&shape, "shape", "Reshape the range, e.g. 3,4")
	fs.Var(&selectors, "sel", "Selector for the next axis: an index (2, -1), a slice (1:-1, ::2, 6:3:-2) or : (repeatable)")
	fs.BoolVar(&nonzero, "nonzero", false, "Report any/all over the elements that differ from zero")
	if err := fs.Parse(args); err != nil {
		return err
	}

	a, err := ndarray.ArangeStep[int64](start, stop, step)
	if err != nil {
		return err
	}
	level.Debug(logger).Log("msg", "created range", "start", start, "stop", stop, "step", step, "size", a.Size())

	if len(shape) > 0 {
		if a, err = a.Reshape(shape...); err != nil {
			return err
		}
	}
	if len(selectors) > 0 {
		if a, err = a.Select(selectors...); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "%v %s\n", a, a.Layout())
	fmt.Fprintln(out, render(a))

	if nonzero {
		anyNZ, allNZ, err := nonzeroReport(a)
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "any=%t all=%t\n", anyNZ, allNZ)
	}
	return nil
}

// nonzeroReport compares a against a zero array of the same shape and
// reduces the resulting mask.
func nonzeroReport(a *ndarray.Array[int64]) (anyNZ, allNZ bool, err error) {
	zeros, err := a.Clone()
	if err != nil {
		return false, false, err
	}
	for idx := range zeros.All() {
		if err := zeros.Set(0, idx...); err != nil {
			return false, false, err
		}
	}
	mask, err := a.NotEqual(zeros)
	if err != nil {
		return false, false, err
	}
	if anyNZ, err = ndarray.Any(mask); err != nil {
		return false, false, err
	}
	if allNZ, err = ndarray.All(mask); err != nil {
		return false, false, err
	}
	return anyNZ, allNZ, nil
}

// parseSelector reads an integer index, ":" or a start:stop[:step] slice.
func parseSelector(value string) (ndarray.Selector, error) {
	if !strings.Contains(value, ":") {
		i, err := strconv.Atoi(value)
		if err != nil {
			return nil, fmt.Errorf("invalid index %q: %w", value, err)
		}
		return ndarray.Index(i), nil
	}

	parts := strings.Split(value, ":")
	if len(parts) > 3 {
		return nil, fmt.Errorf("invalid slice %q", value)
	}

	bounds := make([]*int, 3)
	for i, p := range parts {
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("invalid slice %q: %w", value, err)
		}
		bounds[i] = &n
	}

	s := ndarray.Whole
	switch {
	case bounds[0] != nil && bounds[1] != nil:
		s = ndarray.Range(*bounds[0], *bounds[1])
	case bounds[0] != nil:
		s = ndarray.From(*bounds[0])
	case bounds[1] != nil:
		s = ndarray.To(*bounds[1])
	}
	if bounds[2] != nil {
		s = s.WithStep(*bounds[2])
	}
	return s, nil
}

// render prints an array as nested bracketed rows in logical order.
func render[T ndarray.DType](a *ndarray.Array[T]) string {
	if a.Size() == 0 {
		return "[]"
	}
	shape := a.Shape()
	if len(shape) == 0 {
		v, _ := a.Item()
		return fmt.Sprint(v)
	}

	var b strings.Builder
	first := true
	for idx, v := range a.All() {
		// open brackets for every axis whose counter restarted
		opened := len(shape)
		if !first {
			closed := 0
			for k := len(shape) - 1; k > 0 && idx[k] == 0; k-- {
				closed++
			}
			b.WriteString(strings.Repeat("]", closed))
			if closed > 0 {
				b.WriteString("\n")
				b.WriteString(strings.Repeat(" ", len(shape)-closed))
			} else {
				b.WriteString(" ")
			}
			opened = closed
		}
		b.WriteString(strings.Repeat("[", opened))
		fmt.Fprint(&b, v)
		first = false
	}
	b.WriteString(strings.Repeat("]", len(shape)))
	return b.String()
}

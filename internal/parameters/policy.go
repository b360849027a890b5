package parameters

import (
	"errors"
	"fmt"
)

var errNoValues = errors.New("no values to combine")

// Combine aggregates the capacities of the elements of a subassembly.
func (h SubHierarchy) Combine(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, errNoValues
	}
	switch h {
	case SubHierarchyLowest:
		return lowest(values), nil
	case SubHierarchyAverage:
		return sum(values) / float64(len(values)), nil
	case SubHierarchyTotal:
		return sum(values), nil
	}
	return 0, fmt.Errorf("sub_hierarchy %q: %w", h, ErrEnumMembership)
}

// Combine picks the stiffness of a subassembly from its elements.
func (s SubStiffness) Combine(values ...float64) (float64, error) {
	if len(values) == 0 {
		return 0, errNoValues
	}
	switch s {
	case SubStiffnessLowest:
		return lowest(values), nil
	case SubStiffnessAverage:
		return sum(values) / float64(len(values)), nil
	}
	return 0, fmt.Errorf("sub_stiffness %q: %w", s, ErrEnumMembership)
}

func lowest(values []float64) float64 {
	result := values[0]
	for _, v := range values[1:] {
		result = min(result, v)
	}
	return result
}

func sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// Package symbols provides the label set of branch destinations.
package symbols

import (
	"fmt"
	"slices"

	"github.com/retroenv/retrogolib/set"
	"golang.org/x/exp/maps"
)

// Labels tracks the image offsets that are destinations of branches.
type Labels struct {
	offsets set.Set[int]
}

// New creates a new empty label set.
func New() *Labels {
	return &Labels{
		offsets: set.New[int](),
	}
}

// Add marks an offset as branch destination, adding an offset twice has no effect.
func (l *Labels) Add(offset int) {
	l.offsets.Add(offset)
}

// Contains returns whether the offset is a branch destination.
func (l *Labels) Contains(offset int) bool {
	return l.offsets.Contains(offset)
}

// Len returns the number of distinct branch destinations.
func (l *Labels) Len() int {
	return len(l.offsets)
}

// Sorted returns all branch destinations in ascending order.
func (l *Labels) Sorted() []int {
	offsets := maps.Keys(l.offsets)
	slices.Sort(offsets)
	return offsets
}

// Name returns the label name of an offset.
func Name(offset int) string {
	return fmt.Sprintf("label_%d", offset)
}

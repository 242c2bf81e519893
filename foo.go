package mylibexample

import (
	"fmt"
	"slices"
)

const (
	// Target is the value Bar looks for.
	Target = 5
	// Replacement is the value Bar writes over the first Target.
	Replacement = 42
)

// Foo holds an ordered sequence of integers.
//
// The zero value is an empty Foo. Use NewFoo to start from existing data.
//
// Copying a Foo by value shares its storage, so Bar on the copy is seen by
// the original. Use Clone to get an independent Foo.
//
// Example:
//
//	f := NewFoo([]int{1, 5, 3})
//	f.Bar()
//	f.Data() // [1 42 3]
type Foo struct {
	data []int
}

// NewFoo returns a Foo holding a copy of data.
// Any slice is accepted, including nil.
func NewFoo(data []int) *Foo {
	return &Foo{data: slices.Clone(data)}
}

// Clone returns a Foo holding its own copy of f's sequence.
func (f Foo) Clone() *Foo {
	return NewFoo(f.data)
}

// Bar replaces the first element equal to Target with Replacement.
// If no element matches, the sequence is left unchanged.
func (f *Foo) Bar() {
	if i := slices.Index(f.data, Target); i >= 0 {
		f.data[i] = Replacement
	}
}

// Data returns a copy of the held sequence.
func (f Foo) Data() []int {
	return slices.Clone(f.data)
}

// Len returns the number of held elements.
func (f Foo) Len() int {
	return len(f.data)
}

// String implements fmt.Stringer.
func (f Foo) String() string {
	return fmt.Sprint(f.data)
}

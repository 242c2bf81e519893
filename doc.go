/*
Package mylibexample provides Foo, a small value type holding an ordered
sequence of integers.

# Overview

Foo owns its data. NewFoo copies the caller's slice and Data hands back a
copy, so callers never alias the held sequence. Assigning a Foo by value
does share storage with the original; Clone makes an independent copy:

	g := f.Clone()
	g.Bar() // f is unchanged

The zero value is an empty Foo ready to use:

	var f mylibexample.Foo
	f.Bar() // no-op on an empty sequence

# Bar

Bar replaces the first element equal to Target (5) with Replacement (42).
Later occurrences are left alone, and a sequence without a 5 is unchanged:

	f := mylibexample.NewFoo([]int{5, 5, 5})
	f.Bar()
	fmt.Println(f) // [42 5 5]

Calling Bar again moves on to the next 5:

	f.Bar()
	fmt.Println(f) // [42 42 5]

# Concurrency

Foo has no internal locking. Share a *Foo between goroutines only behind
your own synchronization.

# Package Import

	import "github.com/Pure-Company/mylibexample"
*/
package mylibexample

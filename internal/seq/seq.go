// Package seq provides small, lazy iterator combinators over the standard
// iter.Seq type: Map, Filter, Iota and friends. Sequences are finite,
// restartable and forward-only; combinators allocate nothing until the
// consumer ranges over them.
package seq

import "iter"

// Map returns a lazy sequence applying f to every element of src.
func Map[A, B any](f func(A) B, src iter.Seq[A]) iter.Seq[B] {
	return func(yield func(B) bool) {
		for a := range src {
			if !yield(f(a)) {
				return
			}
		}
	}
}

// Filter returns a lazy sequence of the elements of src for which pred holds.
func Filter[A any](pred func(A) bool, src iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for a := range src {
			if pred(a) && !yield(a) {
				return
			}
		}
	}
}

// Iota yields the integers [0, n). n <= 0 yields nothing.
func Iota(n int) iter.Seq[int] { return IotaFrom(0, n) }

// IotaFrom yields the integers [first, last), counting upwards.
func IotaFrom(first, last int) iter.Seq[int] {
	return func(yield func(int) bool) {
		for v := first; v < last; v++ {
			if !yield(v) {
				return
			}
		}
	}
}

// Concat yields the elements of each sequence in order.
func Concat[A any](seqs ...iter.Seq[A]) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, s := range seqs {
			for a := range s {
				if !yield(a) {
					return
				}
			}
		}
	}
}

// Of yields the given elements.
func Of[A any](elems ...A) iter.Seq[A] {
	return func(yield func(A) bool) {
		for _, a := range elems {
			if !yield(a) {
				return
			}
		}
	}
}

// Collect drains a sequence into a slice.
func Collect[A any](src iter.Seq[A]) []A {
	var out []A
	for a := range src {
		out = append(out, a)
	}
	return out
}

// Count returns the number of elements in a sequence. Linear; it has to walk
// the sequence.
func Count[A any](src iter.Seq[A]) int {
	n := 0
	for range src {
		n++
	}
	return n
}

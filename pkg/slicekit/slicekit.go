// Package slicekit provides generic helpers that work with slices as ordered sequences.
//
// The slicekit package is considered as a `lite` package,
// and therefore its dependencies are strictly restricted.
//
// None of the functions mutate their input slices.
// Where a function returns a slice, it is always a newly allocated one.
package slicekit

import (
	"go.llib.dev/frameless/pkg/errorkit"

	"go.llib.dev/seqkit/pkg/compare"
)

// ErrNilComparator is raised when a function that requires an equality predicate receives nil.
const ErrNilComparator errorkit.Error = "slicekit: nil comparator"

// RemoveDuplicates returns a copy of the slice where only the first occurrence of each value is kept.
// The order of the kept values follows their first occurrence in s.
//
// Values are compared with compare.Equal, so multiple NaN values collapse into one.
func RemoveDuplicates[S ~[]T, T comparable](s S) S {
	if s == nil {
		return nil
	}
	var (
		out  = make(S, 0, len(s))
		seen = make(map[T]struct{}, len(s))
	)
	// values that are not equal to themselves can't be looked up from a map
	var nans []T
	for _, v := range s {
		if !compare.IsSelfEqual(v) {
			if IndexOf(nans, v, compare.Equal[T]) < 0 {
				nans = append(nans, v)
				out = append(out, v)
			}
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// RemoveDuplicatesFunc returns a copy of the slice without the duplicates, where duplicate means
// that the equality predicate reports true between an already kept value and the current one.
// The kept value is always the earliest one.
func RemoveDuplicatesFunc[S ~[]T, T any](s S, eq func(a, b T) bool) S {
	if eq == nil {
		panic(ErrNilComparator.F("RemoveDuplicatesFunc"))
	}
	if s == nil {
		return nil
	}
	var out = make(S, 0, len(s))
	for _, v := range s {
		if IndexOf(out, v, eq) < 0 {
			out = append(out, v)
		}
	}
	return out
}

// IndexOf returns the index of the first element in s for which eq(element, target) reports true.
// It returns -1 when no such element exists.
//
// IndexOf panics with ErrNilComparator if eq is nil.
func IndexOf[S ~[]T, T any](s S, target T, eq func(a, b T) bool) int {
	if eq == nil {
		panic(ErrNilComparator.F("IndexOf"))
	}
	for i, v := range s {
		if eq(v, target) {
			return i
		}
	}
	return -1
}

// HasSameElements reports whether a and b contain the same elements with the same multiplicity,
// regardless of their order. Elements are compared with compare.Equal.
func HasSameElements[S ~[]T, T comparable](a, b S) bool {
	if len(a) != len(b) {
		return false
	}
	var (
		counts     = make(map[T]int, len(a))
		aNaN, bNaN []T
	)
	for _, v := range a {
		if !compare.IsSelfEqual(v) {
			aNaN = append(aNaN, v)
			continue
		}
		counts[v]++
	}
	for _, v := range b {
		if !compare.IsSelfEqual(v) {
			bNaN = append(bNaN, v)
			continue
		}
		if counts[v] == 0 {
			return false
		}
		counts[v]--
	}
	// self-equal values are only ever equal to self-equal values,
	// so the NaN-like values have to pair up among themselves.
	return HasSameElementsFunc(aNaN, bNaN, compare.Equal[T])
}

// HasSameElementsFunc reports whether a and b are equal as multisets under the equality predicate.
//
// It is true when every element of a can be paired with a distinct element of b,
// so that eq(a[i], b[j]) holds for each pair and no element on either side is left without a pair.
// The predicate doesn't need to be transitive; a valid pairing is searched for,
// not assumed from the first match.
//
// HasSameElementsFunc panics with ErrNilComparator if eq is nil.
func HasSameElementsFunc[S ~[]T, T any](a, b S, eq func(x, y T) bool) bool {
	if eq == nil {
		panic(ErrNilComparator.F("HasSameElementsFunc"))
	}
	if len(a) != len(b) {
		return false
	}
	return newMatching(len(a), len(b), func(i, j int) bool {
		return eq(a[i], b[j])
	}).Perfect()
}

// Contains reports whether v is present in vs.
// Unlike slices.Contains, a NaN value is found in a slice that has NaN.
func Contains[T comparable](vs []T, v T) bool {
	return IndexOf(vs, v, compare.Equal[T]) >= 0
}

// Remove returns a copy of s without the first occurrence of v.
// The boolean result reports whether v was found.
func Remove[S ~[]T, T comparable](s S, v T) (S, bool) {
	i := IndexOf(s, v, compare.Equal[T])
	if i < 0 {
		return append(S(nil), s...), false
	}
	out := make(S, 0, len(s)-1)
	out = append(out, s[:i]...)
	out = append(out, s[i+1:]...)
	return out, true
}

// Count returns the number of elements in s that satisfy the predicate.
func Count[T any](s []T, pred func(T) bool) int {
	var n int
	for _, v := range s {
		if pred(v) {
			n++
		}
	}
	return n
}

// Package compare holds the equality and comparison primitives used by the kit packages.
//
// Two shapes of comparison exist in this package:
//
//   - equality predicates, func(a, b T) bool, that tell whether two values should be treated as the same.
//   - three-way comparison results, an int where -1 means less, 0 means equal and +1 means greater.
//
// FromCmp bridges the two.
package compare

import (
	"math"
	"reflect"
)

// Equal reports whether two values are equal by Go's == semantics,
// with the difference that NaN is treated as equal to NaN.
//
// This holds for float and complex values on their own,
// and for NaN values nested in arrays, structs and interface values.
// Pointers are compared by identity.
//
// Like ==, Equal panics when an interface value holds an uncomparable dynamic type.
func Equal[T comparable](a, b T) bool {
	if a == b {
		return true
	}
	// a value equal to itself has no NaN in it,
	// so the == result above is final for it.
	if a == a || b == b {
		return false
	}
	return nanEqual(reflect.ValueOf(&a).Elem(), reflect.ValueOf(&b).Elem())
}

// IsSelfEqual reports whether v == v holds.
// It is false only for values that contain NaN.
func IsSelfEqual[T comparable](v T) bool {
	return v == v
}

func nanEqual(x, y reflect.Value) bool {
	if x.Type() != y.Type() {
		return false
	}
	switch x.Kind() {
	case reflect.Float32, reflect.Float64:
		a, b := x.Float(), y.Float()
		return a == b || (math.IsNaN(a) && math.IsNaN(b))

	case reflect.Complex64, reflect.Complex128:
		a, b := x.Complex(), y.Complex()
		return floatEqual(real(a), real(b)) && floatEqual(imag(a), imag(b))

	case reflect.Array:
		for i, n := 0, x.Len(); i < n; i++ {
			if !nanEqual(x.Index(i), y.Index(i)) {
				return false
			}
		}
		return true

	case reflect.Struct:
		for i, n := 0, x.NumField(); i < n; i++ {
			if !nanEqual(x.Field(i), y.Field(i)) {
				return false
			}
		}
		return true

	case reflect.Interface:
		if x.IsNil() || y.IsNil() {
			return x.IsNil() == y.IsNil()
		}
		return nanEqual(x.Elem(), y.Elem())

	default:
		return x.Equal(y)
	}
}

func floatEqual(a, b float64) bool {
	return a == b || (math.IsNaN(a) && math.IsNaN(b))
}

// ByKey makes an equality predicate that compares the keys derived from the values.
//
//	byID := compare.ByKey(func(u User) string { return u.ID })
func ByKey[T any, K comparable](key func(T) K) func(a, b T) bool {
	return func(a, b T) bool {
		return Equal(key(a), key(b))
	}
}

// FromCmp turns a three-way comparison function, such as strings.Compare or cmp.Compare,
// into an equality predicate.
func FromCmp[T any](cmp func(a, b T) int) func(a, b T) bool {
	return func(a, b T) bool {
		return IsEqual(cmp(a, b))
	}
}

// Interface defines how comparison can be implemented on a type.
//
//	type MyNumber int
//
//	func (m MyNumber) Compare(other MyNumber) int {
//		if m < other {
//			return -1
//		}
//		if other < m {
//			return +1
//		}
//		return 0
//	}
type Interface[T any] interface {
	// Compare returns:
	//   -1 if receiver is less than the argument,
	//    0 if they're equal, and
	//   +1 if receiver is greater.
	Compare(T) int
}

// Method makes an equality predicate from a type that implements Interface.
func Method[T Interface[T]](a, b T) bool {
	return IsEqual(a.Compare(b))
}

// IsEqual reports whether two values are equal based on their comparison result.
func IsEqual(cmp int) bool {
	return cmp == 0
}

// IsLess reports whether the receiver is less than another value.
func IsLess(cmp int) bool {
	return cmp < 0
}

// IsLessOrEqual reports whether the receiver is less than or equal to another value.
func IsLessOrEqual(cmp int) bool {
	return cmp <= 0
}

// IsMore reports whether the receiver is greater than another value.
func IsMore(cmp int) bool {
	return 0 < cmp
}

// IsMoreOrEqual reports whether the receiver is more than or equal to another value.
func IsMoreOrEqual(cmp int) bool {
	return 0 <= cmp
}

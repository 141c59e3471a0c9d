// Package ctscaseload is the top-level API of the cts-caseload library.
package ctscaseload

// Addable lists the types the + operator accepts: integers, floats,
// complex numbers and strings, including types derived from them.
type Addable interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 |
		~complex64 | ~complex128 |
		~string
}

// ExampleFunction returns a + b. Operands of different types are
// rejected at compile time.
func ExampleFunction[T Addable](a, b T) T {
	return a + b
}

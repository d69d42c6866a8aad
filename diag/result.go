package diag

// Result is either a value or the error that prevented it. Chaining with
// Map and Then skips every later stage once a failure is held.
type Result[T any] struct {
	val T
	err error
}

// Ok wraps a successful value.
func Ok[T any](v T) Result[T] {
	return Result[T]{val: v}
}

// Fail wraps an error. A nil err is treated as success with the zero
// value.
func Fail[T any](err error) Result[T] {
	return Result[T]{err: err}
}

// From adapts a conventional (value, error) return.
func From[T any](v T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(v)
}

// IsOk reports whether r holds a value.
func (r Result[T]) IsOk() bool {
	return r.err == nil
}

// Get unpacks r.
func (r Result[T]) Get() (T, error) {
	return r.val, r.err
}

// Map applies an infallible f to a successful value.
func Map[T, U any](r Result[T], f func(T) U) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return Ok(f(r.val))
}

// Then applies a fallible f to a successful value.
func Then[T, U any](r Result[T], f func(T) (U, error)) Result[U] {
	if r.err != nil {
		return Fail[U](r.err)
	}
	return From(f(r.val))
}

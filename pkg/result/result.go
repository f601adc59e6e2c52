package result

import (
	"errors"
	"fmt"
)

// Result holds either a success value of type V or a failure error of
// type E. It is always exactly one of the two; the zero Result is a
// success holding V's zero value.
//
// Result is an immutable value object. When V and E are comparable the
// struct itself is comparable and == gives structural equality.
type Result[V any, E error] struct {
	value V
	err   E
	ok    bool
}

func Success[V any, E error](v V) Result[V, E] {
	return Result[V, E]{
		value: v,
		ok:    true,
	}
}

func Failure[V any, E error](err E) Result[V, E] {
	return Result[V, E]{
		err: err,
		ok:  false,
	}
}

// Of evaluates f and wraps its outcome. A nil (or typed-nil) error yields
// a success; an error matching E yields a failure holding it. An error
// that does not match E is never converted: Of panics with it, so
// unrelated failures surface at this call site instead of being swallowed.
func Of[V any, E error](f func() (V, error)) Result[V, E] {
	v, err := f()
	if IsNil(err) {
		return Success[V, E](v)
	}
	if e, ok := As[E](err); ok {
		return Failure[V, E](e)
	}
	panic(err)
}

// Capture evaluates f and recovers a panic whose value is an error
// matching E into a failure. Panics carrying anything else, including
// errors of an unrelated type, resume unchanged. This is the panic-channel
// twin of Of for code that signals failure by panicking.
func Capture[V any, E error](f func() V) (r Result[V, E]) {
	defer func() {
		p := recover()
		if p == nil {
			return
		}
		err, isErr := p.(error)
		if !isErr {
			panic(p)
		}
		e, ok := As[E](err)
		if !ok {
			panic(p)
		}
		r = Failure[V, E](e)
	}()
	return Success[V, E](f())
}

// As reports whether err matches the error type E, in the errors.As
// sense, and returns the matched value. It is the classifier Of, Capture
// and TryMap use to decide what to intercept.
func As[E error](err error) (E, bool) {
	var target E
	if errors.As(err, &target) {
		return target, true
	}
	var zero E
	return zero, false
}

func (r Result[V, E]) IsSuccess() bool {
	return r.ok
}

func (r Result[V, E]) IsFailure() bool {
	return !r.ok
}

// Get returns the success value. On a failure it panics with the stored
// error, re-raising it at the caller.
func (r Result[V, E]) Get() V {
	if !r.ok {
		panic(r.err)
	}
	return r.value
}

// GetOrNil returns a pointer to the success value, or nil for a failure.
func (r Result[V, E]) GetOrNil() *V {
	if !r.ok {
		return nil
	}
	v := r.value
	return &v
}

// GetFailureOrNil returns a pointer to the stored error, or nil for a
// success.
func (r Result[V, E]) GetFailureOrNil() *E {
	if r.ok {
		return nil
	}
	err := r.err
	return &err
}

// Destructure splits the result into its two sides. Exactly one of the
// returned pointers is non-nil.
func (r Result[V, E]) Destructure() (*V, *E) {
	return r.GetOrNil(), r.GetFailureOrNil()
}

// GetOrElse returns the success value, or fallback applied to the stored
// error. It never panics by itself.
func (r Result[V, E]) GetOrElse(fallback func(E) V) V {
	if r.ok {
		return r.value
	}
	return fallback(r.err)
}

// Equal reports structural equality: same variant and deeply equal
// payload. Use == directly when V and E are comparable.
func (r Result[V, E]) Equal(other Result[V, E]) bool {
	if r.ok != other.ok {
		return false
	}
	if r.ok {
		return deepEqual(r.value, other.value)
	}
	return deepEqual(r.err, other.err)
}

func (r Result[V, E]) String() string {
	if r.ok {
		return fmt.Sprintf("Success(%v)", r.value)
	}
	return fmt.Sprintf("Failure(%v)", r.err)
}

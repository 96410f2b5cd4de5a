package seq

// Seq is a lazily evaluated sequence of elements of type T. Forcing a
// non-nil Seq (calling it) yields the head element and the tail sequence.
// A nil Seq is exhausted.
type Seq[T any] func() (T, Seq[T])

// --- Generators ------------------------------------------------------------

// Naturals returns the infinite sequence 0, 1, 2, …
func Naturals() Seq[int] {
	return count(0, 1)
}

// Range returns the sequence from, from+step, … up to but excluding to.
// step must not be 0; a step pointing away from to yields the empty
// sequence.
func Range(from, to, step int) Seq[int] {
	if step == 0 || (step > 0 && from >= to) || (step < 0 && from <= to) {
		return nil
	}
	return func() (int, Seq[int]) {
		return from, Range(from+step, to, step)
	}
}

func count(n, step int) Seq[int] {
	return func() (int, Seq[int]) {
		return n, count(n+step, step)
	}
}

// FromSlice returns the sequence of the elements of s, in order.
// The slice is not copied; callers hand over ownership.
func FromSlice[T any](s []T) Seq[T] {
	if len(s) == 0 {
		return nil
	}
	return func() (T, Seq[T]) {
		return s[0], FromSlice(s[1:])
	}
}

// --- Transformers ----------------------------------------------------------

// Map returns the sequence of f applied to every element of s, lazily.
func Map[S, T any](f func(S) T, s Seq[S]) Seq[T] {
	if s == nil {
		return nil
	}
	return func() (T, Seq[T]) {
		head, tail := s()
		return f(head), Map(f, tail)
	}
}

// Filter returns the sequence of the elements of s for which pred holds,
// lazily. Filtering an infinite sequence without any matching element will
// not terminate.
func Filter[T any](pred func(T) bool, s Seq[T]) Seq[T] {
	for s != nil {
		head, tail := s()
		if pred(head) {
			return func() (T, Seq[T]) {
				return head, Filter(pred, tail)
			}
		}
		s = tail
	}
	return nil
}

// Take forces up to n elements of s and returns them as a slice.
func Take[T any](n int, s Seq[T]) []T {
	var out []T
	for i := 0; i < n && s != nil; i++ {
		var head T
		head, s = s()
		out = append(out, head)
	}
	return out
}

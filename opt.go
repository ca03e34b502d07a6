package xcoin

// Opt is an optional trailing parameter of a remote procedure. The zero
// value is absent: absent parameters are left out of the request so the
// daemon applies its own default.
type Opt[T any] struct {
	value T
	set   bool
}

// Some returns a present optional holding v.
func Some[T any](v T) Opt[T] {
	return Opt[T]{value: v, set: true}
}

// None returns an absent optional.
func None[T any]() Opt[T] {
	return Opt[T]{}
}

// Get returns the value and whether it is present.
func (o Opt[T]) Get() (T, bool) {
	return o.value, o.set
}

func (o Opt[T]) IsSet() bool {
	return o.set
}

// withOpt appends o's value to params when present.
func withOpt[T any](params []any, o Opt[T]) []any {
	if v, ok := o.Get(); ok {
		return append(params, v)
	}
	return params
}

package hovercode

// Optional is a request field that is either set to a value or left out.
// The zero value is unset. An explicitly set zero value such as Some(false)
// is still sent.
type Optional[T any] struct {
	value T
	set   bool
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

// None returns an unset Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// IsSet reports whether a value was provided.
func (o Optional[T]) IsSet() bool {
	return o.set
}

// Get returns the value and whether it was set.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// ValueOr returns the value, or def when unset.
func (o Optional[T]) ValueOr(def T) T {
	if !o.set {
		return def
	}
	return o.value
}

func (o Optional[T]) ptr() *T {
	if !o.set {
		return nil
	}
	return &o.value
}

// put stores the value under key when set.
func (o Optional[T]) put(m map[string]any, key string) {
	if o.set {
		m[key] = o.value
	}
}

// putEnum stores the wire string of an enum value under key when set.
func putEnum[E ~string](m map[string]any, key string, o Optional[E]) {
	if v, ok := o.Get(); ok {
		m[key] = enumString(v)
	}
}

package entity

// presence distinguishes a field that was never asked from one answered with null or a value.
type presence uint8

const (
	presenceUnset presence = iota
	presenceNull
	presenceValue
)

// Optional is a tri-state field: Unset (never asked), Null (explicitly blank) or a Value.
// The zero value is Unset.
type Optional[T any] struct {
	state presence
	value T
}

// Some returns an Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{state: presenceValue, value: v}
}

// Null returns an Optional that is present but carries no value.
func Null[T any]() Optional[T] {
	return Optional[T]{state: presenceNull}
}

// OptionalFromPtr maps a nullable column onto Null or Value. A loaded row never yields Unset.
func OptionalFromPtr[T any](p *T) Optional[T] {
	if p == nil {
		return Null[T]()
	}

	return Some(*p)
}

// IsSet reports whether the field was answered at all, including with null.
func (o Optional[T]) IsSet() bool {
	return o.state != presenceUnset
}

// IsNull reports whether the field was answered with an explicit blank.
func (o Optional[T]) IsNull() bool {
	return o.state == presenceNull
}

// Get returns the value and whether one is held.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.state == presenceValue
}

// Ptr converts back to a nullable column value. Unset and Null both map to nil.
func (o Optional[T]) Ptr() *T {
	if o.state != presenceValue {
		return nil
	}
	v := o.value

	return &v
}

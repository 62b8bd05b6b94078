package input

// StringInput is the byte-string Input variant: its logical unit is the
// byte, matching the trie's own key representation.
type StringInput struct {
	value string
}

// NewStringInput wraps s as an Input.
func NewStringInput(s string) *StringInput { return &StringInput{value: s} }

// Value returns the wrapped string.
func (i *StringInput) Value() string { return i.value }

// Equal reports whether other is a *StringInput with the same value.
func (i *StringInput) Equal(other Input) bool {
	o, ok := other.(*StringInput)
	if !ok {
		return false
	}
	return i.value == o.value
}

// Len returns the byte length of the wrapped string.
func (i *StringInput) Len() int { return len(i.value) }

// Subrange returns the byte range [offset:offset+length) as a new StringInput.
func (i *StringInput) Subrange(offset, length int) (Input, error) {
	if offset < 0 || length < 0 || offset+length > len(i.value) {
		return nil, ErrOutOfRange
	}
	return &StringInput{value: i.value[offset : offset+length]}, nil
}

// Append returns a new StringInput with tail's bytes appended.
func (i *StringInput) Append(tail Input) (Input, error) {
	t, ok := tail.(*StringInput)
	if !ok {
		return nil, ErrTypeMismatch
	}
	return &StringInput{value: i.value + t.value}, nil
}

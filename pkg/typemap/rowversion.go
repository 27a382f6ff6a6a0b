package typemap

import (
	"bytes"
	"reflect"
)

// IsModified reports whether a byte-sequence concurrency token changed
// between its original and current value. Sequences compare by value: a
// length difference or any differing byte means modified. Reference identity
// never matters, so a copy of the original is not a modification.
func IsModified(original, current []byte) bool {
	return !bytes.Equal(original, current)
}

// RowVersionComparer compares byte-sequence concurrency tokens by value. The
// zero value is ready to use.
type RowVersionComparer struct{}

// Equal reports byte-wise value equality. Non-byte-sequence operands fall
// back to deep equality.
func (RowVersionComparer) Equal(left, right any) bool {
	lb, lok := left.([]byte)
	rb, rok := right.([]byte)
	if lok && rok {
		return bytes.Equal(lb, rb)
	}
	return reflect.DeepEqual(left, right)
}

package typemap

// ValueConverter converts between the model representation of a value and the
// representation written to the store. Converters must be pure and safe for
// concurrent use.
type ValueConverter interface {
	// ToStore converts a model value to its store representation.
	ToStore(value any) any

	// FromStore converts a store value back to its model representation.
	FromStore(value any) any
}

// Comparer decides value equality for a mapped type. Comparers encode value
// semantics independent of the conversion mechanism: swapping a mapping's
// converter never swaps its comparers.
type Comparer interface {
	Equal(left, right any) bool
}

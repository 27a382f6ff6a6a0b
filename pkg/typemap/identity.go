package typemap

import "reflect"

// TypeIdentity identifies a host value type by its fully qualified name and,
// when available, its Go runtime type. Identities compare by pointer: the
// registry binds the exact identity a caller passed into the mapping it
// returns, so synthetic identities work without a loadable runtime type.
type TypeIdentity struct {
	fullName string
	goType   reflect.Type
}

// TypeOf returns an identity for the Go type T.
func TypeOf[T any]() *TypeIdentity {
	t := reflect.TypeOf((*T)(nil)).Elem()
	return &TypeIdentity{fullName: t.String(), goType: t}
}

// IdentityOf returns an identity for a reflected Go type.
func IdentityOf(t reflect.Type) *TypeIdentity {
	return &TypeIdentity{fullName: t.String(), goType: t}
}

// NamedType returns a synthetic identity for a fully qualified type name with
// no runtime type attached. This is how callers resolve provider types that
// are not loadable in the host process, e.g.
// "Microsoft.SqlServer.Types.SqlGeography".
func NamedType(fullName string) *TypeIdentity {
	return &TypeIdentity{fullName: fullName}
}

// FullName returns the fully qualified type name.
func (t *TypeIdentity) FullName() string {
	return t.fullName
}

// GoType returns the runtime type, or nil for synthetic identities.
func (t *TypeIdentity) GoType() reflect.Type {
	return t.goType
}

func (t *TypeIdentity) String() string {
	return t.fullName
}

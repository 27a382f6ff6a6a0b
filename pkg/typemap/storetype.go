package typemap

import (
	"fmt"
	"strconv"
	"strings"

	tmerrors "github.com/Itfly/typemap/internal/errors"
)

// parsedStoreType is the lexical form of a store type name such as
// "nvarchar(max)" or "decimal(18, 2)".
type parsedStoreType struct {
	// Base is the lowercased base name, e.g. "nvarchar".
	Base string

	// Args holds the numeric length/precision arguments, in order.
	Args []int

	// Max reports whether the single argument was the "max" keyword.
	Max bool

	// Raw is the input with surrounding space trimmed, original casing kept.
	Raw string
}

// parseStoreType splits a store type name into its base name and arguments.
// Matching downstream is case-insensitive, so the base comes out lowercased.
func parseStoreType(name string) (parsedStoreType, error) {
	raw := strings.TrimSpace(name)
	if raw == "" {
		return parsedStoreType{}, tmerrors.NewMappingError(
			tmerrors.CodeStoreTypeNotSupported, "empty store type name")
	}

	open := strings.IndexByte(raw, '(')
	if open < 0 {
		return parsedStoreType{Base: strings.ToLower(raw), Raw: raw}, nil
	}

	if !strings.HasSuffix(raw, ")") || open == 0 {
		return parsedStoreType{}, tmerrors.NewMappingError(
			tmerrors.CodeStoreTypeNotSupported,
			fmt.Sprintf("malformed store type name %q", name))
	}

	p := parsedStoreType{
		Base: strings.ToLower(strings.TrimSpace(raw[:open])),
		Raw:  raw,
	}

	argText := raw[open+1 : len(raw)-1]
	for _, arg := range strings.Split(argText, ",") {
		arg = strings.TrimSpace(arg)
		if strings.EqualFold(arg, "max") {
			p.Max = true
			continue
		}
		n, err := strconv.Atoi(arg)
		if err != nil {
			return parsedStoreType{}, tmerrors.Wrap(
				tmerrors.ErrCategoryMapping, tmerrors.CodeStoreTypeNotSupported,
				fmt.Sprintf("malformed store type argument in %q", name), err)
		}
		p.Args = append(p.Args, n)
	}

	return p, nil
}

// sizeFacet returns the size facet implied by the lexical form: an explicit
// numeric argument sets it, "max" and a bare name leave it unset.
func (p parsedStoreType) sizeFacet() *int {
	if p.Max || len(p.Args) == 0 {
		return nil
	}
	return intFacet(p.Args[0])
}

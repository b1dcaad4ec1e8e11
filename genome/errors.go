package genome

import "fmt"

/*
UnknownVariantError is the error returned when a split path or a
candidate references a variant the genotype matrix has no column for.
It indicates a programming error on the caller, not a condition to
retry.
*/
type UnknownVariantError struct {
	Variant string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("unknown variant %q", e.Variant)
}

/*
MalformedMappingError is the error returned when a row of the
population-mapping source has fewer columns than required. It is
surfaced instead of skipped because it indicates corrupted upstream
data.
*/
type MalformedMappingError struct {
	Line    int
	Columns int
}

func (e *MalformedMappingError) Error() string {
	return fmt.Sprintf("malformed population mapping: line %d has %d columns", e.Line, e.Columns)
}

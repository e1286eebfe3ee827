package amino

import "fmt"

// InvalidInputError is returned by Lookup when a residue name does not have
// exactly three characters after trimming surrounding whitespace.
type InvalidInputError struct {
	Code string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Residue name '%s' is not a three letter code.", e.Code)
}

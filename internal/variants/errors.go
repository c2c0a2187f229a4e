package variants

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrIncompleteSelection is returned when a grouped product still has
	// groups without a choice at commit time.
	ErrIncompleteSelection = errors.New("incomplete variant selection")

	// ErrInvalidQuantity is returned for line item quantities below one.
	ErrInvalidQuantity = errors.New("quantity must be at least 1")
)

// IncompleteSelectionError names the groups that still need a choice.
type IncompleteSelectionError struct {
	Missing []string
}

func (e *IncompleteSelectionError) Error() string {
	return fmt.Sprintf("select %d more option(s): %s", len(e.Missing), strings.Join(e.Missing, ", "))
}

func (e *IncompleteSelectionError) Is(target error) bool {
	return target == ErrIncompleteSelection
}

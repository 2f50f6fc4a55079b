package ledger

import "errors"

var (
	// ErrNotFound is returned when an operation names an ID the store
	// does not hold. The collections are left unchanged.
	ErrNotFound = errors.New("not found")

	// ErrCreatorHasMods is returned when deleting a creator that still
	// has mods referencing it.
	ErrCreatorHasMods = errors.New("creator has mods and cannot be deleted")

	// ErrValidation is returned when an input fails a boundary check
	// (blank name, unknown creator, out-of-range amount).
	ErrValidation = errors.New("validation failed")
)

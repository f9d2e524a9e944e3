package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")

	// -- Resource State --
	ErrLineNotFound = errors.New("cart line not found")

	// -- Backend Failures --
	ErrFailedFetchCart    = errors.New("failed to fetch cart")
	ErrFailedFetchCatalog = errors.New("failed to fetch product catalog")
	ErrFailedAddLine      = errors.New("failed to add cart line")
	ErrFailedRemoveLine   = errors.New("failed to remove cart line")
)

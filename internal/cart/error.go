package cart

import "errors"

var (
	// -- Validation & Input --
	ErrInvalidQuantity = errors.New("invalid cart quantity")
	ErrInvalidProduct  = errors.New("invalid cart product")

	// -- Resource State --
	ErrItemNotFound = errors.New("cart item not found")

	// -- Database & Operation Failures --
	ErrFailedGetCart    = errors.New("failed to get cart")
	ErrFailedSaveCart   = errors.New("failed to save cart")
	ErrFailedUpdateCart = errors.New("failed to update cart item")
	ErrFailedRemoveItem = errors.New("failed to remove cart item")
	ErrFailedClearCart  = errors.New("failed to clear cart")
)

package catalog

import "errors"

var (
	ErrNotFound       = errors.New("product not found")
	ErrUnknownSize    = errors.New("size not offered for this product")
	ErrUnknownColor   = errors.New("color not offered for this product")
	ErrFailedGetRows  = errors.New("failed to get catalog rows")
	ErrFailedGetPrice = errors.New("failed to resolve price")
)

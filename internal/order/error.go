package order

import "errors"

var (
	ErrNotFound          = errors.New("order not found")
	ErrUnauthorized      = errors.New("unauthorized")
	ErrIllegalTransition = errors.New("illegal status transition")
	// ErrStatusConflict means the stored status changed between read and
	// write; the caller saw stale state and should reload.
	ErrStatusConflict = errors.New("order status changed concurrently")

	ErrFailedCreateOrder = errors.New("failed to create order")
	ErrFailedGetOrders   = errors.New("failed to get orders")
	ErrFailedUpdateOrder = errors.New("failed to update order")
)

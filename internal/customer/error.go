package customer

import "errors"

var (
	ErrNotFound            = errors.New("customer not found")
	ErrAddressNotFound     = errors.New("address not found")
	ErrFailedGetCustomer   = errors.New("failed to get customer")
	ErrFailedListAddresses = errors.New("failed to list addresses")
	ErrFailedUpsertAddress = errors.New("failed to upsert address")
)

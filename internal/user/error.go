package user

import "errors"

var (
	ErrNotFound           = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInactiveAccount    = errors.New("account deactivated")

	ErrFailedCreateUser = errors.New("failed to create user")
	ErrFailedGetUser    = errors.New("failed to get user")
)

package storage

import "errors"

var (
	ErrLoginExists   = errors.New("given phone or email already exists in storage")
	ErrLoginNotFound = errors.New("given login doesn't exist in storage")

	ErrOrderNotFound         = errors.New("order with given id doesn't exist in storage")
	ErrOrdersForUserNotFound = errors.New("orders for given user don't exist in storage")

	ErrNotificationNotFound = errors.New("notification with given id doesn't exist in storage")
)

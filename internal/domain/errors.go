package domain

import "errors"

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrNoData           = errors.New("no sales data for report")
)

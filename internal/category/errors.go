package category

import "errors"

var (
	ErrEmptyName        = errors.New("category name must not be empty")
	ErrDuplicateName    = errors.New("category already exists")
	ErrCategoryNotFound = errors.New("category not found")
)

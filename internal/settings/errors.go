package settings

import "errors"

var ErrEmptyName = errors.New("profile name must not be empty")

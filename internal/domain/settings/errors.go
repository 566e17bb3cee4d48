package settings

import "errors"

var ErrSettingNotFound = errors.New("setting not found")

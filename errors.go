package mupair

import "errors"

var (
	ErrConfig            = errors.New("mupair: configuration error")
	ErrTargetUnreachable = errors.New("mupair: target event count unreachable")
)

package router

import "errors"

var (
	ErrInvalidParam    = errors.New("invalid param")
	ErrInvalidMode     = errors.New("invalid router mode")
	ErrBackendRequired = errors.New("dynamic mode requires an agent backend")
	ErrNilDetector     = errors.New("trigger detector is required")
)

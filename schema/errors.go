package schema

import "errors"

// Sentinel errors for caller mistakes. Not-computable results are never errors.
var (
	ErrUnknownFamily     = errors.New("unknown metric family")
	ErrUnknownField      = errors.New("unknown field")
	ErrUnknownMode       = errors.New("unknown solve mode")
	ErrUnknownIndustry   = errors.New("unknown industry")
	ErrUnknownMediaType  = errors.New("unknown media type")
	ErrTargetNotInFamily = errors.New("target is not part of the metric family")
	ErrNotRateField      = errors.New("field has no benchmark")
)

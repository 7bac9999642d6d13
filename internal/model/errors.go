package model

import "errors"

// ErrInsufficientData is returned when a series is shorter than a
// component's minimum window. Evaluators refuse to extrapolate.
var ErrInsufficientData = errors.New("insufficient data")

package entity

import "errors"

// Standard domain errors
var (
	ErrInvalidRequest  = errors.New("invalid request body")
	ErrUpstream        = errors.New("generative model call failed")
	ErrEmptyResponse   = errors.New("generative model returned no text")
	ErrMalformedOutput = errors.New("model output is not valid JSON")
)

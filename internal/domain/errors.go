package domain

import "errors"

var (
	// ErrMalformedGraph marks a graph that failed local validation
	ErrMalformedGraph = errors.New("malformed graph")

	// ErrDataSource marks a failure fetching or decoding graph data
	ErrDataSource = errors.New("data source error")
)

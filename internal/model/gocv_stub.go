//go:build !gocv
// +build !gocv

package model

import (
	"context"
	"errors"
)

var errNoGoCV = errors.New("gocv build tag is not enabled")

// Net is a placeholder for the OpenCV backend in builds without the gocv tag.
type Net struct{}

// NewNet returns an error if the build lacks the gocv tag.
func NewNet(_ Options) (*Net, error) {
	return nil, errNoGoCV
}

func (n *Net) Metadata() Metadata {
	return Metadata{}
}

func (n *Net) Predict(_ context.Context, _ []float32) ([]float32, error) {
	return nil, errNoGoCV
}

func (n *Net) Close() {}

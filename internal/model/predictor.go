package model

import (
	"context"
	"fmt"
)

// Backend selects the inference runtime.
type Backend string

const (
	BackendONNX Backend = "onnx"
	BackendGoCV Backend = "gocv"
)

// Predictor runs a prepared input tensor through the model and returns the
// raw output vector.
type Predictor interface {
	Predict(ctx context.Context, input []float32) ([]float32, error)
	Metadata() Metadata
	Close()
}

type Options struct {
	Backend           Backend
	ModelPath         string
	MetadataPath      string
	SharedLibraryPath string
}

// Open loads the model with the configured backend.
func Open(opts Options) (Predictor, error) {
	switch opts.Backend {
	case "", BackendONNX:
		s, err := NewServer(opts)
		if err != nil {
			return nil, err
		}
		return s, nil
	case BackendGoCV:
		n, err := NewNet(opts)
		if err != nil {
			return nil, err
		}
		return n, nil
	default:
		return nil, fmt.Errorf("unknown model backend %q", opts.Backend)
	}
}

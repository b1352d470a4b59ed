//go:build gocv
// +build gocv

package model

import (
	"context"
	"fmt"
	"sync"

	"gocv.io/x/gocv"
)

// Net runs the model through the OpenCV dnn module.
type Net struct {
	mu   sync.Mutex
	net  gocv.Net
	meta Metadata
}

func NewNet(opts Options) (*Net, error) {
	meta, err := LoadMetadata(opts.MetadataPath)
	if err != nil {
		return nil, err
	}
	meta.normalize()
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model metadata: %w", err)
	}

	net := gocv.ReadNetFromONNX(opts.ModelPath)
	if net.Empty() {
		return nil, fmt.Errorf("failed to read model %s", opts.ModelPath)
	}
	if err := net.SetPreferableBackend(gocv.NetBackendOpenCV); err != nil {
		net.Close()
		return nil, fmt.Errorf("set backend: %w", err)
	}
	if err := net.SetPreferableTarget(gocv.NetTargetCPU); err != nil {
		net.Close()
		return nil, fmt.Errorf("set target: %w", err)
	}

	return &Net{net: net, meta: meta}, nil
}

func (n *Net) Metadata() Metadata {
	return n.meta
}

func (n *Net) Predict(ctx context.Context, input []float32) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := checkInputLen(n.meta.InputSize(), len(input)); err != nil {
		return nil, err
	}

	sizes := make([]int, len(n.meta.InputShape))
	for i, d := range n.meta.InputShape {
		sizes[i] = int(d)
	}

	blob := gocv.NewMatWithSizes(sizes, gocv.MatTypeCV32F)
	defer blob.Close()

	data, err := blob.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("blob data: %w", err)
	}
	copy(data, input)

	n.mu.Lock()
	defer n.mu.Unlock()

	n.net.SetInput(blob, n.meta.InputName)
	prob := n.net.Forward(n.meta.OutputName)
	defer prob.Close()

	values, err := prob.DataPtrFloat32()
	if err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	out := make([]float32, len(values))
	copy(out, values)
	return out, nil
}

func (n *Net) Close() {
	n.net.Close()
}

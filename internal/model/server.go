package model

import (
	"context"
	"fmt"
	"sync"

	ort "github.com/yalue/onnxruntime_go"
)

// Server runs the model through ONNX Runtime. The session is bound to a
// single pair of tensors, so Predict calls are serialized.
type Server struct {
	mu           sync.Mutex
	session      *ort.AdvancedSession
	meta         Metadata
	inputTensor  *ort.Tensor[float32]
	outputTensor *ort.Tensor[float32]
}

func NewServer(opts Options) (*Server, error) {
	if opts.SharedLibraryPath != "" {
		ort.SetSharedLibraryPath(opts.SharedLibraryPath)
	}
	if err := ort.InitializeEnvironment(); err != nil {
		return nil, fmt.Errorf("failed to initialize ONNX environment: %w", err)
	}

	s, err := newServer(opts)
	if err != nil {
		ort.DestroyEnvironment()
		return nil, err
	}
	return s, nil
}

func newServer(opts Options) (*Server, error) {
	meta, err := LoadMetadata(opts.MetadataPath)
	if err != nil {
		return nil, err
	}

	inputs, outputs, err := ort.GetInputOutputInfo(opts.ModelPath)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect model: %w", err)
	}
	if err := meta.resolve(inputs, outputs); err != nil {
		return nil, err
	}
	meta.normalize()
	if err := meta.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model metadata: %w", err)
	}

	inputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.InputShape...))
	if err != nil {
		return nil, fmt.Errorf("failed to create input tensor: %w", err)
	}

	outputTensor, err := ort.NewEmptyTensor[float32](ort.NewShape(meta.OutputShape...))
	if err != nil {
		inputTensor.Destroy()
		return nil, fmt.Errorf("failed to create output tensor: %w", err)
	}

	session, err := ort.NewAdvancedSession(opts.ModelPath,
		[]string{meta.InputName}, []string{meta.OutputName},
		[]ort.ArbitraryTensor{inputTensor}, []ort.ArbitraryTensor{outputTensor},
		nil)
	if err != nil {
		inputTensor.Destroy()
		outputTensor.Destroy()
		return nil, fmt.Errorf("failed to create ONNX session: %w", err)
	}

	return &Server{
		session:      session,
		meta:         meta,
		inputTensor:  inputTensor,
		outputTensor: outputTensor,
	}, nil
}

func (s *Server) Metadata() Metadata {
	return s.meta
}

func (s *Server) Predict(ctx context.Context, input []float32) ([]float32, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	dst := s.inputTensor.GetData()
	if err := checkInputLen(len(dst), len(input)); err != nil {
		return nil, err
	}
	copy(dst, input)

	if err := s.session.Run(); err != nil {
		return nil, fmt.Errorf("inference failed: %w", err)
	}

	out := make([]float32, len(s.outputTensor.GetData()))
	copy(out, s.outputTensor.GetData())
	return out, nil
}

func checkInputLen(want, got int) error {
	if got != want {
		return fmt.Errorf("expected %d input values, got %d", want, got)
	}
	return nil
}

func (s *Server) Close() {
	if s.inputTensor != nil {
		s.inputTensor.Destroy()
	}
	if s.outputTensor != nil {
		s.outputTensor.Destroy()
	}
	if s.session != nil {
		s.session.Destroy()
	}
	ort.DestroyEnvironment()
}

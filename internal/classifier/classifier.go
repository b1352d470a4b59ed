package classifier

import (
	"context"
	"errors"
	"fmt"
	"image"
	"math"

	"go.uber.org/zap"

	"github.com/pilahsampah/waste-classifier/internal/model"
	"github.com/pilahsampah/waste-classifier/internal/waste"
)

// Kind identifies the pipeline stage that failed.
type Kind int

const (
	KindDecode Kind = iota + 1
	KindImage
	KindInference
)

func (k Kind) String() string {
	switch k {
	case KindDecode:
		return "decode"
	case KindImage:
		return "image"
	case KindInference:
		return "inference"
	default:
		return "unknown"
	}
}

// Error is returned by every Classify method. Its message is the message
// of the underlying cause.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the stage of a classification error, or 0.
func KindOf(err error) Kind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return 0
}

var ErrMissingImage = errors.New(`request has no "image" field`)

type Result struct {
	Label      waste.Label
	Confidence float32
	Info       waste.Info
}

func (r *Result) Response() model.ClassifyResponse {
	return model.ClassifyResponse{
		Label:      r.Label.String(),
		Confidence: float64(r.Confidence),
		Deskripsi:  r.Info.Deskripsi,
		Penanganan: r.Info.Penanganan,
		Kategori:   r.Info.Kategori,
	}
}

type Service struct {
	predictor model.Predictor
	meta      model.Metadata
	maxPixels int64
	logger    *zap.Logger
}

type Option func(*Service)

// WithMaxPixels overrides DefaultMaxPixels.
func WithMaxPixels(n int64) Option {
	return func(s *Service) {
		s.maxPixels = n
	}
}

func NewService(predictor model.Predictor, logger *zap.Logger, opts ...Option) *Service {
	s := &Service{
		predictor: predictor,
		meta:      predictor.Metadata(),
		maxPixels: DefaultMaxPixels,
		logger:    logger.Named("classifier"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// ClassifyBase64 decodes a base64 image and classifies it.
func (s *Service) ClassifyBase64(ctx context.Context, encoded string) (*Result, error) {
	data, err := DecodeBase64(encoded)
	if err != nil {
		return nil, &Error{Kind: KindDecode, Err: err}
	}
	return s.ClassifyBytes(ctx, data)
}

// ClassifyBytes decodes an encoded image file and classifies it.
func (s *Service) ClassifyBytes(ctx context.Context, data []byte) (*Result, error) {
	img, format, err := DecodeImage(data, s.maxPixels)
	if err != nil {
		return nil, &Error{Kind: KindImage, Err: err}
	}

	s.logger.Debug("decoded image",
		zap.String("format", format),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()))

	return s.ClassifyImage(ctx, img)
}

func (s *Service) ClassifyImage(ctx context.Context, img image.Image) (*Result, error) {
	if img.Bounds().Empty() {
		return nil, &Error{Kind: KindImage, Err: errors.New("image has no pixels")}
	}

	input := Tensor(img, s.meta.ImageSize, s.meta.Layout)

	output, err := s.predictor.Predict(ctx, input)
	if err != nil {
		return nil, &Error{Kind: KindInference, Err: err}
	}
	if s.meta.ApplySoftmax {
		output = Softmax(output)
	}

	idx, confidence, err := Argmax(output)
	if err != nil {
		return nil, &Error{Kind: KindInference, Err: err}
	}

	label, err := waste.FromIndex(idx)
	if err != nil {
		return nil, &Error{Kind: KindInference, Err: err}
	}

	return &Result{
		Label:      label,
		Confidence: confidence,
		Info:       waste.Lookup(label),
	}, nil
}

// Argmax returns the position and value of the largest output. The output
// must carry exactly one value per label.
func Argmax(output []float32) (int, float32, error) {
	if len(output) != waste.Count {
		return 0, 0, fmt.Errorf("model returned %d values, expected %d", len(output), waste.Count)
	}

	maxIdx := 0
	maxVal := output[0]
	for i, val := range output {
		if val > maxVal || isNaN(maxVal) {
			maxVal = val
			maxIdx = i
		}
	}
	if isNaN(maxVal) {
		return 0, 0, errors.New("model returned NaN scores")
	}
	return maxIdx, maxVal, nil
}

// Softmax turns logits into probabilities.
func Softmax(logits []float32) []float32 {
	if len(logits) == 0 {
		return nil
	}

	maxVal := logits[0]
	for _, v := range logits {
		if v > maxVal {
			maxVal = v
		}
	}

	out := make([]float32, len(logits))
	var sum float64
	for i, v := range logits {
		e := math.Exp(float64(v - maxVal))
		out[i] = float32(e)
		sum += e
	}
	for i := range out {
		out[i] = float32(float64(out[i]) / sum)
	}
	return out
}

func isNaN(v float32) bool {
	return v != v
}

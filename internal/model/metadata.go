package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"slices"
	"strings"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/pilahsampah/waste-classifier/internal/waste"
)

// DefaultImageSize is the square input resolution of the waste model.
const DefaultImageSize = 224

const channels = 3

// Shape returns the batch-of-one input shape for a square image.
func (l Layout) Shape(size int) []int64 {
	s := int64(size)
	if l == LayoutNCHW {
		return []int64{1, channels, s, s}
	}
	return []int64{1, s, s, channels}
}

func (l Layout) sizeFrom(shape []int64) int {
	if len(shape) != 4 {
		return 0
	}
	d := shape[1]
	if l == LayoutNCHW {
		d = shape[2]
	}
	if d <= 0 {
		return 0
	}
	return int(d)
}

// LoadMetadata reads the JSON sidecar at path. A missing file is not an
// error: everything is then resolved from the model and defaults.
func LoadMetadata(path string) (Metadata, error) {
	var meta Metadata
	if path == "" {
		return meta, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return meta, nil
	}
	if err != nil {
		return meta, fmt.Errorf("failed to read metadata: %w", err)
	}

	if err := json.Unmarshal(data, &meta); err != nil {
		return meta, fmt.Errorf("failed to parse metadata: %w", err)
	}
	return meta, nil
}

// resolve fills names and shapes missing from the sidecar with what the
// model declares, and rejects a model whose output width is known and
// differs from the label count.
func (m *Metadata) resolve(inputs, outputs []ort.InputOutputInfo) error {
	if len(inputs) == 0 || len(outputs) == 0 {
		return errors.New("model declares no inputs or outputs")
	}

	in, err := findInfo(inputs, m.InputName)
	if err != nil {
		return fmt.Errorf("input: %w", err)
	}
	out, err := findInfo(outputs, m.OutputName)
	if err != nil {
		return fmt.Errorf("output: %w", err)
	}

	m.InputName = in.Name
	m.OutputName = out.Name
	if len(m.InputShape) == 0 {
		m.InputShape = slices.Clone([]int64(in.Dimensions))
	}
	if len(m.OutputShape) == 0 {
		m.OutputShape = slices.Clone([]int64(out.Dimensions))
	}

	if n := len(out.Dimensions); n > 0 {
		if width := out.Dimensions[n-1]; width > 0 && width != int64(waste.Count) {
			return fmt.Errorf("model output width %d does not match %d labels", width, waste.Count)
		}
	}
	return nil
}

func findInfo(infos []ort.InputOutputInfo, name string) (ort.InputOutputInfo, error) {
	if name == "" {
		return infos[0], nil
	}
	for _, info := range infos {
		if info.Name == name {
			return info, nil
		}
	}
	return ort.InputOutputInfo{}, fmt.Errorf("model has no tensor named %q", name)
}

// normalize applies defaults and replaces dynamic (non-positive)
// dimensions with concrete ones for a single image.
func (m *Metadata) normalize() {
	m.Layout = Layout(strings.ToUpper(string(m.Layout)))
	if m.Layout == "" {
		m.Layout = LayoutNHWC
	}
	if m.ImageSize <= 0 {
		m.ImageSize = m.Layout.sizeFrom(m.InputShape)
	}
	if m.ImageSize <= 0 {
		m.ImageSize = DefaultImageSize
	}

	want := m.Layout.Shape(m.ImageSize)
	if len(m.InputShape) != len(want) {
		m.InputShape = want
	} else {
		for i, d := range m.InputShape {
			if d <= 0 {
				m.InputShape[i] = want[i]
			}
		}
	}

	if len(m.OutputShape) == 0 {
		m.OutputShape = []int64{1, int64(waste.Count)}
	}
	last := len(m.OutputShape) - 1
	for i, d := range m.OutputShape {
		if d > 0 {
			continue
		}
		if i == last {
			m.OutputShape[i] = int64(waste.Count)
		} else {
			m.OutputShape[i] = 1
		}
	}
}

// Validate checks that the metadata describes a single-image classifier
// whose output vector lines up with the label list.
func (m Metadata) Validate() error {
	if m.Layout != LayoutNHWC && m.Layout != LayoutNCHW {
		return fmt.Errorf("unsupported layout %q", m.Layout)
	}
	if want := m.Layout.Shape(m.ImageSize); !slices.Equal(m.InputShape, want) {
		return fmt.Errorf("input shape %v, expected %v", m.InputShape, want)
	}

	if len(m.OutputShape) == 0 {
		return errors.New("output shape is empty")
	}
	if width := m.OutputShape[len(m.OutputShape)-1]; width != int64(waste.Count) {
		return fmt.Errorf("model output width %d does not match %d labels", width, waste.Count)
	}
	if n := volume(m.OutputShape); n != int64(waste.Count) {
		return fmt.Errorf("output shape %v holds %d values, expected %d", m.OutputShape, n, waste.Count)
	}

	if len(m.Classes) > 0 && !slices.Equal(m.Classes, waste.Names()) {
		return fmt.Errorf("model classes %v do not match label order %v", m.Classes, waste.Names())
	}
	return nil
}

// InputSize is the number of values in one input tensor.
func (m Metadata) InputSize() int {
	return int(volume(m.InputShape))
}

func volume(shape []int64) int64 {
	if len(shape) == 0 {
		return 0
	}
	n := int64(1)
	for _, d := range shape {
		n *= d
	}
	return n
}

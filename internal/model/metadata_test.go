package model

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	ort "github.com/yalue/onnxruntime_go"

	"github.com/pilahsampah/waste-classifier/internal/waste"
)

func TestLoadMetadata_MissingFile(t *testing.T) {
	meta, err := LoadMetadata(filepath.Join(t.TempDir(), "absent.json"))
	require.NoError(t, err)
	require.Empty(t, meta.InputName)

	meta.normalize()
	require.NoError(t, meta.Validate())
	require.Equal(t, LayoutNHWC, meta.Layout)
	require.Equal(t, []int64{1, 224, 224, 3}, meta.InputShape)
	require.Equal(t, []int64{1, 12}, meta.OutputShape)
	require.Equal(t, 224*224*3, meta.InputSize())
}

func TestLoadMetadata_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model_metadata.json")
	body := `{"input_name":"images","output_name":"probs","layout":"nchw","image_size":224,"apply_softmax":true}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	meta, err := LoadMetadata(path)
	require.NoError(t, err)
	meta.normalize()
	require.NoError(t, meta.Validate())
	require.Equal(t, "images", meta.InputName)
	require.Equal(t, LayoutNCHW, meta.Layout)
	require.Equal(t, []int64{1, 3, 224, 224}, meta.InputShape)
	require.True(t, meta.ApplySoftmax)
}

func TestLoadMetadata_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "model_metadata.json")
	require.NoError(t, os.WriteFile(path, []byte("{"), 0o644))

	_, err := LoadMetadata(path)
	require.Error(t, err)
}

func TestResolve_FromModel(t *testing.T) {
	inputs := []ort.InputOutputInfo{{Name: "input_1", Dimensions: ort.NewShape(-1, 224, 224, 3)}}
	outputs := []ort.InputOutputInfo{{Name: "dense_2", Dimensions: ort.NewShape(-1, 12)}}

	var meta Metadata
	require.NoError(t, meta.resolve(inputs, outputs))
	meta.normalize()
	require.NoError(t, meta.Validate())

	require.Equal(t, "input_1", meta.InputName)
	require.Equal(t, "dense_2", meta.OutputName)
	require.Equal(t, []int64{1, 224, 224, 3}, meta.InputShape)
	require.Equal(t, []int64{1, 12}, meta.OutputShape)
}

func TestResolve_OutputWidthMismatch(t *testing.T) {
	inputs := []ort.InputOutputInfo{{Name: "input", Dimensions: ort.NewShape(1, 224, 224, 3)}}
	outputs := []ort.InputOutputInfo{{Name: "output", Dimensions: ort.NewShape(1, 7)}}

	var meta Metadata
	err := meta.resolve(inputs, outputs)
	require.Error(t, err)
	require.Contains(t, err.Error(), "does not match 12 labels")
}

func TestResolve_UnknownName(t *testing.T) {
	inputs := []ort.InputOutputInfo{{Name: "input", Dimensions: ort.NewShape(1, 224, 224, 3)}}
	outputs := []ort.InputOutputInfo{{Name: "output", Dimensions: ort.NewShape(1, 12)}}

	meta := Metadata{OutputName: "logits"}
	require.Error(t, meta.resolve(inputs, outputs))
}

func TestValidate(t *testing.T) {
	valid := func() Metadata {
		m := Metadata{}
		m.normalize()
		return m
	}

	cases := []struct {
		name   string
		mutate func(m *Metadata)
	}{
		{"layout", func(m *Metadata) { m.Layout = "HWC" }},
		{"input shape", func(m *Metadata) { m.InputShape = []int64{1, 128, 128, 3} }},
		{"output width", func(m *Metadata) { m.OutputShape = []int64{1, 11} }},
		{"output batch", func(m *Metadata) { m.OutputShape = []int64{2, 12} }},
		{"class order", func(m *Metadata) {
			names := waste.Names()
			names[0], names[1] = names[1], names[0]
			m.Classes = names
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := valid()
			tc.mutate(&m)
			require.Error(t, m.Validate())
		})
	}

	m := valid()
	m.Classes = waste.Names()
	require.NoError(t, m.Validate())
}

func TestOpen_UnknownBackend(t *testing.T) {
	p, err := Open(Options{Backend: "tflite"})
	require.Error(t, err)
	require.Nil(t, p)
}

func TestCheckInputLen(t *testing.T) {
	meta := Metadata{}
	meta.normalize()

	require.NoError(t, checkInputLen(meta.InputSize(), 224*224*3))

	err := checkInputLen(meta.InputSize(), 10)
	require.Error(t, err)
	require.Equal(t, "expected 150528 input values, got 10", err.Error())
}

func TestOpen_GoCVWithoutModel(t *testing.T) {
	p, err := Open(Options{Backend: BackendGoCV})
	if err == nil {
		// built with the gocv tag; an empty model path must still fail
		p.Close()
		t.Fatal("expected an error for an empty model path")
	}
	require.Nil(t, p)
}

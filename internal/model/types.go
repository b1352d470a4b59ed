package model

import "github.com/pilahsampah/waste-classifier/internal/waste"

// Layout is the memory order of the input tensor.
type Layout string

const (
	LayoutNHWC Layout = "NHWC"
	LayoutNCHW Layout = "NCHW"
)

// Metadata describes the model's input and output tensors. Fields left
// empty in the sidecar file are resolved from the model itself.
type Metadata struct {
	InputName    string   `json:"input_name"`
	OutputName   string   `json:"output_name"`
	InputShape   []int64  `json:"input_shape"`
	OutputShape  []int64  `json:"output_shape"`
	Classes      []string `json:"classes"`
	ImageSize    int      `json:"image_size"`
	Layout       Layout   `json:"layout"`
	ApplySoftmax bool     `json:"apply_softmax"`
}

type ClassifyRequest struct {
	Image *string `json:"image"`
}

type ClassifyResponse struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"`
	Deskripsi  string  `json:"deskripsi"`
	Penanganan string  `json:"penanganan"`
	Kategori   string  `json:"kategori"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type LabelResponse struct {
	Index int    `json:"index"`
	Label string `json:"label"`
	waste.Info
}

package handlers

import (
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/pilahsampah/waste-classifier/internal/classifier"
	"github.com/pilahsampah/waste-classifier/internal/model"
	"github.com/pilahsampah/waste-classifier/internal/waste"
)

type Handler struct {
	classifier    *classifier.Service
	logger        *zap.Logger
	maxImageBytes int64
	upgrader      websocket.Upgrader
}

func NewHandler(svc *classifier.Service, logger *zap.Logger, maxImageBytes int64) *Handler {
	return &Handler{
		classifier:    svc,
		logger:        logger,
		maxImageBytes: maxImageBytes,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  64 << 10,
			WriteBufferSize: 4 << 10,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
	}
}

// maxBodyBytes allows for base64 expansion plus the JSON envelope.
func (h *Handler) maxBodyBytes() int64 {
	return h.maxImageBytes/3*4 + 4<<10
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

func (h *Handler) Labels(c *gin.Context) {
	out := make([]model.LabelResponse, 0, waste.Count)
	for _, l := range waste.Labels {
		out = append(out, model.LabelResponse{Index: int(l), Label: l.String(), Info: l.Info()})
	}
	c.JSON(http.StatusOK, out)
}

// Classify handles {"image": "<base64>"} bodies.
func (h *Handler) Classify(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxBodyBytes())

	var req model.ClassifyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.fail(c, &classifier.Error{Kind: classifier.KindDecode, Err: fmt.Errorf("invalid JSON body: %w", err)})
		return
	}
	if req.Image == nil {
		h.fail(c, &classifier.Error{Kind: classifier.KindDecode, Err: classifier.ErrMissingImage})
		return
	}

	result, err := h.classifier.ClassifyBase64(c.Request.Context(), *req.Image)
	if err != nil {
		h.fail(c, err)
		return
	}

	h.logger.Info("classified",
		zap.String("request_id", RequestIDFrom(c)),
		zap.Stringer("label", result.Label),
		zap.Float32("confidence", result.Confidence))

	c.JSON(http.StatusOK, result.Response())
}

// ClassifyUpload handles multipart uploads with the file in the "image" field.
func (h *Handler) ClassifyUpload(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, h.maxImageBytes+1<<20)

	header, err := c.FormFile("image")
	if err != nil {
		h.fail(c, &classifier.Error{
			Kind: classifier.KindDecode,
			Err:  fmt.Errorf("no image file provided, use 'image' as the form field name: %w", err),
		})
		return
	}

	file, err := header.Open()
	if err != nil {
		h.fail(c, &classifier.Error{Kind: classifier.KindDecode, Err: err})
		return
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, h.maxImageBytes+1))
	if err != nil {
		h.fail(c, &classifier.Error{Kind: classifier.KindDecode, Err: err})
		return
	}
	if int64(len(data)) > h.maxImageBytes {
		h.fail(c, &classifier.Error{
			Kind: classifier.KindDecode,
			Err:  fmt.Errorf("image exceeds %d bytes", h.maxImageBytes),
		})
		return
	}

	h.logger.Debug("received file",
		zap.String("request_id", RequestIDFrom(c)),
		zap.String("filename", header.Filename),
		zap.Int64("size", header.Size))

	result, err := h.classifier.ClassifyBytes(c.Request.Context(), data)
	if err != nil {
		h.fail(c, err)
		return
	}

	c.JSON(http.StatusOK, result.Response())
}

// fail answers every classification error the same way; the stage only
// goes to the log.
func (h *Handler) fail(c *gin.Context, err error) {
	h.logger.Warn("classification failed",
		zap.String("request_id", RequestIDFrom(c)),
		zap.Stringer("kind", classifier.KindOf(err)),
		zap.Error(err))

	c.AbortWithStatusJSON(http.StatusBadRequest, model.ErrorResponse{Error: err.Error()})
}

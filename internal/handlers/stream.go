package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/pilahsampah/waste-classifier/internal/classifier"
	"github.com/pilahsampah/waste-classifier/internal/model"
)

// Stream classifies a sequence of images over one websocket. Binary
// messages carry encoded image bytes; text messages carry base64 or a
// {"image": ...} object. Every message gets exactly one JSON reply.
func (h *Handler) Stream(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", zap.String("request_id", RequestIDFrom(c)), zap.Error(err))
		return
	}
	defer conn.Close()

	conn.SetReadLimit(h.maxBodyBytes())
	ctx := c.Request.Context()
	logger := h.logger.With(zap.String("request_id", RequestIDFrom(c)))

	for {
		msgType, payload, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debug("websocket closed", zap.Error(err))
			}
			return
		}

		if msgType != websocket.BinaryMessage && msgType != websocket.TextMessage {
			continue
		}

		result, err := h.classifyMessage(ctx, msgType, payload)

		var reply any
		if err != nil {
			logger.Warn("classification failed", zap.Stringer("kind", classifier.KindOf(err)), zap.Error(err))
			reply = model.ErrorResponse{Error: err.Error()}
		} else {
			reply = result.Response()
		}

		if err := conn.WriteJSON(reply); err != nil {
			logger.Debug("websocket write failed", zap.Error(err))
			return
		}
	}
}

// classifyMessage recovers panics so the socket still gets its reply.
func (h *Handler) classifyMessage(ctx context.Context, msgType int, payload []byte) (result *classifier.Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			result = nil
			err = &classifier.Error{Kind: classifier.KindInference, Err: fmt.Errorf("%v", r)}
		}
	}()

	if msgType == websocket.BinaryMessage {
		return h.classifier.ClassifyBytes(ctx, payload)
	}
	return h.classifyText(ctx, string(payload))
}

func (h *Handler) classifyText(ctx context.Context, text string) (*classifier.Result, error) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "{") {
		return h.classifier.ClassifyBase64(ctx, text)
	}

	var req model.ClassifyRequest
	if err := json.Unmarshal([]byte(text), &req); err != nil {
		return nil, &classifier.Error{Kind: classifier.KindDecode, Err: err}
	}
	if req.Image == nil {
		return nil, &classifier.Error{Kind: classifier.KindDecode, Err: classifier.ErrMissingImage}
	}
	return h.classifier.ClassifyBase64(ctx, *req.Image)
}

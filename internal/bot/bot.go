package bot

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"

	"github.com/pilahsampah/waste-classifier/internal/classifier"
	"github.com/pilahsampah/waste-classifier/internal/waste"
)

const (
	msgStart = `👋 Halo! Kirim foto sampah dan saya akan menebak jenisnya.

📋 Perintah:
/labels - daftar jenis sampah yang dikenali
/help - bantuan`

	msgHelp = `ℹ️ Cara pakai:

1️⃣ Kirim foto satu jenis sampah
2️⃣ Bot mengklasifikasikan gambar
3️⃣ Anda menerima jenis, kategori, dan cara penanganannya

💡 Foto yang terang dengan latar polos memberi hasil terbaik.`

	msgSendPhoto       = "📸 Silakan kirim foto sampah untuk diklasifikasikan."
	msgUnknownCommand  = "❓ Perintah tidak dikenal. Gunakan /help."
	msgProcessingError = "⚠️ Gambar tidak dapat diproses. Coba kirim foto lain."
)

// Classifier is the part of classifier.Service the bot needs.
type Classifier interface {
	ClassifyBytes(ctx context.Context, data []byte) (*classifier.Result, error)
}

type Bot struct {
	api        *tgbotapi.BotAPI
	classifier Classifier
	httpClient *http.Client
	maxBytes   int64
	logger     *zap.Logger
}

func New(token string, svc Classifier, maxBytes int64, logger *zap.Logger) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, fmt.Errorf("telegram auth: %w", err)
	}

	logger = logger.Named("bot")
	logger.Info("authorized", zap.String("account", api.Self.UserName))

	return &Bot{
		api:        api,
		classifier: svc,
		httpClient: http.DefaultClient,
		maxBytes:   maxBytes,
		logger:     logger,
	}, nil
}

// Run consumes updates until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)
	for {
		select {
		case <-ctx.Done():
			b.api.StopReceivingUpdates()
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}
			b.handleMessage(ctx, update.Message)
		}
	}
}

func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.IsCommand() {
		b.sendMessage(msg.Chat.ID, commandReply(msg.Command()))
		return
	}

	fileID := imageFileID(msg)
	if fileID == "" {
		b.sendMessage(msg.Chat.ID, msgSendPhoto)
		return
	}

	data, err := b.downloadFile(ctx, fileID)
	if err != nil {
		b.logger.Warn("download photo", zap.Int64("chat_id", msg.Chat.ID), zap.Error(err))
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	result, err := b.classifier.ClassifyBytes(ctx, data)
	if err != nil {
		b.logger.Warn("classification failed",
			zap.Int64("chat_id", msg.Chat.ID),
			zap.Stringer("kind", classifier.KindOf(err)),
			zap.Error(err))
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	b.logger.Info("classified",
		zap.Int64("chat_id", msg.Chat.ID),
		zap.Stringer("label", result.Label),
		zap.Float32("confidence", result.Confidence))

	reply := tgbotapi.NewMessage(msg.Chat.ID, formatResult(result))
	reply.ReplyToMessageID = msg.MessageID
	if _, err := b.api.Send(reply); err != nil {
		b.logger.Warn("send message", zap.Error(err))
	}
}

func commandReply(cmd string) string {
	switch cmd {
	case "start":
		return msgStart
	case "help":
		return msgHelp
	case "labels":
		return formatLabels()
	default:
		return msgUnknownCommand
	}
}

// imageFileID picks the largest photo size, or an image sent as a document.
func imageFileID(msg *tgbotapi.Message) string {
	if len(msg.Photo) > 0 {
		return msg.Photo[len(msg.Photo)-1].FileID
	}
	if msg.Document != nil && strings.HasPrefix(msg.Document.MimeType, "image/") {
		return msg.Document.FileID
	}
	return ""
}

func (b *Bot) downloadFile(ctx context.Context, fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	if b.maxBytes > 0 && int64(file.FileSize) > b.maxBytes {
		return nil, fmt.Errorf("file is %d bytes, limit is %d", file.FileSize, b.maxBytes)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, file.Link(b.api.Token), nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := b.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %s", resp.Status)
	}

	return readLimited(resp.Body, b.maxBytes)
}

// readLimited reads r fully, failing once more than max bytes arrive.
// max <= 0 means no limit.
func readLimited(r io.Reader, max int64) ([]byte, error) {
	if max > 0 {
		r = io.LimitReader(r, max+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	if max > 0 && int64(len(data)) > max {
		return nil, fmt.Errorf("file exceeds %d bytes", max)
	}
	return data, nil
}

func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		b.logger.Warn("send message", zap.Error(err))
	}
}

func formatResult(r *classifier.Result) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "♻️ Jenis: %s (%.1f%%)\n", r.Label, r.Confidence*100)
	fmt.Fprintf(&sb, "🏷 Kategori: %s\n\n", r.Info.Kategori)
	fmt.Fprintf(&sb, "📝 %s\n\n", r.Info.Deskripsi)
	fmt.Fprintf(&sb, "🧹 Penanganan: %s", r.Info.Penanganan)
	return sb.String()
}

func formatLabels() string {
	var sb strings.Builder
	sb.WriteString("📋 Jenis sampah yang dikenali:\n")
	for _, l := range waste.Labels {
		fmt.Fprintf(&sb, "• %s - %s\n", l, l.Info().Kategori)
	}
	return strings.TrimRight(sb.String(), "\n")
}

// Package assistant forwards dashboard questions to a hosted
// chat-completion endpoint and streams the answer back. The dashboard
// summary travels inside the user turn so every answer stays grounded
// in the currently filtered view.
package assistant

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"

	"voc-dashboard-go/internal/logger"
)

const systemPrompt = `Anda adalah VIRA, seorang konsultan virtual untuk Bank BCA.
Tugas utama Anda adalah menganalisis data dasbor yang disediakan dan memberikan wawasan, ringkasan, serta saran yang relevan.
Fokuslah pada metrik seperti skor kesehatan (jika ada), tren, sentimen pelanggan, niat panggilan, dan volume panggilan berdasarkan data yang disaring.
Selalu dasarkan jawaban Anda pada data yang diberikan dalam ringkasan dasbor.
Gunakan bahasa Indonesia yang sopan dan mudah dimengerti.
Jika ada pertanyaan yang tidak dapat dijawab dari data dasbor, sampaikan dengan sopan bahwa informasi tersebut tidak tersedia dalam tampilan dasbor saat ini atau minta pengguna untuk memberikan detail lebih lanjut.
Berikan analisis yang ringkas namun mendalam.
Jika ada pertanyaan yang diluar konteks analisis anda, sampaikan bahwa itu diluar kapabilitas anda untuk menjelaskannya.
PENTING:
Sebelum memberikan jawaban akhir kepada pengguna, Anda BOLEH melakukan analisis internal atau "berpikir".
Jika Anda melakukan proses berpikir internal, JANGAN tuliskan pemikiran tersebut.
Jika tidak ada proses berpikir khusus atau analisis internal yang perlu dituliskan, langsung berikan jawaban.`

// Streamer answers one dashboard question. Chunks arrive on the
// returned channel as they are produced; channel close is the terminal
// state. A request-level failure yields exactly one apologetic message
// chunk instead of propagating. Cancelling ctx abandons the stream,
// which is how a new user query interrupts the previous one.
type Streamer interface {
	Ask(ctx context.Context, question, dashboardContext string) <-chan string
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
}

// Client is the OpenAI-compatible implementation. The original system
// ran against an NVIDIA-hosted endpoint; any base URL speaking the chat
// completions protocol works.
type Client struct {
	api   openai.Client
	model string
}

func New(cfg Config) *Client {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	return &Client{api: openai.NewClient(opts...), model: cfg.Model}
}

func userTurn(question, dashboardContext string) string {
	return fmt.Sprintf("%s\n\nPertanyaan Pengguna: %q", dashboardContext, question)
}

func apology(err error) string {
	return fmt.Sprintf("Maaf, terjadi kesalahan saat menghubungi layanan AI: %v. Silakan coba lagi nanti.", err)
}

func (c *Client) Ask(ctx context.Context, question, dashboardContext string) <-chan string {
	out := make(chan string, 16)
	go func() {
		defer close(out)
		log := logger.New().WithComponent("assistant")

		stream := c.api.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
			Model: openai.ChatModel(c.model),
			Messages: []openai.ChatCompletionMessageParamUnion{
				openai.SystemMessage(systemPrompt),
				openai.UserMessage(userTurn(question, dashboardContext)),
			},
			Temperature: openai.Float(0.5),
			TopP:        openai.Float(0.7),
			MaxTokens:   openai.Int(1024),
		})
		defer stream.Close()

		for stream.Next() {
			chunk := stream.Current()
			if len(chunk.Choices) == 0 {
				continue
			}
			delta := chunk.Choices[0].Delta.Content
			if delta == "" {
				continue
			}
			select {
			case out <- delta:
			case <-ctx.Done():
				return
			}
		}
		if err := stream.Err(); err != nil && ctx.Err() == nil {
			log.WithError(err).Warn("completion stream failed")
			select {
			case out <- apology(err):
			case <-ctx.Done():
			}
		}
	}()
	return out
}

// Mock is the offline implementation, enabled the same way the rest of
// the stack mocks its LLM (USE_MOCK_LLM=true). Deterministic on its
// inputs so tests can rely on it.
type Mock struct{}

func (Mock) Ask(ctx context.Context, question, dashboardContext string) <-chan string {
	out := make(chan string, 4)
	go func() {
		defer close(out)
		parts := []string{
			"Berdasarkan data dasbor saat ini, ",
			"berikut ringkasan yang dapat saya sampaikan.\n\n",
			dashboardContext,
			fmt.Sprintf("\n\nPertanyaan Anda: %q", question),
		}
		for _, p := range parts {
			select {
			case out <- p:
			case <-ctx.Done():
				return
			}
		}
	}()
	return out
}

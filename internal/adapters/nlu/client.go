// internal/adapters/nlu/client.go
package nlu

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"stayfinder/internal/adapters/observability"
)

// systemPrompt instructs the backend to answer with a bare JSON object of
// extracted attributes. Turkish, because the query corpus is Turkish.
const systemPrompt = `Sen Türkiye'de konaklama arama konusunda uzman bir asistansın.
Kullanıcının Türkçe doğal dil sorgusunu analiz edip yapılandırılmış filtre verileri çıkar.

Çıkarman gereken alanlar:
- city: şehir (örn: İstanbul, Antalya, Bodrum, Kapadokya)
- district: ilçe/bölge (örn: Beşiktaş, Kaleiçi, Göreme)
- price_min: minimum fiyat (TL)
- price_max: maximum fiyat (TL)
- guest_count: misafir sayısı
- property_type: konaklama tipi (otel, villa, apart, bungalov, resort, butik otel, pansiyon)
- features: özellikler listesi (havuzlu, denize sıfır, spa, jakuzi, şömine, WiFi, balkon, kahvaltı dahil)
- check_in_date: giriş tarihi (örn: "2 Eylül", "2025-09-02")
- check_out_date: çıkış tarihi (örn: "5 Eylül", "2025-09-05")

Sorguda geçmeyen alanlar için null kullan. SADECE JSON formatında cevap ver, başka metin ekleme.`

var (
	ErrUnauthorized = errors.New("nlu: unauthorized")
	ErrForbidden    = errors.New("nlu: forbidden")
)

// Client speaks the OpenAI-compatible chat completions protocol. Calls are
// client-side rate limited and never retried: a single failure surfaces to
// the interpreter, which owns the decision to retry the whole pipeline.
type Client struct {
	base  string
	key   string
	model string
	hc    *http.Client
	rl    *rate.Limiter
}

func New(base, key, model string, rps int, timeout time.Duration) (*Client, error) {
	if key == "" {
		return nil, fmt.Errorf("API key is required")
	}
	if rps <= 0 {
		rps = 5
	}
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Client{
		base:  strings.TrimRight(base, "/"),
		key:   key,
		model: model,
		hc:    &http.Client{Timeout: timeout},
		rl:    rate.NewLimiter(rate.Limit(rps), rps),
	}, nil
}

type chatRequest struct {
	Model          string        `json:"model"`
	Messages       []chatMessage `json:"messages"`
	Temperature    float64       `json:"temperature"`
	ResponseFormat *respFormat   `json:"response_format,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type respFormat struct {
	Type string `json:"type"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// ExtractFilters asks the backend for the structured attributes of query and
// returns the raw (schema-checked) JSON object. Mapping into the Filter shape
// is the interpreter's job.
func (c *Client) ExtractFilters(ctx context.Context, query string) (map[string]any, error) {
	if err := c.rl.Wait(ctx); err != nil {
		return nil, err
	}

	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: query},
		},
		Temperature:    0.1,
		ResponseFormat: &respFormat{Type: "json_object"},
	}
	b, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.base+"/chat/completions", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.key)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "stayfinder/1.0")

	start := time.Now()
	resp, err := c.hc.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		observability.ObserveExternal("nlu", "chat_completions", 0, time.Since(start))
		return nil, err
	}
	defer resp.Body.Close()
	observability.ObserveExternal("nlu", "chat_completions", resp.StatusCode, time.Since(start))

	switch resp.StatusCode {
	case http.StatusOK:
		// fall through to decode
	case http.StatusUnauthorized:
		return nil, ErrUnauthorized
	case http.StatusForbidden:
		return nil, ErrForbidden
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("bad status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var cr chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cr); err != nil {
		return nil, fmt.Errorf("decode chat response: %w", err)
	}
	if len(cr.Choices) == 0 {
		return nil, errors.New("empty completion")
	}

	raw, err := ExtractJSON(cr.Choices[0].Message.Content)
	if err != nil {
		return nil, fmt.Errorf("no JSON object in completion: %w", err)
	}
	var payload map[string]any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("unmarshal completion JSON: %w", err)
	}
	if err := validatePayload(payload); err != nil {
		return nil, fmt.Errorf("completion failed schema check: %w", err)
	}
	return payload, nil
}

package chatservice

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/nvquang/libsys/pkg/clients"
	"github.com/nvquang/libsys/pkg/mathexpr"
	"go.uber.org/zap"
)

var ErrUpstream = errors.New("chat upstream unavailable")

type upstreamRequest struct {
	Prompt string `json:"prompt"`
}

type upstreamResponse struct {
	Reply string `json:"reply"`
}

type Service struct {
	client      clients.HTTPClientI
	upstreamURL string
}

func New(client clients.HTTPClientI, upstreamURL string) *Service {
	return &Service{
		client:      client,
		upstreamURL: upstreamURL,
	}
}

// Ask forwards the prompt to the chat upstream and rewrites any
// calc(...) spans in the reply with their computed value. The upstream
// is a language model: its arithmetic is unreliable, so it is told to
// emit calc() markers instead of doing the math itself.
func (s *Service) Ask(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(upstreamRequest{Prompt: prompt})
	if err != nil {
		return "", err
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	statusCode, respBody, _, err := s.client.Post(s.upstreamURL+"/api/chat", headers, body)
	if err != nil {
		zap.L().Error("chat upstream request failed", zap.Error(err))
		return "", ErrUpstream
	}
	if statusCode != http.StatusOK {
		zap.L().Error("chat upstream returned error", zap.Int("status", statusCode))
		return "", ErrUpstream
	}

	var resp upstreamResponse
	if err := json.Unmarshal(respBody, &resp); err != nil {
		zap.L().Error("can't decode chat upstream response", zap.Error(err))
		return "", ErrUpstream
	}

	return expandCalcSpans(resp.Reply), nil
}

// expandCalcSpans replaces every calc(expr) span with the evaluated
// expr. Spans that fail to parse are left untouched.
func expandCalcSpans(reply string) string {
	const marker = "calc("

	var b strings.Builder
	rest := reply
	for {
		idx := strings.Index(rest, marker)
		if idx < 0 {
			b.WriteString(rest)
			return b.String()
		}
		b.WriteString(rest[:idx])

		span := rest[idx:]
		end := matchingParen(span, len(marker)-1)
		if end < 0 {
			b.WriteString(span)
			return b.String()
		}

		expr := span[len(marker):end]
		value, err := mathexpr.Eval(expr)
		if err != nil {
			b.WriteString(span[:end+1])
		} else {
			b.WriteString(formatNumber(value))
		}
		rest = span[end+1:]
	}
}

// matchingParen returns the index of the parenthesis closing the one at
// open, or -1 if unbalanced.
func matchingParen(s string, open int) int {
	depth := 0
	for i := open; i < len(s); i++ {
		switch s[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func formatNumber(value float64) string {
	if value == float64(int64(value)) {
		return strconv.FormatInt(int64(value), 10)
	}
	return fmt.Sprintf("%g", value)
}

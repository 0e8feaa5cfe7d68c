package ai

import (
	"context"
	"net"
	"net/http"
	"syscall"

	"github.com/alibigame/alibi/internal/errors"
	"github.com/sashabaranov/go-openai"
)

// Humanized messages for the error classes the client can act on.
const (
	msgTryAgain      = "The AI service took too long to respond. Please try again."
	msgRateLimited   = "The AI service is rate limiting us. Please wait a moment and try again."
	msgBadCredential = "The AI service credential is not configured correctly. Contact the server operator."
	msgBadRequest    = "The request sent to the AI service was malformed."
	msgGeneric       = "Failed to get a response from the AI service."
)

// Classify maps a backend failure to a human-readable message surfaced next
// to the raw error details. Timeouts and connection resets read as retryable;
// the HTTP classes follow the upstream status code.
func Classify(err error) string {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) {
		switch apiErr.HTTPStatusCode {
		case http.StatusTooManyRequests:
			return msgRateLimited
		case http.StatusUnauthorized:
			return msgBadCredential
		case http.StatusBadRequest:
			return msgBadRequest
		}
		return msgGeneric
	}

	if errors.Is(err, context.DeadlineExceeded) {
		return msgTryAgain
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return msgTryAgain
	}
	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ECONNREFUSED) {
		return msgTryAgain
	}

	return msgGeneric
}

package hovercode

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// SignatureHeader is the request header carrying the webhook signature.
const SignatureHeader = "X-Signature"

const invalidSignatureMessage = "Invalid webhook signature."

// ComputeSignature returns the lowercase hex HMAC-SHA256 of payload keyed
// with secret.
func ComputeSignature(secret string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(payload)
	return hex.EncodeToString(mac.Sum(nil))
}

// VerifySignature reports whether received is the signature of payload.
// Surrounding whitespace in received is ignored. The comparison runs in
// constant time.
func VerifySignature(secret string, payload []byte, received string) bool {
	expected := ComputeSignature(secret, payload)
	return hmac.Equal([]byte(expected), []byte(strings.TrimSpace(received)))
}

// VerifySignatureOrError is VerifySignature returning a
// *WebhookSignatureError on mismatch.
func VerifySignatureOrError(secret string, payload []byte, received string) error {
	if !VerifySignature(secret, payload, received) {
		return &WebhookSignatureError{Message: invalidSignatureMessage}
	}
	return nil
}

// VerifyRequest reads the raw body of a webhook request and verifies it
// against the X-Signature header. The body is restored on r so handlers can
// decode it afterwards, and is also returned.
//
// Example:
//
//	func handleScan(w http.ResponseWriter, r *http.Request) {
//	    body, err := hovercode.VerifyRequest(r, os.Getenv("HOVERCODE_WEBHOOK_SECRET"))
//	    if err != nil {
//	        http.Error(w, "invalid signature", http.StatusUnauthorized)
//	        return
//	    }
//	    // decode body
//	}
func VerifyRequest(r *http.Request, secret string) ([]byte, error) {
	if r.Body == nil {
		return nil, &WebhookSignatureError{Message: invalidSignatureMessage}
	}
	body, err := io.ReadAll(r.Body)
	r.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("read webhook body: %w", err)
	}
	r.Body = io.NopCloser(bytes.NewReader(body))

	if err := VerifySignatureOrError(secret, body, r.Header.Get(SignatureHeader)); err != nil {
		return nil, err
	}
	return body, nil
}

package payments

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strings"
)

// SignatureHeader is the HTTP header carrying the webhook signature.
const SignatureHeader = "X-Payment-Signature"

var (
	ErrMissingSignature   = errors.New("missing signature header")
	ErrMalformedSignature = errors.New("malformed signature header")
	ErrInvalidSignature   = errors.New("signature verification failed")
)

// VerifyWebhookSignature authenticates a payment webhook delivery. The
// header carries `ts=<unix>,v1=<hex>` where v1 is HMAC-SHA256 over
// "<ts>.<raw body>" keyed with the shared webhook secret. The body must be
// the raw bytes as delivered; any re-serialization upstream breaks the
// digest.
func VerifyWebhookSignature(payload []byte, header, secret string) error {
	if strings.TrimSpace(header) == "" {
		return ErrMissingSignature
	}

	var ts, v1 string
	for _, part := range strings.Split(header, ",") {
		key, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			return ErrMalformedSignature
		}
		switch key {
		case "ts":
			ts = value
		case "v1":
			v1 = value
		}
	}
	if ts == "" || v1 == "" {
		return ErrMalformedSignature
	}

	expected, err := hex.DecodeString(v1)
	if err != nil {
		return ErrMalformedSignature
	}

	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)

	if !hmac.Equal(mac.Sum(nil), expected) {
		return ErrInvalidSignature
	}
	return nil
}

// SignWebhookPayload produces a header VerifyWebhookSignature accepts. Used
// by tests and local tooling that replays processor callbacks.
func SignWebhookPayload(payload []byte, ts, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(ts))
	mac.Write([]byte("."))
	mac.Write(payload)
	return "ts=" + ts + ",v1=" + hex.EncodeToString(mac.Sum(nil))
}

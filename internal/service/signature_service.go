package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"strconv"
	"strings"
	"time"
)

// Webhook signature header errors.
var (
	ErrSignatureMalformed = errors.New("signature header malformed")
	ErrSignatureStale     = errors.New("signature timestamp outside tolerance")
	ErrSignatureMismatch  = errors.New("signature mismatch")
)

// HMACSignatureService implements ports.SignatureService using HMAC-SHA256.
// Webhook deliveries sign SignedContent, so a captured body cannot be
// replayed with a fresh timestamp.
type HMACSignatureService struct{}

// NewHMACSignatureService creates a new HMAC-SHA256 signature service.
func NewHMACSignatureService() *HMACSignatureService {
	return &HMACSignatureService{}
}

// Sign computes HMAC-SHA256 of payload using secretKey as lowercase hex.
func (s *HMACSignatureService) Sign(secretKey string, payload string) string {
	mac := hmac.New(sha256.New, []byte(secretKey))
	mac.Write([]byte(payload))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify checks signature against HMAC-SHA256(secretKey, payload) in
// constant time.
func (s *HMACSignatureService) Verify(secretKey string, payload string, signature string) bool {
	expected := s.Sign(secretKey, payload)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// VerifyHeader checks a webhook signature header of the form
// "t=<unix>,v1=<hex>" against the raw event JSON. Receivers call it with
// their own clock; timestamps further than tolerance from now are refused.
func (s *HMACSignatureService) VerifyHeader(secretKey string, body []byte, header string, tolerance time.Duration, now time.Time) error {
	ts, sig, err := parseSignatureHeader(header)
	if err != nil {
		return err
	}
	skew := now.Sub(time.Unix(ts, 0))
	if skew < 0 {
		skew = -skew
	}
	if tolerance > 0 && skew > tolerance {
		return ErrSignatureStale
	}
	if !s.Verify(secretKey, SignedContent(ts, body), sig) {
		return ErrSignatureMismatch
	}
	return nil
}

// SignedContent is the string a webhook signature covers.
func SignedContent(ts int64, body []byte) string {
	return strconv.FormatInt(ts, 10) + "." + string(body)
}

// FormatSignatureHeader renders the value of HeaderWebhookSignature.
func FormatSignatureHeader(ts int64, signature string) string {
	return "t=" + strconv.FormatInt(ts, 10) + ",v1=" + signature
}

func parseSignatureHeader(header string) (int64, string, error) {
	var (
		ts    int64
		sig   string
		haveT bool
	)
	for _, part := range strings.Split(header, ",") {
		k, v, ok := strings.Cut(strings.TrimSpace(part), "=")
		if !ok {
			return 0, "", ErrSignatureMalformed
		}
		switch k {
		case "t":
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				return 0, "", ErrSignatureMalformed
			}
			ts, haveT = n, true
		case "v1":
			sig = v
		}
	}
	if !haveT || sig == "" {
		return 0, "", ErrSignatureMalformed
	}
	return ts, sig, nil
}

// internal/slackauth/verify.go
package slackauth

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"log"
	"strconv"
	"time"
)

// MaxClockSkew is the replay window: requests whose timestamp differs from the
// server clock by more than this are rejected regardless of signature.
const MaxClockSkew = 5 * time.Minute

// Verifier checks Slack request signatures (the "v0" signing scheme).
type Verifier struct {
	Secret string

	// Now is the clock used for the replay-window check, set by NewVerifier.
	// Overridable in tests.
	Now func() time.Time
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{Secret: secret, Now: time.Now}
}

// Verify reports whether the request genuinely came from Slack and is fresh.
// body must be the raw request body, exactly as received; timestamp and
// signature come from the X-Slack-Request-Timestamp and X-Slack-Signature
// headers. Stateless, no side effects.
func (v *Verifier) Verify(body []byte, timestamp, signature string) bool {
	if v.Secret == "" {
		// Development bypass: without a signing secret there is nothing to
		// verify against. Accept, but loudly.
		log.Printf("WARNING: signature verification skipped (SLACK_SIGNING_SECRET not set)")
		return true
	}

	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return false
	}

	// Compare in whole seconds: converting an attacker-supplied skew into a
	// nanosecond Duration can wrap around for extreme timestamps. Negating
	// math.MinInt64 leaves it negative, so a negative skew after the flip
	// also means out of range.
	skew := v.Now().Unix() - ts
	if skew < 0 {
		skew = -skew
	}
	if skew < 0 || skew > int64(MaxClockSkew/time.Second) {
		return false
	}

	mac := hmac.New(sha256.New, []byte(v.Secret))
	mac.Write([]byte("v0:" + timestamp + ":"))
	mac.Write(body)
	expected := "v0=" + hex.EncodeToString(mac.Sum(nil))

	// hmac.Equal, not ==: comparison must not short-circuit.
	return hmac.Equal([]byte(expected), []byte(signature))
}

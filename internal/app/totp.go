package app

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base32"
	"encoding/binary"
	"fmt"
	"strings"
	"time"
)

// totpDigits and totpPeriod follow the common authenticator defaults.
const (
	totpDigits = 6
	totpPeriod = 30
)

// timeNow is swapped out by tests.
var timeNow = time.Now

// totpCode computes the time-based one-time password for a base32 secret
// at the given moment, per RFC 6238 with the SHA-1 default.
func totpCode(secret string, at time.Time) (string, error) {
	normalized := strings.ToUpper(strings.ReplaceAll(secret, " ", ""))
	key, err := base32.StdEncoding.WithPadding(base32.NoPadding).DecodeString(strings.TrimRight(normalized, "="))
	if err != nil {
		return "", fmt.Errorf("decoding TOTP secret: %w", err)
	}

	counter := uint64(at.Unix()) / totpPeriod
	var msg [8]byte
	binary.BigEndian.PutUint64(msg[:], counter)

	mac := hmac.New(sha1.New, key)
	mac.Write(msg[:])
	sum := mac.Sum(nil)

	offset := sum[len(sum)-1] & 0x0f
	code := binary.BigEndian.Uint32(sum[offset:offset+4]) & 0x7fffffff

	mod := uint32(1)
	for i := 0; i < totpDigits; i++ {
		mod *= 10
	}
	return fmt.Sprintf("%0*d", totpDigits, code%mod), nil
}

// totpRemaining returns the seconds until the current code rotates.
func totpRemaining(at time.Time) int {
	return totpPeriod - int(at.Unix()%totpPeriod)
}

package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// ComputeSignature returns hex(HMAC-SHA256(secret, orderID + "|" + paymentID)).
func ComputeSignature(secret, orderID, paymentID string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// signatureMatches compares in constant time; case and length must match exactly.
func signatureMatches(expected, supplied string) bool {
	return hmac.Equal([]byte(expected), []byte(supplied))
}

package utils

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// HashString computes an HMAC-SHA256 signature over the given string
// using the provided hash key and returns the result as a hex-encoded string.
//
// Example usage:
//
//	signature := utils.HashString("some data", "my-secret-key")
func HashString(data string, hashKey string) string {
	return hex.EncodeToString(hashString([]byte(data), hashKey))
}

// SignValue appends the hex HMAC of value: "<value>.<signature>".
// Used for cookie values that must not be forged.
func SignValue(value, hashKey string) string {
	return value + "." + HashString(value, hashKey)
}

// UnsignValue verifies a value produced by SignValue and returns the
// original value. The signature is compared in constant time.
func UnsignValue(signed, hashKey string) (string, bool) {
	dot := strings.LastIndexByte(signed, '.')
	if dot <= 0 || dot == len(signed)-1 {
		return "", false
	}
	value, signature := signed[:dot], signed[dot+1:]

	got, err := hex.DecodeString(signature)
	if err != nil {
		return "", false
	}

	if !hmac.Equal(got, hashString([]byte(value), hashKey)) {
		return "", false
	}
	return value, true
}

// hashString computes an HMAC-SHA256 digest over the given byte slice
// using the provided hash key.
func hashString(data []byte, hashKey string) []byte {
	hasher := hmac.New(sha256.New, []byte(hashKey))
	hasher.Write(data)
	return hasher.Sum(nil)
}

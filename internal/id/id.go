// Package id generates record identifiers.
//
// Two kinds are used: short random ids for root records (posts, comments,
// reports) and deterministic ids for records whose identity IS a uniqueness
// key. A Like's id is derived from its (postID, userID) pair, so inserting
// the same like twice collides on the primary key at the storage layer --
// a check-then-insert race turns into a rejected duplicate instead of a
// double insert.
package id

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// shortLen keeps ids URL-safe and short while leaving collision probability
// negligible for this workload (62^11 > 2^64).
const shortLen = 11

// New returns a short random base62 identifier.
func New() string {
	buf := make([]byte, shortLen)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = alphabet[int(b)%len(alphabet)]
	}
	return string(buf)
}

// ForLike derives the deterministic identifier for a like on postID by userID.
// Both orders of concatenation hash differently, so the separator guards
// against ambiguous pairs like ("ab","c") vs ("a","bc").
func ForLike(postID, userID string) string {
	sum := sha256.Sum256([]byte(postID + "\x00" + userID))
	return base64.RawURLEncoding.EncodeToString(sum[:16])
}

package sms

import "math/rand"

// NewCode samples 6 distinct digits from 0-9 without replacement, so a
// code never repeats a digit.
func NewCode() string {
	digits := []byte("0123456789")
	rand.Shuffle(len(digits), func(i, j int) {
		digits[i], digits[j] = digits[j], digits[i]
	})
	return string(digits[:6])
}

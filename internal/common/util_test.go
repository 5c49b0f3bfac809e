package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRandByteArray(t *testing.T) {
	a := GenerateRandByteArray(16)
	b := GenerateRandByteArray(16)

	assert.Len(t, a, 16)
	assert.Len(t, b, 16)
	if string(a) == string(b) {
		t.Logf("two random salts are identical; extremely unlikely")
	}
}

func TestWipeByteArray(t *testing.T) {
	buf := []byte("Secret1!")
	WipeByteArray(buf)
	assert.Equal(t, make([]byte, 8), buf)

	WipeByteArray(nil)
}

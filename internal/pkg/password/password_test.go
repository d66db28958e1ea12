package password

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashAndVerify(t *testing.T) {
	hash, err := Hash("correct horse battery staple", 4)
	assert.NoError(t, err)
	assert.NotContains(t, hash, "correct horse", "hash must not embed the plaintext")

	assert.True(t, Verify("correct horse battery staple", hash))
	assert.False(t, Verify("wrong password", hash))
}

func TestHashesAreSalted(t *testing.T) {
	first, err := Hash("same password", 4)
	assert.NoError(t, err)
	second, err := Hash("same password", 4)
	assert.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, Verify("same password", first))
	assert.True(t, Verify("same password", second))
}

func TestVerifyMalformedHash(t *testing.T) {
	assert.False(t, Verify("anything", "not-a-bcrypt-hash"))
}

func TestHashOutOfRangeCostFallsBack(t *testing.T) {
	hash, err := Hash("pw", 99)
	assert.NoError(t, err)
	assert.True(t, Verify("pw", hash))
}

package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	encoded, err := Hash("correct horse")
	require.NoError(t, err)

	parts := strings.Split(encoded, "$")
	require.Len(t, parts, 3)
	assert.Equal(t, Algorithm, parts[0])
	assert.Len(t, parts[1], saltBytes*2)
	assert.Len(t, parts[2], keyLength*2)

	assert.True(t, Verify("correct horse", encoded))
	assert.False(t, Verify("wrong horse", encoded))
}

func TestHash_SaltsDiffer(t *testing.T) {
	a, err := Hash("same")
	require.NoError(t, err)
	b, err := Hash("same")
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
	assert.True(t, Verify("same", a))
	assert.True(t, Verify("same", b))
}

func TestVerify_Malformed(t *testing.T) {
	valid, err := Hash("secret")
	require.NoError(t, err)

	tests := []struct {
		name    string
		encoded string
	}{
		{"empty", ""},
		{"unusable marker", Unusable},
		{"missing digest", "pbkdf2_sha256$abc"},
		{"empty salt", "pbkdf2_sha256$$abcdef"},
		{"wrong algorithm", strings.Replace(valid, Algorithm, "bcrypt", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				assert.False(t, Verify("secret", tt.encoded))
			})
		})
	}
}

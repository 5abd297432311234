package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestEncodeDecodeToken(t *testing.T) {
	date := time.Date(2024, 12, 5, 11, 30, 45, 123456789, time.UTC)
	id := "f2a0c1de-8a40-4f1e-9b6c-2f4f2f9be1aa"

	token := EncodeToken(date, id)
	assert.NotEmpty(t, token, "Token should not be empty")

	decodedDate, decodedID, err := DecodeToken(token)
	assert.NoError(t, err, "Decoding should not return an error")
	assert.Equal(t, date, decodedDate, "Date should match after decode")
	assert.Equal(t, id, decodedID, "ID should match after decode")
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := DecodeToken("not base64 at all!!!")
	assert.Error(t, err)

	// Valid base64 but missing the separator.
	_, _, err = DecodeToken("aGVsbG8=")
	assert.Error(t, err)
}

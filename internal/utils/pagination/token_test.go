package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	recordDate := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2025, 6, 15, 10, 30, 45, 123456789, time.UTC)

	token := EncodeToken(recordDate, createdAt)
	gotDate, gotCreated, err := DecodeToken(token)

	require.NoError(t, err)
	assert.True(t, recordDate.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreated))
}

func TestDecodeToken_Invalid(t *testing.T) {
	_, _, err := DecodeToken("not-base64!!")
	assert.Error(t, err)

	_, _, err = DecodeToken("bm8tc2VwYXJhdG9y") // "no-separator"
	assert.Error(t, err)
}

func TestDateBasedTokenRoundTrip(t *testing.T) {
	date := time.Date(2025, 8, 1, 12, 0, 0, 0, time.UTC)

	got, err := DecodeDateBasedToken(EncodeDateBasedToken(date))

	require.NoError(t, err)
	assert.True(t, date.Equal(got))
}

package pagination

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	date := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	createdAt := time.Date(2024, 3, 15, 12, 30, 45, 123456789, time.UTC)

	token := EncodeCursor(date, createdAt, "txn-42")

	gotDate, gotCreatedAt, gotID, err := DecodeCursor(token)
	require.NoError(t, err)
	assert.True(t, date.Equal(gotDate))
	assert.True(t, createdAt.Equal(gotCreatedAt))
	assert.Equal(t, "txn-42", gotID)
}

func TestDecodeCursor_NotBase64(t *testing.T) {
	_, _, _, err := DecodeCursor("not-base64!!!")
	assert.Error(t, err)
}

func TestDecodeCursor_WrongFieldCount(t *testing.T) {
	token := EncodeCursor(time.Now(), time.Now(), "")
	_, _, _, err := DecodeCursor(token)
	assert.Error(t, err)
}

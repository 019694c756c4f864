package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestParseIDRoundTrip(t *testing.T) {
	oid := primitive.NewObjectID()
	got, err := ParseID(oid.Hex())
	require.NoError(t, err)
	assert.Equal(t, oid, got)
}

func TestParseIDMalformed(t *testing.T) {
	for _, id := range []string{"", "nope", "12345", "zzzzzzzzzzzzzzzzzzzzzzzz"} {
		_, err := ParseID(id)
		assert.ErrorIs(t, err, ErrInvalidID, "id=%q", id)
	}
}

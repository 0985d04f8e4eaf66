package pg

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNormalizeID(t *testing.T) {
	id := uuid.MustParse("7f1c9c8e-52b4-4d4e-9a57-3d1f2f6a0b11")

	assert.Equal(t, id.String(), normalizeID([16]byte(id)))
	assert.Equal(t, id.String(), normalizeID(id))
	assert.Equal(t, "acc-1", normalizeID([]byte("acc-1")))
	assert.Equal(t, int64(7), normalizeID(int64(7)))
	assert.Equal(t, "x", normalizeID("x"))
	assert.Nil(t, normalizeID(nil))
}

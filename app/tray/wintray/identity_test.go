//go:build windows

package wintray

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuidFromUUIDFieldOrder(t *testing.T) {
	id, err := uuid.Parse("00112233-4455-6677-8899-aabbccddeeff")
	require.NoError(t, err)

	g := guidFromUUID(id)
	assert.Equal(t, uint32(0x00112233), g.Data1)
	assert.Equal(t, uint16(0x4455), g.Data2)
	assert.Equal(t, uint16(0x6677), g.Data3)
	assert.Equal(t, [8]byte{0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}, g.Data4)
}

func TestGUIDSourceStableUntilInvalidated(t *testing.T) {
	s := newGUIDSource()
	first := s.Resolve()
	assert.Equal(t, first, s.Resolve())

	s.Invalidate()
	assert.NotEqual(t, first, s.Resolve())
}

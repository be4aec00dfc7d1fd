//go:build windows

package wintray

import (
	"encoding/binary"

	"github.com/google/uuid"
	"golang.org/x/sys/windows"
)

// guidSource implements notifyicon.IdentitySource. The identity is stable
// for the life of the process; Invalidate swaps in a fresh one when the
// shell refuses the current identity.
type guidSource struct {
	id uuid.UUID
}

func newGUIDSource() *guidSource {
	return &guidSource{id: uuid.New()}
}

func (s *guidSource) Resolve() uuid.UUID {
	return s.id
}

func (s *guidSource) Invalidate() {
	s.id = uuid.New()
}

// guidFromUUID converts a big-endian RFC 4122 UUID into the mixed-endian
// field layout of a Windows GUID.
func guidFromUUID(id uuid.UUID) windows.GUID {
	g := windows.GUID{
		Data1: binary.BigEndian.Uint32(id[0:4]),
		Data2: binary.BigEndian.Uint16(id[4:6]),
		Data3: binary.BigEndian.Uint16(id[6:8]),
	}
	copy(g.Data4[:], id[8:16])
	return g
}

// internal/device/encoding.go
package device

import "encoding/binary"

// Encoding is one supported channel wire encoding.
// The set of implementations is closed: each variant owns its byte width and
// its big-endian extraction, so an unsupported width cannot be declared.
type Encoding interface {
	// ByteLen is the number of frame bytes the value occupies.
	ByteLen() int

	// extract reads the raw unsigned value at the start of b.
	// b MUST hold at least ByteLen() bytes.
	extract(b []byte) uint64
}

// U8 is an unsigned 8-bit value.
type U8 struct{}

// U16 is an unsigned 16-bit big-endian value.
type U16 struct{}

// U32 is an unsigned 32-bit big-endian value.
type U32 struct{}

func (U8) ByteLen() int  { return 1 }
func (U16) ByteLen() int { return 2 }
func (U32) ByteLen() int { return 4 }

func (U8) extract(b []byte) uint64  { return uint64(b[0]) }
func (U16) extract(b []byte) uint64 { return uint64(binary.BigEndian.Uint16(b)) }
func (U32) extract(b []byte) uint64 { return uint64(binary.BigEndian.Uint32(b)) }

// Package settings persists the motion controller's durable fields as a
// small versioned binary record.
package settings

import (
	"encoding/binary"

	"coildrive/core"
)

// Record layout, version 1 (little-endian):
//
//	[0]     version
//	[1:5]   position, int32
//	[5]     scheme index
//	[6:10]  tick period in microseconds, uint32
//	[10:12] CRC16 of bytes 0..9
const (
	recordVersion = 1
	recordSize    = 12
)

// Encode serializes the settings into a fresh record.
func Encode(s core.MotionSettings) []byte {
	b := make([]byte, recordSize)
	b[0] = recordVersion
	binary.LittleEndian.PutUint32(b[1:5], uint32(s.Position))
	b[5] = s.SchemeIndex
	binary.LittleEndian.PutUint32(b[6:10], s.TickPeriodUS)
	binary.LittleEndian.PutUint16(b[10:12], crc16(b[:10]))
	return b
}

// Decode parses a record, reporting whether it was valid. Size, version and
// checksum mismatches all read as "no record"; the caller falls back to
// defaults.
func Decode(b []byte) (core.MotionSettings, bool) {
	if len(b) != recordSize || b[0] != recordVersion {
		return core.MotionSettings{}, false
	}
	if binary.LittleEndian.Uint16(b[10:12]) != crc16(b[:10]) {
		return core.MotionSettings{}, false
	}
	return core.MotionSettings{
		Position:     int32(binary.LittleEndian.Uint32(b[1:5])),
		SchemeIndex:  b[5],
		TickPeriodUS: binary.LittleEndian.Uint32(b[6:10]),
	}, true
}

package activity

import "math"

// Invalid values defined by the FIT base types.
const (
	Sint8Invalid  int8   = math.MaxInt8
	Uint8Invalid  uint8  = math.MaxUint8
	Uint16Invalid uint16 = math.MaxUint16
	Sint32Invalid int32  = math.MaxInt32
	Uint32Invalid uint32 = math.MaxUint32
)

// OptionalSint8 returns nil when v is the sint8 sentinel
func OptionalSint8(v int8) *int8 {
	if v == Sint8Invalid {
		return nil
	}
	return &v
}

// OptionalUint8 returns nil when v is the uint8 sentinel
func OptionalUint8(v uint8) *uint8 {
	if v == Uint8Invalid {
		return nil
	}
	return &v
}

// OptionalUint16 returns nil when v is the uint16 sentinel
func OptionalUint16(v uint16) *uint16 {
	if v == Uint16Invalid {
		return nil
	}
	return &v
}

// OptionalSint32 returns nil when v is the sint32 sentinel
func OptionalSint32(v int32) *int32 {
	if v == Sint32Invalid {
		return nil
	}
	return &v
}

// OptionalUint32 returns nil when v is the uint32 (and date_time) sentinel
func OptionalUint32(v uint32) *uint32 {
	if v == Uint32Invalid {
		return nil
	}
	return &v
}

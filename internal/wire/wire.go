// Package wire frames render-memo payloads so corrupt or foreign entries in
// a shared byte store are detected and discarded instead of being decoded.
// The embedded fingerprint lets the reader verify an entry still belongs to
// the key it was fetched under.
package wire

import (
	"bytes"
	"encoding/binary"
	"errors"
)

const version byte = 1

var (
	ErrCorrupt = errors.New("folicon: corrupt memo entry")
	magic4     = [...]byte{'F', 'L', 'C', 'N'}
)

func hasMagic(b []byte) bool {
	return len(b) >= 4 && bytes.Equal(b[:4], magic4[:])
}

// Frame: magic(4) | ver(1) | flen(u16 be) | fingerprint(flen) | vlen(u32 be) | payload(vlen)
func Encode(fingerprint string, payload []byte) []byte {
	var buf bytes.Buffer
	buf.Grow(4 + 1 + 2 + len(fingerprint) + 4 + len(payload))

	buf.Write(magic4[:])
	buf.WriteByte(version)

	var u2 [2]byte
	var u4 [4]byte

	binary.BigEndian.PutUint16(u2[:], uint16(len(fingerprint)))
	buf.Write(u2[:])
	buf.WriteString(fingerprint)

	binary.BigEndian.PutUint32(u4[:], uint32(len(payload)))
	buf.Write(u4[:])
	buf.Write(payload)
	return buf.Bytes()
}

func Decode(b []byte) (fingerprint string, payload []byte, err error) {
	const hdr = 4 + 1 + 2
	if len(b) < hdr || !hasMagic(b) || b[4] != version {
		return "", nil, ErrCorrupt
	}

	off := 5
	flen := int(binary.BigEndian.Uint16(b[off : off+2]))
	off += 2
	if flen > len(b)-off {
		return "", nil, ErrCorrupt
	}
	fingerprint = string(b[off : off+flen])
	off += flen

	if off+4 > len(b) {
		return "", nil, ErrCorrupt
	}
	vlen := int(binary.BigEndian.Uint32(b[off : off+4]))
	off += 4
	if vlen < 0 || vlen > len(b)-off { // overflow-safe bound check
		return "", nil, ErrCorrupt
	}

	return fingerprint, b[off : off+vlen], nil
}

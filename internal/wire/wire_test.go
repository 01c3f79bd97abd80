package wire

import (
	"bytes"
	"errors"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	payload := []byte("rendered set bytes")
	framed := Encode("render:deadbeef", payload)

	fp, got, err := Decode(framed)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if fp != "render:deadbeef" {
		t.Fatalf("fingerprint = %q", fp)
	}
	if !bytes.Equal(got, payload) {
		t.Fatalf("payload = %q", got)
	}
}

func TestRoundTripEmptyPayload(t *testing.T) {
	fp, got, err := Decode(Encode("render:00", nil))
	if err != nil || fp != "render:00" || len(got) != 0 {
		t.Fatalf("fp=%q payload=%v err=%v", fp, got, err)
	}
}

func TestDecodeCorrupt(t *testing.T) {
	good := Encode("render:aa", []byte("payload"))

	cases := map[string][]byte{
		"empty":        nil,
		"short":        good[:3],
		"bad magic":    append([]byte("XXXX"), good[4:]...),
		"bad version":  append(append([]byte{}, good[:4]...), append([]byte{99}, good[5:]...)...),
		"cut off fp":   good[:6],
		"cut payload":  good[:len(good)-3],
		"no value len": good[:4+1+2+len("render:aa")+2],
	}
	for name, b := range cases {
		if _, _, err := Decode(b); !errors.Is(err, ErrCorrupt) {
			t.Errorf("%s: err = %v, want ErrCorrupt", name, err)
		}
	}
}

func TestDecodeFlippedBytes(t *testing.T) {
	framed := Encode("render:bb", []byte("payload"))
	for i := range framed {
		framed[i] ^= 0xff
	}
	if _, _, err := Decode(framed); !errors.Is(err, ErrCorrupt) {
		t.Fatalf("err = %v, want ErrCorrupt", err)
	}
}

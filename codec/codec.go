// Package codec (de)serializes values for the render memo store. The
// default is JSON; CBOR and Msgpack are available when memo payloads get
// large (rendered icon sets carry raw pixel buffers).
package codec

// Codec encodes/decodes values V to []byte for storage.
type Codec[V any] interface {
	Encode(V) ([]byte, error)
	Decode([]byte) (V, error)
}

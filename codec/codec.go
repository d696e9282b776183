/*
Copyright © 2026 ZKEscrow

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package codec converts between BN254 scalar-field elements and their
// canonical 32-byte little-endian buffers, and translates point encodings
// between the curve library's big-endian form and the word order expected by
// the constrained verifier's pairing primitive.
package codec

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

const (
	// FieldBytes is the size of a serialized scalar-field element.
	FieldBytes = fr.Bytes

	// SizeG1 and SizeG2 are the uncompressed affine point sizes on BN254.
	SizeG1 = 64
	SizeG2 = 128

	wordSize = 4
)

var (
	ErrInvalidLength = errors.New("codec: field buffer must be 32 bytes")
	ErrNonCanonical  = errors.New("codec: buffer does not encode a canonical field element")
	ErrUnaligned     = errors.New("codec: buffer length must be a multiple of 4")
)

// FieldToBytes serializes f into its canonical 32-byte little-endian form.
func FieldToBytes(f fr.Element) [FieldBytes]byte {
	be := f.Bytes()
	var out [FieldBytes]byte
	for i := 0; i < FieldBytes; i++ {
		out[i] = be[FieldBytes-1-i]
	}
	return out
}

// BytesToField deserializes a canonical 32-byte little-endian buffer. It
// fails if the buffer is not exactly 32 bytes or encodes a value that is not
// strictly below the field modulus.
func BytesToField(buf []byte) (fr.Element, error) {
	var f fr.Element
	if len(buf) != FieldBytes {
		return f, fmt.Errorf("%w: got %d bytes", ErrInvalidLength, len(buf))
	}
	be := make([]byte, FieldBytes)
	for i := 0; i < FieldBytes; i++ {
		be[FieldBytes-1-i] = buf[i]
	}
	v := new(big.Int).SetBytes(be)
	if v.Cmp(fr.Modulus()) >= 0 {
		return f, ErrNonCanonical
	}
	f.SetBigInt(v)
	return f, nil
}

// ConvertEndianness byte-swaps every aligned 4-byte word of in. The
// constrained host consumes point coordinates as little-endian 32-bit words,
// while the curve library serializes big-endian; this translates between the
// two. The operation is its own inverse.
func ConvertEndianness(in []byte) ([]byte, error) {
	if len(in)%wordSize != 0 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrUnaligned, len(in))
	}
	out := make([]byte, len(in))
	for i := 0; i < len(in); i += wordSize {
		out[i] = in[i+3]
		out[i+1] = in[i+2]
		out[i+2] = in[i+1]
		out[i+3] = in[i]
	}
	return out, nil
}

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

package prover

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark/backend/groth16"
	"github.com/fxamacker/cbor/v2"

	"github.com/zkescrow/balanceproof/codec"
)

// Wire sizes of the byte encodings. The proof is three uncompressed points
// (A, B, C); the prepared verifying key is alpha || beta || gamma || delta.
const (
	ProofWireBytes        = 2*codec.SizeG1 + codec.SizeG2
	VerifyingKeyWireBytes = codec.SizeG1 + 3*codec.SizeG2
)

// Package is the native encoding of one proving call: the proof itself, the
// prepared public-input point and the verifying key it verifies under.
type Package struct {
	Proof         groth16.Proof
	PreparedInput bn254.G1Affine
	VerifyingKey  groth16.VerifyingKey
}

// PackageLite is the storage/transport encoding: the serialized proof, the
// raw 32-byte public-input buffers and the prepared verifying-key bytes.
type PackageLite struct {
	Proof        []byte   `cbor:"1,keyasint"`
	PublicInputs [][]byte `cbor:"2,keyasint"`
	VerifyingKey []byte   `cbor:"3,keyasint"`
}

// PackagePrepared is the constrained-verifier wire encoding: every point
// serialized uncompressed and endianness-converted to the host's word
// order. Proof is negated-A || B || C (256 bytes), PreparedInput is the
// folded public-input point (64 bytes) and VerifyingKey is
// alpha || beta || gamma || delta (448 bytes).
type PackagePrepared struct {
	Proof         []byte `cbor:"1,keyasint"`
	PreparedInput []byte `cbor:"2,keyasint"`
	VerifyingKey  []byte `cbor:"3,keyasint"`
}

// MarshalBinary encodes the package in deterministic CBOR.
func (p *PackageLite) MarshalBinary() ([]byte, error) {
	return marshalCBOR(p)
}

// UnmarshalBinary decodes a package produced by MarshalBinary.
func (p *PackageLite) UnmarshalBinary(data []byte) error {
	return cbor.Unmarshal(data, p)
}

// MarshalBinary encodes the package in deterministic CBOR.
func (p *PackagePrepared) MarshalBinary() ([]byte, error) {
	return marshalCBOR(p)
}

// UnmarshalBinary decodes a package produced by MarshalBinary.
func (p *PackagePrepared) UnmarshalBinary(data []byte) error {
	return cbor.Unmarshal(data, p)
}

func marshalCBOR(v interface{}) ([]byte, error) {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		return nil, fmt.Errorf("prover: cbor: %w", err)
	}
	return em.Marshal(v)
}

// wireG1 serializes p uncompressed and converts it to the constrained
// verifier's word order.
func wireG1(p *bn254.G1Affine) ([]byte, error) {
	raw := p.RawBytes()
	return codec.ConvertEndianness(raw[:])
}

func wireG2(p *bn254.G2Affine) ([]byte, error) {
	raw := p.RawBytes()
	return codec.ConvertEndianness(raw[:])
}

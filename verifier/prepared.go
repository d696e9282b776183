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

package verifier

import (
	"errors"
	"fmt"

	"github.com/zkescrow/balanceproof/codec"
	"github.com/zkescrow/balanceproof/prover"
)

const (
	sizeG1 = codec.SizeG1
	sizeG2 = codec.SizeG2

	// one pairing operand: a G1 point followed by a G2 point
	pairLen = sizeG1 + sizeG2

	// PairingInputBytes is the exact buffer length handed to the pairing
	// engine: four (G1, G2) operand pairs.
	PairingInputBytes = 4 * pairLen
)

var (
	ErrInvalidG1Length           = errors.New("verifier: G1 point is not 64 bytes")
	ErrInvalidG2Length           = errors.New("verifier: G2 point is not 128 bytes")
	ErrInvalidPublicInputsLength = errors.New("verifier: prepared public inputs are not 64 bytes")
	ErrPairingVerification       = errors.New("verifier: pairing primitive failed")
)

// PairingEngine evaluates a multi-pairing product over a flat operand
// buffer of PairingInputBytes bytes and reports whether the product is the
// identity. Implementations may be syscalls, precompiles or in-process
// software; the buffer layout is fixed either way.
type PairingEngine interface {
	PairingCheck(input []byte) (bool, error)
}

// VerifyingKeyPrepared holds the four verifying-key points the pairing
// product needs, already serialized in the engine's byte order.
type VerifyingKeyPrepared struct {
	AlphaG1 [sizeG1]byte
	BetaG2  [sizeG2]byte
	GammaG2 [sizeG2]byte
	DeltaG2 [sizeG2]byte
}

// NewVerifyingKeyPrepared gates every component length before copying.
func NewVerifyingKeyPrepared(alphaG1, betaG2, gammaG2, deltaG2 []byte) (*VerifyingKeyPrepared, error) {
	if len(alphaG1) != sizeG1 {
		return nil, fmt.Errorf("%w: alpha is %d bytes", ErrInvalidG1Length, len(alphaG1))
	}
	if len(betaG2) != sizeG2 {
		return nil, fmt.Errorf("%w: beta is %d bytes", ErrInvalidG2Length, len(betaG2))
	}
	if len(gammaG2) != sizeG2 {
		return nil, fmt.Errorf("%w: gamma is %d bytes", ErrInvalidG2Length, len(gammaG2))
	}
	if len(deltaG2) != sizeG2 {
		return nil, fmt.Errorf("%w: delta is %d bytes", ErrInvalidG2Length, len(deltaG2))
	}
	vk := &VerifyingKeyPrepared{}
	copy(vk.AlphaG1[:], alphaG1)
	copy(vk.BetaG2[:], betaG2)
	copy(vk.GammaG2[:], gammaG2)
	copy(vk.DeltaG2[:], deltaG2)
	return vk, nil
}

// Groth16VerifierPrepared verifies a proof whose public inputs were already
// folded into a single G1 point. It performs no curve arithmetic itself: it
// lays the operands out in the engine's expected order and delegates the
// pairing product.
type Groth16VerifierPrepared struct {
	proofA [sizeG1]byte
	proofB [sizeG2]byte
	proofC [sizeG1]byte

	// PreparedPublicInputs is kept addressable so callers can audit which
	// input point the verdict was computed over.
	PreparedPublicInputs [sizeG1]byte

	vk     *VerifyingKeyPrepared
	engine PairingEngine
}

// NewGroth16VerifierPrepared gates every operand length up front; this is the
// sole input-shape check before the external primitive runs. The proof comes
// as negated-A, B and C; a nil engine selects the in-process SoftwareEngine.
func NewGroth16VerifierPrepared(
	proofA, proofB, proofC []byte,
	preparedPublicInputs []byte,
	vk *VerifyingKeyPrepared,
	engine PairingEngine,
) (*Groth16VerifierPrepared, error) {
	if len(proofA) != sizeG1 {
		return nil, fmt.Errorf("%w: proof A is %d bytes", ErrInvalidG1Length, len(proofA))
	}
	if len(proofB) != sizeG2 {
		return nil, fmt.Errorf("%w: proof B is %d bytes", ErrInvalidG2Length, len(proofB))
	}
	if len(proofC) != sizeG1 {
		return nil, fmt.Errorf("%w: proof C is %d bytes", ErrInvalidG1Length, len(proofC))
	}
	if len(preparedPublicInputs) != sizeG1 {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidPublicInputsLength, len(preparedPublicInputs))
	}
	if vk == nil {
		return nil, fmt.Errorf("%w: missing", ErrInvalidVerifyingKey)
	}
	if engine == nil {
		engine = SoftwareEngine{}
	}
	v := &Groth16VerifierPrepared{vk: vk, engine: engine}
	copy(v.proofA[:], proofA)
	copy(v.proofB[:], proofB)
	copy(v.proofC[:], proofC)
	copy(v.PreparedPublicInputs[:], preparedPublicInputs)
	return v, nil
}

// NewVerifierFromPackage builds a prepared verifier directly from a
// prepared-encoding proof package, splitting its concatenated proof and
// verifying-key buffers into the individual operands.
func NewVerifierFromPackage(pkg *prover.PackagePrepared, engine PairingEngine) (*Groth16VerifierPrepared, error) {
	if pkg == nil {
		return nil, ErrInvalidProof
	}
	if len(pkg.Proof) != prover.ProofWireBytes {
		return nil, fmt.Errorf("%w: wire proof is %d bytes", ErrInvalidProof, len(pkg.Proof))
	}
	if len(pkg.VerifyingKey) != prover.VerifyingKeyWireBytes {
		return nil, fmt.Errorf("%w: wire key is %d bytes", ErrInvalidVerifyingKey, len(pkg.VerifyingKey))
	}
	vk, err := NewVerifyingKeyPrepared(
		pkg.VerifyingKey[:sizeG1],
		pkg.VerifyingKey[sizeG1:sizeG1+sizeG2],
		pkg.VerifyingKey[sizeG1+sizeG2:sizeG1+2*sizeG2],
		pkg.VerifyingKey[sizeG1+2*sizeG2:],
	)
	if err != nil {
		return nil, err
	}
	return NewGroth16VerifierPrepared(
		pkg.Proof[:sizeG1],
		pkg.Proof[sizeG1:sizeG1+sizeG2],
		pkg.Proof[sizeG1+sizeG2:],
		pkg.PreparedInput,
		vk,
		engine,
	)
}

// Verify assembles the four pairing operands in the fixed order
// (-A, B), (L, gamma), (C, delta), (alpha, beta) and hands the flat buffer
// to the engine. The proof already carries A negated, so the product equals
// the identity exactly when the proof verifies.
func (v *Groth16VerifierPrepared) Verify() (bool, error) {
	input := make([]byte, 0, PairingInputBytes)
	input = append(input, v.proofA[:]...)
	input = append(input, v.proofB[:]...)
	input = append(input, v.PreparedPublicInputs[:]...)
	input = append(input, v.vk.GammaG2[:]...)
	input = append(input, v.proofC[:]...)
	input = append(input, v.vk.DeltaG2[:]...)
	input = append(input, v.vk.AlphaG1[:]...)
	input = append(input, v.vk.BetaG2[:]...)

	ok, err := v.engine.PairingCheck(input)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrPairingVerification, err)
	}
	return ok, nil
}

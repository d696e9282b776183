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
	"bytes"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	groth16bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/consensys/gnark/frontend"

	"github.com/zkescrow/balanceproof/circuit"
	"github.com/zkescrow/balanceproof/codec"
	"github.com/zkescrow/balanceproof/logger"
)

var (
	ErrInvalidPublicInput       = errors.New("prover: invalid public input")
	ErrInvalidProvingKey        = errors.New("prover: invalid proving key")
	ErrIncompatibleVerifyingKey = errors.New("prover: verifying key incompatible with circuit")
	ErrCircuitValidation        = errors.New("prover: circuit validation failed")
	ErrProofGeneration          = errors.New("prover: proof generation failed")
)

// GenerateProofPackage validates the inputs and keys, proves the assigned
// circuit and returns the same proving call in all three encodings. A false
// inequality is rejected here: the witness cannot satisfy the range-check
// constraints, so the proving algorithm fails and the error is reported as
// ErrProofGeneration.
func GenerateProofPackage(
	pk groth16.ProvingKey,
	vk groth16.VerifyingKey,
	c *circuit.Inequality,
	publicInputs [][]byte,
) (*PackageLite, *PackagePrepared, *Package, error) {
	log := logger.Logger()

	// decode and canonical-check the public inputs before any cryptographic
	// work happens
	scalars := make([]fr.Element, len(publicInputs))
	for i, in := range publicInputs {
		s, err := codec.BytesToField(in)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("%w: input %d: %v", ErrInvalidPublicInput, i, err)
		}
		scalars[i] = s
	}

	pkc, ok := pk.(*groth16bn254.ProvingKey)
	if !ok || len(pkc.G1.A) == 0 || len(pkc.G1.K) == 0 {
		return nil, nil, nil, ErrInvalidProvingKey
	}
	vkc, ok := vk.(*groth16bn254.VerifyingKey)
	if !ok {
		return nil, nil, nil, fmt.Errorf("%w: not a BN254 key", ErrIncompatibleVerifyingKey)
	}

	ccs, err := c.Compile()
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrCircuitValidation, err)
	}

	// the instance count excludes the reserved constant-one wire
	expected := ccs.GetNbPublicVariables() - 1
	if len(publicInputs) != expected {
		return nil, nil, nil, fmt.Errorf("%w: expected %d inputs, got %d",
			ErrInvalidPublicInput, expected, len(publicInputs))
	}
	if len(vkc.G1.K) != expected+1 {
		return nil, nil, nil, fmt.Errorf("%w: key commits to %d inputs, circuit declares %d",
			ErrIncompatibleVerifyingKey, len(vkc.G1.K)-1, expected)
	}

	w, err := frontend.NewWitness(c, ecc.BN254.ScalarField())
	if err != nil {
		return nil, nil, nil, fmt.Errorf("%w: witness: %v", ErrCircuitValidation, err)
	}

	start := time.Now()
	proof, err := groth16.Prove(ccs, pk, w)
	if err != nil {
		// an infeasible witness (the inequality does not hold) lands here
		return nil, nil, nil, fmt.Errorf("%w: %v", ErrProofGeneration, err)
	}
	log.Debug().Dur("took", time.Since(start)).Msg("groth16 prove done")

	prepared, err := PrepareInputs(vk, scalars)
	if err != nil {
		return nil, nil, nil, err
	}

	lite, preparedPkg, err := encodePackages(proof, vkc, &prepared, publicInputs)
	if err != nil {
		return nil, nil, nil, err
	}
	native := &Package{
		Proof:         proof,
		PreparedInput: prepared,
		VerifyingKey:  vk,
	}
	return lite, preparedPkg, native, nil
}

// PrepareInputs folds the public-input scalars into the verifying key's
// input-commitment basis: K[0] + sum_i scalars[i]*K[i+1]. The preparation is
// pure and may be cached alongside the verifying key.
func PrepareInputs(vk groth16.VerifyingKey, scalars []fr.Element) (bn254.G1Affine, error) {
	var res bn254.G1Affine
	vkc, ok := vk.(*groth16bn254.VerifyingKey)
	if !ok {
		return res, fmt.Errorf("%w: not a BN254 key", ErrIncompatibleVerifyingKey)
	}
	if len(vkc.G1.K) != len(scalars)+1 {
		return res, fmt.Errorf("%w: key commits to %d inputs, got %d",
			ErrIncompatibleVerifyingKey, len(vkc.G1.K)-1, len(scalars))
	}

	var acc, term bn254.G1Jac
	var bi big.Int
	acc.FromAffine(&vkc.G1.K[0])
	for i := range scalars {
		term.FromAffine(&vkc.G1.K[i+1])
		term.ScalarMultiplication(&term, scalars[i].BigInt(&bi))
		acc.AddAssign(&term)
	}
	res.FromJacobian(&acc)
	return res, nil
}

func encodePackages(
	proof groth16.Proof,
	vkc *groth16bn254.VerifyingKey,
	prepared *bn254.G1Affine,
	publicInputs [][]byte,
) (*PackageLite, *PackagePrepared, error) {
	pc, ok := proof.(*groth16bn254.Proof)
	if !ok {
		return nil, nil, fmt.Errorf("%w: not a BN254 proof", ErrProofGeneration)
	}

	// Lite: the full gnark proof stream plus the raw input buffers
	var buf bytes.Buffer
	if _, err := pc.WriteRawTo(&buf); err != nil {
		return nil, nil, fmt.Errorf("prover: serialize proof: %w", err)
	}
	proofBytes := buf.Bytes()

	inputsCopy := make([][]byte, len(publicInputs))
	for i, in := range publicInputs {
		inputsCopy[i] = append([]byte(nil), in...)
	}

	vkWire, err := wireVerifyingKey(vkc)
	if err != nil {
		return nil, nil, err
	}

	// Prepared: the multi-pairing form wants e(-A,B)*e(L,gamma)*e(C,delta)*
	// e(alpha,beta) == 1, so A is negated once here, off the host's hot path
	var negA bn254.G1Affine
	negA.Neg(&pc.Ar)

	aWire, err := wireG1(&negA)
	if err != nil {
		return nil, nil, err
	}
	bWire, err := wireG2(&pc.Bs)
	if err != nil {
		return nil, nil, err
	}
	cWire, err := wireG1(&pc.Krs)
	if err != nil {
		return nil, nil, err
	}
	proofWire := make([]byte, 0, ProofWireBytes)
	proofWire = append(proofWire, aWire...)
	proofWire = append(proofWire, bWire...)
	proofWire = append(proofWire, cWire...)

	inputWire, err := wireG1(prepared)
	if err != nil {
		return nil, nil, err
	}

	lite := &PackageLite{
		Proof:        proofBytes,
		PublicInputs: inputsCopy,
		VerifyingKey: vkWire,
	}
	preparedPkg := &PackagePrepared{
		Proof:         proofWire,
		PreparedInput: inputWire,
		VerifyingKey:  vkWire,
	}
	return lite, preparedPkg, nil
}

// wireVerifyingKey serializes the pairing-relevant verifying-key points in
// the fixed order alpha || beta || gamma || delta.
func wireVerifyingKey(vkc *groth16bn254.VerifyingKey) ([]byte, error) {
	alpha, err := wireG1(&vkc.G1.Alpha)
	if err != nil {
		return nil, err
	}
	beta, err := wireG2(&vkc.G2.Beta)
	if err != nil {
		return nil, err
	}
	gamma, err := wireG2(&vkc.G2.Gamma)
	if err != nil {
		return nil, err
	}
	delta, err := wireG2(&vkc.G2.Delta)
	if err != nil {
		return nil, err
	}
	out := make([]byte, 0, VerifyingKeyWireBytes)
	out = append(out, alpha...)
	out = append(out, beta...)
	out = append(out, gamma...)
	out = append(out, delta...)
	return out, nil
}

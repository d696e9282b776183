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

// Package verifier checks Groth16 proofs over BN254 in two forms: the
// general pairing verification working on parsed curve points, and a
// constrained form that assembles a flat byte buffer for an external
// pairing primitive.
package verifier

import (
	"errors"
	"fmt"
	"time"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark/backend/groth16"
	groth16bn254 "github.com/consensys/gnark/backend/groth16/bn254"

	"github.com/zkescrow/balanceproof/logger"
	"github.com/zkescrow/balanceproof/prover"
)

var (
	ErrInvalidProof        = errors.New("verifier: invalid proof")
	ErrInvalidPublicInput  = errors.New("verifier: invalid prepared public input")
	ErrInvalidVerifyingKey = errors.New("verifier: invalid verifying key")
	ErrVerificationFailed  = errors.New("verifier: pairing verification failed")
)

// Verify checks the Groth16 equation against an already prepared public
// input point. All points are gated for validity first, so a malformed proof
// is reported as an error rather than a false verdict; a well-formed proof
// that does not verify returns (false, nil).
func Verify(proof groth16.Proof, preparedInput *bn254.G1Affine, vk groth16.VerifyingKey) (bool, error) {
	log := logger.Logger()

	pc, ok := proof.(*groth16bn254.Proof)
	if !ok {
		return false, fmt.Errorf("%w: not a BN254 proof", ErrInvalidProof)
	}
	vkc, ok := vk.(*groth16bn254.VerifyingKey)
	if !ok {
		return false, fmt.Errorf("%w: not a BN254 key", ErrInvalidVerifyingKey)
	}

	if !validG1(&pc.Ar) || !validG1(&pc.Krs) {
		return false, fmt.Errorf("%w: proof point off curve or in wrong subgroup", ErrInvalidProof)
	}
	if !validG2(&pc.Bs) {
		return false, fmt.Errorf("%w: proof point off curve or in wrong subgroup", ErrInvalidProof)
	}
	if preparedInput == nil || !validG1(preparedInput) {
		return false, ErrInvalidPublicInput
	}
	if !validG1(&vkc.G1.Alpha) || !validG2(&vkc.G2.Beta) || !validG2(&vkc.G2.Gamma) || !validG2(&vkc.G2.Delta) {
		return false, ErrInvalidVerifyingKey
	}

	// e(A,B) = e(alpha,beta) * e(L,gamma) * e(C,delta), checked as a single
	// product of four pairings with A negated
	var negA bn254.G1Affine
	negA.Neg(&pc.Ar)

	start := time.Now()
	ok, err := bn254.PairingCheck(
		[]bn254.G1Affine{negA, *preparedInput, pc.Krs, vkc.G1.Alpha},
		[]bn254.G2Affine{pc.Bs, vkc.G2.Gamma, vkc.G2.Delta, vkc.G2.Beta},
	)
	if err != nil {
		return false, fmt.Errorf("%w: %v", ErrVerificationFailed, err)
	}
	log.Debug().Dur("took", time.Since(start)).Bool("verified", ok).Msg("groth16 verify done")
	return ok, nil
}

// VerifyPackage verifies a native proof package against its own embedded
// verifying key and prepared input.
func VerifyPackage(pkg *prover.Package) (bool, error) {
	if pkg == nil {
		return false, ErrInvalidProof
	}
	return Verify(pkg.Proof, &pkg.PreparedInput, pkg.VerifyingKey)
}

// validG1 rejects the point at infinity, off-curve points and points outside
// the r-torsion subgroup.
func validG1(p *bn254.G1Affine) bool {
	return !p.IsInfinity() && p.IsOnCurve() && p.IsInSubGroup()
}

func validG2(p *bn254.G2Affine) bool {
	return !p.IsInfinity() && p.IsOnCurve() && p.IsInSubGroup()
}

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

package balanceproof

import (
	"github.com/consensys/gnark/backend/groth16"

	"github.com/zkescrow/balanceproof/circuit"
	"github.com/zkescrow/balanceproof/prover"
	"github.com/zkescrow/balanceproof/verifier"
)

// Setup compiles the inequality circuit shape and runs the Groth16 key
// generation for it.
func Setup() (groth16.ProvingKey, groth16.VerifyingKey, error) {
	c := &circuit.Inequality{}
	return prover.Setup(c)
}

// Prove builds a proof that proverValue >= publicValue without revealing
// proverValue, returning all three proof-package encodings.
func Prove(pk groth16.ProvingKey, vk groth16.VerifyingKey, proverValue, publicValue uint64) (*prover.PackageLite, *prover.PackagePrepared, *prover.Package, error) {
	c, err := circuit.New(proverValue, publicValue)
	if err != nil {
		return nil, nil, nil, err
	}
	inputs, err := c.PublicInputs()
	if err != nil {
		return nil, nil, nil, err
	}
	return prover.GenerateProofPackage(pk, vk, c, inputs)
}

// VerifyPrepared checks a prepared-encoding package through the constrained
// verifier, using engine for the pairing product (nil selects the in-process
// software engine). Alongside the verdict it returns a copy of the prepared
// public-input bytes the verdict was computed over, so callers can audit
// which statement was verified.
func VerifyPrepared(pkg *prover.PackagePrepared, engine verifier.PairingEngine) (bool, []byte, error) {
	v, err := verifier.NewVerifierFromPackage(pkg, engine)
	if err != nil {
		return false, nil, err
	}
	ok, err := v.Verify()
	if err != nil {
		return false, nil, err
	}
	audit := make([]byte, len(v.PreparedPublicInputs))
	copy(audit, v.PreparedPublicInputs[:])
	return ok, audit, nil
}

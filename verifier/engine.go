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
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254"

	"github.com/zkescrow/balanceproof/codec"
)

// SoftwareEngine evaluates the pairing product in process with gnark-crypto.
// It accepts the same buffer layout an external primitive would: operand
// pairs of an uncompressed G1 point followed by an uncompressed G2 point,
// both in the converted word order, which it undoes before parsing.
type SoftwareEngine struct{}

// PairingCheck implements PairingEngine.
func (SoftwareEngine) PairingCheck(input []byte) (bool, error) {
	if len(input) == 0 || len(input)%pairLen != 0 {
		return false, fmt.Errorf("pairing input is %d bytes, want a multiple of %d", len(input), pairLen)
	}
	n := len(input) / pairLen
	g1s := make([]bn254.G1Affine, n)
	g2s := make([]bn254.G2Affine, n)
	for i := 0; i < n; i++ {
		pair := input[i*pairLen : (i+1)*pairLen]
		g1Raw, err := codec.ConvertEndianness(pair[:sizeG1])
		if err != nil {
			return false, err
		}
		g2Raw, err := codec.ConvertEndianness(pair[sizeG1:])
		if err != nil {
			return false, err
		}
		if _, err := g1s[i].SetBytes(g1Raw); err != nil {
			return false, fmt.Errorf("pairing operand %d: G1: %w", i, err)
		}
		if _, err := g2s[i].SetBytes(g2Raw); err != nil {
			return false, fmt.Errorf("pairing operand %d: G2: %w", i, err)
		}
	}
	return bn254.PairingCheck(g1s, g2s)
}

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
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark/backend/groth16"

	"github.com/zkescrow/balanceproof/circuit"
	"github.com/zkescrow/balanceproof/logger"
)

// File names used by WriteKeys and ReadKeys.
const (
	ProvingKeyFile   = "balance.pk"
	VerifyingKeyFile = "balance.vk"
)

// Setup runs the circuit-specific Groth16 key generation with fresh
// randomness. Keys from two calls over the same circuit shape are
// cryptographically independent: a proof made under one pair never verifies
// under the other.
func Setup(c *circuit.Inequality) (groth16.ProvingKey, groth16.VerifyingKey, error) {
	log := logger.Logger()
	start := time.Now()

	ccs, err := c.Compile()
	if err != nil {
		return nil, nil, err
	}
	pk, vk, err := groth16.Setup(ccs)
	if err != nil {
		return nil, nil, fmt.Errorf("prover: setup: %w", err)
	}

	log.Debug().
		Dur("took", time.Since(start)).
		Int("nbConstraints", ccs.GetNbConstraints()).
		Msg("groth16 setup done")
	return pk, vk, nil
}

type rawWriter interface {
	WriteRawTo(w io.Writer) (int64, error)
}

// WriteKeys persists both keys under dir in raw uncompressed form. No
// compression is used anywhere in the pipeline; the constrained verifier
// consumes raw point encodings.
func WriteKeys(pk groth16.ProvingKey, vk groth16.VerifyingKey, dir string) error {
	if err := writeRaw(filepath.Join(dir, ProvingKeyFile), pk); err != nil {
		return err
	}
	return writeRaw(filepath.Join(dir, VerifyingKeyFile), vk)
}

// ReadKeys loads keys previously written by WriteKeys.
func ReadKeys(dir string) (groth16.ProvingKey, groth16.VerifyingKey, error) {
	pk := groth16.NewProvingKey(ecc.BN254)
	if err := readInto(filepath.Join(dir, ProvingKeyFile), pk); err != nil {
		return nil, nil, err
	}
	vk := groth16.NewVerifyingKey(ecc.BN254)
	if err := readInto(filepath.Join(dir, VerifyingKeyFile), vk); err != nil {
		return nil, nil, err
	}
	return pk, vk, nil
}

func writeRaw(path string, v rawWriter) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("prover: write key: %w", err)
	}
	if _, err := v.WriteRawTo(f); err != nil {
		f.Close()
		return fmt.Errorf("prover: write key %s: %w", path, err)
	}
	return f.Close()
}

func readInto(path string, v io.ReaderFrom) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("prover: read key: %w", err)
	}
	defer f.Close()
	if _, err := v.ReadFrom(f); err != nil {
		return fmt.Errorf("prover: read key %s: %w", path, err)
	}
	return nil
}

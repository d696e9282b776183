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
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend/groth16"
	groth16bn254 "github.com/consensys/gnark/backend/groth16/bn254"
	"github.com/stretchr/testify/require"

	"github.com/zkescrow/balanceproof/circuit"
	"github.com/zkescrow/balanceproof/codec"
)

// testKeys runs setup once per test binary; Groth16 setup dominates test time.
var testSetup struct {
	pk groth16.ProvingKey
	vk groth16.VerifyingKey
}

func keysForTest(t *testing.T) (groth16.ProvingKey, groth16.VerifyingKey) {
	t.Helper()
	if testSetup.pk == nil {
		c, err := circuit.New(0, 0)
		require.NoError(t, err)
		pk, vk, err := Setup(c)
		require.NoError(t, err)
		testSetup.pk, testSetup.vk = pk, vk
	}
	return testSetup.pk, testSetup.vk
}

func TestGenerateProofPackage(t *testing.T) {
	pk, vk := keysForTest(t)

	c, err := circuit.New(1000, 500)
	require.NoError(t, err)
	inputs, err := c.PublicInputs()
	require.NoError(t, err)

	lite, prepared, native, err := GenerateProofPackage(pk, vk, c, inputs)
	require.NoError(t, err)

	require.NotEmpty(t, lite.Proof)
	require.Equal(t, inputs, lite.PublicInputs)
	require.Len(t, lite.VerifyingKey, VerifyingKeyWireBytes)

	require.Len(t, prepared.Proof, ProofWireBytes)
	require.Len(t, prepared.PreparedInput, codec.SizeG1)
	require.Len(t, prepared.VerifyingKey, VerifyingKeyWireBytes)

	require.NotNil(t, native.Proof)
	require.False(t, native.PreparedInput.IsInfinity())
	require.Equal(t, vk, native.VerifyingKey)
}

func TestGenerateProofPackageEquality(t *testing.T) {
	pk, vk := keysForTest(t)

	c, err := circuit.New(1000, 1000)
	require.NoError(t, err)
	inputs, err := c.PublicInputs()
	require.NoError(t, err)

	_, _, _, err = GenerateProofPackage(pk, vk, c, inputs)
	require.NoError(t, err)
}

func TestGenerateProofPackageFalseInequality(t *testing.T) {
	pk, vk := keysForTest(t)

	c, err := circuit.New(500, 1000)
	require.NoError(t, err)
	inputs, err := c.PublicInputs()
	require.NoError(t, err)

	_, _, _, err = GenerateProofPackage(pk, vk, c, inputs)
	require.ErrorIs(t, err, ErrProofGeneration)
}

func TestGenerateProofPackageInputValidation(t *testing.T) {
	pk, vk := keysForTest(t)

	c, err := circuit.New(1000, 500)
	require.NoError(t, err)
	inputs, err := c.PublicInputs()
	require.NoError(t, err)

	t.Run("count mismatch", func(t *testing.T) {
		extra := append([][]byte{}, inputs...)
		extra = append(extra, inputs[0])
		_, _, _, err := GenerateProofPackage(pk, vk, c, extra)
		require.ErrorIs(t, err, ErrInvalidPublicInput)

		_, _, _, err = GenerateProofPackage(pk, vk, c, nil)
		require.ErrorIs(t, err, ErrInvalidPublicInput)
	})

	t.Run("non-canonical input", func(t *testing.T) {
		mod := fr.Modulus().Bytes() // big-endian
		le := make([]byte, codec.FieldBytes)
		for i, b := range mod {
			le[len(mod)-1-i] = b
		}
		_, _, _, err := GenerateProofPackage(pk, vk, c, [][]byte{le})
		require.ErrorIs(t, err, ErrInvalidPublicInput)
	})

	t.Run("wrong length input", func(t *testing.T) {
		_, _, _, err := GenerateProofPackage(pk, vk, c, [][]byte{make([]byte, 16)})
		require.ErrorIs(t, err, ErrInvalidPublicInput)
	})

	t.Run("empty proving key", func(t *testing.T) {
		empty := groth16.NewProvingKey(ecc.BN254)
		_, _, _, err := GenerateProofPackage(empty, vk, c, inputs)
		require.ErrorIs(t, err, ErrInvalidProvingKey)
	})
}

func TestPrepareInputs(t *testing.T) {
	_, vk := keysForTest(t)
	vkc := vk.(*groth16bn254.VerifyingKey)

	t.Run("zero scalar folds to base point", func(t *testing.T) {
		got, err := PrepareInputs(vk, []fr.Element{fr.NewElement(0)})
		require.NoError(t, err)
		require.True(t, got.Equal(&vkc.G1.K[0]))
	})

	t.Run("unit scalar adds the commitment point", func(t *testing.T) {
		got, err := PrepareInputs(vk, []fr.Element{fr.NewElement(1)})
		require.NoError(t, err)

		var acc, term bn254.G1Jac
		acc.FromAffine(&vkc.G1.K[0])
		term.FromAffine(&vkc.G1.K[1])
		acc.AddAssign(&term)
		var want bn254.G1Affine
		want.FromJacobian(&acc)
		require.True(t, got.Equal(&want))
	})

	t.Run("scalar count mismatch", func(t *testing.T) {
		_, err := PrepareInputs(vk, nil)
		require.ErrorIs(t, err, ErrIncompatibleVerifyingKey)

		_, err = PrepareInputs(vk, make([]fr.Element, 2))
		require.ErrorIs(t, err, ErrIncompatibleVerifyingKey)
	})
}

func TestPackageLiteRoundTrip(t *testing.T) {
	pk, vk := keysForTest(t)

	c, err := circuit.New(1<<circuit.DiffBits-1, 0)
	require.NoError(t, err)
	inputs, err := c.PublicInputs()
	require.NoError(t, err)

	lite, prepared, _, err := GenerateProofPackage(pk, vk, c, inputs)
	require.NoError(t, err)

	liteBytes, err := lite.MarshalBinary()
	require.NoError(t, err)
	var lite2 PackageLite
	require.NoError(t, lite2.UnmarshalBinary(liteBytes))
	require.Equal(t, lite, &lite2)

	prepBytes, err := prepared.MarshalBinary()
	require.NoError(t, err)
	var prep2 PackagePrepared
	require.NoError(t, prep2.UnmarshalBinary(prepBytes))
	require.Equal(t, prepared, &prep2)

	// deterministic encoding
	again, err := lite.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, liteBytes, again)
}

func TestWriteReadKeys(t *testing.T) {
	pk, vk := keysForTest(t)
	dir := t.TempDir()

	require.NoError(t, WriteKeys(pk, vk, dir))

	pk2, vk2, err := ReadKeys(dir)
	require.NoError(t, err)

	// a key pair read back must prove and prepare exactly like the original
	c, err := circuit.New(42, 7)
	require.NoError(t, err)
	inputs, err := c.PublicInputs()
	require.NoError(t, err)

	_, prepared, _, err := GenerateProofPackage(pk2, vk2, c, inputs)
	require.NoError(t, err)

	vkc := vk.(*groth16bn254.VerifyingKey)
	vkc2 := vk2.(*groth16bn254.VerifyingKey)
	require.True(t, vkc.G1.Alpha.Equal(&vkc2.G1.Alpha))
	require.Len(t, prepared.VerifyingKey, VerifyingKeyWireBytes)
}

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

package circuit

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/backend"
	"github.com/consensys/gnark/test"
	"github.com/stretchr/testify/require"

	"github.com/zkescrow/balanceproof/codec"
)

func TestNewRejectsOutOfRange(t *testing.T) {
	_, err := New(1<<DiffBits, 0)
	require.ErrorIs(t, err, ErrInvalidRange)

	_, err = New(0, 1<<DiffBits)
	require.ErrorIs(t, err, ErrInvalidRange)

	// both inputs at the range limit are accepted
	c, err := New(1<<DiffBits-1, 1<<DiffBits-1)
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestNewAcceptsFalseInequality(t *testing.T) {
	// construction cannot know the inequality fails; only proving can
	c, err := New(500, 1000)
	require.NoError(t, err)
	require.NotNil(t, c)
}

func TestPublicInputs(t *testing.T) {
	c, err := New(1000, 500)
	require.NoError(t, err)

	inputs, err := c.PublicInputs()
	require.NoError(t, err)
	require.Len(t, inputs, 1)

	want := codec.FieldToBytes(fr.NewElement(500))
	require.Equal(t, want[:], inputs[0])
}

func TestPublicInputsMissingAssignment(t *testing.T) {
	var c Inequality
	_, err := c.PublicInputs()
	require.ErrorIs(t, err, ErrMissingAssignment)

	c.ProverValue = uint64(10)
	_, err = c.PublicInputs()
	require.ErrorIs(t, err, ErrMissingAssignment)
}

func TestPublicInputCountMatchesConstraintSystem(t *testing.T) {
	c, err := New(1000, 500)
	require.NoError(t, err)

	ccs, err := c.Compile()
	require.NoError(t, err)

	inputs, err := c.PublicInputs()
	require.NoError(t, err)

	// the constant-one wire is part of the instance count
	require.Equal(t, len(inputs), ccs.GetNbPublicVariables()-1)
}

func TestProverSatisfiability(t *testing.T) {
	opts := []test.TestingOption{
		test.WithCurves(ecc.BN254),
		test.WithBackends(backend.GROTH16),
	}

	assert := test.NewAssert(t)

	// strict inequality holds
	assert.ProverSucceeded(&Inequality{}, &Inequality{
		ProverValue: uint64(1000),
		PublicValue: uint64(500),
	}, opts...)

	// equality satisfies >=
	assert.ProverSucceeded(&Inequality{}, &Inequality{
		ProverValue: uint64(1000),
		PublicValue: uint64(1000),
	}, opts...)

	// zero difference at the origin
	assert.ProverSucceeded(&Inequality{}, &Inequality{
		ProverValue: uint64(0),
		PublicValue: uint64(0),
	}, opts...)

	// maximal in-range difference
	assert.ProverSucceeded(&Inequality{}, &Inequality{
		ProverValue: uint64(1<<DiffBits - 1),
		PublicValue: uint64(0),
	}, opts...)

	// the inequality does not hold: the difference wraps modulo the field
	// and its low 32 bits cannot reconstruct it
	assert.ProverFailed(&Inequality{}, &Inequality{
		ProverValue: uint64(500),
		PublicValue: uint64(1000),
	}, opts...)

	// off by one
	assert.ProverFailed(&Inequality{}, &Inequality{
		ProverValue: uint64(999),
		PublicValue: uint64(1000),
	}, opts...)
}

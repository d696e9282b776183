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

// Package circuit defines the constraint system proving that a private
// balance is greater than or equal to a public requested amount.
package circuit

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/consensys/gnark/constraint"
	"github.com/consensys/gnark/frontend"
	"github.com/consensys/gnark/frontend/cs/r1cs"
	stdbits "github.com/consensys/gnark/std/math/bits"

	"github.com/zkescrow/balanceproof/codec"
)

// DiffBits is the width of the range check applied to the difference
// ProverValue - PublicValue. Both inputs must fit in this many bits.
const DiffBits = 32

var (
	ErrMissingAssignment = errors.New("circuit: missing assignment")
	ErrInvalidRange      = errors.New("circuit: value outside the 32-bit input range")
)

// Inequality proves ProverValue >= PublicValue without revealing
// ProverValue. The difference d = ProverValue - PublicValue is decomposed
// into DiffBits boolean bits whose weighted sum must reconstruct d; a
// negative difference wraps around the field modulus and admits no such
// decomposition, so witness solving fails during proving.
type Inequality struct {
	// ProverValue is the private quantity, e.g. tokens available to send.
	ProverValue frontend.Variable `gnark:",secret"`
	// PublicValue is the public threshold, e.g. tokens requested.
	PublicValue frontend.Variable `gnark:",public"`

	noRangeCheck bool
}

// Option configures circuit construction.
type Option func(*Inequality)

// WithoutRangeCheck disables the range check on the difference. Useful only
// for constraint-count experiments; a proof built without it does not
// establish the inequality.
func WithoutRangeCheck() Option {
	return func(c *Inequality) { c.noRangeCheck = true }
}

// New returns a fully assigned circuit. Construction fails if either value
// does not fit in DiffBits bits; it succeeds regardless of whether the
// inequality holds, since only witness solving can detect that.
func New(proverValue, publicValue uint64, opts ...Option) (*Inequality, error) {
	if proverValue >= 1<<DiffBits {
		return nil, fmt.Errorf("%w: prover value %d", ErrInvalidRange, proverValue)
	}
	if publicValue >= 1<<DiffBits {
		return nil, fmt.Errorf("%w: public value %d", ErrInvalidRange, publicValue)
	}
	c := &Inequality{
		ProverValue: proverValue,
		PublicValue: publicValue,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Define encodes the inequality. The negated public value and the difference
// are constrained algebraically; the difference is then bit-decomposed with
// every bit boolean-constrained and the weighted bit sum constrained to
// equal the difference.
func (c *Inequality) Define(api frontend.API) error {
	negB := api.Neg(c.PublicValue)
	d := api.Add(c.ProverValue, negB)
	if !c.noRangeCheck {
		stdbits.ToBinary(api, d, stdbits.WithNbDigits(DiffBits))
	}
	return nil
}

// Compile synthesizes the constraint system for this circuit's shape.
// Assigned values are ignored; only the structure matters.
func (c *Inequality) Compile() (constraint.ConstraintSystem, error) {
	shape := &Inequality{noRangeCheck: c.noRangeCheck}
	ccs, err := frontend.Compile(ecc.BN254.ScalarField(), r1cs.NewBuilder, shape)
	if err != nil {
		return nil, fmt.Errorf("circuit: compile: %w", err)
	}
	return ccs, nil
}

// PublicInputs returns the public-side values in canonical 32-byte
// little-endian form, in declaration order. It fails with
// ErrMissingAssignment if either circuit value is unset.
func (c *Inequality) PublicInputs() ([][]byte, error) {
	if c.ProverValue == nil || c.PublicValue == nil {
		return nil, ErrMissingAssignment
	}
	v, err := toElement(c.PublicValue)
	if err != nil {
		return nil, err
	}
	buf := codec.FieldToBytes(v)
	return [][]byte{buf[:]}, nil
}

func toElement(v frontend.Variable) (fr.Element, error) {
	var e fr.Element
	switch x := v.(type) {
	case fr.Element:
		return x, nil
	case *big.Int:
		e.SetBigInt(x)
		return e, nil
	case uint64:
		e.SetUint64(x)
		return e, nil
	case int:
		if x < 0 {
			return e, fmt.Errorf("circuit: negative assignment %d", x)
		}
		e.SetUint64(uint64(x))
		return e, nil
	default:
		return e, fmt.Errorf("circuit: unsupported assignment type %T", v)
	}
}

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

package codec

import (
	"math/big"
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/require"
)

func TestFieldRoundTrip(t *testing.T) {
	for i := 0; i < 100; i++ {
		var f fr.Element
		_, err := f.SetRandom()
		require.NoError(t, err)

		buf := FieldToBytes(f)
		got, err := BytesToField(buf[:])
		require.NoError(t, err)
		require.True(t, got.Equal(&f))
	}
}

func TestFieldToBytesLittleEndian(t *testing.T) {
	one := fr.NewElement(1)
	buf := FieldToBytes(one)
	require.EqualValues(t, 1, buf[0])
	for i := 1; i < FieldBytes; i++ {
		require.Zero(t, buf[i])
	}
}

func TestBytesToFieldRejectsNonCanonical(t *testing.T) {
	// the modulus itself is the smallest non-canonical value
	q := fr.Modulus()
	buf := littleEndianBytes(t, q)
	_, err := BytesToField(buf)
	require.ErrorIs(t, err, ErrNonCanonical)

	// q-1 is the largest canonical value
	qMinusOne := new(big.Int).Sub(q, big.NewInt(1))
	buf = littleEndianBytes(t, qMinusOne)
	got, err := BytesToField(buf)
	require.NoError(t, err)

	var want fr.Element
	want.SetBigInt(qMinusOne)
	require.True(t, got.Equal(&want))
}

func TestBytesToFieldRejectsWrongLength(t *testing.T) {
	_, err := BytesToField(make([]byte, 31))
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = BytesToField(make([]byte, 33))
	require.ErrorIs(t, err, ErrInvalidLength)
	_, err = BytesToField(nil)
	require.ErrorIs(t, err, ErrInvalidLength)
}

func TestConvertEndiannessKnownVector(t *testing.T) {
	in := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	out, err := ConvertEndianness(in)
	require.NoError(t, err)
	require.Equal(t, []byte{4, 3, 2, 1, 8, 7, 6, 5}, out)
}

func TestConvertEndiannessRejectsUnaligned(t *testing.T) {
	for _, n := range []int{1, 2, 3, 5, 63, 127} {
		_, err := ConvertEndianness(make([]byte, n))
		require.ErrorIs(t, err, ErrUnaligned, "length %d", n)
	}
}

func TestCodecProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("field element round-trips through its byte form", prop.ForAll(
		func(v uint64) bool {
			f := fr.NewElement(v)
			buf := FieldToBytes(f)
			got, err := BytesToField(buf[:])
			return err == nil && got.Equal(&f)
		},
		gen.UInt64(),
	))

	properties.Property("convert endianness is self-inverse on aligned buffers", prop.ForAll(
		func(b []byte) bool {
			aligned := b[:len(b)-len(b)%4]
			once, err := ConvertEndianness(aligned)
			if err != nil {
				return false
			}
			twice, err := ConvertEndianness(once)
			if err != nil {
				return false
			}
			if len(twice) != len(aligned) {
				return false
			}
			for i := range twice {
				if twice[i] != aligned[i] {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.UInt8()),
	))

	properties.Property("convert endianness rejects unaligned buffers", prop.ForAll(
		func(b []byte) bool {
			_, err := ConvertEndianness(b)
			return err != nil
		},
		gen.SliceOf(gen.UInt8()).SuchThat(func(b []byte) bool { return len(b)%4 != 0 }),
	))

	properties.TestingRun(t)
}

func littleEndianBytes(t *testing.T, v *big.Int) []byte {
	t.Helper()
	be := make([]byte, FieldBytes)
	v.FillBytes(be)
	le := make([]byte, FieldBytes)
	for i := range be {
		le[FieldBytes-1-i] = be[i]
	}
	return le
}

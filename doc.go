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

// Package balanceproof proves and verifies, in zero knowledge, that a private
// token balance covers a publicly requested amount, without revealing the
// balance itself.
//
// The pipeline is Groth16 over BN254 only. It is split into four packages:
//   - codec: field element <-> byte buffer conversions and the byte-order
//     translation used by the constrained verifier
//   - circuit: the inequality constraint system (balance >= requested, via a
//     32-bit range check on the difference)
//   - prover: circuit-specific setup, key persistence and proof-package
//     generation in three interoperable encodings
//   - verifier: the general pairing-based check and the prepared verifier
//     that targets a host exposing only a raw multi-pairing primitive
//
// The root package carries the version and the single entry point consumed
// by the escrow/account layer, VerifyPrepared.
package balanceproof

import (
	"github.com/blang/semver/v4"
)

// Version of the balanceproof module.
var Version = semver.MustParse("0.1.0")

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

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/zkescrow/balanceproof"
	"github.com/zkescrow/balanceproof/prover"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [proof]",
	Short: "verifies a prepared proof package",
	Run:   cmdVerify,
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}

func cmdVerify(cmd *cobra.Command, args []string) {
	if len(args) < 1 {
		fmt.Println("missing proof path -- balanceproof verify -h for help")
		os.Exit(-1)
	}
	proofPath := filepath.Clean(args[0])

	wire, err := os.ReadFile(proofPath)
	if err != nil {
		fmt.Println("can't read proof:", err)
		os.Exit(-1)
	}
	var pkg prover.PackagePrepared
	if err := pkg.UnmarshalBinary(wire); err != nil {
		fmt.Println("can't parse proof:", err)
		os.Exit(-1)
	}

	start := time.Now()
	ok, audit, err := balanceproof.VerifyPrepared(&pkg, nil)
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	if !ok {
		fmt.Printf("%-30s %-30s %-30s\n", "proof is invalid", proofPath, time.Since(start))
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s %-30s\n", "proof is valid", proofPath, time.Since(start))
	fmt.Printf("%-30s %s\n", "prepared public inputs", hex.EncodeToString(audit))
}

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
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/zkescrow/balanceproof"
	"github.com/zkescrow/balanceproof/prover"
)

// proveCmd represents the prove command
var proveCmd = &cobra.Command{
	Use:   "prove",
	Short: "creates a (zk)proof that the private balance covers the public amount",
	Run:   cmdProve,
}

var (
	fBalance   uint64
	fAmount    uint64
	fProofPath string
)

func init() {
	rootCmd.AddCommand(proveCmd)
	proveCmd.PersistentFlags().Uint64Var(&fBalance, "balance", 0, "private balance (never leaves this machine)")
	proveCmd.PersistentFlags().Uint64Var(&fAmount, "amount", 0, "public amount the balance must cover")
	proveCmd.PersistentFlags().StringVar(&fProofPath, "proof", "balance.proof", "output path for the prepared proof package")
	_ = proveCmd.MarkPersistentFlagRequired("balance")
	_ = proveCmd.MarkPersistentFlagRequired("amount")
}

func cmdProve(cmd *cobra.Command, args []string) {
	pk, vk, err := prover.ReadKeys(filepath.Clean(fKeyDir))
	if err != nil {
		fmt.Println("can't load keys:", err)
		os.Exit(-1)
	}

	start := time.Now()
	_, prepared, _, err := balanceproof.Prove(pk, vk, fBalance, fAmount)
	if err != nil {
		fmt.Println("error proof generation:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s\n", "generated proof", time.Since(start))

	wire, err := prepared.MarshalBinary()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fProofPath = filepath.Clean(fProofPath)
	if err := os.WriteFile(fProofPath, wire, 0600); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %s\n", "wrote proof package", fProofPath)
}

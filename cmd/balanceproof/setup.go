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

// setupCmd represents the setup command
var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "outputs proving and verifying keys for the balance circuit",
	Run:   cmdSetup,
}

var fKeyDir string

func init() {
	rootCmd.AddCommand(setupCmd)
	rootCmd.PersistentFlags().StringVar(&fKeyDir, "keys", ".", "directory holding "+prover.ProvingKeyFile+" and "+prover.VerifyingKeyFile)
}

func cmdSetup(cmd *cobra.Command, args []string) {
	fKeyDir = filepath.Clean(fKeyDir)
	if err := os.MkdirAll(fKeyDir, 0700); err != nil {
		fmt.Println("can't create key dir:", err)
		os.Exit(-1)
	}

	start := time.Now()
	pk, vk, err := balanceproof.Setup()
	if err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %-30s\n", "setup completed", time.Since(start))

	if err := prover.WriteKeys(pk, vk, fKeyDir); err != nil {
		fmt.Println("error:", err)
		os.Exit(-1)
	}
	fmt.Printf("%-30s %s\n", "generated proving key", filepath.Join(fKeyDir, prover.ProvingKeyFile))
	fmt.Printf("%-30s %s\n", "generated verifying key", filepath.Join(fKeyDir, prover.VerifyingKeyFile))
}

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

// Command balanceproof drives the proving pipeline from the shell: trusted
// setup, proof generation and constrained verification.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/zkescrow/balanceproof"
)

var rootCmd = &cobra.Command{
	Use:     "balanceproof",
	Short:   "proves and verifies that a private balance covers a public amount",
	Version: balanceproof.Version.String(),
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}

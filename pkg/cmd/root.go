// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/consensys/go-matexpr/pkg/matrix"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// Version is filled when building with make, but *not* when installing via "go
// install".
var Version string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "matexpr",
	Short: "A kernel for symbolic matrix expressions.",
	Long: `A toolbox for simplifying symbolic matrix expressions, and for
	inferring their properties even when their shapes are not known.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		// Configure kernel
		matrix.Configure(matrix.Config{
			HashConsing:     !GetFlag(cmd, "no-cache"),
			CanonicalChecks: !GetFlag(cmd, "no-checks"),
		})
	},
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "version") {
			fmt.Print("matexpr ")
			if Version != "" {
				// Built via "make"
				fmt.Printf("%s", Version)
			} else if info, ok := debug.ReadBuildInfo(); ok {
				// Built via "go install"
				fmt.Printf("%s", info.Main.Version)
			} else {
				// Unknown, perhaps "go run"
				fmt.Printf("(unknown version)")
			}
			fmt.Println()
		} else {
			fmt.Println(cmd.UsageString())
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Bool("version", false, "Report version of this executable")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "increase logging verbosity")
	rootCmd.PersistentFlags().Bool("no-cache", false, "disable sharing of structurally equal expressions")
	rootCmd.PersistentFlags().Bool("no-checks", false, "disable canonical form checks")
	rootCmd.PersistentFlags().String("assume", "", "read assumptions from a YAML file")
	rootCmd.PersistentFlags().Bool("stats", false, "report expression cache statistics")
	rootCmd.PersistentFlags().StringArrayP("file", "f", nil, "read expressions from a file")
	rootCmd.PersistentFlags().Uint("textwidth", defaultTextWidth(), "set maximum textwidth to use")
}

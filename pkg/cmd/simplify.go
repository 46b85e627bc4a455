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
	"io"
	"os"

	"github.com/consensys/go-matexpr/pkg/expr"
	"github.com/consensys/go-matexpr/pkg/util"
	"github.com/consensys/go-matexpr/pkg/util/source/sexp"
	"github.com/spf13/cobra"
)

var simplifyCmd = &cobra.Command{
	Use:   "simplify [flags] expr...",
	Short: "print the canonical form of one or more expressions.",
	Long: `Read one or more expressions (either given directly, or from files)
	and print each in canonical form.  For example, the sum of two diagonal
	matrices is printed as a single diagonal matrix.`,
	Run: func(cmd *cobra.Command, args []string) {
		stats := util.NewPerfStats()
		exprs, err := readExprs(cmd.OutOrStdout(), GetStringArray(cmd, "file"), args)
		//
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(2)
		}
		//
		stats.Log("Reading expressions")
		//
		printSimplified(cmd.OutOrStdout(), exprs, GetUint(cmd, "textwidth"))
		//
		if GetFlag(cmd, "stats") {
			printCacheStats(cmd.OutOrStdout())
		}
	},
}

// printSimplified prints each expression (which is already in canonical form)
// on its own line(s), splitting large sums and diagonals over several lines.
func printSimplified(out io.Writer, exprs []expr.Expr, width uint) {
	formatter := sexp.NewFormatter(width).Break("+", "diag", "*")
	//
	for _, e := range exprs {
		fmt.Fprintln(out, formatter.Format(e.Lisp()))
	}
}

func init() {
	rootCmd.AddCommand(simplifyCmd)
}

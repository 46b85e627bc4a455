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
	"github.com/consensys/go-matexpr/pkg/matrix"
	"github.com/consensys/go-matexpr/pkg/util"
	"github.com/spf13/cobra"
)

var propsCmd = &cobra.Command{
	Use:   "props [flags] expr...",
	Short: "print the inferred properties of one or more expressions.",
	Long: `Read one or more expressions (either given directly, or from files)
	and print the size of each matrix, along with whether it is zero, real,
	square, diagonal, symmetric, lower or upper triangular, and Toeplitz.
	Properties which cannot be decided are reported as indeterminate.`,
	Run: func(cmd *cobra.Command, args []string) {
		stats := util.NewPerfStats()
		exprs, err := readExprs(cmd.OutOrStdout(), GetStringArray(cmd, "file"), args)
		//
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(2)
		}
		//
		assumptions, err := readAssumptions(GetString(cmd, "assume"))
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), err)
			os.Exit(3)
		}
		//
		printProperties(cmd.OutOrStdout(), exprs, assumptions)
		stats.Log("Inferring properties")
		//
		if GetFlag(cmd, "stats") {
			printCacheStats(cmd.OutOrStdout())
		}
	},
}

// printProperties prints the inferred properties of each expression under a
// given set of assumptions.
func printProperties(out io.Writer, exprs []expr.Expr, assumptions *expr.Assumptions) {
	for _, e := range exprs {
		fmt.Fprintln(out, e.String())
		//
		m, ok := e.(matrix.Expr)
		if !ok {
			fmt.Fprintf(out, "   %-10s %s\n", "zero", expr.IsZeroUnder(e, assumptions))
			fmt.Fprintf(out, "   %-10s %s\n", "real", expr.IsRealUnder(e, assumptions))
			//
			continue
		}
		//
		rows, cols := matrix.Size(m)
		fmt.Fprintf(out, "   %-10s %s×%s\n", "size", rows, cols)
		//
		for _, p := range matrix.Properties {
			fmt.Fprintf(out, "   %-10s %s\n", p.Name, p.Fn(m, assumptions))
		}
	}
}

func init() {
	rootCmd.AddCommand(propsCmd)
}

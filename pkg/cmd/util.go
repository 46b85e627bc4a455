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
	"sort"
	"strings"

	"github.com/consensys/go-matexpr/pkg/expr"
	"github.com/consensys/go-matexpr/pkg/matrix"
	"github.com/consensys/go-matexpr/pkg/util/errwrap"
	"github.com/consensys/go-matexpr/pkg/util/source"
	"github.com/prometheus/client_golang/prometheus"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// GetFlag gets an expected flag, or panic if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetUint gets an expected unsigned int, or panic if an error arises.
func GetUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetString gets an expected string, or panic if an error arises.
func GetString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// GetStringArray gets an expected string array, or panic if an error arises.
func GetStringArray(cmd *cobra.Command, flag string) []string {
	r, err := cmd.Flags().GetStringArray(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return r
}

// defaultTextWidth is the width of the terminal, when stdout is one, and 80
// otherwise.
func defaultTextWidth() uint {
	fd := int(os.Stdout.Fd())
	//
	if term.IsTerminal(fd) {
		if width, _, err := term.GetSize(fd); err == nil && width > 0 {
			return uint(width)
		}
	}
	//
	return 80
}

// readExprs reads expressions from the given files followed by those given
// directly on the command line.  Syntax errors are printed to the given writer
// and then reported as a single aggregate error.
func readExprs(out io.Writer, filenames []string, args []string) ([]expr.Expr, error) {
	var (
		exprs  []expr.Expr
		reterr error
	)
	//
	files, err := source.ReadFiles(filenames...)
	if err != nil {
		return nil, errwrap.Wrapf(err, "reading expressions")
	}
	//
	for i, arg := range args {
		files = append(files, *source.NewFile(fmt.Sprintf("<arg%d>", i+1), []byte(arg)))
	}
	//
	for i := range files {
		es, _, errs := matrix.ParseAll(&files[i])
		//
		for _, e := range errs {
			printSyntaxError(out, &e)
			reterr = errwrap.Append(reterr, &e)
		}
		//
		exprs = append(exprs, es...)
	}
	//
	if reterr != nil {
		return nil, reterr
	}
	//
	log.Debugf("read %d expression(s) from %d source(s)", len(exprs), len(files))
	//
	return exprs, nil
}

// readAssumptions loads assumptions from a given YAML file, or returns an empty
// set of assumptions when no file is given.
func readAssumptions(filename string) (*expr.Assumptions, error) {
	if filename == "" {
		return expr.NewAssumptions(), nil
	}
	//
	return expr.LoadAssumptions(filename)
}

// Print a syntax error with appropriate highlighting.
func printSyntaxError(out io.Writer, err *source.SyntaxError) {
	span := err.Span()
	line := err.FirstEnclosingLine()
	lineOffset := span.Start() - line.Start()
	// Calculate length (ensures don't overflow line)
	length := min(line.Length()-lineOffset, span.Length())
	// Print error + line number
	fmt.Fprintf(out, "%s:%d:%d-%d %s\n", err.SourceFile().Filename(),
		line.Number(), 1+lineOffset, 1+lineOffset+length, err.Message())
	// Print separator line
	fmt.Fprintln(out)
	// Print line
	fmt.Fprintln(out, line.String())
	// Print indent (todo: account for tabs)
	indent := strings.Repeat(" ", max(0, lineOffset))
	fmt.Fprint(out, indent)
	// Print highlight
	fmt.Fprintln(out, strings.Repeat("^", max(1, length)))
}

// printCacheStats reports the counters maintained by the expression cache.
func printCacheStats(out io.Writer) {
	families, err := prometheus.DefaultGatherer.Gather()
	if err != nil {
		log.Errorf("gathering statistics: %s", err)
		return
	}
	//
	var lines []string
	//
	for _, family := range families {
		if !strings.HasPrefix(family.GetName(), "matexpr_") {
			continue
		}
		//
		for _, metric := range family.GetMetric() {
			var labels []string
			//
			for _, label := range metric.GetLabel() {
				labels = append(labels, fmt.Sprintf("%s=%s", label.GetName(), label.GetValue()))
			}
			//
			lines = append(lines, fmt.Sprintf("%s{%s} %.0f", family.GetName(),
				strings.Join(labels, ","), metric.GetCounter().GetValue()))
		}
	}
	//
	sort.Strings(lines)
	//
	for _, l := range lines {
		fmt.Fprintln(out, l)
	}
	//
	fmt.Fprintf(out, "matexpr_intern_cache_size %d\n", matrix.CacheSize())
}

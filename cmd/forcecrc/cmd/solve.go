/*
 * Copyright 2017 Dgraph Labs, Inc. and Contributors
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/forcecrc/force"
)

var solveMode string

var solveCmd = &cobra.Command{
	Use:   "solve <register> <target>",
	Short: "Print the binary and printable patches for one register and target.",
	Long: `
Print the 4 byte binary patch and the 6 byte printable patch that move the
CRC-32 register from <register> to <target>. Each result is replayed through
the register and reported as OK or FAIL.
`,
	Args: cobra.ExactArgs(2),
	RunE: runSolve,
}

func init() {
	RootCmd.AddCommand(solveCmd)
	solveCmd.Flags().StringVar(&solveMode, "mode", "both",
		`Which patches to compute: "binary", "ascii" or "both".`)
}

func runSolve(cmd *cobra.Command, args []string) error {
	state, target, err := parseStateArgs(args)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	switch solveMode {
	case "binary":
		printBinary(out, state, target)
		return nil
	case "ascii":
		return printASCII(cmd, state, target)
	case "both":
		printBinary(out, state, target)
		fmt.Fprintln(out)
		return printASCII(cmd, state, target)
	}
	return errors.Errorf("unknown --mode %q", solveMode)
}

func printBinary(out io.Writer, state, target uint32) {
	p := force.Binary(state, target)
	ok := verified(state, target, p[:])

	fmt.Fprintf(out, "          initial: 0x%08x\n", state)
	fmt.Fprintf(out, "           target: 0x%08x\n", target)
	fmt.Fprintf(out, "           status: %s\n", status(ok))
	fmt.Fprintf(out, "     bytes to add: 0x%02x 0x%02x 0x%02x 0x%02x\n", p[0], p[1], p[2], p[3])
}

func printASCII(cmd *cobra.Command, state, target uint32) error {
	solver, err := newSolver()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	p, err := solver.ASCII(contextOf(cmd), state, target)

	fmt.Fprintf(out, "          initial: 0x%08x\n", state)
	fmt.Fprintf(out, "           target: 0x%08x\n", target)
	if err != nil {
		fmt.Fprintf(out, "           status: %s\n", status(false))
		return errors.Wrapf(err, "alphabet %s", solver.Options().Alphabet.Name())
	}
	ok := verified(state, target, p[:])
	fmt.Fprintf(out, "           status: %s\n", status(ok))
	fmt.Fprintf(out, "    string to add: %s\n", quoteIfNeeded(p.String()))
	return nil
}

// quoteIfNeeded quotes patches with leading or trailing spaces so they
// survive copying from a terminal.
func quoteIfNeeded(s string) string {
	if strings.TrimSpace(s) != s || strings.ContainsAny(s, "\"'`\\") {
		return fmt.Sprintf("%q", s)
	}
	return s
}

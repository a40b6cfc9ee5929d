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
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dgraph-io/forcecrc/crc"
	"github.com/dgraph-io/forcecrc/force"
	"github.com/dgraph-io/forcecrc/y"
)

var (
	alphabetSpec string
	paddingFlag  string
	debugLog     bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "forcecrc",
	Short: "Compute patches that force a CRC-32 to a chosen value.",
	Long: `
forcecrc computes short byte sequences that, appended to data whose CRC-32
register is known, make the register equal a chosen value. A 4 byte patch can
reach any value; a 6 byte patch can be restricted to printable characters.

Register and target values are hexadecimal, with or without a 0x prefix.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := RootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	RootCmd.PersistentFlags().StringVar(&alphabetSpec, "alphabet", "printable",
		`Alphabet for printable patches: "printable", "alnum", "full" or "chars:<members>".`)
	RootCmd.PersistentFlags().StringVar(&paddingFlag, "padding", "",
		"Two alphabet characters the printable search starts from. Defaults to the first member twice.")
	RootCmd.PersistentFlags().BoolVar(&debugLog, "debug", false, "Enable debug logging.")
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}

func logger() y.Logger {
	return y.NewLogger(debugLog)
}

// newSolver builds a solver from the persistent flags.
func newSolver() (*force.Solver, error) {
	a, err := force.ParseAlphabet(alphabetSpec)
	if err != nil {
		return nil, err
	}
	opt := force.DefaultOptions().WithAlphabet(a)
	if paddingFlag != "" {
		opt = opt.WithPadding([]byte(paddingFlag))
	}
	return force.New(opt)
}

func parseStateArgs(args []string) (uint32, uint32, error) {
	state, err := force.ParseUint32(args[0])
	if err != nil {
		return 0, 0, err
	}
	target, err := force.ParseUint32(args[1])
	if err != nil {
		return 0, 0, err
	}
	return state, target, nil
}

// verified replays patch from state and reports whether it lands on target.
func verified(state, target uint32, patch []byte) bool {
	return y.VerifyState(crc.State(state), patch, crc.State(target)) == nil
}

func status(ok bool) string {
	if ok {
		return "OK"
	}
	return "FAIL"
}

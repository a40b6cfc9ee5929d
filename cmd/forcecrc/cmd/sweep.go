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

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/forcecrc/force"
)

var sweepOpt struct {
	start uint32
	mul   uint32
	count int
	ascii bool
}

var sweepCmd = &cobra.Command{
	Use:   "sweep [target...]",
	Short: "Solve a series of registers for each target and report any failure.",
	Long: `
For every target, start from --start and multiply the register by --mul after
each step, --count times. Each step solves for the target, replays the patch
and prints one status line. Targets default to 0, aaaaaaaa, 12345678 and
ffffffff.
`,
	RunE: runSweep,
}

func init() {
	RootCmd.AddCommand(sweepCmd)
	f := sweepCmd.Flags()
	f.Uint32Var(&sweepOpt.start, "start", 7, "First register of every series.")
	f.Uint32Var(&sweepOpt.mul, "mul", 51, "Multiplier applied to the register after each step.")
	f.IntVar(&sweepOpt.count, "count", 100, "Steps per target.")
	f.BoolVar(&sweepOpt.ascii, "ascii", false, "Sweep printable patches instead of binary ones.")
}

func runSweep(cmd *cobra.Command, args []string) error {
	targets := []uint32{0x00000000, 0xaaaaaaaa, 0x12345678, 0xffffffff}
	if len(args) > 0 {
		targets = targets[:0]
		for _, a := range args {
			t, err := force.ParseUint32(a)
			if err != nil {
				return err
			}
			targets = append(targets, t)
		}
	}
	solver, err := newSolver()
	if err != nil {
		return err
	}
	ctx := contextOf(cmd)
	out := cmd.OutOrStdout()

	var failed int
	for _, target := range targets {
		if sweepOpt.ascii {
			fmt.Fprintf(out, "\n\nCRC Test ASCII - Wanted output: 0x%08x\n\n", target)
		} else {
			fmt.Fprintf(out, "\n\nCRC Test - Wanted output: 0x%08x\n\n", target)
		}
		state := sweepOpt.start
		for i := 0; i < sweepOpt.count; i++ {
			if !sweepOpt.ascii {
				p := solver.Binary(state, target)
				ok := verified(state, target, p[:])
				if !ok {
					failed++
				}
				fmt.Fprintf(out, "    initial: 0x%08x %-4s -  bytes to add: { 0x%02x, 0x%02x, 0x%02x, 0x%02x }\n",
					state, status(ok), p[0], p[1], p[2], p[3])
			} else {
				p, err := solver.ASCII(ctx, state, target)
				switch {
				case errors.Is(err, force.ErrNoSolution):
					failed++
					fmt.Fprintf(out, "    initial: 0x%08x %-4s -  no printable patch\n", state, status(false))
				case err != nil:
					return err
				default:
					ok := verified(state, target, p[:])
					if !ok {
						failed++
					}
					fmt.Fprintf(out, "    initial: 0x%08x %-4s -  string to add: %s\n",
						state, status(ok), p.String())
				}
			}
			state *= sweepOpt.mul
		}
	}
	if failed > 0 {
		return errors.Errorf("%d of %d solves failed", failed, len(targets)*sweepOpt.count)
	}
	return nil
}

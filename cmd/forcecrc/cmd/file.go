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
	"bufio"
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/dgraph-io/forcecrc/crc"
	"github.com/dgraph-io/forcecrc/force"
	"github.com/dgraph-io/forcecrc/y"
)

var fileOpt struct {
	ascii  bool
	dryRun bool
}

var fileCmd = &cobra.Command{
	Use:   "file <path> <checksum>",
	Short: "Append a patch to a file so that its CRC-32 becomes <checksum>.",
	Long: `
Compute the standard CRC-32 of the file, then append the patch that makes the
checksum of the extended file equal <checksum>. With --ascii the patch is 6
characters from --alphabet instead of 4 arbitrary bytes. The file is read back
after writing and the new checksum verified.
`,
	Args: cobra.ExactArgs(2),
	RunE: runFile,
}

func init() {
	RootCmd.AddCommand(fileCmd)
	fileCmd.Flags().BoolVar(&fileOpt.ascii, "ascii", false, "Append a printable patch.")
	fileCmd.Flags().BoolVar(&fileOpt.dryRun, "dry-run", false,
		"Print the patch without modifying the file.")
}

// fileState streams path through a register starting at the standard seed.
func fileState(path string) (crc.State, int64, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()

	e := crc.NewEngine(crc.Seed)
	n, err := io.Copy(e, bufio.NewReader(f))
	if err != nil {
		return 0, 0, errors.Wrapf(err, "while reading %s", path)
	}
	return e.State(), n, nil
}

func runFile(cmd *cobra.Command, args []string) error {
	path := args[0]
	want, err := force.ParseUint32(args[1])
	if err != nil {
		return err
	}
	log := logger()
	out := cmd.OutOrStdout()

	state, size, err := fileState(path)
	if err != nil {
		return err
	}
	log.Debugf("%s: %s, crc32 0x%08x", path, humanize.IBytes(uint64(size)), state.Finalize())

	// The published checksum is the complement of the register, so the
	// register has to reach the complement of the wanted checksum.
	target := crc.FromChecksum(want)
	var patch []byte
	if fileOpt.ascii {
		solver, err := newSolver()
		if err != nil {
			return err
		}
		p, err := solver.ASCII(contextOf(cmd), state.Value(), target.Value())
		if err != nil {
			return errors.Wrapf(err, "while patching %s", path)
		}
		patch = p[:]
	} else {
		p := force.Binary(state.Value(), target.Value())
		patch = p[:]
	}

	fmt.Fprintf(out, "             file: %s (%s)\n", path, humanize.IBytes(uint64(size)))
	fmt.Fprintf(out, "          current: 0x%08x\n", state.Finalize())
	fmt.Fprintf(out, "           target: 0x%08x\n", want)
	fmt.Fprintf(out, "            patch: %x\n", patch)
	if fileOpt.dryRun {
		return nil
	}

	if err := appendFile(path, patch); err != nil {
		return err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "while re-reading %s", path)
	}
	err = y.VerifyChecksum(data, want)
	fmt.Fprintf(out, "           status: %s\n", status(err == nil))
	if err != nil {
		return errors.Wrapf(err, "%s", path)
	}
	log.Infof("Patched %s, now %s with crc32 0x%08x", path, humanize.IBytes(uint64(len(data))), want)
	return nil
}

func appendFile(path string, patch []byte) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return err
	}
	if _, err := f.Write(patch); err != nil {
		return y.CombineErrors(errors.Wrapf(err, "while appending to %s", path), f.Close())
	}
	if err := f.Sync(); err != nil {
		return y.CombineErrors(err, f.Close())
	}
	return f.Close()
}

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
	"time"

	"github.com/spf13/cobra"

	"github.com/dgraph-io/forcecrc/server"
)

var serveOpt = server.DefaultOptions()

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the solvers over HTTP.",
	Long: `
Serve JSON endpoints for both solvers:

  GET /v1/binary?state=<hex>&target=<hex>
  GET /v1/ascii?state=<hex>&target=<hex>[&alphabet=...][&padding=..]

A printable search that finds nothing answers 422 with "ok": false. Debug
pages are served at /debug/vars, /debug/requests and /z.
`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
	f := serveCmd.Flags()
	f.StringVar(&serveOpt.Addr, "addr", serveOpt.Addr, "Address to listen on.")
	f.Int64Var(&serveOpt.CacheEntries, "cache-entries", serveOpt.CacheEntries,
		"Number of solve results to cache. 0 disables the cache.")
	f.DurationVar(&serveOpt.SolveTimeout, "solve-timeout", 5*time.Second,
		"Upper bound on a single printable search.")
	f.BoolVar(&serveOpt.DebugPages, "debug-pages", serveOpt.DebugPages,
		"Serve /debug/vars, /debug/requests and /z.")
}

func runServe(cmd *cobra.Command, args []string) error {
	s, err := server.New(serveOpt.WithLogger(logger()))
	if err != nil {
		return err
	}
	defer s.Close()
	return s.ListenAndServe(contextOf(cmd))
}

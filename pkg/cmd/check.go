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

	"github.com/consensys/go-maxbits/pkg/word"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check [flags] value width",
	Short: "Check that a value fits within a declared bit-width.",
	Long: `Check that a value fits within a declared bit-width (i.e. uses no
more significant bits than the width permits), exiting with a non-zero status
otherwise.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		data, width := parseOperand(args[0], args[1])
		log.Debugf("checking %s against %s", data, width)
		// Run the fits check
		w := word.New(data, width)
		//
		if w.IsEmpty() {
			fmt.Printf("%s needs u%d, does not fit %s\n", data, data.BitLen(), width)
			os.Exit(1)
		}
		//
		fmt.Println(w.Unwrap())
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

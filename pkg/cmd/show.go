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
	"strings"

	"github.com/consensys/go-maxbits/pkg/word"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// showCmd represents the show command
var showCmd = &cobra.Command{
	Use:   "show [flags] value width",
	Short: "Show the bit layout of a width-bounded word.",
	Long: `Show a width-bounded word along with its bit layout, byte width and
leading-zero margin.  The bit layout is wrapped to the terminal width when
standard output is a terminal.`,
	Args: cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		// Configure log level
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
		//
		data, width := parseOperand(args[0], args[1])
		w := word.New(data, width)
		//
		if w.IsEmpty() {
			fmt.Printf("%s needs u%d, does not fit %s\n", data, data.BitLen(), width)
			os.Exit(1)
		}
		//
		printWord(w.Unwrap())
	},
}

// Print a word along with its bit layout, wrapping rows of bits to the
// enclosing terminal (when there is one).
func printWord(w word.Word) {
	cols := 80
	//
	if term.IsTerminal(0) {
		if tw, _, err := term.GetSize(0); err == nil {
			cols = tw
		}
	}
	//
	log.Debugf("wrapping bit layout at %d columns", cols)
	//
	fmt.Println(w)
	fmt.Printf("byte width: %d\n", w.ByteWidth())
	fmt.Printf("margin: %d leading zeros beyond u%d\n",
		w.Uint128().LeadingZeros()-uint(word.MaxWidth-w.BitWidth()), uint(w.BitWidth()))
	// Render bits, most significant first.
	var builder strings.Builder
	//
	for i := uint(w.BitWidth()); i > 0; i-- {
		if w.Bit(i - 1) {
			builder.WriteRune('1')
		} else {
			builder.WriteRune('0')
		}
	}
	// Wrap into rows
	bits := builder.String()
	//
	for len(bits) > cols {
		fmt.Println(bits[:cols])
		bits = bits[cols:]
	}
	//
	fmt.Println(bits)
}

func init() {
	rootCmd.AddCommand(showCmd)
}

package cmd

import (
	"fmt"
	"math/big"
	"os"
	"strconv"

	"github.com/consensys/go-maxbits/pkg/word"
	"github.com/spf13/cobra"
)

// GetFlag gets an expected flag, or panics if an error arises.
func GetFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Parse a value / width argument pair, where the value accepts any base
// prefix understood by big.Int (e.g. 0x..., 0b...).  Malformed arguments
// terminate the command.
func parseOperand(value string, width string) (word.Uint128, word.Width) {
	var val big.Int
	//
	if _, ok := val.SetString(value, 0); !ok {
		fmt.Printf("malformed value: %s\n", value)
		os.Exit(2)
	}
	//
	data, ok := word.Uint128FromBig(&val)
	if !ok {
		fmt.Printf("value exceeds %s storage: %s\n", word.MaxWidth, value)
		os.Exit(2)
	}
	//
	w, err := strconv.ParseUint(width, 10, 16)
	if err != nil || !word.Width(w).IsValid() {
		fmt.Printf("malformed width (expected 0..%d): %s\n", uint(word.MaxWidth), width)
		os.Exit(2)
	}
	//
	return data, word.Width(w)
}

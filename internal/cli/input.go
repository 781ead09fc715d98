package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
)

// stdinName stands for standard input in argument lists.
const stdinName = "-"

// inputNames returns args, or stdin when args is empty.
func inputNames(args []string) []string {
	if len(args) == 0 {
		return []string{stdinName}
	}
	return args
}

func readInput(cmd *cobra.Command, name string) ([]byte, error) {
	if name == stdinName {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(name)
	if err != nil {
		return nil, fmt.Errorf("failed to read grid file: %w", err)
	}
	return data, nil
}

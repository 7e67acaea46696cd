package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// confirmOverwrite returns the overwrite confirmation used by the converter.
// With force set every overwrite is approved. Otherwise the user is asked
// y/N; when stdin is not a terminal no prompt is possible and the overwrite
// is declined.
func confirmOverwrite(cmd *cobra.Command, force bool) func(path string) (bool, error) {
	return func(path string) (bool, error) {
		if force {
			return true, nil
		}
		in := cmd.InOrStdin()
		if !promptable(in) {
			return false, nil
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Output file %s already exists. Overwrite? (y/N): ", path)
		line, err := bufio.NewReader(in).ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			return false, err
		}
		return strings.EqualFold(strings.TrimSpace(line), "y"), nil
	}
}

func promptable(in io.Reader) bool {
	file, ok := in.(*os.File)
	if !ok {
		// Injected readers (tests, pipes wired by a caller) can answer.
		return true
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"fb2sci/internal/scipatch"
	"fb2sci/internal/sysex"
)

func newListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <bankfile>",
		Short: "List the 48 voice names in an FB-01 bank dump",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			bank, err := sysex.ReadDumpFile(args[0])
			if err != nil {
				return err
			}
			raw, err := bank.ExtractVoices()
			if err != nil {
				return err
			}
			data := scipatch.Denibble(raw)

			rows := make([][]string, 0, sysex.VoiceCount)
			for i := 0; i < sysex.VoiceCount; i++ {
				name := scipatch.VoiceName(data, i)
				if name == "" {
					name = "(unnamed)"
				}
				rows = append(rows, []string{strconv.Itoa(i + 1), name})
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Bank %s: %s\n", bank.ID, args[0])
			fmt.Fprintln(out, renderTable([]string{"Voice", "Name"}, rows))
			return nil
		},
	}
}

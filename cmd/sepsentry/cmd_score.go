package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"sepsentry/batch"
)

var (
	scoreChunkSize int
	scoreJSON      bool
)

var scoreCmd = &cobra.Command{
	Use:   "score <file.csv>",
	Short: "Score a CSV file with the three-model ensemble",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read %s: %w", args[0], err)
		}

		result, err := batch.Run(string(data), scoreChunkSize)
		if err != nil {
			return err
		}

		if scoreJSON {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(result)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "total rows:      %d\n", result.TotalRows)
		fmt.Fprintf(out, "scored:          %d\n", result.Count)
		fmt.Fprintf(out, "sepsis detected: %d\n", result.Summary.SepsisDetected)
		fmt.Fprintf(out, "borderline:      %d\n", result.Summary.Borderline)
		fmt.Fprintf(out, "no sepsis:       %d\n", result.Summary.NoSepsis)
		return nil
	},
}

func init() {
	scoreCmd.Flags().IntVar(&scoreChunkSize, "chunk-size", batch.DefaultChunkSize, "rows scored per progress report")
	scoreCmd.Flags().BoolVar(&scoreJSON, "json", false, "emit the full prediction set as JSON")
}

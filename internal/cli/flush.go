package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// flushCommand removes the auxiliary log file.
func (c *CLI) flushCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "flush",
		Short: "Delete the auxiliary log file",
		Long: `Delete the auxiliary log file (grafo.log unless --log-file says
otherwise). Runs append to it until it is flushed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if c.LogFile == "" {
				printInfo("No log file configured")
				return nil
			}
			err := os.Remove(c.LogFile)
			if os.IsNotExist(err) {
				printInfo("Nothing to flush: %s does not exist", c.LogFile)
				return nil
			}
			if err != nil {
				return fmt.Errorf("flush %s: %w", c.LogFile, err)
			}
			printSuccess("Flushed %s", c.LogFile)
			return nil
		},
	}
}

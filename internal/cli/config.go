package cli

import (
	"fmt"
	"math/rand/v2"

	"github.com/spf13/cobra"

	"github.com/matzehuels/grafo/pkg/config"
	"github.com/matzehuels/grafo/pkg/generator"
)

// configCommand groups helpers for writing configuration files.
func (c *CLI) configCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Work with graph configuration files",
	}

	cmd.AddCommand(c.configExampleCommand())
	cmd.AddCommand(c.configShowCommand())

	return cmd
}

// configExampleCommand prints the bundled example configuration.
func (c *CLI) configExampleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "example",
		Short: "Print an example TOML configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := cmd.OutOrStdout().Write(config.Example)
			return err
		},
	}
}

// configShowCommand loads a configuration and prints its resolved tree.
// Sampled values are shown as <sampler> since every access draws anew.
func (c *CLI) configShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <config>",
		Short: "Parse a configuration file and print its structure",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root, err := config.Load(args[0], rand.New(rand.NewPCG(0, 0)))
			if err != nil {
				return err
			}
			m, ok := root.(config.Map)
			if !ok {
				return fmt.Errorf("%s: top level is not a table", args[0])
			}

			printTitle(args[0])
			for _, key := range m.Keys() {
				if key != generator.KeyGroups {
					printKeyValue(key, config.Dump(m[key]))
				}
			}
			if groups, ok := m[generator.KeyGroups].(config.Seq); ok {
				for i, g := range groups {
					printKeyValue(fmt.Sprintf("%s[%d]", generator.KeyGroups, i), config.Dump(g))
				}
			}
			return nil
		},
	}
}

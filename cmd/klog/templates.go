package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTemplatesCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "templates",
		Short: "List available templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(root)
			if err != nil {
				return err
			}

			for _, name := range registry.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}

	return cmd
}

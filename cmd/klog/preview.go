package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/klogd/klog/internal/tui"
)

func newPreviewCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Interactively preview templates, levels, and sample events",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(root)
			if err != nil {
				return err
			}

			program := tea.NewProgram(tui.NewModel(registry), tea.WithAltScreen())
			_, err = program.Run()
			return err
		},
	}

	return cmd
}

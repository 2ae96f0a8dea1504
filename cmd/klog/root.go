package main

import (
	"github.com/spf13/cobra"

	"github.com/klogd/klog/internal/template"
)

type rootFlags struct {
	templatesDir string
	noColor      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "klog",
		Short:         "klog renders log events as aligned, colored terminal columns",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&flags.templatesDir, "templates-dir", "", "Directory of template YAML files")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false, "Disable ANSI styling")

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newDemoCmd(flags))
	cmd.AddCommand(newTemplatesCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// loadRegistry starts from the built-in templates and overlays any user
// templates from --templates-dir.
func loadRegistry(flags *rootFlags) (*template.Registry, error) {
	registry := template.Builtin()
	if flags.templatesDir != "" {
		if err := registry.LoadDir(flags.templatesDir); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

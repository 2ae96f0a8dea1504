package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/klogd/klog/internal/layout"
	"github.com/klogd/klog/internal/logger"
)

type renderFlags struct {
	message  string
	reason   string
	status   string
	level    string
	template string
	width    int
}

func newRenderCmd(root *rootFlags) *cobra.Command {
	flags := &renderFlags{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render a single log event and print the block",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(root)
			if err != nil {
				return err
			}

			level, err := layout.ParseLevel(flags.level)
			if err != nil {
				return err
			}

			log, err := logger.New(logger.Options{
				Level:       "debug",
				Template:    flags.template,
				Registry:    registry,
				Writer:      cmd.OutOrStdout(),
				NoColor:     root.noColor,
				Diagnostics: cmd.ErrOrStderr(),
			})
			if err != nil {
				return err
			}

			var opts []logger.Option
			if flags.reason != "" {
				opts = append(opts, logger.WithReason(flags.reason))
			}
			if flags.status != "" {
				opts = append(opts, logger.WithStatus(flags.status))
			}

			width := flags.width
			if width == 0 {
				width = terminalWidth(cmd.OutOrStdout())
			}
			if width > 0 {
				opts = append(opts, logger.WithOverride(layout.Override{TotalWidth: &width}))
			}

			fmt.Fprintln(cmd.OutOrStdout(), log.Render(level, flags.message, opts...))
			return nil
		},
	}

	cmd.Flags().StringVarP(&flags.message, "message", "m", "", "Primary message (required)")
	cmd.Flags().StringVarP(&flags.reason, "reason", "r", "", "Secondary reason column")
	cmd.Flags().StringVarP(&flags.status, "status", "s", "", "Status badge")
	cmd.Flags().StringVarP(&flags.level, "level", "l", "info", "Event level (debug|info|warning|error|critical)")
	cmd.Flags().StringVarP(&flags.template, "template", "t", "", "Template name")
	cmd.Flags().IntVarP(&flags.width, "width", "w", 0, "Total block width (0 = detect terminal, fall back to template)")
	_ = cmd.MarkFlagRequired("message")

	return cmd
}

// terminalWidth returns the width of w when it is a terminal, zero otherwise.
func terminalWidth(w io.Writer) int {
	f, ok := w.(*os.File)
	if !ok {
		return 0
	}
	if !term.IsTerminal(int(f.Fd())) {
		return 0
	}
	width, _, err := term.GetSize(int(f.Fd()))
	if err != nil {
		return 0
	}
	return width
}

package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/klogd/klog/internal/logger"
)

var demoBannerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))

func newDemoCmd(root *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render a tour of sample events across the templates",
		RunE: func(cmd *cobra.Command, args []string) error {
			registry, err := loadRegistry(root)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			rule := strings.Repeat("=", 80)

			for _, name := range []string{"default", "basic", "none"} {
				log, err := logger.New(logger.Options{
					Level:       "debug",
					Template:    name,
					Registry:    registry,
					Writer:      out,
					NoColor:     root.noColor,
					Diagnostics: cmd.ErrOrStderr(),
				})
				if err != nil {
					return err
				}

				banner := fmt.Sprintf("Template %q", name)
				if !root.noColor {
					banner = demoBannerStyle.Render(banner)
				}
				fmt.Fprintln(out, rule)
				fmt.Fprintln(out, banner)
				fmt.Fprintln(out, rule)

				log.Info("System check completed successfully",
					logger.WithReason("Plenty of space left"))
				log.Warning("Disk space running low",
					logger.WithReason("Less than 10% space remaining"))
				log.Error("Failed to save file",
					logger.WithReason("Permission denied"))
				log.Critical("Failed to save file",
					logger.WithReason("Permission denied"))
				log.Debug("Debugging application",
					logger.WithReason("Variable x has unexpected value"))

				// Overflow behavior: a long message wraps, a long token slices.
				log.Warning("Lorem ipsum dolor sit amet, consectetur adipiscing elit sed do eiusmod tempor incididunt ut labore et dolore magna aliqua",
					logger.WithReason("wraps at word bounds"))
				log.Debug(strings.Repeat("deadbeef", 12),
					logger.WithReason("no space to break on"))

				// Wide characters keep the columns aligned.
				log.Info("ログ出力の幅も揃います", logger.WithReason("日本語"))

				fmt.Fprintln(out)
			}

			return nil
		},
	}

	return cmd
}

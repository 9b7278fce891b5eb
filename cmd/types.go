package cmd

import (
	"github.com/pyama86/irtrack/handler"
	"github.com/spf13/cobra"
)

var typeSeverity string

var typesCmd = &cobra.Command{
	Use:   "types",
	Short: "List incident types",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(h *handler.Handler) error {
			return h.ListIncidentTypes(typeSeverity)
		})
	},
}

var typeFormat string

var typeCmd = &cobra.Command{
	Use:   "type <id>",
	Short: "Show an incident type's response template",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(h *handler.Handler) error {
			return h.ShowIncidentType(args[0], typeFormat)
		})
	},
}

func init() {
	typesCmd.Flags().StringVar(&typeSeverity, "severity", "", "filter by severity (Critical, High, Medium, Low)")
	typeCmd.Flags().StringVar(&typeFormat, "format", handler.FormatMarkdown, "output format (markdown, html, blocks, json)")
	rootCmd.AddCommand(typesCmd, typeCmd)
}

package cmd

import (
	"github.com/pyama86/irtrack/handler"
	"github.com/spf13/cobra"
)

var activeOnly bool

var incidentsCmd = &cobra.Command{
	Use:   "incidents",
	Short: "List incidents with their workflow stage",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(h *handler.Handler) error {
			return h.ListIncidents(activeOnly)
		})
	},
}

var incidentFormat string

var incidentCmd = &cobra.Command{
	Use:   "incident <id>",
	Short: "Show an incident and its initial report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(h *handler.Handler) error {
			return h.ShowIncident(args[0], incidentFormat)
		})
	},
}

var (
	stagesFormat  string
	stagesCurrent int
)

var stagesCmd = &cobra.Command{
	Use:   "stages",
	Short: "List workflow stages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd, func(h *handler.Handler) error {
			return h.ListWorkflowStages(stagesFormat, stagesCurrent)
		})
	},
}

func init() {
	incidentsCmd.Flags().BoolVar(&activeOnly, "active", false, "only incidents that are not closed")
	incidentCmd.Flags().StringVar(&incidentFormat, "format", handler.FormatMarkdown, "output format (markdown, blocks, json)")
	stagesCmd.Flags().StringVar(&stagesFormat, "format", "table", "output format (table, blocks, json)")
	stagesCmd.Flags().IntVar(&stagesCurrent, "current", -1, "stage index to highlight in blocks output")
	rootCmd.AddCommand(incidentsCmd, incidentCmd, stagesCmd)
}

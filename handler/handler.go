package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"text/tabwriter"
	"time"

	"github.com/pyama86/irtrack/domain/entity"
	"github.com/pyama86/irtrack/domain/repository"
	"github.com/pyama86/irtrack/presentation/blocks"
	"github.com/pyama86/irtrack/presentation/draft"
	"github.com/pyama86/irtrack/presentation/report"
	"github.com/slack-go/slack"
)

const (
	FormatMarkdown = "markdown"
	FormatBlocks   = "blocks"
	FormatJSON     = "json"
	FormatHTML     = "html"
)

type Handler struct {
	ctx        context.Context
	repository repository.Repository
	renderer   *draft.Renderer
	loc        *time.Location
	out        io.Writer
}

func NewHandler(ctx context.Context, repo repository.Repository, renderer *draft.Renderer, loc *time.Location, out io.Writer) *Handler {
	if loc == nil {
		loc = time.UTC
	}
	return &Handler{
		ctx:        ctx,
		repository: repo,
		renderer:   renderer,
		loc:        loc,
		out:        out,
	}
}

// Setup はストアを初期化してハンドラを組み立てる
func Setup(ctx context.Context, configPath string, out io.Writer) (*Handler, func(), error) {
	cfg, err := repository.NewConfigRepository(configPath)
	if err != nil {
		return nil, nil, err
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: cfg.SlogLevel()})))

	stages := repository.NewWorkflowStageTable()
	repo := repository.NewRepository(
		repository.NewIncidentTypeCatalog(),
		repository.NewIncidentRegistry(stages),
		stages,
	)
	for _, incident := range repository.DanglingIncidents(ctx, repo) {
		slog.Warn("incident references unknown type", slog.String("id", incident.ID), slog.String("type", incident.Type))
	}

	renderer := draft.NewRenderer(cfg.DraftCacheTTL)
	go renderer.Start()

	return NewHandler(ctx, repo, renderer, cfg.Location(), out), renderer.Stop, nil
}

func (h *Handler) ListIncidentTypes(severity string) error {
	var types []entity.IncidentType
	if severity == "" {
		types = h.repository.IncidentTypes(h.ctx)
	} else {
		types = h.repository.IncidentTypesBySeverity(h.ctx, entity.Severity(severity))
	}

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSEVERITY\tBADGE\tSLA\tAUTO ALERTS")
	for _, t := range types {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%dh\t%t\n",
			t.ID, t.Name, t.Severity, entity.SeverityClass(string(t.Severity)), t.SLAHours, t.AutoAlerts)
	}
	return w.Flush()
}

func (h *Handler) ShowIncidentType(id, format string) error {
	t := h.repository.IncidentTypeByID(h.ctx, id)
	if t == nil {
		return fmt.Errorf("%w: %s", repository.ErrIncidentTypeNotFound, id)
	}

	switch format {
	case FormatBlocks:
		return h.writeBlocks(blocks.IncidentTypeCard(*t))
	case FormatJSON:
		return h.writeJSON(t)
	case FormatHTML:
		_, err := fmt.Fprintln(h.out, h.renderer.HTML(*t))
		return err
	default:
		_, err := fmt.Fprintln(h.out, t.DraftTemplate)
		return err
	}
}

func (h *Handler) ListIncidents(activeOnly bool) error {
	var incidents []entity.IncidentWithStatus
	if activeOnly {
		incidents = h.repository.ActiveIncidentsWithStatus(h.ctx)
	} else {
		incidents = h.repository.IncidentsWithStatus(h.ctx)
	}

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTITLE\tPRIORITY\tSTATUS\tASSIGNEE\tCREATED")
	for _, i := range incidents {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\t%s\n",
			i.ID, i.Title, i.Priority, i.StatusName, i.Assignee, i.Created.In(h.loc).Format("2006-01-02 15:04"))
	}
	return w.Flush()
}

func (h *Handler) ShowIncident(id, format string) error {
	incident := h.repository.IncidentWithStatus(h.ctx, id)
	if incident == nil {
		return fmt.Errorf("%w: %s", repository.ErrIncidentNotFound, id)
	}
	incident.Created = incident.Created.In(h.loc)

	typeName := ""
	t := repository.ResolveIncidentType(h.ctx, h.repository, &incident.Incident)
	if t != nil {
		typeName = t.Name
	}

	switch format {
	case FormatBlocks:
		bs := blocks.IncidentStatus(*incident, h.repository.StatusColor(incident.StatusIndex), typeName)
		if t != nil {
			bs = append(bs, blocks.ResponderAlert(incident.Incident, *t)...)
		}
		return h.writeBlocks(bs)
	case FormatJSON:
		return h.writeJSON(incident)
	default:
		_, err := fmt.Fprint(h.out, report.Render(incident.Incident, incident.StatusName, typeName))
		return err
	}
}

func (h *Handler) ListWorkflowStages(format string, current int) error {
	stages := h.repository.WorkflowStages(h.ctx)
	switch format {
	case FormatBlocks:
		return h.writeBlocks(blocks.WorkflowStages(stages, current))
	case FormatJSON:
		return h.writeJSON(stages)
	}

	w := tabwriter.NewWriter(h.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tSTATUS\tCOLOR\tDESCRIPTION")
	for i := range stages {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n",
			i, h.repository.StatusName(i), h.repository.StatusColor(i), h.repository.StatusDescription(i))
	}
	return w.Flush()
}

func (h *Handler) writeBlocks(bs []slack.Block) error {
	return h.writeJSON(slack.Blocks{BlockSet: bs})
}

func (h *Handler) writeJSON(v any) error {
	enc := json.NewEncoder(h.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return nil
}

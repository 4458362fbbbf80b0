package out

import (
	"fmt"
	"math"
	"strings"
	"time"

	"cruxlog/internal/modules/session/domain"
	sessionout "cruxlog/internal/modules/session/port/out"
	"cruxlog/internal/platform/markdown"
	"cruxlog/internal/platform/slug"
)

// SummaryMeta is the YAML frontmatter heading every session report.
type SummaryMeta struct {
	SchemaVersion int     `yaml:"schema_version"`
	ID            string  `yaml:"id"`
	StartedAt     string  `yaml:"started_at"`
	Type          string  `yaml:"type"`
	Goal          string  `yaml:"goal"`
	Level         string  `yaml:"level"`
	Clip          string  `yaml:"clip"`
	LowSleep      bool    `yaml:"low_sleep"`
	Discomfort    bool    `yaml:"discomfort"`
	Audio         bool    `yaml:"audio"`
	TotalAttempts int     `yaml:"total_attempts"`
	Sends         int     `yaml:"sends"`
	SendRate      float64 `yaml:"send_rate"`
	BestHighPoint float64 `yaml:"best_high_point"`
	AvgRPE        float64 `yaml:"avg_rpe"`
}

type MarkdownSummaryRenderer struct{}

func NewMarkdownSummaryRenderer() sessionout.SummaryRenderer {
	return MarkdownSummaryRenderer{}
}

func (MarkdownSummaryRenderer) Render(session domain.SessionData) (string, string, error) {
	cfg := session.Config
	name := slug.Make(session.StartedAt.Format("2006-01-02"), cfg.Level, string(cfg.Type))
	meta := SummaryMeta{
		SchemaVersion: domain.SchemaVersion,
		ID:            session.ID,
		StartedAt:     session.StartedAt.Format(time.RFC3339),
		Type:          string(cfg.Type),
		Goal:          cfg.Goal,
		Level:         cfg.Level,
		Clip:          cfg.SelectedClip,
		LowSleep:      cfg.LowSleep,
		Discomfort:    cfg.Discomfort,
		Audio:         cfg.AudioEnabled,
		TotalAttempts: session.TotalAttempts,
		Sends:         session.Sends,
		SendRate:      round2(session.SendRate),
		BestHighPoint: session.BestHP,
		AvgRPE:        round2(session.AvgRPE),
	}
	rendered, err := markdown.RenderFrontmatter(meta, renderBody(session))
	if err != nil {
		return "", "", err
	}
	return name, rendered, nil
}

func renderBody(session domain.SessionData) string {
	cfg := session.Config
	var sb strings.Builder
	fmt.Fprintf(&sb, "# %s session · %s\n\n", titleCase(string(cfg.Type)), cfg.Level)
	fmt.Fprintf(&sb, "Started %s · goal **%s** · clip *%s*\n\n", session.StartedAt.Format("Mon 02 Jan 2006 15:04"), cfg.Goal, cfg.SelectedClip)
	if flags := conditionFlags(cfg); flags != "" {
		fmt.Fprintf(&sb, "Conditions: %s\n\n", flags)
	}

	sb.WriteString("## Totals\n\n")
	fmt.Fprintf(&sb, "| Attempts | Sends | Send rate | Best high point | Avg RPE |\n")
	fmt.Fprintf(&sb, "|---|---|---|---|---|\n")
	fmt.Fprintf(&sb, "| %d | %d | %.0f%% | %g | %.1f |\n\n", session.TotalAttempts, session.Sends, session.SendRate, session.BestHP, session.AvgRPE)

	sb.WriteString("## Attempts\n\n")
	if len(session.Attempts) == 0 {
		sb.WriteString("_No attempts recorded._\n")
		return sb.String()
	}
	sb.WriteString("| # | Time | Clip | Result | High point | RPE | Rest | Notes |\n")
	sb.WriteString("|---|---|---|---|---|---|---|---|\n")
	for n, a := range session.Attempts {
		result := "fall"
		if a.Success {
			result = "send"
		}
		fmt.Fprintf(&sb, "| %d | %s | %s | %s | %g | %g | %s | %s |\n",
			n+1, a.Time.Format("15:04:05"), cell(a.Clip), result, a.HighPoint, a.RPE, a.Rest, cell(a.Notes))
	}
	return sb.String()
}

func conditionFlags(cfg domain.SessionConfig) string {
	var flags []string
	if cfg.LowSleep {
		flags = append(flags, "low sleep")
	}
	if cfg.Discomfort {
		flags = append(flags, "discomfort")
	}
	return strings.Join(flags, ", ")
}

// cell keeps free text from breaking the table row.
func cell(s string) string {
	s = strings.ReplaceAll(s, "|", "\\|")
	return strings.ReplaceAll(s, "\n", " ")
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

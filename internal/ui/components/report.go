package components

import (
	"github.com/charmbracelet/glamour"

	"cruxlog/internal/platform/markdown"
)

// Report renders session summary markdown for the terminal, dropping the
// frontmatter that is only meant for export.
type Report struct {
	renderer *glamour.TermRenderer
	width    int
}

func NewReport() Report {
	r := Report{}
	r.SetWidth(0)
	return r
}

// SetWidth rebuilds the renderer so tables wrap at the new width.
func (r *Report) SetWidth(w int) {
	if w == r.width && r.renderer != nil {
		return
	}
	r.width = w
	if tr, err := glamour.NewTermRenderer(
		glamour.WithStylePath("dark"),
		glamour.WithWordWrap(w),
	); err == nil {
		r.renderer = tr
	}
}

func (r Report) Render(content string) string {
	body, err := markdown.SplitFrontmatter(content, nil)
	if err != nil {
		body = content
	}
	if r.renderer == nil {
		return body
	}
	out, err := r.renderer.Render(body)
	if err != nil {
		return body
	}
	return out
}

package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	statusYes = "Yes"
	statusNo  = "No"
)

// StatusRenderer renders the output of the status command.
type StatusRenderer struct {
	theme *Theme
}

// NewStatusRenderer creates a status renderer.
func NewStatusRenderer(theme *Theme) *StatusRenderer {
	return &StatusRenderer{theme: theme}
}

// StatusReport is everything the status command shows.
type StatusReport struct {
	DatabasePath string
	Volatile     bool

	TotalDenials         int
	MaxTotalDenials      int
	InitialLaunchPrompts int
	MaxLaunchPrompts     int

	PreventTouch bool
	MediaEnabled bool

	Display DisplayReport
}

// DisplayReport describes the device-wide brightness control.
type DisplayReport struct {
	Backend  string
	Device   string
	Level    int
	MaxLevel int
	CanWrite bool
	Error    string
}

// Render renders the whole report.
func (r *StatusRenderer) Render(report StatusReport) string {
	sections := []string{
		r.renderCounters(report),
		r.renderToggles(report),
		r.renderDisplay(report.Display),
	}
	return strings.Join(sections, "\n\n")
}

func (r *StatusRenderer) renderCounters(report StatusReport) string {
	denialStyle := r.theme.Normal
	if report.TotalDenials >= report.MaxTotalDenials {
		denialStyle = r.theme.WarningStyle
	}

	lines := []string{
		r.row("Total denials", denialStyle.Render(fmt.Sprintf("%d / %d", report.TotalDenials, report.MaxTotalDenials))),
		r.row("Launch prompts", r.theme.Normal.Render(fmt.Sprintf("%d / %d", report.InitialLaunchPrompts, report.MaxLaunchPrompts))),
	}
	if report.TotalDenials >= report.MaxTotalDenials {
		lines = append(lines, r.theme.WarningStyle.Render(IconWarning+" prompting is exhausted, run 'darkscreen reset' to ask again"))
	}

	storage := report.DatabasePath
	if report.Volatile {
		storage = "in memory (database unavailable)"
	}
	lines = append(lines, r.row("Storage", r.theme.Subtle.Render(storage)))

	return r.box(IconDatabase+" Permission prompts", lines)
}

func (r *StatusRenderer) renderToggles(report StatusReport) string {
	lines := []string{
		r.row("preventTouch", r.yesNo(report.PreventTouch)),
		r.row("mediaEnabled", r.yesNo(report.MediaEnabled)),
	}
	return r.box(IconConfig+" Preferences", lines)
}

func (r *StatusRenderer) renderDisplay(d DisplayReport) string {
	lines := []string{r.row("Backend", r.theme.Normal.Render(d.Backend))}

	if d.Error != "" {
		lines = append(lines, r.theme.ErrorStyle.Render(IconX+" "+d.Error))
		return r.box(IconSun+" Display", lines)
	}

	if d.Device != "" {
		lines = append(lines, r.row("Device", r.theme.Normal.Render(d.Device)))
	}
	lines = append(lines,
		r.row("Level", r.theme.Normal.Render(fmt.Sprintf("%d / %d", d.Level, d.MaxLevel))),
		r.row("Writable", r.yesNo(d.CanWrite)),
	)
	return r.box(IconSun+" Display", lines)
}

func (r *StatusRenderer) row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, r.theme.Subtle.Width(16).Render(label), value)
}

func (r *StatusRenderer) yesNo(v bool) string {
	if v {
		return r.theme.SuccessStyle.Render(IconCheck + " " + statusYes)
	}
	return r.theme.Subtle.Render(IconX + " " + statusNo)
}

func (r *StatusRenderer) box(title string, lines []string) string {
	header := r.theme.BoxHeader.Render(r.theme.Highlight.Render(title))
	return r.theme.Box.Render(header + "\n" + strings.Join(lines, "\n"))
}

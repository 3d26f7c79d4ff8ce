// Package cli renders therapist cards for terminal output.
package cli

import (
	"fmt"
	"io"
	"strings"

	"therapist-directory/internal/delivery/dto"
	"therapist-directory/internal/domain/entity"

	"github.com/charmbracelet/lipgloss"
)

const cardWidth = 44

// Palette holds the colours for one display theme.
type Palette struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	Border     lipgloss.Color
	TagBg      lipgloss.Color
	Error      lipgloss.Color
}

var (
	LightPalette = Palette{
		Foreground: lipgloss.Color("#101F38"),
		Accent:     lipgloss.Color("#2E7D32"),
		Muted:      lipgloss.Color("#5C6B7A"),
		Border:     lipgloss.Color("#DCE0E5"),
		TagBg:      lipgloss.Color("#E1E4E8"),
		Error:      lipgloss.Color("#E53935"),
	}
	DarkPalette = Palette{
		Foreground: lipgloss.Color("#F2F2F2"),
		Accent:     lipgloss.Color("#8BC34A"),
		Muted:      lipgloss.Color("#9AA5B1"),
		Border:     lipgloss.Color("#2A3850"),
		TagBg:      lipgloss.Color("#1E2A3D"),
		Error:      lipgloss.Color("#EF5350"),
	}
)

func PaletteFor(theme entity.Theme) Palette {
	if theme.IsDark() {
		return DarkPalette
	}
	return LightPalette
}

// CardPrinter writes therapist cards to a terminal.
type CardPrinter struct {
	out     io.Writer
	palette Palette

	card  lipgloss.Style
	title lipgloss.Style
	muted lipgloss.Style
	tag   lipgloss.Style
	link  lipgloss.Style
	err   lipgloss.Style
}

func NewCardPrinter(out io.Writer, theme entity.Theme) *CardPrinter {
	p := PaletteFor(theme)
	return &CardPrinter{
		out:     out,
		palette: p,
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.Border).
			Foreground(p.Foreground).
			Padding(0, 1).
			Width(cardWidth),
		title: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		muted: lipgloss.NewStyle().Foreground(p.Muted),
		tag:   lipgloss.NewStyle().Background(p.TagBg).Foreground(p.Foreground).Padding(0, 1),
		link:  lipgloss.NewStyle().Underline(true).Foreground(p.Accent),
		err:   lipgloss.NewStyle().Bold(true).Foreground(p.Error),
	}
}

// RenderCard lays out a single card.
func (p *CardPrinter) RenderCard(c dto.TherapistCardResponse) string {
	lines := []string{p.title.Render(c.Name)}
	if c.Stars != "" {
		lines = append(lines, fmt.Sprintf("%s (%.1f)", c.Stars, c.Rating))
	}
	lines = append(lines,
		p.twoColumns("📍 "+c.City, "💰 "+c.Fee),
		p.twoColumns("🕒 "+c.Experience, "👤 "+c.Gender),
	)
	if c.Modes != "" {
		lines = append(lines, p.muted.Render(c.Modes))
	}

	tags := make([]string, 0, len(c.Tags))
	for _, t := range c.Tags {
		tags = append(tags, p.tag.Render(t))
	}
	lines = append(lines, strings.Join(tags, " "))

	if c.ProfileURL != "" {
		lines = append(lines, p.link.Render(c.ProfileURL))
	}

	return p.card.Render(strings.Join(lines, "\n"))
}

// Print writes every card, or the no-results message when the list is empty.
func (p *CardPrinter) Print(list *dto.TherapistListResponse) error {
	if list == nil || len(list.Therapists) == 0 {
		msg := "No matching therapists found."
		if list != nil && list.Message != "" {
			msg = list.Message
		}
		_, err := fmt.Fprintln(p.out, p.muted.Render(msg))
		return err
	}

	for _, c := range list.Therapists {
		if _, err := fmt.Fprintln(p.out, p.RenderCard(c)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(p.out, p.muted.Render(fmt.Sprintf("%d therapist(s) found", list.Total)))
	return err
}

// PrintError writes a terminal error such as a failed dataset load.
func (p *CardPrinter) PrintError(message string) error {
	_, err := fmt.Fprintln(p.out, p.err.Render(message))
	return err
}

func (p *CardPrinter) twoColumns(left, right string) string {
	half := (cardWidth - 2) / 2
	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(half).Render(left),
		lipgloss.NewStyle().Width(half).Render(right),
	)
}

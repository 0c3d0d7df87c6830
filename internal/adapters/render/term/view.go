package term

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/chanterm/internal/domain"
)

// Formatter turns interpreter lines and chat messages into styled
// terminal text. It holds no state beyond the styles, so one instance
// can serve a whole session.
type Formatter struct {
	styles styles
}

func NewFormatter() Formatter {
	return Formatter{styles: newStyles()}
}

func (f Formatter) Line(line domain.Line) string {
	switch line.Severity {
	case domain.SeveritySystem:
		return f.styles.system.Render(line.Text)
	case domain.SeverityInfo:
		return f.styles.info.Render(line.Text)
	case domain.SeverityWarning:
		return f.styles.warning.Render(line.Text)
	case domain.SeverityError:
		return f.styles.errText.Render(line.Text)
	default:
		return f.styles.output.Render(line.Text)
	}
}

// Message renders one chat line. Messages from self use a distinct
// author color; pending and failed deliveries carry a trailing marker
// so unconfirmed sends stay distinguishable in the scrollback.
func (f Formatter) Message(msg domain.Message, self domain.Address) string {
	authorStyle := f.styles.author
	if !self.IsZero() && msg.Author == self {
		authorStyle = f.styles.authorSelf
	}

	parts := []string{}
	if !msg.SentAt.IsZero() {
		parts = append(parts, f.styles.timestamp.Render(msg.SentAt.Local().Format("15:04")))
	}
	parts = append(parts,
		authorStyle.Render("<"+msg.DisplayAuthor()+">"),
		f.styles.body.Render(msg.Body),
	)
	if marker := f.deliveryMarker(msg.Delivery); marker != "" {
		parts = append(parts, marker)
	}

	out := parts[0]
	for _, p := range parts[1:] {
		out += " " + p
	}
	return out
}

func (f Formatter) deliveryMarker(state domain.DeliveryState) string {
	switch state {
	case domain.DeliveryPending:
		return f.styles.pending.Render("(sending)")
	case domain.DeliveryFailed:
		return f.styles.failed.Render("(failed)")
	case domain.DeliveryAmbiguous:
		return f.styles.warning.Render("(unconfirmed)")
	}
	return ""
}

func renderChannelView(channels []domain.ChannelRef, s styles) string {
	lines := []string{
		s.title.Render("Channels"),
		s.header.Render(fmt.Sprintf("channels: %d", len(channels))),
	}

	if len(channels) == 0 {
		lines = append(lines, s.empty.Render("No channels yet. Create one with 'create #name'."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, ch := range channels {
		lines = append(lines, renderChannelRow(ch, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderChannelRow(ch domain.ChannelRef, s styles) string {
	creator := "unknown"
	if !ch.Creator.IsZero() {
		creator = ch.Creator.Short()
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.channelName.Render(fmt.Sprintf("%-26s", domain.DisplayChannelName(ch.Name))),
		" ",
		s.creator.Render("created by "+creator),
	)
}

// FormatDelegationExpiry renders when a delegated session runs out,
// relative when close and absolute otherwise.
func FormatDelegationExpiry(expiresAt, now time.Time) string {
	if expiresAt.IsZero() {
		return "never"
	}
	if now.IsZero() || expiresAt.Before(now) {
		return expiresAt.Format(time.RFC3339)
	}

	remaining := expiresAt.Sub(now)
	if remaining < time.Hour {
		mins := int(remaining.Minutes())
		if mins < 1 {
			mins = 1
		}
		return fmt.Sprintf("in %dm (%s)", mins, expiresAt.Local().Format("15:04"))
	}
	if remaining < 48*time.Hour {
		return fmt.Sprintf("in %.0fh (%s)", remaining.Hours(), expiresAt.Local().Format("15:04"))
	}
	return expiresAt.Format(time.RFC3339)
}

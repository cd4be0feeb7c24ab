package tui

import "strings"

type errorOverlayModel struct {
	messages []string
}

func (m errorOverlayModel) View() string {
	if len(m.messages) == 0 {
		return ""
	}

	lines := make([]string, len(m.messages))
	for i, msg := range m.messages {
		lines[i] = "• " + msg
	}
	return overlayBoxStyle.Render(errorStyle.Render(strings.Join(lines, "\n")))
}

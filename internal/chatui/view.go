package chatui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	chat := m.renderChatColumn()
	if !m.split.active(m.width) {
		return chat
	}

	divider := m.styles.Divider.Render(
		strings.TrimSuffix(strings.Repeat("│\n", m.height), "\n"))

	main := lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render("Portfolio"),
		m.mainView.View(),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(m.split.chatWidth).Render(chat),
		divider,
		lipgloss.NewStyle().Width(m.split.mainWidth(m.width)).Render(main),
	)
}

func (m Model) renderChatColumn() string {
	return lipgloss.JoinVertical(lipgloss.Left,
		m.styles.Header.Render("Alex Jordan — Chat"),
		m.viewport.View(),
		m.renderTypingLine(),
		m.styles.Input.Render(m.input.View()),
		m.renderFooter(),
	)
}

// renderTypingLine shows the in-flight indicator: animated dots first, the
// filler phrase once the request has run long enough.
func (m Model) renderTypingLine() string {
	if m.state != stateSending {
		return ""
	}
	if m.filler {
		return m.styles.Typing.Render(typingFiller)
	}
	return m.styles.Typing.Render(m.spinner.View() + "thinking")
}

func (m Model) renderFooter() string {
	help := "enter send · ctrl+r reset · ctrl+s split · ctrl+c quit"
	if m.split.active(m.width) {
		help += " · [/] divider"
	}
	return m.styles.Footer.Render(help)
}

// renderHistory renders the transcript: assistant turns through glamour,
// user turns as plain text, system lines muted.
func (m Model) renderHistory() string {
	var sb strings.Builder
	for _, msg := range m.history {
		switch msg.Role {
		case RoleUser:
			sb.WriteString(m.styles.UserLabel.Render("You") + "\n")
			sb.WriteString(m.styles.UserText.Render(msg.Content))
			sb.WriteString("\n\n")
		case RoleSystem:
			sb.WriteString(m.styles.System.Render(msg.Content))
			sb.WriteString("\n\n")
		default:
			sb.WriteString(m.styles.BotLabel.Render("Assistant") + "\n")
			sb.WriteString(m.safeRenderMarkdown(msg.Content))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

// safeRenderMarkdown renders assistant markdown, falling back to the raw text
// if the renderer is unavailable or panics.
func (m Model) safeRenderMarkdown(content string) (result string) {
	defer func() {
		if r := recover(); r != nil {
			result = content
		}
	}()

	if m.renderer != nil && content != "" {
		if rendered, err := m.renderer.Render(content); err == nil {
			return rendered
		}
	}
	return content
}

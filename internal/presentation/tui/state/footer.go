package state

import "strings"

// FooterText returns the footer content for the current session.
func FooterText(session Session, loading bool, statusMessage, userLabel, helpText string) string {
	var lines []string
	if status := strings.TrimSpace(statusMessage); status != "" && !loading {
		lines = append(lines, status)
	}
	if session != QuitView {
		if user := strings.TrimSpace(userLabel); user != "" {
			lines = append(lines, user)
		}
	}
	if helpText != "" {
		lines = append(lines, helpText)
	}
	return strings.Join(lines, "\n")
}

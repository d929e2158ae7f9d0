package format

import (
	"fmt"
	"html"
)

// EscapeHTML escapes text for safe use inside HTML-formatted messages.
func EscapeHTML(text string) string {
	return html.EscapeString(text)
}

// Bold wraps escaped text in bold tags.
func Bold(text string) string {
	return "<b>" + EscapeHTML(text) + "</b>"
}

// Italic wraps escaped text in italic tags.
func Italic(text string) string {
	return "<i>" + EscapeHTML(text) + "</i>"
}

// Mention renders an HTML link to a user profile with escaped display text.
func Mention(userID int64, display string) string {
	return fmt.Sprintf(`<a href="tg://user?id=%d">%s</a>`, userID, EscapeHTML(display))
}

package service

import (
	"strings"

	"github.com/homestay/backend/internal/model"
)

// Reply template names. The set is closed: the dashboard UI offers exactly
// these, so an unknown name is a programming error, not operator input.
const (
	TemplateWelcome = "welcome"
	TemplateCustom  = "custom"
)

const replySubject = "Re: Your inquiry about Anuradhapura Homestay"

// replyTemplate is a fixed subject/body pair with a {name} placeholder.
type replyTemplate struct {
	subject string
	body    string
}

var replyTemplates = map[string]replyTemplate{
	TemplateWelcome: {
		subject: replySubject,
		body: "Hi {name},\n\n" +
			"Thank you for reaching out to Anuradhapura Homestay! We have received your " +
			"inquiry and would be delighted to host you.\n\n" +
			"We will get back to you shortly with availability and details. In the " +
			"meantime, feel free to reply to this email with any questions about the " +
			"homestay, our tours, or travel around Anuradhapura.\n\n" +
			"Warm regards,\nAnuradhapura Homestay",
	},
	TemplateCustom: {
		subject: replySubject,
		body: "Hi {name},\n\n\n\n" +
			"Warm regards,\nAnuradhapura Homestay",
	},
}

// ValidTemplate reports whether name is one of the built-in reply
// templates. Handlers use it to reject free-form input before calling
// RenderReply, which treats an unknown name as a programming error.
func ValidTemplate(name string) bool {
	_, ok := replyTemplates[name]
	return ok
}

// RenderReply produces the (subject, body) starting point for a reply to
// the given submission. The {name} placeholder is substituted verbatim —
// replies are plain text, so no escaping is applied. The operator may edit
// the result freely afterwards.
//
// Panics on an unknown template name; callers pass only the constants above.
func RenderReply(templateName string, sub *model.Submission) (subject, body string) {
	tpl, ok := replyTemplates[templateName]
	if !ok {
		panic("service: unknown reply template " + templateName)
	}
	return tpl.subject, strings.ReplaceAll(tpl.body, "{name}", sub.Name)
}

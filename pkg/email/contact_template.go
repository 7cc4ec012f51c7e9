package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// ContactIdentity is the fixed envelope every contact email is sent with
type ContactIdentity struct {
	From    string
	To      string
	Subject string
}

// ContactEmailData holds the data for contact form emails
type ContactEmailData struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

const contactFooter = "Esta mensagem foi enviada através do formulário de contato do site CAVALTRON."

// contactEmailTemplate is the HTML template for contact form emails.
// html/template escapes every interpolated field.
const contactEmailTemplate = `<h2>Nova solicitação de contato do site</h2>
<p><strong>Nome:</strong> {{.Name}}</p>
<p><strong>Email:</strong> {{.Email}}</p>
<p><strong>Celular:</strong> {{.Phone}}</p>
<p><strong>Mensagem:</strong></p>
<p>{{.Message}}</p>
<hr>
<p><small>{{.Footer}}</small></p>
`

const contactTextTemplate = `Nova solicitação de contato do site

Nome: %s
Email: %s
Celular: %s
Mensagem:
%s

---
%s
`

var contactTmpl = template.Must(template.New("contact").Parse(contactEmailTemplate))

// BuildContactMessage renders a contact submission into the message sent to
// the site owner. Replies go straight to the submitter.
func BuildContactMessage(id ContactIdentity, data ContactEmailData) (Message, error) {
	var body bytes.Buffer
	err := contactTmpl.Execute(&body, struct {
		ContactEmailData
		Footer string
	}{data, contactFooter})
	if err != nil {
		return Message{}, fmt.Errorf("failed to execute email template: %w", err)
	}

	return Message{
		From:    id.From,
		To:      id.To,
		ReplyTo: data.Email,
		Subject: id.Subject,
		HTML:    body.String(),
		Text:    fmt.Sprintf(contactTextTemplate, data.Name, data.Email, data.Phone, data.Message, contactFooter),
	}, nil
}

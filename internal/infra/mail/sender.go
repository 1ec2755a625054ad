package mail

import (
	"bytes"
	"fmt"
	"text/template"

	"gopkg.in/gomail.v2"
)

type EmailSender struct {
	Host     string
	Port     int
	User     string
	Password string
	From     string
}

func NewEmailSender(host string, port int, user, password, from string) *EmailSender {
	return &EmailSender{
		Host:     host,
		Port:     port,
		User:     user,
		Password: password,
		From:     from,
	}
}

type confirmationData struct {
	Name          string
	WorkshopTitle string
	WorkshopDate  string
}

var confirmationTmpl = template.Must(template.New("confirmation").Parse(`
<p>Hi {{.Name}},</p>
<p>You're registered for <strong>{{.WorkshopTitle}}</strong>{{if .WorkshopDate}} on {{.WorkshopDate}}{{end}}.</p>
<p>We look forward to seeing you. If you have any questions, just reply to this email.</p>
<p>— The Galvan Law team</p>
`))

func (s *EmailSender) SendRegistrationConfirmation(to, name, workshopTitle, workshopDate string) error {
	var body bytes.Buffer
	err := confirmationTmpl.Execute(&body, confirmationData{
		Name:          name,
		WorkshopTitle: workshopTitle,
		WorkshopDate:  workshopDate,
	})
	if err != nil {
		return fmt.Errorf("rendering confirmation template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", fmt.Sprintf("You're registered: %s", workshopTitle))
	m.SetBody("text/html", body.String())

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("sending SMTP email: %w", err)
	}

	return nil
}

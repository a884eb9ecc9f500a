package services

import (
	"fmt"
	"gate-app/config"
	"log"
	"strings"

	"gopkg.in/gomail.v2"
)

// Workflow event names. Each state-transition method emits its events
// explicitly, there is no implicit listener registry.
const (
	EventEntryCreated         = "entry_created"
	EventSecuritySubmitted    = "security_check_submitted"
	EventWeighmentRecorded    = "weighment_recorded"
	EventArrivalSlipSubmitted = "arrival_slip_submitted"
	EventInspectionStage      = "inspection_stage_changed"
	EventEntryCompleted       = "entry_completed"
	EventGRPOPosted           = "grpo_posted"
	EventGRPOFailed           = "grpo_failed"
)

type Event struct {
	Name    string
	Subject string
	Detail  map[string]string
}

// Notifier fans workflow events out as mail. Delivery is best effort: a
// failure is logged and swallowed, it never rolls back or blocks the
// emitting transaction.
type Notifier struct {
	dialer     *gomail.Dialer
	from       string
	recipients []string
}

func NewNotifier() *Notifier {
	n := &Notifier{
		from: config.MailFrom,
	}
	if config.MailTo != "" {
		n.recipients = strings.Split(config.MailTo, ",")
	}
	if config.SMTPUser != "" {
		n.dialer = gomail.NewDialer(config.SMTPHost, config.SMTPPort, config.SMTPUser, config.SMTPPassword)
	}
	return n
}

// Notify dispatches asynchronously so the caller's transaction is never held
// open on SMTP.
func (n *Notifier) Notify(event Event) {
	if n.dialer == nil || len(n.recipients) == 0 {
		log.Printf("notification (no mailer configured): %s %s", event.Name, event.Subject)
		return
	}

	go func() {
		m := gomail.NewMessage()
		m.SetHeader("From", n.from)
		m.SetHeader("To", n.recipients...)
		m.SetHeader("Subject", fmt.Sprintf("[Gate Entry] %s: %s", event.Name, event.Subject))

		var b strings.Builder
		b.WriteString(event.Subject + "\n\n")
		for k, v := range event.Detail {
			fmt.Fprintf(&b, "%s: %s\n", k, v)
		}
		m.SetBody("text/plain", b.String())

		if err := n.dialer.DialAndSend(m); err != nil {
			log.Printf("Failed to send notification %s: %v", event.Name, err)
		}
	}()
}

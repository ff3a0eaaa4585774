package service

import (
	"context"
	"errors"
	"fmt"
	"html"
	"strings"

	"templo/config"
	"templo/logger"
	"templo/models"

	"github.com/go-playground/validator/v10"
	"gopkg.in/gomail.v2"
)

var addressValidator = validator.New()

// ErrEmailDisabled returned when reminders are requested with email turned off
var ErrEmailDisabled = errors.New("serviço de e-mail não habilitado, configure TEMPLO_EMAIL_ENABLED=true")

// Mailer sends one HTML message
type Mailer interface {
	Send(to, subject, body string) error
}

// EmailService SMTP mailer
type EmailService struct {
	cfg *config.EmailConfig
}

// NewEmailService creates the SMTP mailer
func NewEmailService(cfg *config.EmailConfig) *EmailService {
	return &EmailService{cfg: cfg}
}

// Enabled reports whether SMTP delivery is configured on
func (s *EmailService) Enabled() bool {
	return s.cfg != nil && s.cfg.Enabled
}

// Send delivers one message through the configured SMTP server
func (s *EmailService) Send(to, subject, body string) error {
	if !s.Enabled() {
		return ErrEmailDisabled
	}

	m, err := s.message(to, subject, body)
	if err != nil {
		return err
	}

	d := gomail.NewDialer(s.cfg.Host, s.cfg.Port, s.cfg.Username, s.cfg.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("falha ao enviar e-mail: %w", err)
	}

	return nil
}

// message builds the HTML message; the sender must be a bare address
func (s *EmailService) message(to, subject, body string) (*gomail.Message, error) {
	if err := addressValidator.Var(s.cfg.From, "required,email"); err != nil {
		return nil, fmt.Errorf("email.from inválido %q: use apenas o endereço e informe o nome em email.from_name", s.cfg.From)
	}

	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.cfg.From, s.cfg.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)
	return m, nil
}

// ReminderResult outcome of one reminder run
type ReminderResult struct {
	Period   string   `json:"mes_referencia"`
	Sent     int      `json:"enviados"`
	NoEmail  int      `json:"sem_email"`
	Failed   int      `json:"falhas"`
	Failures []string `json:"membros_com_falha,omitempty"`
}

// ReminderService emails delinquent members about their open dues
type ReminderService struct {
	membership *MembershipService
	mailer     Mailer
	enabled    bool
	log        *logger.Logger
}

// NewReminderService enabled=false makes every run fail with ErrEmailDisabled
func NewReminderService(membership *MembershipService, mailer Mailer, enabled bool, log *logger.Logger) *ReminderService {
	return &ReminderService{membership: membership, mailer: mailer, enabled: enabled, log: log}
}

// NotifyDelinquents sends one reminder per delinquent member of period ("" = current).
// Members without an email address are counted, not failed.
func (s *ReminderService) NotifyDelinquents(ctx context.Context, period string) (*ReminderResult, error) {
	if !s.enabled {
		return nil, ErrEmailDisabled
	}
	period, members, err := s.membership.Delinquents(ctx, period)
	if err != nil {
		return nil, err
	}

	result := &ReminderResult{Period: period}
	subject := fmt.Sprintf("[Templo] Mensalidade em aberto - %s", period)
	for _, m := range members {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		if strings.TrimSpace(m.Email) == "" {
			result.NoEmail++
			duesReminders.WithLabelValues("sem_email").Inc()
			continue
		}
		if err := s.mailer.Send(m.Email, subject, reminderBody(m, period)); err != nil {
			result.Failed++
			result.Failures = append(result.Failures, m.Name)
			duesReminders.WithLabelValues("falha").Inc()
			s.log.Warn("dues reminder failed", "membro_id", m.ID, "error", err)
			continue
		}
		result.Sent++
		duesReminders.WithLabelValues("enviado").Inc()
	}

	s.log.Info("dues reminders sent", "mes_referencia", period,
		"enviados", result.Sent, "sem_email", result.NoEmail, "falhas", result.Failed)
	return result, nil
}

// reminderBody renders the reminder HTML
func reminderBody(m models.Member, period string) string {
	return fmt.Sprintf(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <style>
        body { font-family: Arial, sans-serif; background: #f5f5f5; margin: 0; padding: 20px; }
        .container { max-width: 600px; margin: 0 auto; background: #fff; border-radius: 12px; overflow: hidden; box-shadow: 0 4px 20px rgba(0,0,0,0.1); }
        .header { background: linear-gradient(135deg, #7c3aed, #5b21b6); color: white; padding: 30px; text-align: center; }
        .header h1 { margin: 0; font-size: 24px; }
        .content { padding: 40px 30px; }
        .content p { color: #333; line-height: 1.8; margin: 0 0 20px; }
        .amount { font-size: 28px; font-weight: bold; color: #5b21b6; text-align: center; }
        .footer { background: #f8f9fa; padding: 20px 30px; text-align: center; color: #6c757d; font-size: 12px; }
    </style>
</head>
<body>
    <div class="container">
        <div class="header">
            <h1>Templo</h1>
        </div>
        <div class="content">
            <p>Olá, <strong>%s</strong>!</p>
            <p>Não encontramos o pagamento da sua mensalidade referente a <strong>%s</strong>.</p>
            <p class="amount">R$ %.2f</p>
            <p>Se o pagamento já foi feito, por favor desconsidere esta mensagem.</p>
        </div>
        <div class="footer">
            <p>Esta mensagem foi enviada automaticamente, não responda.</p>
        </div>
    </div>
</body>
</html>
`, html.EscapeString(m.Name), period, m.MonthlyDues)
}

package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/videobelajar/backend/internal/pkg/logger"
)

// Config holds the SMTP settings the sender needs.
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	FromName   string
	FromEmail  string
	MaxRetries int
	RetryDelay time.Duration
}

// Sender defines the interface for outbound email operations
type Sender interface {
	SendVerificationEmail(toEmail, toName, token string) error
}

// Dialer abstracts gomail.Dialer so tests can count delivery attempts.
type Dialer interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPSender implements Sender over an SMTP dialer with retries.
type SMTPSender struct {
	cfg    Config
	dialer Dialer
	// baseURL is the public application URL used in verification links.
	baseURL string
}

// NewSMTPSender creates a sender from SMTP configuration.
func NewSMTPSender(cfg Config, baseURL string) *SMTPSender {
	return &SMTPSender{
		cfg:     cfg,
		dialer:  gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		baseURL: baseURL,
	}
}

// NewSMTPSenderWithDialer creates a sender with an explicit dialer.
func NewSMTPSenderWithDialer(cfg Config, baseURL string, dialer Dialer) *SMTPSender {
	return &SMTPSender{cfg: cfg, dialer: dialer, baseURL: baseURL}
}

// SendVerificationEmail sends the email-verification link for a new account.
// Delivery is retried with a linearly growing delay between attempts.
func (s *SMTPSender) SendVerificationEmail(toEmail, toName, token string) error {
	verificationURL := fmt.Sprintf("%s/api/auth/verify-email?token=%s", s.baseURL, token)

	// Without credentials there is no SMTP account to send from, so log the
	// link instead. Keeps local development working without a mail server.
	if s.cfg.Username == "" || s.cfg.Password == "" {
		logger.Warn().
			Str("toEmail", toEmail).
			Str("verificationURL", verificationURL).
			Msg("SMTP credentials not configured - verification email not sent. Use the URL above for testing.")
		return nil
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.cfg.FromEmail, s.cfg.FromName)
	m.SetHeader("To", toEmail)
	m.SetHeader("Subject", "Verifikasi Email - Videobelajar")
	m.SetBody("text/html", verificationBody(toName, verificationURL))

	return s.sendWithRetry(m, toEmail)
}

func (s *SMTPSender) sendWithRetry(m *gomail.Message, toEmail string) error {
	maxRetries := s.cfg.MaxRetries
	if maxRetries < 1 {
		maxRetries = 1
	}

	var lastErr error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		lastErr = s.dialer.DialAndSend(m)
		if lastErr == nil {
			logger.Info().Str("toEmail", toEmail).Int("attempt", attempt).Msg("Email sent")
			return nil
		}

		logger.Warn().
			Err(lastErr).
			Str("toEmail", toEmail).
			Int("attempt", attempt).
			Int("maxRetries", maxRetries).
			Msg("Email delivery attempt failed")

		if attempt < maxRetries {
			time.Sleep(time.Duration(attempt) * s.cfg.RetryDelay)
		}
	}

	return fmt.Errorf("failed to send email after %d attempts: %w", maxRetries, lastErr)
}

func verificationBody(toName, verificationURL string) string {
	return fmt.Sprintf(`
		<html>
		<body>
			<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
				<h2 style="color: #333;">Selamat datang di Videobelajar!</h2>
				<p>Halo %s,</p>
				<p>Terima kasih telah mendaftar di Videobelajar. Untuk menyelesaikan pendaftaran, silakan verifikasi alamat email Anda dengan menekan tombol di bawah ini:</p>

				<div style="text-align: center; margin: 30px 0;">
					<a href="%s" style="background-color: #3ecf4c; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; font-weight: bold;">Verifikasi Email</a>
				</div>

				<p>Jika Anda tidak mendaftar akun Videobelajar, abaikan email ini.</p>

				<p>Salam,<br>Tim Videobelajar</p>
			</div>
		</body>
		</html>
	`, toName, verificationURL)
}

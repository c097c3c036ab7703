package notifier

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"go.uber.org/zap"

	"github.com/Ghorpaderamdas/Hotel/internal/config"
	domainErrors "github.com/Ghorpaderamdas/Hotel/internal/domain/errors"
	"github.com/Ghorpaderamdas/Hotel/internal/domain/service"
)

// EmailNotifier delivers transactional mail over SMTP with TLS.
type EmailNotifier struct {
	config config.SMTPConfig
	logger *zap.Logger
}

func NewEmailNotifier(cfg config.SMTPConfig, logger *zap.Logger) *EmailNotifier {
	return &EmailNotifier{config: cfg, logger: logger.Named("email_notifier")}
}

var resetTemplate = template.Must(template.New("password_reset").Parse(`
<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>Password Reset Request</title>
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
    <h1>Password Reset Request</h1>
    <p>Dear Admin,</p>
    <p>You have requested to reset your password. Please click the link below to reset your password:</p>
    <p style="text-align: center;">
        <a href="{{.ResetLink}}" style="display: inline-block; background-color: #4CAF50; color: white; text-decoration: none; padding: 10px 20px; border-radius: 5px;">Reset Password</a>
    </p>
    <p>This link will expire in 1 hour.</p>
    <p>If you did not request this password reset, please ignore this email.</p>
    <p>Best regards,<br>Hotel Kalsubai Team</p>
</body>
</html>
`))

// SendPasswordResetEmail renders the reset mail and delivers it. The link
// contains the raw token, so neither the link nor the body is ever logged.
func (n *EmailNotifier) SendPasswordResetEmail(ctx context.Context, to string, resetLink string) error {
	var body bytes.Buffer
	data := struct{ ResetLink string }{ResetLink: resetLink}
	if err := resetTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render reset email: %w", err)
	}

	subject := "Password Reset Request - Hotel Kalsubai Admin"
	if err := n.send(ctx, to, subject, body.String()); err != nil {
		n.logger.Error("failed to send password reset email", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("%w: %v", domainErrors.ErrDeliveryFailure, err)
	}

	n.logger.Info("password reset email sent", zap.String("to", to))
	return nil
}

func (n *EmailNotifier) send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var message bytes.Buffer
	message.WriteString(fmt.Sprintf("From: %s\r\n", n.config.From))
	message.WriteString(fmt.Sprintf("To: %s\r\n", to))
	message.WriteString(fmt.Sprintf("Subject: %s\r\n", subject))
	message.WriteString("MIME-Version: 1.0\r\n")
	message.WriteString("Content-Type: text/html; charset=UTF-8\r\n")
	message.WriteString(fmt.Sprintf("Date: %s\r\n", time.Now().Format(time.RFC1123Z)))
	message.WriteString("\r\n")
	message.WriteString(body)

	addr := fmt.Sprintf("%s:%d", n.config.Host, n.config.Port)
	tlsConfig := &tls.Config{ServerName: n.config.Host}

	conn, err := tls.Dial("tcp", addr, tlsConfig)
	if err != nil {
		return fmt.Errorf("failed to connect to SMTP server: %w", err)
	}
	defer conn.Close()

	client, err := smtp.NewClient(conn, n.config.Host)
	if err != nil {
		return fmt.Errorf("failed to create SMTP client: %w", err)
	}
	defer client.Close()

	auth := smtp.PlainAuth("", n.config.Username, n.config.Password, n.config.Host)
	if err := client.Auth(auth); err != nil {
		return fmt.Errorf("failed to authenticate: %w", err)
	}
	if err := client.Mail(n.config.From); err != nil {
		return fmt.Errorf("failed to set sender: %w", err)
	}
	if err := client.Rcpt(to); err != nil {
		return fmt.Errorf("failed to set recipient: %w", err)
	}

	w, err := client.Data()
	if err != nil {
		return fmt.Errorf("failed to open data writer: %w", err)
	}
	if _, err := w.Write(message.Bytes()); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("failed to close data writer: %w", err)
	}

	return client.Quit()
}

var _ service.Notifier = (*EmailNotifier)(nil)

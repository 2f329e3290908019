package email

import (
	"context"
	"fmt"
	"html"
)

// Sender delivers account emails. Implementations are chosen at startup.
type Sender interface {
	SendVerificationCode(ctx context.Context, to, code string) error
	SendWelcome(ctx context.Context, to, name string) error
}

type message struct {
	Subject string
	Plain   string
	HTML    string
}

const layoutHTML = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, sans-serif; background: #f4f4f5; padding: 24px;">
  <div style="max-width: 560px; margin: 0 auto; background: #ffffff; border-radius: 8px; padding: 32px;">
    <h2 style="margin-top: 0; color: #111827;">%s</h2>
    %s
    <p style="color: #6b7280; font-size: 12px; margin-top: 32px;">HoardSpace - outdoor advertising made simple.</p>
  </div>
</body>
</html>`

func verificationMessage(code string) message {
	body := fmt.Sprintf(`<p>Use the code below to verify your email address.</p>
    <p style="font-size: 32px; letter-spacing: 8px; font-weight: bold; color: #111827;">%s</p>
    <p>This code is valid for 15 minutes. If you did not request it, you can ignore this email.</p>`, html.EscapeString(code))

	return message{
		Subject: "Verify Your Email - HoardSpace",
		Plain:   fmt.Sprintf("Your HoardSpace verification code is %s. It is valid for 15 minutes.", code),
		HTML:    fmt.Sprintf(layoutHTML, "Verify your email", body),
	}
}

func welcomeMessage(name, appURL string) message {
	if name == "" {
		name = "there"
	}
	body := fmt.Sprintf(`<p>Hi %s,</p>
    <p>Your email is verified and your HoardSpace account is ready.</p>
    <p>Complete your KYC to start booking hoardings.</p>
    <p><a href="%s" style="color: #2563eb;">Open HoardSpace</a></p>`, html.EscapeString(name), html.EscapeString(appURL))

	return message{
		Subject: "Welcome to HoardSpace!",
		Plain:   fmt.Sprintf("Hi %s, your email is verified and your HoardSpace account is ready: %s", name, appURL),
		HTML:    fmt.Sprintf(layoutHTML, "Welcome to HoardSpace!", body),
	}
}

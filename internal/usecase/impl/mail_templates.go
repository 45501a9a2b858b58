package impl

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"recruit/internal/domain/service"
	"recruit/internal/util"
)

func otpMail(to, code string, ttl time.Duration) *service.Mail {
	return &service.Mail{
		To:      to,
		Subject: "Your verification code",
		Body: fmt.Sprintf(
			"Your verification code is %s.\n\nIt expires in %s. If you did not request it, you can ignore this message.",
			code, util.FormatDuration(ttl),
		),
		Kind: service.MailKindOTP,
	}
}

func emailUpdateMail(to, code string, ttl time.Duration) *service.Mail {
	return &service.Mail{
		To:      to,
		Subject: "Confirm your new email address",
		Body: fmt.Sprintf(
			"Use the code %s to confirm this address for your account.\n\nIt expires in %s.",
			code, util.FormatDuration(ttl),
		),
		Kind: service.MailKindEmailUpdate,
	}
}

func passwordResetMail(to, link string, ttl time.Duration) *service.Mail {
	return &service.Mail{
		To:      to,
		Subject: "Reset your password",
		Body: fmt.Sprintf(
			"Follow this link to choose a new password:\n\n%s\n\nThe link expires in %s and can be used once.",
			link, util.FormatDuration(ttl),
		),
		Kind: service.MailKindPasswordReset,
	}
}

func resetLink(baseURL, token string) string {
	return strings.TrimRight(baseURL, "/") + "/reset-password?token=" + url.QueryEscape(token)
}

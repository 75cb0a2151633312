// Package mailer dispatches OTP codes over SMTP.
package mailer

import (
	"fmt"
	"net/smtp"
)

// Sender delivers a verification code to an address.
type Sender interface {
	SendOtp(to string, otp int) error
}

// SMTP sends mail through a plain-auth SMTP relay (gmail by default).
type SMTP struct {
	Host string
	Port string
	User string
	Pass string
}

func NewSMTP(host, port, user, pass string) *SMTP {
	return &SMTP{Host: host, Port: port, User: user, Pass: pass}
}

func (s *SMTP) SendOtp(to string, otp int) error {
	auth := smtp.PlainAuth("", s.User, s.Pass, s.Host)
	msg := []byte("From: " + s.User + "\r\n" +
		"To: " + to + "\r\n" +
		"Subject: Your OTP Code\r\n" +
		"MIME-Version: 1.0\r\n" +
		"Content-Type: text/html; charset=\"UTF-8\"\r\n" +
		"\r\n" +
		fmt.Sprintf("<h2>Your OTP is <b>%d</b></h2>\r\n", otp))
	return smtp.SendMail(s.Host+":"+s.Port, auth, s.User, []string{to}, msg)
}

package utils

import (
	"strconv"

	"gopkg.in/gomail.v2"

	"github.com/vetcare-app/vetcare-api/config"
)

func SendEmail(to, subject, body string) error {
	port, _ := strconv.Atoi(config.C.SMTP.Port)

	m := gomail.NewMessage()
	m.SetHeader("From", config.C.SMTP.User)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(
		config.C.SMTP.Host,
		port,
		config.C.SMTP.User,
		config.C.SMTP.Password,
	)

	return d.DialAndSend(m)
}

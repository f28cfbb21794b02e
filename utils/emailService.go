package utils

import (
	"fmt"
	"net/smtp"

	"github.com/Nanokwok/StudyBuddy/config"
)

const (
	smtpHost = "smtp.gmail.com"
	smtpPort = "587"
)

func sendHTMLEmail(to, subjectLine, body string) error {
	from := config.AppConfig.EmailSender
	password := config.AppConfig.Password // App password

	if from == "" || password == "" {
		// Email is optional in development; skip silently when unconfigured
		return nil
	}

	subject := "Subject: " + subjectLine + "\nMIME-version: 1.0;\nContent-Type: text/html; charset=\"UTF-8\";\n\n"
	message := []byte(subject + "\n" + body)

	auth := smtp.PlainAuth("", from, password, smtpHost)
	return smtp.SendMail(smtpHost+":"+smtpPort, auth, from, []string{to}, message)
}

// SendFriendRequestEmail notifies a user that someone sent them a friend request
func SendFriendRequestEmail(email, addresseeName, requesterName string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">New Friend Request</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 16px; color: #555555;"><b>%s</b> wants to be your study buddy. Open the app to accept or decline the request.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">StudyBuddy Team</p>
				</div>
			</body>
		</html>
	`, addresseeName, requesterName)

	return sendHTMLEmail(email, "You have a new friend request - StudyBuddy", body)
}

// SendEnrollmentEmail sends an email notification when a user enrolls in a course
func SendEnrollmentEmail(email, userName, courseTitle string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 600px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Enrollment Confirmed</h2>
					<p style="font-size: 16px; color: #555555;">Dear %s,</p>
					<p style="font-size: 16px; color: #555555;">You are now enrolled in:</p>
					<h3 style="text-align: center; color: #3A63ED; margin: 20px 0;">%s</h3>
					<p style="font-size: 14px; color: #666666;">Find classmates in the app and set up your first study session.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">StudyBuddy Team</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle)

	return sendHTMLEmail(email, "Course Enrollment Confirmation - StudyBuddy", body)
}

// SendClassReminderEmail reminds a student about a class meeting today
func SendClassReminderEmail(email, userName, courseTitle, timeOfDay string) error {
	body := fmt.Sprintf(`
		<html>
			<body style="font-family: Arial, sans-serif; background-color: #f4f4f4; padding: 20px;">
				<div style="max-width: 500px; margin: auto; background-color: #ffffff; border-radius: 8px; padding: 30px;">
					<h2 style="color: #333333; text-align: center;">Class Today</h2>
					<p style="font-size: 16px; color: #555555;">Hi %s,</p>
					<p style="font-size: 16px; color: #555555;"><b>%s</b> meets today at <b>%s</b>.</p>
					<p style="text-align: center; font-size: 12px; color: #bbbbbb; margin-top: 30px;">StudyBuddy Team</p>
				</div>
			</body>
		</html>
	`, userName, courseTitle, timeOfDay)

	return sendHTMLEmail(email, "Class reminder - StudyBuddy", body)
}

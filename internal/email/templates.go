package email

import "fmt"

// StatusNotification builds the message sent to an applicant when an admin
// moves their application to a terminal status.
func StatusNotification(fullName, jobTitle, company, status string) (subject, body string) {
	subject = fmt.Sprintf("Update on your application for %s at %s", jobTitle, company)
	body = fmt.Sprintf(
		"Hello %s,\n\nYour application for %s at %s has been %s.\n\n"+
			"You can view the details in the placement portal.\n\n"+
			"Training & Placement Cell\n",
		fullName, jobTitle, company, status)
	return subject, body
}

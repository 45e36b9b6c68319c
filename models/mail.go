package models

// Mail is an outgoing HTML email.
type Mail struct {
	To      string
	Subject string
	HTML    string
}

// PlainMail is an outgoing plain-text email.
type PlainMail struct {
	To      string
	Subject string
	Text    string
}

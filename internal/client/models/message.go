package models

// Message is a submitted contact form. Messages are only ever appended.
type Message struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	Subject   string `json:"subject"`
	Body      string `json:"body"`
	Timestamp string `json:"timestamp"`
}

// ContactForm holds the raw field values typed by the user.
type ContactForm struct {
	Name    string `json:"name" validate:"aroma_name"`
	Email   string `json:"email" validate:"aroma_email"`
	Subject string `json:"subject" validate:"aroma_subject"`
	Body    string `json:"body" validate:"min=10"`
}

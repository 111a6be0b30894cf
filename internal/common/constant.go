package common

// Page names recorded in the visit log.
const (
	DefaultPage = "index.html"
	PageMenu    = "meniu.html"
	PageContact = "contact.html"
)

package storage

// Key names a persisted value.
type Key string

// Persisted keys and the shape stored under each.
const (
	KeyUsers       Key = "users"       // []models.User
	KeyCurrentUser Key = "currentUser" // models.User, absent when logged out
	KeyCart        Key = "cart"        // models.Cart
	KeyMessages    Key = "messages"    // []models.Message
	KeyVisits      Key = "visits"      // []models.Visit
	KeyTheme       Key = "theme"       // raw "dark" | "light"
)

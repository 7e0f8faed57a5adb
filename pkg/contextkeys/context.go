package contextkeys

// Keys shared between middleware and handlers via the gin context.
const (
	// CurrentUserKey holds the *models.User deserialized from the session.
	CurrentUserKey = "currentUser"

	// SessionUserIDKey is the key under which the principal's ID is stored
	// inside the server-side session record.
	SessionUserIDKey = "user_id"
)

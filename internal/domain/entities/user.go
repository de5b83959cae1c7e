package entities

// User is the authenticated operator profile returned by the backend on login
// and embedded in onsite-request payloads as requestedBy/changedBy snapshots.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

package models

const (
	RoleStudent = "student"
	RoleAdmin   = "admin"
)

type User struct {
	ID             string   `json:"id"`
	Email          string   `json:"email"`
	Name           string   `json:"name"`
	Bio            string   `json:"bio"`
	ProfilePicture string   `json:"profilePicture,omitempty"`
	Skills         []string `json:"skills"`
	Rating         float64  `json:"rating"`
	TotalSessions  int      `json:"totalSessions"`
	Role           string   `json:"role"`
}

// ProfileUpdate carries the profile fields a user may change through
// UpdateProfile. Nil fields are left untouched; id and role are not
// updatable through this path.
type ProfileUpdate struct {
	Name           *string
	Bio            *string
	ProfilePicture *string
	Skills         *[]string
}

package domain

type Role string

const (
	RoleOwner  Role = "Owner"
	RoleClient Role = "Client"
)

// User is the profile document stored under users/{uid}, keyed by the
// identity provider's subject ID. Email and role are immutable through the
// profile-edit path.
type User struct {
	ID          string `firestore:"-" json:"id"`
	FirstName   string `firestore:"firstName" json:"firstName"`
	LastName    string `firestore:"lastName" json:"lastName"`
	Email       string `firestore:"email" json:"email"`
	PhoneNumber string `firestore:"phoneNumber" json:"phoneNumber"`
	Role        Role   `firestore:"role" json:"role"`
}

// DisplayName is the name stamped onto bookings as the client snapshot.
// Falls back to the email address when the profile carries no name.
func (u *User) DisplayName() string {
	if u.FirstName == "" && u.LastName == "" {
		return u.Email
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}

// Identity is the authenticated caller derived from a verified ID token.
type Identity struct {
	UID   string
	Email string
	Name  string
}

// DisplayName mirrors the original client behavior: display name if the
// provider has one, else the email address.
func (id Identity) DisplayName() string {
	if id.Name != "" {
		return id.Name
	}
	if id.Email != "" {
		return id.Email
	}
	return "Client"
}

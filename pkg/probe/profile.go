package probe

// ProfilePath is the endpoint queried with the bearer token.
const ProfilePath = "/api/auth/profile"

// Profile is the user record returned under the "profile" member of the
// profile response. Absent fields decode to zero values.
type Profile struct {
	ID           int64  `json:"id"`
	Email        string `json:"email"`
	FullName     string `json:"full_name"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	AddressLine1 string `json:"address_line1"`
	City         string `json:"city"`
	State        string `json:"state"`
	PinCode      string `json:"pin_code"`
	CreatedAt    string `json:"created_at"`
}

package auth

// User is the domain entity.
type User struct {
	ID       string
	Name     string
	Email    string
	Password string // bcrypt hash
	Role     string // Student | Staff | Admin
}

const (
	RoleStudent = "Student"
	RoleStaff   = "Staff"
	RoleAdmin   = "Admin"
)

// Public is the wire shape of a user; the password hash never
// leaves the package.
type Public struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) Public() Public {
	return Public{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}

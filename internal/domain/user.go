package domain

// Roles a storefront account can hold. ADMIN unlocks the back office
// (product CRUD, stock, imports); USER is a regular shopper account.
const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"
)

// User is a storefront account. Hash is the bcrypt password hash and is
// never serialized.
type User struct {
	ID    string `db:"id" json:"id"`
	Email string `db:"email" json:"email"`
	Name  string `db:"name" json:"name"`
	Hash  string `db:"password_hash" json:"-"`
	Role  string `db:"role" json:"role"`
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

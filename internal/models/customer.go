package models

type Customer struct {
	ID        uint   `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name"`
	Phone     string `json:"phone"`
	CreatedAt string `json:"created_at"`
}

func (*Customer) Role() Role { return RoleCustomer }

func (c *Customer) DisplayName() string { return c.FullName }

func (c *Customer) ContactEmail() string { return c.Email }

func (*Customer) isProfile() {}

type CustomerRegistration struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

type CustomerUpdate struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

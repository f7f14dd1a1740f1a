package models

type Customer struct {
	ID             int64  `json:"customerId"`
	FirstName      string `json:"firstName"`
	LastName       string `json:"lastName"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
	Nationality    string `json:"nationality"`
	PassportNumber string `json:"passportNumber"`
}

type CustomerPayload struct {
	FirstName      string `json:"firstName" binding:"required"`
	LastName       string `json:"lastName" binding:"required"`
	Email          string `json:"email" binding:"required,email"`
	Phone          string `json:"phone" binding:"required"`
	Nationality    string `json:"nationality" binding:"required"`
	PassportNumber string `json:"passportNumber"`
}

// User is an admin account. PasswordHash never leaves the server.
type User struct {
	ID           int64  `json:"userId"`
	Username     string `json:"username"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	Role         string `json:"role"`
	CreatedAt    string `json:"createdAt"`
}

type UserPayload struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password"`
	Role     string `json:"role" binding:"required,oneof=admin manager clerk"`
}

type Staff struct {
	ID        int64  `json:"staffId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Position  string `json:"position"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	HireDate  string `json:"hireDate"`
}

type StaffPayload struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Position  string `json:"position" binding:"required"`
	Phone     string `json:"phone" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
	HireDate  string `json:"hireDate" binding:"required,datetime=2006-01-02"`
}

// Activity is one audit line written for an admin user.
type Activity struct {
	ID           int64  `json:"activityId"`
	UserID       int64  `json:"userId"`
	Username     string `json:"username,omitempty"`
	Action       string `json:"action"`
	Description  string `json:"description"`
	ActivityDate string `json:"activityDate"`
}

type ActivityPayload struct {
	UserID      int64  `json:"userId" binding:"required,gt=0"`
	Action      string `json:"action" binding:"required,max=100"`
	Description string `json:"description"`
}

type LoginPayload struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

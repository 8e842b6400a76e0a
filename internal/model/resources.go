package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// The remaining console resources are plain CRUD rows managed through
// the generic panel; they carry no derived state of their own.

type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Product struct {
	ID             int64           `json:"id"`
	MedicineName   string          `json:"medicine_name"`
	MedicineNameAr string          `json:"medicine_name_ar"`
	Description    string          `json:"description"`
	Price          decimal.Decimal `json:"price"`
	Stock          int64           `json:"stock"`
	Category       string          `json:"category"`
	CreatedAt      time.Time       `json:"created_at"`
}

type Feedback struct {
	ID        int64     `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type RareMedicineRequest struct {
	ID           int64     `json:"id"`
	UserName     string    `json:"user_name"`
	MedicineName string    `json:"medicine_name"`
	Note         string    `json:"note"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

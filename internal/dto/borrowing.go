package dto

import "time"

type CreateBorrowingRequestDTO struct {
	BookID    int    `json:"bookId" example:"12"`
	BookTitle string `json:"bookTitle" example:"Structure and Interpretation of Computer Programs"`
	Quantity  int    `json:"quantity" example:"1"`
	FullName  string `json:"fullName" example:"Nguyen Van A"`
	StudentID string `json:"studentId" example:"79927398713"`
	Email     string `json:"email" example:"a@example.edu"`
}

type BorrowingResponseDTO struct {
	ID            int        `json:"id" example:"7"`
	UserID        int        `json:"userId" example:"2"`
	FullName      string     `json:"fullName" example:"Nguyen Van A"`
	StudentID     string     `json:"studentId" example:"79927398713"`
	Email         string     `json:"email" example:"a@example.edu"`
	BookID        int        `json:"bookId" example:"12"`
	BookTitle     string     `json:"bookTitle" example:"SICP"`
	Quantity      int        `json:"quantity" example:"1"`
	Status        string     `json:"status" example:"borrowed"`
	PaymentStatus string     `json:"paymentStatus" example:"none"`
	BorrowDate    time.Time  `json:"borrowDate" example:"2025-03-01T09:00:00+07:00"`
	ReturnDate    *time.Time `json:"returnDate,omitempty"`
}

type FundEntryDTO struct {
	ChargeID    int        `json:"chargeId" example:"3"`
	BookTitle   string     `json:"bookTitle" example:"SICP"`
	FullName    string     `json:"fullName" example:"Nguyen Van A"`
	StudentID   string     `json:"studentId" example:"79927398713"`
	DamageType  string     `json:"damageType" example:"lost"`
	Amount      float64    `json:"amount" example:"100000"`
	PaymentDate *time.Time `json:"paymentDate,omitempty"`
}

type FundSummaryResponseDTO struct {
	TotalFund    float64        `json:"totalFund" example:"350000"`
	TotalRecords int            `json:"totalRecords" example:"4"`
	Recent       []FundEntryDTO `json:"recent"`
}

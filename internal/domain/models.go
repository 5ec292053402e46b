package domain

import "time"

type User struct {
	ID           int       `db:"id"`
	Login        string    `db:"login"`
	PasswordHash string    `db:"password_hash"`
	FullName     string    `db:"full_name"`
	StudentID    string    `db:"student_id"`
	Email        string    `db:"email"`
	Role         string    `db:"role"`
	CreatedAt    time.Time `db:"created_at"`
}

type Book struct {
	ID              int    `db:"id"`
	Title           string `db:"title"`
	Author          string `db:"author"`
	TotalCopies     int    `db:"total_copies"`
	AvailableCopies int    `db:"available_copies"`
}

// BorrowRecord keeps a denormalized snapshot of the borrower and the book
// taken at creation time, so history stays readable after catalog edits.
type BorrowRecord struct {
	ID            int        `db:"id"`
	UserID        int        `db:"user_id"`
	FullName      string     `db:"full_name"`
	StudentID     string     `db:"student_id"`
	Email         string     `db:"email"`
	BookID        int        `db:"book_id"`
	BookTitle     string     `db:"book_title"`
	Quantity      int        `db:"quantity"`
	Status        string     `db:"status"`
	PaymentStatus string     `db:"payment_status"`
	BorrowDate    time.Time  `db:"borrow_date"`
	ReturnDate    *time.Time `db:"return_date"`
}

type CompensationCharge struct {
	ID            int        `db:"id"`
	BorrowingID   int        `db:"borrowing_id"`
	DamageType    string     `db:"damage_type"`
	Reason        string     `db:"reason"`
	EvidenceImage string     `db:"evidence_image"`
	Amount        float64    `db:"amount"`
	TxnRef        string     `db:"txn_ref"`
	PaymentStatus string     `db:"payment_status"`
	PaymentDate   *time.Time `db:"payment_date"`
	CreatedAt     time.Time  `db:"created_at"`
}

type Notification struct {
	ID        int       `db:"id"`
	UserID    int       `db:"user_id"`
	Type      string    `db:"type"`
	Title     string    `db:"title"`
	Message   string    `db:"message"`
	Data      string    `db:"data"`
	CreatedAt time.Time `db:"created_at"`
}

// FundEntry is a reporting row: a completed charge joined with the
// borrow snapshot it belongs to.
type FundEntry struct {
	ChargeID    int       `db:"charge_id"`
	BookTitle   string    `db:"book_title"`
	FullName    string    `db:"full_name"`
	StudentID   string    `db:"student_id"`
	DamageType  string    `db:"damage_type"`
	Amount      float64   `db:"amount"`
	PaymentDate time.Time `db:"payment_date"`
}

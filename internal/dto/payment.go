package dto

type InitiatePaymentResponseDTO struct {
	TxnRef     string  `json:"txnRef" example:"7f6f65ab-0aa2-4a8f-9e54-c9f4aadcb1f0"`
	Amount     float64 `json:"amount" example:"100000"`
	PaymentURL string  `json:"paymentUrl"`
}

type VerifyPaymentDTO struct {
	TxnRef string `json:"txnRef" example:"7f6f65ab-0aa2-4a8f-9e54-c9f4aadcb1f0"`
	Status string `json:"status" example:"completed"`
}

type VerifyBorrowingDTO struct {
	ID            int    `json:"id" example:"7"`
	Status        string `json:"status" example:"lost"`
	PaymentStatus string `json:"paymentStatus" example:"completed"`
}

type VerifyResponseDTO struct {
	Payment   VerifyPaymentDTO   `json:"payment"`
	Borrowing VerifyBorrowingDTO `json:"borrowing"`
}

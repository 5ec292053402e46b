package dto

type RegisterRequestDTO struct {
	Login     string `json:"login" validate:"required,min=3,max=50"`
	Password  string `json:"password" validate:"required,min=8"`
	FullName  string `json:"fullName" example:"Nguyen Van A"`
	StudentID string `json:"studentId" example:"79927398713"`
	Email     string `json:"email" example:"a@example.edu"`
}

type RegisterResponseDTO struct {
	Message string `json:"message"`
}

type LoginRequestDTO struct {
	Login    string `json:"login" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginResponseDTO struct {
	Message string `json:"message"`
}

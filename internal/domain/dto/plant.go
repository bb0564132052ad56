package dto

type CreateCompanyRequest struct {
	Name string `json:"name" validate:"required"`
}

type CreatePlantRequest struct {
	PlantCode string `json:"plant_code" validate:"required"`
	PlantName string `json:"plant_name" validate:"required"`
}

type LoginRequest struct {
	UserID    string `json:"user_id" validate:"required"`
	CompanyID string `json:"company_id" validate:"required"`
	PlantID   string `json:"plant_id" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

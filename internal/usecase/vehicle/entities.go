package vehicle

import domain "autogiro-backend/internal/domain/vehicle"

type ListQuery struct {
	Page  int
	Limit int
}

type PageDTO struct {
	Vehicles      []domain.Vehicle `json:"vehicles"`
	CurrentPage   int              `json:"currentPage"`
	TotalPages    int              `json:"totalPages"`
	TotalVehicles int64            `json:"totalVehicles"`
}

type DeactivationReport struct {
	Deactivated int      `json:"deactivated"`
	ExternalIDs []string `json:"external_ids"`
}

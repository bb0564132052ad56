package domain

import "time"

type PlantType string

const (
	PlantTypeHome       PlantType = "home"
	PlantTypeAggregator PlantType = "aggregator"
	PlantTypeRegular    PlantType = "regular"
)

type Company struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

type Plant struct {
	ID        string    `db:"id"`
	CompanyID string    `db:"company_id"`
	PlantCode string    `db:"plant_code"`
	PlantName string    `db:"plant_name"`
	PlantType PlantType `db:"plant_type"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (p *Plant) IsVirtual() bool {
	return p.PlantType == PlantTypeHome || p.PlantType == PlantTypeAggregator
}

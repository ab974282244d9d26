package pharmacy

import "github.com/jrsteele09/ayursetu-client/internal/utils"

// Medicine mirrors the pharmacy service DTO.
type Medicine struct {
	ID                   int64    `json:"id,omitempty"`
	Name                 string   `json:"name,omitempty"`
	GenericName          string   `json:"genericName,omitempty"`
	Manufacturer         string   `json:"manufacturer,omitempty"`
	Category             string   `json:"category,omitempty"`
	DosageForm           string   `json:"dosageForm,omitempty"`
	Strength             string   `json:"strength,omitempty"`
	Description          string   `json:"description,omitempty"`
	SideEffects          string   `json:"sideEffects,omitempty"`
	Contraindications    string   `json:"contraindications,omitempty"`
	Price                *float64 `json:"price,omitempty"`
	StockQuantity        *int     `json:"stockQuantity,omitempty"`
	RequiresPrescription *bool    `json:"requiresPrescription,omitempty"`
	IsAvailable          *bool    `json:"isAvailable,omitempty"`
	ImageURL             string   `json:"imageUrl,omitempty"`
}

func (m Medicine) InStock() bool {
	return utils.ValueOr(m.IsAvailable, true) && utils.Value(m.StockQuantity) > 0
}

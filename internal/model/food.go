package model

// FoodItem is a pantry entry. Quantity is free text ("2 lbs", "1 carton").
type FoodItem struct {
	ID                string `json:"id"`
	Name              string `json:"name" validate:"required"`
	Quantity          string `json:"quantity"`
	Source            string `json:"source"`
	Notes             string `json:"notes"`
	LowStockThreshold *int   `json:"lowStockThreshold,omitempty" validate:"omitempty,min=0"`
	CurrentStock      *int   `json:"currentStock,omitempty" validate:"omitempty,min=0"`
}

func (f *FoodItem) GetID() string   { return f.ID }
func (f *FoodItem) SetID(id string) { f.ID = id }

func (f *FoodItem) LowOnStock() bool {
	return lowOnStock(f.CurrentStock, f.LowStockThreshold)
}

package model

// Timing is when a supplement is taken.
type Timing string

const (
	TimingAM   Timing = "AM"
	TimingPM   Timing = "PM"
	TimingBoth Timing = "BOTH"
)

// Supplement is one entry of the supplement stack.
type Supplement struct {
	ID                string `json:"id"`
	Name              string `json:"name" validate:"required"`
	Purpose           string `json:"purpose"`
	Category          string `json:"category"`
	Notes             string `json:"notes"`
	Timing            Timing `json:"timing" validate:"required,oneof=AM PM BOTH"`
	NextRefillDate    string `json:"nextRefillDate,omitempty" validate:"omitempty,datetime=2006-01-02"`
	TakenToday        bool   `json:"takenToday"`
	LowStockThreshold *int   `json:"lowStockThreshold,omitempty" validate:"omitempty,min=0"`
	CurrentStock      *int   `json:"currentStock,omitempty" validate:"omitempty,min=0"`
}

func (s *Supplement) GetID() string   { return s.ID }
func (s *Supplement) SetID(id string) { s.ID = id }

// LowOnStock reports whether the stock has reached a positive threshold.
func (s *Supplement) LowOnStock() bool {
	return lowOnStock(s.CurrentStock, s.LowStockThreshold)
}

func lowOnStock(stock, threshold *int) bool {
	t := IntValue(threshold)
	return t > 0 && IntValue(stock) <= t
}

// ClampStock applies delta to an optional stock counter without going below zero.
func ClampStock(stock *int, delta int) *int {
	v := IntValue(stock) + delta
	if v < 0 {
		v = 0
	}
	return &v
}

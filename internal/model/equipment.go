package model

type FitnessEquipment struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"required"`
	Type       string `json:"type"`
	UsageNotes string `json:"usageNotes"`
}

func (e *FitnessEquipment) GetID() string   { return e.ID }
func (e *FitnessEquipment) SetID(id string) { e.ID = id }

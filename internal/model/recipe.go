package model

// Recipe stores ingredients and instructions as free text.
type Recipe struct {
	ID           string   `json:"id"`
	Name         string   `json:"name" validate:"required"`
	Ingredients  string   `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Tags         []string `json:"tags"`
	Calories     *int     `json:"calories,omitempty" validate:"omitempty,min=0"`
	Protein      *int     `json:"protein,omitempty" validate:"omitempty,min=0"`
	PrepTime     string   `json:"prepTime,omitempty"`
}

func (r *Recipe) GetID() string   { return r.ID }
func (r *Recipe) SetID(id string) { r.ID = id }

// HasTag reports whether the recipe carries tag.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// RecipeTags is the tag catalogue offered when tagging recipes.
var RecipeTags = []string{
	"Kidney Support",
	"Liver Detox",
	"Energy Boost",
	"High Protein Recovery",
	"Anti-Inflammatory",
	"Gut Health",
	"Immune Support",
	"Pre-Workout",
	"Post-Workout",
	"Muscle Building",
}

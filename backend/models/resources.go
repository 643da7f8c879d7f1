package models

// Catalog resource categories.
const (
	CategoryMental    = "MENTAL"
	CategoryFitness   = "FITNESS"
	CategoryNutrition = "NUTRITION"
)

// CatalogResource is a wellness content item (article or link) shown in the
// student resource library.
type CatalogResource struct {
	ID          string `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	Category    string `json:"category" yaml:"category"` // MENTAL, FITNESS, NUTRITION
	URL         string `json:"url" yaml:"url"`
}

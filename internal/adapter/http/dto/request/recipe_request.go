package request

import "strings"

// RecipeRequest creates or updates a recipe with its cost breakdown.
type RecipeRequest struct {
	Name string `json:"name" binding:"required"`
	BreakdownRequest
}

func (r RecipeRequest) ResolveName() string {
	return strings.TrimSpace(r.Name)
}

package models

// Prize is one wheel segment. Weight is a percentage; across a prize
// table the weights sum to 100. The table is static at runtime.
type Prize struct {
	Name        string  `json:"name"`
	Icon        string  `json:"icon"`
	Weight      float64 `json:"weight"`
	Description string  `json:"description"`
}

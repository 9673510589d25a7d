package models

// Revenue is one month of aggregate revenue, keyed by its short month name.
type Revenue struct {
	Month   string `json:"month"` // VARCHAR(4), e.g. "Jan"
	Revenue int    `json:"revenue"`
}

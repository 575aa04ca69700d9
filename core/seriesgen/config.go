package seriesgen

// Config holds parameters for synthetic time-series generation.
type Config struct {
	// Seed feeds the random source. Zero selects a time-based seed.
	Seed int64 `json:"seed"`
}

package model

// Income is one month's accumulated income. Exactly one row exists per
// month key; repeated contributions add to the stored amount.
type Income struct {
	Month  string // MM-YYYY
	Amount float64
	ID     int64
}

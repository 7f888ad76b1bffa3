package model

// StatusCount is one row of the bookings-by-status aggregate.
type StatusCount struct {
	Status string `db:"status"`
	Count  int    `db:"count"`
}

// MonthlyRevenue is one row of the payments-by-month aggregate. Month
// is formatted YYYY-MM.
type MonthlyRevenue struct {
	Month   string  `db:"month"`
	Revenue float64 `db:"revenue"`
}

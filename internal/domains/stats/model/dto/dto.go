package dto

import "hallbook/internal/domains/stats/model"

type StatusCountResponse struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

type MonthlyRevenueResponse struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
}

// DashboardResponse is the admin dashboard summary.
type DashboardResponse struct {
	BookingsByStatus []StatusCountResponse    `json:"bookings_by_status"`
	RevenueByMonth   []MonthlyRevenueResponse `json:"revenue_by_month"`
	UpcomingEvents   int                      `json:"upcoming_events"`
}

func (r *DashboardResponse) FromModels(statuses []model.StatusCount, revenue []model.MonthlyRevenue, upcoming int) {
	r.UpcomingEvents = upcoming

	r.BookingsByStatus = make([]StatusCountResponse, len(statuses))
	for i, s := range statuses {
		r.BookingsByStatus[i] = StatusCountResponse{Status: s.Status, Count: s.Count}
	}

	r.RevenueByMonth = make([]MonthlyRevenueResponse, len(revenue))
	for i, m := range revenue {
		r.RevenueByMonth[i] = MonthlyRevenueResponse{Month: m.Month, Revenue: m.Revenue}
	}
}

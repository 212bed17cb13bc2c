package dto

import (
	"fmt"
	"strconv"
)

// TrendsRequest carries this month's and last month's figures for four KPIs.
type TrendsRequest struct {
	CurrentRevenue    float64 `json:"currentRevenue"    validate:"min=0"`
	PreviousRevenue   float64 `json:"previousRevenue"   validate:"min=0"`
	CurrentOccupancy  float64 `json:"currentOccupancy"  validate:"min=0,max=100"`
	PreviousOccupancy float64 `json:"previousOccupancy" validate:"min=0,max=100"`
	CurrentGuests     float64 `json:"currentGuests"     validate:"min=0"`
	PreviousGuests    float64 `json:"previousGuests"    validate:"min=0"`
	CurrentOrders     float64 `json:"currentOrders"     validate:"min=0"`
	PreviousOrders    float64 `json:"previousOrders"    validate:"min=0"`
}

// Parts lists the eight figures in a fixed order, formatted for cache keys.
func (r TrendsRequest) Parts() []string {
	values := []float64{
		r.CurrentRevenue, r.PreviousRevenue,
		r.CurrentOccupancy, r.PreviousOccupancy,
		r.CurrentGuests, r.PreviousGuests,
		r.CurrentOrders, r.PreviousOrders,
	}

	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = strconv.FormatFloat(v, 'f', -1, 64)
	}

	return parts
}

func (r TrendsRequest) Prompt() string {
	return fmt.Sprintf(
		"Revenue: current month %.2f, previous month %.2f\n"+
			"Occupancy rate (%%): current month %.2f, previous month %.2f\n"+
			"Guests: current month %.0f, previous month %.0f\n"+
			"Restaurant orders: current month %.0f, previous month %.0f",
		r.CurrentRevenue, r.PreviousRevenue,
		r.CurrentOccupancy, r.PreviousOccupancy,
		r.CurrentGuests, r.PreviousGuests,
		r.CurrentOrders, r.PreviousOrders,
	)
}

type TrendsResponse struct {
	RevenueAnomaly   bool   `json:"revenueAnomaly"`
	OccupancyAnomaly bool   `json:"occupancyAnomaly"`
	GuestsAnomaly    bool   `json:"guestsAnomaly"`
	OrdersAnomaly    bool   `json:"ordersAnomaly"`
	Insight          string `json:"insight"`
}

type DashboardResponse struct {
	Rooms              StatusCount `json:"rooms"`
	Halls              StatusCount `json:"halls"`
	OccupancyRate      float64     `json:"occupancy_rate"`
	RevenueBooked      float64     `json:"revenue_booked"`
	AmountCollected    float64     `json:"amount_collected"`
	OutstandingBalance float64     `json:"outstanding_balance"`
	OpenOrders         int         `json:"open_orders"`
	RestaurantRevenue  float64     `json:"restaurant_revenue"`
	BarRevenue         float64     `json:"bar_revenue"`
	BarLowStock        int         `json:"bar_low_stock"`
	StockAlerts        int         `json:"stock_alerts"`
}

type StatusCount struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
}

func (s *StatusCount) Add(status string) {
	if s.ByStatus == nil {
		s.ByStatus = map[string]int{}
	}

	s.Total++
	s.ByStatus[status]++
}

package model

import (
	"fmt"
	"slices"
	"strings"
)

const (
	OrderStatusPending   = "pending"
	OrderStatusPreparing = "preparing"
	OrderStatusServed    = "served"
	OrderStatusPaid      = "paid"
	OrderStatusCancelled = "cancelled"
)

var orderTransitions = map[string][]string{
	OrderStatusPending:   {OrderStatusPreparing, OrderStatusCancelled},
	OrderStatusPreparing: {OrderStatusServed, OrderStatusCancelled},
	OrderStatusServed:    {OrderStatusPaid},
}

// NextOrderStatuses lists where an order in status may move. Terminal statuses have none.
func NextOrderStatuses(status string) []string {
	return slices.Clone(orderTransitions[status])
}

func CanTransition(from, to string) error {
	next := orderTransitions[from]
	if slices.Contains(next, to) {
		return nil
	}

	if len(next) == 0 {
		return fmt.Errorf("order is %s and cannot change status", from)
	}

	return fmt.Errorf("order cannot move from %s to %s, allowed: %s", from, to, strings.Join(next, ", "))
}

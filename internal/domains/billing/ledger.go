package billing

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"slices"
	"time"
)

const (
	MethodCash         = "cash"
	MethodCard         = "card"
	MethodUPI          = "upi"
	MethodBankTransfer = "bank_transfer"
)

// Transaction is one immutable ledger entry.
type Transaction struct {
	Date   time.Time `json:"date"`
	Amount float64   `json:"amount"`
	Method string    `json:"method"`
}

// Transactions is stored as a JSONB array.
type Transactions []Transaction

func (t Transactions) Value() (driver.Value, error) {
	if t == nil {
		return []byte("[]"), nil
	}

	value, err := json.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transactions: %w", err)
	}

	return value, nil
}

func (t *Transactions) Scan(src any) error {
	var data []byte

	switch value := src.(type) {
	case nil:
		*t = Transactions{}

		return nil
	case []byte:
		data = value
	case string:
		data = []byte(value)
	default:
		return fmt.Errorf("unsupported transactions source %T", src)
	}

	if err := json.Unmarshal(data, t); err != nil {
		return fmt.Errorf("failed to unmarshal transactions: %w", err)
	}

	return nil
}

type Payment struct {
	PaidAmount   float64
	Transactions Transactions
}

// RecordPayment appends one entry to a copy of the ledger. The input slice is left untouched.
// Non-negative amounts are enforced by request validation, not here.
func RecordPayment(paidAmount float64, transactions Transactions, amount float64, method string, at time.Time) Payment {
	next := slices.Grow(slices.Clone(transactions), 1)
	next = append(next, Transaction{
		Date:   at,
		Amount: amount,
		Method: method,
	})

	return Payment{
		PaidAmount:   paidAmount + amount,
		Transactions: next,
	}
}

// BalanceDue may go negative on overpayment.
func BalanceDue(total, paidAmount float64) float64 {
	return total - paidAmount
}

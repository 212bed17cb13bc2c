package billing_test

import (
	"testing"
	"time"

	"frontdesk/internal/domains/billing"

	"github.com/stretchr/testify/assert"
)

func TestRecordPayment(t *testing.T) {
	now := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

	payment := billing.RecordPayment(0, nil, 5000, billing.MethodCash, now)

	assert.InDelta(t, 5000.0, payment.PaidAmount, 0.0001)
	assert.Len(t, payment.Transactions, 1)
	assert.Equal(t, billing.Transaction{Date: now, Amount: 5000, Method: billing.MethodCash}, payment.Transactions[0])
	assert.InDelta(t, 52000.0, billing.BalanceDue(57000, payment.PaidAmount), 0.0001)
}

func TestRecordPayment_LeavesPriorEntriesUntouched(t *testing.T) {
	first := time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)
	prior := billing.Transactions{{Date: first, Amount: 1000, Method: billing.MethodCard}}
	snapshot := append(billing.Transactions{}, prior...)

	payment := billing.RecordPayment(1000, prior, 250, billing.MethodUPI, first.Add(time.Hour))

	assert.Equal(t, snapshot, prior)
	assert.Len(t, payment.Transactions, len(prior)+1)
	assert.Equal(t, prior[0], payment.Transactions[0])
	assert.InDelta(t, 1250.0, payment.PaidAmount, 0.0001)

	payment.Transactions[0].Amount = 1
	assert.InDelta(t, 1000.0, prior[0].Amount, 0.0001)
}

func TestBalanceDue_Overpayment(t *testing.T) {
	assert.InDelta(t, -500.0, billing.BalanceDue(2400, 2900), 0.0001)
}

func TestTransactions_ValueScan(t *testing.T) {
	var empty billing.Transactions

	value, err := empty.Value()
	assert.NoError(t, err)
	assert.Equal(t, []byte("[]"), value)

	var scanned billing.Transactions
	assert.NoError(t, scanned.Scan(nil))
	assert.Empty(t, scanned)

	assert.NoError(t, scanned.Scan(`[{"date":"2024-06-01T15:00:00Z","amount":5000,"method":"cash"}]`))
	assert.Len(t, scanned, 1)
	assert.Equal(t, billing.MethodCash, scanned[0].Method)

	assert.Error(t, scanned.Scan(42))
	assert.Error(t, scanned.Scan([]byte("{")))
}

package payment

import (
	"context"
	"fmt"
	"time"
)

type ChargeResult struct {
	Reference string
	Amount    float64
	Status    string
	ChargedAt time.Time
}

// Gateway is the settlement integration point. The real provider lives
// outside this service; StubGateway stands in until one is wired up.
type Gateway interface {
	Charge(ctx context.Context, orderID uint, amount float64) (*ChargeResult, error)
}

type StubGateway struct{}

func NewStubGateway() Gateway {
	return &StubGateway{}
}

// Charge accepts every request and fabricates a settlement reference.
func (g *StubGateway) Charge(_ context.Context, orderID uint, amount float64) (*ChargeResult, error) {
	return &ChargeResult{
		Reference: fmt.Sprintf("stub-%d-%d", orderID, time.Now().UnixNano()),
		Amount:    amount,
		Status:    "SETTLED",
		ChargedAt: time.Now(),
	}, nil
}

package charge_test

import (
	"testing"

	"hallbook/internal/domains/booking/charge"
	featureModel "hallbook/internal/domains/feature/model"
	hallModel "hallbook/internal/domains/hall/model"
	inventoryModel "hallbook/internal/domains/inventory/model"
	paymentModel "hallbook/internal/domains/payment/model"
	serviceModel "hallbook/internal/domains/service/model"

	"github.com/stretchr/testify/assert"
)

func TestResolveBaseAmount(t *testing.T) {
	hall := hallModel.Hall{
		RateMorning: 1000,
		RateEvening: 1500,
		RateFullday: 2200,
	}

	tests := []struct {
		name string
		slot string
		want float64
	}{
		{name: "morning slot", slot: "morning", want: 1000},
		{name: "evening slot", slot: "evening", want: 1500},
		{name: "fullday slot", slot: "fullday", want: 2200},
		{name: "unknown slot resolves to zero", slot: "midnight", want: 0},
		{name: "empty slot resolves to zero", slot: "", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, charge.ResolveBaseAmount(hall, tt.slot))
		})
	}
}

func TestAggregate(t *testing.T) {
	features := []featureModel.Feature{
		{Name: "Stage decoration", Price: 100, Quantity: 2},
	}
	services := []serviceModel.Service{
		{Name: "Catering", Price: 300, DirectPay: false},
		{Name: "Photography", Price: 900, DirectPay: true},
	}
	inventory := []inventoryModel.Inventory{
		{Name: "Chairs", Price: 10, Quantity: 10},
	}

	totals := charge.Aggregate(features, services, inventory)

	assert.Equal(t, float64(200), totals.Features)
	assert.Equal(t, float64(300), totals.Services, "direct-pay services must not be billed")
	assert.Equal(t, float64(100), totals.Inventory)

	again := charge.Aggregate(features, services, inventory)
	assert.Equal(t, totals, again, "aggregation must be idempotent")
}

func TestAggregate_Empty(t *testing.T) {
	totals := charge.Aggregate(nil, nil, nil)

	assert.Equal(t, charge.Totals{}, totals)
}

func TestComputeBill(t *testing.T) {
	tests := []struct {
		name             string
		base             float64
		totals           charge.Totals
		discount         float64
		taxPct           float64
		wantTotalCharges float64
		wantTaxAmount    float64
		wantBillAmount   float64
	}{
		{
			name:             "standard bill",
			base:             1000,
			totals:           charge.Totals{Features: 200, Services: 300, Inventory: 100},
			discount:         0,
			taxPct:           18,
			wantTotalCharges: 1600,
			wantTaxAmount:    288,
			wantBillAmount:   1888,
		},
		{
			name:             "discount exceeding charges is not clamped",
			base:             1000,
			totals:           charge.Totals{},
			discount:         1500,
			taxPct:           0,
			wantTotalCharges: -500,
			wantTaxAmount:    0,
			wantBillAmount:   -500,
		},
		{
			name:             "tax applies to a negative total unclamped",
			base:             1000,
			totals:           charge.Totals{},
			discount:         1500,
			taxPct:           18,
			wantTotalCharges: -500,
			wantTaxAmount:    -90,
			wantBillAmount:   -590,
		},
		{
			name:             "zero tax percentage",
			base:             500,
			totals:           charge.Totals{Features: 50},
			discount:         100,
			taxPct:           0,
			wantTotalCharges: 450,
			wantTaxAmount:    0,
			wantBillAmount:   450,
		},
		{
			name:             "tax rounds to nearest integer",
			base:             333,
			totals:           charge.Totals{},
			discount:         0,
			taxPct:           18,
			wantTotalCharges: 333,
			wantTaxAmount:    60,
			wantBillAmount:   393,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bill := charge.ComputeBill(tt.base, tt.totals, tt.discount, tt.taxPct)

			assert.Equal(t, tt.wantTotalCharges, bill.TotalCharges)
			assert.Equal(t, tt.wantTaxAmount, bill.TaxAmount)
			assert.Equal(t, tt.wantBillAmount, bill.BillAmount)
		})
	}
}

func TestComputeBalance(t *testing.T) {
	payments := []paymentModel.Payment{
		{Amount: 500},
		{Amount: 300},
	}

	totalPaid, balance := charge.ComputeBalance(payments, 1000)

	assert.Equal(t, float64(800), totalPaid)
	assert.Equal(t, float64(200), balance)
}

func TestComputeBalance_Overpaid(t *testing.T) {
	payments := []paymentModel.Payment{
		{Amount: 1200},
	}

	totalPaid, balance := charge.ComputeBalance(payments, 1000)

	assert.Equal(t, float64(1200), totalPaid)
	assert.Equal(t, float64(-200), balance, "overpayment must surface as a negative balance")
}

func TestComputeBalance_NoPayments(t *testing.T) {
	totalPaid, balance := charge.ComputeBalance(nil, 1888)

	assert.Equal(t, float64(0), totalPaid)
	assert.Equal(t, float64(1888), balance)
}

package charge

import (
	"math"

	bookingModel "hallbook/internal/domains/booking/model"
	featureModel "hallbook/internal/domains/feature/model"
	hallModel "hallbook/internal/domains/hall/model"
	inventoryModel "hallbook/internal/domains/inventory/model"
	paymentModel "hallbook/internal/domains/payment/model"
	serviceModel "hallbook/internal/domains/service/model"
)

// ResolveBaseAmount maps a booking time slot to the hall's rate card.
// An unknown slot resolves to 0 so a storefront submission never
// fails on pricing.
func ResolveBaseAmount(hall hallModel.Hall, timeSlot string) float64 {
	switch timeSlot {
	case bookingModel.SlotMorning:
		return hall.RateMorning
	case bookingModel.SlotEvening:
		return hall.RateEvening
	case bookingModel.SlotFullday:
		return hall.RateFullday
	default:
		return 0
	}
}

// Totals carries the per-category sums of a booking's line items.
type Totals struct {
	Features  float64
	Services  float64
	Inventory float64
}

// Aggregate sums the booking's line items per category. Direct-pay
// services are settled with the supplier and excluded from the bill.
func Aggregate(features []featureModel.Feature, services []serviceModel.Service, inventory []inventoryModel.Inventory) Totals {
	var totals Totals

	for _, f := range features {
		totals.Features += f.Price * float64(f.Quantity)
	}

	for _, s := range services {
		if s.DirectPay {
			continue
		}

		totals.Services += s.Price
	}

	for _, i := range inventory {
		totals.Inventory += i.Price * float64(i.Quantity)
	}

	return totals
}

// Bill is the computed charge summary of a booking.
type Bill struct {
	BaseAmount     float64
	TotalFeatures  float64
	TotalServices  float64
	TotalInventory float64
	Discount       float64
	TotalCharges   float64
	TaxPercentage  float64
	TaxAmount      float64
	BillAmount     float64
}

// ComputeBill folds base amount, line-item totals, discount, and tax
// into final billing figures. A discount larger than the charges
// yields a negative total; that is deliberate and surfaces data-entry
// mistakes instead of hiding them.
func ComputeBill(baseAmount float64, totals Totals, discount, taxPercentage float64) Bill {
	totalCharges := baseAmount + totals.Features + totals.Services + totals.Inventory - discount
	taxAmount := math.Round(totalCharges * taxPercentage / 100)

	return Bill{
		BaseAmount:     baseAmount,
		TotalFeatures:  totals.Features,
		TotalServices:  totals.Services,
		TotalInventory: totals.Inventory,
		Discount:       discount,
		TotalCharges:   totalCharges,
		TaxPercentage:  taxPercentage,
		TaxAmount:      taxAmount,
		BillAmount:     totalCharges + taxAmount,
	}
}

// ComputeBalance sums the recorded payments and returns paid plus the
// outstanding balance against the bill amount. Overpayment produces a
// negative balance.
func ComputeBalance(payments []paymentModel.Payment, billAmount float64) (totalPaid, balance float64) {
	for _, p := range payments {
		totalPaid += p.Amount
	}

	return totalPaid, billAmount - totalPaid
}

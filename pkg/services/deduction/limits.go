package deduction

import (
	"time"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
)

// StatutoryLimits contains the statutory caps and rates the calculators apply.
// Amounts are per assessment year; rates are whole percentages.
type StatutoryLimits struct {
	// CombinedInvestmentCap is the ceiling shared across 80C, 80CCC and
	// 80CCD(1), including the EPF employee contribution (default: 150000).
	CombinedInvestmentCap domain.Money
	// AdditionalNPSCap is the separate 80CCD(1B) ceiling (default: 50000).
	AdditionalNPSCap domain.Money
	// EmployerNPSGovtRate is the 80CCD(2) salary percentage for government
	// employees (default: 14).
	EmployerNPSGovtRate int64
	// EmployerNPSDefaultRate is the 80CCD(2) salary percentage for everyone
	// else (default: 10).
	EmployerNPSDefaultRate int64
	// HealthPremiumCap is the 80D premium ceiling under age 60 (default: 25000).
	HealthPremiumCap domain.Money
	// HealthPremiumSeniorCap is the 80D premium ceiling at or over age 60
	// (default: 50000).
	HealthPremiumSeniorCap domain.Money
	// PreventiveCheckupCap bounds the 80D preventive checkup sub-claim
	// (default: 5000).
	PreventiveCheckupCap domain.Money
	// DisabilityModerateAmount is the flat 80DD/80U deduction for a moderate
	// disability (default: 75000).
	DisabilityModerateAmount domain.Money
	// DisabilitySevereAmount is the flat 80DD/80U deduction for a severe
	// disability (default: 125000).
	DisabilitySevereAmount domain.Money
	// MedicalTreatmentCap is the 80DDB expense ceiling under age 60
	// (default: 40000).
	MedicalTreatmentCap domain.Money
	// MedicalTreatmentSeniorCap is the 80DDB expense ceiling at or over age 60
	// (default: 100000).
	MedicalTreatmentSeniorCap domain.Money
	// EVLoanInterestCap is the 80EEB interest ceiling (default: 150000).
	EVLoanInterestCap domain.Money
	// EVPurchaseWindowStart/End bound the eligible 80EEB purchase dates,
	// inclusive (default: 2019-04-01 to 2025-03-31).
	EVPurchaseWindowStart time.Time
	EVPurchaseWindowEnd   time.Time
	// DonationIncomeLimitRate is the 80G qualifying limit as a percentage of
	// adjusted gross income (default: 10).
	DonationIncomeLimitRate int64
	// SavingsInterestCap is the 80TTA exemption ceiling (default: 10000).
	SavingsInterestCap domain.Money
	// SeniorInterestCap is the 80TTB exemption ceiling (default: 50000).
	SeniorInterestCap domain.Money
	// MetroHRARate and NonMetroHRARate are the HRA salary percentages by city
	// tier (defaults: 50 and 40).
	MetroHRARate    int64
	NonMetroHRARate int64
	// RentBasicOffsetRate is the salary percentage subtracted from rent paid
	// in the HRA exemption (default: 10).
	RentBasicOffsetRate int64
}

// DefaultStatutoryLimits returns the limits in force for assessment years
// 2023-24 onward.
func DefaultStatutoryLimits() StatutoryLimits {
	return StatutoryLimits{
		CombinedInvestmentCap:     domain.Rupees(150000),
		AdditionalNPSCap:          domain.Rupees(50000),
		EmployerNPSGovtRate:       14,
		EmployerNPSDefaultRate:    10,
		HealthPremiumCap:          domain.Rupees(25000),
		HealthPremiumSeniorCap:    domain.Rupees(50000),
		PreventiveCheckupCap:      domain.Rupees(5000),
		DisabilityModerateAmount:  domain.Rupees(75000),
		DisabilitySevereAmount:    domain.Rupees(125000),
		MedicalTreatmentCap:       domain.Rupees(40000),
		MedicalTreatmentSeniorCap: domain.Rupees(100000),
		EVLoanInterestCap:         domain.Rupees(150000),
		EVPurchaseWindowStart:     time.Date(2019, time.April, 1, 0, 0, 0, 0, time.UTC),
		EVPurchaseWindowEnd:       time.Date(2025, time.March, 31, 0, 0, 0, 0, time.UTC),
		DonationIncomeLimitRate:   10,
		SavingsInterestCap:        domain.Rupees(10000),
		SeniorInterestCap:         domain.Rupees(50000),
		MetroHRARate:              50,
		NonMetroHRARate:           40,
		RentBasicOffsetRate:       10,
	}
}

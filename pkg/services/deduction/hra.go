package deduction

import "github.com/fin-tools/tax-atlas/pkg/models/domain"

// HouseRentStatement holds the salary and rent figures for the HRA exemption.
// The city tier is validated at construction; the zero value is an absent
// statement and yields a zero exemption.
type HouseRentStatement struct {
	basic       domain.Money
	da          domain.Money
	hraReceived domain.Money
	rentPaid    domain.Money
	city        domain.CityTier
}

// NewHouseRentStatement validates the city tier and builds a statement. An
// unknown tier fails with a domain.ValidationError.
func NewHouseRentStatement(basic, da, hraReceived, rentPaid domain.Money, city string) (HouseRentStatement, error) {
	tier, err := domain.ParseCityTier(city)
	if err != nil {
		return HouseRentStatement{}, err
	}
	return HouseRentStatement{
		basic:       basic,
		da:          da,
		hraReceived: hraReceived,
		rentPaid:    rentPaid,
		city:        tier,
	}, nil
}

// Exemption is the minimum of three amounts: HRA actually received, the city
// tier percentage of basic+DA, and rent paid less 10% of basic+DA.
func (h HouseRentStatement) Exemption(regime domain.TaxRegime, limits StatutoryLimits) (domain.Money, domain.Trail) {
	var tr domain.Trail
	if !regime.AllowsDeductions() {
		return domain.ZeroINR(), tr
	}

	basicPlusDA := h.basic.Add(h.da)
	rate := limits.NonMetroHRARate
	if h.city == domain.CityMetro {
		rate = limits.MetroHRARate
	}
	salaryComponent := basicPlusDA.Percent(rate)
	rentComponent := h.rentPaid.
		Sub(basicPlusDA.Percent(limits.RentBasicOffsetRate)).
		Max(domain.ZeroINR())

	exemption := h.hraReceived.Min(salaryComponent).Min(rentComponent)
	tr.Put("hra/received", h.hraReceived)
	tr.Put("hra/salary_component", salaryComponent)
	tr.Put("hra/rent_component", rentComponent)
	tr.Put("hra/city_tier", string(h.city))
	tr.Put("hra/exemption", exemption)
	return exemption, tr
}

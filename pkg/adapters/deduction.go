package adapters

import (
	"time"

	"github.com/fin-tools/tax-atlas/pkg/models/api"
	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/fin-tools/tax-atlas/pkg/services/deduction"
)

// MapComputeRequestApiToDomain validates a compute request and builds the
// deduction ledger it declares.
func MapComputeRequestApiToDomain(req api.ComputeRequest) (deduction.Ledger, domain.TaxRegime, error) {
	regime, err := domain.ParseTaxRegime(req.Regime)
	if err != nil {
		return deduction.Ledger{}, "", err
	}

	var ledger deduction.Ledger
	sections := req.Sections

	if s := sections.Investments; s != nil {
		ledger.Investments = deduction.Section80C{
			LifeInsurancePremium: domain.MoneyFromFloat(s.LifeInsurancePremium),
			PublicProvidentFund:  domain.MoneyFromFloat(s.PublicProvidentFund),
			ELSS:                 domain.MoneyFromFloat(s.ELSS),
			NSC:                  domain.MoneyFromFloat(s.NSC),
			SukanyaSamriddhi:     domain.MoneyFromFloat(s.SukanyaSamriddhi),
			TaxSaverFD:           domain.MoneyFromFloat(s.TaxSaverFD),
			HomeLoanPrincipal:    domain.MoneyFromFloat(s.HomeLoanPrincipal),
			TuitionFees:          domain.MoneyFromFloat(s.TuitionFees),
			ULIP:                 domain.MoneyFromFloat(s.ULIP),
			SeniorCitizenSavings: domain.MoneyFromFloat(s.SeniorCitizenSavings),
			InfrastructureBonds:  domain.MoneyFromFloat(s.InfrastructureBonds),
		}
	}
	if s := sections.PensionFund; s != nil {
		ledger.PensionFund = deduction.Section80CCC{
			PensionFundContribution: domain.MoneyFromFloat(s.PensionFundContribution),
		}
	}
	if s := sections.NPS; s != nil {
		ledger.NPSEmployee = deduction.Section80CCD1{
			EmployeeContribution: domain.MoneyFromFloat(s.EmployeeContribution),
		}
		ledger.NPSAdditional = deduction.Section80CCD1B{
			AdditionalContribution: domain.MoneyFromFloat(s.AdditionalContribution),
		}
		ledger.NPSEmployer = deduction.Section80CCD2{
			EmployerContribution: domain.MoneyFromFloat(s.EmployerContribution),
			BasicPlusDA:          domain.MoneyFromFloat(s.BasicPlusDA),
			GovernmentEmployee:   s.GovernmentEmployee,
		}
	}
	if s := sections.HealthInsurance; s != nil {
		ledger.HealthInsurance = deduction.Section80D{
			SelfFamilyPremium: domain.MoneyFromFloat(s.SelfFamilyPremium),
			ParentPremium:     domain.MoneyFromFloat(s.ParentPremium),
			PreventiveCheckup: domain.MoneyFromFloat(s.PreventiveCheckup),
			ParentAge:         s.ParentAge,
		}
	}
	if s := sections.DisabledDependant; s != nil {
		ledger.DisabledDependant = deduction.Section80DD{
			Relation: domain.Relation(s.Relation),
			Tier:     domain.DisabilityTier(s.DisabilityTier),
		}
	}
	if s := sections.MedicalTreatment; s != nil {
		ledger.MedicalTreatment = deduction.Section80DDB{
			MedicalExpense: domain.MoneyFromFloat(s.MedicalExpense),
			Relation:       domain.Relation(s.Relation),
			DependantAge:   s.DependantAge,
		}
	}
	if s := sections.EducationLoan; s != nil {
		ledger.EducationLoan = deduction.Section80E{
			LoanInterest: domain.MoneyFromFloat(s.LoanInterest),
			Relation:     domain.Relation(s.Relation),
		}
	}
	if s := sections.ElectricVehicleLoan; s != nil {
		purchased, err := time.Parse("2006-01-02", s.PurchaseDate)
		if err != nil {
			return deduction.Ledger{}, "", &domain.ValidationError{
				Field:  "80eeb.purchase_date",
				Reason: "must be formatted as YYYY-MM-DD",
			}
		}
		ledger.ElectricVehicleLoan = deduction.Section80EEB{
			LoanInterest: domain.MoneyFromFloat(s.LoanInterest),
			PurchaseDate: purchased,
		}
	}
	if s := sections.Donations; s != nil {
		donations, err := mapDonationsApiToDomain(s)
		if err != nil {
			return deduction.Ledger{}, "", err
		}
		ledger.Donations = donations
	}
	if s := sections.PartyContribution; s != nil {
		ledger.PartyContribution = deduction.Section80GGC{
			PartyContribution: domain.MoneyFromFloat(s.PartyContribution),
		}
	}
	if s := sections.OwnDisability; s != nil {
		ledger.OwnDisability = deduction.Section80U{
			Tier: domain.DisabilityTier(s.DisabilityTier),
		}
	}
	if s := sections.Interest; s != nil {
		ledger.Interest = deduction.InterestIncome{
			SavingsAccount:   domain.MoneyFromFloat(s.SavingsAccount),
			FixedDeposit:     domain.MoneyFromFloat(s.FixedDeposit),
			RecurringDeposit: domain.MoneyFromFloat(s.RecurringDeposit),
			PostOffice:       domain.MoneyFromFloat(s.PostOffice),
		}
	}
	if s := sections.HouseRent; s != nil {
		statement, err := deduction.NewHouseRentStatement(
			domain.MoneyFromFloat(s.Basic),
			domain.MoneyFromFloat(s.DA),
			domain.MoneyFromFloat(s.HRAReceived),
			domain.MoneyFromFloat(s.RentPaid),
			s.City,
		)
		if err != nil {
			return deduction.Ledger{}, "", err
		}
		ledger.HouseRent = statement
	}
	ledger.OtherDeductions = domain.MoneyFromFloat(sections.OtherDeductions)

	return ledger, regime, nil
}

func mapDonationsApiToDomain(s *api.Donations80G) (deduction.Section80G, error) {
	var out deduction.Section80G

	for fund, amount := range s.FullExemption {
		m := domain.MoneyFromFloat(amount)
		switch fund {
		case "national_defence_fund":
			out.FullExemption.NationalDefenceFund = m
		case "pm_national_relief_fund":
			out.FullExemption.PMNationalReliefFund = m
		case "national_foundation_communal_harmony":
			out.FullExemption.NationalFoundationCommunalHarmony = m
		case "zila_saksharta_samiti":
			out.FullExemption.ZilaSakshartaSamiti = m
		case "national_illness_assistance_fund":
			out.FullExemption.NationalIllnessAssistanceFund = m
		case "swachh_bharat_kosh":
			out.FullExemption.SwachhBharatKosh = m
		case "clean_ganga_fund":
			out.FullExemption.CleanGangaFund = m
		case "national_children_fund":
			out.FullExemption.NationalChildrenFund = m
		case "army_central_welfare_fund":
			out.FullExemption.ArmyCentralWelfareFund = m
		case "chief_minister_relief_fund":
			out.FullExemption.ChiefMinisterReliefFund = m
		default:
			return out, unknownFund("full_exemption", fund)
		}
	}
	for fund, amount := range s.HalfExemption {
		m := domain.MoneyFromFloat(amount)
		switch fund {
		case "jawaharlal_nehru_memorial_fund":
			out.HalfExemption.JawaharlalNehruMemorialFund = m
		case "pm_drought_relief_fund":
			out.HalfExemption.PMDroughtReliefFund = m
		case "indira_gandhi_memorial_trust":
			out.HalfExemption.IndiraGandhiMemorialTrust = m
		case "rajiv_gandhi_foundation":
			out.HalfExemption.RajivGandhiFoundation = m
		default:
			return out, unknownFund("half_exemption", fund)
		}
	}
	for fund, amount := range s.FullExemptionWithLimit {
		m := domain.MoneyFromFloat(amount)
		switch fund {
		case "family_planning_association":
			out.FullExemptionWithLimit.FamilyPlanningAssociation = m
		case "indian_olympic_association":
			out.FullExemptionWithLimit.IndianOlympicAssociation = m
		case "sports_development_fund":
			out.FullExemptionWithLimit.SportsDevelopmentFund = m
		default:
			return out, unknownFund("full_exemption_with_limit", fund)
		}
	}
	for fund, amount := range s.HalfExemptionWithLimit {
		m := domain.MoneyFromFloat(amount)
		switch fund {
		case "charitable_institutions":
			out.HalfExemptionWithLimit.CharitableInstitutions = m
		case "religious_place_renovation":
			out.HalfExemptionWithLimit.ReligiousPlaceRenovation = m
		case "housing_development_authority":
			out.HalfExemptionWithLimit.HousingDevelopmentAuthority = m
		case "minority_corporation":
			out.HalfExemptionWithLimit.MinorityCorporation = m
		case "government_charitable_purpose":
			out.HalfExemptionWithLimit.GovernmentCharitablePurpose = m
		default:
			return out, unknownFund("half_exemption_with_limit", fund)
		}
	}
	return out, nil
}

func unknownFund(category, fund string) error {
	return &domain.ValidationError{
		Field:  "80g." + category + "." + fund,
		Reason: "unknown fund",
	}
}

// MapStatementDomainToApi converts a computed statement to its response
// shape.
func MapStatementDomainToApi(st domain.Statement, hraExemption domain.Money) api.Statement {
	out := api.Statement{
		Regime:            st.Regime.String(),
		GrossIncome:       st.GrossIncome.Decimal().StringFixed(2),
		TotalDeductions:   st.TotalDeductions.Decimal().StringFixed(2),
		InterestExemption: st.InterestExemption.Decimal().StringFixed(2),
		HRAExemption:      hraExemption.Decimal().StringFixed(2),
		Sections:          make([]api.StatementSection, 0, len(st.Sections)),
	}
	for _, section := range st.Sections {
		mapped := api.StatementSection{
			Title: section.Title,
			Lines: make([]api.StatementLine, 0, len(section.Lines)),
		}
		for _, line := range section.Lines {
			mapped.Lines = append(mapped.Lines, api.StatementLine{
				Name:  line.Name,
				Value: line.Value,
			})
		}
		out.Sections = append(out.Sections, mapped)
	}
	return out
}

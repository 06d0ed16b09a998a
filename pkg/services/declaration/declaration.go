// Package declaration reads employee investment declaration files into a
// deduction ledger. Files are INI formatted, one section per statutory
// section, amounts in rupees.
package declaration

import (
	"fmt"
	"time"

	"github.com/fin-tools/tax-atlas/pkg/models/domain"
	"github.com/fin-tools/tax-atlas/pkg/services/deduction"
	"gopkg.in/ini.v1"
)

// Declaration is a parsed declaration file: the employee context plus the
// section ledger built from it.
type Declaration struct {
	Regime      domain.TaxRegime
	Age         int
	GrossIncome domain.Money
	EPFEmployee domain.Money
	Ledger      deduction.Ledger
}

// Load reads and parses a declaration file.
func Load(path string) (*Declaration, error) {
	cfg, err := ini.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load declaration file: %w", err)
	}
	return parse(cfg)
}

// reader accumulates the first parse error so the section mapping below can
// stay flat.
type reader struct {
	cfg *ini.File
	err error
}

func (r *reader) money(section, key string) domain.Money {
	if r.err != nil {
		return domain.ZeroINR()
	}
	s := r.cfg.Section(section)
	if !s.HasKey(key) {
		return domain.ZeroINR()
	}
	m, err := domain.MoneyFromString(s.Key(key).String())
	if err != nil {
		r.err = fmt.Errorf("%s.%s: %w", section, key, err)
	}
	return m
}

func (r *reader) intVal(section, key string) int {
	if r.err != nil {
		return 0
	}
	s := r.cfg.Section(section)
	if !s.HasKey(key) {
		return 0
	}
	v, err := s.Key(key).Int()
	if err != nil {
		r.err = fmt.Errorf("%s.%s: %w", section, key, err)
	}
	return v
}

func (r *reader) str(section, key string) string {
	return r.cfg.Section(section).Key(key).String()
}

func (r *reader) boolVal(section, key string) bool {
	if r.err != nil {
		return false
	}
	s := r.cfg.Section(section)
	if !s.HasKey(key) {
		return false
	}
	v, err := s.Key(key).Bool()
	if err != nil {
		r.err = fmt.Errorf("%s.%s: %w", section, key, err)
	}
	return v
}

func (r *reader) date(section, key string) time.Time {
	if r.err != nil {
		return time.Time{}
	}
	s := r.cfg.Section(section)
	if !s.HasKey(key) {
		return time.Time{}
	}
	v, err := time.Parse("2006-01-02", s.Key(key).String())
	if err != nil {
		r.err = fmt.Errorf("%s.%s: %w", section, key, err)
	}
	return v
}

func parse(cfg *ini.File) (*Declaration, error) {
	r := &reader{cfg: cfg}

	regime, err := domain.ParseTaxRegime(r.str("employee", "regime"))
	if err != nil {
		return nil, err
	}

	decl := &Declaration{
		Regime:      regime,
		Age:         r.intVal("employee", "age"),
		GrossIncome: r.money("employee", "gross_income"),
		EPFEmployee: r.money("employee", "epf_contribution"),
	}

	decl.Ledger = deduction.Ledger{
		Investments: deduction.Section80C{
			LifeInsurancePremium: r.money("80c", "life_insurance_premium"),
			PublicProvidentFund:  r.money("80c", "public_provident_fund"),
			ELSS:                 r.money("80c", "elss"),
			NSC:                  r.money("80c", "nsc"),
			SukanyaSamriddhi:     r.money("80c", "sukanya_samriddhi"),
			TaxSaverFD:           r.money("80c", "tax_saver_fd"),
			HomeLoanPrincipal:    r.money("80c", "home_loan_principal"),
			TuitionFees:          r.money("80c", "tuition_fees"),
			ULIP:                 r.money("80c", "ulip"),
			SeniorCitizenSavings: r.money("80c", "senior_citizen_savings"),
			InfrastructureBonds:  r.money("80c", "infrastructure_bonds"),
		},
		PensionFund: deduction.Section80CCC{
			PensionFundContribution: r.money("80ccc", "pension_fund_contribution"),
		},
		NPSEmployee: deduction.Section80CCD1{
			EmployeeContribution: r.money("80ccd", "employee_contribution"),
		},
		NPSAdditional: deduction.Section80CCD1B{
			AdditionalContribution: r.money("80ccd", "additional_contribution"),
		},
		NPSEmployer: deduction.Section80CCD2{
			EmployerContribution: r.money("80ccd", "employer_contribution"),
			BasicPlusDA:          r.money("80ccd", "basic_plus_da"),
			GovernmentEmployee:   r.boolVal("80ccd", "government_employee"),
		},
		HealthInsurance: deduction.Section80D{
			SelfFamilyPremium: r.money("80d", "self_family_premium"),
			ParentPremium:     r.money("80d", "parent_premium"),
			PreventiveCheckup: r.money("80d", "preventive_checkup"),
			ParentAge:         r.intVal("80d", "parent_age"),
		},
		DisabledDependant: deduction.Section80DD{
			Relation: domain.Relation(r.str("80dd", "relation")),
			Tier:     domain.DisabilityTier(r.str("80dd", "disability_tier")),
		},
		MedicalTreatment: deduction.Section80DDB{
			MedicalExpense: r.money("80ddb", "medical_expense"),
			Relation:       domain.Relation(r.str("80ddb", "relation")),
			DependantAge:   r.intVal("80ddb", "dependant_age"),
		},
		EducationLoan: deduction.Section80E{
			LoanInterest: r.money("80e", "loan_interest"),
			Relation:     domain.Relation(r.str("80e", "relation")),
		},
		ElectricVehicleLoan: deduction.Section80EEB{
			LoanInterest: r.money("80eeb", "loan_interest"),
			PurchaseDate: r.date("80eeb", "purchase_date"),
		},
		Donations: deduction.Section80G{
			FullExemption: deduction.FullExemptionFunds{
				NationalDefenceFund:               r.money("80g", "national_defence_fund"),
				PMNationalReliefFund:              r.money("80g", "pm_national_relief_fund"),
				NationalFoundationCommunalHarmony: r.money("80g", "national_foundation_communal_harmony"),
				ZilaSakshartaSamiti:               r.money("80g", "zila_saksharta_samiti"),
				NationalIllnessAssistanceFund:     r.money("80g", "national_illness_assistance_fund"),
				SwachhBharatKosh:                  r.money("80g", "swachh_bharat_kosh"),
				CleanGangaFund:                    r.money("80g", "clean_ganga_fund"),
				NationalChildrenFund:              r.money("80g", "national_children_fund"),
				ArmyCentralWelfareFund:            r.money("80g", "army_central_welfare_fund"),
				ChiefMinisterReliefFund:           r.money("80g", "chief_minister_relief_fund"),
			},
			HalfExemption: deduction.HalfExemptionFunds{
				JawaharlalNehruMemorialFund: r.money("80g", "jawaharlal_nehru_memorial_fund"),
				PMDroughtReliefFund:         r.money("80g", "pm_drought_relief_fund"),
				IndiraGandhiMemorialTrust:   r.money("80g", "indira_gandhi_memorial_trust"),
				RajivGandhiFoundation:       r.money("80g", "rajiv_gandhi_foundation"),
			},
			FullExemptionWithLimit: deduction.FullExemptionCauses{
				FamilyPlanningAssociation: r.money("80g", "family_planning_association"),
				IndianOlympicAssociation:  r.money("80g", "indian_olympic_association"),
				SportsDevelopmentFund:     r.money("80g", "sports_development_fund"),
			},
			HalfExemptionWithLimit: deduction.HalfExemptionCauses{
				CharitableInstitutions:      r.money("80g", "charitable_institutions"),
				ReligiousPlaceRenovation:    r.money("80g", "religious_place_renovation"),
				HousingDevelopmentAuthority: r.money("80g", "housing_development_authority"),
				MinorityCorporation:         r.money("80g", "minority_corporation"),
				GovernmentCharitablePurpose: r.money("80g", "government_charitable_purpose"),
			},
		},
		PartyContribution: deduction.Section80GGC{
			PartyContribution: r.money("80ggc", "party_contribution"),
		},
		OwnDisability: deduction.Section80U{
			Tier: domain.DisabilityTier(r.str("80u", "disability_tier")),
		},
		Interest: deduction.InterestIncome{
			SavingsAccount:   r.money("interest", "savings_account"),
			FixedDeposit:     r.money("interest", "fixed_deposit"),
			RecurringDeposit: r.money("interest", "recurring_deposit"),
			PostOffice:       r.money("interest", "post_office"),
		},
		OtherDeductions: r.money("other", "deductions"),
	}

	if city := r.str("hra", "city"); city != "" {
		statement, err := deduction.NewHouseRentStatement(
			r.money("hra", "basic"),
			r.money("hra", "da"),
			r.money("hra", "hra_received"),
			r.money("hra", "rent_paid"),
			city,
		)
		if err != nil {
			return nil, err
		}
		decl.Ledger.HouseRent = statement
	}

	if r.err != nil {
		return nil, r.err
	}
	return decl, nil
}

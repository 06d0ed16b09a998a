package api

// ComputeRequest is the body of POST /api/v1/deductions. Amounts are rupee
// values; absent sections are simply omitted.
type ComputeRequest struct {
	Regime          string           `json:"regime"`
	Age             int              `json:"age"`
	GrossIncome     float64          `json:"gross_income"`
	EPFContribution float64          `json:"epf_contribution"`
	Sections        DeclaredSections `json:"sections"`
}

type DeclaredSections struct {
	Investments         *Investments80C        `json:"80c,omitempty"`
	PensionFund         *PensionFund80CCC      `json:"80ccc,omitempty"`
	NPS                 *NPS80CCD              `json:"80ccd,omitempty"`
	HealthInsurance     *HealthInsurance80D    `json:"80d,omitempty"`
	DisabledDependant   *DisabledDependant80DD `json:"80dd,omitempty"`
	MedicalTreatment    *MedicalTreatment80DDB `json:"80ddb,omitempty"`
	EducationLoan       *EducationLoan80E      `json:"80e,omitempty"`
	ElectricVehicleLoan *VehicleLoan80EEB      `json:"80eeb,omitempty"`
	Donations           *Donations80G          `json:"80g,omitempty"`
	PartyContribution   *Party80GGC            `json:"80ggc,omitempty"`
	OwnDisability       *OwnDisability80U      `json:"80u,omitempty"`
	Interest            *InterestIncome        `json:"interest,omitempty"`
	HouseRent           *HouseRent             `json:"hra,omitempty"`
	OtherDeductions     float64                `json:"other_deductions,omitempty"`
}

type Investments80C struct {
	LifeInsurancePremium float64 `json:"life_insurance_premium,omitempty"`
	PublicProvidentFund  float64 `json:"public_provident_fund,omitempty"`
	ELSS                 float64 `json:"elss,omitempty"`
	NSC                  float64 `json:"nsc,omitempty"`
	SukanyaSamriddhi     float64 `json:"sukanya_samriddhi,omitempty"`
	TaxSaverFD           float64 `json:"tax_saver_fd,omitempty"`
	HomeLoanPrincipal    float64 `json:"home_loan_principal,omitempty"`
	TuitionFees          float64 `json:"tuition_fees,omitempty"`
	ULIP                 float64 `json:"ulip,omitempty"`
	SeniorCitizenSavings float64 `json:"senior_citizen_savings,omitempty"`
	InfrastructureBonds  float64 `json:"infrastructure_bonds,omitempty"`
}

type PensionFund80CCC struct {
	PensionFundContribution float64 `json:"pension_fund_contribution,omitempty"`
}

type NPS80CCD struct {
	EmployeeContribution   float64 `json:"employee_contribution,omitempty"`
	AdditionalContribution float64 `json:"additional_contribution,omitempty"`
	EmployerContribution   float64 `json:"employer_contribution,omitempty"`
	BasicPlusDA            float64 `json:"basic_plus_da,omitempty"`
	GovernmentEmployee     bool    `json:"government_employee,omitempty"`
}

type HealthInsurance80D struct {
	SelfFamilyPremium float64 `json:"self_family_premium,omitempty"`
	ParentPremium     float64 `json:"parent_premium,omitempty"`
	PreventiveCheckup float64 `json:"preventive_checkup,omitempty"`
	ParentAge         int     `json:"parent_age,omitempty"`
}

type DisabledDependant80DD struct {
	Relation       string `json:"relation"`
	DisabilityTier string `json:"disability_tier"`
}

type MedicalTreatment80DDB struct {
	MedicalExpense float64 `json:"medical_expense,omitempty"`
	Relation       string  `json:"relation"`
	DependantAge   int     `json:"dependant_age,omitempty"`
}

type EducationLoan80E struct {
	LoanInterest float64 `json:"loan_interest,omitempty"`
	Relation     string  `json:"relation"`
}

type VehicleLoan80EEB struct {
	LoanInterest float64 `json:"loan_interest,omitempty"`
	PurchaseDate string  `json:"purchase_date"` // 2006-01-02
}

// Donations80G carries the four legal donation categories as fund-name to
// amount maps; fund names match the declaration file keys.
type Donations80G struct {
	FullExemption          map[string]float64 `json:"full_exemption,omitempty"`
	HalfExemption          map[string]float64 `json:"half_exemption,omitempty"`
	FullExemptionWithLimit map[string]float64 `json:"full_exemption_with_limit,omitempty"`
	HalfExemptionWithLimit map[string]float64 `json:"half_exemption_with_limit,omitempty"`
}

type Party80GGC struct {
	PartyContribution float64 `json:"party_contribution,omitempty"`
}

type OwnDisability80U struct {
	DisabilityTier string `json:"disability_tier"`
}

type InterestIncome struct {
	SavingsAccount   float64 `json:"savings_account,omitempty"`
	FixedDeposit     float64 `json:"fixed_deposit,omitempty"`
	RecurringDeposit float64 `json:"recurring_deposit,omitempty"`
	PostOffice       float64 `json:"post_office,omitempty"`
}

type HouseRent struct {
	Basic       float64 `json:"basic,omitempty"`
	DA          float64 `json:"da,omitempty"`
	HRAReceived float64 `json:"hra_received,omitempty"`
	RentPaid    float64 `json:"rent_paid,omitempty"`
	City        string  `json:"city"`
}

// Statement is the response of POST /api/v1/deductions. Money values are
// decimal strings.
type Statement struct {
	Regime            string             `json:"regime"`
	GrossIncome       string             `json:"gross_income"`
	TotalDeductions   string             `json:"total_deductions"`
	InterestExemption string             `json:"interest_exemption"`
	HRAExemption      string             `json:"hra_exemption"`
	Sections          []StatementSection `json:"sections"`
}

type StatementSection struct {
	Title string          `json:"title"`
	Lines []StatementLine `json:"lines"`
}

type StatementLine struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

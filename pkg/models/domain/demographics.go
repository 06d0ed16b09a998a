package domain

// DisabilityTier grades a disability for the flat deductions under 80DD/80U.
type DisabilityTier string

const (
	DisabilityModerate DisabilityTier = "moderate"
	DisabilitySevere   DisabilityTier = "severe"
)

// Relation identifies who a claim is made for, relative to the employee.
type Relation string

const (
	RelationSelf    Relation = "self"
	RelationSpouse  Relation = "spouse"
	RelationChild   Relation = "child"
	RelationParent  Relation = "parent"
	RelationSibling Relation = "sibling"
)

// CityTier classifies the rented city for the HRA exemption rate.
type CityTier string

const (
	CityMetro    CityTier = "metro"
	CityNonMetro CityTier = "non_metro"
)

// ParseCityTier validates a raw city tier string.
func ParseCityTier(s string) (CityTier, error) {
	switch CityTier(s) {
	case CityMetro:
		return CityMetro, nil
	case CityNonMetro:
		return CityNonMetro, nil
	default:
		return "", &ValidationError{Field: "city_tier", Reason: "must be one of: metro, non_metro"}
	}
}

// SeniorCitizenAge is the age threshold that switches the 80D/80DDB limits and
// the 80TTA/80TTB interest exemption.
const SeniorCitizenAge = 60

func IsSeniorCitizen(age int) bool {
	return age >= SeniorCitizenAge
}

// Package taxonomy centralizes per-property-type policy: which structured
// fields a listing form shows and requires, and which amenities are
// selectable. Every lookup is total; unknown types get safe defaults instead
// of errors so the wizard never has to branch on type itself.
package taxonomy

type PropertyType string

const (
	Apartment        PropertyType = "apartment"
	Villa            PropertyType = "villa"
	IndependentHouse PropertyType = "independent_house"
	RowHouse         PropertyType = "row_house"
	Penthouse        PropertyType = "penthouse"
	StudioApartment  PropertyType = "studio_apartment"
	CommercialOffice PropertyType = "commercial_office"
	CommercialShop   PropertyType = "commercial_shop"
	Warehouse        PropertyType = "warehouse"
	PlotOrLand       PropertyType = "plot_land"
	FarmHouse        PropertyType = "farm_house"
	PGHostel         PropertyType = "pg_hostel"
)

var propertyTypeLabels = map[PropertyType]string{
	Apartment:        "Apartment",
	Villa:            "Villa",
	IndependentHouse: "Independent House",
	RowHouse:         "Row House",
	Penthouse:        "Penthouse",
	StudioApartment:  "Studio Apartment",
	CommercialOffice: "Commercial Office",
	CommercialShop:   "Commercial Shop",
	Warehouse:        "Warehouse",
	PlotOrLand:       "Plot / Land",
	FarmHouse:        "Farm House",
	PGHostel:         "PG / Hostel",
}

// AllPropertyTypes returns the closed set in display order.
func AllPropertyTypes() []PropertyType {
	return []PropertyType{
		Apartment, Villa, IndependentHouse, RowHouse, Penthouse,
		StudioApartment, CommercialOffice, CommercialShop, Warehouse,
		PlotOrLand, FarmHouse, PGHostel,
	}
}

func KnownType(t PropertyType) bool {
	_, ok := propertyTypeLabels[t]
	return ok
}

func Label(t PropertyType) string {
	return propertyTypeLabels[t]
}

type AreaLabel string

const (
	BuiltUpArea AreaLabel = "built_up_area"
	PlotArea    AreaLabel = "plot_area"
)

// FieldVisibilityRule describes which structured listing fields are shown
// and which of the shown ones are mandatory for a property type.
type FieldVisibilityRule struct {
	ShowBedrooms      bool      `json:"showBedrooms"`
	BedroomsRequired  bool      `json:"bedroomsRequired"`
	ShowBathrooms     bool      `json:"showBathrooms"`
	BathroomsRequired bool      `json:"bathroomsRequired"`
	ShowBalconies     bool      `json:"showBalconies"`
	ShowFloor         bool      `json:"showFloor"`
	ShowTotalFloors   bool      `json:"showTotalFloors"`
	ShowFacing        bool      `json:"showFacing"`
	ShowAge           bool      `json:"showAge"`
	ShowFurnishing    bool      `json:"showFurnishing"`
	ShowCarpetArea    bool      `json:"showCarpetArea"`
	AreaLabel         AreaLabel `json:"areaLabel"`
}

// Rules are grouped by category rather than defined one per type so the
// table stays small enough to audit at a glance.
var (
	// Apartment, RowHouse, Penthouse: full multi-storey residential form.
	apartmentRule = FieldVisibilityRule{
		ShowBedrooms:      true,
		BedroomsRequired:  true,
		ShowBathrooms:     true,
		BathroomsRequired: true,
		ShowBalconies:     true,
		ShowFloor:         true,
		ShowTotalFloors:   true,
		ShowFacing:        true,
		ShowAge:           true,
		ShowFurnishing:    true,
		ShowCarpetArea:    true,
		AreaLabel:         BuiltUpArea,
	}

	// Villa, IndependentHouse, FarmHouse: the whole building is the unit,
	// so there is no floor number, only the building's floor count.
	houseRule = FieldVisibilityRule{
		ShowBedrooms:      true,
		BedroomsRequired:  true,
		ShowBathrooms:     true,
		BathroomsRequired: true,
		ShowBalconies:     true,
		ShowTotalFloors:   true,
		ShowFacing:        true,
		ShowAge:           true,
		ShowFurnishing:    true,
		ShowCarpetArea:    true,
		AreaLabel:         BuiltUpArea,
	}

	// A studio is a zero-bedroom unit by definition, not a user choice: the
	// bedroom selector is suppressed and the count is forced to zero.
	studioRule = FieldVisibilityRule{
		ShowBathrooms:     true,
		BathroomsRequired: true,
		ShowBalconies:     true,
		ShowFloor:         true,
		ShowTotalFloors:   true,
		ShowFacing:        true,
		ShowAge:           true,
		ShowFurnishing:    true,
		ShowCarpetArea:    true,
		AreaLabel:         BuiltUpArea,
	}

	// CommercialOffice: washrooms exist but are not mandatory to state;
	// furnishing matters for offices.
	officeRule = FieldVisibilityRule{
		ShowBathrooms:   true,
		ShowFloor:       true,
		ShowTotalFloors: true,
		ShowFacing:      true,
		ShowAge:         true,
		ShowFurnishing:  true,
		ShowCarpetArea:  true,
		AreaLabel:       BuiltUpArea,
	}

	// CommercialShop, Warehouse: like an office minus furnishing.
	shopRule = FieldVisibilityRule{
		ShowBathrooms:   true,
		ShowFloor:       true,
		ShowTotalFloors: true,
		ShowFacing:      true,
		ShowAge:         true,
		ShowCarpetArea:  true,
		AreaLabel:       BuiltUpArea,
	}

	// PlotOrLand: bare land has orientation and area, nothing else.
	plotRule = FieldVisibilityRule{
		ShowFacing: true,
		AreaLabel:  PlotArea,
	}

	// PGHostel: rooms are let individually; no bedroom count, no balconies.
	pgRule = FieldVisibilityRule{
		ShowBathrooms:   true,
		ShowFloor:       true,
		ShowTotalFloors: true,
		ShowAge:         true,
		ShowFurnishing:  true,
		AreaLabel:       BuiltUpArea,
	}

	// Unknown or empty type: show nothing until a type is picked.
	defaultRule = FieldVisibilityRule{AreaLabel: BuiltUpArea}
)

var visibilityRules = map[PropertyType]FieldVisibilityRule{
	Apartment:        apartmentRule,
	RowHouse:         apartmentRule,
	Penthouse:        apartmentRule,
	Villa:            houseRule,
	IndependentHouse: houseRule,
	FarmHouse:        houseRule,
	StudioApartment:  studioRule,
	CommercialOffice: officeRule,
	CommercialShop:   shopRule,
	Warehouse:        shopRule,
	PlotOrLand:       plotRule,
	PGHostel:         pgRule,
}

// VisibilityRuleFor never fails; an unrecognized type yields the all-hidden
// default rule.
func VisibilityRuleFor(t PropertyType) FieldVisibilityRule {
	if rule, ok := visibilityRules[t]; ok {
		return rule
	}
	return defaultRule
}

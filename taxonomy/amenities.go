package taxonomy

type AmenityID string

const (
	AmenityParking         AmenityID = "parking"
	AmenityLift            AmenityID = "lift"
	AmenityPowerBackup     AmenityID = "power_backup"
	AmenitySecurity        AmenityID = "security"
	AmenityCCTV            AmenityID = "cctv"
	AmenityWaterSupply     AmenityID = "water_supply"
	AmenityElectricity     AmenityID = "electricity"
	AmenityGym             AmenityID = "gym"
	AmenitySwimmingPool    AmenityID = "swimming_pool"
	AmenityClubHouse       AmenityID = "club_house"
	AmenityPlayArea        AmenityID = "children_play_area"
	AmenityGarden          AmenityID = "garden"
	AmenityWifi            AmenityID = "wifi"
	AmenityAirConditioning AmenityID = "air_conditioning"
	AmenityFoodService     AmenityID = "food_service"
	AmenityLaundry         AmenityID = "laundry"
	AmenityHousekeeping    AmenityID = "housekeeping"
	AmenityFireSafety      AmenityID = "fire_safety"
	AmenityCafeteria       AmenityID = "cafeteria"
	AmenityConferenceRoom  AmenityID = "conference_room"
)

type Amenity struct {
	ID    AmenityID `json:"id"`
	Label string    `json:"label"`
	Icon  string    `json:"icon"`
}

// Catalog order is the display order in the app; do not sort.
var amenityCatalog = []Amenity{
	{AmenityParking, "Parking", "local-parking"},
	{AmenityLift, "Lift", "elevator"},
	{AmenityPowerBackup, "Power Backup", "power"},
	{AmenitySecurity, "24x7 Security", "security"},
	{AmenityCCTV, "CCTV", "videocam"},
	{AmenityWaterSupply, "Water Supply", "water-drop"},
	{AmenityElectricity, "Electricity", "bolt"},
	{AmenityGym, "Gym", "fitness-center"},
	{AmenitySwimmingPool, "Swimming Pool", "pool"},
	{AmenityClubHouse, "Club House", "house"},
	{AmenityPlayArea, "Children's Play Area", "toys"},
	{AmenityGarden, "Garden", "park"},
	{AmenityWifi, "WiFi", "wifi"},
	{AmenityAirConditioning, "Air Conditioning", "ac-unit"},
	{AmenityFoodService, "Food Service", "restaurant"},
	{AmenityLaundry, "Laundry", "local-laundry-service"},
	{AmenityHousekeeping, "Housekeeping", "cleaning-services"},
	{AmenityFireSafety, "Fire Safety", "fire-extinguisher"},
	{AmenityCafeteria, "Cafeteria", "local-cafe"},
	{AmenityConferenceRoom, "Conference Room", "meeting-room"},
}

// AmenityCatalog returns a copy of the full ordered catalog.
func AmenityCatalog() []Amenity {
	out := make([]Amenity, len(amenityCatalog))
	copy(out, amenityCatalog)
	return out
}

// Curated per-category subsets. Residential types are handled by the default
// policy below rather than a named subset.
var (
	plotAmenities = []AmenityID{
		AmenitySecurity, AmenityWaterSupply, AmenityCCTV, AmenityElectricity,
	}

	pgAmenities = []AmenityID{
		AmenityParking, AmenityPowerBackup, AmenitySecurity, AmenityCCTV,
		AmenityWaterSupply, AmenityWifi, AmenityAirConditioning,
		AmenityFoodService, AmenityLaundry, AmenityHousekeeping,
	}

	officeAmenities = []AmenityID{
		AmenityParking, AmenityLift, AmenityPowerBackup, AmenitySecurity,
		AmenityCCTV, AmenityWaterSupply, AmenityElectricity, AmenityWifi,
		AmenityAirConditioning, AmenityFireSafety, AmenityCafeteria,
		AmenityConferenceRoom,
	}

	shopAmenities = []AmenityID{
		AmenityParking, AmenityLift, AmenityPowerBackup, AmenitySecurity,
		AmenityCCTV, AmenityWaterSupply, AmenityElectricity, AmenityFireSafety,
	}

	farmHouseAmenities = []AmenityID{
		AmenityParking, AmenityPowerBackup, AmenitySecurity, AmenityCCTV,
		AmenityWaterSupply, AmenityElectricity, AmenitySwimmingPool,
		AmenityGarden,
	}
)

var amenitySubsets = map[PropertyType][]AmenityID{
	PlotOrLand:       plotAmenities,
	PGHostel:         pgAmenities,
	CommercialOffice: officeAmenities,
	CommercialShop:   shopAmenities,
	Warehouse:        shopAmenities,
	FarmHouse:        farmHouseAmenities,
}

// ApplicableAmenitiesFor returns the amenity ids selectable for a type, in
// catalog order. Types without a curated subset are treated as
// residential-like: the full catalog minus electricity (metered electricity
// is assumed for built residential units, so it is not an amenity there).
func ApplicableAmenitiesFor(t PropertyType) []AmenityID {
	if subset, ok := amenitySubsets[t]; ok {
		out := make([]AmenityID, len(subset))
		copy(out, subset)
		return out
	}
	out := make([]AmenityID, 0, len(amenityCatalog)-1)
	for _, a := range amenityCatalog {
		if a.ID == AmenityElectricity {
			continue
		}
		out = append(out, a.ID)
	}
	return out
}

// AmenityApplicable reports whether a single amenity may be selected for the
// given property type.
func AmenityApplicable(t PropertyType, id AmenityID) bool {
	for _, a := range ApplicableAmenitiesFor(t) {
		if a == id {
			return true
		}
	}
	return false
}

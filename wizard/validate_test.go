package wizard

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/propnest-dev/realty_marketplace/backend/taxonomy"
)

func intPtr(v int) *int { return &v }

func strPtr(s string) *string { return &s }

// validDraft backs a draft that passes every step for an apartment listing.
func validDraft() Draft {
	return Draft{
		Title:        "2BHK in HSR Layout with covered parking",
		Status:       ForSale,
		PropertyType: taxonomy.Apartment,
		Location:     "HSR Layout, Bengaluru",
		State:        "Karnataka",
		Bedrooms:     intPtr(2),
		Bathrooms:    intPtr(2),
		BuiltUpArea:  "1250",
		Facing:       "East",
		Description:  strings.Repeat("Spacious and well ventilated flat close to parks and schools. ", 3),
		Price:        "75,00,000",
	}
}

func TestBasicInfoValidation(t *testing.T) {
	d := validDraft()
	assert.Nil(t, Validate(StepBasicInfo, &d))

	d.Title = "   "
	verr := Validate(StepBasicInfo, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "title", verr.Field)

	d.Title = strings.Repeat("x", 256)
	verr = Validate(StepBasicInfo, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "Title must be at most 255 characters", verr.Message)

	d.Title = strings.Repeat("x", 255)
	assert.Nil(t, Validate(StepBasicInfo, &d))

	d.PropertyType = "spaceship"
	verr = Validate(StepBasicInfo, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "propertyType", verr.Field)
}

// The first violated rule wins; an empty draft must complain about the title
// before the property type.
func TestFirstFailureWins(t *testing.T) {
	d := Draft{}
	verr := Validate(StepBasicInfo, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "title", verr.Field)
}

func TestDetailsValidation(t *testing.T) {
	d := validDraft()
	assert.Nil(t, Validate(StepDetails, &d))

	d.Location = ""
	verr := Validate(StepDetails, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "location", verr.Field)

	d = validDraft()
	d.Facing = ""
	verr = Validate(StepDetails, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "facing", verr.Field)

	d = validDraft()
	d.Bedrooms = nil
	verr = Validate(StepDetails, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "bedrooms", verr.Field)

	d = validDraft()
	d.Bathrooms = nil
	verr = Validate(StepDetails, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "bathrooms", verr.Field)

	d = validDraft()
	d.BuiltUpArea = ""
	verr = Validate(StepDetails, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "Built-up area is required", verr.Message)

	d.BuiltUpArea = "-5"
	verr = Validate(StepDetails, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "builtUpArea", verr.Field)
}

// A studio has no bedroom count to give; validation must not demand one.
func TestStudioDoesNotRequireBedrooms(t *testing.T) {
	d := validDraft()
	d.PropertyType = taxonomy.StudioApartment
	d.Bedrooms = nil
	assert.Nil(t, Validate(StepDetails, &d))
}

// A plot has no facing-independent fields beyond area; bedrooms and
// bathrooms must not be demanded.
func TestPlotDetailsValidation(t *testing.T) {
	d := validDraft()
	d.PropertyType = taxonomy.PlotOrLand
	d.Bedrooms = nil
	d.Bathrooms = nil
	assert.Nil(t, Validate(StepDetails, &d))

	d.BuiltUpArea = ""
	verr := Validate(StepDetails, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "Plot area is required", verr.Message)
}

func TestDescriptionLengthBounds(t *testing.T) {
	d := validDraft()

	d.Description = strings.Repeat("a", 99)
	verr := Validate(StepAmenities, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "Description must be at least 100 characters", verr.Message)

	d.Description = strings.Repeat("a", 100)
	assert.Nil(t, Validate(StepAmenities, &d))

	d.Description = strings.Repeat("a", 1001)
	verr = Validate(StepAmenities, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "Description must be at most 1000 characters", verr.Message)
}

func TestDescriptionRejectsContactDetails(t *testing.T) {
	padding := strings.Repeat("Great flat in a prime location with plenty of light. ", 3)

	d := validDraft()
	d.Description = padding + " call 9876543210 for details"
	verr := Validate(StepAmenities, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "Description must not contain phone numbers", verr.Message)

	d.Description = padding + " reach me at owner.one@example.co.in today"
	verr = Validate(StepAmenities, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "Description must not contain email addresses", verr.Message)
}

func TestContainsMobileNumber(t *testing.T) {
	assert.True(t, ContainsMobileNumber("call 9876543210"))
	assert.True(t, ContainsMobileNumber("call +91 9876543210"))
	assert.True(t, ContainsMobileNumber("98765 43210"))
	assert.True(t, ContainsMobileNumber("98765-43210"))
	assert.False(t, ContainsMobileNumber("built in 1998, 2 balconies"))
	assert.False(t, ContainsMobileNumber("pin 560102"))
}

func TestContainsEmailAddress(t *testing.T) {
	assert.True(t, ContainsEmailAddress("write to me at a.b@c.com please"))
	assert.False(t, ContainsEmailAddress("2 @ the price of 1"))
}

func TestPricingValidation(t *testing.T) {
	d := validDraft()

	d.Price = "1,00,000"
	assert.Nil(t, Validate(StepPricing, &d))

	d.Price = "0"
	verr := Validate(StepPricing, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "Price must be greater than zero", verr.Message)

	d.Price = "  "
	verr = Validate(StepPricing, &d)
	require.NotNil(t, verr)
	assert.Equal(t, "Price is required", verr.Message)
}

func TestParseAmount(t *testing.T) {
	assert.Equal(t, 100000.0, ParseAmount("1,00,000"))
	assert.Equal(t, 25000.0, ParseAmount("₹ 25000"))
	assert.Equal(t, 1250.5, ParseAmount("1250.5 sq ft"))
	assert.Equal(t, 0.0, ParseAmount("price on request"))
	assert.Equal(t, 0.0, ParseAmount(""))
}

func TestPhotosStepHasNoValidation(t *testing.T) {
	d := Draft{}
	assert.Nil(t, Validate(StepPhotos, &d))
}

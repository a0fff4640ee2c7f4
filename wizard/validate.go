package wizard

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/propnest-dev/realty_marketplace/backend/taxonomy"
)

// ValidationError names the first violated rule for a step. Rules are
// evaluated in a fixed order and the first failure wins; violations are
// never aggregated.
type ValidationError struct {
	Step    Step   `json:"step"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d (%s): %s", e.Step, e.Step, e.Message)
}

func fail(step Step, field, message string) *ValidationError {
	return &ValidationError{Step: step, Field: field, Message: message}
}

const (
	maxTitleLen       = 255
	minDescriptionLen = 100
	maxDescriptionLen = 1000
)

// Validate runs the rules for one step against the draft. A nil return means
// the step may be left.
func Validate(step Step, d *Draft) *ValidationError {
	switch step {
	case StepBasicInfo:
		return validateBasicInfo(d)
	case StepDetails:
		return validateDetails(d)
	case StepAmenities:
		return validateDescription(d)
	case StepPhotos:
		// Photo count is enforced at selection time, not at step-advance.
		return nil
	case StepPricing:
		return validatePricing(d)
	}
	return nil
}

func validateBasicInfo(d *Draft) *ValidationError {
	title := strings.TrimSpace(d.Title)
	if title == "" {
		return fail(StepBasicInfo, "title", "Title is required")
	}
	if len(title) > maxTitleLen {
		return fail(StepBasicInfo, "title", "Title must be at most 255 characters")
	}
	if !taxonomy.KnownType(d.PropertyType) {
		return fail(StepBasicInfo, "propertyType", "Select a property type")
	}
	return nil
}

func validateDetails(d *Draft) *ValidationError {
	if strings.TrimSpace(d.Location) == "" {
		return fail(StepDetails, "location", "Location is required")
	}
	if strings.TrimSpace(d.State) == "" {
		return fail(StepDetails, "state", "State is required")
	}

	rule := taxonomy.VisibilityRuleFor(d.PropertyType)
	if rule.ShowFacing && strings.TrimSpace(d.Facing) == "" {
		return fail(StepDetails, "facing", "Select a facing direction")
	}
	if rule.BedroomsRequired && d.Bedrooms == nil && d.PropertyType != taxonomy.StudioApartment {
		return fail(StepDetails, "bedrooms", "Number of bedrooms is required")
	}
	if rule.BathroomsRequired && d.Bathrooms == nil {
		return fail(StepDetails, "bathrooms", "Number of bathrooms is required")
	}

	areaName := "Built-up area"
	if rule.AreaLabel == taxonomy.PlotArea {
		areaName = "Plot area"
	}
	area := strings.TrimSpace(d.BuiltUpArea)
	if area == "" {
		return fail(StepDetails, "builtUpArea", areaName+" is required")
	}
	if v, err := strconv.ParseFloat(area, 64); err != nil || v <= 0 {
		return fail(StepDetails, "builtUpArea", areaName+" must be a positive number")
	}
	return nil
}

func validateDescription(d *Draft) *ValidationError {
	desc := strings.TrimSpace(d.Description)
	if desc == "" {
		return fail(StepAmenities, "description", "Description is required")
	}
	if len(desc) < minDescriptionLen {
		return fail(StepAmenities, "description", "Description must be at least 100 characters")
	}
	if len(desc) > maxDescriptionLen {
		return fail(StepAmenities, "description", "Description must be at most 1000 characters")
	}
	if ContainsMobileNumber(desc) {
		return fail(StepAmenities, "description", "Description must not contain phone numbers")
	}
	if ContainsEmailAddress(desc) {
		return fail(StepAmenities, "description", "Description must not contain email addresses")
	}
	return nil
}

func validatePricing(d *Draft) *ValidationError {
	if strings.TrimSpace(d.Price) == "" {
		return fail(StepPricing, "price", "Price is required")
	}
	if ParseAmount(d.Price) <= 0 {
		return fail(StepPricing, "price", "Price must be greater than zero")
	}
	return nil
}

// Contact-detail predicates keep sellers from routing buyers off-platform
// through the free-text description.

var (
	mobileNumberRe = regexp.MustCompile(`(\+?91)?[6-9][0-9]{9}`)
	emailAddressRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)
	separatorRe    = regexp.MustCompile(`[\s.\-()]`)
)

// ContainsMobileNumber reports whether the text contains an Indian mobile
// number (10 digits starting 6-9, optionally prefixed +91). Separators
// between digit groups are stripped before matching so "98765 43210" is
// still caught.
func ContainsMobileNumber(text string) bool {
	return mobileNumberRe.MatchString(separatorRe.ReplaceAllString(text, ""))
}

// ContainsEmailAddress reports whether the text contains something shaped
// like an email address.
func ContainsEmailAddress(text string) bool {
	return emailAddressRe.MatchString(text)
}

var nonAmountRe = regexp.MustCompile(`[^0-9.]`)

// ParseAmount strips grouping and currency characters ("1,00,000",
// "₹ 25000") and parses the remainder; unparseable input yields 0.
func ParseAmount(s string) float64 {
	cleaned := nonAmountRe.ReplaceAllString(s, "")
	if cleaned == "" {
		return 0
	}
	v, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return v
}

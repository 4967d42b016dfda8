package onboarding

import (
	"strings"

	"github.com/michemobile/marketplace-api/internal/httperr"
	"github.com/michemobile/marketplace-api/internal/models"
	"github.com/michemobile/marketplace-api/internal/username"
	"github.com/michemobile/marketplace-api/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

const (
	StepBasic          = 1
	StepExperience     = 2
	StepCertifications = 3
	StepAccount        = 4

	minPasswordLen   = 8
	minServiceRadius = 1
	maxServiceRadius = 50
)

type ServiceInput struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	IsCustom    bool    `json:"is_custom"`
}

type CertificationInput struct {
	Kind        string `json:"kind"`
	ObjectKey   string `json:"object_key"`
	ContentType string `json:"content_type"`
	FileName    string `json:"file_name"`
}

// Application carries the whole four-step professional signup. Fields
// may arrive in any order; each step gate checks only its own fields.
type Application struct {
	// step 1
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Username    string `json:"username"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	ServiceArea string `json:"service_area"`

	// step 2
	Services        []ServiceInput `json:"services"`
	YearsExperience string         `json:"years_experience"`
	Bio             string         `json:"bio"`
	TravelFee       *float64       `json:"travel_fee"`
	ServiceRadius   int            `json:"service_radius"`

	// step 3
	Certifications []CertificationInput `json:"certifications"`

	// step 4
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
	TermsAccepted   bool   `json:"terms_accepted"`
	MarketingOptIn  bool   `json:"marketing_opt_in"`
}

// ======================================================
// STEP GATES
// ======================================================

func (a *Application) ValidateBasic() error {
	if strings.TrimSpace(a.FirstName) == "" {
		return httperr.ErrBusiness("first_name_required")
	}
	if strings.TrimSpace(a.LastName) == "" {
		return httperr.ErrBusiness("last_name_required")
	}
	if err := username.Validate(a.Username); err != nil {
		return err
	}

	email := strings.ToLower(strings.TrimSpace(a.Email))
	if !validators.IsEmailFormatValid(email) {
		return httperr.ErrBusiness("invalid_email")
	}

	if strings.TrimSpace(a.Phone) == "" {
		return httperr.ErrBusiness("phone_required")
	}
	if strings.TrimSpace(a.ServiceArea) == "" {
		return httperr.ErrBusiness("service_area_required")
	}
	return nil
}

func (a *Application) ValidateExperience() error {
	if len(a.Services) == 0 {
		return httperr.ErrBusiness("services_required")
	}
	for _, s := range a.Services {
		if strings.TrimSpace(s.Name) == "" {
			return httperr.ErrBusiness("service_name_required")
		}
		if s.Price <= 0 {
			return httperr.ErrBusiness("service_price_invalid")
		}
		if strings.TrimSpace(s.Description) == "" {
			return httperr.ErrBusiness("service_description_required")
		}
	}

	if strings.TrimSpace(a.YearsExperience) == "" {
		return httperr.ErrBusiness("years_experience_required")
	}

	radius := a.ServiceRadius
	if radius == 0 {
		return nil // defaulted at submit
	}
	if radius < minServiceRadius || radius > maxServiceRadius {
		return httperr.ErrBusiness("service_radius_invalid")
	}
	return nil
}

// Certifications are optional; when present each needs a stored object.
func (a *Application) ValidateCertifications() error {
	for _, cert := range a.Certifications {
		if cert.Kind != models.CertificationKindLicense &&
			cert.Kind != models.CertificationKindInsurance {
			return httperr.ErrBusiness("certification_kind_invalid")
		}
		if strings.TrimSpace(cert.ObjectKey) == "" {
			return httperr.ErrBusiness("certification_object_missing")
		}
	}
	return nil
}

func (a *Application) ValidateAccount() error {
	if len(a.Password) < minPasswordLen {
		return httperr.ErrBusiness("password_too_short")
	}
	if a.Password != a.ConfirmPassword {
		return httperr.ErrBusiness("password_mismatch")
	}
	if !a.TermsAccepted {
		return httperr.ErrBusiness("terms_not_accepted")
	}
	return nil
}

func (a *Application) ValidateStep(step int) error {
	switch step {
	case StepBasic:
		return a.ValidateBasic()
	case StepExperience:
		return a.ValidateExperience()
	case StepCertifications:
		return a.ValidateCertifications()
	case StepAccount:
		return a.ValidateAccount()
	default:
		return httperr.ErrBusiness("invalid_step")
	}
}

// ValidateAll re-runs every gate, in wizard order.
func (a *Application) ValidateAll() error {
	for step := StepBasic; step <= StepAccount; step++ {
		if err := a.ValidateStep(step); err != nil {
			return err
		}
	}
	return nil
}

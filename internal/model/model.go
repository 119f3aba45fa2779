package model

import "time"

// User roles. Role is fixed at signup and never changes afterwards.
const (
	RoleDoctor  = "doctor"
	RoleVendor  = "vendor"
	RolePatient = "patient"
)

type User struct {
	ID           string    `json:"id"`
	FullName     string    `json:"fullName"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	PasswordHash string    `json:"-"` // Hide from JSON responses
	UserType     string    `json:"userType"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}

// DoctorProfile is 1:1 with a doctor User. full_name/email/phone are copied
// from the account when the profile is first created on GET or PATCH.
type DoctorProfile struct {
	ID              string `json:"id"`
	UserID          string `json:"user_id"`
	FullName        string `json:"full_name"`
	Email           string `json:"email"`
	Phone           string `json:"phone"`
	Specialization  string `json:"specialization"`
	Qualification   string `json:"qualification"`
	ExperienceYears int    `json:"experience_years"`
	ClinicName      string `json:"clinic_name"`
	ClinicAddress   string `json:"clinic_address"`
	ConsultationFee int    `json:"consultation_fee"`
	About           string `json:"about"`
}

// VendorProfile is 1:1 with a vendor User. Unlike DoctorProfile it starts
// empty, nothing is copied from the account.
type VendorProfile struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	PharmacyName  string `json:"pharmacy_name"`
	LicenseNumber string `json:"license_number"`
	Address       string `json:"address"`
	Phone         string `json:"phone"`
}

package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickmed/accounts-api/internal/model"
)

// DoctorProfileUpdate is the PUT body. Every editable field is replaced,
// absent fields reset to their zero value.
type DoctorProfileUpdate struct {
	FullName        string `json:"full_name"`
	Email           string `json:"email" binding:"omitempty,email"`
	Phone           string `json:"phone"`
	Specialization  string `json:"specialization"`
	Qualification   string `json:"qualification"`
	ExperienceYears int    `json:"experience_years" binding:"omitempty,gte=0"`
	ClinicName      string `json:"clinic_name"`
	ClinicAddress   string `json:"clinic_address"`
	ConsultationFee int    `json:"consultation_fee" binding:"omitempty,gte=0"`
	About           string `json:"about"`
}

// DoctorProfilePatch is the PATCH body. Only fields present in the request
// are applied.
type DoctorProfilePatch struct {
	FullName        *string `json:"full_name"`
	Email           *string `json:"email" binding:"omitempty,email"`
	Phone           *string `json:"phone"`
	Specialization  *string `json:"specialization"`
	Qualification   *string `json:"qualification"`
	ExperienceYears *int    `json:"experience_years" binding:"omitempty,gte=0"`
	ClinicName      *string `json:"clinic_name"`
	ClinicAddress   *string `json:"clinic_address"`
	ConsultationFee *int    `json:"consultation_fee" binding:"omitempty,gte=0"`
	About           *string `json:"about"`
}

// ensureDoctorProfile returns the caller's profile, creating it on first
// access. syncIfNew controls whether a just-created profile is seeded with
// the account's contact fields (GET and PATCH do this, PUT does not).
func (h *Handler) ensureDoctorProfile(c *gin.Context, syncIfNew bool) (*model.DoctorProfile, bool) {
	ctx := c.Request.Context()
	userID := c.GetString("userID")

	profile, created, err := h.Store.EnsureDoctorProfile(ctx, userID)
	if err != nil {
		log.Printf("doctor profile: ensure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return nil, false
	}

	if created && syncIfNew {
		user, err := h.Store.UserByID(ctx, userID)
		if err != nil {
			log.Printf("doctor profile: load account: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return nil, false
		}
		profile.FullName = user.FullName
		profile.Email = user.Email
		profile.Phone = user.Phone
		if err := h.Store.SeedDoctorIdentity(ctx, profile.ID, profile.FullName, profile.Email, profile.Phone); err != nil {
			log.Printf("doctor profile: seed: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
			return nil, false
		}
	}
	return profile, true
}

// GetDoctorProfile returns the caller's profile, creating and seeding it on
// first access. Later calls return the stored row as-is, account changes are
// not synced back.
func (h *Handler) GetDoctorProfile(c *gin.Context) {
	profile, ok := h.ensureDoctorProfile(c, true)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateDoctorProfile is the PUT handler, a full replace of the editable
// fields. Validation runs before anything is written.
func (h *Handler) UpdateDoctorProfile(c *gin.Context) {
	profile, ok := h.ensureDoctorProfile(c, false)
	if !ok {
		return
	}

	var req DoctorProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FormatValidationErrors(err))
		return
	}

	profile.FullName = req.FullName
	profile.Email = req.Email
	profile.Phone = req.Phone
	profile.Specialization = req.Specialization
	profile.Qualification = req.Qualification
	profile.ExperienceYears = req.ExperienceYears
	profile.ClinicName = req.ClinicName
	profile.ClinicAddress = req.ClinicAddress
	profile.ConsultationFee = req.ConsultationFee
	profile.About = req.About

	if err := h.Store.SaveDoctorProfile(c.Request.Context(), profile); err != nil {
		log.Printf("doctor profile: save: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

// PatchDoctorProfile merges only the fields present in the body. A profile
// created by this call is seeded from the account first, same as GET.
func (h *Handler) PatchDoctorProfile(c *gin.Context) {
	profile, ok := h.ensureDoctorProfile(c, true)
	if !ok {
		return
	}

	var req DoctorProfilePatch
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, FormatValidationErrors(err))
		return
	}

	if req.FullName != nil {
		profile.FullName = *req.FullName
	}
	if req.Email != nil {
		profile.Email = *req.Email
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}
	if req.Specialization != nil {
		profile.Specialization = *req.Specialization
	}
	if req.Qualification != nil {
		profile.Qualification = *req.Qualification
	}
	if req.ExperienceYears != nil {
		profile.ExperienceYears = *req.ExperienceYears
	}
	if req.ClinicName != nil {
		profile.ClinicName = *req.ClinicName
	}
	if req.ClinicAddress != nil {
		profile.ClinicAddress = *req.ClinicAddress
	}
	if req.ConsultationFee != nil {
		profile.ConsultationFee = *req.ConsultationFee
	}
	if req.About != nil {
		profile.About = *req.About
	}

	if err := h.Store.SaveDoctorProfile(c.Request.Context(), profile); err != nil {
		log.Printf("doctor profile: save: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, profile)
}

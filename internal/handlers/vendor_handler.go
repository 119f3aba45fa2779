package handlers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/quickmed/accounts-api/internal/model"
)

// VendorProfileUpdate is the PUT body. Despite the verb this is a partial
// merge, fields absent from the request keep their stored values. The
// deployed front-end sends sparse bodies and depends on this.
type VendorProfileUpdate struct {
	PharmacyName  *string `json:"pharmacy_name"`
	LicenseNumber *string `json:"license_number"`
	Address       *string `json:"address"`
	Phone         *string `json:"phone" binding:"omitempty,min=7"`
}

func (h *Handler) ensureVendorProfile(c *gin.Context) (*model.VendorProfile, bool) {
	profile, _, err := h.Store.EnsureVendorProfile(c.Request.Context(), c.GetString("userID"))
	if err != nil {
		log.Printf("vendor profile: ensure: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return nil, false
	}
	return profile, true
}

// GetVendorProfile returns the caller's profile, creating an empty one on
// first access. No account fields are copied in.
func (h *Handler) GetVendorProfile(c *gin.Context) {
	profile, ok := h.ensureVendorProfile(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, profile)
}

// UpdateVendorProfile merges the submitted fields, then re-reads the row so
// the response always reflects committed state.
func (h *Handler) UpdateVendorProfile(c *gin.Context) {
	profile, ok := h.ensureVendorProfile(c)
	if !ok {
		return
	}

	var req VendorProfileUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Validation failed", "details": FormatValidationErrors(err)})
		return
	}

	if req.PharmacyName != nil {
		profile.PharmacyName = *req.PharmacyName
	}
	if req.LicenseNumber != nil {
		profile.LicenseNumber = *req.LicenseNumber
	}
	if req.Address != nil {
		profile.Address = *req.Address
	}
	if req.Phone != nil {
		profile.Phone = *req.Phone
	}

	ctx := c.Request.Context()
	if err := h.Store.SaveVendorProfile(ctx, profile); err != nil {
		log.Printf("vendor profile: save: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}

	fresh, err := h.Store.VendorProfileByUser(ctx, profile.UserID)
	if err != nil {
		log.Printf("vendor profile: reload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
		return
	}
	c.JSON(http.StatusOK, fresh)
}

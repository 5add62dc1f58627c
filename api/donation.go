package api

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zerowaste/zerowaste-api/schema"
	"github.com/zerowaste/zerowaste-api/store"
)

type coordinatesRequest struct {
	Lat *float64 `json:"lat" binding:"required"`
	Lng *float64 `json:"lng" binding:"required"`
}

type locationRequest struct {
	Address     string              `json:"address" binding:"required,min=5,max=200"`
	Coordinates *coordinatesRequest `json:"coordinates"`
}

type pickupWindowRequest struct {
	Start *time.Time `json:"start" binding:"required"`
	End   *time.Time `json:"end" binding:"required"`
}

type donationRequest struct {
	Title        string               `json:"title" binding:"required,min=3,max=100"`
	Description  string               `json:"description" binding:"required,min=10,max=500"`
	Quantity     string               `json:"quantity" binding:"required,min=1,max=50"`
	FoodType     string               `json:"foodType" binding:"required,min=2,max=50"`
	ExpiryTime   *time.Time           `json:"expiryTime" binding:"required"`
	PickupWindow *pickupWindowRequest `json:"pickupWindow" binding:"required"`
	Location     *locationRequest     `json:"location" binding:"required"`
	ImageURL     *string              `json:"imageUrl" binding:"omitempty,url"`
}

type donationUpdateRequest struct {
	Title        *string              `json:"title" binding:"omitempty,min=3,max=100"`
	Description  *string              `json:"description" binding:"omitempty,min=10,max=500"`
	Quantity     *string              `json:"quantity" binding:"omitempty,min=1,max=50"`
	FoodType     *string              `json:"foodType" binding:"omitempty,min=2,max=50"`
	ExpiryTime   *time.Time           `json:"expiryTime"`
	PickupWindow *pickupWindowRequest `json:"pickupWindow"`
	Location     *locationRequest     `json:"location"`
	ImageURL     *string              `json:"imageUrl" binding:"omitempty,url"`
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	return &t
}

// bindJSON binds the request body and aborts with the matching error on failure
func bindJSON(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindJSON(obj); err != nil {
		if details := fieldErrors(err); details != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters.withDetails(details), err)
		} else {
			abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		}
		return false
	}
	return true
}

// location builds a stored location. Missing coordinates are looked up
// from the address; a failed lookup keeps the location without coordinates.
func (s *Server) location(ctx context.Context, req *locationRequest) schema.Location {
	address := strings.TrimSpace(req.Address)

	if req.Coordinates != nil {
		return schema.NewLocation(address, &schema.Coordinates{
			Lat: *req.Coordinates.Lat,
			Lng: *req.Coordinates.Lng,
		})
	}

	if s.resolver != nil {
		coordinates, err := s.resolver.Resolve(ctx, address)
		if err == nil {
			return schema.NewLocation(address, &coordinates)
		}
		log.WithField("address", address).WithError(err).Warn("resolve address")
	}

	return schema.NewLocation(address, nil)
}

func (s *Server) presentDonation(d schema.Donation) schema.Donation {
	return d.AsOf(s.now())
}

func (s *Server) presentDonations(donations []schema.Donation) []schema.Donation {
	now := s.now()
	result := make([]schema.Donation, len(donations))
	for i, d := range donations {
		result[i] = d.AsOf(now)
	}
	return result
}

// createDonation posts a new donation for the requesting donor
func (s *Server) createDonation(c *gin.Context) {
	user := currentUser(c)

	var req donationRequest
	if !bindJSON(c, &req) {
		return
	}

	now := s.now()
	d := schema.Donation{
		ID:          primitive.NewObjectID(),
		DonorID:     user.ID,
		DonorName:   user.DisplayName,
		Title:       strings.TrimSpace(req.Title),
		Description: strings.TrimSpace(req.Description),
		Quantity:    strings.TrimSpace(req.Quantity),
		FoodType:    strings.TrimSpace(req.FoodType),
		ExpiryTime:  *req.ExpiryTime,
		PickupWindow: schema.PickupWindow{
			Start: *req.PickupWindow.Start,
			End:   *req.PickupWindow.End,
		},
		Location:  s.location(c, req.Location),
		Status:    schema.DonationAvailable,
		ImageURL:  req.ImageURL,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.store.InsertDonation(c, &d); shouldInterupt(err, c) {
		return
	}

	success(c, http.StatusCreated, gin.H{
		"message":  "donation created",
		"donation": s.presentDonation(d),
	})
}

// updateDonation edits a donation of the requesting donor while it is available
func (s *Server) updateDonation(c *gin.Context) {
	user := currentUser(c)

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	var req donationUpdateRequest
	if !bindJSON(c, &req) {
		return
	}

	details := schema.DonationDetails{
		Title:       trimmed(req.Title),
		Description: trimmed(req.Description),
		Quantity:    trimmed(req.Quantity),
		FoodType:    trimmed(req.FoodType),
		ExpiryTime:  req.ExpiryTime,
		ImageURL:    req.ImageURL,
	}
	if req.PickupWindow != nil {
		details.PickupWindow = &schema.PickupWindow{
			Start: *req.PickupWindow.Start,
			End:   *req.PickupWindow.End,
		}
	}
	if req.Location != nil {
		loc := s.location(c, req.Location)
		details.Location = &loc
	}

	d, err := s.coordinator.UpdateDonation(c, id, user.ID, details)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{
		"message":  "donation updated",
		"donation": s.presentDonation(*d),
	})
}

// deleteDonation removes a donation of the requesting donor and its claims
func (s *Server) deleteDonation(c *gin.Context) {
	user := currentUser(c)

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	if err := s.coordinator.DeleteDonation(c, id, user.ID); err != nil {
		abortWithDomainError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"message": "donation deleted"})
}

// donationDetail returns a donation together with its claim requests
func (s *Server) donationDetail(c *gin.Context) {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	d, err := s.store.GetDonation(c, id)
	if err == store.ErrDonationNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorDonationNotFound, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	claims, err := s.store.FindClaimsByDonation(c, id)
	if shouldInterupt(err, c) {
		return
	}

	success(c, http.StatusOK, gin.H{
		"donation":   s.presentDonation(*d),
		"claims":     claims,
		"claimCount": len(claims),
	})
}

type listQuery struct {
	Limit int64 `form:"limit" binding:"omitempty,min=1,max=100"`
}

type donationListQuery struct {
	Limit     int64  `form:"limit" binding:"omitempty,min=1,max=100"`
	DonorID   string `form:"donorId" binding:"omitempty,objectid"`
	ClaimedBy string `form:"claimedBy" binding:"omitempty,objectid"`
	Status    string `form:"status" binding:"omitempty,oneof=available"`
}

// listDonations lists donations by donor or by claimant when asked, and
// otherwise the available donations visible to the requester
func (s *Server) listDonations(c *gin.Context) {
	user := currentUser(c)

	var query donationListQuery
	if !bindQuery(c, &query) {
		return
	}

	var (
		donations []schema.Donation
		err       error
	)
	switch {
	case query.DonorID != "":
		donorID, _ := primitive.ObjectIDFromHex(query.DonorID)
		donations, err = s.store.FindDonationsByOwner(c, donorID, query.Limit)
	case query.ClaimedBy != "":
		claimedBy, _ := primitive.ObjectIDFromHex(query.ClaimedBy)
		donations, err = s.store.FindDonationsByClaimant(c, claimedBy, query.Limit)
	default:
		s.listVisibleDonations(c, user.Principal())
		return
	}
	if shouldInterupt(err, c) {
		return
	}

	success(c, http.StatusOK, gin.H{
		"donations": s.presentDonations(donations),
		"count":     len(donations),
	})
}

func (s *Server) listVisibleDonations(c *gin.Context, principal schema.Principal) {
	if !principal.IsNGO() {
		// donors browse the global list
		principal.Coordinates = nil
	}

	visible, err := s.matcher.VisibleDonations(c, principal)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{
		"donations":               s.presentDonations(visible.Donations),
		"count":                   len(visible.Donations),
		"locationFilteringActive": visible.LocationFilteringActive,
		"radiusKm":                visible.RadiusKm,
	})
}

// donationsByLocation returns available donations around a point
func (s *Server) donationsByLocation(c *gin.Context) {
	lat, lng, radius, ok := bindLocationQuery(c, configuredRadius("matching.location_radius", defaultLocationRadiusKm))
	if !ok {
		return
	}

	donations, err := s.matcher.DonationsNear(c, lat, lng, radius)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{
		"donations": s.presentDonations(donations),
		"count":     len(donations),
		"radiusKm":  radius,
	})
}

// donationStats returns the aggregated donation and claim counters
func (s *Server) donationStats(c *gin.Context) {
	stats, err := s.store.DonationStats(c, s.now())
	if shouldInterupt(err, c) {
		return
	}

	success(c, http.StatusOK, gin.H{"stats": stats})
}

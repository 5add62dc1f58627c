package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/zerowaste/zerowaste-api/schema"
	"github.com/zerowaste/zerowaste-api/store"
)

const (
	donorImpactPerPickup = 10
	ngoImpactPerPickup   = 15
)

type donorStats struct {
	TotalDonations     int64 `json:"totalDonations"`
	AvailableDonations int64 `json:"availableDonations"`
	ClaimedDonations   int64 `json:"claimedDonations"`
	CompletedDonations int64 `json:"completedDonations"`
	ExpiredDonations   int64 `json:"expiredDonations"`
	ImpactScore        int64 `json:"impactScore"`
}

type ngoStats struct {
	TotalClaims        int64   `json:"totalClaims"`
	ActiveClaims       int64   `json:"activeClaims"`
	CompletedClaims    int64   `json:"completedClaims"`
	AvailableDonations int     `json:"availableDonations"`
	HasLocation        bool    `json:"hasLocation"`
	OperationalRadius  float64 `json:"operationalRadius"`
	ImpactScore        int64   `json:"impactScore"`
}

type userLocationRequest struct {
	Location          *locationRequest `json:"location" binding:"required"`
	OperationalRadius *float64         `json:"operationalRadius" binding:"omitempty,gt=0,lte=500"`
}

func (s *Server) userDetail(c *gin.Context) {
	success(c, http.StatusOK, gin.H{"user": currentUser(c)})
}

// updateUserLocation sets the base location used for matching and, for
// NGOs, the operational radius
func (s *Server) updateUserLocation(c *gin.Context) {
	user := currentUser(c)

	var req userLocationRequest
	if !bindJSON(c, &req) {
		return
	}

	radius := req.OperationalRadius
	if !user.Principal().IsNGO() {
		radius = nil
	}

	updated, err := s.store.UpdateUserLocation(c, user.ID, s.location(c, req.Location), radius, s.now())
	if err == store.ErrUserNotFound {
		abortWithEncoding(c, http.StatusNotFound, errorAccountNotFound, err)
		return
	} else if shouldInterupt(err, c) {
		return
	}

	success(c, http.StatusOK, gin.H{
		"message": "location updated",
		"user":    updated,
	})
}

// userStats returns the dashboard counters of the requesting user. NGOs also
// get the number of donations they can currently see.
func (s *Server) userStats(c *gin.Context) {
	user := currentUser(c)
	principal := user.Principal()

	if !principal.IsNGO() {
		counts, err := s.store.CountDonationsByOwner(c, user.ID, s.now())
		if shouldInterupt(err, c) {
			return
		}
		success(c, http.StatusOK, gin.H{
			"role": user.Role,
			"stats": donorStats{
				TotalDonations:     counts.Total,
				AvailableDonations: counts.Available,
				ClaimedDonations:   counts.Claimed,
				CompletedDonations: counts.Picked,
				ExpiredDonations:   counts.Expired,
				ImpactScore:        counts.Picked * donorImpactPerPickup,
			},
		})
		return
	}

	counts, err := s.store.CountDonationsByClaimant(c, user.ID, s.now())
	if shouldInterupt(err, c) {
		return
	}

	visible, err := s.matcher.VisibleDonations(c, principal)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	radius := visible.RadiusKm
	if !visible.LocationFilteringActive {
		radius = principal.RadiusOr(configuredRadius("matching.default_radius", schema.DefaultOperationalRadiusKm))
	}

	success(c, http.StatusOK, gin.H{
		"role": user.Role,
		"stats": ngoStats{
			TotalClaims:        counts.Claimed + counts.Picked,
			ActiveClaims:       counts.Claimed,
			CompletedClaims:    counts.Picked,
			AvailableDonations: len(visible.Donations),
			HasLocation:        visible.LocationFilteringActive,
			OperationalRadius:  radius,
			ImpactScore:        counts.Picked * ngoImpactPerPickup,
		},
	})
}

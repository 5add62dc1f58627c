package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/zerowaste/zerowaste-api/claim"
	"github.com/zerowaste/zerowaste-api/schema"
)

// claimDonation claims a donation for the requesting NGO
func (s *Server) claimDonation(c *gin.Context) {
	user := currentUser(c)

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	result, err := s.coordinator.Claim(c, id, user.ID, user.DisplayName)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{
		"message":  "donation claimed",
		"donation": s.presentDonation(result.Donation),
		"claim":    result.Claim,
	})
}

// pickupDonation confirms that the claiming NGO collected the donation
func (s *Server) pickupDonation(c *gin.Context) {
	user := currentUser(c)

	id, ok := objectIDParam(c, "id")
	if !ok {
		return
	}

	d, err := s.coordinator.MarkPicked(c, id, user.ID)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{
		"message":  "donation marked as picked up",
		"donation": s.presentDonation(*d),
	})
}

// cancelClaim cancels a pending claim of the requesting NGO
func (s *Server) cancelClaim(c *gin.Context) {
	user := currentUser(c)

	id, ok := objectIDParam(c, "claimId")
	if !ok {
		return
	}

	result, err := s.coordinator.CancelClaim(c, id, user.ID)
	if err != nil {
		if errors.Cause(err) == claim.ErrNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorClaimNotFound, err)
			return
		}
		abortWithDomainError(c, err)
		return
	}

	payload := gin.H{
		"message": "claim cancelled",
		"claim":   result.Claim,
	}
	if result.Donation != nil {
		payload["donation"] = s.presentDonation(*result.Donation)
	}
	success(c, http.StatusOK, payload)
}

// myClaimedDonations lists the donations claimed or picked by the NGO
func (s *Server) myClaimedDonations(c *gin.Context) {
	user := currentUser(c)

	var query listQuery
	if !bindQuery(c, &query) {
		return
	}

	donations, err := s.store.FindDonationsByClaimant(c, user.ID, query.Limit)
	if shouldInterupt(err, c) {
		return
	}

	success(c, http.StatusOK, gin.H{
		"donations": s.presentDonations(donations),
		"count":     len(donations),
	})
}

type claimListQuery struct {
	Limit  int64  `form:"limit" binding:"omitempty,min=1,max=100"`
	Status string `form:"status" binding:"omitempty,oneof=pending approved rejected cancelled"`
}

// myClaims lists the NGO's claim requests, optionally by status, with the
// donations it currently holds
func (s *Server) myClaims(c *gin.Context) {
	user := currentUser(c)

	var query claimListQuery
	if !bindQuery(c, &query) {
		return
	}

	claims, err := s.store.FindClaimsByNGO(c, user.ID, query.Status, query.Limit)
	if shouldInterupt(err, c) {
		return
	}

	donations, err := s.store.FindDonationsByClaimant(c, user.ID, query.Limit, schema.DonationClaimed)
	if shouldInterupt(err, c) {
		return
	}

	success(c, http.StatusOK, gin.H{
		"claims":    claims,
		"donations": s.presentDonations(donations),
		"count":     len(claims),
	})
}

package api

import (
	"net/http"

	"github.com/RichardKnop/machinery/v1/tasks"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/zerowaste/zerowaste-api/background"
	"github.com/zerowaste/zerowaste-api/claim"
)

// adminExpireDonations is an internal only api to trigger the task that
// stores the expired status on overdue donations
func (s *Server) adminExpireDonations(c *gin.Context) {
	if _, err := s.background.SendTask(&tasks.Signature{
		Name: background.TaskExpireDonations,
	}); err != nil {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
		return
	}

	c.JSON(200, gin.H{"result": "OK"})
}

// adminSetClaimStatus forces the status of a claim request. The donation is
// left untouched.
func (s *Server) adminSetClaimStatus(c *gin.Context) {
	id, ok := objectIDParam(c, "claimId")
	if !ok {
		return
	}

	var params struct {
		Status string `json:"status" binding:"required,oneof=pending approved rejected cancelled"`
	}
	if !bindJSON(c, &params) {
		return
	}

	request, err := s.coordinator.OverrideClaimStatus(c, id, params.Status)
	if err != nil {
		if errors.Cause(err) == claim.ErrNotFound {
			abortWithEncoding(c, http.StatusNotFound, errorClaimNotFound, err)
			return
		}
		abortWithDomainError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{"claim": request})
}

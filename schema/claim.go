package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	ClaimCollection = "claim_requests"
)

// claim request states. Claims are approved on creation; pending and
// rejected are kept for a donor review workflow.
const (
	ClaimPending   = "pending"
	ClaimApproved  = "approved"
	ClaimRejected  = "rejected"
	ClaimCancelled = "cancelled"
)

// ActiveClaimStatuses are the states counted when looking for a duplicate claim
var ActiveClaimStatuses = []string{ClaimPending, ClaimApproved}

// ValidClaimStatus tells if s is one of the claim request states
func ValidClaimStatus(s string) bool {
	switch s {
	case ClaimPending, ClaimApproved, ClaimRejected, ClaimCancelled:
		return true
	}
	return false
}

// ClaimRequest records an NGO's intent to collect a donation
type ClaimRequest struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	DonationID  primitive.ObjectID `bson:"donation_id" json:"donationId"`
	NGOID       primitive.ObjectID `bson:"ngo_id" json:"ngoId"`
	NGOName     string             `bson:"ngo_name" json:"ngoName"`
	Status      string             `bson:"status" json:"status"`
	Message     string             `bson:"message,omitempty" json:"message,omitempty"`
	ApprovedAt  *time.Time         `bson:"approved_at" json:"approvedAt"`
	RejectedAt  *time.Time         `bson:"rejected_at" json:"rejectedAt"`
	CancelledAt *time.Time         `bson:"cancelled_at" json:"cancelledAt"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// IsActive tells if the claim blocks another claim by the same NGO
func (c *ClaimRequest) IsActive() bool {
	return c.Status == ClaimPending || c.Status == ClaimApproved
}

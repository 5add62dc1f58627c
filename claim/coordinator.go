package claim

import (
	"context"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zerowaste/zerowaste-api/schema"
	"github.com/zerowaste/zerowaste-api/store"
)

const claimLogPrefix = "claim"

// Store is the part of the repository the coordinator mutates
type Store interface {
	store.Transactor

	GetDonation(ctx context.Context, id primitive.ObjectID) (*schema.Donation, error)
	TransitionDonation(ctx context.Context, id primitive.ObjectID, t store.DonationTransition) (*schema.Donation, error)
	UpdateDonationDetails(ctx context.Context, id, donorID primitive.ObjectID, details schema.DonationDetails, now time.Time) (*schema.Donation, error)
	DeleteDonation(ctx context.Context, id primitive.ObjectID) error

	GetClaim(ctx context.Context, id primitive.ObjectID) (*schema.ClaimRequest, error)
	HasActiveClaim(ctx context.Context, donationID, ngoID primitive.ObjectID) (bool, error)
	InsertClaim(ctx context.Context, c *schema.ClaimRequest) error
	TransitionClaim(ctx context.Context, id primitive.ObjectID, from, to string, at time.Time) (*schema.ClaimRequest, error)
	SetClaimStatus(ctx context.Context, id primitive.ObjectID, status string, at time.Time) (*schema.ClaimRequest, error)
	DeleteClaimsByDonation(ctx context.Context, donationID primitive.ObjectID) (int64, error)
}

// Result of a successful claim
type Result struct {
	Donation schema.Donation     `json:"donation"`
	Claim    schema.ClaimRequest `json:"claim"`
}

// CancelResult carries the cancelled claim and, when the donation was
// released back to available, the updated donation
type CancelResult struct {
	Claim    schema.ClaimRequest `json:"claim"`
	Donation *schema.Donation    `json:"donation,omitempty"`
}

// Coordinator runs the donation lifecycle transitions. Every status change is
// a compare-and-set in the store so concurrent requests handled by different
// instances cannot both succeed.
type Coordinator struct {
	store Store
	now   func() time.Time
}

func NewCoordinator(s Store) *Coordinator {
	return &Coordinator{
		store: s,
		now:   time.Now,
	}
}

// WithClock replaces the time source
func (c *Coordinator) WithClock(now func() time.Time) *Coordinator {
	c.now = now
	return c
}

// Claim gives the donation to the NGO and records an approved claim request.
// A lost race is retried once against fresh state.
func (c *Coordinator) Claim(ctx context.Context, donationID, ngoID primitive.ObjectID, ngoName string) (*Result, error) {
	var err error
	for attempt := 0; attempt < 2; attempt++ {
		var result *Result
		result, err = c.tryClaim(ctx, donationID, ngoID, ngoName)
		if errors.Cause(err) != ErrConflict {
			return result, err
		}

		log.WithFields(log.Fields{
			"prefix":      claimLogPrefix,
			"donation_id": donationID.Hex(),
			"ngo_id":      ngoID.Hex(),
			"attempt":     attempt,
		}).Info("claim lost a concurrent update")
	}
	return nil, err
}

func (c *Coordinator) tryClaim(ctx context.Context, donationID, ngoID primitive.ObjectID, ngoName string) (*Result, error) {
	now := c.now()

	d, err := c.getDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if d.Status != schema.DonationAvailable {
		return nil, errors.Wrapf(ErrInvalidState, "donation is %s and no longer available", d.Status)
	}
	if d.IsExpired(now) {
		return nil, errors.Wrapf(ErrExpired, "donation expired at %s", d.ExpiryTime.Format(time.RFC3339))
	}

	duplicated, err := c.store.HasActiveClaim(ctx, donationID, ngoID)
	if err != nil {
		return nil, err
	}
	if duplicated {
		return nil, ErrDuplicateClaim
	}

	var result Result
	err = c.store.WithTransaction(ctx, func(ctx context.Context) error {
		updated, err := c.store.TransitionDonation(ctx, donationID, store.ClaimTransition(ngoID, ngoName, now))
		if err != nil {
			return err
		}

		request := schema.ClaimRequest{
			DonationID: donationID,
			NGOID:      ngoID,
			NGOName:    ngoName,
			Status:     schema.ClaimApproved,
			ApprovedAt: &now,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := c.store.InsertClaim(ctx, &request); err != nil {
			if !c.store.Transactional() {
				c.releaseAfterFailedInsert(ctx, donationID, ngoID, now, err)
			}
			return err
		}

		result = Result{Donation: *updated, Claim: request}
		return nil
	})
	if err != nil {
		return nil, c.translate(err)
	}

	log.WithFields(log.Fields{
		"prefix":      claimLogPrefix,
		"donation_id": donationID.Hex(),
		"claim_id":    result.Claim.ID.Hex(),
		"ngo_id":      ngoID.Hex(),
		"from":        schema.DonationAvailable,
		"to":          schema.DonationClaimed,
	}).Info("donation claimed")

	return &result, nil
}

// releaseAfterFailedInsert undoes the donation transition when the claim
// record could not be written
func (c *Coordinator) releaseAfterFailedInsert(ctx context.Context, donationID, ngoID primitive.ObjectID, now time.Time, cause error) {
	_, err := c.store.TransitionDonation(ctx, donationID, store.ReleaseTransition(ngoID, now))
	if err == nil {
		log.WithFields(log.Fields{
			"prefix":      claimLogPrefix,
			"donation_id": donationID.Hex(),
			"error":       cause,
		}).Warn("claim insert failed, donation released")
		return
	}

	log.WithFields(log.Fields{
		"prefix":      claimLogPrefix,
		"donation_id": donationID.Hex(),
		"ngo_id":      ngoID.Hex(),
		"error":       err,
	}).Error("fail to release donation after claim insert failure")
	sentry.CaptureException(errors.Wrapf(err, "release donation %s", donationID.Hex()))
}

// CancelClaim cancels a pending claim owned by the NGO. If the donation is
// still held by that NGO it becomes available again.
func (c *Coordinator) CancelClaim(ctx context.Context, claimID, ngoID primitive.ObjectID) (*CancelResult, error) {
	now := c.now()

	request, err := c.store.GetClaim(ctx, claimID)
	if err != nil {
		return nil, c.translate(err)
	}
	if request.NGOID != ngoID {
		return nil, errors.Wrap(ErrForbidden, "claim belongs to another ngo")
	}
	if request.Status != schema.ClaimPending {
		return nil, errors.Wrapf(ErrInvalidState, "only pending claims can be cancelled, claim is %s", request.Status)
	}

	var result CancelResult
	err = c.store.WithTransaction(ctx, func(ctx context.Context) error {
		cancelled, err := c.store.TransitionClaim(ctx, claimID, schema.ClaimPending, schema.ClaimCancelled, now)
		if err != nil {
			return err
		}
		result = CancelResult{Claim: *cancelled}

		released, err := c.store.TransitionDonation(ctx, request.DonationID, store.ReleaseTransition(ngoID, now))
		switch errors.Cause(err) {
		case nil:
			result.Donation = released
		case store.ErrStatusConflict, store.ErrDonationNotFound:
			// donation is no longer held by this ngo
		default:
			if !c.store.Transactional() {
				c.restoreAfterFailedRelease(ctx, claimID, request.DonationID, now, err)
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, c.translate(err)
	}

	log.WithFields(log.Fields{
		"prefix":      claimLogPrefix,
		"claim_id":    claimID.Hex(),
		"donation_id": request.DonationID.Hex(),
		"ngo_id":      ngoID.Hex(),
		"released":    result.Donation != nil,
	}).Info("claim cancelled")

	return &result, nil
}

// restoreAfterFailedRelease puts the cancelled claim back to pending when
// its donation could not be released
func (c *Coordinator) restoreAfterFailedRelease(ctx context.Context, claimID, donationID primitive.ObjectID, now time.Time, cause error) {
	_, err := c.store.TransitionClaim(ctx, claimID, schema.ClaimCancelled, schema.ClaimPending, now)
	if err == nil {
		log.WithFields(log.Fields{
			"prefix":      claimLogPrefix,
			"claim_id":    claimID.Hex(),
			"donation_id": donationID.Hex(),
			"error":       cause,
		}).Warn("donation release failed, claim restored to pending")
		return
	}

	log.WithFields(log.Fields{
		"prefix":      claimLogPrefix,
		"claim_id":    claimID.Hex(),
		"donation_id": donationID.Hex(),
		"error":       err,
	}).Error("fail to restore claim after donation release failure")
	sentry.CaptureException(errors.Wrapf(err, "restore claim %s", claimID.Hex()))
}

// MarkPicked confirms the claimant collected the donation
func (c *Coordinator) MarkPicked(ctx context.Context, donationID, ngoID primitive.ObjectID) (*schema.Donation, error) {
	d, err := c.getDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}

	if !d.IsClaimedBy(ngoID) {
		return nil, errors.Wrap(ErrForbidden, "only the claimant can confirm pickup")
	}
	if d.Status != schema.DonationClaimed {
		return nil, errors.Wrapf(ErrInvalidState, "donation is %s", d.Status)
	}

	picked, err := c.store.TransitionDonation(ctx, donationID, store.PickupTransition(ngoID, c.now()))
	if err != nil {
		return nil, c.translate(err)
	}

	log.WithFields(log.Fields{
		"prefix":      claimLogPrefix,
		"donation_id": donationID.Hex(),
		"ngo_id":      ngoID.Hex(),
		"from":        schema.DonationClaimed,
		"to":          schema.DonationPicked,
	}).Info("donation picked up")

	return picked, nil
}

// UpdateDonation changes descriptive fields of an available donation owned
// by the donor
func (c *Coordinator) UpdateDonation(ctx context.Context, donationID, donorID primitive.ObjectID, details schema.DonationDetails) (*schema.Donation, error) {
	d, err := c.getDonation(ctx, donationID)
	if err != nil {
		return nil, err
	}
	if d.DonorID != donorID {
		return nil, errors.Wrap(ErrForbidden, "donation belongs to another donor")
	}
	if d.Status != schema.DonationAvailable {
		return nil, errors.Wrapf(ErrInvalidState, "donation is %s and can no longer be edited", d.Status)
	}

	updated, err := c.store.UpdateDonationDetails(ctx, donationID, donorID, details, c.now())
	if err != nil {
		if errors.Cause(err) == store.ErrStatusConflict {
			return nil, errors.Wrap(ErrInvalidState, "donation changed status while editing")
		}
		return nil, c.translate(err)
	}

	return updated, nil
}

// DeleteDonation removes the donor's donation together with its claim requests
func (c *Coordinator) DeleteDonation(ctx context.Context, donationID, donorID primitive.ObjectID) error {
	d, err := c.getDonation(ctx, donationID)
	if err != nil {
		return err
	}
	if d.DonorID != donorID {
		return errors.Wrap(ErrForbidden, "donation belongs to another donor")
	}

	// claims go first so a failure never leaves claims without their donation
	var removed int64
	err = c.store.WithTransaction(ctx, func(ctx context.Context) error {
		n, err := c.store.DeleteClaimsByDonation(ctx, donationID)
		if err != nil {
			return err
		}
		removed = n
		return c.store.DeleteDonation(ctx, donationID)
	})
	if err != nil {
		return c.translate(err)
	}

	log.WithFields(log.Fields{
		"prefix":      claimLogPrefix,
		"donation_id": donationID.Hex(),
		"claims":      removed,
	}).Info("donation deleted")

	return nil
}

// OverrideClaimStatus forces a claim into status without touching its
// donation. It is an operator tool.
func (c *Coordinator) OverrideClaimStatus(ctx context.Context, claimID primitive.ObjectID, status string) (*schema.ClaimRequest, error) {
	if !schema.ValidClaimStatus(status) {
		return nil, errors.Wrapf(ErrInvalidState, "unknown claim status %q", status)
	}

	request, err := c.store.SetClaimStatus(ctx, claimID, status, c.now())
	if err != nil {
		return nil, c.translate(err)
	}

	log.WithFields(log.Fields{
		"prefix":   claimLogPrefix,
		"claim_id": claimID.Hex(),
		"status":   status,
	}).Warn("claim status overridden")

	return request, nil
}

func (c *Coordinator) getDonation(ctx context.Context, id primitive.ObjectID) (*schema.Donation, error) {
	d, err := c.store.GetDonation(ctx, id)
	if err != nil {
		return nil, c.translate(err)
	}
	return d, nil
}

// translate maps repository errors onto the coordinator's errors
func (c *Coordinator) translate(err error) error {
	switch errors.Cause(err) {
	case store.ErrDonationNotFound:
		return errors.Wrap(ErrNotFound, "donation not found")
	case store.ErrClaimNotFound:
		return errors.Wrap(ErrNotFound, "claim request not found")
	case store.ErrStatusConflict:
		return ErrConflict
	}
	return err
}

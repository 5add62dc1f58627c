package schema

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	DonationCollection = "donations"
)

// donation lifecycle
const (
	DonationAvailable = "available"
	DonationClaimed   = "claimed"
	DonationPicked    = "picked"
	DonationExpired   = "expired"
)

type PickupWindow struct {
	Start time.Time `bson:"start" json:"start"`
	End   time.Time `bson:"end" json:"end"`
}

// Donation is a surplus food listing posted by a donor
type Donation struct {
	ID            primitive.ObjectID  `bson:"_id" json:"id"`
	DonorID       primitive.ObjectID  `bson:"donor_id" json:"donorId"`
	DonorName     string              `bson:"donor_name" json:"donorName"`
	Title         string              `bson:"title" json:"title"`
	Description   string              `bson:"description" json:"description"`
	Quantity      string              `bson:"quantity" json:"quantity"`
	FoodType      string              `bson:"food_type" json:"foodType"`
	ExpiryTime    time.Time           `bson:"expiry_time" json:"expiryTime"`
	PickupWindow  PickupWindow        `bson:"pickup_window" json:"pickupWindow"`
	Location      Location            `bson:"location" json:"location"`
	Status        string              `bson:"status" json:"status"`
	ClaimedBy     *primitive.ObjectID `bson:"claimed_by" json:"claimedBy"`
	ClaimedByName *string             `bson:"claimed_by_name" json:"claimedByName"`
	ClaimedAt     *time.Time          `bson:"claimed_at" json:"claimedAt"`
	PickedAt      *time.Time          `bson:"picked_at" json:"pickedAt"`
	ExpiredAt     *time.Time          `bson:"expired_at" json:"expiredAt"`
	ImageURL      *string             `bson:"image_url" json:"imageUrl"`
	CreatedAt     time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt     time.Time           `bson:"updated_at" json:"updatedAt"`
}

// IsExpired reports whether the expiry deadline has passed at now
func (d *Donation) IsExpired(now time.Time) bool {
	return now.After(d.ExpiryTime)
}

// EffectiveStatus derives the status a reader should see. An available
// donation past its deadline reads as expired even if the stored status has
// not been swept yet. Claimed donations keep their status so the claimant can
// still pick them up.
func (d *Donation) EffectiveStatus(now time.Time) string {
	if d.Status == DonationAvailable && d.IsExpired(now) {
		return DonationExpired
	}
	return d.Status
}

// AsOf returns a copy with the derived status applied
func (d Donation) AsOf(now time.Time) Donation {
	d.Status = d.EffectiveStatus(now)
	return d
}

// IsClaimedBy tells if ngoID is the current claimant
func (d *Donation) IsClaimedBy(ngoID primitive.ObjectID) bool {
	return d.ClaimedBy != nil && *d.ClaimedBy == ngoID
}

// CheckInvariants verifies that the claim linkage agrees with the status:
// claimedBy is set iff the donation is claimed or picked, and pickedAt is set
// iff it is picked.
func (d *Donation) CheckInvariants() error {
	hasClaimant := d.ClaimedBy != nil
	claimedOrPicked := d.Status == DonationClaimed || d.Status == DonationPicked
	if hasClaimant != claimedOrPicked {
		return fmt.Errorf("donation %s: claimed_by set=%t with status %q", d.ID.Hex(), hasClaimant, d.Status)
	}

	if (d.PickedAt != nil) != (d.Status == DonationPicked) {
		return fmt.Errorf("donation %s: picked_at set=%t with status %q", d.ID.Hex(), d.PickedAt != nil, d.Status)
	}

	return nil
}

// DonationDetails holds the descriptive fields a donor may change while the
// donation is still available. Nil fields are left untouched.
type DonationDetails struct {
	Title        *string
	Description  *string
	Quantity     *string
	FoodType     *string
	ExpiryTime   *time.Time
	PickupWindow *PickupWindow
	Location     *Location
	ImageURL     *string
}

// DonationStats is the aggregated view of all donations and claims
type DonationStats struct {
	Total      int64            `json:"total"`
	Available  int64            `json:"available"`
	Claimed    int64            `json:"claimed"`
	Picked     int64            `json:"picked"`
	Expired    int64            `json:"expired"`
	ByFoodType map[string]int64 `json:"byFoodType"`
	ClaimStats ClaimStats       `json:"claimStats"`
}

// StatusCounts is a per-status tally of one user's donations
type StatusCounts struct {
	Total     int64 `json:"total"`
	Available int64 `json:"available"`
	Claimed   int64 `json:"claimed"`
	Picked    int64 `json:"picked"`
	Expired   int64 `json:"expired"`
}

type ClaimStats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Approved  int64 `json:"approved"`
	Rejected  int64 `json:"rejected"`
	Cancelled int64 `json:"cancelled"`
}

package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zerowaste/zerowaste-api/schema"
)

var (
	ErrDonationNotFound = errors.New("donation not found")
	ErrStatusConflict   = errors.New("record was modified by another request")
)

// DonationRepository - persistent store of donation records
type DonationRepository interface {
	InsertDonation(ctx context.Context, d *schema.Donation) error
	GetDonation(ctx context.Context, id primitive.ObjectID) (*schema.Donation, error)
	FindAvailableDonations(ctx context.Context, now time.Time, excludeExpired bool) ([]schema.Donation, error)
	FindDonationsByOwner(ctx context.Context, donorID primitive.ObjectID, limit int64) ([]schema.Donation, error)
	FindDonationsByClaimant(ctx context.Context, ngoID primitive.ObjectID, limit int64, statuses ...string) ([]schema.Donation, error)
	TransitionDonation(ctx context.Context, id primitive.ObjectID, t DonationTransition) (*schema.Donation, error)
	UpdateDonationDetails(ctx context.Context, id, donorID primitive.ObjectID, details schema.DonationDetails, now time.Time) (*schema.Donation, error)
	DeleteDonation(ctx context.Context, id primitive.ObjectID) error
	ExpireDonations(ctx context.Context, now time.Time) (int64, error)
	DonationStats(ctx context.Context, now time.Time) (*schema.DonationStats, error)
	CountDonationsByOwner(ctx context.Context, donorID primitive.ObjectID, now time.Time) (*schema.StatusCounts, error)
	CountDonationsByClaimant(ctx context.Context, ngoID primitive.ObjectID, now time.Time) (*schema.StatusCounts, error)
}

// DonationTransition is a compare-and-set on the status of a single donation.
// The update is only applied when the stored record still matches From (and
// Claimant / NotExpiredAt when given).
type DonationTransition struct {
	From string
	To   string

	// Claimant requires the stored claimed_by to equal this id
	Claimant *primitive.ObjectID
	// NotExpiredAt requires expiry_time to be at or after this instant
	NotExpiredAt *time.Time

	ClaimedBy     *primitive.ObjectID
	ClaimedByName *string
	ClaimedAt     *time.Time
	PickedAt      *time.Time
	ExpiredAt     *time.Time

	// ClearClaim nulls out claimed_by, claimed_by_name and claimed_at
	ClearClaim bool

	At time.Time
}

// ClaimTransition moves an unexpired available donation to claimed
func ClaimTransition(ngoID primitive.ObjectID, ngoName string, now time.Time) DonationTransition {
	return DonationTransition{
		From:          schema.DonationAvailable,
		To:            schema.DonationClaimed,
		NotExpiredAt:  &now,
		ClaimedBy:     &ngoID,
		ClaimedByName: &ngoName,
		ClaimedAt:     &now,
		At:            now,
	}
}

// ReleaseTransition returns a donation claimed by ngoID to available
func ReleaseTransition(ngoID primitive.ObjectID, now time.Time) DonationTransition {
	return DonationTransition{
		From:       schema.DonationClaimed,
		To:         schema.DonationAvailable,
		Claimant:   &ngoID,
		ClearClaim: true,
		At:         now,
	}
}

// PickupTransition marks a donation claimed by ngoID as picked
func PickupTransition(ngoID primitive.ObjectID, now time.Time) DonationTransition {
	return DonationTransition{
		From:     schema.DonationClaimed,
		To:       schema.DonationPicked,
		Claimant: &ngoID,
		PickedAt: &now,
		At:       now,
	}
}

// Matches tells whether the transition's precondition holds for d
func (t DonationTransition) Matches(d *schema.Donation) bool {
	if d.Status != t.From {
		return false
	}
	if t.Claimant != nil && !d.IsClaimedBy(*t.Claimant) {
		return false
	}
	if t.NotExpiredAt != nil && d.ExpiryTime.Before(*t.NotExpiredAt) {
		return false
	}
	return true
}

// Apply mutates d as the stored update would
func (t DonationTransition) Apply(d *schema.Donation) {
	d.Status = t.To
	d.UpdatedAt = t.At

	if t.ClearClaim {
		d.ClaimedBy = nil
		d.ClaimedByName = nil
		d.ClaimedAt = nil
	}
	if t.ClaimedBy != nil {
		id := *t.ClaimedBy
		d.ClaimedBy = &id
	}
	if t.ClaimedByName != nil {
		name := *t.ClaimedByName
		d.ClaimedByName = &name
	}
	if t.ClaimedAt != nil {
		at := *t.ClaimedAt
		d.ClaimedAt = &at
	}
	if t.PickedAt != nil {
		at := *t.PickedAt
		d.PickedAt = &at
	}
	if t.ExpiredAt != nil {
		at := *t.ExpiredAt
		d.ExpiredAt = &at
	}
}

func (t DonationTransition) filter(id primitive.ObjectID) bson.M {
	query := bson.M{
		"_id":    id,
		"status": t.From,
	}
	if t.Claimant != nil {
		query["claimed_by"] = *t.Claimant
	}
	if t.NotExpiredAt != nil {
		query["expiry_time"] = bson.M{"$gte": *t.NotExpiredAt}
	}
	return query
}

func (t DonationTransition) update() bson.M {
	set := bson.M{
		"status":     t.To,
		"updated_at": t.At,
	}

	if t.ClearClaim {
		set["claimed_by"] = nil
		set["claimed_by_name"] = nil
		set["claimed_at"] = nil
	}
	if t.ClaimedBy != nil {
		set["claimed_by"] = *t.ClaimedBy
	}
	if t.ClaimedByName != nil {
		set["claimed_by_name"] = *t.ClaimedByName
	}
	if t.ClaimedAt != nil {
		set["claimed_at"] = *t.ClaimedAt
	}
	if t.PickedAt != nil {
		set["picked_at"] = *t.PickedAt
	}
	if t.ExpiredAt != nil {
		set["expired_at"] = *t.ExpiredAt
	}

	return bson.M{"$set": set}
}

// InsertDonation stores a new donation, assigning an id when missing
func (m *mongoDB) InsertDonation(ctx context.Context, d *schema.Donation) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if d.ID.IsZero() {
		d.ID = primitive.NewObjectID()
	}

	if _, err := m.collection(schema.DonationCollection).InsertOne(ctx, d); err != nil {
		return errors.Wrap(err, "insert donation")
	}
	return nil
}

// GetDonation finds a donation by id
func (m *mongoDB) GetDonation(ctx context.Context, id primitive.ObjectID) (*schema.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var d schema.Donation
	if err := m.collection(schema.DonationCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrDonationNotFound
		}
		return nil, errors.Wrap(err, "get donation")
	}

	return &d, nil
}

// FindAvailableDonations returns donations with status available sorted by
// expiry ascending, so the most urgent come first
func (m *mongoDB) FindAvailableDonations(ctx context.Context, now time.Time, excludeExpired bool) ([]schema.Donation, error) {
	query := bson.M{"status": schema.DonationAvailable}
	if excludeExpired {
		query["expiry_time"] = bson.M{"$gt": now}
	}

	opts := options.Find().SetSort(bson.D{
		{Key: "expiry_time", Value: 1},
		{Key: "created_at", Value: -1},
	})

	return m.findDonations(ctx, query, opts)
}

// FindDonationsByOwner returns the latest donations of a donor
func (m *mongoDB) FindDonationsByOwner(ctx context.Context, donorID primitive.ObjectID, limit int64) ([]schema.Donation, error) {
	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(listLimit(limit))

	return m.findDonations(ctx, bson.M{"donor_id": donorID}, opts)
}

// FindDonationsByClaimant returns donations claimed by an NGO, optionally
// restricted to some statuses
func (m *mongoDB) FindDonationsByClaimant(ctx context.Context, ngoID primitive.ObjectID, limit int64, statuses ...string) ([]schema.Donation, error) {
	query := bson.M{"claimed_by": ngoID}
	if len(statuses) > 0 {
		query["status"] = bson.M{"$in": statuses}
	}

	opts := options.Find().
		SetSort(bson.M{"claimed_at": -1}).
		SetLimit(listLimit(limit))

	return m.findDonations(ctx, query, opts)
}

func (m *mongoDB) findDonations(ctx context.Context, query bson.M, opts *options.FindOptions) ([]schema.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.DonationCollection).Find(ctx, query, opts)
	if err != nil {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "query": query, "error": err}).Error("find donations")
		return nil, errors.Wrap(err, "find donations")
	}

	donations := make([]schema.Donation, 0)
	if err := cursor.All(ctx, &donations); err != nil {
		return nil, errors.Wrap(err, "decode donations")
	}

	return donations, nil
}

// TransitionDonation atomically applies t to the donation. It returns
// ErrStatusConflict when the record exists but no longer satisfies the
// transition's precondition.
func (m *mongoDB) TransitionDonation(ctx context.Context, id primitive.ObjectID, t DonationTransition) (*schema.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.DonationCollection)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d schema.Donation
	if err := c.FindOneAndUpdate(ctx, t.filter(id), t.update(), opts).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, m.missingOrConflict(ctx, c, id, ErrDonationNotFound)
		}
		return nil, errors.Wrap(err, "transition donation")
	}

	log.WithFields(log.Fields{
		"prefix":      mongoLogPrefix,
		"donation_id": id.Hex(),
		"from":        t.From,
		"to":          t.To,
	}).Debug("donation transitioned")

	return &d, nil
}

// UpdateDonationDetails changes descriptive fields of a donation owned by
// donorID while it is still available
func (m *mongoDB) UpdateDonationDetails(ctx context.Context, id, donorID primitive.ObjectID, details schema.DonationDetails, now time.Time) (*schema.Donation, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": now}
	if details.Title != nil {
		set["title"] = *details.Title
	}
	if details.Description != nil {
		set["description"] = *details.Description
	}
	if details.Quantity != nil {
		set["quantity"] = *details.Quantity
	}
	if details.FoodType != nil {
		set["food_type"] = *details.FoodType
	}
	if details.ExpiryTime != nil {
		set["expiry_time"] = *details.ExpiryTime
	}
	if details.PickupWindow != nil {
		set["pickup_window"] = *details.PickupWindow
	}
	if details.Location != nil {
		set["location"] = *details.Location
	}
	if details.ImageURL != nil {
		set["image_url"] = *details.ImageURL
	}

	c := m.collection(schema.DonationCollection)
	query := bson.M{
		"_id":      id,
		"donor_id": donorID,
		"status":   schema.DonationAvailable,
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var d schema.Donation
	if err := c.FindOneAndUpdate(ctx, query, bson.M{"$set": set}, opts).Decode(&d); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, m.missingOrConflict(ctx, c, id, ErrDonationNotFound)
		}
		return nil, errors.Wrap(err, "update donation")
	}

	return &d, nil
}

// DeleteDonation removes a donation record
func (m *mongoDB) DeleteDonation(ctx context.Context, id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.DonationCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "delete donation")
	}
	if result.DeletedCount == 0 {
		return ErrDonationNotFound
	}
	return nil
}

// ExpireDonations stores the expired status on available donations past
// their deadline. Reads derive expiry on their own; this only makes the
// stored status catch up.
func (m *mongoDB) ExpireDonations(ctx context.Context, now time.Time) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.DonationCollection).UpdateMany(ctx,
		bson.M{
			"status":      schema.DonationAvailable,
			"expiry_time": bson.M{"$lt": now},
		},
		bson.M{"$set": bson.M{
			"status":     schema.DonationExpired,
			"expired_at": now,
			"updated_at": now,
		}})
	if err != nil {
		return 0, errors.Wrap(err, "expire donations")
	}

	return result.ModifiedCount, nil
}

// DonationStats aggregates donation counts by status and food type along with
// claim counts by status. Available donations past their deadline are counted
// as expired.
func (m *mongoDB) DonationStats(ctx context.Context, now time.Time) (*schema.DonationStats, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	donations := m.collection(schema.DonationCollection)

	byStatus, err := m.groupCount(ctx, donations, nil, "$status")
	if err != nil {
		return nil, err
	}

	byFoodType, err := m.groupCount(ctx, donations, nil, "$food_type")
	if err != nil {
		return nil, err
	}

	lazilyExpired, err := donations.CountDocuments(ctx, bson.M{
		"status":      schema.DonationAvailable,
		"expiry_time": bson.M{"$lt": now},
	})
	if err != nil {
		return nil, errors.Wrap(err, "count expired donations")
	}

	claims, err := m.groupCount(ctx, m.collection(schema.ClaimCollection), nil, "$status")
	if err != nil {
		return nil, err
	}

	stats := &schema.DonationStats{
		Available:  byStatus[schema.DonationAvailable] - lazilyExpired,
		Claimed:    byStatus[schema.DonationClaimed],
		Picked:     byStatus[schema.DonationPicked],
		Expired:    byStatus[schema.DonationExpired] + lazilyExpired,
		ByFoodType: byFoodType,
		ClaimStats: schema.ClaimStats{
			Pending:   claims[schema.ClaimPending],
			Approved:  claims[schema.ClaimApproved],
			Rejected:  claims[schema.ClaimRejected],
			Cancelled: claims[schema.ClaimCancelled],
		},
	}
	for _, n := range byStatus {
		stats.Total += n
	}
	for _, n := range claims {
		stats.ClaimStats.Total += n
	}

	return stats, nil
}

// CountDonationsByOwner counts a donor's donations per status
func (m *mongoDB) CountDonationsByOwner(ctx context.Context, donorID primitive.ObjectID, now time.Time) (*schema.StatusCounts, error) {
	return m.countByStatus(ctx, bson.M{"donor_id": donorID}, now)
}

// CountDonationsByClaimant counts the donations an NGO holds or picked up per status
func (m *mongoDB) CountDonationsByClaimant(ctx context.Context, ngoID primitive.ObjectID, now time.Time) (*schema.StatusCounts, error) {
	return m.countByStatus(ctx, bson.M{"claimed_by": ngoID}, now)
}

// countByStatus groups the donations matching match by status. Available
// donations past their deadline are counted as expired.
func (m *mongoDB) countByStatus(ctx context.Context, match bson.M, now time.Time) (*schema.StatusCounts, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	donations := m.collection(schema.DonationCollection)

	byStatus, err := m.groupCount(ctx, donations, match, "$status")
	if err != nil {
		return nil, err
	}

	expiredQuery := bson.M{
		"status":      schema.DonationAvailable,
		"expiry_time": bson.M{"$lt": now},
	}
	for k, v := range match {
		expiredQuery[k] = v
	}
	lazilyExpired, err := donations.CountDocuments(ctx, expiredQuery)
	if err != nil {
		return nil, errors.Wrap(err, "count expired donations")
	}

	counts := &schema.StatusCounts{
		Available: byStatus[schema.DonationAvailable] - lazilyExpired,
		Claimed:   byStatus[schema.DonationClaimed],
		Picked:    byStatus[schema.DonationPicked],
		Expired:   byStatus[schema.DonationExpired] + lazilyExpired,
	}
	for _, n := range byStatus {
		counts.Total += n
	}
	return counts, nil
}

func (m *mongoDB) groupCount(ctx context.Context, c *mongo.Collection, match bson.M, field string) (map[string]int64, error) {
	pipeline := mongo.Pipeline{}
	if match != nil {
		pipeline = append(pipeline, bson.D{{Key: "$match", Value: match}})
	}
	pipeline = append(pipeline, bson.D{{Key: "$group", Value: bson.D{
		{Key: "_id", Value: field},
		{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
	}}})

	cursor, err := c.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, errors.Wrapf(err, "group %s by %s", c.Name(), field)
	}

	var rows []struct {
		Key   string `bson:"_id"`
		Count int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, errors.Wrapf(err, "decode %s groups", c.Name())
	}

	counts := make(map[string]int64, len(rows))
	for _, r := range rows {
		counts[r.Key] = r.Count
	}
	return counts, nil
}

// missingOrConflict tells apart a failed conditional update on a missing
// record from one that lost against a concurrent change
func (m *mongoDB) missingOrConflict(ctx context.Context, c *mongo.Collection, id primitive.ObjectID, notFound error) error {
	count, err := c.CountDocuments(ctx, bson.M{"_id": id})
	if err != nil {
		return errors.Wrap(err, "check record existence")
	}
	if count == 0 {
		return notFound
	}
	return ErrStatusConflict
}

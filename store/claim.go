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
	ErrClaimNotFound = errors.New("claim request not found")
)

// ClaimRepository - persistent store of claim requests
type ClaimRepository interface {
	InsertClaim(ctx context.Context, c *schema.ClaimRequest) error
	GetClaim(ctx context.Context, id primitive.ObjectID) (*schema.ClaimRequest, error)
	HasActiveClaim(ctx context.Context, donationID, ngoID primitive.ObjectID) (bool, error)
	FindClaimsByNGO(ctx context.Context, ngoID primitive.ObjectID, status string, limit int64) ([]schema.ClaimRequest, error)
	FindClaimsByDonation(ctx context.Context, donationID primitive.ObjectID) ([]schema.ClaimRequest, error)
	TransitionClaim(ctx context.Context, id primitive.ObjectID, from, to string, at time.Time) (*schema.ClaimRequest, error)
	SetClaimStatus(ctx context.Context, id primitive.ObjectID, status string, at time.Time) (*schema.ClaimRequest, error)
	DeleteClaimsByDonation(ctx context.Context, donationID primitive.ObjectID) (int64, error)
}

// ClaimStatusFields returns the stored fields written when a claim enters
// status at the given time
func ClaimStatusFields(status string, at time.Time) bson.M {
	set := bson.M{
		"status":     status,
		"updated_at": at,
	}
	switch status {
	case schema.ClaimApproved:
		set["approved_at"] = at
	case schema.ClaimRejected:
		set["rejected_at"] = at
	case schema.ClaimCancelled:
		set["cancelled_at"] = at
	}
	return set
}

// ApplyClaimStatus mutates c as ClaimStatusFields would
func ApplyClaimStatus(c *schema.ClaimRequest, status string, at time.Time) {
	c.Status = status
	c.UpdatedAt = at

	t := at
	switch status {
	case schema.ClaimApproved:
		c.ApprovedAt = &t
	case schema.ClaimRejected:
		c.RejectedAt = &t
	case schema.ClaimCancelled:
		c.CancelledAt = &t
	}
}

// InsertClaim stores a new claim request, assigning an id when missing
func (m *mongoDB) InsertClaim(ctx context.Context, c *schema.ClaimRequest) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}

	if _, err := m.collection(schema.ClaimCollection).InsertOne(ctx, c); err != nil {
		return errors.Wrap(err, "insert claim request")
	}
	return nil
}

// GetClaim finds a claim request by id
func (m *mongoDB) GetClaim(ctx context.Context, id primitive.ObjectID) (*schema.ClaimRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var c schema.ClaimRequest
	if err := m.collection(schema.ClaimCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&c); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrClaimNotFound
		}
		return nil, errors.Wrap(err, "get claim request")
	}

	return &c, nil
}

// HasActiveClaim tells if the NGO holds a pending or approved claim on the donation
func (m *mongoDB) HasActiveClaim(ctx context.Context, donationID, ngoID primitive.ObjectID) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	count, err := m.collection(schema.ClaimCollection).CountDocuments(ctx, bson.M{
		"donation_id": donationID,
		"ngo_id":      ngoID,
		"status":      bson.M{"$in": schema.ActiveClaimStatuses},
	})
	if err != nil {
		return false, errors.Wrap(err, "count active claims")
	}

	return count > 0, nil
}

// FindClaimsByNGO returns the latest claims made by an NGO. An empty status
// returns claims of every status.
func (m *mongoDB) FindClaimsByNGO(ctx context.Context, ngoID primitive.ObjectID, status string, limit int64) ([]schema.ClaimRequest, error) {
	query := bson.M{"ngo_id": ngoID}
	if status != "" {
		query["status"] = status
	}

	opts := options.Find().
		SetSort(bson.M{"created_at": -1}).
		SetLimit(listLimit(limit))

	return m.findClaims(ctx, query, opts)
}

// FindClaimsByDonation returns every claim made on a donation, oldest first
func (m *mongoDB) FindClaimsByDonation(ctx context.Context, donationID primitive.ObjectID) ([]schema.ClaimRequest, error) {
	opts := options.Find().SetSort(bson.M{"created_at": 1})
	return m.findClaims(ctx, bson.M{"donation_id": donationID}, opts)
}

func (m *mongoDB) findClaims(ctx context.Context, query bson.M, opts *options.FindOptions) ([]schema.ClaimRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cursor, err := m.collection(schema.ClaimCollection).Find(ctx, query, opts)
	if err != nil {
		log.WithFields(log.Fields{"prefix": mongoLogPrefix, "query": query, "error": err}).Error("find claim requests")
		return nil, errors.Wrap(err, "find claim requests")
	}

	claims := make([]schema.ClaimRequest, 0)
	if err := cursor.All(ctx, &claims); err != nil {
		return nil, errors.Wrap(err, "decode claim requests")
	}

	return claims, nil
}

// TransitionClaim moves a claim from one status to another only if it is
// still in the from status
func (m *mongoDB) TransitionClaim(ctx context.Context, id primitive.ObjectID, from, to string, at time.Time) (*schema.ClaimRequest, error) {
	return m.updateClaimStatus(ctx, bson.M{"_id": id, "status": from}, id, to, at)
}

// SetClaimStatus writes a claim status unconditionally
func (m *mongoDB) SetClaimStatus(ctx context.Context, id primitive.ObjectID, status string, at time.Time) (*schema.ClaimRequest, error) {
	return m.updateClaimStatus(ctx, bson.M{"_id": id}, id, status, at)
}

func (m *mongoDB) updateClaimStatus(ctx context.Context, query bson.M, id primitive.ObjectID, status string, at time.Time) (*schema.ClaimRequest, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	c := m.collection(schema.ClaimCollection)
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var claim schema.ClaimRequest
	if err := c.FindOneAndUpdate(ctx, query, bson.M{"$set": ClaimStatusFields(status, at)}, opts).Decode(&claim); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, m.missingOrConflict(ctx, c, id, ErrClaimNotFound)
		}
		return nil, errors.Wrap(err, "update claim status")
	}

	return &claim, nil
}

// DeleteClaimsByDonation removes every claim made on a donation
func (m *mongoDB) DeleteClaimsByDonation(ctx context.Context, donationID primitive.ObjectID) (int64, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	result, err := m.collection(schema.ClaimCollection).DeleteMany(ctx, bson.M{"donation_id": donationID})
	if err != nil {
		return 0, errors.Wrap(err, "delete claim requests")
	}
	return result.DeletedCount, nil
}

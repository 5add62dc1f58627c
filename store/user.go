package store

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/zerowaste/zerowaste-api/geo"
	"github.com/zerowaste/zerowaste-api/schema"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")
)

// UserRepository - read access to accounts plus the few fields this service owns
type UserRepository interface {
	GetUser(ctx context.Context, id primitive.ObjectID) (*schema.User, error)
	InsertUser(ctx context.Context, u *schema.User) error
	FindNGOsNear(ctx context.Context, center schema.Coordinates, radiusKm float64) ([]schema.User, error)
	UpdateUserLocation(ctx context.Context, id primitive.ObjectID, loc schema.Location, radiusKm *float64, now time.Time) (*schema.User, error)
}

// GetUser finds an account by id
func (m *mongoDB) GetUser(ctx context.Context, id primitive.ObjectID) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var u schema.User
	if err := m.collection(schema.UserCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, ErrUserNotFound
		}
		return nil, errors.Wrap(err, "get user")
	}

	return &u, nil
}

// InsertUser stores an account. Emails are unique.
func (m *mongoDB) InsertUser(ctx context.Context, u *schema.User) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}

	if _, err := m.collection(schema.UserCollection).InsertOne(ctx, u); err != nil {
		if we, ok := err.(mongo.WriteException); ok {
			for _, e := range we.WriteErrors {
				if e.Code == DuplicateKeyCode {
					return ErrUserExists
				}
			}
		}
		return errors.Wrap(err, "insert user")
	}
	return nil
}

// FindNGOsNear returns active NGOs whose stored point lies within radiusKm of
// center. The sphere query is a coarse candidate set; callers compute exact
// distances.
func (m *mongoDB) FindNGOsNear(ctx context.Context, center schema.Coordinates, radiusKm float64) ([]schema.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	query := bson.M{
		"role":      schema.RoleNGO,
		"is_active": true,
		"location.point": bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{
					bson.A{center.Lng, center.Lat},
					geo.RadiusToRadians(radiusKm),
				},
			},
		},
	}

	cursor, err := m.collection(schema.UserCollection).Find(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "find nearby ngos")
	}

	users := make([]schema.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, errors.Wrap(err, "decode nearby ngos")
	}

	return users, nil
}

// UpdateUserLocation sets the user's base location and, for NGOs, the
// operational radius
func (m *mongoDB) UpdateUserLocation(ctx context.Context, id primitive.ObjectID, loc schema.Location, radiusKm *float64, now time.Time) (*schema.User, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{
		"location":   loc,
		"updated_at": now,
	}
	if radiusKm != nil {
		set["ngo_details.operational_radius"] = *radiusKm
	}

	result, err := m.collection(schema.UserCollection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": set})
	if err != nil {
		return nil, errors.Wrap(err, "update user location")
	}
	if result.MatchedCount == 0 {
		return nil, ErrUserNotFound
	}

	return m.GetUser(ctx, id)
}

package schema

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoDBIndexer struct {
	ctx      context.Context
	dbName   string
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDBIndexer uses a connected client owned by the caller
func NewMongoDBIndexer(client *mongo.Client, dbName string) *MongoDBIndexer {
	return &MongoDBIndexer{
		ctx:      context.Background(),
		dbName:   dbName,
		Client:   client,
		Database: client.Database(dbName),
	}
}

func (m *MongoDBIndexer) createIndex(collection string, index mongo.IndexModel) error {
	c := m.Database.Collection(collection)
	_, err := c.Indexes().CreateOne(m.ctx, index)
	return err
}

func (m *MongoDBIndexer) IndexAll() error {
	for _, f := range []func() error{
		m.IndexDonationCollection,
		m.IndexClaimCollection,
		m.IndexUserCollection,
	} {
		if err := f(); err != nil {
			return err
		}
	}
	return nil
}

func (m *MongoDBIndexer) IndexDonationCollection() error {
	for _, key := range []string{"donor_id", "status", "claimed_by", "expiry_time"} {
		if err := m.createIndex(DonationCollection, mongo.IndexModel{
			Keys: bson.M{key: 1},
		}); err != nil {
			return err
		}
	}

	// status + expiry backs both findAvailable and the expiry sweep
	if err := m.createIndex(DonationCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "status", Value: 1},
			{Key: "expiry_time", Value: 1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(DonationCollection, mongo.IndexModel{
		Keys: bson.M{
			"location.point": "2dsphere",
		},
	})
}

func (m *MongoDBIndexer) IndexClaimCollection() error {
	if err := m.createIndex(ClaimCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "donation_id", Value: 1},
			{Key: "ngo_id", Value: 1},
			{Key: "status", Value: 1},
		},
	}); err != nil {
		return err
	}

	if err := m.createIndex(ClaimCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "ngo_id", Value: 1},
			{Key: "created_at", Value: -1},
		},
	}); err != nil {
		return err
	}

	return m.createIndex(ClaimCollection, mongo.IndexModel{
		Keys: bson.M{
			"status": 1,
		},
	})
}

func (m *MongoDBIndexer) IndexUserCollection() error {
	if err := m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.M{
			"email": 1,
		},
		Options: options.Index().SetUnique(true),
	}); err != nil {
		return err
	}

	return m.createIndex(UserCollection, mongo.IndexModel{
		Keys: bson.D{
			{Key: "role", Value: 1},
			{Key: "location.point", Value: "2dsphere"},
		},
	})
}

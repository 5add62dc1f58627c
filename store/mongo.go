package store

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	mongoLogPrefix   = "mongo"
	defaultTimeout   = 5 * time.Second
	defaultListLimit = 100

	DuplicateKeyCode = 11000
)

// MongoStore - interface for mongodb operations
type MongoStore interface {
	DonationRepository
	ClaimRepository
	UserRepository
	Transactor
	Closer
	Pinger
}

// Transactor runs fn so that all its writes commit or abort together.
// Without transaction support fn is executed as is and callers must
// compensate for partial failures themselves.
type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
	Transactional() bool
}

// Closer - close db connection
type Closer interface {
	Close()
}

// Pinger - ping database
type Pinger interface {
	Ping() error
}

type mongoDB struct {
	client       *mongo.Client
	database     string
	transactions bool
}

// Ping - ping mongo db
func (m mongoDB) Ping() error {
	ctx, cancel := context.WithTimeout(context.Background(), defaultTimeout)
	defer cancel()

	return m.client.Ping(ctx, nil)
}

// Close - close mongo db connections
func (m mongoDB) Close() {
	log.WithField("prefix", mongoLogPrefix).Info("closing mongo db connections")
	_ = m.client.Disconnect(context.Background())
}

// WithTransaction runs fn in a mongo transaction when the store is configured
// for a replica set deployment
func (m *mongoDB) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if !m.transactions {
		return fn(ctx)
	}

	session, err := m.client.StartSession()
	if err != nil {
		return err
	}
	defer session.EndSession(ctx)

	_, err = session.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	return err
}

// Transactional tells if WithTransaction rolls back on error
func (m *mongoDB) Transactional() bool {
	return m.transactions
}

func (m *mongoDB) collection(name string) *mongo.Collection {
	return m.client.Database(m.database).Collection(name)
}

// NewMongoStore - return mongo db operations. The client is owned by the
// caller, which is responsible for connecting and closing it.
func NewMongoStore(client *mongo.Client, database string, transactions bool) MongoStore {
	return &mongoDB{
		client:       client,
		database:     database,
		transactions: transactions,
	}
}

func listLimit(limit int64) int64 {
	if limit <= 0 || limit > defaultListLimit {
		return defaultListLimit
	}
	return limit
}

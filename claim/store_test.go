package claim

import (
	"context"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zerowaste/zerowaste-api/schema"
	"github.com/zerowaste/zerowaste-api/store"
)

// memoryStore keeps records in maps and applies the same compare-and-set
// rules as the mongo store
type memoryStore struct {
	sync.Mutex
	donations map[primitive.ObjectID]schema.Donation
	claims    map[primitive.ObjectID]schema.ClaimRequest

	insertErr     error
	transitionErr error
	deleteErr     error
	// transactional makes the coordinator rely on rollback instead of
	// compensating writes. Nothing is rolled back here.
	transactional bool
	// conflicts is the number of donation transitions to fail as lost races
	conflicts int
	// beforeTransition runs before each donation transition with the lock held
	beforeTransition func(s *memoryStore, id primitive.ObjectID)
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		donations: make(map[primitive.ObjectID]schema.Donation),
		claims:    make(map[primitive.ObjectID]schema.ClaimRequest),
	}
}

func (m *memoryStore) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func (m *memoryStore) Transactional() bool {
	return m.transactional
}

func (m *memoryStore) put(d schema.Donation) {
	m.Lock()
	defer m.Unlock()
	m.donations[d.ID] = d
}

func (m *memoryStore) GetDonation(ctx context.Context, id primitive.ObjectID) (*schema.Donation, error) {
	m.Lock()
	defer m.Unlock()

	d, ok := m.donations[id]
	if !ok {
		return nil, store.ErrDonationNotFound
	}
	return &d, nil
}

func (m *memoryStore) TransitionDonation(ctx context.Context, id primitive.ObjectID, t store.DonationTransition) (*schema.Donation, error) {
	m.Lock()
	defer m.Unlock()

	if m.transitionErr != nil {
		return nil, m.transitionErr
	}
	if m.conflicts > 0 {
		m.conflicts--
		return nil, store.ErrStatusConflict
	}
	if m.beforeTransition != nil {
		m.beforeTransition(m, id)
	}

	d, ok := m.donations[id]
	if !ok {
		return nil, store.ErrDonationNotFound
	}
	if !t.Matches(&d) {
		return nil, store.ErrStatusConflict
	}
	t.Apply(&d)
	m.donations[id] = d
	return &d, nil
}

func (m *memoryStore) UpdateDonationDetails(ctx context.Context, id, donorID primitive.ObjectID, details schema.DonationDetails, now time.Time) (*schema.Donation, error) {
	m.Lock()
	defer m.Unlock()

	d, ok := m.donations[id]
	if !ok {
		return nil, store.ErrDonationNotFound
	}
	if d.DonorID != donorID || d.Status != schema.DonationAvailable {
		return nil, store.ErrStatusConflict
	}
	if details.Title != nil {
		d.Title = *details.Title
	}
	if details.ExpiryTime != nil {
		d.ExpiryTime = *details.ExpiryTime
	}
	d.UpdatedAt = now
	m.donations[id] = d
	return &d, nil
}

func (m *memoryStore) DeleteDonation(ctx context.Context, id primitive.ObjectID) error {
	m.Lock()
	defer m.Unlock()

	if _, ok := m.donations[id]; !ok {
		return store.ErrDonationNotFound
	}
	delete(m.donations, id)
	return nil
}

func (m *memoryStore) GetClaim(ctx context.Context, id primitive.ObjectID) (*schema.ClaimRequest, error) {
	m.Lock()
	defer m.Unlock()

	c, ok := m.claims[id]
	if !ok {
		return nil, store.ErrClaimNotFound
	}
	return &c, nil
}

func (m *memoryStore) HasActiveClaim(ctx context.Context, donationID, ngoID primitive.ObjectID) (bool, error) {
	m.Lock()
	defer m.Unlock()

	for _, c := range m.claims {
		if c.DonationID == donationID && c.NGOID == ngoID && c.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (m *memoryStore) InsertClaim(ctx context.Context, c *schema.ClaimRequest) error {
	m.Lock()
	defer m.Unlock()

	if m.insertErr != nil {
		return m.insertErr
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	m.claims[c.ID] = *c
	return nil
}

func (m *memoryStore) TransitionClaim(ctx context.Context, id primitive.ObjectID, from, to string, at time.Time) (*schema.ClaimRequest, error) {
	m.Lock()
	defer m.Unlock()

	c, ok := m.claims[id]
	if !ok {
		return nil, store.ErrClaimNotFound
	}
	if c.Status != from {
		return nil, store.ErrStatusConflict
	}
	store.ApplyClaimStatus(&c, to, at)
	m.claims[id] = c
	return &c, nil
}

func (m *memoryStore) SetClaimStatus(ctx context.Context, id primitive.ObjectID, status string, at time.Time) (*schema.ClaimRequest, error) {
	m.Lock()
	defer m.Unlock()

	c, ok := m.claims[id]
	if !ok {
		return nil, store.ErrClaimNotFound
	}
	store.ApplyClaimStatus(&c, status, at)
	m.claims[id] = c
	return &c, nil
}

func (m *memoryStore) DeleteClaimsByDonation(ctx context.Context, donationID primitive.ObjectID) (int64, error) {
	m.Lock()
	defer m.Unlock()

	if m.deleteErr != nil {
		return 0, m.deleteErr
	}

	var n int64
	for id, c := range m.claims {
		if c.DonationID == donationID {
			delete(m.claims, id)
			n++
		}
	}
	return n, nil
}

func (m *memoryStore) claimsOf(donationID primitive.ObjectID) []schema.ClaimRequest {
	m.Lock()
	defer m.Unlock()

	claims := make([]schema.ClaimRequest, 0)
	for _, c := range m.claims {
		if c.DonationID == donationID {
			claims = append(claims, c)
		}
	}
	return claims
}

var (
	errInsertFailed  = errors.New("insert failed")
	errSocketTimeout = errors.New("socket timeout")
)

package store

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zerowaste/zerowaste-api/schema"
)

const testMongoURIEnv = "ZEROWASTE_TEST_MONGO_URI"

var (
	testNow        = time.Date(2026, 10, 15, 12, 0, 0, 0, time.UTC)
	availableID    = primitive.NewObjectID()
	staleID        = primitive.NewObjectID()
	claimedID      = primitive.NewObjectID()
	fixtureDonorID = primitive.NewObjectID()
	fixtureNGOID   = primitive.NewObjectID()
	otherNGOID     = primitive.NewObjectID()
)

type DonationTestSuite struct {
	suite.Suite
	connURI      string
	testDBName   string
	mongoClient  *mongo.Client
	testDatabase *mongo.Database
	store        MongoStore
}

func NewDonationTestSuite(connURI, dbName string) *DonationTestSuite {
	return &DonationTestSuite{
		connURI:    connURI,
		testDBName: dbName,
	}
}

func (s *DonationTestSuite) SetupSuite() {
	opts := options.Client().ApplyURI(s.connURI)
	mongoClient, err := mongo.NewClient(opts)
	if nil != err {
		s.T().Fatalf("create mongo client with error: %s", err)
	}

	if err = mongoClient.Connect(context.Background()); nil != err {
		s.T().Fatalf("connect mongo database with error: %s", err.Error())
	}

	s.mongoClient = mongoClient
	s.testDatabase = mongoClient.Database(s.testDBName)
	s.store = NewMongoStore(mongoClient, s.testDBName, false)
}

func (s *DonationTestSuite) TearDownSuite() {
	_ = s.CleanMongoDB()
	_ = s.mongoClient.Disconnect(context.Background())
}

// SetupTest gives every test a fresh set of fixtures
func (s *DonationTestSuite) SetupTest() {
	if err := s.CleanMongoDB(); err != nil {
		s.T().Fatal(err)
	}
	if err := schema.NewMongoDBIndexer(s.mongoClient, s.testDBName).IndexAll(); err != nil {
		s.T().Fatal(err)
	}
	if err := s.LoadMongoDBFixtures(); err != nil {
		s.T().Fatal(err)
	}
}

func fixtureDonation(id primitive.ObjectID, status string, expiry time.Time) schema.Donation {
	return schema.Donation{
		ID:         id,
		DonorID:    fixtureDonorID,
		DonorName:  "Corner Bakery",
		Title:      "Bread loaves",
		Quantity:   "20 loaves",
		FoodType:   "bakery",
		ExpiryTime: expiry,
		Location:   schema.NewLocation("MG Road", &schema.Coordinates{Lat: 12.9716, Lng: 77.5946}),
		Status:     status,
		CreatedAt:  testNow.Add(-time.Hour),
		UpdatedAt:  testNow.Add(-time.Hour),
	}
}

// LoadMongoDBFixtures will preload fixtures into test mongodb
func (s *DonationTestSuite) LoadMongoDBFixtures() error {
	ctx := context.Background()

	claimed := fixtureDonation(claimedID, schema.DonationClaimed, testNow.Add(2*time.Hour))
	claimedAt := testNow.Add(-30 * time.Minute)
	name := "Food Bank"
	claimed.ClaimedBy = &fixtureNGOID
	claimed.ClaimedByName = &name
	claimed.ClaimedAt = &claimedAt
	claimed.FoodType = "cooked"

	if _, err := s.testDatabase.Collection(schema.DonationCollection).InsertMany(ctx, []interface{}{
		fixtureDonation(availableID, schema.DonationAvailable, testNow.Add(3*time.Hour)),
		fixtureDonation(staleID, schema.DonationAvailable, testNow.Add(-time.Hour)),
		claimed,
	}); err != nil {
		return err
	}

	if _, err := s.testDatabase.Collection(schema.ClaimCollection).InsertMany(ctx, []interface{}{
		schema.ClaimRequest{
			ID:         primitive.NewObjectID(),
			DonationID: claimedID,
			NGOID:      fixtureNGOID,
			NGOName:    name,
			Status:     schema.ClaimApproved,
			ApprovedAt: &claimedAt,
			CreatedAt:  claimedAt,
			UpdatedAt:  claimedAt,
		},
	}); err != nil {
		return err
	}

	return nil
}

// CleanMongoDB drop the whole test mongodb
func (s *DonationTestSuite) CleanMongoDB() error {
	return s.testDatabase.Drop(context.Background())
}

func (s *DonationTestSuite) TestFindAvailableDonations() {
	ctx := context.Background()

	all, err := s.store.FindAvailableDonations(ctx, testNow, false)
	s.NoError(err)
	s.Len(all, 2)
	// most urgent first
	s.Equal(staleID, all[0].ID)
	s.Equal(availableID, all[1].ID)

	fresh, err := s.store.FindAvailableDonations(ctx, testNow, true)
	s.NoError(err)
	s.Len(fresh, 1)
	s.Equal(availableID, fresh[0].ID)
}

func (s *DonationTestSuite) TestGetDonationNotFound() {
	_, err := s.store.GetDonation(context.Background(), primitive.NewObjectID())
	s.Equal(ErrDonationNotFound, err)
}

func (s *DonationTestSuite) TestClaimTransition() {
	ctx := context.Background()

	d, err := s.store.TransitionDonation(ctx, availableID, ClaimTransition(otherNGOID, "Shelter", testNow))
	s.NoError(err)
	s.Equal(schema.DonationClaimed, d.Status)
	s.Equal(otherNGOID, *d.ClaimedBy)
	s.Equal("Shelter", *d.ClaimedByName)
	s.NoError(d.CheckInvariants())

	// a second claimant loses
	_, err = s.store.TransitionDonation(ctx, availableID, ClaimTransition(fixtureNGOID, "Food Bank", testNow))
	s.Equal(ErrStatusConflict, err)

	_, err = s.store.TransitionDonation(ctx, primitive.NewObjectID(), ClaimTransition(fixtureNGOID, "Food Bank", testNow))
	s.Equal(ErrDonationNotFound, err)
}

func (s *DonationTestSuite) TestClaimTransitionRejectsExpired() {
	_, err := s.store.TransitionDonation(context.Background(), staleID, ClaimTransition(fixtureNGOID, "Food Bank", testNow))
	s.Equal(ErrStatusConflict, err)
}

func (s *DonationTestSuite) TestConcurrentClaimTransition() {
	ctx := context.Background()

	var wg sync.WaitGroup
	var mu sync.Mutex
	winners := 0
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.store.TransitionDonation(ctx, availableID, ClaimTransition(primitive.NewObjectID(), "ngo", testNow))
			if err == nil {
				mu.Lock()
				winners++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	s.Equal(1, winners)
}

func (s *DonationTestSuite) TestReleaseAndPickupTransitions() {
	ctx := context.Background()

	_, err := s.store.TransitionDonation(ctx, claimedID, PickupTransition(otherNGOID, testNow))
	s.Equal(ErrStatusConflict, err)

	d, err := s.store.TransitionDonation(ctx, claimedID, ReleaseTransition(fixtureNGOID, testNow))
	s.NoError(err)
	s.Equal(schema.DonationAvailable, d.Status)
	s.Nil(d.ClaimedBy)
	s.Nil(d.ClaimedByName)
	s.Nil(d.ClaimedAt)

	d, err = s.store.TransitionDonation(ctx, claimedID, ClaimTransition(fixtureNGOID, "Food Bank", testNow))
	s.NoError(err)

	d, err = s.store.TransitionDonation(ctx, claimedID, PickupTransition(fixtureNGOID, testNow))
	s.NoError(err)
	s.Equal(schema.DonationPicked, d.Status)
	s.NotNil(d.PickedAt)
	s.NoError(d.CheckInvariants())
}

func (s *DonationTestSuite) TestUpdateDonationDetails() {
	ctx := context.Background()
	title := "Fresh bread"

	d, err := s.store.UpdateDonationDetails(ctx, availableID, fixtureDonorID, schema.DonationDetails{Title: &title}, testNow)
	s.NoError(err)
	s.Equal(title, d.Title)
	s.Equal("20 loaves", d.Quantity)

	_, err = s.store.UpdateDonationDetails(ctx, claimedID, fixtureDonorID, schema.DonationDetails{Title: &title}, testNow)
	s.Equal(ErrStatusConflict, err)

	_, err = s.store.UpdateDonationDetails(ctx, availableID, otherNGOID, schema.DonationDetails{Title: &title}, testNow)
	s.Equal(ErrStatusConflict, err)
}

func (s *DonationTestSuite) TestExpireDonations() {
	ctx := context.Background()

	n, err := s.store.ExpireDonations(ctx, testNow)
	s.NoError(err)
	s.Equal(int64(1), n)

	d, err := s.store.GetDonation(ctx, staleID)
	s.NoError(err)
	s.Equal(schema.DonationExpired, d.Status)
	s.NotNil(d.ExpiredAt)

	n, err = s.store.ExpireDonations(ctx, testNow)
	s.NoError(err)
	s.Equal(int64(0), n)
}

func (s *DonationTestSuite) TestDonationStats() {
	stats, err := s.store.DonationStats(context.Background(), testNow)
	s.NoError(err)
	s.Equal(int64(3), stats.Total)
	s.Equal(int64(1), stats.Available)
	s.Equal(int64(1), stats.Claimed)
	s.Equal(int64(1), stats.Expired)
	s.Equal(int64(2), stats.ByFoodType["bakery"])
	s.Equal(int64(1), stats.ByFoodType["cooked"])
	s.Equal(int64(1), stats.ClaimStats.Total)
	s.Equal(int64(1), stats.ClaimStats.Approved)
}

func (s *DonationTestSuite) TestCountDonationsPerUser() {
	ctx := context.Background()

	owned, err := s.store.CountDonationsByOwner(ctx, fixtureDonorID, testNow)
	s.NoError(err)
	s.Equal(schema.StatusCounts{Total: 3, Available: 1, Claimed: 1, Expired: 1}, *owned)

	held, err := s.store.CountDonationsByClaimant(ctx, fixtureNGOID, testNow)
	s.NoError(err)
	s.Equal(schema.StatusCounts{Total: 1, Claimed: 1}, *held)

	none, err := s.store.CountDonationsByOwner(ctx, otherNGOID, testNow)
	s.NoError(err)
	s.Equal(schema.StatusCounts{}, *none)
}

func (s *DonationTestSuite) TestClaimLifecycle() {
	ctx := context.Background()

	active, err := s.store.HasActiveClaim(ctx, claimedID, fixtureNGOID)
	s.NoError(err)
	s.True(active)

	active, err = s.store.HasActiveClaim(ctx, claimedID, otherNGOID)
	s.NoError(err)
	s.False(active)

	c := &schema.ClaimRequest{
		DonationID: availableID,
		NGOID:      otherNGOID,
		NGOName:    "Shelter",
		Status:     schema.ClaimPending,
		CreatedAt:  testNow,
		UpdatedAt:  testNow,
	}
	s.NoError(s.store.InsertClaim(ctx, c))
	s.False(c.ID.IsZero())

	cancelled, err := s.store.TransitionClaim(ctx, c.ID, schema.ClaimPending, schema.ClaimCancelled, testNow)
	s.NoError(err)
	s.Equal(schema.ClaimCancelled, cancelled.Status)
	s.NotNil(cancelled.CancelledAt)

	_, err = s.store.TransitionClaim(ctx, c.ID, schema.ClaimPending, schema.ClaimCancelled, testNow)
	s.Equal(ErrStatusConflict, err)

	_, err = s.store.TransitionClaim(ctx, primitive.NewObjectID(), schema.ClaimPending, schema.ClaimCancelled, testNow)
	s.Equal(ErrClaimNotFound, err)

	forced, err := s.store.SetClaimStatus(ctx, c.ID, schema.ClaimRejected, testNow)
	s.NoError(err)
	s.Equal(schema.ClaimRejected, forced.Status)
	s.NotNil(forced.RejectedAt)

	claims, err := s.store.FindClaimsByNGO(ctx, otherNGOID, schema.ClaimRejected, 0)
	s.NoError(err)
	s.Len(claims, 1)

	n, err := s.store.DeleteClaimsByDonation(ctx, availableID)
	s.NoError(err)
	s.Equal(int64(1), n)
}

func (s *DonationTestSuite) TestFindNGOsNear() {
	ctx := context.Background()

	near := schema.NewLocation("Indiranagar", &schema.Coordinates{Lat: 12.9784, Lng: 77.6408})
	far := schema.NewLocation("Mysuru", &schema.Coordinates{Lat: 12.2958, Lng: 76.6394})

	for _, u := range []*schema.User{
		{Email: "near@ngo.test", Role: schema.RoleNGO, IsActive: true, Location: &near},
		{Email: "far@ngo.test", Role: schema.RoleNGO, IsActive: true, Location: &far},
		{Email: "inactive@ngo.test", Role: schema.RoleNGO, IsActive: false, Location: &near},
		{Email: "donor@test", Role: schema.RoleDonor, IsActive: true, Location: &near},
	} {
		s.NoError(s.store.InsertUser(ctx, u))
	}

	s.Equal(ErrUserExists, s.store.InsertUser(ctx, &schema.User{Email: "near@ngo.test", Role: schema.RoleNGO}))

	ngos, err := s.store.FindNGOsNear(ctx, schema.Coordinates{Lat: 12.9716, Lng: 77.5946}, 20)
	s.NoError(err)
	s.Len(ngos, 1)
	s.Equal("near@ngo.test", ngos[0].Email)
}

func (s *DonationTestSuite) TestUpdateUserLocation() {
	ctx := context.Background()

	u := &schema.User{Email: "ngo@test", Role: schema.RoleNGO, IsActive: true}
	s.NoError(s.store.InsertUser(ctx, u))

	radius := 35.0
	updated, err := s.store.UpdateUserLocation(ctx, u.ID, schema.NewLocation("HSR", &schema.Coordinates{Lat: 12.91, Lng: 77.64}), &radius, testNow)
	s.NoError(err)
	s.True(updated.Location.HasCoordinates())
	s.Equal(35.0, updated.NGODetails.OperationalRadius)

	_, err = s.store.UpdateUserLocation(ctx, primitive.NewObjectID(), schema.Location{}, nil, testNow)
	s.Equal(ErrUserNotFound, err)
}

func TestDonationTestSuite(t *testing.T) {
	uri := os.Getenv(testMongoURIEnv)
	if uri == "" {
		t.Skipf("%s is not set", testMongoURIEnv)
	}
	suite.Run(t, NewDonationTestSuite(uri, "zerowaste-test"))
}

package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zerowaste/zerowaste-api/claim"
	"github.com/zerowaste/zerowaste-api/matching"
	"github.com/zerowaste/zerowaste-api/schema"
)

func testDonation(status string, expiry time.Time) schema.Donation {
	return schema.Donation{
		ID:          primitive.NewObjectID(),
		DonorID:     primitive.NewObjectID(),
		DonorName:   "Corner Bakery",
		Title:       "Bread loaves",
		Description: "Twenty loaves baked this morning",
		Quantity:    "20 loaves",
		FoodType:    "bakery",
		ExpiryTime:  expiry,
		Location:    schema.NewLocation("12 Market Street", &schema.Coordinates{Lat: 12.97, Lng: 77.59}),
		Status:      status,
	}
}

func validDonationBody() map[string]interface{} {
	return map[string]interface{}{
		"title":       "Bread loaves",
		"description": "Twenty loaves baked this morning",
		"quantity":    "20 loaves",
		"foodType":    "bakery",
		"expiryTime":  testNow.Add(6 * time.Hour).Format(time.RFC3339),
		"pickupWindow": map[string]string{
			"start": testNow.Add(time.Hour).Format(time.RFC3339),
			"end":   testNow.Add(3 * time.Hour).Format(time.RFC3339),
		},
		"location": map[string]interface{}{
			"address": "12 Market Street",
		},
	}
}

type donationsBody struct {
	Success                 bool              `json:"success"`
	Donations               []schema.Donation `json:"donations"`
	Count                   int               `json:"count"`
	LocationFilteringActive bool              `json:"locationFilteringActive"`
	RadiusKm                float64           `json:"radiusKm"`
}

func TestCreateDonationResolvesAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	donor := testUser(schema.RoleDonor, nil)
	auth := ts.login(t, donor)

	ts.resolver.EXPECT().Resolve(gomock.Any(), "12 Market Street").Return(schema.Coordinates{Lat: 12.97, Lng: 77.59}, nil)
	ts.store.EXPECT().InsertDonation(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, d *schema.Donation) error {
		assert.Equal(t, donor.ID, d.DonorID)
		assert.Equal(t, schema.DonationAvailable, d.Status)
		assert.Nil(t, d.ClaimedBy)
		return nil
	})

	w := ts.do("POST", "/api/donations", auth, validDonationBody())
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Success  bool            `json:"success"`
		Donation schema.Donation `json:"donation"`
	}
	decodeBody(t, w, &body)
	assert.True(t, body.Success)
	assert.Equal(t, "Test donor", body.Donation.DonorName)
	assert.True(t, body.Donation.Location.HasCoordinates())
	assert.Equal(t, 77.59, body.Donation.Location.Coordinates.Lng)
}

func TestCreateDonationKeepsUnresolvedAddress(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	auth := ts.login(t, testUser(schema.RoleDonor, nil))

	ts.resolver.EXPECT().Resolve(gomock.Any(), gomock.Any()).Return(schema.Coordinates{}, errors.New("quota exceeded"))
	ts.store.EXPECT().InsertDonation(gomock.Any(), gomock.Any()).Return(nil)

	w := ts.do("POST", "/api/donations", auth, validDonationBody())
	assert.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var body struct {
		Donation schema.Donation `json:"donation"`
	}
	decodeBody(t, w, &body)
	assert.False(t, body.Donation.Location.HasCoordinates())
	assert.Equal(t, "12 Market Street", body.Donation.Location.Address)
}

func TestCreateDonationValidation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	auth := ts.login(t, testUser(schema.RoleDonor, nil))

	body := validDonationBody()
	body["title"] = "ab"
	body["pickupWindow"] = map[string]string{
		"start": testNow.Add(3 * time.Hour).Format(time.RFC3339),
		"end":   testNow.Add(time.Hour).Format(time.RFC3339),
	}

	w := ts.do("POST", "/api/donations", auth, body)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	resp := decodeError(t, w)
	assert.Equal(t, int64(1010), resp.Code)

	fields := map[string]bool{}
	for _, d := range resp.Details {
		fields[d.Field] = true
		assert.NotEmpty(t, d.Message)
	}
	assert.True(t, fields["title"], "%v", resp.Details)
	assert.True(t, fields["pickupWindow.end"], "%v", resp.Details)

	w = ts.do("POST", "/api/donations", auth, "not an object")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1011), decodeError(t, w).Code)
}

func TestDonationDetailShowsLazyExpiry(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	d := testDonation(schema.DonationAvailable, testNow.Add(-time.Minute))

	ts.store.EXPECT().GetDonation(gomock.Any(), d.ID).Return(&d, nil)
	ts.store.EXPECT().FindClaimsByDonation(gomock.Any(), d.ID).Return([]schema.ClaimRequest{}, nil)

	w := ts.do("GET", "/api/donations/"+d.ID.Hex(), "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Donation   schema.Donation `json:"donation"`
		ClaimCount int             `json:"claimCount"`
	}
	decodeBody(t, w, &body)
	assert.Equal(t, schema.DonationExpired, body.Donation.Status)
	assert.Equal(t, 0, body.ClaimCount)

	w = ts.do("GET", "/api/donations/not-an-id", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}

func TestListDonationsForNGO(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ngo := testUser(schema.RoleNGO, &schema.Coordinates{Lat: 12.9, Lng: 77.6})
	ngo.NGODetails.OperationalRadius = 15
	auth := ts.login(t, ngo)

	nearby := testDonation(schema.DonationAvailable, testNow.Add(time.Hour))
	ts.matcher.EXPECT().VisibleDonations(gomock.Any(), ngo.Principal()).Return(&matching.Visibility{
		Donations:               []schema.Donation{nearby},
		LocationFilteringActive: true,
		RadiusKm:                15,
	}, nil)

	w := ts.do("GET", "/api/donations", auth, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body donationsBody
	decodeBody(t, w, &body)
	assert.True(t, body.Success)
	assert.True(t, body.LocationFilteringActive)
	assert.Equal(t, 15.0, body.RadiusKm)
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, nearby.ID, body.Donations[0].ID)
}

func TestListDonationsForDonorIsGlobal(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	donor := testUser(schema.RoleDonor, &schema.Coordinates{Lat: 12.9, Lng: 77.6})
	auth := ts.login(t, donor)

	ts.matcher.EXPECT().VisibleDonations(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, p schema.Principal) (*matching.Visibility, error) {
		assert.Nil(t, p.Coordinates)
		return &matching.Visibility{}, nil
	})

	w := ts.do("GET", "/api/donations", auth, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body donationsBody
	decodeBody(t, w, &body)
	assert.False(t, body.LocationFilteringActive)
	assert.Equal(t, 0, body.Count)
}

func TestListDonationsFilters(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	auth := ts.login(t, testUser(schema.RoleDonor, nil))

	owner := primitive.NewObjectID()
	ts.store.EXPECT().FindDonationsByOwner(gomock.Any(), owner, int64(5)).Return([]schema.Donation{
		testDonation(schema.DonationPicked, testNow.Add(-time.Hour)),
	}, nil)

	w := ts.do("GET", "/api/donations?limit=5&donorId="+owner.Hex(), auth, nil)
	assert.Equal(t, http.StatusOK, w.Code)
	var body donationsBody
	decodeBody(t, w, &body)
	assert.Equal(t, schema.DonationPicked, body.Donations[0].Status)

	claimant := primitive.NewObjectID()
	ts.store.EXPECT().FindDonationsByClaimant(gomock.Any(), claimant, int64(0)).Return(nil, nil)
	w = ts.do("GET", "/api/donations?claimedBy="+claimant.Hex(), auth, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do("GET", "/api/donations?status=claimed", auth, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)

	w = ts.do("GET", "/api/donations?donorId=xyz", auth, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "donorId", resp.Details[0].Field)
	assert.Equal(t, "must be a valid id", resp.Details[0].Message)

	w = ts.do("GET", "/api/donations?limit=500&claimedBy="+claimant.Hex(), auth, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp = decodeError(t, w)
	assert.Equal(t, int64(1010), resp.Code)
	require.Len(t, resp.Details, 1)
	assert.Equal(t, "limit", resp.Details[0].Field)
	assert.Equal(t, "must be at most 100", resp.Details[0].Message)
}

func TestDonationsByLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)

	ts.matcher.EXPECT().DonationsNear(gomock.Any(), 12.9, 77.5, defaultLocationRadiusKm).Return([]schema.Donation{
		testDonation(schema.DonationAvailable, testNow.Add(time.Hour)),
	}, nil)
	w := ts.do("GET", "/api/donations/location?lat=12.9&lng=77.5", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body donationsBody
	decodeBody(t, w, &body)
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, defaultLocationRadiusKm, body.RadiusKm)

	ts.matcher.EXPECT().DonationsNear(gomock.Any(), 95.0, 77.5, 3.0).Return(nil, matching.ErrInvalidCoordinates)
	w = ts.do("GET", "/api/donations/location?lat=95&lng=77.5&radius=3", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1300), decodeError(t, w).Code)

	for _, radius := range []string{"-1", "0", "0.05", "150"} {
		w = ts.do("GET", "/api/donations/location?lat=12.9&lng=77.5&radius="+radius, "", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, radius)
		resp := decodeError(t, w)
		assert.Equal(t, int64(1010), resp.Code, radius)
		require.Len(t, resp.Details, 1, radius)
		assert.Equal(t, "radius", resp.Details[0].Field)
	}

	ts.matcher.EXPECT().DonationsNear(gomock.Any(), 12.9, 77.5, 100.0).Return(nil, nil)
	w = ts.do("GET", "/api/donations/location?lat=12.9&lng=77.5&radius=100", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = ts.do("GET", "/api/donations/location?lng=77.5", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}

func TestNearbyNGOs(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ngo := testUser(schema.RoleNGO, &schema.Coordinates{Lat: 12.91, Lng: 77.5})

	ts.matcher.EXPECT().NearbyNGOs(gomock.Any(), 12.9, 77.5, 20.0).Return([]matching.NearbyNGO{
		{User: *ngo, DistanceKm: 1.11},
	}, nil)

	w := ts.do("GET", "/api/auth/ngos/nearby?lat=12.9&lng=77.5", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body struct {
		NGOs  []matching.NearbyNGO `json:"ngos"`
		Count int                  `json:"count"`
	}
	decodeBody(t, w, &body)
	assert.Equal(t, 1, body.Count)
	assert.Equal(t, 1.11, body.NGOs[0].DistanceKm)
	assert.Equal(t, ngo.ID, body.NGOs[0].ID)
}

func TestUpdateAndDeleteDonation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	donor := testUser(schema.RoleDonor, nil)
	auth := ts.login(t, donor)
	d := testDonation(schema.DonationAvailable, testNow.Add(time.Hour))

	ts.coordinator.EXPECT().UpdateDonation(gomock.Any(), d.ID, donor.ID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ primitive.ObjectID, details schema.DonationDetails) (*schema.Donation, error) {
			assert.Equal(t, "30 loaves", *details.Quantity)
			assert.Nil(t, details.Title)
			d.Quantity = *details.Quantity
			return &d, nil
		})
	w := ts.do("PUT", "/api/donations/"+d.ID.Hex(), auth, map[string]string{"quantity": " 30 loaves "})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	ts.coordinator.EXPECT().UpdateDonation(gomock.Any(), d.ID, donor.ID, gomock.Any()).Return(nil, claim.ErrInvalidState)
	w = ts.do("PUT", "/api/donations/"+d.ID.Hex(), auth, map[string]string{"quantity": "30 loaves"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1203), decodeError(t, w).Code)

	ts.coordinator.EXPECT().DeleteDonation(gomock.Any(), d.ID, donor.ID).Return(errors.Wrap(claim.ErrForbidden, "delete"))
	w = ts.do("DELETE", "/api/donations/"+d.ID.Hex(), auth, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1202), decodeError(t, w).Code)

	ts.coordinator.EXPECT().DeleteDonation(gomock.Any(), d.ID, donor.ID).Return(nil)
	w = ts.do("DELETE", "/api/donations/"+d.ID.Hex(), auth, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDonationStats(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ts.store.EXPECT().DonationStats(gomock.Any(), testNow).Return(&schema.DonationStats{}, nil)

	w := ts.do("GET", "/api/donations/stats", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

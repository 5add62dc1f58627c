package api

import (
	"net/http"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zerowaste/zerowaste-api/claim"
	"github.com/zerowaste/zerowaste-api/schema"
)

func TestClaimDonation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ngo := testUser(schema.RoleNGO, nil)
	auth := ts.login(t, ngo)

	d := testDonation(schema.DonationClaimed, testNow.Add(-time.Minute))
	d.ClaimedBy = &ngo.ID
	request := schema.ClaimRequest{
		ID:         primitive.NewObjectID(),
		DonationID: d.ID,
		NGOID:      ngo.ID,
		NGOName:    ngo.DisplayName,
		Status:     schema.ClaimApproved,
	}
	ts.coordinator.EXPECT().Claim(gomock.Any(), d.ID, ngo.ID, ngo.DisplayName).Return(&claim.Result{
		Donation: d,
		Claim:    request,
	}, nil)

	w := ts.do("POST", "/api/donations/"+d.ID.Hex()+"/claim", auth, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Success  bool                `json:"success"`
		Donation schema.Donation     `json:"donation"`
		Claim    schema.ClaimRequest `json:"claim"`
	}
	decodeBody(t, w, &body)
	assert.True(t, body.Success)
	// a claimed donation keeps its status past the deadline
	assert.Equal(t, schema.DonationClaimed, body.Donation.Status)
	assert.Equal(t, ngo.ID, *body.Donation.ClaimedBy)
	assert.Equal(t, schema.ClaimApproved, body.Claim.Status)
}

func TestClaimDonationErrors(t *testing.T) {
	cases := []struct {
		err    error
		status int
		code   int64
	}{
		{claim.ErrNotFound, http.StatusNotFound, 1200},
		{claim.ErrInvalidState, http.StatusBadRequest, 1203},
		{claim.ErrExpired, http.StatusBadRequest, 1204},
		{claim.ErrDuplicateClaim, http.StatusBadRequest, 1205},
		{claim.ErrConflict, http.StatusConflict, 1206},
		{errors.Wrap(claim.ErrConflict, "claim donation"), http.StatusConflict, 1206},
		{errors.New("connection reset"), http.StatusInternalServerError, 999},
	}

	for _, c := range cases {
		t.Run(c.err.Error(), func(t *testing.T) {
			ctl := gomock.NewController(t)
			defer ctl.Finish()

			ts := newTestServer(t, ctl)
			auth := ts.login(t, testUser(schema.RoleNGO, nil))
			id := primitive.NewObjectID()

			ts.coordinator.EXPECT().Claim(gomock.Any(), id, gomock.Any(), gomock.Any()).Return(nil, c.err)

			w := ts.do("POST", "/api/donations/"+id.Hex()+"/claim", auth, nil)
			assert.Equal(t, c.status, w.Code)
			assert.Equal(t, c.code, decodeError(t, w).Code)
		})
	}
}

func TestPickupDonation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ngo := testUser(schema.RoleNGO, nil)
	auth := ts.login(t, ngo)

	d := testDonation(schema.DonationPicked, testNow.Add(time.Hour))
	picked := testNow
	d.ClaimedBy = &ngo.ID
	d.PickedAt = &picked

	ts.coordinator.EXPECT().MarkPicked(gomock.Any(), d.ID, ngo.ID).Return(&d, nil)
	w := ts.do("POST", "/api/donations/"+d.ID.Hex()+"/pickup", auth, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	ts.coordinator.EXPECT().MarkPicked(gomock.Any(), d.ID, ngo.ID).Return(nil, claim.ErrForbidden)
	w = ts.do("POST", "/api/donations/"+d.ID.Hex()+"/pickup", auth, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, int64(1202), decodeError(t, w).Code)
}

func TestCancelClaim(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ngo := testUser(schema.RoleNGO, nil)
	auth := ts.login(t, ngo)

	id := primitive.NewObjectID()
	d := testDonation(schema.DonationAvailable, testNow.Add(time.Hour))
	ts.coordinator.EXPECT().CancelClaim(gomock.Any(), id, ngo.ID).Return(&claim.CancelResult{
		Claim:    schema.ClaimRequest{ID: id, Status: schema.ClaimCancelled},
		Donation: &d,
	}, nil)

	w := ts.do("POST", "/api/donations/claims/"+id.Hex()+"/cancel", auth, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Claim    schema.ClaimRequest `json:"claim"`
		Donation *schema.Donation    `json:"donation"`
	}
	decodeBody(t, w, &body)
	assert.Equal(t, schema.ClaimCancelled, body.Claim.Status)
	assert.Equal(t, schema.DonationAvailable, body.Donation.Status)

	ts.coordinator.EXPECT().CancelClaim(gomock.Any(), id, ngo.ID).Return(nil, claim.ErrNotFound)
	w = ts.do("POST", "/api/donations/claims/"+id.Hex()+"/cancel", auth, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, int64(1201), decodeError(t, w).Code)

	ts.coordinator.EXPECT().CancelClaim(gomock.Any(), id, ngo.ID).Return(nil, claim.ErrInvalidState)
	w = ts.do("POST", "/api/donations/claims/"+id.Hex()+"/cancel", auth, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1203), decodeError(t, w).Code)
}

func TestMyClaims(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ngo := testUser(schema.RoleNGO, nil)
	auth := ts.login(t, ngo)

	ts.store.EXPECT().FindClaimsByNGO(gomock.Any(), ngo.ID, schema.ClaimApproved, int64(20)).Return([]schema.ClaimRequest{
		{ID: primitive.NewObjectID(), NGOID: ngo.ID, Status: schema.ClaimApproved},
	}, nil)
	ts.store.EXPECT().FindDonationsByClaimant(gomock.Any(), ngo.ID, int64(20), schema.DonationClaimed).Return(nil, nil)

	w := ts.do("GET", "/api/donations/ngo/my-claims?status=approved&limit=20", auth, nil)
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var body struct {
		Claims []schema.ClaimRequest `json:"claims"`
		Count  int                   `json:"count"`
	}
	decodeBody(t, w, &body)
	assert.Equal(t, 1, body.Count)

	w = ts.do("GET", "/api/donations/ngo/my-claims?status=done", auth, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)

	w = ts.do("GET", "/api/donations/ngo/my-claims?limit=101", auth, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, int64(1010), decodeError(t, w).Code)
}

func TestMyClaimedDonations(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ngo := testUser(schema.RoleNGO, nil)
	auth := ts.login(t, ngo)

	d := testDonation(schema.DonationClaimed, testNow.Add(time.Hour))
	d.ClaimedBy = &ngo.ID
	ts.store.EXPECT().FindDonationsByClaimant(gomock.Any(), ngo.ID, int64(10)).Return([]schema.Donation{d}, nil)

	w := ts.do("GET", "/api/donations/ngo/my-donations?limit=10", auth, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body donationsBody
	decodeBody(t, w, &body)
	assert.Equal(t, 1, body.Count)
}

func TestUpdateUserLocation(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	ts := newTestServer(t, ctl)
	ngo := testUser(schema.RoleNGO, nil)
	auth := ts.login(t, ngo)

	ts.store.EXPECT().UpdateUserLocation(gomock.Any(), ngo.ID, gomock.Any(), gomock.Any(), testNow).
		DoAndReturn(func(_ interface{}, _ primitive.ObjectID, loc schema.Location, radius *float64, _ time.Time) (*schema.User, error) {
			assert.Equal(t, 12.5, loc.Coordinates.Lat)
			assert.Equal(t, 30.0, *radius)
			u := *ngo
			u.Location = &loc
			u.NGODetails.OperationalRadius = *radius
			return &u, nil
		})

	w := ts.do("PATCH", "/api/users/me/location", auth, map[string]interface{}{
		"location": map[string]interface{}{
			"address":     "7 Harbour Road",
			"coordinates": map[string]float64{"lat": 12.5, "lng": 77.1},
		},
		"operationalRadius": 30,
	})
	assert.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = ts.do("PATCH", "/api/users/me/location", auth, map[string]interface{}{
		"location": map[string]interface{}{
			"address":     "7 Harbour Road",
			"coordinates": map[string]float64{"lat": 120, "lng": 77.1},
		},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeError(t, w)
	assert.Equal(t, int64(1010), resp.Code)
	assert.Equal(t, "location.coordinates.lat", resp.Details[0].Field)
}

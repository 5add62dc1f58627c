package matching

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"github.com/zerowaste/zerowaste-api/geo"
	"github.com/zerowaste/zerowaste-api/schema"
)

const matchingLogPrefix = "matching"

var (
	ErrInvalidCoordinates = errors.New("coordinates out of range")
	ErrInvalidRadius      = errors.New("radius must be a positive number of kilometers")
)

// DonationSource lists the available donations
type DonationSource interface {
	FindAvailableDonations(ctx context.Context, now time.Time, excludeExpired bool) ([]schema.Donation, error)
}

// NGOSource returns candidate NGOs around a point. The result may contain
// records slightly outside the radius.
type NGOSource interface {
	FindNGOsNear(ctx context.Context, center schema.Coordinates, radiusKm float64) ([]schema.User, error)
}

// Visibility is the set of donations an NGO can see
type Visibility struct {
	Donations []schema.Donation `json:"donations"`
	// LocationFilteringActive is false when the principal has no coordinates
	// and the global view was returned
	LocationFilteringActive bool    `json:"locationFilteringActive"`
	RadiusKm                float64 `json:"radiusKm,omitempty"`
}

// NearbyNGO is an NGO with its distance from the query point
type NearbyNGO struct {
	schema.User
	DistanceKm float64 `json:"distanceKm"`
}

// Service computes which donations are visible from where
type Service struct {
	donations DonationSource
	ngos      NGOSource
	now       func() time.Time

	defaultRadiusKm float64
}

func NewService(donations DonationSource, ngos NGOSource) *Service {
	return &Service{
		donations: donations,
		ngos:      ngos,
		now:       time.Now,

		defaultRadiusKm: schema.DefaultOperationalRadiusKm,
	}
}

// WithClock replaces the time source
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithDefaultRadius sets the radius used for NGOs that never configured one
func (s *Service) WithDefaultRadius(km float64) *Service {
	if km > 0 {
		s.defaultRadiusKm = km
	}
	return s
}

// VisibleDonations returns the unexpired available donations within the
// principal's operational radius, most urgent first. A principal without
// coordinates gets the global list.
func (s *Service) VisibleDonations(ctx context.Context, p schema.Principal) (*Visibility, error) {
	now := s.now()

	available, err := s.donations.FindAvailableDonations(ctx, now, true)
	if err != nil {
		return nil, err
	}

	if p.Coordinates == nil {
		log.WithFields(log.Fields{
			"prefix": matchingLogPrefix,
			"user":   p.ID.Hex(),
		}).Debug("no coordinates for principal, returning global view")

		sortByUrgency(available)
		return &Visibility{
			Donations:               available,
			LocationFilteringActive: false,
		}, nil
	}

	radius := p.RadiusOr(s.defaultRadiusKm)
	visible := filterWithin(available, *p.Coordinates, radius)
	sortByUrgency(visible)

	return &Visibility{
		Donations:               visible,
		LocationFilteringActive: true,
		RadiusKm:                radius,
	}, nil
}

// DonationsNear returns unexpired available donations within radiusKm of a point
func (s *Service) DonationsNear(ctx context.Context, lat, lng, radiusKm float64) ([]schema.Donation, error) {
	if err := validateQuery(lat, lng, radiusKm); err != nil {
		return nil, err
	}

	available, err := s.donations.FindAvailableDonations(ctx, s.now(), true)
	if err != nil {
		return nil, err
	}

	near := filterWithin(available, schema.Coordinates{Lat: lat, Lng: lng}, radiusKm)
	sortByUrgency(near)
	return near, nil
}

// NearbyNGOs returns active NGOs within radiusKm of a point, closest first
func (s *Service) NearbyNGOs(ctx context.Context, lat, lng, radiusKm float64) ([]NearbyNGO, error) {
	if err := validateQuery(lat, lng, radiusKm); err != nil {
		return nil, err
	}

	center := schema.Coordinates{Lat: lat, Lng: lng}
	candidates, err := s.ngos.FindNGOsNear(ctx, center, radiusKm)
	if err != nil {
		return nil, err
	}

	result := make([]NearbyNGO, 0, len(candidates))
	for _, u := range candidates {
		if !u.Location.HasCoordinates() {
			continue
		}
		c := u.Location.Coordinates
		distance := geo.DistanceKm(lat, lng, c.Lat, c.Lng)
		if distance > radiusKm {
			continue
		}
		result = append(result, NearbyNGO{User: u, DistanceKm: math.Round(distance*100) / 100})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].DistanceKm < result[j].DistanceKm
	})

	return result, nil
}

func validateQuery(lat, lng, radiusKm float64) error {
	if !geo.ValidCoordinates(lat, lng) {
		return errors.Wrapf(ErrInvalidCoordinates, "lat=%f lng=%f", lat, lng)
	}
	if math.IsNaN(radiusKm) || math.IsInf(radiusKm, 0) || radiusKm <= 0 {
		return errors.Wrapf(ErrInvalidRadius, "radius=%f", radiusKm)
	}
	return nil
}

// filterWithin keeps donations whose coordinates lie within radiusKm of
// center. Donations without coordinates cannot be placed and are dropped.
func filterWithin(donations []schema.Donation, center schema.Coordinates, radiusKm float64) []schema.Donation {
	result := make([]schema.Donation, 0, len(donations))
	for _, d := range donations {
		if !d.Location.HasCoordinates() {
			continue
		}
		c := d.Location.Coordinates
		if geo.WithinRadius(center.Lat, center.Lng, c.Lat, c.Lng, radiusKm) {
			result = append(result, d)
		}
	}
	return result
}

func sortByUrgency(donations []schema.Donation) {
	sort.SliceStable(donations, func(i, j int) bool {
		return donations[i].ExpiryTime.Before(donations[j].ExpiryTime)
	})
}

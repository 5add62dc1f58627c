package geo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/zerowaste/zerowaste-api/external/geocoder"
	"github.com/zerowaste/zerowaste-api/schema"
)

var (
	ErrNoGeoInfoFound = fmt.Errorf("no geo information found")
	ErrEmptyAddress   = fmt.Errorf("empty address")
)

// AddressResolver - interface for resolving an address to coordinates
type AddressResolver interface {
	Resolve(ctx context.Context, address string) (schema.Coordinates, error)
}

type MultipleResolverErrors struct {
	errors []error
}

func (e *MultipleResolverErrors) Error() string {
	errorStrings := make([]string, len(e.errors))
	for i, err := range e.errors {
		errorStrings[i] = fmt.Sprintf("#%d: %s", i, err.Error())
	}
	return strings.Join(errorStrings, "\n")
}

func NewMultipleResolverErrors(errors []error) *MultipleResolverErrors {
	return &MultipleResolverErrors{
		errors: errors,
	}
}

// GeocodingAddressResolver asks google maps for the first match
type GeocodingAddressResolver struct {
	geocoder geocoder.Geocoder
}

func NewGeocodingAddressResolver(g geocoder.Geocoder) *GeocodingAddressResolver {
	return &GeocodingAddressResolver{
		geocoder: g,
	}
}

func (g *GeocodingAddressResolver) Resolve(ctx context.Context, address string) (schema.Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return schema.Coordinates{}, ErrEmptyAddress
	}

	results, err := g.geocoder.Geocode(ctx, address)
	if nil != err {
		return schema.Coordinates{}, err
	}

	if len(results) == 0 {
		return schema.Coordinates{}, ErrNoGeoInfoFound
	}

	l := results[0].Geometry.Location
	if !ValidCoordinates(l.Lat, l.Lng) {
		return schema.Coordinates{}, ErrNoGeoInfoFound
	}

	return schema.Coordinates{Lat: l.Lat, Lng: l.Lng}, nil
}

// MongodbAddressResolver reuses coordinates already stored for the same
// address on a donation or a user
type MongodbAddressResolver struct {
	client   *mongo.Client
	database string
}

func NewMongodbAddressResolver(client *mongo.Client, database string) *MongodbAddressResolver {
	return &MongodbAddressResolver{
		client:   client,
		database: database,
	}
}

func (r *MongodbAddressResolver) Resolve(ctx context.Context, address string) (schema.Coordinates, error) {
	address = strings.TrimSpace(address)
	if address == "" {
		return schema.Coordinates{}, ErrEmptyAddress
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	query := bson.M{
		"location.address":     address,
		"location.coordinates": bson.M{"$exists": true},
	}
	opts := options.FindOne().
		SetProjection(bson.M{"location": 1}).
		SetSort(bson.M{"updated_at": -1})

	for _, collection := range []string{schema.DonationCollection, schema.UserCollection} {
		var record struct {
			Location schema.Location `bson:"location"`
		}

		err := r.client.Database(r.database).Collection(collection).FindOne(ctx, query, opts).Decode(&record)
		if err == mongo.ErrNoDocuments {
			continue
		}
		if err != nil {
			return schema.Coordinates{}, err
		}
		if record.Location.HasCoordinates() {
			return *record.Location.Coordinates, nil
		}
	}

	return schema.Coordinates{}, ErrNoGeoInfoFound
}

// MultipleAddressResolver tries each resolver in order
type MultipleAddressResolver struct {
	resolvers []AddressResolver
}

func NewMultipleAddressResolver(resolvers ...AddressResolver) *MultipleAddressResolver {
	return &MultipleAddressResolver{
		resolvers: resolvers,
	}
}

func (r *MultipleAddressResolver) Resolve(ctx context.Context, address string) (schema.Coordinates, error) {
	var errors []error
	for _, resolver := range r.resolvers {
		result, err := resolver.Resolve(ctx, address)
		if err != nil {
			errors = append(errors, err)
		} else {
			return result, nil
		}
	}

	return schema.Coordinates{}, NewMultipleResolverErrors(errors)
}

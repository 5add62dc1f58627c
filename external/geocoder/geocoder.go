package geocoder

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"googlemaps.github.io/maps"
)

const (
	logPrefix      = "geocoder"
	defaultTimeout = 5 * time.Second
)

// Geocoder - interface to resolve free text addresses with google maps
type Geocoder interface {
	Geocode(ctx context.Context, address string) ([]maps.GeocodingResult, error)
}

type geocoder struct {
	client *maps.Client
}

func (g geocoder) Geocode(ctx context.Context, address string) ([]maps.GeocodingResult, error) {
	log.WithFields(log.Fields{
		"prefix":  logPrefix,
		"address": address,
	}).Info("query geocoding")

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	return g.client.Geocode(ctx, &maps.GeocodingRequest{
		Address:  address,
		Language: "en",
	})
}

// New - new Geocoder interface
func New(apiKey string) (Geocoder, error) {
	client, err := maps.NewClient(maps.WithAPIKey(apiKey))
	if err != nil {
		log.WithFields(log.Fields{
			"prefix": logPrefix,
			"error":  err,
		}).Error("new map client")

		return nil, err
	}

	return &geocoder{
		client: client,
	}, nil
}

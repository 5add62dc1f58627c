package schema

// Coordinates is a latitude/longitude pair in degrees
type Coordinates struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// GeoJSON - mongo location format
type GeoJSON struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"`
}

// NewPoint returns a GeoJSON point. Mongo expects [longitude, latitude].
func NewPoint(c Coordinates) *GeoJSON {
	return &GeoJSON{
		Type:        "Point",
		Coordinates: []float64{c.Lng, c.Lat},
	}
}

// Location is an address with optional coordinates. Point mirrors
// Coordinates for the 2dsphere index and is never serialized to clients.
type Location struct {
	Address     string       `bson:"address" json:"address"`
	Coordinates *Coordinates `bson:"coordinates,omitempty" json:"coordinates,omitempty"`
	Point       *GeoJSON     `bson:"point,omitempty" json:"-"`
}

// NewLocation builds a location and keeps Point in sync with coordinates
func NewLocation(address string, coordinates *Coordinates) Location {
	l := Location{Address: address}
	if coordinates != nil {
		c := *coordinates
		l.Coordinates = &c
		l.Point = NewPoint(c)
	}
	return l
}

// HasCoordinates tells if the location can take part in distance filtering
func (l *Location) HasCoordinates() bool {
	return l != nil && l.Coordinates != nil
}

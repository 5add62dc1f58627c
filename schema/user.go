package schema

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	UserCollection = "users"
)

const (
	RoleDonor = "donor"
	RoleNGO   = "ngo"
)

// DefaultOperationalRadiusKm is used when an NGO never set its radius
const DefaultOperationalRadiusKm = 20.0

type NGODetails struct {
	Description       string  `bson:"description" json:"description"`
	ContactNumber     string  `bson:"contact_number" json:"contactNumber"`
	Website           string  `bson:"website" json:"website"`
	OperationalRadius float64 `bson:"operational_radius" json:"operationalRadius"`
}

// User is a donor or NGO account. Credentials live with the auth service and
// are never loaded here.
type User struct {
	ID          primitive.ObjectID `bson:"_id" json:"id"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"display_name" json:"displayName"`
	Role        string             `bson:"role" json:"role"`
	PhotoURL    *string            `bson:"photo_url,omitempty" json:"photoURL,omitempty"`
	Location    *Location          `bson:"location,omitempty" json:"location,omitempty"`
	IsActive    bool               `bson:"is_active" json:"isActive"`
	NGODetails  NGODetails         `bson:"ngo_details" json:"ngoDetails"`
	CreatedAt   time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updated_at" json:"updatedAt"`
}

// Principal returns the authenticated view of the user used by the claim
// coordinator and the matching service
func (u *User) Principal() Principal {
	p := Principal{
		ID:                  u.ID,
		Name:                u.DisplayName,
		Role:                u.Role,
		OperationalRadiusKm: u.NGODetails.OperationalRadius,
	}
	if u.Location.HasCoordinates() {
		c := *u.Location.Coordinates
		p.Coordinates = &c
	}
	return p
}

// Principal is an authenticated caller
type Principal struct {
	ID                  primitive.ObjectID
	Name                string
	Role                string
	Coordinates         *Coordinates
	OperationalRadiusKm float64
}

// RadiusOr returns the operational radius, or fallback when unset
func (p Principal) RadiusOr(fallback float64) float64 {
	if p.OperationalRadiusKm > 0 {
		return p.OperationalRadiusKm
	}
	return fallback
}

func (p Principal) IsNGO() bool {
	return p.Role == RoleNGO
}

func (p Principal) IsDonor() bool {
	return p.Role == RoleDonor
}

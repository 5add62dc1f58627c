package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/zerowaste/zerowaste-api/schema"
)

const defaultLocationRadiusKm = 10.0

type locationQuery struct {
	Lat    *float64 `form:"lat" binding:"required"`
	Lng    *float64 `form:"lng" binding:"required"`
	Radius *float64 `form:"radius" binding:"omitempty,gte=0.1,lte=100"`
}

// bindQuery binds the query string and aborts with the field errors on failure
func bindQuery(c *gin.Context, obj interface{}) bool {
	if err := c.ShouldBindQuery(obj); err != nil {
		if details := fieldErrors(err); details != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters.withDetails(details), err)
		} else {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		}
		return false
	}
	return true
}

// bindLocationQuery parses lat, lng and radius from the query string.
// Coordinate range checks are left to the matching service.
func bindLocationQuery(c *gin.Context, defaultRadius float64) (lat, lng, radius float64, ok bool) {
	var params locationQuery
	if !bindQuery(c, &params) {
		return 0, 0, 0, false
	}

	radius = defaultRadius
	if params.Radius != nil {
		radius = *params.Radius
	}

	return *params.Lat, *params.Lng, radius, true
}

// configuredRadius reads a radius in km from the config, with a fallback
func configuredRadius(key string, fallback float64) float64 {
	if r := viper.GetFloat64(key); r > 0 {
		return r
	}
	return fallback
}

// objectIDParam reads a path parameter holding an object id
func objectIDParam(c *gin.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters.withDetails([]FieldError{
			{Field: name, Message: "must be a valid id"},
		}), err)
		return primitive.NilObjectID, false
	}
	return id, true
}

func (s *Server) nearbyNGOs(c *gin.Context) {
	lat, lng, radius, ok := bindLocationQuery(c, configuredRadius("matching.default_radius", schema.DefaultOperationalRadiusKm))
	if !ok {
		return
	}

	ngos, err := s.matcher.NearbyNGOs(c, lat, lng, radius)
	if err != nil {
		abortWithDomainError(c, err)
		return
	}

	success(c, http.StatusOK, gin.H{
		"ngos":     ngos,
		"count":    len(ngos),
		"radiusKm": radius,
	})
}

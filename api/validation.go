package api

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validationOnce sync.Once

// registerValidations adds the custom rules to gin's validator
func registerValidations() {
	validationOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			tag, ok := fld.Tag.Lookup("json")
			if !ok {
				tag = fld.Tag.Get("form")
			}
			name := strings.SplitN(tag, ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		v.RegisterValidation("objectid", func(fl validator.FieldLevel) bool {
			return primitive.IsValidObjectID(fl.Field().String())
		})
		v.RegisterStructValidation(pickupWindowValidation, pickupWindowRequest{})
		v.RegisterStructValidation(coordinatesValidation, coordinatesRequest{})
	})
}

func pickupWindowValidation(sl validator.StructLevel) {
	w := sl.Current().Interface().(pickupWindowRequest)
	if w.Start != nil && w.End != nil && w.End.Before(*w.Start) {
		sl.ReportError(w.End, "end", "End", "gtefield", "Start")
	}
}

func coordinatesValidation(sl validator.StructLevel) {
	c := sl.Current().Interface().(coordinatesRequest)
	if c.Lat != nil && (*c.Lat < -90 || *c.Lat > 90) {
		sl.ReportError(c.Lat, "lat", "Lat", "latitude", "")
	}
	if c.Lng != nil && (*c.Lng < -180 || *c.Lng > 180) {
		sl.ReportError(c.Lng, "lng", "Lng", "longitude", "")
	}
}

// fieldErrors converts binding errors into field level messages. It returns
// nil for errors that are not validation failures.
func fieldErrors(err error) []FieldError {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	result := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		result = append(result, FieldError{
			Field:   jsonPath(e.Namespace()),
			Message: validationMessage(e),
		})
	}
	return result
}

// jsonPath turns "donationRequest.pickupWindow.end" into "pickupWindow.end"
func jsonPath(namespace string) string {
	if i := strings.Index(namespace, "."); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func validationMessage(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", e.Param())
		}
		return fmt.Sprintf("must be at least %s", e.Param())
	case "max":
		if e.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", e.Param())
		}
		return fmt.Sprintf("must be at most %s", e.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", e.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", e.Param())
	case "lte":
		return fmt.Sprintf("must not exceed %s", e.Param())
	case "gtefield":
		return "must not be before " + strings.ToLower(e.Param())
	case "latitude":
		return "must be between -90 and 90"
	case "longitude":
		return "must be between -180 and 180"
	case "url":
		return "must be a valid URL"
	case "oneof":
		return "must be one of " + e.Param()
	case "objectid":
		return "must be a valid id"
	}
	return "is invalid"
}

package service

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/maxviazov/storefront-catalog-service/internal/model"
	"github.com/maxviazov/storefront-catalog-service/internal/repository"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their wire names so clients can map errors back to inputs
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return f.Name
		}
		return name
	})
	return v
}

// validateStruct runs struct tags and converts failures into an aggregated invalid input error.
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	fe := make([]FieldError, 0, len(verrs))
	for _, e := range verrs {
		fe = append(fe, FieldError{Field: e.Field(), Message: describeTag(e)})
	}
	return NewInvalidInputError(fe)
}

func describeTag(e validator.FieldError) string {
	switch e.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be >= %s", e.Param())
	case "max":
		return fmt.Sprintf("must be <= %s", e.Param())
	default:
		return fmt.Sprintf("failed %s validation", e.Tag())
	}
}

// toFilter maps request params onto the storage filter. Page index below 1
// reads as the first page. A non-positive page size is passed through and the
// repository substitutes its default limit, starting from the first row.
func toFilter(p model.ProductSpecParams) repository.ProductFilter {
	f := repository.ProductFilter{
		BrandID: p.BrandID,
		TypeID:  p.TypeID,
		Page:    repository.Page{Limit: p.PageSize()},
	}
	if p.Sort != nil {
		f.Sort = *p.Sort
	}
	if p.Search != nil {
		f.Search = strings.TrimSpace(*p.Search)
	}

	index := p.PageIndex
	if index < 1 {
		index = 1
	}
	if size := p.PageSize(); size > 0 {
		skip := index - 1
		if skip > math.MaxInt/size {
			f.Page.Offset = math.MaxInt
		} else {
			f.Page.Offset = skip * size
		}
	}
	return f
}

func validID(field string, id int64) error {
	if id <= 0 {
		return NewInvalidInputError([]FieldError{{Field: field, Message: "must be > 0"}})
	}
	return nil
}

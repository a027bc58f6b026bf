package validation

import (
	"fmt"
	"sync"

	"standplanner/internal/layout"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// Register adds the planner's enum validators to gin's binding engine:
// spotsize, zonecategory, tool and appstatus. Safe to call more than once;
// every call reports the outcome of the first.
func Register() error {
	registerOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			registerErr = fmt.Errorf("unexpected binding validator engine %T", binding.Validator.Engine())
			return
		}
		registerErr = RegisterOn(v)
	})
	return registerErr
}

// RegisterOn adds the validators to v.
func RegisterOn(v *validator.Validate) error {
	validators := map[string]validator.Func{
		"spotsize":     validateSpotSize,
		"zonecategory": validateZoneCategory,
		"tool":         validateTool,
		"appstatus":    validateAppStatus,
	}
	for tag, fn := range validators {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

func validateSpotSize(fl validator.FieldLevel) bool {
	_, err := layout.ParseSpotSize(fl.Field().String())
	return err == nil
}

func validateZoneCategory(fl validator.FieldLevel) bool {
	_, err := layout.ParseZoneCategory(fl.Field().String())
	return err == nil
}

func validateTool(fl validator.FieldLevel) bool {
	_, err := layout.ParseTool(fl.Field().String())
	return err == nil
}

func validateAppStatus(fl validator.FieldLevel) bool {
	_, err := layout.ParseAppStatus(fl.Field().String())
	return err == nil
}

package footballdata

import "github.com/go-playground/validator/v10"

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterStructValidation(validateFullTime, fullTimePayload{})
	return v
}

// validateFullTime rejects a score where only one side is known.
func validateFullTime(sl validator.StructLevel) {
	ft := sl.Current().Interface().(fullTimePayload)
	if (ft.Home == nil) != (ft.Away == nil) {
		sl.ReportError(ft.Home, "Home", "home", "fulltime_pair", "")
		sl.ReportError(ft.Away, "Away", "away", "fulltime_pair", "")
	}
}

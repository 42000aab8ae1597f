package usecases

import "github.com/volatiletech/null/v8"

func setOptional(dst *null.String, v string) {
	if v != "" {
		dst.SetValid(v)
	}
}

func applyString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func applyNullString(dst *null.String, v *string) {
	if v != nil {
		dst.SetValid(*v)
	}
}

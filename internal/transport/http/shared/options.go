package shared

import "hrms/internal/format"

type SelectOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Disabled bool   `json:"disabled,omitempty"`
}

// EnumOptions lists enum values with display labels such as "Full time".
func EnumOptions[T ~string](values []T) []SelectOption {
	out := make([]SelectOption, 0, len(values))
	for _, v := range values {
		out = append(out, SelectOption{Value: string(v), Label: format.EnumLabel(string(v))})
	}
	return out
}

package dto

// StationListRequest - параметры выборки станций
type StationListRequest struct {
	States   []string `query:"states" validate:"omitempty,dive,us_state"`
	MinPrice *float64 `query:"min_price" validate:"omitempty,min=0"`
	MaxPrice *float64 `query:"max_price" validate:"omitempty,min=0"`
	Page     int      `query:"page" validate:"omitempty,min=1"`
	Limit    int      `query:"limit" validate:"omitempty,min=1,max=500"`
}

package packets

// SelectCityRequest switches the prayer schedule to another city.
type SelectCityRequest struct {
	CityID string `json:"city_id" binding:"required"`
}

package packets

// SelectCategoryRequest opens one dua category.
type SelectCategoryRequest struct {
	CategoryID int `json:"category_id" binding:"required"`
}

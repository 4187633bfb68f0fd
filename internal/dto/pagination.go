package dto

// PageParams defines the common limit/offset query parameters.
type PageParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

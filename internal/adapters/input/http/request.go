package http

type (
	// QueryConfirmationRequest struct - HTTP query request DTO for the
	// confirmation list. order_by is whitelisted here so raw query input
	// never reaches the ORDER BY clause.
	QueryConfirmationRequest struct {
		UserID   *string `json:"user_id" form:"user_id" query:"user_id"`
		FullName *string `json:"full_name" form:"full_name" query:"full_name"`

		Limit   *int    `json:"limit,omitempty" form:"limit" query:"limit" validate:"omitempty,gte=1,lte=500"`
		Page    *int    `json:"page,omitempty" form:"page" query:"page" validate:"omitempty,gte=1"`
		OrderBy *string `json:"order_by,omitempty" form:"order_by" query:"order_by" validate:"omitempty,oneof=user_id full_name guests_count created_at updated_at"`
		Asc     *bool   `json:"asc,omitempty" form:"asc" query:"asc"`
	}

	// QueryWellWishRequest struct - HTTP query request DTO for the well-wish
	// list. Well-wishes are append-only, so there is no updated_at to sort on.
	QueryWellWishRequest struct {
		UserID *string `json:"user_id" form:"user_id" query:"user_id"`

		Limit   *int    `json:"limit,omitempty" form:"limit" query:"limit" validate:"omitempty,gte=1,lte=500"`
		Page    *int    `json:"page,omitempty" form:"page" query:"page" validate:"omitempty,gte=1"`
		OrderBy *string `json:"order_by,omitempty" form:"order_by" query:"order_by" validate:"omitempty,oneof=user_id created_at"`
		Asc     *bool   `json:"asc,omitempty" form:"asc" query:"asc"`
	}
)

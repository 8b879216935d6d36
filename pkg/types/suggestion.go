package types

import "time"

type CharitySuggestion struct {
	ID          string    `db:"id" json:"-"`
	UserName    string    `db:"user_name" json:"user_name" form:"-"`
	UserEmail   string    `db:"user_email" json:"user_email" form:"email" validate:"contains=@"`
	CharityName string    `db:"charity_name" json:"charity_name" form:"charity_name" validate:"required"`
	Reason      string    `db:"reason" json:"reason" form:"reason" validate:"required"`
	CreatedAt   time.Time `db:"created_at" json:"-"`
}

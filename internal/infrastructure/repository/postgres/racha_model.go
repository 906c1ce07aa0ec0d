package postgres

import "time"

type rachaTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Slug      string     `db:"slug"`
	Name      string     `db:"name"`
	City      string     `db:"city"`
	IsDefault bool       `db:"is_default"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type rachaInsertModel struct {
	PublicID  string `db:"public_id"`
	Slug      string `db:"slug"`
	Name      string `db:"name"`
	City      string `db:"city"`
	IsDefault bool   `db:"is_default"`
}

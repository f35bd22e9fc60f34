package converter

import (
	"database/sql"
	"time"
)

// ProductModel представляет запись таблицы productos в SQLite.
type ProductModel struct {
	ID          int64          `db:"id"`
	Name        string         `db:"nombre"`
	Description sql.NullString `db:"description"`
	Price       int64          `db:"precio"`
	ImageURL    sql.NullString `db:"image_url"`
	VideoURL    sql.NullString `db:"video_url"`
}

// ContactModel представляет запись таблицы contactos в SQLite.
type ContactModel struct {
	ID          int64     `db:"id"`
	Name        string    `db:"nombre"`
	Email       string    `db:"correo"`
	Message     string    `db:"mensaje"`
	SubmittedAt time.Time `db:"fecha"`
}

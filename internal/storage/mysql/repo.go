package mysql

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"stayfinder/internal/domain"
)

func valStr(p *string) any {
	if p == nil {
		return nil
	}
	return *p
}

type Repo struct{ db *sql.DB }

func New(db *sql.DB) *Repo { return &Repo{db: db} }

// EnsureSchema creates the listings table when missing. Idempotent; the
// seeder and integration tests call it before writing.
func (r *Repo) EnsureSchema(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, createListingsSQL)
	return err
}

func (r *Repo) UpsertListing(ctx context.Context, l domain.Listing) error {
	feats, _ := json.Marshal(l.Features)
	_, err := r.db.ExecContext(ctx, upsertListingSQL,
		l.ID,
		l.Title,
		l.City,
		valStr(l.District),
		string(l.PropertyType),
		l.Price,
		l.GuestCapacity,
		string(feats),
		l.Description,
		valStr(l.ImageURL),
		valStr(l.DetailURL),
	)
	return err
}

func (r *Repo) LoadListings(ctx context.Context) ([]domain.Listing, error) {
	rows, err := r.db.QueryContext(ctx, loadListingsSQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Listing
	for rows.Next() {
		var (
			l        domain.Listing
			district sql.NullString
			ptype    string
			feats    []byte
			img, det sql.NullString
		)
		if err := rows.Scan(
			&l.ID, &l.Title, &l.City, &district, &ptype,
			&l.Price, &l.GuestCapacity, &feats, &l.Description, &img, &det,
		); err != nil {
			return nil, err
		}
		if district.Valid {
			d := district.String
			l.District = &d
		}
		l.PropertyType = domain.PropertyType(ptype)
		if len(feats) > 0 {
			if err := json.Unmarshal(feats, &l.Features); err != nil {
				return nil, fmt.Errorf("listing %s: bad features JSON: %w", l.ID, err)
			}
		}
		if img.Valid {
			u := img.String
			l.ImageURL = &u
		}
		if det.Valid {
			u := det.String
			l.DetailURL = &u
		}
		out = append(out, l)
	}
	return out, rows.Err()
}

package database

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"profilekit/models"
)

var (
	// ErrRecordNotFound is returned (wrapped) when no profile has the requested id.
	ErrRecordNotFound = errors.New("record not found")
	// ErrIDTaken is returned (wrapped) when an insert names an id already in use.
	ErrIDTaken = errors.New("id already in use")
	// ErrKindChanged is returned when an update callback retags a record.
	ErrKindChanged = errors.New("profile kind cannot change")
	// ErrIDSpaceExhausted is returned when no larger id is left to assign.
	ErrIDSpaceExhausted = errors.New("no profile ids left to assign")
)

const profileColumns = `id, name, description, enabled, kind,
	http_request_headers, http_urls, http_cookies,
	http_get_response, http_post_request, http_post_response`

// ProfileStore persists profiles in the single-table layout of the profiles
// table: base columns plus nullable http_* columns used by Http profiles.
type ProfileStore struct {
	db *sql.DB
}

func NewProfileStore(db *sql.DB) *ProfileStore {
	return &ProfileStore{db: db}
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProfile(row rowScanner) (models.Profile, error) {
	var p models.Profile
	var kind string
	var headers, urls, cookies, getResp, postReq, postResp sql.NullString
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.Enabled, &kind,
		&headers, &urls, &cookies, &getResp, &postReq, &postResp); err != nil {
		return p, err
	}
	p.Kind = models.ProfileKind(kind)
	if p.Kind != models.ProfileKindHttp {
		return p, nil
	}

	s := &models.HttpSettings{
		GetResponseTemplate:  getResp.String,
		PostRequestTemplate:  postReq.String,
		PostResponseTemplate: postResp.String,
	}
	if err := decodeJSONColumn(headers, &s.RequestHeaders); err != nil {
		return p, fmt.Errorf("decoding request headers of profile %d: %w", p.ID, err)
	}
	if err := decodeJSONColumn(urls, &s.Urls); err != nil {
		return p, fmt.Errorf("decoding urls of profile %d: %w", p.ID, err)
	}
	if err := decodeJSONColumn(cookies, &s.Cookies); err != nil {
		return p, fmt.Errorf("decoding cookies of profile %d: %w", p.ID, err)
	}
	normalized := s.Clone()
	p.HttpSettings = &normalized
	return p, nil
}

// normalizeProfile drops Http settings from non-Http profiles and gives Http
// profiles a non-nil settings value.
func normalizeProfile(p models.Profile) models.Profile {
	if p.Kind != models.ProfileKindHttp {
		p.HttpSettings = nil
		return p
	}
	if p.HttpSettings == nil {
		p.HttpSettings = &models.HttpSettings{}
	}
	return p.Clone()
}

func decodeJSONColumn(col sql.NullString, dst interface{}) error {
	if !col.Valid || col.String == "" {
		return nil
	}
	return json.Unmarshal([]byte(col.String), dst)
}

func encodeJSONColumn(v interface{}) (sql.NullString, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

// httpColumnValues returns the six http_* column values for p, all NULL for
// non-Http profiles.
func httpColumnValues(p models.Profile) ([]interface{}, error) {
	if p.Kind != models.ProfileKindHttp {
		return []interface{}{nil, nil, nil, nil, nil, nil}, nil
	}
	s := *normalizeProfile(p).HttpSettings
	headers, err := encodeJSONColumn(s.RequestHeaders)
	if err != nil {
		return nil, fmt.Errorf("encoding request headers: %w", err)
	}
	urls, err := encodeJSONColumn(s.Urls)
	if err != nil {
		return nil, fmt.Errorf("encoding urls: %w", err)
	}
	cookies, err := encodeJSONColumn(s.Cookies)
	if err != nil {
		return nil, fmt.Errorf("encoding cookies: %w", err)
	}
	return []interface{}{headers, urls, cookies,
		s.GetResponseTemplate, s.PostRequestTemplate, s.PostResponseTemplate}, nil
}

// ListProfiles returns every profile ordered by id.
func (s *ProfileStore) ListProfiles() ([]models.Profile, error) {
	rows, err := s.db.Query("SELECT " + profileColumns + " FROM profiles ORDER BY id ASC")
	if err != nil {
		return nil, fmt.Errorf("querying profiles: %w", err)
	}
	defer rows.Close()

	profiles := []models.Profile{}
	for rows.Next() {
		p, err := scanProfile(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		profiles = append(profiles, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating profile rows: %w", err)
	}
	return profiles, nil
}

// GetProfile retrieves a single profile by its ID.
func (s *ProfileStore) GetProfile(id int64) (models.Profile, error) {
	p, err := scanProfile(s.db.QueryRow("SELECT "+profileColumns+" FROM profiles WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return p, fmt.Errorf("profile with ID %d: %w", id, ErrRecordNotFound)
		}
		return p, fmt.Errorf("querying profile %d: %w", id, err)
	}
	return p, nil
}

// InsertProfile stores p. A zero p.ID lets the database assign one; a
// non-zero ID is kept unless it is already taken.
func (s *ProfileStore) InsertProfile(p models.Profile) (models.Profile, error) {
	httpValues, err := httpColumnValues(p)
	if err != nil {
		return p, fmt.Errorf("preparing profile '%s': %w", p.Name, err)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return p, fmt.Errorf("beginning insert profile transaction: %w", err)
	}
	defer tx.Rollback()

	args := []interface{}{p.Name, p.Description, p.Enabled, string(p.Kind)}
	args = append(args, httpValues...)
	query := `INSERT INTO profiles (name, description, enabled, kind,
		http_request_headers, http_urls, http_cookies,
		http_get_response, http_post_request, http_post_response)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	if p.ID != 0 {
		var exists int
		err := tx.QueryRow("SELECT 1 FROM profiles WHERE id = ?", p.ID).Scan(&exists)
		if err == nil {
			return p, fmt.Errorf("profile with ID %d: %w", p.ID, ErrIDTaken)
		}
		if !errors.Is(err, sql.ErrNoRows) {
			return p, fmt.Errorf("checking for existing profile %d: %w", p.ID, err)
		}
		query = `INSERT INTO profiles (id, name, description, enabled, kind,
			http_request_headers, http_urls, http_cookies,
			http_get_response, http_post_request, http_post_response)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
		args = append([]interface{}{p.ID}, args...)
	}

	res, err := tx.Exec(query, args...)
	if err != nil {
		return p, fmt.Errorf("executing insert profile statement for '%s': %w", p.Name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return p, fmt.Errorf("getting last insert ID for profile '%s': %w", p.Name, err)
	}
	if err := tx.Commit(); err != nil {
		return p, fmt.Errorf("committing insert of profile '%s': %w", p.Name, err)
	}

	p.ID = id
	return normalizeProfile(p), nil
}

// UpdateProfile loads the profile with the given id, lets mutate change it
// and writes it back, all inside one transaction. An error from mutate aborts
// the update and is returned unchanged. mutate may not change the id or kind.
func (s *ProfileStore) UpdateProfile(id int64, mutate func(*models.Profile) error) (models.Profile, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return models.Profile{}, fmt.Errorf("beginning update transaction for profile %d: %w", id, err)
	}
	defer tx.Rollback()

	current, err := scanProfile(tx.QueryRow("SELECT "+profileColumns+" FROM profiles WHERE id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return current, fmt.Errorf("profile with ID %d: %w", id, ErrRecordNotFound)
		}
		return current, fmt.Errorf("querying profile %d for update: %w", id, err)
	}

	updated := current.Clone()
	if err := mutate(&updated); err != nil {
		return current, err
	}
	updated.ID = id
	if updated.Kind != current.Kind {
		return current, fmt.Errorf("profile with ID %d (%s): %w", id, current.Kind, ErrKindChanged)
	}

	httpValues, err := httpColumnValues(updated)
	if err != nil {
		return current, fmt.Errorf("preparing update of profile %d: %w", id, err)
	}
	args := []interface{}{updated.Name, updated.Description, updated.Enabled}
	args = append(args, httpValues...)
	args = append(args, id)
	_, err = tx.Exec(`UPDATE profiles
		SET name = ?, description = ?, enabled = ?,
			http_request_headers = ?, http_urls = ?, http_cookies = ?,
			http_get_response = ?, http_post_request = ?, http_post_response = ?,
			updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`, args...)
	if err != nil {
		return current, fmt.Errorf("executing update profile statement for ID %d: %w", id, err)
	}
	if err := tx.Commit(); err != nil {
		return current, fmt.Errorf("committing update of profile %d: %w", id, err)
	}
	return normalizeProfile(updated), nil
}

// DeleteProfile deletes a profile by its ID, whatever its kind.
func (s *ProfileStore) DeleteProfile(id int64) error {
	result, err := s.db.Exec("DELETE FROM profiles WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("executing delete profile statement for ID %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected deleting profile %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("profile with ID %d: %w", id, ErrRecordNotFound)
	}
	return nil
}

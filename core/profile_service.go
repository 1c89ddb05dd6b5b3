package core

import (
	"errors"
	"fmt"
	"strings"

	"profilekit/database"
	"profilekit/logger"
	"profilekit/metrics"
	"profilekit/models"
)

// ProfileStore is the persistence contract the service relies on. Every
// method is atomic for the id it touches. Implementations report a missing
// record with database.ErrRecordNotFound and an id collision on insert with
// database.ErrIDTaken.
type ProfileStore interface {
	ListProfiles() ([]models.Profile, error)
	GetProfile(id int64) (models.Profile, error)
	InsertProfile(p models.Profile) (models.Profile, error)
	UpdateProfile(id int64, mutate func(*models.Profile) error) (models.Profile, error)
	DeleteProfile(id int64) error
}

// ProfileService exposes the base and Http views over one ProfileStore.
type ProfileService struct {
	store   ProfileStore
	metrics *metrics.Metrics
}

// NewProfileService creates a service over store. m may be nil.
func NewProfileService(store ProfileStore, m *metrics.Metrics) *ProfileService {
	return &ProfileService{store: store, metrics: m}
}

func (s *ProfileService) observe(op string, err error) {
	code := ErrorCode(err)
	s.metrics.ProfileOperation(op, code)
	if code == CodeInternal {
		logger.Error("ProfileService.%s: %v", op, err)
	} else if err != nil {
		logger.Debug("ProfileService.%s: %v", op, err)
	}
}

// translate maps store sentinels onto the domain error types.
func translate(err error, id int64, kind string) error {
	switch {
	case errors.Is(err, database.ErrRecordNotFound):
		return &NotFoundError{ID: id, Kind: kind}
	case errors.Is(err, database.ErrIDTaken):
		return &ConflictError{ID: id}
	case errors.Is(err, database.ErrKindChanged):
		return &ValidationError{Violations: Violations{"kind": "immutable"}}
	}
	return err
}

func narrow(p models.Profile) (models.HttpProfile, error) {
	h, ok := p.AsHttp()
	if !ok {
		return h, &NarrowingError{ID: p.ID, Actual: p.Kind, Requested: models.ProfileKindHttp}
	}
	return h, nil
}

// List returns every profile in store order.
func (s *ProfileService) List() (profiles []models.Profile, err error) {
	defer func() { s.observe("list", err) }()

	profiles, err = s.store.ListProfiles()
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	return profiles, nil
}

// Get returns the profile with the given id.
func (s *ProfileService) Get(id int64) (p models.Profile, err error) {
	defer func() { s.observe("get", err) }()

	p, err = s.store.GetProfile(id)
	if err != nil {
		return p, translate(err, id, KindNameProfile)
	}
	return p, nil
}

// Create stores a new base profile. A positive p.ID up to MaxProfileID is
// kept when it is free and rejected with a ConflictError otherwise. Http profiles must be created
// through CreateHttp.
func (s *ProfileService) Create(p models.Profile) (created models.Profile, err error) {
	defer func() { s.observe("create", err) }()

	p.Name = strings.TrimSpace(p.Name)
	v := Violations{}
	required("name", p.Name, v)
	suppliedID(p.ID, v)
	p.Kind = normalizeKind(p.Kind, v)
	switch p.Kind {
	case "", models.ProfileKindBase:
		p.Kind = models.ProfileKindBase
	case models.ProfileKindHttp:
		v["kind"] = "use_http_endpoint"
	}
	// A JSON null on an Http field allocates empty settings; only real
	// content makes this an Http create.
	if p.HttpSettings != nil && !p.HttpSettings.IsZero() {
		v["http"] = "use_http_endpoint"
	}
	p.HttpSettings = nil
	if err := v.err(); err != nil {
		return p, err
	}

	created, err = s.store.InsertProfile(p)
	if err != nil {
		return created, translate(err, p.ID, KindNameProfile)
	}
	logger.Info("Profile created: ID %d, Name '%s'", created.ID, created.Name)
	return created, nil
}

// Update replaces the mutable base fields (name, description, enabled) of
// the stored profile with p's values. The id and kind never change and Http
// fields are left untouched; a p.Kind naming another kind is rejected.
func (s *ProfileService) Update(p models.Profile) (updated models.Profile, err error) {
	defer func() { s.observe("update", err) }()

	p.Name = strings.TrimSpace(p.Name)
	v := Violations{}
	positiveID(p.ID, v)
	required("name", p.Name, v)
	p.Kind = normalizeKind(p.Kind, v)
	if err := v.err(); err != nil {
		return p, err
	}

	updated, err = s.store.UpdateProfile(p.ID, func(stored *models.Profile) error {
		if p.Kind != "" && p.Kind != stored.Kind {
			return &ValidationError{Violations: Violations{"kind": "immutable"}}
		}
		stored.Name = p.Name
		stored.Description = p.Description
		stored.Enabled = p.Enabled
		return nil
	})
	if err != nil {
		return updated, translate(err, p.ID, KindNameProfile)
	}
	logger.Info("Profile updated: ID %d, Name '%s'", updated.ID, updated.Name)
	return updated, nil
}

// Delete removes the profile with the given id, whatever its kind.
func (s *ProfileService) Delete(id int64) (err error) {
	defer func() { s.observe("delete", err) }()
	return s.delete(id, KindNameProfile)
}

func (s *ProfileService) delete(id int64, kind string) error {
	if err := s.store.DeleteProfile(id); err != nil {
		return translate(err, id, kind)
	}
	logger.Info("Profile deleted: ID %d", id)
	return nil
}

// ListHttp returns the Http view of every Http profile. Profiles of other
// kinds are not part of the Http collection and are skipped.
func (s *ProfileService) ListHttp() (profiles []models.HttpProfile, err error) {
	defer func() { s.observe("list_http", err) }()

	all, err := s.store.ListProfiles()
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	profiles = make([]models.HttpProfile, 0, len(all))
	for _, p := range all {
		if h, ok := p.AsHttp(); ok {
			profiles = append(profiles, h)
		}
	}
	return profiles, nil
}

// GetHttp returns the Http view of the profile with the given id, or a
// NarrowingError when that profile is not an Http profile.
func (s *ProfileService) GetHttp(id int64) (h models.HttpProfile, err error) {
	defer func() { s.observe("get_http", err) }()

	p, err := s.store.GetProfile(id)
	if err != nil {
		return h, translate(err, id, KindNameHttpProfile)
	}
	return narrow(p)
}

// CreateHttp stores a new Http profile.
func (s *ProfileService) CreateHttp(h models.HttpProfile) (created models.HttpProfile, err error) {
	defer func() { s.observe("create_http", err) }()

	h.Name = strings.TrimSpace(h.Name)
	v := Violations{}
	required("name", h.Name, v)
	suppliedID(h.ID, v)
	if k := normalizeKind(h.Kind, v); k != "" && k != models.ProfileKindHttp {
		v["kind"] = "must_be_http"
	}
	validateHttpSettings(h.HttpSettings, v)
	if err := v.err(); err != nil {
		return h, err
	}

	p, err := s.store.InsertProfile(h.Profile())
	if err != nil {
		return h, translate(err, h.ID, KindNameHttpProfile)
	}
	logger.Info("Http profile created: ID %d, Name '%s'", p.ID, p.Name)
	return narrow(p)
}

// EditHttp overwrites the six Http fields of the stored profile with h's
// values. Name, description, enabled and kind of the stored record are kept,
// whatever h carries for them.
func (s *ProfileService) EditHttp(h models.HttpProfile) (edited models.HttpProfile, err error) {
	defer func() { s.observe("edit_http", err) }()

	v := Violations{}
	positiveID(h.ID, v)
	validateHttpSettings(h.HttpSettings, v)
	if err := v.err(); err != nil {
		return h, err
	}

	settings := h.HttpSettings.Clone()
	p, err := s.store.UpdateProfile(h.ID, func(stored *models.Profile) error {
		if stored.Kind != models.ProfileKindHttp {
			return &NarrowingError{ID: stored.ID, Actual: stored.Kind, Requested: models.ProfileKindHttp}
		}
		stored.HttpSettings = &settings
		return nil
	})
	if err != nil {
		return edited, translate(err, h.ID, KindNameHttpProfile)
	}
	logger.Info("Http profile edited: ID %d, Name '%s'", p.ID, p.Name)
	return narrow(p)
}

// DeleteHttp is Delete under the Http view: the record is removed whatever
// its kind.
func (s *ProfileService) DeleteHttp(id int64) (err error) {
	defer func() { s.observe("delete_http", err) }()
	return s.delete(id, KindNameHttpProfile)
}

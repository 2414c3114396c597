package portalsdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

// Record CRUD operations. Reads require the records:read scope, writes
// records:write. Each entity follows the same REST shape, so the helpers
// below do the legwork and the typed methods stay thin.

func listQuery(search string, limit int) string {
	q := url.Values{}
	if search != "" {
		q.Set("q", search)
	}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if len(q) == 0 {
		return ""
	}
	return "?" + q.Encode()
}

func getEntity[T any](ctx context.Context, s *Session, path string) (*T, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "records:read")
	if err != nil {
		return nil, err
	}
	var out T
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func listEntities[T any](ctx context.Context, s *Session, path string) ([]T, error) {
	resp, err := s.doAuthRequest(ctx, http.MethodGet, path, nil, "records:read")
	if err != nil {
		return nil, err
	}
	var out []T
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func createEntity[T any](ctx context.Context, s *Session, path string, in T) (*T, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}
	resp, err := s.doAuthRequest(ctx, http.MethodPost, path, body, "records:write")
	if err != nil {
		return nil, err
	}
	var out T
	if err := decodeJSON(resp, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func updateEntity[T any](ctx context.Context, s *Session, path string, in T) (*T, error) {
	body, err := jsonBody(in)
	if err != nil {
		return nil, err
	}
	resp, err := s.doAuthRequest(ctx, http.MethodPut, path, body, "records:write")
	if err != nil {
		return nil, err
	}
	var out T
	if err := decodeJSON(resp, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func deleteEntity(ctx context.Context, s *Session, path string) error {
	resp, err := s.doAuthRequest(ctx, http.MethodDelete, path, nil, "records:write")
	if err != nil {
		return err
	}
	return checkStatusNoContent(resp)
}

/* Layers */

func (s *Session) ListLayers(ctx context.Context, search string, limit int) ([]Layer, error) {
	return listEntities[Layer](ctx, s, "/v1/layers"+listQuery(search, limit))
}

func (s *Session) GetLayer(ctx context.Context, id int64) (*Layer, error) {
	return getEntity[Layer](ctx, s, fmt.Sprintf("/v1/layers/%d", id))
}

func (s *Session) CreateLayer(ctx context.Context, l Layer) (*Layer, error) {
	return createEntity(ctx, s, "/v1/layers", l)
}

func (s *Session) UpdateLayer(ctx context.Context, l Layer) (*Layer, error) {
	return updateEntity(ctx, s, fmt.Sprintf("/v1/layers/%d", l.LayerID), l)
}

func (s *Session) DeleteLayer(ctx context.Context, id int64) error {
	return deleteEntity(ctx, s, fmt.Sprintf("/v1/layers/%d", id))
}

/* Fragments */

func (s *Session) ListFragments(ctx context.Context, search string, limit int) ([]Fragment, error) {
	return listEntities[Fragment](ctx, s, "/v1/fragments"+listQuery(search, limit))
}

func (s *Session) GetFragment(ctx context.Context, id int64) (*Fragment, error) {
	return getEntity[Fragment](ctx, s, fmt.Sprintf("/v1/fragments/%d", id))
}

func (s *Session) CreateFragment(ctx context.Context, f Fragment) (*Fragment, error) {
	return createEntity(ctx, s, "/v1/fragments", f)
}

func (s *Session) UpdateFragment(ctx context.Context, f Fragment) (*Fragment, error) {
	return updateEntity(ctx, s, fmt.Sprintf("/v1/fragments/%d", f.FragmentID), f)
}

func (s *Session) DeleteFragment(ctx context.Context, id int64) error {
	return deleteEntity(ctx, s, fmt.Sprintf("/v1/fragments/%d", id))
}

/* Ornaments */

func (s *Session) ListOrnaments(ctx context.Context, search string, limit int) ([]Ornament, error) {
	return listEntities[Ornament](ctx, s, "/v1/ornaments"+listQuery(search, limit))
}

func (s *Session) GetOrnament(ctx context.Context, id int64) (*Ornament, error) {
	return getEntity[Ornament](ctx, s, fmt.Sprintf("/v1/ornaments/%d", id))
}

func (s *Session) CreateOrnament(ctx context.Context, o Ornament) (*Ornament, error) {
	return createEntity(ctx, s, "/v1/ornaments", o)
}

func (s *Session) UpdateOrnament(ctx context.Context, o Ornament) (*Ornament, error) {
	return updateEntity(ctx, s, fmt.Sprintf("/v1/ornaments/%d", o.OrnamentID), o)
}

func (s *Session) DeleteOrnament(ctx context.Context, id int64) error {
	return deleteEntity(ctx, s, fmt.Sprintf("/v1/ornaments/%d", id))
}

/* Finds */

func (s *Session) ListFinds(ctx context.Context, search string, limit int) ([]Find, error) {
	return listEntities[Find](ctx, s, "/v1/finds"+listQuery(search, limit))
}

func (s *Session) GetFind(ctx context.Context, id int64) (*Find, error) {
	return getEntity[Find](ctx, s, fmt.Sprintf("/v1/finds/%d", id))
}

func (s *Session) CreateFind(ctx context.Context, f Find) (*Find, error) {
	return createEntity(ctx, s, "/v1/finds", f)
}

func (s *Session) UpdateFind(ctx context.Context, f Find) (*Find, error) {
	return updateEntity(ctx, s, fmt.Sprintf("/v1/finds/%d", f.FindID), f)
}

func (s *Session) DeleteFind(ctx context.Context, id int64) error {
	return deleteEntity(ctx, s, fmt.Sprintf("/v1/finds/%d", id))
}

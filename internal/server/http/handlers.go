package httpserver

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/localspot/business-directory/internal/aggregate"
	"github.com/localspot/business-directory/internal/domain"
	"github.com/localspot/business-directory/internal/schema"
)

// maxRequestBodySize bounds request bodies at 1 MB.
const maxRequestBodySize = 1 << 20

// decodeRecord reads and parses a request body into a schemaless record.
func decodeRecord(r *http.Request) (domain.Record, error) {
	defer r.Body.Close()
	body, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}

	var rec domain.Record
	if err := json.Unmarshal(body, &rec); err != nil {
		return nil, fmt.Errorf("invalid JSON request body: %w", err)
	}
	return rec, nil
}

// parseID parses the {id} route parameter, writing a 400 error response if
// it is not a positive integer. The raw value is not echoed back.
func parseID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id < 1 {
		writeError(w, http.StatusBadRequest, "id must be a positive integer")
		return 0, false
	}
	return id, true
}

// parsePage extracts the page query parameter. Out-of-range and non-numeric
// values fall back to 1; the paginator clamps the rest.
func parsePage(r *http.Request) int {
	if raw := r.URL.Query().Get("page"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			return parsed
		}
	}
	return 1
}

// linksFor builds the related-resource path map for a record. Every resource
// links to itself; reviews and photos also link to the business they belong to.
func linksFor(res domain.Resource, id int64, rec domain.Record) map[string]string {
	links := map[string]string{
		res.Singular(): fmt.Sprintf("/%s/%d", res, id),
	}
	if businessID, ok := domain.ToID(rec["businessid"]); ok && res != domain.ResourceBusiness {
		links["business"] = fmt.Sprintf("/businesses/%d", businessID)
	}
	return links
}

// createResource handles POST /<resource>.
func (s *Server) createResource(res domain.Resource) http.HandlerFunc {
	repo := s.repos[res]
	sch, _ := schema.For(res)

	return func(w http.ResponseWriter, r *http.Request) {
		rec, err := decodeRecord(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON request body")
			return
		}

		if !schema.Valid(rec, sch) {
			s.recordValidationFailure(res)
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("request body is not a valid %s object", res.Singular()))
			return
		}

		id, err := repo.Create(r.Context(), rec)
		if err != nil {
			s.logger.Error().Err(err).Str("resource", string(res)).Msg("failed to insert record")
			writeDomainError(w, err)
			return
		}

		s.recordOperation(res, "create")

		resp := map[string]interface{}{"id": id}
		// Resources with a business foreign key answer with a links map.
		if _, ok := sch["businessid"]; ok {
			resp["links"] = linksFor(res, id, rec)
		}
		writeJSON(w, http.StatusCreated, resp)
	}
}

// getResource handles GET /<resource>/{id}.
func (s *Server) getResource(res domain.Resource) http.HandlerFunc {
	repo := s.repos[res]

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		rec, err := repo.GetByID(r.Context(), id)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.recordNotFound(res)
			} else {
				s.logger.Error().Err(err).Str("resource", string(res)).Int64("id", id).Msg("failed to fetch record")
			}
			writeDomainError(w, err)
			return
		}

		s.recordOperation(res, "read")
		writeJSON(w, http.StatusOK, rec)
	}
}

// updateResource handles PUT /<resource>/{id}.
func (s *Server) updateResource(res domain.Resource) http.HandlerFunc {
	repo := s.repos[res]
	sch, _ := schema.For(res)

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		rec, err := decodeRecord(r)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON request body")
			return
		}

		if !schema.Valid(rec, sch) {
			s.recordValidationFailure(res)
			writeError(w, http.StatusBadRequest,
				fmt.Sprintf("request body is not a valid %s object", res.Singular()))
			return
		}

		if err := repo.UpdateByID(r.Context(), id, rec); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				s.recordNotFound(res)
			} else {
				s.logger.Error().Err(err).Str("resource", string(res)).Int64("id", id).Msg("failed to update record")
			}
			writeDomainError(w, err)
			return
		}

		s.recordOperation(res, "update")
		writeJSON(w, http.StatusOK, map[string]interface{}{
			"links": linksFor(res, id, rec),
		})
	}
}

// deleteResource handles DELETE /<resource>/{id}.
func (s *Server) deleteResource(res domain.Resource) http.HandlerFunc {
	repo := s.repos[res]

	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(w, r)
		if !ok {
			return
		}

		affected, err := repo.DeleteByID(r.Context(), id)
		if err != nil {
			s.logger.Error().Err(err).Str("resource", string(res)).Int64("id", id).Msg("failed to delete record")
			writeDomainError(w, err)
			return
		}
		if affected == 0 {
			s.recordNotFound(res)
			writeDomainError(w, domain.NewNotFoundError(res.Singular(), strconv.FormatInt(id, 10)))
			return
		}

		s.recordOperation(res, "delete")
		w.WriteHeader(http.StatusNoContent)
	}
}

// listResources handles GET /<resource>?page=N.
func (s *Server) listResources(res domain.Resource) http.HandlerFunc {
	repo := s.repos[res]

	return func(w http.ResponseWriter, r *http.Request) {
		page, err := repo.Page(r.Context(), parsePage(r))
		if err != nil {
			s.logger.Error().Err(err).Str("resource", string(res)).Msg("failed to list records")
			writeDomainError(w, err)
			return
		}

		s.recordOperation(res, "list")
		s.recordPageServed(res)
		writeJSON(w, http.StatusOK, pageResponse(res, page))
	}
}

// listUserBusinesses handles GET /users/{id}/businesses. It returns every
// business whose ownerid matches the user.
func (s *Server) listUserBusinesses(w http.ResponseWriter, r *http.Request) {
	userID, ok := parseID(w, r)
	if !ok {
		return
	}

	records, err := s.repos[domain.ResourceBusiness].ListByField(r.Context(), "ownerid", userID)
	if err != nil {
		s.logger.Error().Err(err).Int64("user_id", userID).Msg("failed to list user businesses")
		writeDomainError(w, err)
		return
	}

	s.recordOperation(domain.ResourceBusiness, "list")
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"businesses": records,
	})
}

// listUsersWithRelated handles GET /users/{id}/reviews and
// GET /users/{id}/photos. It serves a page of users, each augmented with
// the related records whose userid foreign key points at them. Matching is
// an in-memory filter over the full related collection, not a store-side
// join.
func (s *Server) listUsersWithRelated(related domain.Resource) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := parseID(w, r); !ok {
			return
		}

		usersPage, err := s.repos[domain.ResourceUser].Page(r.Context(), parsePage(r))
		if err != nil {
			s.logger.Error().Err(err).Msg("failed to list users")
			writeDomainError(w, err)
			return
		}

		relatedRecords, err := s.repos[related].ListAll(r.Context())
		if err != nil {
			s.logger.Error().Err(err).Str("resource", string(related)).Msg("failed to list related records")
			writeDomainError(w, err)
			return
		}

		aggregate.AttachMatches(usersPage.Items, relatedRecords, "userid", string(related))

		s.recordOperation(domain.ResourceUser, "list")
		s.recordPageServed(domain.ResourceUser)
		writeJSON(w, http.StatusOK, pageResponse(domain.ResourceUser, usersPage))
	}
}

// writeDomainError maps domain errors to appropriate HTTP status codes and
// writes a JSON error response. Internal error details are not leaked to
// clients.
func writeDomainError(w http.ResponseWriter, err error) {
	if err == nil {
		return
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "resource not found")
	case errors.Is(err, domain.ErrInvalidInput):
		var ve *domain.ValidationError
		if errors.As(err, &ve) {
			writeError(w, http.StatusBadRequest, ve.Error())
		} else {
			writeError(w, http.StatusBadRequest, "invalid input")
		}
	case errors.Is(err, domain.ErrRateLimited):
		writeError(w, http.StatusTooManyRequests, "rate limited")
	default:
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}

package httpserver

import (
	"github.com/localspot/business-directory/internal/domain"
)

// pageResponse builds the JSON view of one list page. The items appear under
// the plural resource name, so a businesses page serializes as
// {"businesses": [...], "page": 1, ...}.
func pageResponse(res domain.Resource, p domain.Page) map[string]interface{} {
	items := p.Items
	if items == nil {
		items = []domain.Record{}
	}
	return map[string]interface{}{
		string(res):  items,
		"page":       p.Number,
		"totalPages": p.TotalPages,
		"pageSize":   p.PageSize,
		"count":      p.Count,
	}
}

// Metric recording helpers. The server tolerates a nil metrics instance so
// handler tests can construct it without touching the global Prometheus
// registry.

func (s *Server) recordOperation(res domain.Resource, operation string) {
	if s.metrics != nil {
		s.metrics.RecordResourceOperation(res, operation)
	}
}

func (s *Server) recordValidationFailure(res domain.Resource) {
	if s.metrics != nil {
		s.metrics.RecordValidationFailure(res)
	}
}

func (s *Server) recordPageServed(res domain.Resource) {
	if s.metrics != nil {
		s.metrics.RecordPageServed(res)
	}
}

func (s *Server) recordNotFound(res domain.Resource) {
	if s.metrics != nil {
		s.metrics.RecordNotFound(res)
	}
}

// Package aggregate attaches related records to a page of owner records
// by foreign-key match.
//
// The join is an in-memory linear filter over the entire related
// collection for every owner on the page, O(pageSize x totalRelated).
// That mirrors the behavior this service replaces and is acceptable for
// directory-sized datasets; a store-side join would change the cost but
// must keep the same result shape.
package aggregate

import (
	"github.com/localspot/business-directory/internal/domain"
)

// AttachMatches sets owner[targetField] on every owner record to the
// subsequence of related records whose foreignKey value equals the
// owner's identity. Owners with no matches get an empty slice, never an
// absent field. Related records without a usable foreign key are skipped.
func AttachMatches(owners, related []domain.Record, foreignKey, targetField string) {
	for _, owner := range owners {
		matches := make([]domain.Record, 0)

		ownerID, ok := owner.ID()
		if ok {
			for _, rel := range related {
				if rel == nil {
					continue
				}
				fk, ok := domain.ToID(rel[foreignKey])
				if ok && fk == ownerID {
					matches = append(matches, rel)
				}
			}
		}

		owner[targetField] = matches
	}
}

package data

import (
	"strings"

	"askmate/internal/models"
)

// Search matches the fragment case-insensitively against question titles,
// question bodies and answer bodies. An answer hit surfaces its parent
// question, not the answer itself, and a question reached through several
// hits appears once. Results come back ordered by the requested key together
// with their count, which is always len(results).
func (s *Store) Search(fragment, key, order string) ([]models.Question, int, error) {
	clause, err := orderClause(key, order)
	if err != nil {
		return nil, 0, err
	}
	// LOWER on both sides keeps the statement portable across postgres and
	// sqlite; the original ILIKE is postgres-only.
	pattern := "%" + strings.ToLower(fragment) + "%"

	var fromTitle, fromMessage, fromAnswers []uint
	if err := s.db.Model(&models.Question{}).
		Where("LOWER(title) LIKE ?", pattern).
		Pluck("id", &fromTitle).Error; err != nil {
		return nil, 0, classify(err)
	}
	if err := s.db.Model(&models.Question{}).
		Where("LOWER(message) LIKE ?", pattern).
		Pluck("id", &fromMessage).Error; err != nil {
		return nil, 0, classify(err)
	}
	if err := s.db.Model(&models.Answer{}).
		Where("LOWER(message) LIKE ?", pattern).
		Pluck("question_id", &fromAnswers).Error; err != nil {
		return nil, 0, classify(err)
	}

	seen := make(map[uint]struct{})
	ids := make([]uint, 0, len(fromTitle)+len(fromMessage)+len(fromAnswers))
	for _, batch := range [][]uint{fromTitle, fromMessage, fromAnswers} {
		for _, id := range batch {
			if _, dup := seen[id]; dup {
				continue
			}
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}

	q := s.db.Order(clause)
	if len(ids) == 0 {
		// A condition that can never match keeps the no-hit path on the same
		// query shape as the others.
		q = q.Where("id = ?", -1)
	} else {
		q = q.Where("id IN ?", ids)
	}

	var results []models.Question
	if err := q.Find(&results).Error; err != nil {
		return nil, 0, classify(err)
	}
	return results, len(results), nil
}

package data

import (
	"fmt"

	"askmate/internal/models"

	"gorm.io/gorm"
)

// DeleteQuestion removes a question together with every answer under it and
// every comment targeting the question or one of its answers. Children go
// first, the question row last, all inside one transaction: a failure at any
// step rolls the whole cascade back and the original tree survives intact.
// Deleting an id that does not exist is a no-op.
func (s *Store) DeleteQuestion(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		// Comments placed directly on the question
		if err := tx.Where("question_id = ? AND answer_id IS NULL", id).
			Delete(&models.Comment{}).Error; err != nil {
			return err
		}

		var answerIDs []uint
		if err := tx.Model(&models.Answer{}).Where("question_id = ?", id).
			Pluck("id", &answerIDs).Error; err != nil {
			return err
		}
		if len(answerIDs) > 0 {
			if err := tx.Where("answer_id IN ?", answerIDs).
				Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("id IN ?", answerIDs).
				Delete(&models.Answer{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&models.Question{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("%w: delete question %d: %v", ErrTransactionAborted, id, err)
	}
	return nil
}

// DeleteAnswer removes an answer after its comments, transactionally.
func (s *Store) DeleteAnswer(id uint) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("answer_id = ?", id).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Answer{}, id).Error
	})
	if err != nil {
		return fmt.Errorf("%w: delete answer %d: %v", ErrTransactionAborted, id, err)
	}
	return nil
}

// DeleteComment is a direct row delete; comments own nothing.
func (s *Store) DeleteComment(id uint) error {
	return classify(s.db.Delete(&models.Comment{}, id).Error)
}

package data

import (
	"errors"
	"time"

	"askmate/internal/models"
	"askmate/internal/utils"

	"gorm.io/gorm"
)

// RegisterUser creates an account with a bcrypt digest and a server-assigned
// registration timestamp. A taken username fails with ErrDuplicateUser.
func (s *Store) RegisterUser(username, password string) (*models.User, error) {
	if err := required("username", username); err != nil {
		return nil, err
	}
	if err := required("password", password); err != nil {
		return nil, err
	}

	var count int64
	if err := s.db.Model(&models.User{}).Where("username = ?", username).
		Count(&count).Error; err != nil {
		return nil, classify(err)
	}
	if count > 0 {
		return nil, ErrDuplicateUser
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Username: username,
		HashedPw: hash,
		RegDate:  time.Now(),
	}
	// The unique index backs up the pre-check; classify maps the duplicate
	// key error if two registrations race.
	if err := s.db.Create(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// VerifyUser checks a username/password pair. Unknown usernames and wrong
// passwords both come back false so callers cannot probe which accounts
// exist.
func (s *Store) VerifyUser(username, password string) (bool, error) {
	var user models.User
	err := s.db.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	if err != nil {
		return false, classify(err)
	}
	return utils.CheckPasswordHash(password, user.HashedPw), nil
}

func (s *Store) UserByID(id uint) (*models.User, error) {
	var user models.User
	err := s.db.First(&user, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// UserIDByUsername returns 0 when no such account exists.
func (s *Store) UserIDByUsername(username string) (uint, error) {
	var user models.User
	err := s.db.Select("id").Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, nil
	}
	if err != nil {
		return 0, classify(err)
	}
	return user.ID, nil
}

// Users lists every account without password digests.
func (s *Store) Users() ([]models.User, error) {
	var users []models.User
	err := s.db.Select("id", "username", "reg_date").
		Order("reg_date DESC").Find(&users).Error
	if err != nil {
		return nil, classify(err)
	}
	return users, nil
}

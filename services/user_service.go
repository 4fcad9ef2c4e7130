// file: services/user_service.go
package services

import (
	"golang.org/x/crypto/bcrypt"

	"github.com/stansam/EduSafaris-sub001/database"
	"github.com/stansam/EduSafaris-sub001/models"
)

// ChangeUserPassword hashes and stores a new password. Column-level updates
// do not pick up hash mutations from the model save hook, so the hash is
// produced here and written directly.
func ChangeUserPassword(userID uint32, plain string) error {
	hashed, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	res := database.DB.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("password", string(hashed))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

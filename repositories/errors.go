package repositories

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// ストア非依存のエラー。コントローラはerrors.Isでこれらだけを判定する
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrRoleNotFound   = errors.New("role not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

// translateWriteError ドライバのエラーを分類する
// TranslateErrorが無効な接続でも判定できるようにメッセージも確認する
func translateWriteError(err error) error {
	if err == nil {
		return nil
	}
	msg := err.Error()
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey),
		strings.Contains(msg, "UNIQUE constraint"),
		strings.Contains(msg, "duplicate key"):
		return fmt.Errorf("%w: %v", ErrDuplicateEmail, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		strings.Contains(msg, "FOREIGN KEY constraint"),
		strings.Contains(msg, "violates foreign key"):
		return fmt.Errorf("%w: %v", ErrRoleNotFound, err)
	}
	return err
}

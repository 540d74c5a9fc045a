package contact

import (
	"errors"
	"net/http"
)

// Domain sentinel errors - dùng errors.Is() để check, không string matching
var (
	// ErrContactNotFound xảy ra khi contact id không tồn tại
	// HTTP STATUS: 404 Not Found
	ErrContactNotFound = errors.New("contact not found")

	// ErrContactExists xảy ra khi (email, role) đã có contact khác giữ
	// HTTP STATUS: 409 Conflict
	ErrContactExists = errors.New("contact already exists")

	// ErrInvalidRoleUpdate xảy ra khi cố thu hẹp role của contact đang là BOTH
	// BOTH là trạng thái một chiều: đã là cả customer lẫn supplier thì không quay lại
	// HTTP STATUS: 400 Bad Request
	ErrInvalidRoleUpdate = errors.New("cannot change role: contact already holds both roles")

	// ErrInvalidArgument xảy ra khi input thiếu hoặc sai (enum lạ, field rule fail)
	// HTTP STATUS: 400 Bad Request
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrVersionConflict xảy ra khi một writer khác đã update row giữa chừng
	// HTTP STATUS: 409 Conflict
	ErrVersionConflict = errors.New("contact was modified concurrently")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrContactNotFound)
}

func IsConflict(err error) bool {
	return errors.Is(err, ErrContactExists) || errors.Is(err, ErrVersionConflict)
}

func IsInvalidArgument(err error) bool {
	return errors.Is(err, ErrInvalidArgument) || errors.Is(err, ErrInvalidRoleUpdate)
}

// HTTPStatus map domain error sang HTTP status code.
// Centralize ở một chỗ để handler không tự bịa status.
func HTTPStatus(err error) int {
	switch {
	case IsNotFound(err):
		return http.StatusNotFound
	case IsConflict(err):
		return http.StatusConflict
	case IsInvalidArgument(err):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

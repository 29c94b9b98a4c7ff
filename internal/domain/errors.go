package domain

import "errors"

// Domain errors (no external dependencies). Every failure the core can
// produce is one of these; handlers map them to HTTP codes, and a rejected
// operation always leaves the stored records unchanged.
var (
	ErrNotFound          = errors.New("không tìm thấy hồ sơ")
	ErrInvalidUnitPath   = errors.New("đơn vị không hợp lệ")
	ErrDuplicateUsername = errors.New("tên đăng nhập đã tồn tại")
	ErrInvalidUsername   = errors.New("tên đăng nhập không hợp lệ")
	ErrWeakCredential    = errors.New("mật khẩu quá ngắn")
	ErrAuthFailed        = errors.New("sai tên đăng nhập hoặc mật khẩu")
	ErrForbidden         = errors.New("không có quyền thực hiện thao tác này")
	ErrInvalidTransition = errors.New("trạng thái hồ sơ không cho phép thao tác này")
	ErrInvalidInput      = errors.New("dữ liệu đầu vào không hợp lệ")
	ErrDuplicate         = errors.New("mã hồ sơ đã tồn tại")
)

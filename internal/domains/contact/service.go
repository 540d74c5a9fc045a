package contact

import "context"

// Service là entry point duy nhất cho business operations trên contacts
type Service interface {
	// ListContacts trả về trang thứ `page` (1-indexed) với `size` phần tử,
	// filter theo search term nếu có. page < 1 hoặc size < 1 => ErrInvalidArgument.
	ListContacts(ctx context.Context, page, size int, search string) (*PaginatedResponse, error)

	// ListAllContacts trả về toàn bộ contacts khớp search term (cho CSV export)
	ListAllContacts(ctx context.Context, search string) ([]ContactDTO, error)

	// GetContact trả về (nil, nil) khi id không tồn tại - absence không phải error
	GetContact(ctx context.Context, id int64) (*ContactDTO, error)

	// CreateContact validate type/role + field rules, check uniqueness (email, role),
	// rồi persist. Trả về DTO kèm id và created_at được store assign.
	CreateContact(ctx context.Context, dto ContactDTO) (*ContactDTO, error)

	// UpdateContact thay toàn bộ mutable fields của contact `id`.
	// ErrContactNotFound khi id không tồn tại,
	// ErrInvalidRoleUpdate khi thu hẹp role BOTH.
	UpdateContact(ctx context.Context, id int64, dto ContactDTO) (*ContactDTO, error)

	// DeleteContact xóa contact, idempotent
	DeleteContact(ctx context.Context, id int64) error
}

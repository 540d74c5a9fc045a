package contact

import "context"

// PageQuery gom điều kiện filter + paging cho FindPage
// Search rỗng => không filter; Limit/Offset đã được service chuẩn hóa
type PageQuery struct {
	Search string
	Limit  int
	Offset int
}

// Repository là contract của contact record store.
// Mọi query đều sort theo contact_id DESC (mới nhất trước) - tie-break cố định.
type Repository interface {
	// FindByID trả về ErrContactNotFound khi id không tồn tại
	FindByID(ctx context.Context, id int64) (*Contact, error)

	// FindAll trả về toàn bộ contacts khớp search term (rỗng = tất cả)
	FindAll(ctx context.Context, search string) ([]Contact, error)

	// FindPage trả về một trang kết quả + tổng số record khớp filter.
	// Filter là OR của case-insensitive substring match trên
	// name, email, phone, address và string form của type/role.
	FindPage(ctx context.Context, q PageQuery) ([]Contact, int64, error)

	// FindByEmailAndRole là uniqueness probe theo policy (email, role).
	// Email so sánh case-insensitive. Trả về ErrContactNotFound khi chưa có.
	FindByEmailAndRole(ctx context.Context, email string, role Role) (*Contact, error)

	// Save insert khi ContactID == 0 (store assign id, created_at, version=1),
	// ngược lại update toàn bộ mutable fields với version check:
	// row version khác c.Version => ErrVersionConflict, không ghi đè.
	Save(ctx context.Context, c *Contact) (*Contact, error)

	// DeleteByID hard delete, idempotent: id không tồn tại không phải error
	DeleteByID(ctx context.Context, id int64) error
}

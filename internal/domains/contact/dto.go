package contact

import (
	"encoding/json"
	"regexp"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

const dateLayout = "2006-01-02"

// Date serialize dạng date-only ("2006-01-02"), không kèm time/zone
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{Time: t}
}

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(dateLayout))
}

func (d *Date) UnmarshalJSON(data []byte) error {
	if string(data) == "null" || string(data) == `""` {
		d.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

// ContactDTO là wire shape ở API boundary, tách khỏi entity
// để schema storage thay đổi không leak ra contract
type ContactDTO struct {
	ContactID *int64      `json:"contactId"`
	Name      string      `json:"name"`
	Type      ContactType `json:"type"`
	Email     string      `json:"email"`
	Phone     string      `json:"phone"`
	Address   string      `json:"address"`
	Role      Role        `json:"role"`
	CreatedAt Date        `json:"createdAt"`
}

// Phone chấp nhận digits, space, dot, ngoặc, gạch ngang, prefix "+", dài 7-25
var phonePattern = regexp.MustCompile(`^\+?[0-9. ()-]{7,25}$`)

// Validate enforce field rules trước khi persist.
// Enum membership được service check riêng (xem validateTypeAndRole).
func (d ContactDTO) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Name, validation.Required, validation.Length(2, 100)),
		validation.Field(&d.Email, validation.Required, is.Email),
		validation.Field(&d.Phone, validation.Required, validation.Match(phonePattern)),
		validation.Field(&d.Address, validation.Required, validation.Length(0, 255)),
	)
}

// PaginatedResponse là một trang kết quả kèm metadata tổng
type PaginatedResponse struct {
	Content       []ContactDTO `json:"content"`
	TotalPages    int          `json:"totalPages"`
	TotalElements int64        `json:"totalElements"`
	CurrentPage   int          `json:"currentPage"`
	PageSize      int          `json:"pageSize"`
}

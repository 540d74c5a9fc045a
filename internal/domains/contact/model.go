package contact

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ContactType phân loại contact: cá nhân hoặc công ty
type ContactType string

const (
	TypePerson  ContactType = "PERSON"
	TypeCompany ContactType = "COMPANY"
)

// Role xác định contact là khách hàng, nhà cung cấp, hoặc cả hai
type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleSupplier Role = "SUPPLIER"
	RoleBoth     Role = "BOTH"
)

// Lookup tables thay cho reflection: mọi giá trị hợp lệ được liệt kê tường minh
var contactTypes = map[string]ContactType{
	string(TypePerson):  TypePerson,
	string(TypeCompany): TypeCompany,
}

var roles = map[string]Role{
	string(RoleCustomer): RoleCustomer,
	string(RoleSupplier): RoleSupplier,
	string(RoleBoth):     RoleBoth,
}

// ParseContactType resolve một chuỗi (case-insensitive) thành ContactType.
// Chuỗi không nhận diện được trả về error kèm raw input để client debug.
func ParseContactType(s string) (ContactType, error) {
	if t, ok := contactTypes[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return t, nil
	}
	return "", fmt.Errorf("%w: %q is not a valid contact type", ErrInvalidArgument, s)
}

// ParseRole resolve một chuỗi (case-insensitive) thành Role
func ParseRole(s string) (Role, error) {
	if r, ok := roles[strings.ToUpper(strings.TrimSpace(s))]; ok {
		return r, nil
	}
	return "", fmt.Errorf("%w: %q is not a valid role", ErrInvalidArgument, s)
}

func (t ContactType) Valid() bool {
	_, ok := contactTypes[string(t)]
	return ok
}

func (r Role) Valid() bool {
	_, ok := roles[string(r)]
	return ok
}

// UnmarshalJSON chấp nhận enum value không phân biệt hoa thường.
// JSON null được coi như field vắng mặt (service sẽ reject sau).
func (t *ContactType) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseContactType(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

func (r *Role) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*r = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseRole(s)
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// Contact là persisted entity, map 1:1 với bảng contacts
//
// DATABASE MAPPING:
// ┌──────────────────────────────┐
// │        contacts table        │
// ├──────────────────────────────┤
// │ contact_id (BIGSERIAL) - PK  │
// │ name (TEXT)                  │
// │ type (TEXT)                  │
// │ email (TEXT)                 │
// │ phone (TEXT)                 │
// │ address (TEXT)               │
// │ role (TEXT)                  │
// │ created_at (DATE)            │
// │ version (INT)                │
// └──────────────────────────────┘
type Contact struct {
	// ContactID được store assign khi insert, immutable sau đó
	ContactID int64

	Name    string
	Type    ContactType
	Email   string
	Phone   string
	Address string
	Role    Role

	// CreatedAt set một lần lúc insert, không bao giờ update
	CreatedAt time.Time

	// Version là optimistic-concurrency counter, store bump mỗi lần update
	Version int32
}

func (c *Contact) String() string {
	return fmt.Sprintf("Contact{ID: %d, Name: %s, Type: %s, Email: %s, Role: %s, Version: %d}",
		c.ContactID, c.Name, c.Type, c.Email, c.Role, c.Version)
}

package service

import (
	"context"
	"fmt"

	"contacts-backend/internal/domains/contact"
	"contacts-backend/pkg/logger"
)

type contactService struct {
	repo contact.Repository
}

func NewContactService(repo contact.Repository) contact.Service {
	return &contactService{repo: repo}
}

func (s *contactService) ListContacts(ctx context.Context, page, size int, search string) (*contact.PaginatedResponse, error) {
	if page < 1 {
		return nil, fmt.Errorf("%w: page must be >= 1 (got %d)", contact.ErrInvalidArgument, page)
	}
	if size < 1 {
		return nil, fmt.Errorf("%w: size must be >= 1 (got %d)", contact.ErrInvalidArgument, size)
	}

	query := contact.PageQuery{
		Search: search,
		Limit:  size,
		Offset: (page - 1) * size,
	}
	entities, total, err := s.repo.FindPage(ctx, query)
	if err != nil {
		logger.Error("ListContacts: repository query failed", err)
		return nil, fmt.Errorf("list contacts: failed to fetch")
	}

	totalPages := int((total + int64(size) - 1) / int64(size))

	return &contact.PaginatedResponse{
		Content:       contact.ContactsToDTO(entities),
		TotalPages:    totalPages,
		TotalElements: total,
		CurrentPage:   page,
		PageSize:      size,
	}, nil
}

func (s *contactService) ListAllContacts(ctx context.Context, search string) ([]contact.ContactDTO, error) {
	entities, err := s.repo.FindAll(ctx, search)
	if err != nil {
		logger.Error("ListAllContacts: repository query failed", err)
		return nil, fmt.Errorf("list contacts: failed to fetch")
	}
	return contact.ContactsToDTO(entities), nil
}

// GetContact: absence không phải error - trả về (nil, nil) khi id không tồn tại
func (s *contactService) GetContact(ctx context.Context, id int64) (*contact.ContactDTO, error) {
	entity, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if contact.IsNotFound(err) {
			return nil, nil
		}
		logger.Error("GetContact: repository get failed", err)
		return nil, fmt.Errorf("get contact: failed to fetch")
	}
	return contact.ContactToDTO(entity), nil
}

func (s *contactService) CreateContact(ctx context.Context, dto contact.ContactDTO) (*contact.ContactDTO, error) {
	if err := validateTypeAndRole(dto.Type, dto.Role); err != nil {
		return nil, err
	}
	if err := dto.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", contact.ErrInvalidArgument, err)
	}

	// Uniqueness policy: (email, role). Cùng email chỉ được giữ mỗi role một lần.
	existing, err := s.repo.FindByEmailAndRole(ctx, dto.Email, dto.Role)
	if err != nil && !contact.IsNotFound(err) {
		logger.Error("CreateContact: uniqueness probe failed", err)
		return nil, fmt.Errorf("create contact: failed to verify uniqueness")
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: contact with email %s is already in the system as %s",
			contact.ErrContactExists, dto.Email, dto.Role)
	}

	entity := contact.DTOToContact(&dto)
	entity.ContactID = 0 // store assigns identity

	saved, err := s.repo.Save(ctx, entity)
	if err != nil {
		logger.Error("CreateContact: repository save failed", err)
		return nil, fmt.Errorf("create contact: failed to save")
	}

	logger.Info("contact created", map[string]interface{}{
		"contact_id": saved.ContactID,
		"role":       saved.Role,
	})
	return contact.ContactToDTO(saved), nil
}

func (s *contactService) UpdateContact(ctx context.Context, id int64, dto contact.ContactDTO) (*contact.ContactDTO, error) {
	existing, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if contact.IsNotFound(err) {
			return nil, contact.ErrContactNotFound
		}
		logger.Error("UpdateContact: repository get failed", err)
		return nil, fmt.Errorf("update contact: failed to fetch")
	}

	if err := validateTypeAndRole(dto.Type, dto.Role); err != nil {
		return nil, err
	}
	if err := dto.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", contact.ErrInvalidArgument, err)
	}

	// BOTH là absorbing state: đã giữ cả hai role thì không thu hẹp được nữa
	if existing.Role == contact.RoleBoth && dto.Role != contact.RoleBoth {
		return nil, contact.ErrInvalidRoleUpdate
	}

	// Nếu (email, role) đổi sang pair đang thuộc contact khác => conflict
	if dup, err := s.repo.FindByEmailAndRole(ctx, dto.Email, dto.Role); err == nil && dup.ContactID != id {
		return nil, fmt.Errorf("%w: contact with email %s is already in the system as %s",
			contact.ErrContactExists, dto.Email, dto.Role)
	} else if err != nil && !contact.IsNotFound(err) {
		logger.Error("UpdateContact: uniqueness probe failed", err)
		return nil, fmt.Errorf("update contact: failed to verify uniqueness")
	}

	// Full replacement của mutable fields; id, created_at, version giữ nguyên
	existing.Name = dto.Name
	existing.Type = dto.Type
	existing.Email = dto.Email
	existing.Phone = dto.Phone
	existing.Address = dto.Address
	existing.Role = dto.Role

	saved, err := s.repo.Save(ctx, existing)
	if err != nil {
		if contact.IsConflict(err) || contact.IsNotFound(err) {
			return nil, err
		}
		logger.Error("UpdateContact: repository save failed", err)
		return nil, fmt.Errorf("update contact: failed to save")
	}

	return contact.ContactToDTO(saved), nil
}

func (s *contactService) DeleteContact(ctx context.Context, id int64) error {
	if err := s.repo.DeleteByID(ctx, id); err != nil {
		logger.Error("DeleteContact: repository delete failed", err)
		return fmt.Errorf("delete contact: failed to delete")
	}
	return nil
}

// validateTypeAndRole enforce membership của cả hai enum.
// Contact phải là person hoặc company, và phải có đúng một role hợp lệ.
func validateTypeAndRole(t contact.ContactType, r contact.Role) error {
	if t == "" || r == "" {
		return fmt.Errorf("%w: contact type and role must be provided", contact.ErrInvalidArgument)
	}
	if !t.Valid() {
		return fmt.Errorf("%w: %q is not a valid contact type", contact.ErrInvalidArgument, string(t))
	}
	if !r.Valid() {
		return fmt.Errorf("%w: %q is not a valid role", contact.ErrInvalidArgument, string(r))
	}
	return nil
}

package contact

// Mapping layer: chuyển đổi thuần túy giữa entity và DTO.
// Không validate, không side effect - validation là việc của service.

// ContactToDTO map persisted entity sang wire DTO. Nil-in, nil-out.
func ContactToDTO(c *Contact) *ContactDTO {
	if c == nil {
		return nil
	}

	id := c.ContactID
	return &ContactDTO{
		ContactID: &id,
		Name:      c.Name,
		Type:      c.Type,
		Email:     c.Email,
		Phone:     c.Phone,
		Address:   c.Address,
		Role:      c.Role,
		CreatedAt: NewDate(c.CreatedAt),
	}
}

// DTOToContact map wire DTO sang entity. Nil-in, nil-out.
func DTOToContact(d *ContactDTO) *Contact {
	if d == nil {
		return nil
	}

	c := &Contact{
		Name:      d.Name,
		Type:      d.Type,
		Email:     d.Email,
		Phone:     d.Phone,
		Address:   d.Address,
		Role:      d.Role,
		CreatedAt: d.CreatedAt.Time,
	}
	if d.ContactID != nil {
		c.ContactID = *d.ContactID
	}
	return c
}

// ContactsToDTO map một slice entity sang slice DTO, giữ nguyên thứ tự
func ContactsToDTO(contacts []Contact) []ContactDTO {
	dtos := make([]ContactDTO, 0, len(contacts))
	for i := range contacts {
		dtos = append(dtos, *ContactToDTO(&contacts[i]))
	}
	return dtos
}

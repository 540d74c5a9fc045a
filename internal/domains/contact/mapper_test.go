package contact

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactToDTO(t *testing.T) {
	assert.Nil(t, ContactToDTO(nil))

	entity := &Contact{
		ContactID: 7,
		Name:      "Acme Corp",
		Type:      TypeCompany,
		Email:     "sales@acme.test",
		Phone:     "+84 28 1234 567",
		Address:   "1 Industrial Way",
		Role:      RoleSupplier,
		CreatedAt: time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
		Version:   3,
	}

	dto := ContactToDTO(entity)
	require.NotNil(t, dto)
	require.NotNil(t, dto.ContactID)
	assert.Equal(t, int64(7), *dto.ContactID)
	assert.Equal(t, entity.Name, dto.Name)
	assert.Equal(t, entity.Type, dto.Type)
	assert.Equal(t, entity.Email, dto.Email)
	assert.Equal(t, entity.Role, dto.Role)
	assert.True(t, entity.CreatedAt.Equal(dto.CreatedAt.Time))
}

func TestDTOToContactRoundTrip(t *testing.T) {
	assert.Nil(t, DTOToContact(nil))

	id := int64(12)
	dto := ContactDTO{
		ContactID: &id,
		Name:      "Jane Doe",
		Type:      TypePerson,
		Email:     "jane@example.com",
		Phone:     "+1 555 000 1111",
		Address:   "42 Main Street",
		Role:      RoleBoth,
		CreatedAt: Date{Time: time.Date(2026, 5, 6, 0, 0, 0, 0, time.UTC)},
	}

	entity := DTOToContact(&dto)
	require.NotNil(t, entity)
	assert.Equal(t, int64(12), entity.ContactID)

	back := ContactToDTO(entity)
	require.NotNil(t, back)
	assert.Equal(t, dto.Name, back.Name)
	assert.Equal(t, dto.Type, back.Type)
	assert.Equal(t, dto.Email, back.Email)
	assert.Equal(t, dto.Phone, back.Phone)
	assert.Equal(t, dto.Address, back.Address)
	assert.Equal(t, dto.Role, back.Role)
}

func TestContactsToDTONeverNil(t *testing.T) {
	dtos := ContactsToDTO(nil)
	require.NotNil(t, dtos)
	assert.Empty(t, dtos)

	dtos = ContactsToDTO([]Contact{{ContactID: 1, Name: "A"}, {ContactID: 2, Name: "B"}})
	require.Len(t, dtos, 2)
	assert.Equal(t, "A", dtos[0].Name)
	assert.Equal(t, "B", dtos[1].Name)
}

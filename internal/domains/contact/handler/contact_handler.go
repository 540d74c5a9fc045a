package handler

import (
	"encoding/csv"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"contacts-backend/internal/domains/contact"
	"contacts-backend/internal/shared/response"
)

type ContactHandler struct {
	svc contact.Service
}

func NewContactHandler(svc contact.Service) *ContactHandler {
	return &ContactHandler{svc: svc}
}

// domainError map một service error sang error body qua contact.HTTPStatus.
// Internal errors (5xx) không leak chi tiết ra client.
func domainError(c *gin.Context, err error) {
	status := contact.HTTPStatus(err)
	reason := err.Error()
	if status == http.StatusInternalServerError {
		reason = "Internal server error"
	}
	response.Error(c, status, reason)
}

// ListContacts trả về một trang contacts, có filter theo search term
// GET /api/contacts?page=1&size=15&search=
func (h *ContactHandler) ListContacts(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		response.BadRequest(c, "Invalid page parameter")
		return
	}
	size, err := strconv.Atoi(c.DefaultQuery("size", "15"))
	if err != nil {
		response.BadRequest(c, "Invalid size parameter")
		return
	}
	search := c.Query("search")

	result, err := h.svc.ListContacts(c.Request.Context(), page, size, search)
	if err != nil {
		domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ExportContacts stream toàn bộ contacts (áp dụng search filter) dạng CSV
// GET /api/contacts/export?search=
func (h *ContactHandler) ExportContacts(c *gin.Context) {
	dtos, err := h.svc.ListAllContacts(c.Request.Context(), c.Query("search"))
	if err != nil {
		domainError(c, err)
		return
	}

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition", `attachment; filename="contacts.csv"`)
	c.Status(http.StatusOK)

	w := csv.NewWriter(c.Writer)
	_ = w.Write([]string{"contactId", "name", "type", "email", "phone", "address", "role", "createdAt"})
	for _, d := range dtos {
		id := ""
		if d.ContactID != nil {
			id = strconv.FormatInt(*d.ContactID, 10)
		}
		_ = w.Write([]string{
			id, d.Name, string(d.Type), d.Email, d.Phone, d.Address, string(d.Role),
			d.CreatedAt.Format("2006-01-02"),
		})
	}
	w.Flush()
}

// GetContact trả về một contact theo id, 404 khi không tồn tại
// GET /api/contacts/:id
func (h *ContactHandler) GetContact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.BadRequest(c, "Invalid contact id")
		return
	}

	dto, err := h.svc.GetContact(c.Request.Context(), id)
	if err != nil {
		domainError(c, err)
		return
	}
	if dto == nil {
		response.NotFound(c, "Contact not found")
		return
	}

	c.JSON(http.StatusOK, dto)
}

// CreateContact tạo contact mới
// POST /api/contacts
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var dto contact.ContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	created, err := h.svc.CreateContact(c.Request.Context(), dto)
	if err != nil {
		domainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, created)
}

// UpdateContact thay toàn bộ mutable fields của một contact
// PUT /api/contacts/:id
func (h *ContactHandler) UpdateContact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.BadRequest(c, "Invalid contact id")
		return
	}

	var dto contact.ContactDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	updated, err := h.svc.UpdateContact(c.Request.Context(), id, dto)
	if err != nil {
		domainError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated)
}

// DeleteContact xóa contact, luôn 204 kể cả khi id đã không còn
// DELETE /api/contacts/:id
func (h *ContactHandler) DeleteContact(c *gin.Context) {
	id, err := parseID(c)
	if err != nil {
		response.BadRequest(c, "Invalid contact id")
		return
	}

	if err := h.svc.DeleteContact(c.Request.Context(), id); err != nil {
		domainError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func parseID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

// Resource directory HTTP handlers.
//
// This file exposes the support-resource directory:
//   - GET /resources       (list all, or keyword search via ?q=)
//   - GET /resources/{id}  (single resource)
//
// and the authority-managed CRUD behind the gate:
//   - POST   /admin/resources
//   - PUT    /admin/resources/{id}
//   - DELETE /admin/resources/{id}
package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/schoolsafe/go-report-backend/internal/domain"
	"github.com/schoolsafe/go-report-backend/internal/services"
)

//
// DTOs
//

// ResourceRequest is the JSON payload for creating or updating a resource.
type ResourceRequest struct {
	// Name is the display name of the organization or service.
	Name string `json:"name" binding:"required,min=1" example:"Childline"`
	// Description explains what the resource offers.
	Description string `json:"description" binding:"required,min=1" example:"Free confidential counselling for children and young people."`
	// Category is one of the fixed resource categories.
	Category string `json:"category" binding:"required" example:"Mental Health"`
	// Phone is an optional contact number.
	Phone *string `json:"phone,omitempty" example:"0800 1111"`
	// Website is an optional URL.
	Website *string `json:"website,omitempty" example:"https://www.childline.org.uk"`
}

// ListResourcesResponse wraps the directory listing.
type ListResourcesResponse struct {
	Resources []domain.Resource `json:"resources"`
}

// resourceID parses the :id route param. Returns (0, false) and writes a 400
// response when the id is not a positive integer.
func resourceID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "resource id must be a positive integer")
		return 0, false
	}
	return uint(id), true
}

func (r ResourceRequest) toDomain(id uint) *domain.Resource {
	return &domain.Resource{
		ID:          id,
		Name:        strings.TrimSpace(r.Name),
		Description: strings.TrimSpace(r.Description),
		Category:    domain.ResourceCategory(strings.TrimSpace(r.Category)),
		Phone:       r.Phone,
		Website:     r.Website,
	}
}

//
// Handlers
//

// ListResources godoc
// @ID          listResources
// @Summary     List or search support resources
// @Description Without `q`, returns the whole directory ordered by name.
// @Description With `q`, returns keyword-search matches, best first.
// @Tags        Resources
// @Produce     json
//
// @Param       q  query  string  false  "Keyword query"  example(cyberbullying reporting)
//
// @Success     200  {object} handlers.ListResourcesResponse
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /resources [get]
func (h *Handlers) ListResources(c *gin.Context) {
	ctx := c.Request.Context()

	var (
		items []domain.Resource
		err   error
	)
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		items, err = h.resSvc.Search(ctx, q)
	} else {
		items, err = h.resSvc.List(ctx)
	}
	if err != nil {
		fail(c, http.StatusInternalServerError, ErrCodeListFailed, err.Error())
		return
	}
	if items == nil {
		items = []domain.Resource{}
	}
	ok(c, http.StatusOK, ListResourcesResponse{Resources: items})
}

// GetResource godoc
// @ID          getResource
// @Summary     Fetch one support resource
// @Tags        Resources
// @Produce     json
//
// @Param       id  path  int  true  "Resource ID"  example(3)
//
// @Success     200  {object} domain.Resource
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     404  {object} handlers.ErrorResponse "Resource not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /resources/{id} [get]
func (h *Handlers) GetResource(c *gin.Context) {
	id, okID := resourceID(c)
	if !okID {
		return
	}

	r, err := h.resSvc.Get(c.Request.Context(), id)
	if err != nil {
		switch err {
		case services.ErrResourceNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "resource not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, r)
}

// CreateResource godoc
// @ID          createResource
// @Summary     Add a support resource
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       body  body  handlers.ResourceRequest  true  "Resource payload"
//
// @Success     201  {object} domain.Resource
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/resources [post]
func (h *Handlers) CreateResource(c *gin.Context) {
	var req ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, description and category are required")
		return
	}

	r := req.toDomain(0)
	if err := h.resSvc.Create(c.Request.Context(), r); err != nil {
		switch err {
		case services.ErrInvalidResource:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid resource payload")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeCreateFailed, err.Error())
		}
		return
	}
	ok(c, http.StatusCreated, r)
}

// UpdateResource godoc
// @ID          updateResource
// @Summary     Update a support resource
// @Tags        Admin
// @Accept      json
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       id    path  int  true  "Resource ID"  example(3)
// @Param       body  body  handlers.ResourceRequest  true  "Resource payload"
//
// @Success     200  {object} domain.Resource
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure     404  {object} handlers.ErrorResponse "Resource not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/resources/{id} [put]
func (h *Handlers) UpdateResource(c *gin.Context) {
	id, okID := resourceID(c)
	if !okID {
		return
	}

	var req ResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		fail(c, http.StatusBadRequest, ErrCodeBadRequest, "name, description and category are required")
		return
	}

	r := req.toDomain(id)
	if err := h.resSvc.Update(c.Request.Context(), r); err != nil {
		switch err {
		case services.ErrInvalidResource:
			fail(c, http.StatusBadRequest, ErrCodeBadRequest, "invalid resource payload")
		case services.ErrResourceNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "resource not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	ok(c, http.StatusOK, r)
}

// DeleteResource godoc
// @ID          deleteResource
// @Summary     Remove a support resource
// @Tags        Admin
// @Produce     json
// @Security    ApiKeyAuth
//
// @Param       id  path  int  true  "Resource ID"  example(3)
//
// @Success     204  {string} string "No Content"
// @Failure     400  {object} handlers.ErrorResponse "Bad request"
// @Failure     401  {object} handlers.ErrorResponse "Missing or invalid API key"
// @Failure     404  {object} handlers.ErrorResponse "Resource not found"
// @Failure     500  {object} handlers.ErrorResponse "Internal error"
// @Router      /admin/resources/{id} [delete]
func (h *Handlers) DeleteResource(c *gin.Context) {
	id, okID := resourceID(c)
	if !okID {
		return
	}

	if err := h.resSvc.Delete(c.Request.Context(), id); err != nil {
		switch err {
		case services.ErrResourceNotFound:
			fail(c, http.StatusNotFound, ErrCodeNotFound, "resource not found")
		default:
			fail(c, http.StatusInternalServerError, ErrCodeInternal, err.Error())
		}
		return
	}
	noContent(c)
}

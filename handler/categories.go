package handler

import (
	"net/http"
	"strings"

	"github.com/ImRehmankhan/nextcodehub/database"
	"github.com/ImRehmankhan/nextcodehub/database/repository"
	"github.com/ImRehmankhan/nextcodehub/database/repository/pagination"
	"github.com/ImRehmankhan/nextcodehub/handler/paginate"
	"github.com/ImRehmankhan/nextcodehub/handler/payload"
	"github.com/ImRehmankhan/nextcodehub/pkg/endpoint"
	"github.com/ImRehmankhan/nextcodehub/pkg/middleware"
)

type CategoriesHandler struct {
	Categories *repository.Categories
	Session    middleware.SessionResolver
}

func NewCategoriesHandler(categories *repository.Categories, session middleware.SessionResolver) CategoriesHandler {
	return CategoriesHandler{
		Categories: categories,
		Session:    session,
	}
}

func (h *CategoriesHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if _, apiErr := middleware.RequireAdmin(r.Context(), h.Session); apiErr != nil {
		return apiErr
	}

	params := paginate.ListParamsFrom(r.URL.Query())
	resp := endpoint.NewNoCacheResponse(w, r)

	if params.HasID() {
		category := h.Categories.FindByID(params.ID)
		if category == nil {
			if err := resp.RespondOk(nil); err != nil {
				return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
			}

			return nil
		}

		if err := resp.RespondOk(payload.MakeCategoryResponse(*category)); err != nil {
			return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
		}

		return nil
	}

	if params.HasColumns() {
		rows, err := h.Categories.Project(params)
		if err != nil {
			return endpoint.LogInternalError("Error getting categories", err)
		}

		if err := resp.RespondOk(rows); err != nil {
			return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
		}

		return nil
	}

	result, err := h.Categories.GetAll(params)
	if err != nil {
		return endpoint.LogInternalError("Error getting categories", err)
	}

	items := pagination.HydratePagination(
		result,
		func(category database.Category) payload.CategoryResponse {
			return payload.MakeCategoryResponse(category)
		},
	)

	if err := resp.RespondOk(items); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *CategoriesHandler) Store(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if _, apiErr := middleware.RequireAdmin(r.Context(), h.Session); apiErr != nil {
		return apiErr
	}

	request, err := endpoint.ParseRequestBody[payload.CategoryRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	if apiErr := validateCategoryRequest(&request); apiErr != nil {
		return apiErr
	}

	if apiErr := h.checkConflicts(request, 0); apiErr != nil {
		return apiErr
	}

	category, err := h.Categories.Create(database.CategoryAttrs{
		Name: request.Name,
		Slug: request.Slug,
	})
	if err != nil {
		return endpoint.LogInternalError("Error creating category", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondCreated(payload.CategoryEnvelope{
		Message:  "Category created successfully",
		Category: payload.MakeCategoryResponse(*category),
	}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *CategoriesHandler) Update(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if _, apiErr := middleware.RequireAdmin(r.Context(), h.Session); apiErr != nil {
		return apiErr
	}

	id, apiErr := parseResourceID(r)
	if apiErr != nil {
		return apiErr
	}

	if h.Categories.FindByID(id) == nil {
		return endpoint.NotFound("Category not found")
	}

	request, err := endpoint.ParseRequestBody[payload.CategoryRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	if apiErr := validateCategoryRequest(&request); apiErr != nil {
		return apiErr
	}

	if apiErr := h.checkConflicts(request, id); apiErr != nil {
		return apiErr
	}

	category, err := h.Categories.Update(id, database.CategoryAttrs{
		Name: request.Name,
		Slug: request.Slug,
	})
	if err != nil {
		return endpoint.LogInternalError("Error updating category", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.CategoryEnvelope{
		Message:  "Category updated successfully",
		Category: payload.MakeCategoryResponse(*category),
	}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *CategoriesHandler) Delete(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if _, apiErr := middleware.RequireAdmin(r.Context(), h.Session); apiErr != nil {
		return apiErr
	}

	id, apiErr := parseResourceID(r)
	if apiErr != nil {
		return apiErr
	}

	if h.Categories.FindByID(id) == nil {
		return endpoint.NotFound("Category not found")
	}

	posts, err := h.Categories.PostsCount(id)
	if err != nil {
		return endpoint.LogInternalError("Error deleting category", err)
	}

	if posts > 0 {
		return endpoint.BadRequestError("Category has posts assigned. Please remove them first")
	}

	if err := h.Categories.Delete(id); err != nil {
		return endpoint.LogInternalError("Error deleting category", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.MessageResponse{Message: "Category deleted successfully"}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *CategoriesHandler) checkConflicts(request payload.CategoryRequest, excludeID uint64) *endpoint.ApiError {
	taken, err := h.Categories.NameTaken(request.Name, excludeID)
	if err != nil {
		return endpoint.LogInternalError("Error checking category name", err)
	}

	if taken {
		return endpoint.ConflictError("Category name already exists")
	}

	taken, err = h.Categories.SlugTaken(request.Slug, excludeID)
	if err != nil {
		return endpoint.LogInternalError("Error checking category slug", err)
	}

	if taken {
		return endpoint.ConflictError("Category slug already exists")
	}

	return nil
}

func validateCategoryRequest(request *payload.CategoryRequest) *endpoint.ApiError {
	request.Name = strings.TrimSpace(request.Name)
	request.Slug = strings.TrimSpace(request.Slug)

	if request.Name == "" {
		return endpoint.BadRequestError("Name is required")
	}

	if request.Slug == "" {
		return endpoint.BadRequestError("Slug is required")
	}

	return nil
}

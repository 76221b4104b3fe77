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

type TagsHandler struct {
	Tags    *repository.Tags
	Session middleware.SessionResolver
}

func NewTagsHandler(tags *repository.Tags, session middleware.SessionResolver) TagsHandler {
	return TagsHandler{
		Tags:    tags,
		Session: session,
	}
}

func (h *TagsHandler) Index(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if _, apiErr := middleware.RequireAdmin(r.Context(), h.Session); apiErr != nil {
		return apiErr
	}

	params := paginate.ListParamsFrom(r.URL.Query())
	resp := endpoint.NewNoCacheResponse(w, r)

	if params.HasID() {
		tag := h.Tags.FindByID(params.ID)
		if tag == nil {
			if err := resp.RespondOk(nil); err != nil {
				return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
			}

			return nil
		}

		if err := resp.RespondOk(payload.MakeTagResponse(*tag)); err != nil {
			return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
		}

		return nil
	}

	if params.HasColumns() {
		rows, err := h.Tags.Project(params)
		if err != nil {
			return endpoint.LogInternalError("Error getting tags", err)
		}

		if err := resp.RespondOk(rows); err != nil {
			return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
		}

		return nil
	}

	result, err := h.Tags.GetAll(params)
	if err != nil {
		return endpoint.LogInternalError("Error getting tags", err)
	}

	items := pagination.HydratePagination(
		result,
		func(tag database.Tag) payload.TagResponse {
			return payload.MakeTagResponse(tag)
		},
	)

	if err := resp.RespondOk(items); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *TagsHandler) Store(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if _, apiErr := middleware.RequireAdmin(r.Context(), h.Session); apiErr != nil {
		return apiErr
	}

	request, err := endpoint.ParseRequestBody[payload.TagRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	if apiErr := validateTagRequest(&request); apiErr != nil {
		return apiErr
	}

	if apiErr := h.checkConflicts(request, 0); apiErr != nil {
		return apiErr
	}

	tag, err := h.Tags.Create(database.TagAttrs{
		Name: request.Name,
		Slug: request.Slug,
	})
	if err != nil {
		return endpoint.LogInternalError("Error creating tag", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondCreated(payload.TagEnvelope{
		Message: "Tag created successfully",
		Tag:     payload.MakeTagResponse(*tag),
	}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *TagsHandler) Update(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if _, apiErr := middleware.RequireAdmin(r.Context(), h.Session); apiErr != nil {
		return apiErr
	}

	id, apiErr := parseResourceID(r)
	if apiErr != nil {
		return apiErr
	}

	if h.Tags.FindByID(id) == nil {
		return endpoint.NotFound("Tag not found")
	}

	request, err := endpoint.ParseRequestBody[payload.TagRequest](r)
	if err != nil {
		return endpoint.BadRequestError("Invalid request body")
	}

	if apiErr := validateTagRequest(&request); apiErr != nil {
		return apiErr
	}

	if apiErr := h.checkConflicts(request, id); apiErr != nil {
		return apiErr
	}

	tag, err := h.Tags.Update(id, database.TagAttrs{
		Name: request.Name,
		Slug: request.Slug,
	})
	if err != nil {
		return endpoint.LogInternalError("Error updating tag", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.TagEnvelope{
		Message: "Tag updated successfully",
		Tag:     payload.MakeTagResponse(*tag),
	}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *TagsHandler) Delete(w http.ResponseWriter, r *http.Request) *endpoint.ApiError {
	if _, apiErr := middleware.RequireAdmin(r.Context(), h.Session); apiErr != nil {
		return apiErr
	}

	id, apiErr := parseResourceID(r)
	if apiErr != nil {
		return apiErr
	}

	if h.Tags.FindByID(id) == nil {
		return endpoint.NotFound("Tag not found")
	}

	posts, err := h.Tags.PostsCount(id)
	if err != nil {
		return endpoint.LogInternalError("Error deleting tag", err)
	}

	if posts > 0 {
		return endpoint.BadRequestError("Tag has posts assigned. Please remove them first")
	}

	if err := h.Tags.Delete(id); err != nil {
		return endpoint.LogInternalError("Error deleting tag", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	if err := resp.RespondOk(payload.MessageResponse{Message: "Tag deleted successfully"}); err != nil {
		return endpoint.LogInternalError("There was an issue processing the response. Please, try later.", err)
	}

	return nil
}

func (h *TagsHandler) checkConflicts(request payload.TagRequest, excludeID uint64) *endpoint.ApiError {
	taken, err := h.Tags.NameTaken(request.Name, excludeID)
	if err != nil {
		return endpoint.LogInternalError("Error checking tag name", err)
	}

	if taken {
		return endpoint.ConflictError("Tag name already exists")
	}

	taken, err = h.Tags.SlugTaken(request.Slug, excludeID)
	if err != nil {
		return endpoint.LogInternalError("Error checking tag slug", err)
	}

	if taken {
		return endpoint.ConflictError("Tag slug already exists")
	}

	return nil
}

func validateTagRequest(request *payload.TagRequest) *endpoint.ApiError {
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

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-platform/internal/api/metrics"
	"github.com/inkwell/blog-platform/internal/core/ports"
)

// PostHandler handles HTTP requests for post operations.
type PostHandler struct {
	service ports.PostService
}

func NewPostHandler(service ports.PostService) *PostHandler {
	return &PostHandler{service: service}
}

// List handles GET /posts — public, newest first.
//
// @Summary      List all posts
// @Tags         posts
// @Produce      json
// @Success      200  {object}  envelope{data=[]postResponse}
// @Failure      500  {object}  envelope
// @Router       /posts [get]
func (h *PostHandler) List(c echo.Context) error {
	posts, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Data: toPostList(posts)})
}

// Get handles GET /posts/:id — public.
//
// @Summary      Get a single post
// @Tags         posts
// @Produce      json
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  envelope{data=postResponse}
// @Failure      404  {object}  envelope
// @Router       /posts/{id} [get]
func (h *PostHandler) Get(c echo.Context) error {
	post, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Data: toPostResponse(post)})
}

// Create handles POST /posts — authenticated callers only. The author is
// always the authenticated caller; it is not accepted as input.
//
// @Summary      Publish a new post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      postRequest  true  "Post body"
// @Success      201   {object}  envelope{data=postResponse}
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Router       /posts [post]
func (h *PostHandler) Create(c echo.Context) error {
	userID, err := ctxUserID(c)
	if err != nil {
		return err
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	post, err := h.service.Create(c.Request().Context(), ports.CreatePostInput{
		Title:    req.Title,
		Content:  req.Content,
		AuthorID: userID,
	})
	if err != nil {
		return err
	}

	metrics.PostWritesTotal.WithLabelValues("create").Inc()
	return c.JSON(http.StatusCreated, envelope{Success: true, Data: toPostResponse(post)})
}

// Update handles PUT /posts/:id — owner only. The Ownership middleware has
// already loaded the post and checked authorship.
//
// @Summary      Update a post
// @Tags         posts
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Post id"
// @Param        body  body      postRequest  true  "New post body"
// @Success      200   {object}  envelope{data=postResponse}
// @Failure      400   {object}  envelope
// @Failure      401   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Router       /posts/{id} [put]
func (h *PostHandler) Update(c echo.Context) error {
	post, err := ctxPost(c)
	if err != nil {
		return err
	}

	var req postRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	updated, err := h.service.Update(c.Request().Context(), post, ports.UpdatePostInput{
		Title:   req.Title,
		Content: req.Content,
	})
	if err != nil {
		return err
	}

	metrics.PostWritesTotal.WithLabelValues("update").Inc()
	return c.JSON(http.StatusOK, envelope{Success: true, Data: toPostResponse(updated)})
}

// Delete handles DELETE /posts/:id — owner only.
//
// @Summary      Delete a post
// @Tags         posts
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Post id"
// @Success      200  {object}  envelope
// @Failure      401  {object}  envelope
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /posts/{id} [delete]
func (h *PostHandler) Delete(c echo.Context) error {
	post, err := ctxPost(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), post.ID); err != nil {
		return err
	}

	metrics.PostWritesTotal.WithLabelValues("delete").Inc()
	return c.JSON(http.StatusOK, envelope{Success: true, Message: "post deleted"})
}

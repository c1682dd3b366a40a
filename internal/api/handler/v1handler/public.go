package v1handler

import (
	"net/http"
	"strconv"
	"travel/internal/content"
	"travel/pkg/domain"
	"travel/pkg/result"
	"travel/pkg/serrors"

	"github.com/labstack/echo/v4"
)

const maxPostsPerPage = 100

func (h *Handler) registerPublic(g *echo.Group) {
	cached := func(topics func(c echo.Context) []string) echo.MiddlewareFunc {
		return h.cache.Middleware(topics)
	}
	tags := func(topics ...string) func(echo.Context) []string {
		return func(echo.Context) []string { return topics }
	}

	g.GET("/destinations", h.listDestinations, cached(tags(content.Destinations.ListTopic())))
	g.GET("/destinations/:slug", h.getDestination, cached(func(c echo.Context) []string {
		return []string{content.Destinations.DetailTopic(c.Param("slug"))}
	}))
	g.GET("/packages", h.listPackages,
		cached(tags(content.Packages.ListTopic(), content.Destinations.ListTopic())))
	g.GET("/packages/:slug", h.getPackage, cached(func(c echo.Context) []string {
		return []string{content.Packages.DetailTopic(c.Param("slug"))}
	}))
	g.POST("/packages/:slug/bookings", h.submitBooking)
	g.GET("/posts", h.listPosts, cached(tags(content.Posts.ListTopic(), content.Categories.ListTopic())))
	g.GET("/posts/:slug", h.getPost, cached(func(c echo.Context) []string {
		return []string{content.Posts.DetailTopic(c.Param("slug")), content.Categories.ListTopic()}
	}))
	g.GET("/categories", h.listCategories, cached(tags(content.Categories.ListTopic())))
	g.GET("/planner/options", h.listPlannerOptions, cached(tags(content.PlannerOptions.ListTopic())))
	g.POST("/planner/inquiries", h.submitInquiry)
	g.POST("/contact", h.submitContact)
	g.GET("/settings", h.getSettings, cached(tags(content.SiteSettings.ListTopic())))
}

func (h *Handler) listDestinations(c echo.Context) error {
	return sendList(c, h.content.ListDestinations(reqCtx(c), domain.DestinationFilter{
		ActiveOnly:   true,
		FeaturedOnly: queryBool(c, "featured"),
	}))
}

// getDestination hides inactive destinations behind the same not found
// answer as unknown slugs.
func (h *Handler) getDestination(c echo.Context) error {
	res := h.content.DestinationBySlug(reqCtx(c), c.Param("slug"))
	if res.Success() && !res.Data().Active {
		res = result.Fail[domain.Destination](serrors.With(serrors.ErrNotFound, "destination not found"))
	}

	return send(c, http.StatusOK, res)
}

func (h *Handler) listPackages(c echo.Context) error {
	ctx := reqCtx(c)
	filter := domain.TourPackageFilter{ActiveOnly: true, FeaturedOnly: queryBool(c, "featured")}
	if slug := c.QueryParam("destination"); slug != "" {
		dest := h.content.DestinationBySlug(ctx, slug)
		if !dest.Success() || !dest.Data().Active {
			return sendList(c, result.OK([]domain.TourPackage{}, ""))
		}
		filter.DestinationID = dest.Data().ID
	}

	return sendList(c, h.content.ListTourPackages(ctx, filter))
}

func (h *Handler) getPackage(c echo.Context) error {
	res := h.content.TourPackageBySlug(reqCtx(c), c.Param("slug"))
	if res.Success() && !res.Data().Active {
		res = result.Fail[domain.TourPackage](serrors.With(serrors.ErrNotFound, "package not found"))
	}

	return send(c, http.StatusOK, res)
}

func (h *Handler) submitBooking(c echo.Context) error {
	in, err := bind[content.BookingInput](c)
	if err != nil {
		return fail(c, err)
	}

	return send(c, http.StatusCreated, h.content.SubmitBooking(reqCtx(c), c.Param("slug"), in))
}

func (h *Handler) listPosts(c echo.Context) error {
	filter := domain.PostFilter{PublishedOnly: true, CategorySlug: c.QueryParam("category")}
	if limit, err := strconv.ParseUint(c.QueryParam("limit"), 10, 32); err == nil {
		filter.Limit = uint(min(limit, maxPostsPerPage))
	}

	return sendList(c, h.content.ListPosts(reqCtx(c), filter))
}

func (h *Handler) getPost(c echo.Context) error {
	return send(c, http.StatusOK, h.content.PostBySlug(reqCtx(c), c.Param("slug"), true))
}

func (h *Handler) listCategories(c echo.Context) error {
	return sendList(c, h.content.ListCategories(reqCtx(c)))
}

func (h *Handler) listPlannerOptions(c echo.Context) error {
	return sendList(c, h.content.ListPlannerOptions(reqCtx(c), domain.PlannerOptionFilter{
		Kind:       domain.PlannerOptionKind(c.QueryParam("kind")),
		ActiveOnly: true,
	}))
}

func (h *Handler) submitInquiry(c echo.Context) error {
	in, err := bind[content.InquiryInput](c)
	if err != nil {
		return fail(c, err)
	}

	return send(c, http.StatusCreated, h.content.SubmitInquiry(reqCtx(c), in))
}

func (h *Handler) submitContact(c echo.Context) error {
	in, err := bind[content.ContactInput](c)
	if err != nil {
		return fail(c, err)
	}

	return send(c, http.StatusCreated, h.content.SubmitContact(reqCtx(c), in))
}

func (h *Handler) getSettings(c echo.Context) error {
	res := h.content.GetSettings(reqCtx(c))
	if !res.Success() {
		c.Response().Header().Set("Cache-Control", "no-store")
	}

	return send(c, http.StatusOK, res)
}

func queryBool(c echo.Context, name string) bool {
	v, _ := strconv.ParseBool(c.QueryParam(name))

	return v
}

package v1handler

import (
	"context"
	"net/http"
	"travel/internal/content"
	"travel/pkg/domain"
	"travel/pkg/result"

	"github.com/labstack/echo/v4"
)

// resource is the CRUD surface of an admin managed entity.
type resource[I, T any] struct {
	list   func(ctx context.Context, c echo.Context) result.Result[[]T]
	get    func(ctx context.Context, id int64) result.Result[T]
	create func(ctx context.Context, in I) result.Result[T]
	update func(ctx context.Context, id int64, in I) result.Result[T]
	delete func(ctx context.Context, id int64) result.Result[content.Deleted]
}

func mount[I, T any](g *echo.Group, path string, r resource[I, T]) {
	g.GET(path, func(c echo.Context) error {
		return send(c, http.StatusOK, r.list(reqCtx(c), c))
	})
	g.GET(path+"/:id", func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return fail(c, err)
		}

		return send(c, http.StatusOK, r.get(reqCtx(c), id))
	})
	if r.create != nil {
		g.POST(path, func(c echo.Context) error {
			in, err := bind[I](c)
			if err != nil {
				return fail(c, err)
			}

			return send(c, http.StatusCreated, r.create(reqCtx(c), in))
		})
	}
	if r.update != nil {
		g.PUT(path+"/:id", func(c echo.Context) error {
			id, err := idParam(c)
			if err != nil {
				return fail(c, err)
			}
			in, err := bind[I](c)
			if err != nil {
				return fail(c, err)
			}

			return send(c, http.StatusOK, r.update(reqCtx(c), id, in))
		})
	}
	g.DELETE(path+"/:id", func(c echo.Context) error {
		id, err := idParam(c)
		if err != nil {
			return fail(c, err)
		}

		return send(c, http.StatusOK, r.delete(reqCtx(c), id))
	})
}

func (h *Handler) registerAdmin(g *echo.Group) {
	cs := h.content

	g.GET("", func(c echo.Context) error {
		return c.Redirect(http.StatusFound, "/admin/dashboard")
	})
	g.GET("/dashboard", func(c echo.Context) error {
		return send(c, http.StatusOK, cs.Dashboard(reqCtx(c)))
	})
	g.GET("/settings", func(c echo.Context) error {
		return send(c, http.StatusOK, cs.GetSettings(reqCtx(c)))
	})
	g.PUT("/settings", func(c echo.Context) error {
		in, err := bind[content.SettingsInput](c)
		if err != nil {
			return fail(c, err)
		}

		return send(c, http.StatusOK, cs.UpdateSettings(reqCtx(c), in))
	})

	mount(g, "/destinations", resource[content.DestinationInput, domain.Destination]{
		list: func(ctx context.Context, _ echo.Context) result.Result[[]domain.Destination] {
			return cs.ListDestinations(ctx, domain.DestinationFilter{})
		},
		get:    cs.DestinationByID,
		create: cs.CreateDestination,
		update: cs.UpdateDestination,
		delete: cs.DeleteDestination,
	})
	mount(g, "/packages", resource[content.TourPackageInput, domain.TourPackage]{
		list: func(ctx context.Context, _ echo.Context) result.Result[[]domain.TourPackage] {
			return cs.ListTourPackages(ctx, domain.TourPackageFilter{})
		},
		get:    cs.TourPackageByID,
		create: cs.CreateTourPackage,
		update: cs.UpdateTourPackage,
		delete: cs.DeleteTourPackage,
	})
	mount(g, "/categories", resource[content.CategoryInput, domain.Category]{
		list: func(ctx context.Context, _ echo.Context) result.Result[[]domain.Category] {
			return cs.ListCategories(ctx)
		},
		get:    cs.CategoryByID,
		create: cs.CreateCategory,
		update: cs.UpdateCategory,
		delete: cs.DeleteCategory,
	})
	mount(g, "/posts", resource[content.PostInput, domain.Post]{
		list: func(ctx context.Context, c echo.Context) result.Result[[]domain.Post] {
			return cs.ListPosts(ctx, domain.PostFilter{CategorySlug: c.QueryParam("category")})
		},
		get:    cs.PostByID,
		create: cs.CreatePost,
		update: cs.UpdatePost,
		delete: cs.DeletePost,
	})

	// registered before the :id routes take "order"
	g.PUT("/planner-options/order", func(c echo.Context) error {
		in, err := bind[content.ReorderInput](c)
		if err != nil {
			return fail(c, err)
		}

		return send(c, http.StatusOK, cs.ReorderPlannerOptions(reqCtx(c), in))
	})
	mount(g, "/planner-options", resource[content.PlannerOptionInput, domain.PlannerOption]{
		list: func(ctx context.Context, c echo.Context) result.Result[[]domain.PlannerOption] {
			return cs.ListPlannerOptions(ctx, domain.PlannerOptionFilter{
				Kind: domain.PlannerOptionKind(c.QueryParam("kind")),
			})
		},
		get:    cs.PlannerOptionByID,
		create: cs.CreatePlannerOption,
		update: cs.UpdatePlannerOption,
		delete: cs.DeletePlannerOption,
	})

	mount(g, "/inquiries", resource[content.StatusInput, domain.Inquiry]{
		list: func(ctx context.Context, c echo.Context) result.Result[[]domain.Inquiry] {
			return cs.ListInquiries(ctx, domain.RequestStatus(c.QueryParam("status")))
		},
		get:    cs.InquiryByID,
		update: cs.UpdateInquiryStatus,
		delete: cs.DeleteInquiry,
	})
	mount(g, "/bookings", resource[content.StatusInput, domain.Booking]{
		list: func(ctx context.Context, c echo.Context) result.Result[[]domain.Booking] {
			return cs.ListBookings(ctx, domain.RequestStatus(c.QueryParam("status")))
		},
		get:    cs.BookingByID,
		update: cs.UpdateBookingStatus,
		delete: cs.DeleteBooking,
	})
	mount(g, "/contacts", resource[ReadInput, domain.ContactSubmission]{
		list: func(ctx context.Context, c echo.Context) result.Result[[]domain.ContactSubmission] {
			return cs.ListContacts(ctx, queryBool(c, "unread"))
		},
		get: cs.ContactByID,
		update: func(ctx context.Context, id int64, in ReadInput) result.Result[domain.ContactSubmission] {
			return cs.MarkContactRead(ctx, id, in.Read)
		},
		delete: cs.DeleteContact,
	})

	g.POST("/uploads", h.upload)
	g.DELETE("/uploads", h.deleteUpload)
}

// ReadInput marks a contact submission read or unread.
type ReadInput struct {
	Read bool `json:"read"`
}

package content_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"travel/internal/content"
	"travel/pkg/domain"
	"travel/pkg/serrors"
	"travel/pkg/storage"
	mockstorage "travel/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 5, 1, 10, 30, 0, 0, time.UTC)

func newTestService(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, *content.Service) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	s := content.New(st, content.WithClock(func() time.Time { return fixedNow }))

	return ctrl, st, s
}

// expectWithTx runs the WithTx callback against a fresh MockAllStorage.
func expectWithTx(
	t *testing.T,
	ctrl *gomock.Controller,
	m *mockstorage.MockStorage,
	fn func(tx *mockstorage.MockAllStorage)) {
	t.Helper()

	m.EXPECT().WithTx(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, cb func(storage.AllStorage) error) error {
			tx := mockstorage.NewMockAllStorage(ctrl)
			if fn != nil {
				fn(tx)
			}

			return cb(tx)
		},
	)
}

// expectRevalidate captures the topics of the next revalidation job.
func expectRevalidate(m *mockstorage.MockStorage, topics *[]string) {
	m.EXPECT().AddJob(gomock.Any(), gomock.AssignableToTypeOf(content.RevalidateArgs{}), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			if topics != nil {
				*topics = args.(content.RevalidateArgs).Topics
			}

			return true, nil
		},
	)
}

func validDestination() content.DestinationInput {
	return content.DestinationInput{Name: "Bali Island", Country: "Indonesia"}
}

func TestCreateDestination_MissingRequiredField(t *testing.T) {
	_, _, s := newTestService(t)

	in := validDestination()
	in.Name = ""
	res := s.CreateDestination(context.Background(), in)

	require.False(t, res.Success())
	require.Equal(t, serrors.ErrBadRequest, res.Kind())
	env := res.Envelope()
	require.Equal(t, "Name is required", env.Error)
	require.Equal(t, "name", env.Fields[0].Field)
}

func TestCreateDestination_DerivesSlugAndInvalidates(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StoreDestination(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.Destination) (*domain.Destination, error) {
			require.Equal(t, "bali-island", d.Slug)
			require.True(t, d.Active)
			d.ID = 7

			return &d, nil
		},
	)
	var topics []string
	expectRevalidate(st, &topics)

	res := s.CreateDestination(context.Background(), validDestination())
	require.True(t, res.Success())
	require.Equal(t, int64(7), res.Data().ID)
	require.Equal(t, "destination created", res.Message())
	require.ElementsMatch(t, []string{"destinations", "admin:destinations", "destination:bali-island"}, topics)
}

func TestCreateDestination_NameWithoutSlugCharacters(t *testing.T) {
	_, _, s := newTestService(t)

	for _, name := range []string{"東京", "!!!"} {
		res := s.CreateDestination(context.Background(), content.DestinationInput{Name: name, Country: "Japan"})

		require.False(t, res.Success(), name)
		require.Equal(t, serrors.ErrBadRequest, res.Kind(), name)
		env := res.Envelope()
		require.Equal(t, "Slug is required", env.Error, name)
		require.Equal(t, "slug", env.Fields[0].Field, name)
	}
}

func TestCreatePlannerOption_LabelWithoutValueCharacters(t *testing.T) {
	_, _, s := newTestService(t)

	res := s.CreatePlannerOption(context.Background(), content.PlannerOptionInput{
		Kind:  domain.PlannerOptionInterest,
		Label: "★★★",
	})

	require.False(t, res.Success())
	require.Equal(t, "Value is required", res.Envelope().Error)
}

func TestCreateDestination_SlugCollision(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StoreDestination(gomock.Any(), gomock.Any()).Return(nil, &storage.UniqueViolationError{
		Table:      "destinations",
		Field:      "slug",
		Constraint: "destinations_slug_key",
		Err:        errors.New("duplicate key value violates unique constraint"),
	})

	res := s.CreateDestination(context.Background(), validDestination())
	require.False(t, res.Success())
	require.Equal(t, serrors.ErrConflict, res.Kind())
	require.Equal(t, "slug must be unique", res.Envelope().Error)
}

func TestCreateDestination_StoreFailureHidesCause(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StoreDestination(gomock.Any(), gomock.Any()).
		Return(nil, errors.New("dial tcp 10.0.0.5:5432: connection refused"))

	env := s.CreateDestination(context.Background(), validDestination()).Envelope()
	require.False(t, env.Success)
	require.Equal(t, "failed to create destination", env.Error)
	require.Equal(t, "INTERNAL", env.Code)
}

func TestCreateDestination_EnqueueFailureStillSucceeds(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StoreDestination(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, d domain.Destination) (*domain.Destination, error) { return &d, nil },
	)
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).Return(false, errors.New("queue down"))

	require.True(t, s.CreateDestination(context.Background(), validDestination()).Success())
}

func TestUpdateDestination_NotFound(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DestinationByID(gomock.Any(), int64(42)).Return(nil, nil)
	})

	res := s.UpdateDestination(context.Background(), 42, validDestination())
	require.False(t, res.Success())
	require.True(t, res.NotFound())
	require.Equal(t, "destination not found", res.Envelope().Error)
}

func TestUpdateDestination_InvalidatesOldAndNewSlug(t *testing.T) {
	ctrl, st, s := newTestService(t)

	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().DestinationByID(gomock.Any(), int64(3)).Return(&domain.Destination{ID: 3, Slug: "bali"}, nil)
		tx.EXPECT().UpdateDestination(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, d domain.Destination) (*domain.Destination, error) {
				require.Equal(t, int64(3), d.ID)

				return &d, nil
			},
		)
	})
	var topics []string
	expectRevalidate(st, &topics)

	res := s.UpdateDestination(context.Background(), 3, validDestination())
	require.True(t, res.Success())
	require.Equal(t, "destination updated", res.Message())
	require.Contains(t, topics, "destination:bali")
	require.Contains(t, topics, "destination:bali-island")
}

func TestDeleteDestination_MissingIDSucceeds(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().DeleteDestination(gomock.Any(), int64(999)).Return(nil, nil)
	expectRevalidate(st, nil)

	res := s.DeleteDestination(context.Background(), 999)
	require.True(t, res.Success())
	require.Equal(t, int64(999), res.Data().ID)
}

func TestDeleteDestination_StoreFailure(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().DeleteDestination(gomock.Any(), int64(1)).Return(nil, errors.New("boom"))

	res := s.DeleteDestination(context.Background(), 1)
	require.False(t, res.Success())
	require.Equal(t, "failed to delete destination", res.Envelope().Error)
}

func TestListDestinations(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().Destinations(gomock.Any(), domain.DestinationFilter{ActiveOnly: true}).Return(nil, nil)
	res := s.ListDestinations(context.Background(), domain.DestinationFilter{ActiveOnly: true})
	require.True(t, res.Success())
	require.NotNil(t, res.Data())
	require.Empty(t, res.Data())

	st.EXPECT().Destinations(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
	res = s.ListDestinations(context.Background(), domain.DestinationFilter{})
	require.False(t, res.Success())
	require.Empty(t, res.OrEmpty())
	require.Equal(t, "failed to fetch destinations", res.Envelope().Error)
}

func TestDestinationBySlug_NotFoundIsDistinct(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().DestinationBySlug(gomock.Any(), "atlantis").Return(nil, nil)
	res := s.DestinationBySlug(context.Background(), "atlantis")
	require.True(t, res.NotFound())

	st.EXPECT().DestinationBySlug(gomock.Any(), "bali").Return(nil, errors.New("boom"))
	res = s.DestinationBySlug(context.Background(), "bali")
	require.False(t, res.Success())
	require.False(t, res.NotFound())
}

func TestCreateTourPackage_UnknownDestination(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().DestinationByID(gomock.Any(), int64(5)).Return(nil, nil)

	res := s.CreateTourPackage(context.Background(), content.TourPackageInput{
		Title:         "Ubud Retreat",
		DestinationID: 5,
		DurationDays:  4,
	})
	require.Equal(t, serrors.ErrBadRequest, res.Kind())
	require.Equal(t, "destination does not exist", res.Envelope().Error)
}

func TestCreateTourPackage_TouchesDashboard(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StoreTourPackage(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.TourPackage) (*domain.TourPackage, error) {
			require.Equal(t, "USD", p.Currency)
			require.Equal(t, "ubud-retreat", p.Slug)

			return &p, nil
		},
	)
	var topics []string
	expectRevalidate(st, &topics)

	res := s.CreateTourPackage(context.Background(), content.TourPackageInput{Title: "Ubud Retreat", DurationDays: 4})
	require.True(t, res.Success())
	require.Contains(t, topics, content.TopicDashboard)
	require.Contains(t, topics, "package:ubud-retreat")
}

func TestCreatePost_SanitizesAndPublishes(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StorePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Post) (*domain.Post, error) {
			require.NotContains(t, p.Content, "<script")
			require.Contains(t, p.Content, "<p>Rice terraces")
			require.Equal(t, "Rice terraces at dawn.", p.Excerpt)
			require.Equal(t, fixedNow, p.PublishedAt)

			return &p, nil
		},
	)
	expectRevalidate(st, nil)

	res := s.CreatePost(context.Background(), content.PostInput{
		Title:     "Ten days in Bali",
		Content:   `<p>Rice terraces at dawn.</p><script>alert(1)</script>`,
		Published: true,
	})
	require.True(t, res.Success())
}

func TestCreatePost_LongExcerptIsTruncated(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StorePost(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p domain.Post) (*domain.Post, error) {
			require.LessOrEqual(t, len([]rune(p.Excerpt)), 201)
			require.True(t, strings.HasSuffix(p.Excerpt, "…"))
			require.True(t, p.PublishedAt.IsZero())

			return &p, nil
		},
	)
	expectRevalidate(st, nil)

	res := s.CreatePost(context.Background(), content.PostInput{
		Title:   "Draft",
		Content: "<p>" + strings.Repeat("temple beach ", 40) + "</p>",
	})
	require.True(t, res.Success())
}

func TestPostBySlug_DraftHiddenFromPublic(t *testing.T) {
	_, st, s := newTestService(t)

	draft := &domain.Post{ID: 1, Slug: "draft", Published: false}
	st.EXPECT().PostBySlug(gomock.Any(), "draft").Return(draft, nil).Times(2)

	require.True(t, s.PostBySlug(context.Background(), "draft", true).NotFound())
	require.True(t, s.PostBySlug(context.Background(), "draft", false).Success())
}

func TestDeleteCategory_InvalidatesPosts(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().DeleteCategory(gomock.Any(), int64(2)).Return(&domain.Category{ID: 2, Slug: "guides"}, nil)
	var first, second []string
	expectRevalidate(st, &first)
	expectRevalidate(st, &second)

	require.True(t, s.DeleteCategory(context.Background(), 2).Success())
	require.Contains(t, first, "category:guides")
	require.ElementsMatch(t, []string{"posts", "admin:posts"}, second)
}

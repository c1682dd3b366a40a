package content_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
	"travel/internal/content"
	"travel/pkg/domain"
	"travel/pkg/serrors"
	mockstorage "travel/pkg/storage/mock"

	"github.com/riverqueue/river"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func validInquiry() content.InquiryInput {
	return content.InquiryInput{
		Name:      "Ana",
		Email:     "ana@example.com",
		Phone:     "+62 812 3456 7890",
		StartDate: "2025-06-10",
		EndDate:   "2025-06-20",
		Adults:    2,
	}
}

func TestSubmitInquiry_EndDateMustFollowStartDate(t *testing.T) {
	_, _, s := newTestService(t)

	in := validInquiry()
	in.EndDate = "2025-06-01"
	res := s.SubmitInquiry(context.Background(), in)

	require.Equal(t, serrors.ErrBadRequest, res.Kind())
	env := res.Envelope()
	require.Equal(t, "endDate", env.Fields[0].Field)
	require.Equal(t, "End date must be after start date", env.Error)
}

func TestSubmitInquiry_StoredAsPending(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StoreInquiry(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, i domain.Inquiry) (*domain.Inquiry, error) {
			require.Equal(t, domain.RequestStatusPending, i.Status)
			require.Equal(t, time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC), i.StartDate)
			i.ID = 1

			return &i, nil
		},
	)
	var topics []string
	expectRevalidate(st, &topics)

	res := s.SubmitInquiry(context.Background(), validInquiry())
	require.True(t, res.Success())
	require.ElementsMatch(t, []string{"admin:inquiries", content.TopicDashboard}, topics)
}

func TestUpdateInquiryStatus(t *testing.T) {
	_, st, s := newTestService(t)

	res := s.UpdateInquiryStatus(context.Background(), 1, content.StatusInput{Status: "lost"})
	require.Equal(t, serrors.ErrBadRequest, res.Kind())

	st.EXPECT().UpdateInquiryStatus(gomock.Any(), int64(2), domain.RequestStatusContacted).Return(nil, nil)
	res = s.UpdateInquiryStatus(context.Background(), 2, content.StatusInput{Status: domain.RequestStatusContacted})
	require.True(t, res.NotFound())

	st.EXPECT().UpdateInquiryStatus(gomock.Any(), int64(3), domain.RequestStatusConfirmed).
		Return(&domain.Inquiry{ID: 3, Status: domain.RequestStatusConfirmed}, nil)
	expectRevalidate(st, nil)
	res = s.UpdateInquiryStatus(context.Background(), 3, content.StatusInput{Status: domain.RequestStatusConfirmed})
	require.True(t, res.Success())
	require.Equal(t, "inquiry updated", res.Message())
}

func TestReorderPlannerOptions(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().SetPlannerOptionPosition(gomock.Any(), int64(1), 2).Return(nil)
	st.EXPECT().SetPlannerOptionPosition(gomock.Any(), int64(2), 1).Return(nil)
	expectRevalidate(st, nil)

	res := s.ReorderPlannerOptions(context.Background(), content.ReorderInput{Items: []domain.OptionPosition{
		{ID: 1, Position: 2},
		{ID: 2, Position: 1},
	}})
	require.True(t, res.Success())
	require.Len(t, res.Data(), 2)
}

func TestReorderPlannerOptions_PartialFailure(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().SetPlannerOptionPosition(gomock.Any(), int64(1), 0).Return(nil)
	st.EXPECT().SetPlannerOptionPosition(gomock.Any(), int64(2), 1).Return(errors.New("deadlock detected"))

	res := s.ReorderPlannerOptions(context.Background(), content.ReorderInput{Items: []domain.OptionPosition{
		{ID: 1, Position: 0},
		{ID: 2, Position: 1},
	}})
	require.False(t, res.Success())
	require.Equal(t, "failed to reorder planner options", res.Envelope().Error)
}

func TestReorderPlannerOptions_Invalid(t *testing.T) {
	_, _, s := newTestService(t)

	res := s.ReorderPlannerOptions(context.Background(), content.ReorderInput{})
	require.Equal(t, serrors.ErrBadRequest, res.Kind())

	res = s.ReorderPlannerOptions(context.Background(), content.ReorderInput{Items: []domain.OptionPosition{
		{ID: 0, Position: 1},
	}})
	require.Equal(t, serrors.ErrBadRequest, res.Kind())
}

func TestReorderPlannerOptions_TooManyItems(t *testing.T) {
	_, _, s := newTestService(t)

	items := make([]domain.OptionPosition, 501)
	for i := range items {
		items[i] = domain.OptionPosition{ID: int64(i + 1), Position: i}
	}

	res := s.ReorderPlannerOptions(context.Background(), content.ReorderInput{Items: items})
	require.Equal(t, serrors.ErrBadRequest, res.Kind())
	require.Equal(t, "Items must be at most 500", res.Envelope().Error)
}

func TestReorderPlannerOptions_BoundedConcurrency(t *testing.T) {
	_, st, s := newTestService(t)

	var running, peak atomic.Int32
	st.EXPECT().SetPlannerOptionPosition(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(context.Context, int64, int) error {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(time.Millisecond)
			running.Add(-1)

			return nil
		},
	).Times(40)
	expectRevalidate(st, nil)

	items := make([]domain.OptionPosition, 40)
	for i := range items {
		items[i] = domain.OptionPosition{ID: int64(i + 1), Position: i}
	}

	require.True(t, s.ReorderPlannerOptions(context.Background(), content.ReorderInput{Items: items}).Success())
	require.LessOrEqual(t, peak.Load(), int32(8))
}

func TestCreatePlannerOption_DerivesValue(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StorePlannerOption(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, o domain.PlannerOption) (*domain.PlannerOption, error) {
			require.Equal(t, "beach-sun", o.Value)
			require.True(t, o.Active)

			return &o, nil
		},
	)
	var topics []string
	expectRevalidate(st, &topics)

	res := s.CreatePlannerOption(context.Background(), content.PlannerOptionInput{
		Kind:  domain.PlannerOptionInterest,
		Label: "Beach & Sun",
	})
	require.True(t, res.Success())
	require.ElementsMatch(t, []string{"planner-options", "admin:planner-options"}, topics)
}

func TestGetSettings_Idempotent(t *testing.T) {
	_, st, s := newTestService(t)

	row := domain.DefaultSettings()
	row.ID = 1
	gomock.InOrder(
		st.EXPECT().Settings(gomock.Any()).Return(nil, nil),
		st.EXPECT().EnsureSettings(gomock.Any(), domain.DefaultSettings()).Return(&row, nil),
		st.EXPECT().Settings(gomock.Any()).Return(&row, nil),
	)

	first := s.GetSettings(context.Background())
	second := s.GetSettings(context.Background())
	require.True(t, first.Success())
	require.True(t, second.Success())
	require.Equal(t, first.Data(), second.Data())
	require.Equal(t, int64(1), second.Data().ID)
}

func TestUpdateSettings_CreatesWhenAbsent(t *testing.T) {
	ctrl, st, s := newTestService(t)

	row := domain.DefaultSettings()
	row.ID = 4
	expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
		tx.EXPECT().Settings(gomock.Any()).Return(nil, nil)
		tx.EXPECT().EnsureSettings(gomock.Any(), gomock.Any()).Return(&row, nil)
		tx.EXPECT().UpdateSettings(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, set domain.Settings) (*domain.Settings, error) {
				require.Equal(t, int64(4), set.ID)
				require.Equal(t, "Island Hopper", set.SiteName)

				return &set, nil
			},
		)
	})
	var topics []string
	expectRevalidate(st, &topics)

	res := s.UpdateSettings(context.Background(), content.SettingsInput{
		SiteName:     " Island Hopper ",
		ContactEmail: "owner@example.com",
	})
	require.True(t, res.Success())
	require.Equal(t, "settings updated", res.Message())
	require.ElementsMatch(t, []string{"settings", "admin:settings"}, topics)
}

func TestUpdateSettings_InvalidEmail(t *testing.T) {
	_, _, s := newTestService(t)

	res := s.UpdateSettings(context.Background(), content.SettingsInput{SiteName: "x", ContactEmail: "nope"})
	require.Equal(t, "Contact email must be a valid email address", res.Envelope().Error)
}

func TestDashboard_CombinesInquiriesAndBookings(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().CountInquiries(gomock.Any(), domain.RequestStatus("")).Return(int64(5), nil)
	st.EXPECT().CountInquiries(gomock.Any(), domain.RequestStatusPending).Return(int64(2), nil)
	st.EXPECT().CountBookings(gomock.Any(), domain.RequestStatus("")).Return(int64(3), nil)
	st.EXPECT().CountBookings(gomock.Any(), domain.RequestStatusPending).Return(int64(1), nil)
	st.EXPECT().CountTourPackages(gomock.Any()).Return(int64(12), nil)
	st.EXPECT().CountPosts(gomock.Any()).Return(int64(8), nil)
	st.EXPECT().CountContacts(gomock.Any(), true).Return(int64(4), nil)

	res := s.Dashboard(context.Background())
	require.True(t, res.Success())
	require.Equal(t, domain.DashboardStats{
		TotalInquiries:   8,
		PendingInquiries: 3,
		Packages:         12,
		Posts:            8,
		UnreadContacts:   4,
	}, res.Data())
}

func TestDashboard_Failure(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().CountInquiries(gomock.Any(), gomock.Any()).Return(int64(0), errors.New("boom")).AnyTimes()
	st.EXPECT().CountBookings(gomock.Any(), gomock.Any()).Return(int64(0), nil).AnyTimes()
	st.EXPECT().CountTourPackages(gomock.Any()).Return(int64(0), nil).AnyTimes()
	st.EXPECT().CountPosts(gomock.Any()).Return(int64(0), nil).AnyTimes()
	st.EXPECT().CountContacts(gomock.Any(), true).Return(int64(0), nil).AnyTimes()

	res := s.Dashboard(context.Background())
	require.False(t, res.Success())
	require.Equal(t, "failed to fetch dashboard stats", res.Envelope().Error)
}

func TestSubmitBooking(t *testing.T) {
	valid := content.BookingInput{
		Name:       "Ana",
		Email:      "ana@example.com",
		Phone:      "081234567",
		TravelDate: "2025-07-01",
		Travelers:  2,
	}

	t.Run("inactive package", func(t *testing.T) {
		ctrl, st, s := newTestService(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().TourPackageBySlug(gomock.Any(), "ubud").Return(&domain.TourPackage{ID: 1, Active: false}, nil)
		})

		res := s.SubmitBooking(context.Background(), "ubud", valid)
		require.True(t, res.NotFound())
		require.Equal(t, "package not found", res.Envelope().Error)
	})

	t.Run("travel date in the past", func(t *testing.T) {
		ctrl, st, s := newTestService(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().TourPackageBySlug(gomock.Any(), "ubud").Return(&domain.TourPackage{ID: 1, Active: true}, nil)
		})

		in := valid
		in.TravelDate = "2025-04-30"
		res := s.SubmitBooking(context.Background(), "ubud", in)
		require.Equal(t, serrors.ErrBadRequest, res.Kind())
	})

	t.Run("stored", func(t *testing.T) {
		ctrl, st, s := newTestService(t)
		expectWithTx(t, ctrl, st, func(tx *mockstorage.MockAllStorage) {
			tx.EXPECT().TourPackageBySlug(gomock.Any(), "ubud").Return(&domain.TourPackage{ID: 9, Active: true}, nil)
			tx.EXPECT().StoreBooking(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, b domain.Booking) (*domain.Booking, error) {
					require.Equal(t, int64(9), b.PackageID)
					require.Equal(t, domain.RequestStatusPending, b.Status)

					return &b, nil
				},
			)
		})
		expectRevalidate(st, nil)

		// travelling today is allowed
		in := valid
		in.TravelDate = "2025-05-01"
		res := s.SubmitBooking(context.Background(), "ubud", in)
		require.True(t, res.Success())
	})
}

func TestSubmitContact_EnqueuesNotification(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().StoreContact(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, c domain.ContactSubmission) (*domain.ContactSubmission, error) {
			c.ID = 11

			return &c, nil
		},
	)
	st.EXPECT().AddJob(gomock.Any(), content.ContactNotificationArgs{ContactID: 11}, gomock.Nil()).
		Return(false, errors.New("queue down"))
	expectRevalidate(st, nil)

	res := s.SubmitContact(context.Background(), content.ContactInput{
		Name:    "Ana",
		Email:   "ana@example.com",
		Message: "Do you run tours in the rainy season?",
	})
	require.True(t, res.Success())
	require.Equal(t, int64(11), res.Data().ID)
}

func TestSubmitContact_MissingMessage(t *testing.T) {
	_, _, s := newTestService(t)

	res := s.SubmitContact(context.Background(), content.ContactInput{Name: "Ana", Email: "ana@example.com"})
	require.Equal(t, "Message is required", res.Envelope().Error)
}

func TestMarkContactRead(t *testing.T) {
	_, st, s := newTestService(t)

	st.EXPECT().MarkContactRead(gomock.Any(), int64(5), true).Return(nil, nil)
	require.True(t, s.MarkContactRead(context.Background(), 5, true).NotFound())

	st.EXPECT().MarkContactRead(gomock.Any(), int64(6), true).Return(&domain.ContactSubmission{ID: 6, Read: true}, nil)
	st.EXPECT().AddJob(gomock.Any(), gomock.Any(), gomock.Nil()).DoAndReturn(
		func(_ context.Context, args river.JobArgs, _ *river.InsertOpts) (bool, error) {
			require.Contains(t, args.(content.RevalidateArgs).Topics, content.TopicDashboard)

			return true, nil
		},
	)
	require.True(t, s.MarkContactRead(context.Background(), 6, true).Success())
}

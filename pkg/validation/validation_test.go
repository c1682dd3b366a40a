package validation_test

import (
	"testing"
	"travel/pkg/validation"

	"github.com/stretchr/testify/require"
)

type tripForm struct {
	Name      string `json:"name"      validate:"required,max=10"`
	Email     string `json:"email"     validate:"required,email"`
	Phone     string `json:"phone"     validate:"omitempty,phone"`
	Website   string `json:"website"   validate:"omitempty,weburl"`
	Slug      string `json:"slug"      validate:"omitempty,slug"`
	StartDate string `json:"startDate" validate:"required,date"                label:"Start date"`
	EndDate   string `json:"endDate"   validate:"required,date,after=StartDate" label:"End date"`
}

func validForm() tripForm {
	return tripForm{
		Name:      "Ana",
		Email:     "ana@example.com",
		Phone:     "+62 812-3456-7890",
		Website:   "https://example.com",
		Slug:      "bali-escape",
		StartDate: "2025-05-01",
		EndDate:   "2025-05-10",
	}
}

func TestValidate_Valid(t *testing.T) {
	require.NoError(t, validation.Validate(validForm()))
	f := validForm()
	require.NoError(t, validation.Validate(&f))
}

func TestValidate_FirstErrorFollowsFieldOrder(t *testing.T) {
	f := validForm()
	f.Name = ""
	f.Email = "nope"

	err := validation.Validate(f)
	require.Error(t, err)

	var verrs validation.Errors
	require.ErrorAs(t, err, &verrs)
	require.Len(t, verrs, 2)
	require.Equal(t, "name", verrs.First().Field)
	require.Equal(t, "required", verrs.First().Rule)
	require.Equal(t, "Name is required", err.Error())

	fe, ok := verrs.Field("email")
	require.True(t, ok)
	require.Equal(t, "Email must be a valid email address", fe.Message)
}

func TestValidate_EndDateMustFollowStartDate(t *testing.T) {
	tests := []struct {
		name  string
		start string
		end   string
		ok    bool
	}{
		{name: "end before start", start: "2025-05-10", end: "2025-05-01", ok: false},
		{name: "same day", start: "2025-05-10", end: "2025-05-10", ok: false},
		{name: "end after start", start: "2025-05-10", end: "2025-05-11", ok: true},
		{name: "rfc3339 end after start", start: "2025-05-10", end: "2025-05-10T09:00:00Z", ok: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := validForm()
			f.StartDate = tt.start
			f.EndDate = tt.end

			err := validation.Validate(f)
			if tt.ok {
				require.NoError(t, err)

				return
			}

			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			require.Equal(t, "endDate", verrs.First().Field)
			require.Equal(t, "End date must be after start date", verrs.First().Message)
		})
	}
}

func TestIsPhone(t *testing.T) {
	valid := []string{"+62 812 3456 7890", "0062-812-3456-7890", "(021) 555-0199", "5550199", "+1.415.555.2671"}
	for _, p := range valid {
		require.True(t, validation.IsPhone(p), p)
	}

	invalid := []string{"", "123", "+1 (415) abc", "++6281234567", "1234567890123456"}
	for _, p := range invalid {
		require.False(t, validation.IsPhone(p), p)
	}
}

func TestIsEmail(t *testing.T) {
	require.True(t, validation.IsEmail("a@b.co"))
	require.True(t, validation.IsEmail("first.last+tag@sub.example.travel"))
	require.False(t, validation.IsEmail("a@b"))
	require.False(t, validation.IsEmail("a b@c.com"))
	require.False(t, validation.IsEmail("@c.com"))
}

func TestValidate_Messages(t *testing.T) {
	f := validForm()
	f.Name = "a much too long name"
	require.EqualError(t, validation.Validate(f), "Name must be at most 10 characters")

	f = validForm()
	f.Slug = "Not A Slug"
	require.EqualError(t, validation.Validate(f), "Slug may only contain lower-case letters, digits and hyphens")

	f = validForm()
	f.Website = "ftp://example.com"
	require.EqualError(t, validation.Validate(f), "Website must be a valid URL")

	f = validForm()
	f.StartDate = "tomorrow"
	require.EqualError(t, validation.Validate(f), "Start date must be a valid date")
}

package content

import (
	"strings"
	"time"
	"travel/pkg/domain"
	"travel/pkg/validation"
)

// DestinationInput is the admin form of a destination.
type DestinationInput struct {
	Name        string `json:"name"        validate:"required,max=120"`
	Slug        string `json:"slug"        validate:"required,slug,max=120"`
	Country     string `json:"country"     validate:"required,max=80"`
	Region      string `json:"region"      validate:"max=80"`
	Summary     string `json:"summary"     validate:"max=300"`
	Description string `json:"description" validate:"max=10000"`
	ImageURL    string `json:"imageUrl"    validate:"omitempty,weburl"   label:"Image URL"`
	Featured    bool   `json:"featured"`
	Active      *bool  `json:"active"`
}

func (in *DestinationInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" {
		in.Slug = Slugify(in.Name)
	}
}

func (in DestinationInput) toDomain() domain.Destination {
	return domain.Destination{
		Name:        in.Name,
		Slug:        in.Slug,
		Country:     strings.TrimSpace(in.Country),
		Region:      strings.TrimSpace(in.Region),
		Summary:     strings.TrimSpace(in.Summary),
		Description: in.Description,
		ImageURL:    in.ImageURL,
		Featured:    in.Featured,
		Active:      boolOr(in.Active, true),
	}
}

// TourPackageInput is the admin form of a tour package.
type TourPackageInput struct {
	Title         string   `json:"title"         validate:"required,max=160"`
	Slug          string   `json:"slug"          validate:"required,slug,max=120"`
	DestinationID int64    `json:"destinationId" validate:"gte=0"                  label:"Destination"`
	Summary       string   `json:"summary"       validate:"max=300"`
	Description   string   `json:"description"   validate:"max=20000"`
	DurationDays  int      `json:"durationDays"  validate:"required,gte=1,lte=90"  label:"Duration"`
	PriceCents    int64    `json:"priceCents"    validate:"gte=0"                  label:"Price"`
	Currency      string   `json:"currency"      validate:"omitempty,len=3,alpha"`
	ImageURL      string   `json:"imageUrl"      validate:"omitempty,weburl"       label:"Image URL"`
	Highlights    []string `json:"highlights"    validate:"max=20,dive,required,max=200"`
	Featured      bool     `json:"featured"`
	Active        *bool    `json:"active"`
}

func (in *TourPackageInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" {
		in.Slug = Slugify(in.Title)
	}
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	if in.Currency == "" {
		in.Currency = "USD"
	}
}

func (in TourPackageInput) toDomain() domain.TourPackage {
	return domain.TourPackage{
		Title:         in.Title,
		Slug:          in.Slug,
		DestinationID: in.DestinationID,
		Summary:       strings.TrimSpace(in.Summary),
		Description:   in.Description,
		DurationDays:  in.DurationDays,
		PriceCents:    in.PriceCents,
		Currency:      in.Currency,
		ImageURL:      in.ImageURL,
		Highlights:    in.Highlights,
		Featured:      in.Featured,
		Active:        boolOr(in.Active, true),
	}
}

// CategoryInput is the admin form of a blog category.
type CategoryInput struct {
	Name        string `json:"name"        validate:"required,max=80"`
	Slug        string `json:"slug"        validate:"required,slug,max=120"`
	Description string `json:"description" validate:"max=500"`
}

func (in *CategoryInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" {
		in.Slug = Slugify(in.Name)
	}
}

func (in CategoryInput) toDomain() domain.Category {
	return domain.Category{
		Name:        in.Name,
		Slug:        in.Slug,
		Description: strings.TrimSpace(in.Description),
	}
}

// PostInput is the admin form of a blog post. Content is HTML and is
// sanitized before it is stored.
type PostInput struct {
	Title         string `json:"title"         validate:"required,max=200"`
	Slug          string `json:"slug"          validate:"required,slug,max=120"`
	Excerpt       string `json:"excerpt"       validate:"max=500"`
	Content       string `json:"content"       validate:"required"`
	CoverImageURL string `json:"coverImageUrl" validate:"omitempty,weburl"    label:"Cover image URL"`
	CategoryID    int64  `json:"categoryId"    validate:"gte=0"               label:"Category"`
	Author        string `json:"author"        validate:"max=120"`
	Published     bool   `json:"published"`
	PublishedAt   string `json:"publishedAt"   validate:"omitempty,date"      label:"Publish date"`
}

func (in *PostInput) normalize() {
	in.Title = strings.TrimSpace(in.Title)
	in.Slug = strings.TrimSpace(in.Slug)
	if in.Slug == "" {
		in.Slug = Slugify(in.Title)
	}
}

func (in PostInput) toDomain() domain.Post {
	post := domain.Post{
		Title:         in.Title,
		Slug:          in.Slug,
		Excerpt:       strings.TrimSpace(in.Excerpt),
		Content:       in.Content,
		CoverImageURL: in.CoverImageURL,
		CategoryID:    in.CategoryID,
		Author:        strings.TrimSpace(in.Author),
		Published:     in.Published,
	}
	if in.PublishedAt != "" {
		post.PublishedAt, _ = validation.ParseDate(in.PublishedAt)
	}

	return post
}

// PlannerOptionInput is the admin form of a trip planner choice.
type PlannerOptionInput struct {
	Kind     domain.PlannerOptionKind `json:"kind"     validate:"required,oneof=destination travel_style interest accommodation budget"` //nolint: lll
	Label    string                   `json:"label"    validate:"required,max=120"`
	Value    string                   `json:"value"    validate:"required,max=120"`
	Position int                      `json:"position" validate:"gte=0"`
	Active   *bool                    `json:"active"`
}

func (in *PlannerOptionInput) normalize() {
	in.Label = strings.TrimSpace(in.Label)
	in.Value = strings.TrimSpace(in.Value)
	if in.Value == "" {
		in.Value = Slugify(in.Label)
	}
}

func (in PlannerOptionInput) toDomain() domain.PlannerOption {
	return domain.PlannerOption{
		Kind:     in.Kind,
		Label:    in.Label,
		Value:    in.Value,
		Position: in.Position,
		Active:   boolOr(in.Active, true),
	}
}

// ReorderInput assigns new positions to planner options.
type ReorderInput struct {
	Items []domain.OptionPosition `json:"items" validate:"required,min=1,max=500,dive"`
}

// SettingsInput is the admin form of the site settings.
type SettingsInput struct {
	SiteName     string `json:"siteName"     validate:"required,max=120"`
	Tagline      string `json:"tagline"      validate:"max=200"`
	ContactEmail string `json:"contactEmail" validate:"required,email"`
	ContactPhone string `json:"contactPhone" validate:"omitempty,phone"`
	Address      string `json:"address"      validate:"max=300"`
	WhatsApp     string `json:"whatsapp"     validate:"omitempty,phone"  label:"WhatsApp"`
	FacebookURL  string `json:"facebookUrl"  validate:"omitempty,weburl" label:"Facebook URL"`
	InstagramURL string `json:"instagramUrl" validate:"omitempty,weburl" label:"Instagram URL"`
}

func (in *SettingsInput) normalize() {
	in.SiteName = strings.TrimSpace(in.SiteName)
	in.ContactEmail = strings.TrimSpace(in.ContactEmail)
}

func (in SettingsInput) apply(s domain.Settings) domain.Settings {
	s.SiteName = in.SiteName
	s.Tagline = strings.TrimSpace(in.Tagline)
	s.ContactEmail = in.ContactEmail
	s.ContactPhone = strings.TrimSpace(in.ContactPhone)
	s.Address = strings.TrimSpace(in.Address)
	s.WhatsApp = strings.TrimSpace(in.WhatsApp)
	s.FacebookURL = in.FacebookURL
	s.InstagramURL = in.InstagramURL

	return s
}

// InquiryInput is the public trip planner form.
type InquiryInput struct {
	Name        string   `json:"name"        validate:"required,max=120"`
	Email       string   `json:"email"       validate:"required,email"`
	Phone       string   `json:"phone"       validate:"required,phone"`
	Destination string   `json:"destination" validate:"max=120"`
	StartDate   string   `json:"startDate"   validate:"required,date"                 label:"Start date"`
	EndDate     string   `json:"endDate"     validate:"required,date,after=StartDate" label:"End date"`
	Adults      int      `json:"adults"      validate:"required,gte=1,lte=50"`
	Children    int      `json:"children"    validate:"gte=0,lte=50"`
	Budget      string   `json:"budget"      validate:"max=120"`
	TravelStyle string   `json:"travelStyle" validate:"max=120"`
	Interests   []string `json:"interests"   validate:"max=20,dive,max=120"`
	Notes       string   `json:"notes"       validate:"max=2000"`
}

func (in *InquiryInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
}

func (in InquiryInput) toDomain() domain.Inquiry {
	start, _ := validation.ParseDate(in.StartDate)
	end, _ := validation.ParseDate(in.EndDate)

	return domain.Inquiry{
		Name:        in.Name,
		Email:       in.Email,
		Phone:       in.Phone,
		Destination: strings.TrimSpace(in.Destination),
		StartDate:   start,
		EndDate:     end,
		Adults:      in.Adults,
		Children:    in.Children,
		Budget:      strings.TrimSpace(in.Budget),
		TravelStyle: strings.TrimSpace(in.TravelStyle),
		Interests:   in.Interests,
		Notes:       strings.TrimSpace(in.Notes),
		Status:      domain.RequestStatusPending,
	}
}

// BookingInput is the public booking request of a tour package.
type BookingInput struct {
	Name       string `json:"name"       validate:"required,max=120"`
	Email      string `json:"email"      validate:"required,email"`
	Phone      string `json:"phone"      validate:"required,phone"`
	TravelDate string `json:"travelDate" validate:"required,date"          label:"Travel date"`
	Travelers  int    `json:"travelers"  validate:"required,gte=1,lte=50"`
	Notes      string `json:"notes"      validate:"max=2000"`
}

func (in *BookingInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)
}

func (in BookingInput) toDomain(packageID int64) domain.Booking {
	date, _ := validation.ParseDate(in.TravelDate)

	return domain.Booking{
		PackageID:  packageID,
		Name:       in.Name,
		Email:      in.Email,
		Phone:      in.Phone,
		TravelDate: date,
		Travelers:  in.Travelers,
		Notes:      strings.TrimSpace(in.Notes),
		Status:     domain.RequestStatusPending,
	}
}

// ContactInput is the public contact form.
type ContactInput struct {
	Name    string `json:"name"    validate:"required,max=120"`
	Email   string `json:"email"   validate:"required,email"`
	Phone   string `json:"phone"   validate:"omitempty,phone"`
	Subject string `json:"subject" validate:"max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (in *ContactInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
}

func (in ContactInput) toDomain() domain.ContactSubmission {
	return domain.ContactSubmission{
		Name:    in.Name,
		Email:   in.Email,
		Phone:   strings.TrimSpace(in.Phone),
		Subject: strings.TrimSpace(in.Subject),
		Message: in.Message,
	}
}

// StatusInput moves an inquiry or booking through its lifecycle.
type StatusInput struct {
	Status domain.RequestStatus `json:"status" validate:"required,oneof=pending contacted confirmed cancelled"`
}

// normalizer is implemented by inputs that trim and derive fields before
// validation.
type normalizer interface {
	normalize()
}

func boolOr(p *bool, fallback bool) bool {
	if p == nil {
		return fallback
	}

	return *p
}

// today returns midnight UTC of the current day.
func today(now time.Time) time.Time {
	y, m, d := now.UTC().Date()

	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

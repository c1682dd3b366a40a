package postgres

import (
	"database/sql"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
	"travel/pkg/domain"

	"github.com/google/uuid"
)

// stringList is a []string stored as a JSONB array.
type stringList []string

func (l stringList) Value() (driver.Value, error) {
	if l == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(l))
	if err != nil {
		return nil, fmt.Errorf("could not marshal string list: %w", err)
	}

	return string(b), nil
}

func (l *stringList) Scan(src any) error {
	var raw []byte
	switch v := src.(type) {
	case nil:
		*l = nil

		return nil
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("could not scan %T into string list", src)
	}

	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return fmt.Errorf("could not unmarshal string list: %w", err)
	}
	*l = out

	return nil
}

func nullID(id int64) sql.NullInt64 {
	return sql.NullInt64{Int64: id, Valid: id > 0}
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}

type PgDestination struct {
	ID int64 `db:"id" goqu:"skipinsert,skipupdate"`

	Name        string `db:"name"`
	Slug        string `db:"slug"`
	Country     string `db:"country"`
	Region      string `db:"region"`
	Summary     string `db:"summary"`
	Description string `db:"description"`
	ImageURL    string `db:"image_url"`
	Featured    bool   `db:"featured"`
	Active      bool   `db:"active"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgDestination) ToDomain() *domain.Destination {
	return &domain.Destination{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Country:     p.Country,
		Region:      p.Region,
		Summary:     p.Summary,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Featured:    p.Featured,
		Active:      p.Active,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PgDestination) FromDomain(d domain.Destination) {
	*p = PgDestination{
		ID:          d.ID,
		Name:        d.Name,
		Slug:        d.Slug,
		Country:     d.Country,
		Region:      d.Region,
		Summary:     d.Summary,
		Description: d.Description,
		ImageURL:    d.ImageURL,
		Featured:    d.Featured,
		Active:      d.Active,
		CreatedAt:   d.CreatedAt,
		UpdatedAt:   d.UpdatedAt,
	}
}

type PgTourPackage struct {
	ID int64 `db:"id" goqu:"skipinsert,skipupdate"`

	Title         string        `db:"title"`
	Slug          string        `db:"slug"`
	DestinationID sql.NullInt64 `db:"destination_id"`
	Summary       string        `db:"summary"`
	Description   string        `db:"description"`
	DurationDays  int           `db:"duration_days"`
	PriceCents    int64         `db:"price_cents"`
	Currency      string        `db:"currency"`
	ImageURL      string        `db:"image_url"`
	Highlights    stringList    `db:"highlights"`
	Featured      bool          `db:"featured"`
	Active        bool          `db:"active"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgTourPackage) ToDomain() *domain.TourPackage {
	return &domain.TourPackage{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		DestinationID: p.DestinationID.Int64,
		Summary:       p.Summary,
		Description:   p.Description,
		DurationDays:  p.DurationDays,
		PriceCents:    p.PriceCents,
		Currency:      p.Currency,
		ImageURL:      p.ImageURL,
		Highlights:    p.Highlights,
		Featured:      p.Featured,
		Active:        p.Active,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (p *PgTourPackage) FromDomain(t domain.TourPackage) {
	*p = PgTourPackage{
		ID:            t.ID,
		Title:         t.Title,
		Slug:          t.Slug,
		DestinationID: nullID(t.DestinationID),
		Summary:       t.Summary,
		Description:   t.Description,
		DurationDays:  t.DurationDays,
		PriceCents:    t.PriceCents,
		Currency:      t.Currency,
		ImageURL:      t.ImageURL,
		Highlights:    t.Highlights,
		Featured:      t.Featured,
		Active:        t.Active,
		CreatedAt:     t.CreatedAt,
		UpdatedAt:     t.UpdatedAt,
	}
}

type PgCategory struct {
	ID          int64     `db:"id"          goqu:"skipinsert,skipupdate"`
	Name        string    `db:"name"`
	Slug        string    `db:"slug"`
	Description string    `db:"description"`
	CreatedAt   time.Time `db:"created_at"  goqu:"skipinsert,skipupdate"`
	UpdatedAt   time.Time `db:"updated_at"  goqu:"skipinsert"`
}

func (p *PgCategory) ToDomain() *domain.Category {
	return &domain.Category{
		ID:          p.ID,
		Name:        p.Name,
		Slug:        p.Slug,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PgCategory) FromDomain(c domain.Category) {
	*p = PgCategory{
		ID:          c.ID,
		Name:        c.Name,
		Slug:        c.Slug,
		Description: c.Description,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

type PgPost struct {
	ID int64 `db:"id" goqu:"skipinsert,skipupdate"`

	Title         string        `db:"title"`
	Slug          string        `db:"slug"`
	Excerpt       string        `db:"excerpt"`
	Content       string        `db:"content"`
	CoverImageURL string        `db:"cover_image_url"`
	CategoryID    sql.NullInt64 `db:"category_id"`
	Author        string        `db:"author"`
	Published     bool          `db:"published"`
	PublishedAt   sql.NullTime  `db:"published_at"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPost) ToDomain() *domain.Post {
	return &domain.Post{
		ID:            p.ID,
		Title:         p.Title,
		Slug:          p.Slug,
		Excerpt:       p.Excerpt,
		Content:       p.Content,
		CoverImageURL: p.CoverImageURL,
		CategoryID:    p.CategoryID.Int64,
		Author:        p.Author,
		Published:     p.Published,
		PublishedAt:   p.PublishedAt.Time,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func (p *PgPost) FromDomain(post domain.Post) {
	*p = PgPost{
		ID:            post.ID,
		Title:         post.Title,
		Slug:          post.Slug,
		Excerpt:       post.Excerpt,
		Content:       post.Content,
		CoverImageURL: post.CoverImageURL,
		CategoryID:    nullID(post.CategoryID),
		Author:        post.Author,
		Published:     post.Published,
		PublishedAt:   nullTime(post.PublishedAt),
		CreatedAt:     post.CreatedAt,
		UpdatedAt:     post.UpdatedAt,
	}
}

type PgSettings struct {
	ID int64 `db:"id" goqu:"skipinsert,skipupdate"`

	SiteName     string `db:"site_name"`
	Tagline      string `db:"tagline"`
	ContactEmail string `db:"contact_email"`
	ContactPhone string `db:"contact_phone"`
	Address      string `db:"address"`
	WhatsApp     string `db:"whatsapp"`
	FacebookURL  string `db:"facebook_url"`
	InstagramURL string `db:"instagram_url"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgSettings) ToDomain() *domain.Settings {
	return &domain.Settings{
		ID:           p.ID,
		SiteName:     p.SiteName,
		Tagline:      p.Tagline,
		ContactEmail: p.ContactEmail,
		ContactPhone: p.ContactPhone,
		Address:      p.Address,
		WhatsApp:     p.WhatsApp,
		FacebookURL:  p.FacebookURL,
		InstagramURL: p.InstagramURL,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

func (p *PgSettings) FromDomain(s domain.Settings) {
	*p = PgSettings{
		ID:           s.ID,
		SiteName:     s.SiteName,
		Tagline:      s.Tagline,
		ContactEmail: s.ContactEmail,
		ContactPhone: s.ContactPhone,
		Address:      s.Address,
		WhatsApp:     s.WhatsApp,
		FacebookURL:  s.FacebookURL,
		InstagramURL: s.InstagramURL,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}

type PgPlannerOption struct {
	ID       int64  `db:"id"       goqu:"skipinsert,skipupdate"`
	Kind     string `db:"kind"`
	Label    string `db:"label"`
	Value    string `db:"value"`
	Position int    `db:"position"`
	Active   bool   `db:"active"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert,skipupdate"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgPlannerOption) ToDomain() *domain.PlannerOption {
	return &domain.PlannerOption{
		ID:        p.ID,
		Kind:      domain.PlannerOptionKind(p.Kind),
		Label:     p.Label,
		Value:     p.Value,
		Position:  p.Position,
		Active:    p.Active,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (p *PgPlannerOption) FromDomain(o domain.PlannerOption) {
	*p = PgPlannerOption{
		ID:        o.ID,
		Kind:      string(o.Kind),
		Label:     o.Label,
		Value:     o.Value,
		Position:  o.Position,
		Active:    o.Active,
		CreatedAt: o.CreatedAt,
		UpdatedAt: o.UpdatedAt,
	}
}

type PgInquiry struct {
	ID int64 `db:"id" goqu:"skipinsert"`

	Name        string     `db:"name"`
	Email       string     `db:"email"`
	Phone       string     `db:"phone"`
	Destination string     `db:"destination"`
	StartDate   time.Time  `db:"start_date"`
	EndDate     time.Time  `db:"end_date"`
	Adults      int        `db:"adults"`
	Children    int        `db:"children"`
	Budget      string     `db:"budget"`
	TravelStyle string     `db:"travel_style"`
	Interests   stringList `db:"interests"`
	Notes       string     `db:"notes"`
	Status      string     `db:"status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgInquiry) ToDomain() *domain.Inquiry {
	return &domain.Inquiry{
		ID:          p.ID,
		Name:        p.Name,
		Email:       p.Email,
		Phone:       p.Phone,
		Destination: p.Destination,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
		Adults:      p.Adults,
		Children:    p.Children,
		Budget:      p.Budget,
		TravelStyle: p.TravelStyle,
		Interests:   p.Interests,
		Notes:       p.Notes,
		Status:      domain.RequestStatus(p.Status),
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func (p *PgInquiry) FromDomain(i domain.Inquiry) {
	*p = PgInquiry{
		ID:          i.ID,
		Name:        i.Name,
		Email:       i.Email,
		Phone:       i.Phone,
		Destination: i.Destination,
		StartDate:   i.StartDate,
		EndDate:     i.EndDate,
		Adults:      i.Adults,
		Children:    i.Children,
		Budget:      i.Budget,
		TravelStyle: i.TravelStyle,
		Interests:   i.Interests,
		Notes:       i.Notes,
		Status:      string(i.Status),
		CreatedAt:   i.CreatedAt,
		UpdatedAt:   i.UpdatedAt,
	}
}

type PgBooking struct {
	ID         int64         `db:"id"          goqu:"skipinsert"`
	PackageID  sql.NullInt64 `db:"package_id"`
	Name       string        `db:"name"`
	Email      string        `db:"email"`
	Phone      string        `db:"phone"`
	TravelDate time.Time     `db:"travel_date"`
	Travelers  int           `db:"travelers"`
	Notes      string        `db:"notes"`
	Status     string        `db:"status"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgBooking) ToDomain() *domain.Booking {
	return &domain.Booking{
		ID:         p.ID,
		PackageID:  p.PackageID.Int64,
		Name:       p.Name,
		Email:      p.Email,
		Phone:      p.Phone,
		TravelDate: p.TravelDate,
		Travelers:  p.Travelers,
		Notes:      p.Notes,
		Status:     domain.RequestStatus(p.Status),
		CreatedAt:  p.CreatedAt,
		UpdatedAt:  p.UpdatedAt,
	}
}

func (p *PgBooking) FromDomain(b domain.Booking) {
	*p = PgBooking{
		ID:         b.ID,
		PackageID:  nullID(b.PackageID),
		Name:       b.Name,
		Email:      b.Email,
		Phone:      b.Phone,
		TravelDate: b.TravelDate,
		Travelers:  b.Travelers,
		Notes:      b.Notes,
		Status:     string(b.Status),
		CreatedAt:  b.CreatedAt,
		UpdatedAt:  b.UpdatedAt,
	}
}

type PgContact struct {
	ID      int64  `db:"id"      goqu:"skipinsert"`
	Name    string `db:"name"`
	Email   string `db:"email"`
	Phone   string `db:"phone"`
	Subject string `db:"subject"`
	Message string `db:"message"`
	Read    bool   `db:"read"`

	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
	UpdatedAt time.Time `db:"updated_at" goqu:"skipinsert"`
}

func (p *PgContact) ToDomain() *domain.ContactSubmission {
	return &domain.ContactSubmission{
		ID:        p.ID,
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Subject:   p.Subject,
		Message:   p.Message,
		Read:      p.Read,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (p *PgContact) FromDomain(c domain.ContactSubmission) {
	*p = PgContact{
		ID:      c.ID,
		Name:    c.Name,
		Email:   c.Email,
		Phone:   c.Phone,
		Subject: c.Subject,
		Message: c.Message,
		Read:    c.Read,
	}
}

type PgUser struct {
	ID           int64     `db:"id"            goqu:"skipinsert"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"    goqu:"skipinsert"`
	UpdatedAt    time.Time `db:"updated_at"    goqu:"skipinsert"`
}

func (p *PgUser) ToDomain() *domain.User {
	return &domain.User{
		ID:           domain.UserID(p.ID),
		Email:        p.Email,
		Name:         p.Name,
		PasswordHash: p.PasswordHash,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

type PgSession struct {
	ID        uuid.UUID `db:"id"`
	UserID    int64     `db:"user_id"`
	UserAgent string    `db:"user_agent"`
	IP        string    `db:"ip"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at" goqu:"skipinsert"`
}

func (p *PgSession) ToDomain() *domain.Session {
	return &domain.Session{
		ID:        domain.SessionID(p.ID),
		UserID:    domain.UserID(p.UserID),
		UserAgent: p.UserAgent,
		IP:        p.IP,
		ExpiresAt: p.ExpiresAt,
		CreatedAt: p.CreatedAt,
	}
}

// rowsToDomain converts a slice of row models with the conversion fn.
func rowsToDomain[R any, D any](rows []R, fn func(*R) *D) []D {
	out := make([]D, 0, len(rows))
	for i := range rows {
		out = append(out, *fn(&rows[i]))
	}

	return out
}

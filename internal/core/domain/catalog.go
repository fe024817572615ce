package domain

import "time"

// AuditRefs carries the creator/updater back-references every catalog entity
// and account shares. Empty for records seeded before any account existed.
type AuditRefs struct {
	CreatedBy string `json:"createdBy,omitempty"`
	UpdatedBy string `json:"updatedBy,omitempty"`
}

// Category groups deals by merchandise type.
type Category struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	IsActive    bool      `json:"isActive"`
	AuditRefs
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Brand is a merchant whose deals are listed.
type Brand struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Logo        string    `json:"logo,omitempty"`
	Website     string    `json:"website,omitempty"`
	IsActive    bool      `json:"isActive"`
	AuditRefs
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Deal is a coupon or offer belonging to a brand.
type Deal struct {
	ID          string     `json:"id"`
	BrandID     string     `json:"brand"`
	SeasonID    string     `json:"season,omitempty"`
	Code        string     `json:"code,omitempty"`
	Link        string     `json:"link"`
	Type        string     `json:"type,omitempty"`
	Description string     `json:"description,omitempty"`
	PercentOff  float64    `json:"percentOff,omitempty"`
	StartDate   *time.Time `json:"startDate,omitempty"`
	EndDate     *time.Time `json:"endDate,omitempty"`
	IsActive    bool       `json:"isActive"`
	IsHot       bool       `json:"isHot"`
	AuditRefs
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Blog is an editorial post.
type Blog struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	IsActive  bool      `json:"isActive"`
	AuditRefs
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Season is a sale period (Black Friday, back-to-school, ...) deals can be
// attached to.
type Season struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Logo      string     `json:"logo,omitempty"`
	StartDate *time.Time `json:"startDate,omitempty"`
	EndDate   *time.Time `json:"endDate,omitempty"`
	IsActive  bool       `json:"isActive"`
	AuditRefs
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

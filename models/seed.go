// ABOUTME: Built-in seed data for fresh installs and migrations
// ABOUTME: Featured Paradiigm contact, company, event, and the empty profile
package models

import "time"

// Reserved ids for seeded entities. These are stable across installs so the
// migrator and public-handle lookup can rely on them.
const (
	ProfileID         = "my_profile_id"
	FeaturedContactID = "paradiigm_contact_id"
	FeaturedCompanyID = "paradiigm_llc"
	SeedEventID       = "paradiigm_shift_2025"
)

// NowISO returns the current time as an ISO-8601 string, the timestamp
// format used on persisted entities.
func NowISO() string {
	return time.Now().UTC().Format(time.RFC3339)
}

// FeaturedContact returns the seeded, non-deletable demo contact.
func FeaturedContact() Contact {
	return Contact{
		ID:        FeaturedContactID,
		Handle:    "kyle-harris",
		Name:      "Kyle A. Harris",
		Role:      "CEO",
		Company:   "Paradiigm LLC",
		CompanyID: FeaturedCompanyID,
		Email:     "info@pdiigm.com",
		Phone:     "702-573-4043",
		Websites:  []string{"https://paradiigm.net"},
		Address: Address{
			City:    "Las Vegas",
			State:   "Nevada",
			Country: "United States",
		},
		Notes:         "The founder of Paradiigm, connecting professionals with AI.",
		Tags:          []string{"Founder", "AI", "Networking", "CEO"},
		EventLinks:    []EventLink{{EventID: SeedEventID, Role: RoleSpeaker}},
		IsFavorite:    true,
		ContactType:   "Partner",
		Featured:      true,
		RibbonText:    "App Developer",
		LocationState: "United States - Nevada",
		LocationCity:  "Las Vegas",
		ImageURL:      "/kyle-harris-profile.jpg",
	}
}

// InitialProfile returns the empty profile every fresh install starts with.
// It carries the reserved profile id but no personal data.
func InitialProfile() Contact {
	return Contact{
		ID:          ProfileID,
		Websites:    []string{},
		Address:     Address{Country: "United States"},
		Tags:        []string{},
		EventLinks:  []EventLink{},
		ContactType: "Community/Ally",
	}
}

// SeedContacts returns the initial contacts collection: the featured demo
// contact plus the profile, which is mirrored into contacts so it can be
// found by handle for public profile pages.
func SeedContacts() []Contact {
	return []Contact{FeaturedContact(), InitialProfile()}
}

// FeaturedCompany returns the seeded demo company. The migrator always
// includes it, and the loader re-seeds it whenever companies come back empty.
func FeaturedCompany() Company {
	now := NowISO()
	return Company{
		ID:        FeaturedCompanyID,
		Name:      "Paradiigm LLC",
		Featured:  true,
		LogoURL:   "/paradiigm-logo.jpg",
		Email:     "info@pdiigm.com",
		Phone:     "702-573-4043",
		Website:   "paradiigm.net",
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// SeedEvents returns the built-in default event set.
func SeedEvents() []Event {
	return []Event{
		{
			ID:          SeedEventID,
			Name:        "Paradiigm Shift 2025",
			Date:        "2025-12-15",
			Location:    "Las Vegas, NV",
			Description: "Paradiigm is both a mindset and a movement, a gathering of visionaries redefining what's possible. It's where ideas shift, perspectives evolve, and bold change begins.",
			URL:         "https://www.paradiigm.net/",
			CompanyID:   FeaturedCompanyID,
			ImageURL:    "/paradiigm-logo.png",
		},
	}
}

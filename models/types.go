// ABOUTME: Data models for card-stack entities
// ABOUTME: Defines Contact, Company, Event, ContactList, and Settings structs
package models

type EventRole string

const (
	RoleAttendee  EventRole = "Attendee"
	RoleSpeaker   EventRole = "Speaker"
	RoleHost      EventRole = "Host"
	RoleGuest     EventRole = "Guest"
	RoleExhibitor EventRole = "Exhibitor"
)

var EventRoles = []EventRole{RoleAttendee, RoleSpeaker, RoleHost, RoleGuest, RoleExhibitor}

type ContactType string

var ContactTypes = []ContactType{
	"Prospect", "Lead", "Partner", "Referral Partner", "Channel/Reseller",
	"Vendor/Supplier", "Agency", "Investor", "Advisor/Mentor", "Sponsor",
	"Media/Press", "Influencer/Ambassador", "Recruiter/Talent", "Candidate",
	"Speaker/Panelist", "Exhibitor", "Customer (Existing)", "Former Customer",
	"Community/Ally", "Gov/Nonprofit", "Competitor (FYI)",
}

type Profession string

var Professions = []Profession{
	"Accounting", "Agriculture", "Architecture", "Arts & Entertainment", "Banking",
	"Business Development", "Construction", "Consulting", "Content Creation", "Customer Service",
	"Cybersecurity", "Data Science", "Design", "Education", "Energy",
	"Engineering", "Entrepreneurship", "Executive/C-Suite", "Finance", "Food & Beverage",
	"Government", "Healthcare", "Hospitality", "Human Resources", "Insurance",
	"Investment", "IT/Technology", "Legal", "Logistics", "Manufacturing",
	"Marketing", "Non-Profit", "Operations", "Photography", "Product Management",
	"Psychology", "Public Relations", "Real Estate", "Research", "Retail",
	"Sales", "Science", "Software Development", "Sports & Fitness", "Strategy",
	"Telecommunications", "Videography", "Writing/Journalism",
}

// Address is always present on a contact, even when every field is empty.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postal_code"`
	Country    string `json:"country"`
}

// EventLink ties a contact to an event with the role they held there.
type EventLink struct {
	EventID string    `json:"eventId"`
	Role    EventRole `json:"role"`
}

// Contact is a scanned or manually entered business card. The Company field
// holds the legacy free-text company name; CompanyID references the
// normalized Company entity since schema version 3.
type Contact struct {
	ID            string      `json:"id"`
	Handle        string      `json:"handle,omitempty"`
	Name          string      `json:"name"`
	Role          string      `json:"role"`
	Company       string      `json:"company"`
	CompanyID     string      `json:"companyId,omitempty"`
	Email         string      `json:"email"`
	Phone         string      `json:"phone"`
	Websites      []string    `json:"websites,omitempty"`
	Address       Address     `json:"address"`
	Notes         string      `json:"notes"`
	Tags          []string    `json:"tags"`
	ImageURL      string      `json:"image_url,omitempty"`
	LogoURL       string      `json:"logo_url,omitempty"`
	FollowUpDate  string      `json:"follow_up_date,omitempty"`
	EventLinks    []EventLink `json:"eventLinks"`
	IsFavorite    bool        `json:"isFavorite"`
	ContactType   ContactType `json:"contactType"`
	Profession    Profession  `json:"profession,omitempty"`
	MetAt         string      `json:"metAt,omitempty"`
	Featured      bool        `json:"featured,omitempty"`
	RibbonText    string      `json:"ribbonText,omitempty"`
	Hidden        bool        `json:"hidden,omitempty"`
	LocationState string      `json:"locationState,omitempty"`
	LocationCity  string      `json:"locationCity,omitempty"`
}

type Company struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description,omitempty"`
	LogoURL       string `json:"logo_url,omitempty"`
	Website       string `json:"website,omitempty"`
	Email         string `json:"email,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Location      string `json:"location,omitempty"`
	Featured      bool   `json:"featured,omitempty"`
	IsFavorite    bool   `json:"isFavorite,omitempty"`
	Hidden        bool   `json:"hidden,omitempty"`
	LocationState string `json:"locationState,omitempty"`
	LocationCity  string `json:"locationCity,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}

type Event struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Date          string `json:"date,omitempty"`
	Location      string `json:"location,omitempty"`
	Description   string `json:"description,omitempty"`
	URL           string `json:"url,omitempty"`
	ImageURL      string `json:"image_url,omitempty"`
	CompanyID     string `json:"companyId,omitempty"`
	Hidden        bool   `json:"hidden,omitempty"`
	LocationState string `json:"locationState,omitempty"`
	LocationCity  string `json:"locationCity,omitempty"`
}

// ContactList is a named collection of contact ids. ContactIDs is ordered for
// display but must never hold duplicates.
type ContactList struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	ContactIDs  []string `json:"contactIds"`
	Color       string   `json:"color,omitempty"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

type Theme string

const (
	ThemeSystem Theme = "System"
	ThemeSlate  Theme = "Slate"
	ThemeOcean  Theme = "Ocean"
	ThemeForest Theme = "Forest"
	ThemeRose   Theme = "Rose"
	ThemeSunset Theme = "Sunset"
)

type FontSize string

const (
	FontSmall FontSize = "sm"
	FontBase  FontSize = "base"
	FontLarge FontSize = "lg"
)

type Language string

const (
	LangEnglish Language = "en"
	LangSpanish Language = "es"
	LangFrench  Language = "fr"
)

type NotificationPreferences struct {
	EmailNotifications bool `json:"emailNotifications"`
	ReminderAlerts     bool `json:"reminderAlerts"`
	EventUpdates       bool `json:"eventUpdates"`
}

type FilterPreferences struct {
	ShowFavoritesOnly  bool   `json:"showFavoritesOnly,omitempty"`
	ShowFollowUpsOnly  bool   `json:"showFollowUpsOnly,omitempty"`
	DefaultEventFilter string `json:"defaultEventFilter,omitempty"`
	DefaultListFilter  string `json:"defaultListFilter,omitempty"`
	DefaultStateFilter string `json:"defaultStateFilter,omitempty"`
	DefaultCameraList  string `json:"defaultCameraList,omitempty"`
	DefaultCameraEvent string `json:"defaultCameraEvent,omitempty"`
	DefaultCameraTag   string `json:"defaultCameraTag,omitempty"`
}

// Settings is a singleton per installation, not an entity with identity.
type Settings struct {
	Theme                   Theme                   `json:"theme"`
	FontSize                FontSize                `json:"fontSize"`
	Language                Language                `json:"language"`
	DefaultContactType      ContactType             `json:"defaultContactType,omitempty"`
	DefaultEventRole        string                  `json:"defaultEventRole,omitempty"`
	SnapAndGo               bool                    `json:"snapAndGo"`
	NotificationPreferences NotificationPreferences `json:"notificationPreferences"`
	FilterPreferences       FilterPreferences       `json:"filterPreferences,omitempty"`
	AutoSaveInterval        int                     `json:"autoSaveInterval,omitempty"`
}

// DefaultSettings returns the hardcoded settings every installation starts
// from. Stored settings are merged on top of these so new keys always have a
// value on old installations.
func DefaultSettings() Settings {
	return Settings{
		Theme:              ThemeSystem,
		FontSize:           FontBase,
		Language:           LangEnglish,
		DefaultContactType: "Prospect",
		SnapAndGo:          true,
		NotificationPreferences: NotificationPreferences{
			EmailNotifications: false,
			ReminderAlerts:     true,
			EventUpdates:       true,
		},
		AutoSaveInterval: 5,
	}
}

// ValidContactType reports whether t is one of the known contact types.
func ValidContactType(t ContactType) bool {
	for _, ct := range ContactTypes {
		if ct == t {
			return true
		}
	}
	return false
}

// ValidEventRole reports whether r is one of the known event roles.
func ValidEventRole(r EventRole) bool {
	for _, er := range EventRoles {
		if er == r {
			return true
		}
	}
	return false
}

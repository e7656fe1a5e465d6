package skill

import (
	"time"

	"github.com/google/uuid"
)

type WillingnessLevel string

const (
	WillingnessProBono  WillingnessLevel = "pro_bono"
	WillingnessSponsor  WillingnessLevel = "sponsor"
	WillingnessDiscount WillingnessLevel = "discount"
	WillingnessAdvice   WillingnessLevel = "advice"
	WillingnessVendor   WillingnessLevel = "vendor"
)

var WillingnessLevels = []WillingnessLevel{
	WillingnessProBono,
	WillingnessSponsor,
	WillingnessDiscount,
	WillingnessAdvice,
	WillingnessVendor,
}

func IsValidWillingness(v string) bool {
	for _, w := range WillingnessLevels {
		if string(w) == v {
			return true
		}
	}
	return false
}

// Categories is the fixed taxonomy members pick from when registering a skill.
// Needs reference the same list.
var Categories = []string{
	"Sports & Coaching",
	"Education & Youth Development",
	"Event Planning & Community Outreach",
	"Facilities, Construction & Equipment",
	"Trades & Skilled Labour (Extended)",
	"Real Estate & Property Services",
	"Technology & Software",
	"Media, Photography & Videography",
	"Marketing, Branding & Communications",
	"Finance, Accounting & Insurance",
	"Legal & Compliance",
	"Healthcare & Wellness",
	"Consulting & Professional Services",
	"Arts, Entertainment & Creative",
	"Government, Public Sector & Politics (Extended)",
	"Business Owners & Entrepreneurs",
	"Non-Profit & Philanthropy",
	"Sales, Partnerships & Fundraising",
	"Logistics, Transportation & Operations",
	"Hospitality & Food Services",
	"Retail, E-Commerce & Merchandising",
	"Other",
}

func IsValidCategory(v string) bool {
	for _, c := range Categories {
		if c == v {
			return true
		}
	}
	return false
}

type Skill struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	Category         string
	SkillName        string
	WillingnessLevel WillingnessLevel
	IsHobby          bool
	CreatedAt        time.Time
}

package models

// EventStatus is the sale status of an event
type EventStatus string

const (
	// StatusOnSale marks an event whose tickets can be bought
	StatusOnSale EventStatus = "On Sale"
	// StatusSoldOut marks an event without any tickets left
	StatusSoldOut EventStatus = "Sold Out"
	// StatusCancelled marks an event that will not take place
	StatusCancelled EventStatus = "Cancelled"
)

// EventStatuses lists all known event states in the order they are offered to the user
var EventStatuses = []EventStatus{StatusOnSale, StatusSoldOut, StatusCancelled}

// Valid checks if the status is one of the known event states
func (s EventStatus) Valid() bool {
	for _, st := range EventStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// BadgeColor returns the color of the badge the status is displayed with
func (s EventStatus) BadgeColor() string {
	switch s {
	case StatusOnSale:
		return "lime"
	case StatusSoldOut:
		return "zinc"
	default:
		return "red"
	}
}

// Initial values of the analytics fields of a newly created event
const (
	DefaultTotalRevenue     = "$0.00"
	DefaultChange           = "+0%"
	DefaultTicketsAvailable = 100
	DefaultPageViews        = "0"
)

// Event describes a single event that is managed during a session
// Everything besides the user-supplied fields is derived once on creation and never changes afterwards
type Event struct {
	// Internal ID - unique inside the running process
	ID uint64 `json:"id"`
	// Name of the event
	Name string `json:"name"`
	// Canonical path of the event's detail page
	URL string `json:"url"`
	// Date and time of the event as entered by the user
	Date string `json:"date"`
	Time string `json:"time"`
	// Where the event takes place
	Location           string `json:"location"`
	TotalRevenue       string `json:"totalRevenue"`
	TotalRevenueChange string `json:"totalRevenueChange"`
	TicketsAvailable   int    `json:"ticketsAvailable"`
	TicketsSold        int    `json:"ticketsSold"`
	TicketsSoldChange  string `json:"ticketsSoldChange"`
	PageViews          string `json:"pageViews"`
	PageViewsChange    string `json:"pageViewsChange"`
	// Sale status chosen on creation
	Status EventStatus `json:"status"`
	// Paths of the event's image and its thumbnail - both derived from the name's slug
	ImgURL   string `json:"imgUrl"`
	ThumbURL string `json:"thumbUrl"`
}

// NewEvent contains the user-supplied data an event is created from
type NewEvent struct {
	Name     string      `json:"name"`
	Date     string      `json:"date"`
	Time     string      `json:"time"`
	Location string      `json:"location"`
	Status   EventStatus `json:"status"`
}

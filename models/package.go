package models

import "time"

// Package describes a bookable party package tier. Catalog entries are
// immutable; pricing and validation rules live in services/catalog.
type Package struct {
	Name           string         `json:"name"`
	PricePerJumper int            `json:"price_per_jumper"`
	MinJumpers     int            `json:"min_jumpers"`
	JumpTime       string         `json:"jump_time"`
	TableTime      string         `json:"table_time"`
	Includes       []string       `json:"includes"`
	Excludes       []string       `json:"excludes,omitempty"`
	RoomFeePerHead int            `json:"room_fee_per_head"`
	Notes          string         `json:"notes,omitempty"`
	// AllowedDays restricts the package to a subset of weekdays.
	// Empty means no restriction. Any number of tiers may be restricted.
	AllowedDays []time.Weekday `json:"-"`
}

// Restricted reports whether the package carries a day-of-week restriction.
func (p Package) Restricted() bool {
	return len(p.AllowedDays) > 0
}

// AllowsDay reports whether the package may be booked on the given weekday.
func (p Package) AllowsDay(day time.Weekday) bool {
	if !p.Restricted() {
		return true
	}
	for _, d := range p.AllowedDays {
		if d == day {
			return true
		}
	}
	return false
}

// AllowedDayNames returns the restricted weekday names in catalog order.
func (p Package) AllowedDayNames() []string {
	names := make([]string, 0, len(p.AllowedDays))
	for _, d := range p.AllowedDays {
		names = append(names, d.String())
	}
	return names
}

// Quote is a derived price breakdown for a package booking. It is never
// persisted; callers recompute it from the catalog on demand.
type Quote struct {
	Package     string `json:"package"`
	NumJumpers  int    `json:"num_jumpers"`
	BasePrice   int    `json:"base_price"`
	PrivateRoom bool   `json:"private_room"`
	RoomFee     int    `json:"room_fee"`
	Total       int    `json:"total"`
}

// Package catalog holds the static party-package table and the pure
// pricing and validation rules applied before any provider call.
package catalog

import (
	"fmt"
	"strings"
	"time"

	"altitude/models"
)

// RoomFeePerJumper is the private-room surcharge applied per jumper.
// Every tier currently charges the same flat per-jumper fee.
const RoomFeePerJumper = 5

// packageOrder keeps catalog listings stable (cheapest first).
var packageOrder = []string{"Rookie", "All-Star", "MVP", "Glo Party"}

var packages = map[string]models.Package{
	"Rookie": {
		Name:           "Rookie",
		PricePerJumper: 25,
		MinJumpers:     10,
		JumpTime:       "Jump time",
		TableTime:      "Table time",
		Includes: []string{
			"Jump time",
			"Table time",
			"Party host",
			"Setup and cleanup",
			"Plates, napkins, utensils, tablecloth (basic party supplies)",
			"Altitude grip socks",
		},
		Excludes:       []string{"Pizza", "Soda", "Arcade cards", "Birthday gift", "Free return pass"},
		RoomFeePerHead: RoomFeePerJumper,
		Notes:          "Basic package – no food, drinks, or extras included",
	},
	"All-Star": {
		Name:           "All-Star",
		PricePerJumper: 30,
		MinJumpers:     10,
		JumpTime:       "Jump time",
		TableTime:      "Table time",
		Includes: []string{
			"Everything in Rookie",
			"Large pizza per 5 jumpers",
		},
		RoomFeePerHead: RoomFeePerJumper,
		Notes:          "Includes pizza for everyone",
	},
	"MVP": {
		Name:           "MVP",
		PricePerJumper: 35,
		MinJumpers:     10,
		JumpTime:       "Jump time",
		TableTime:      "Table time",
		Includes: []string{
			"Everything in All-Star",
			"Arcade card per jumper",
		},
		RoomFeePerHead: RoomFeePerJumper,
		Notes:          "Includes arcade cards for all jumpers",
	},
	"Glo Party": {
		Name:           "Glo Party",
		PricePerJumper: 40,
		MinJumpers:     10,
		JumpTime:       "3 hours total",
		TableTime:      "Table time",
		Includes: []string{
			"Everything in MVP",
			"Gift for birthday child",
			"Glow lights and DJ atmosphere",
		},
		RoomFeePerHead: RoomFeePerJumper,
		Notes:          "Friday & Saturday nights ONLY - 3 hours total party time",
		AllowedDays:    []time.Weekday{time.Friday, time.Saturday},
	},
}

// Get returns the package with the given name.
func Get(name string) (models.Package, bool) {
	pkg, ok := packages[name]
	return pkg, ok
}

// Names returns all package names, cheapest tier first.
func Names() []string {
	return append([]string(nil), packageOrder...)
}

// All returns the full catalog as a name-keyed mapping.
func All() map[string]models.Package {
	out := make(map[string]models.Package, len(packages))
	for name, pkg := range packages {
		out[name] = pkg
	}
	return out
}

// Summary returns a formatted description of a package for display.
func Summary(name string) (string, error) {
	pkg, ok := packages[name]
	if !ok {
		return "", newUnknownPackageError(name, Names())
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "**%s Package**\n", pkg.Name)
	fmt.Fprintf(&sb, "Price: $%d per jumper (minimum %d jumpers)\n", pkg.PricePerJumper, pkg.MinJumpers)
	fmt.Fprintf(&sb, "Jump Time: %s\n", pkg.JumpTime)
	fmt.Fprintf(&sb, "Table Time: %s\n\n", pkg.TableTime)
	sb.WriteString("Includes:\n")
	for _, item := range pkg.Includes {
		fmt.Fprintf(&sb, "  • %s\n", item)
	}
	if len(pkg.Excludes) > 0 {
		sb.WriteString("\nNot included:\n")
		for _, item := range pkg.Excludes {
			fmt.Fprintf(&sb, "  • %s\n", item)
		}
	}
	fmt.Fprintf(&sb, "\nPrivate Room Upgrade: $%d per jumper\n", pkg.RoomFeePerHead)
	fmt.Fprintf(&sb, "Notes: %s\n", pkg.Notes)
	if pkg.Restricted() {
		fmt.Fprintf(&sb, "\n⚠️ Restrictions: Available %s only (Evening hours only)", strings.Join(pkg.AllowedDayNames(), ", "))
	}
	return sb.String(), nil
}

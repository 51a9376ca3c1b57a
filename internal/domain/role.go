package domain

import "fmt"

// Role is the typed variant behind role-based navigation. Each role carries
// its own landing route and navigation items so handlers never branch on raw
// role strings.
type Role string

const (
	RoleFarmer    Role = "farmer"
	RoleSalon     Role = "salon"
	RoleCollector Role = "collector"
	RoleAdmin     Role = "admin"
)

type NavItem struct {
	Label string
	Path  string
}

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleFarmer, RoleSalon, RoleCollector, RoleAdmin:
		return Role(s), nil
	}
	return "", fmt.Errorf("parse role: unknown role %q", s)
}

func (r Role) LandingRoute() string {
	switch r {
	case RoleFarmer:
		return "/store"
	case RoleSalon:
		return "/dashboard"
	case RoleCollector:
		return "/map"
	case RoleAdmin:
		return "/admin"
	}
	return "/"
}

func (r Role) NavItems() []NavItem {
	switch r {
	case RoleFarmer:
		return []NavItem{
			{Label: "Store", Path: "/store"},
			{Label: "Crop Doctor", Path: "/crop-doctor"},
			{Label: "Cart", Path: "/cart"},
			{Label: "Profile", Path: "/profile"},
		}
	case RoleSalon:
		return []NavItem{
			{Label: "Dashboard", Path: "/dashboard"},
			{Label: "Leaderboard", Path: "/leaderboard"},
			{Label: "Profile", Path: "/profile"},
		}
	case RoleCollector:
		return []NavItem{
			{Label: "Pickups", Path: "/dashboard"},
			{Label: "Routes", Path: "/map"},
			{Label: "Profile", Path: "/profile"},
		}
	case RoleAdmin:
		return []NavItem{
			{Label: "Overview", Path: "/admin"},
			{Label: "Operations Map", Path: "/admin/map"},
			{Label: "Profile", Path: "/profile"},
		}
	}
	return nil
}

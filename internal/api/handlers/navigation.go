package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"amor-service/internal/api/dto"
	"amor-service/internal/domain"
)

// Navigation returns the landing route and navigation items for a role.
// Each role variant carries its own navigation, so clients never hardcode
// role switches.
func Navigation(w http.ResponseWriter, r *http.Request) {
	role, err := domain.ParseRole(mux.Vars(r)["role"])
	if err != nil {
		writeError(w, r, http.StatusBadRequest, "unknown role")
		return
	}

	items := role.NavItems()
	res := dto.NavigationResponse{
		Role:         string(role),
		LandingRoute: role.LandingRoute(),
		NavItems:     make([]dto.NavItemResponse, 0, len(items)),
	}
	for _, item := range items {
		res.NavItems = append(res.NavItems, dto.NavItemResponse{Label: item.Label, Path: item.Path})
	}

	writeJSON(w, r, http.StatusOK, res)
}

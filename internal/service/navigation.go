package service

import (
	"errors"
	"strings"

	"github.com/magscene/magsav-api/internal/domain"
)

var ErrViewNotFound = errors.New("view not found")

var viewCatalogue = []domain.View{
	{Route: "dashboard", Title: "Tableau de bord", Section: "Accueil", Icon: "home"},
	{Route: "products", Title: "Gestion des Produits", Section: "Stock", Icon: "box"},
	{Route: "categories", Title: "Catégories", Section: "Stock", Icon: "tags", API: "/api/v1/categories"},
	{Route: "interventions", Title: "Interventions", Section: "SAV", Icon: "wrench"},
	{Route: "planifications", Title: "Planification", Section: "SAV", Icon: "calendar", API: "/api/v1/planifications"},
	{Route: "requests/parts", Title: "Demandes de pièces", Section: "Demandes", Icon: "cog"},
	{Route: "requests/equipment", Title: "Demandes d'équipement", Section: "Demandes", Icon: "truck"},
	{Route: "clients", Title: "Gestion des Clients", Section: "Sociétés", Icon: "users", API: "/api/v1/societes/clients"},
	{Route: "suppliers", Title: "Fournisseurs", Section: "Sociétés", Icon: "industry", API: "/api/v1/societes/fournisseurs"},
	{Route: "manufacturers", Title: "Fabricants", Section: "Sociétés", Icon: "factory"},
	{Route: "external-sav", Title: "SAV Externe", Section: "Sociétés", Icon: "external"},
	{Route: "commandes", Title: "Commandes", Section: "Achats", Icon: "cart", API: "/api/v1/commandes"},
	{Route: "vehicules", Title: "Véhicules", Section: "Parc", Icon: "car", API: "/api/vehicules"},
	{Route: "techniciens", Title: "Techniciens", Section: "Personnel", Icon: "user", API: "/api/v1/techniciens"},
	{Route: "statistiques", Title: "Statistiques", Section: "Pilotage", Icon: "chart"},
	{Route: "settings/google", Title: "Services Google", Section: "Paramètres", Icon: "google", API: "/api/v1/google/config"},
	{Route: "settings/appearance", Title: "Apparence", Section: "Paramètres", Icon: "palette", API: "/api/v1/themes"},
}

// NavigationService caches the view descriptors of the desktop client menu.
type NavigationService struct {
	registry *Registry[string, domain.View]
}

func NewNavigationService() *NavigationService {
	return &NavigationService{
		registry: NewRegistry[string, domain.View](),
	}
}

// Menu lists every known view in menu order.
func (s *NavigationService) Menu() []domain.View {
	views := make([]domain.View, 0, len(viewCatalogue))
	for _, v := range viewCatalogue {
		view, _ := s.View(v.Route)
		views = append(views, view)
	}

	return views
}

func (s *NavigationService) View(route string) (domain.View, error) {
	return s.registry.GetOrCreate(normalizeRoute(route), lookupView)
}

func (s *NavigationService) Cached() int {
	return s.registry.Len()
}

func (s *NavigationService) Clear() {
	s.registry.Clear()
}

func normalizeRoute(route string) string {
	return strings.Trim(strings.ToLower(strings.TrimSpace(route)), "/")
}

func lookupView(route string) (domain.View, error) {
	for _, v := range viewCatalogue {
		if v.Route == route {
			return v, nil
		}
	}

	return domain.View{}, ErrViewNotFound
}

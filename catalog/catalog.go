package catalog

import (
	"fmt"

	"travel-registration/errors"
)

// Package is one bookable option on a route: a party size with its total
// price in MNT.
type Package struct {
	Name  string
	Price int64
}

// Route is one offered trip with its fixed departure date.
type Route struct {
	Name      string
	Departure string
	Packages  []Package
}

// Catalog is the static reference data the form is validated against. It is
// built once at startup and never mutated.
type Catalog struct {
	routes []Route
}

func New(routes []Route) *Catalog {
	return &Catalog{routes: routes}
}

// Default returns the current trip offering.
func Default() *Catalog {
	return New([]Route{
		{Name: "Датун–Тайланд", Departure: "2026-02-15", Packages: []Package{
			{Name: "1 хүн", Price: 3550000},
			{Name: "2 хүн", Price: 5680000},
		}},
		{Name: "Сингапур–Индонез", Departure: "2026-03-15", Packages: []Package{
			{Name: "1 хүн", Price: 11900000},
			{Name: "2 хүн", Price: 19040000},
		}},
		{Name: "Улаанбаатар–Бээжин", Departure: "2026-05-30", Packages: []Package{
			{Name: "1 хүн", Price: 2690000},
			{Name: "2 хүн", Price: 4304000},
		}},
		{Name: "Бангкок–Паттая", Departure: "2026-04-20", Packages: []Package{
			{Name: "1 хүн", Price: 5490000},
			{Name: "2 хүн", Price: 8784000},
		}},
		{Name: "Япон–Ёкохама–Фужи уул–Токио", Departure: "2026-05-20", Packages: []Package{
			{Name: "1 хүн", Price: 3100000},
			{Name: "2 хүн", Price: 4960000},
		}},
		{Name: "Анталя–Памуккале–Истанбул", Departure: "2026-06-15", Packages: []Package{
			{Name: "1 хүн", Price: 4550000},
			{Name: "2 хүн", Price: 7280000},
		}},
	})
}

// Routes returns all offered routes in a stable rendering order.
func (c *Catalog) Routes() []Route {
	return c.routes
}

func (c *Catalog) findRoute(routeName string) (Route, bool) {
	for _, route := range c.routes {
		if route.Name == routeName {
			return route, true
		}
	}
	return Route{}, false
}

// Departure returns the departure date for routeName.
func (c *Catalog) Departure(routeName string) (string, error) {
	route, ok := c.findRoute(routeName)
	if !ok {
		return "", errors.Wrap(errors.Lookup, fmt.Errorf("no route %q in catalog", routeName), "departure lookup")
	}
	return route.Departure, nil
}

// PriceFor returns the total price for the package on the route, and the 50%
// deposit. The deposit uses float division so an odd total keeps its half
// unit. Unknown route or package is a lookup failure: the form is rendered
// from this catalog, so a request naming anything else did not come from it.
func (c *Catalog) PriceFor(routeName, packageName string) (int64, float64, error) {
	route, ok := c.findRoute(routeName)
	if !ok {
		return 0, 0, errors.Wrap(errors.Lookup, fmt.Errorf("no route %q in catalog", routeName), "price lookup")
	}
	for _, pkg := range route.Packages {
		if pkg.Name == packageName {
			return pkg.Price, float64(pkg.Price) / 2, nil
		}
	}
	return 0, 0, errors.Wrap(errors.Lookup, fmt.Errorf("no package %q for route %q in catalog", packageName, routeName), "price lookup")
}

package pricing

import (
	"errors"
	"slices"
	"strings"
)

type Product string

const (
	ProductCamping  Product = "camping"
	ProductBarbecue Product = "barbecue"
)

var ErrUnknownProduct = errors.New("unknown product")

func (p Product) String() string {
	return string(p)
}

func (p Product) IsValid() bool {
	switch p {
	case ProductCamping, ProductBarbecue:
		return true
	default:
		return false
	}
}

func ParseProduct(s string) (Product, error) {
	p := Product(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", ErrUnknownProduct
	}
	return p, nil
}

// Camping locations.
const (
	LocationDesert   = "Desert"
	LocationMountain = "Mountain"
	LocationWadi     = "Wadi"
)

var Locations = []string{LocationDesert, LocationMountain, LocationWadi}

func IsKnownLocation(name string) bool {
	return slices.Contains(Locations, name)
}

// Fixed add-ons shared by both products.
const (
	AddOnCharcoal       = "charcoal"
	AddOnFirewood       = "firewood"
	AddOnPortableToilet = "portableToilet"
)

var FixedAddOns = []string{AddOnCharcoal, AddOnFirewood, AddOnPortableToilet}

func IsFixedAddOn(name string) bool {
	return slices.Contains(FixedAddOns, name)
}

// GroupTiers are the barbecue party sizes that can be booked.
var GroupTiers = []int{10, 15, 20}

func IsGroupTier(size int) bool {
	return slices.Contains(GroupTiers, size)
}

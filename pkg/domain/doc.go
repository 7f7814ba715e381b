// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (domain
// registrations and their contact details) and are intentionally free of
// infrastructure concerns so they can be shared across packages.
package domain

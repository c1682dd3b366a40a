// Package domain contains the core domain entities and types used by the
// application. These types represent the business concepts (destinations, tour
// packages, blog posts, trip planner inquiries, admin users) and are
// intentionally free of infrastructure concerns so they can be shared across
// packages.
package domain

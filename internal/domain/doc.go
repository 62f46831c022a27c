// Package domain defines the core data models, errors and interfaces shared
// across the app. It holds plain types and contracts only; the behaviour
// lives in internal/services.
package domain

// Package services contains stateless domain services for the mission
// staffing system.
//
// The central service is the PricingEngine, which computes crew
// compensation and client billing figures from either rate-table lookups
// (automatic mode) or directly supplied rates (manual mode). The engine is
// referentially transparent and never fails: malformed inputs are
// sanitized, outputs are clamped to be non-negative, and an unresolvable
// rate-table lookup yields nil rather than a zeroed quote.
//
// The RateTable itself is pure data: position and aircraft category keyed
// daily rates and per-diem amounts, with a fleet roster mapping aircraft
// registrations to categories.
package services

// Package authservice implements the MaxHelp credential verifier and
// user/business-unit administration.
//
// Layering:
// - domain: user/unit entities, invariants, errors
// - application: login, token authentication, admin management use-cases
// - ports: stable boundaries for persistence, hashing, token coding, time
// - adapters: bcrypt/jwt credentials, memory store, gorm postgres repository,
//   HTTP handler
// - transport: module-private DTOs for HTTP contracts
//
// Boundary notes:
// - Keep this module self-contained under the identity-access context.
// - The resolved identity.Actor is the only thing other modules consume.
package authservice

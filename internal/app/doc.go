// Package app is the application layer, the only component that references
// multiple domain components. It orchestrates all use cases: message creation
// (validation, lazy user creation, write-time sentiment scoring), reaction
// proposals, community management and the analytics queries.
package app

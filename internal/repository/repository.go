// Package repository provides data access interfaces and implementations
// for the business directory service.
//
// # Overview
//
// This package defines the repository interface and its PostgreSQL
// implementation following the repository pattern to abstract data
// persistence from the HTTP layer.
//
// Unlike a conventional per-entity repository layout, a single generic
// implementation serves every resource type. The set of columns a
// repository reads and writes is derived from the resource schema, so
// adding a resource type means registering a schema, not writing a new
// repository.
//
// # Thread Safety
//
// All repository implementations are safe for concurrent use by multiple
// goroutines. The underlying pgxpool handles connection pooling and
// synchronization.
//
// # Error Handling
//
// All methods return domain-specific errors from the domain package.
// Database errors are wrapped with context using fmt.Errorf with the %w verb.
// Common errors include:
//
//   - domain.ErrNotFound: Resource does not exist
//   - domain.ErrInvalidInput: Invalid parameters provided
//
// # Usage Pattern
//
// Repositories are typically created at application startup and passed to
// the HTTP server:
//
//	db, _ := database.New(ctx, cfg, logger)
//	businesses, _ := repository.NewBusinessRepository(db)
//	reviews, _ := repository.NewReviewRepository(db)
package repository

import (
	"github.com/localspot/business-directory/internal/database"
)

// DBTX is the database interface repositories operate over. It is satisfied
// by *database.DB for production use and by pgxmock pools in tests.
type DBTX = database.DBTX

// Package domain contains the core domain model for pdfmerge.
//
// The domain is engine- and persistence-agnostic: it does not depend on
// pdfcpu, YAML parsing, or the filesystem. Infra/adapters map into/from
// these types.
package domain

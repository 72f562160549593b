// Package models defines the GORM models of the monument catalog tables.
//
// The models are the source of truth for the integrity schema check: the
// `column:` and `type:` entries of each gorm tag are compared with the live
// database.
package models

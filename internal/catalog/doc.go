// Package catalog defines the show row model and its persistence. Rows are
// stored per scan run in a SQLite database and exported as CSV in a fixed
// column order so downstream spreadsheets keep working across versions.
package catalog

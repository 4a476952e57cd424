// Package importers bulk-loads vocabulary into the database.
//
// The flow is:
//
//	CSV / XLSX file → WordRow → Pipeline → levels, categories, words
//
// Files carry one word per row and a header row naming the columns:
//
//	word | definition | phonetic | sentence | level | category | subcategory
//
// Only "word" is required. Levels are matched by number and categories by
// name and sub-category name; missing ones are created on the fly.
package importers

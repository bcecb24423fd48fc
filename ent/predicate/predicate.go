// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Category is the predicate function for category builders.
type Category func(*sql.Selector)

// Media is the predicate function for media builders.
type Media func(*sql.Selector)

// Officer is the predicate function for officer builders.
type Officer func(*sql.Selector)

// Report is the predicate function for report builders.
type Report func(*sql.Selector)

// Subcategory is the predicate function for subcategory builders.
type Subcategory func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)

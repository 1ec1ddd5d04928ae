// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// CardProgress is the predicate function for cardprogress builders.
type CardProgress func(*sql.Selector)

// OfflineSession is the predicate function for offlinesession builders.
type OfflineSession func(*sql.Selector)

// ReviewLog is the predicate function for reviewlog builders.
type ReviewLog func(*sql.Selector)

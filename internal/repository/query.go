package repository

import (
	"regexp"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Pagination bounds for blog listings.
const (
	DefaultPage  int64 = 1
	DefaultLimit int64 = 10
	MaxLimit     int64 = 100
)

// BlogQuery describes a blog listing: mandatory ownership identifiers
// plus optional keyword, date-range, sort, and pagination parameters.
//
// A BlogQuery is pure data; Filter and FindOptions derive the driver
// filter and options from it without touching the database, which is
// what makes the construction logic testable in isolation.
type BlogQuery struct {
	// User and Category are mandatory: the base filter always requires
	// an exact match on both ownership references.
	User     primitive.ObjectID
	Category primitive.ObjectID

	// Keyword, when non-empty, requires the title OR the description to
	// contain it case-insensitively (substring match, not tokenized).
	Keyword string

	// Start and End bound createdAt inclusively. Either or both may be
	// nil; no bound means no date constraint on that side.
	Start *time.Time
	End   *time.Time

	// SortAscending orders by createdAt ascending when true, descending
	// otherwise (the default).
	SortAscending bool

	// Page and Limit select the result window. Values below 1 fall back
	// to the defaults; Limit is capped at MaxLimit.
	Page  int64
	Limit int64
}

// Filter builds the document filter for the listing.
func (q BlogQuery) Filter() bson.M {
	filter := bson.M{
		"user":     q.User,
		"category": q.Category,
	}

	if q.Keyword != "" {
		// QuoteMeta: the keyword is a literal substring, not a pattern.
		pattern := regexp.QuoteMeta(q.Keyword)
		filter["$or"] = bson.A{
			bson.M{"title": primitive.Regex{Pattern: pattern, Options: "i"}},
			bson.M{"description": primitive.Regex{Pattern: pattern, Options: "i"}},
		}
	}

	switch {
	case q.Start != nil && q.End != nil:
		filter["createdAt"] = bson.M{"$gte": *q.Start, "$lte": *q.End}
	case q.Start != nil:
		filter["createdAt"] = bson.M{"$gte": *q.Start}
	case q.End != nil:
		filter["createdAt"] = bson.M{"$lte": *q.End}
	}

	return filter
}

// FindOptions builds the sort/skip/limit options for the listing:
// skip = (page-1) * limit on top of the createdAt sort.
func (q BlogQuery) FindOptions() *options.FindOptions {
	page := q.Page
	if page < DefaultPage {
		page = DefaultPage
	}

	limit := q.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}

	order := -1
	if q.SortAscending {
		order = 1
	}

	return options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: order}}).
		SetSkip((page - 1) * limit).
		SetLimit(limit)
}
